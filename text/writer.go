package text

import (
	"bufio"
	"io"
	"strconv"
)

// WriteGrid writes rows in the codec's normalized text form: each row's
// samples joined by single spaces, each row terminated by a single '\n',
// even if the row is empty.
func WriteGrid(w io.Writer, rows [][]int32) error {
	bw := bufio.NewWriter(w)
	for _, row := range rows {
		for i, v := range row {
			if i > 0 {
				if err := bw.WriteByte(' '); err != nil {
					return err
				}
			}
			if _, err := bw.WriteString(strconv.FormatInt(int64(v), 10)); err != nil {
				return err
			}
		}
		if err := bw.WriteByte('\n'); err != nil {
			return err
		}
	}
	return bw.Flush()
}
