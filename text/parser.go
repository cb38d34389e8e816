package text

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// maxLineBytes bounds how long a single row's line may be. The target grid
// shape (rows up to ~35000 samples) can produce lines well past the
// bufio.Scanner default of 64 KiB, so the scanner, starting from a 64 KiB
// buffer, is allowed to grow it up to this size.
const maxLineBytes = 1 << 24 // 16 MiB

// ParseGrid reads a whitespace-separated integer grid: one row per line,
// samples on a line separated by any run of whitespace, decimal integers
// (optionally signed). An empty input yields zero rows.
func ParseGrid(r io.Reader) ([][]int32, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineBytes)

	var rows [][]int32
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		fields := strings.Fields(scanner.Text())
		row := make([]int32, len(fields))
		for i, tok := range fields {
			n, err := strconv.ParseInt(tok, 10, 32)
			if err != nil {
				return nil, fmt.Errorf("text: line %d: %q: %w", lineNo, tok, ErrInvalidToken)
			}
			row[i] = int32(n)
		}
		rows = append(rows, row)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("text: %w", err)
	}
	return rows, nil
}
