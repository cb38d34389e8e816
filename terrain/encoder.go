package terrain

import (
	"fmt"
	"io"

	"github.com/cocosip/go-terrain-codec/text"
)

// Encode reads a whitespace-separated integer text grid from r and writes
// its BPR5-encoded form to w. The whole grid is materialized in memory for
// the duration of the call; no state survives it.
func Encode(r io.Reader, w io.Writer) error {
	rows, err := text.ParseGrid(r)
	if err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	container, err := EncodeGrid(rows)
	if err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	if _, err := w.Write(container); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return nil
}
