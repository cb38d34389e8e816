package terrain

import (
	"fmt"
	"io"

	"github.com/cocosip/go-terrain-codec/text"
)

// Decode reads a BPR5 container from r and writes the reconstructed
// whitespace-separated integer text grid to w.
func Decode(r io.Reader, w io.Writer) error {
	data, err := io.ReadAll(r)
	if err != nil {
		return fmt.Errorf("decode: %w", err)
	}
	rows, err := DecodeGrid(data)
	if err != nil {
		return fmt.Errorf("decode: %w", err)
	}
	if err := text.WriteGrid(w, rows); err != nil {
		return fmt.Errorf("decode: %w", err)
	}
	return nil
}
