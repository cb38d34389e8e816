package terrain

import (
	"bytes"
	"fmt"
	"io"

	"github.com/ulikunitz/xz/lzma"
)

// blockRows is the number of rows grouped into one independently
// LZMA-compressed block.
const blockRows = 8

// lzmaDictCap approximates a "preset 9 | extreme"-equivalent setting: a
// large dictionary capacity buys back most of what extreme mode's exhaustive
// match finder would find on strongly row-correlated residual streams,
// without this package needing to hand-roll an encoder. ulikunitz/xz/lzma
// has no "extreme" knob of its own; dictionary size is the lever it exposes.
const lzmaDictCap = 1 << 26 // 64 MiB

func lzmaWriterConfig() lzma.WriterConfig {
	return lzma.WriterConfig{
		DictCap: lzmaDictCap,
	}
}

// compressBlock LZMA-compresses a block's concatenated residual byte
// buffer as an opaque, independent stream.
func compressBlock(data []byte) ([]byte, error) {
	var buf bytes.Buffer
	cfg := lzmaWriterConfig()
	w, err := cfg.NewWriter(&buf)
	if err != nil {
		return nil, fmt.Errorf("block compress: %w", err)
	}
	if _, err := w.Write(data); err != nil {
		return nil, fmt.Errorf("block compress: %w", err)
	}
	if err := w.Close(); err != nil {
		return nil, fmt.Errorf("block compress: %w", err)
	}
	return buf.Bytes(), nil
}

// decompressBlock reverses compressBlock.
func decompressBlock(data []byte) ([]byte, error) {
	r, err := lzma.NewReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("block decompress: %w", err)
	}
	out, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("block decompress: %w", err)
	}
	return out, nil
}

// blockResidualBuffer concatenates the ZigZag+varint encoding of each row's
// residuals, in row-major order, for one block of rows.
func blockResidualBuffer(rowResiduals [][]int32) []byte {
	var buf bytes.Buffer
	for _, residuals := range rowResiduals {
		for _, r := range residuals {
			WriteVarint(&buf, uint64(ZigZagEncode(r)))
		}
	}
	return buf.Bytes()
}

// numBlocks returns ceil(r / blockRows).
func numBlocks(r int) int {
	if r == 0 {
		return 0
	}
	return (r + blockRows - 1) / blockRows
}

// blockRange returns the [start, end) row indices belonging to block b of r
// total rows.
func blockRange(b, r int) (start, end int) {
	start = b * blockRows
	end = start + blockRows
	if end > r {
		end = r
	}
	return start, end
}
