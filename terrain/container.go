package terrain

import (
	"bytes"
	"fmt"
	"io"
)

// magic identifies a BPR5 container: the four bytes "BPR5".
var magic = [4]byte{'B', 'P', 'R', '5'}

// EncodeGrid serializes rows (an ordered sequence of rows of signed 32-bit
// samples) into a BPR5 container, per the container layout: magic, row
// count, per-row lengths, and — unless every row is empty — a seed sample,
// per-row predictor ids, per-row delta modes, and a sequence of length-
// prefixed LZMA-compressed blocks of 8 rows each.
func EncodeGrid(rows [][]int32) ([]byte, error) {
	var out bytes.Buffer
	out.Write(magic[:])

	r := len(rows)
	WriteVarint(&out, uint64(r))
	for _, row := range rows {
		WriteVarint(&out, uint64(len(row)))
	}

	var sumL int
	for _, row := range rows {
		sumL += len(row)
	}
	if sumL == 0 {
		return out.Bytes(), nil
	}

	var seed int32
	if len(rows[0]) > 0 {
		seed = rows[0][0]
	}
	WriteVarint(&out, uint64(ZigZagEncode(seed)))

	pids := make([]PredictorID, r)
	modes := make([]DeltaMode, r)
	rowResiduals := make([][]int32, r)

	var prev []int32
	for i, row := range rows {
		pid, mode, residuals := encodeRow(row, prev, i == 0)
		pids[i] = pid
		modes[i] = mode
		rowResiduals[i] = residuals
		prev = row
	}

	predBytes := make([]byte, r)
	modeBytes := make([]byte, r)
	for i := 0; i < r; i++ {
		predBytes[i] = byte(pids[i])
		modeBytes[i] = byte(modes[i])
	}
	out.Write(predBytes)
	out.Write(modeBytes)

	for b := 0; b < numBlocks(r); b++ {
		start, end := blockRange(b, r)
		raw := blockResidualBuffer(rowResiduals[start:end])
		if len(raw) == 0 {
			// Nothing to compress: an all-seed/empty-residual block is
			// framed as a zero-length block rather than an LZMA stream
			// encoding zero bytes.
			WriteVarint(&out, 0)
			continue
		}
		compressed, err := compressBlock(raw)
		if err != nil {
			return nil, fmt.Errorf("container: block %d: %w", b, err)
		}
		WriteVarint(&out, uint64(len(compressed)))
		out.Write(compressed)
	}

	return out.Bytes(), nil
}

// DecodeGrid parses a BPR5 container back into its grid of rows.
func DecodeGrid(data []byte) ([][]int32, error) {
	r := bytes.NewReader(data)

	var gotMagic [4]byte
	if _, err := io.ReadFull(r, gotMagic[:]); err != nil {
		return nil, fmt.Errorf("container: %w", ErrTruncatedHeader)
	}
	if gotMagic != magic {
		return nil, ErrBadMagic
	}

	rowCount64, err := ReadVarint(r)
	if err != nil {
		return nil, fmt.Errorf("container: row count: %w", err)
	}
	rowCount := int(rowCount64)

	lengths := make([]int, rowCount)
	var sumL int
	for i := 0; i < rowCount; i++ {
		l, err := ReadVarint(r)
		if err != nil {
			return nil, fmt.Errorf("container: row length %d: %w", i, err)
		}
		lengths[i] = int(l)
		sumL += int(l)
	}

	rows := make([][]int32, rowCount)
	if sumL == 0 {
		for i := range rows {
			rows[i] = make([]int32, 0)
		}
		return rows, nil
	}

	seedZZ, err := ReadVarint(r)
	if err != nil {
		return nil, fmt.Errorf("container: seed: %w", err)
	}
	seed := ZigZagDecode(uint32(seedZZ))

	predBytes := make([]byte, rowCount)
	if _, err := io.ReadFull(r, predBytes); err != nil {
		return nil, fmt.Errorf("container: %w", ErrTruncatedHeader)
	}
	modeBytes := make([]byte, rowCount)
	if _, err := io.ReadFull(r, modeBytes); err != nil {
		return nil, fmt.Errorf("container: %w", ErrTruncatedHeader)
	}

	pids := make([]PredictorID, rowCount)
	modes := make([]DeltaMode, rowCount)
	for i := 0; i < rowCount; i++ {
		pid := PredictorID(predBytes[i])
		if !pid.Valid() {
			return nil, fmt.Errorf("container: row %d: %w", i, ErrUnknownPredictor)
		}
		mode := DeltaMode(modeBytes[i])
		if !mode.Valid() {
			return nil, fmt.Errorf("container: row %d: %w", i, ErrUnknownDeltaMode)
		}
		pids[i] = pid
		modes[i] = mode
	}

	var prev []int32
	for b := 0; b < numBlocks(rowCount); b++ {
		start, end := blockRange(b, rowCount)

		clen64, err := ReadVarint(r)
		if err != nil {
			return nil, fmt.Errorf("container: block %d length: %w", b, err)
		}
		clen := int(clen64)
		if clen > r.Len() {
			return nil, fmt.Errorf("container: block %d: %w", b, ErrBlockLengthOverflow)
		}
		compressed := make([]byte, clen)
		if _, err := io.ReadFull(r, compressed); err != nil {
			return nil, fmt.Errorf("container: block %d: %w", b, ErrBlockLengthOverflow)
		}

		var raw []byte
		if clen > 0 {
			raw, err = decompressBlock(compressed)
			if err != nil {
				return nil, fmt.Errorf("container: block %d: %w", b, err)
			}
		}
		blockReader := bytes.NewReader(raw)

		for i := start; i < end; i++ {
			l := lengths[i]
			cnt := residualCount(i, l)
			residuals := make([]int32, cnt)
			for k := 0; k < cnt; k++ {
				z, err := ReadVarint(blockReader)
				if err != nil {
					return nil, fmt.Errorf("container: row %d: %w", i, ErrResidualUnderflow)
				}
				residuals[k] = ZigZagDecode(uint32(z))
			}
			rec := decodeRow(i, l, pids[i], modes[i], seed, prev, residuals)
			rows[i] = rec
			prev = rec
		}

		if blockReader.Len() != 0 {
			return nil, fmt.Errorf("container: block %d: %w", b, ErrResidualOverflow)
		}
	}

	return rows, nil
}
