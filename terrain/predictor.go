// Package terrain implements the BPR5 codec: a lossless, predictor-based
// compressor for two-dimensional grids of integer height samples.
package terrain

import "fmt"

// PredictorID identifies one of the four row predictors the codec chooses
// among for each row. It is stored as a single byte in the container header.
type PredictorID uint8

const (
	// LEFT predicts a sample from its left neighbor on the same row.
	LEFT PredictorID = iota
	// UP predicts a sample from the sample directly above it.
	UP
	// PAETH is the PNG filter-4 predictor: picks among A, B, C by minimal
	// deviation from A+B-C.
	PAETH
	// MED is the median edge detector used by LOCO-I/JPEG-LS.
	MED
)

func (id PredictorID) String() string {
	switch id {
	case LEFT:
		return "LEFT"
	case UP:
		return "UP"
	case PAETH:
		return "PAETH"
	case MED:
		return "MED"
	default:
		return fmt.Sprintf("PredictorID(%d)", uint8(id))
	}
}

// Valid reports whether id is one of the four defined predictors.
func (id PredictorID) Valid() bool {
	return id <= MED
}

// Predict computes the prediction for a sample given its left (a), above
// (b), and above-left (c) neighbors, under predictor id. Missing neighbors
// must be passed as 0 by the caller per the codec's boundary rules.
func Predict(id PredictorID, a, b, c int32) int32 {
	switch id {
	case LEFT:
		return a
	case UP:
		return b
	case PAETH:
		return paeth(a, b, c)
	case MED:
		return med(a, b, c)
	default:
		// Unreachable in a well-formed container; callers validate id
		// before calling Predict.
		return 0
	}
}

// paeth is the PNG filter-4 predictor. Tie-break order (A, then B, then C)
// is part of the wire contract, not an implementation detail.
func paeth(a, b, c int32) int32 {
	p := a + b - c
	pa := abs32(p - a)
	pb := abs32(p - b)
	pc := abs32(p - c)
	switch {
	case pa <= pb && pa <= pc:
		return a
	case pb <= pc:
		return b
	default:
		return c
	}
}

// med is the LOCO-I/JPEG-LS median edge detector.
func med(a, b, c int32) int32 {
	switch {
	case c >= max32(a, b):
		return min32(a, b)
	case c <= min32(a, b):
		return max32(a, b)
	default:
		return a + b - c
	}
}

// allPredictors lists the four predictor ids in tie-break order.
var allPredictors = [4]PredictorID{LEFT, UP, PAETH, MED}

// SelectPredictor evaluates the sum of absolute residuals each predictor
// would produce for row against its previous reconstructed row (prev may be
// nil or empty for row 0), and returns the id with the smallest sum. Ties
// are broken by predictor order: LEFT < UP < PAETH < MED.
//
// isFirstRow excludes column 0 from the sum, matching the seed column that
// carries no residual.
func SelectPredictor(row, prev []int32, isFirstRow bool) PredictorID {
	best := LEFT
	bestSum := int64(-1)
	for _, id := range allPredictors {
		sum := predictorResidualSum(id, row, prev, isFirstRow)
		if bestSum < 0 || sum < bestSum {
			bestSum = sum
			best = id
		}
	}
	return best
}

func predictorResidualSum(id PredictorID, row, prev []int32, isFirstRow bool) int64 {
	start := 0
	if isFirstRow {
		start = 1
	}
	var sum int64
	for j := start; j < len(row); j++ {
		a, b, c := neighbors(row, prev, j)
		sum += int64(abs32(row[j] - Predict(id, a, b, c)))
	}
	return sum
}

// neighbors returns the (A, B, C) context for column j of a row, given the
// row's own samples (used as the left source per the predictor selection
// rule) and the previous reconstructed row (the above and above-left
// source; 0 where prev is too short). Column 0 always uses
// A=0, C=0; B comes from prev[0] if present, 0 otherwise.
func neighbors(row, prev []int32, j int) (a, b, c int32) {
	if j == 0 {
		if len(prev) > 0 {
			b = prev[0]
		}
		return 0, b, 0
	}
	a = row[j-1]
	if j < len(prev) {
		b = prev[j]
	}
	if j-1 < len(prev) {
		c = prev[j-1]
	}
	return a, b, c
}

func abs32(n int32) int32 {
	if n < 0 {
		return -n
	}
	return n
}

func min32(a, b int32) int32 {
	if a < b {
		return a
	}
	return b
}

func max32(a, b int32) int32 {
	if a > b {
		return a
	}
	return b
}
