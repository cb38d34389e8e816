package terrain

import "fmt"

// DeltaMode selects how a row's residuals (other than its column-0 sample)
// are derived from the row's own samples.
type DeltaMode uint8

const (
	// ModeFirstOrder predicts each sample from its spatial neighbors via
	// the row's chosen PredictorID.
	ModeFirstOrder DeltaMode = 0
	// ModeSecondOrder differences along the row: sample[j] - 2*sample[j-1]
	// + sample[j-2], except column 0 (predictor) and column 1 (first
	// difference against column 0).
	ModeSecondOrder DeltaMode = 1
)

func (m DeltaMode) String() string {
	switch m {
	case ModeFirstOrder:
		return "first-order"
	case ModeSecondOrder:
		return "second-order"
	default:
		return fmt.Sprintf("DeltaMode(%d)", uint8(m))
	}
}

// Valid reports whether m is 0 or 1.
func (m DeltaMode) Valid() bool {
	return m == ModeFirstOrder || m == ModeSecondOrder
}

// residualsMode0 produces first-order residuals for a non-initial row
// (isFirstRow == false); isFirstRow == true skips column 0. encodeRow only
// calls it for non-initial rows: row 0's wire residuals always come from
// residualsRow0.
func residualsMode0(row, prev []int32, pid PredictorID, isFirstRow bool) []int32 {
	start := 0
	if isFirstRow {
		start = 1
	}
	out := make([]int32, 0, len(row)-start)
	for j := start; j < len(row); j++ {
		a, b, c := neighbors(row, prev, j)
		out = append(out, row[j]-Predict(pid, a, b, c))
	}
	return out
}

// residualsMode1 produces second-order residuals for a non-initial row.
func residualsMode1(row, prev []int32, pid PredictorID) []int32 {
	out := make([]int32, 0, len(row))
	for j := 0; j < len(row); j++ {
		switch {
		case j == 0:
			a, b, c := neighbors(row, prev, 0)
			out = append(out, row[j]-Predict(pid, a, b, c))
		case j == 1:
			out = append(out, row[j]-row[0])
		default:
			out = append(out, row[j]-2*row[j-1]+row[j-2])
		}
	}
	return out
}

// residualsRow0 produces row 0's residuals, which are always generated with
// the fixed seed / first-difference / second-difference rule regardless of
// any mode selection (see design note on the row-0 mode byte): column 0 is
// the seed (no residual), column 1 is sample[1]-sample[0], and columns >= 2
// are second differences.
func residualsRow0(row []int32) []int32 {
	if len(row) == 0 {
		return nil
	}
	out := make([]int32, 0, len(row)-1)
	for j := 1; j < len(row); j++ {
		switch j {
		case 1:
			out = append(out, row[1]-row[0])
		default:
			out = append(out, row[j]-2*row[j-1]+row[j-2])
		}
	}
	return out
}

// l1Sum sums absolute values.
func l1Sum(residuals []int32) int64 {
	var sum int64
	for _, r := range residuals {
		sum += int64(abs32(r))
	}
	return sum
}

// encodeRow computes the predictor id, delta mode, and residual sequence
// for row i given its previous reconstructed row prev (nil for row 0).
//
// Row 0 is special: its predictor id is still evaluated and stored (the
// header format always carries R predictor bytes), but its residuals and
// mode byte are fixed — see residualsRow0 and the design note this mirrors.
func encodeRow(row, prev []int32, isFirstRow bool) (pid PredictorID, mode DeltaMode, residuals []int32) {
	pid = SelectPredictor(row, prev, isFirstRow)

	if isFirstRow {
		return pid, ModeFirstOrder, residualsRow0(row)
	}

	r0 := residualsMode0(row, prev, pid, false)
	r1 := residualsMode1(row, prev, pid)
	if l1Sum(r1) < l1Sum(r0) {
		return pid, ModeSecondOrder, r1
	}
	return pid, ModeFirstOrder, r0
}

// decodeRow reconstructs row i (length L) from its residuals, given the
// stored predictor id, delta mode, and previous reconstructed row.
// residuals must have exactly the count residualCount reports for
// this row (L for i>0, L-1 for i==0), checked by the caller.
func decodeRow(i, l int, pid PredictorID, mode DeltaMode, seed int32, prev []int32, residuals []int32) []int32 {
	rec := make([]int32, l)
	if l == 0 {
		return rec
	}

	if i == 0 {
		rec[0] = seed
		if l > 1 {
			rec[1] = rec[0] + residuals[0]
		}
		for j := 2; j < l; j++ {
			rec[j] = 2*rec[j-1] - rec[j-2] + residuals[j-1]
		}
		return rec
	}

	a0, b0, c0 := neighbors(rec, prev, 0)
	rec[0] = Predict(pid, a0, b0, c0) + residuals[0]

	switch mode {
	case ModeFirstOrder:
		for j := 1; j < l; j++ {
			a, b, c := neighbors(rec, prev, j)
			rec[j] = Predict(pid, a, b, c) + residuals[j]
		}
	case ModeSecondOrder:
		if l > 1 {
			rec[1] = rec[0] + residuals[1]
		}
		for j := 2; j < l; j++ {
			rec[j] = 2*rec[j-1] - rec[j-2] + residuals[j]
		}
	}
	return rec
}

// residualCount returns how many residuals row i (length l) contributes to
// its block's byte stream: L for i>0, L-1 for i==0 (column 0 is the seed).
func residualCount(i, l int) int {
	if l == 0 {
		return 0
	}
	if i == 0 {
		return l - 1
	}
	return l
}
