package terrain

import "errors"

// Container-level and stage-level sentinel errors. Callers should use
// errors.Is against these, not string matching; functions that return them
// wrap with fmt.Errorf("<stage>: %w", ...) to name where the failure
// occurred.
var (
	// ErrBadMagic is returned when the first four bytes of a container are
	// not "BPR5".
	ErrBadMagic = errors.New("terrain: bad magic")

	// ErrTruncatedHeader is returned when the magic or the per-row predictor
	// or delta-mode byte arrays cannot be fully read. A truncated row count
	// or row-length varint reports ErrTruncatedVarint instead.
	ErrTruncatedHeader = errors.New("terrain: truncated header")

	// ErrTruncatedVarint is returned when a varint's continuation run is
	// never terminated before the stream ends.
	ErrTruncatedVarint = errors.New("terrain: truncated varint")

	// ErrUnknownPredictor is returned when a predictor id byte is outside
	// {LEFT, UP, PAETH, MED}.
	ErrUnknownPredictor = errors.New("terrain: unknown predictor id")

	// ErrUnknownDeltaMode is returned when a delta mode byte is outside
	// {0, 1}.
	ErrUnknownDeltaMode = errors.New("terrain: unknown delta mode")

	// ErrBlockLengthOverflow is returned when a block's declared compressed
	// length exceeds the bytes remaining in the container.
	ErrBlockLengthOverflow = errors.New("terrain: block length exceeds remaining input")

	// ErrResidualUnderflow is returned when a block's decompressed residual
	// stream ends before all rows assigned to it are decoded.
	ErrResidualUnderflow = errors.New("terrain: residual stream underflow")

	// ErrResidualOverflow is returned when a block's decompressed residual
	// stream has unconsumed bytes left after all its rows are decoded.
	ErrResidualOverflow = errors.New("terrain: residual stream overflow")
)
