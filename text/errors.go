// Package text reads and writes the codec's whitespace-separated integer
// grid format: one row per line, samples separated by any run of
// whitespace, decimal (optionally signed) integers.
package text

import "errors"

// ErrInvalidToken is returned when a whitespace-delimited token on a row is
// not a valid decimal integer.
var ErrInvalidToken = errors.New("text: invalid integer token")
