package codec

import "io"

// Codec is the universal interface for all grid codecs: a stream transform
// from one textual or binary representation to another.
type Codec interface {
	// Encode reads a grid from r and writes its compressed form to w.
	Encode(r io.Reader, w io.Writer) error

	// Decode reads a compressed grid from r and writes its reconstructed
	// form to w.
	Decode(r io.Reader, w io.Writer) error

	// Name returns a human-readable, registry-unique name.
	Name() string
}
