package terrain

import (
	"io"

	"github.com/cocosip/go-terrain-codec/codec"
)

// GridCodec implements the codec.Codec interface for the BPR5 terrain grid
// container.
type GridCodec struct{}

// NewGridCodec creates a new BPR5 terrain codec.
func NewGridCodec() *GridCodec {
	return &GridCodec{}
}

// Encode encodes a whitespace-separated integer text grid into BPR5.
func (c *GridCodec) Encode(r io.Reader, w io.Writer) error {
	return Encode(r, w)
}

// Decode decodes a BPR5 container back into text grid form.
func (c *GridCodec) Decode(r io.Reader, w io.Writer) error {
	return Decode(r, w)
}

// Name returns a human-readable, registry-unique name for this codec.
func (c *GridCodec) Name() string {
	return "terrain-bpr5"
}

// init registers the codec in the global registry.
func init() {
	codec.Register(NewGridCodec())
}
