package protocol

import (
	"fmt"

	"github.com/ugorji/go/codec"
)

// Frame is a full Lighthouse pixel grid: Rows x Cols RGB pixels, row-major.
// On the wire it is a single contiguous Bytes-length binary blob
// (r,g,b,r,g,b,...); any other length fails to decode.
type Frame struct {
	Pixels [Size]Color
}

// NewFrame returns a frame filled with the given color (black if omitted).
func NewFrame(fill ...Color) Frame {
	var f Frame
	if len(fill) > 0 {
		for i := range f.Pixels {
			f.Pixels[i] = fill[0]
		}
	}
	return f
}

// At returns the color at the given row/column.
func (f Frame) At(row, col int) Color {
	return f.Pixels[row*Cols+col]
}

// Set writes the color at the given row/column.
func (f *Frame) Set(row, col int, c Color) {
	f.Pixels[row*Cols+col] = c
}

// CodecEncodeSelf implements codec.Selfer, writing the frame as its raw
// Bytes-length blob.
func (f Frame) CodecEncodeSelf(e *codec.Encoder) {
	buf := make([]byte, Bytes)
	for i, c := range f.Pixels {
		buf[i*3] = c.R
		buf[i*3+1] = c.G
		buf[i*3+2] = c.B
	}
	e.MustEncode(buf)
}

// CodecDecodeSelf implements codec.Selfer, requiring an exact Bytes-length
// blob.
func (f *Frame) CodecDecodeSelf(d *codec.Decoder) {
	var buf []byte
	d.MustDecode(&buf)
	if len(buf) != Bytes {
		panic(fmt.Errorf("frame: expected %d bytes, got %d", Bytes, len(buf)))
	}
	for i := range f.Pixels {
		f.Pixels[i] = Color{R: buf[i*3], G: buf[i*3+1], B: buf[i*3+2]}
	}
}
