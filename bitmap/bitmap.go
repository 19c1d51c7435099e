/*
Package bitmap implements the packed monochrome bitmap format used by the
compositor and the rle codec.

A bitmap is stored one byte per column per 8-row page: byte i at page p,
column x holds pixels (x, p*8) through (x, p*8+7) with bit 0 topmost. The
width can be any positive value; the height must be a multiple of 8.

An array may carry several frames of the same dimensions stored
consecutively, as produced by sprite-sheet authoring tools. A "plus mask"
array interleaves one image byte and one mask byte per column; both halves
are exposed as bitmap views over the shared array.
*/
package bitmap

import (
	"errors"
	"fmt"
)

var (
	errBadHeight = errors.New("bitmap: height must be a positive multiple of 8")
	errBadWidth  = errors.New("bitmap: width must be positive")
	errShortData = errors.New("bitmap: not enough image data")
)

// Bitmap is an immutable packed 1 bit per pixel image. The stride is the
// distance in bytes between horizontally adjacent column bytes; it is 1
// for plain bitmaps and 2 for plus-mask views.
type Bitmap struct {
	data   []byte
	width  int
	height int
	stride int
}

// Validate reports whether width and height are legal packed bitmap
// dimensions: a positive width and a positive height divisible by 8.
func Validate(width, height int) error {
	if width < 1 {
		return errBadWidth
	}
	if height < 1 || height%8 != 0 {
		return errBadHeight
	}
	return nil
}

// New returns a blank bitmap of the given dimensions.
func New(width, height int) (*Bitmap, error) {
	if err := Validate(width, height); err != nil {
		return nil, err
	}
	return &Bitmap{
		data:   make([]byte, width*height/8),
		width:  width,
		height: height,
		stride: 1,
	}, nil
}

// FromBytes wraps a literal packed array. The array must hold at least one
// frame of width*height/8 bytes; any further whole frames are addressable
// through Frame.
func FromBytes(width, height int, data []byte) (*Bitmap, error) {
	if err := Validate(width, height); err != nil {
		return nil, err
	}
	if len(data) < width*height/8 {
		return nil, errShortData
	}
	return &Bitmap{
		data:   data,
		width:  width,
		height: height,
		stride: 1,
	}, nil
}

// FromPlusMask wraps an interleaved image,mask array where each column
// byte of the image is followed by the corresponding mask byte. The
// returned bitmap reads the image bytes; its Mask method returns the view
// over the mask bytes.
func FromPlusMask(width, height int, data []byte) (*Bitmap, error) {
	if err := Validate(width, height); err != nil {
		return nil, err
	}
	if len(data) < 2*width*height/8 {
		return nil, errShortData
	}
	return &Bitmap{
		data:   data,
		width:  width,
		height: height,
		stride: 2,
	}, nil
}

// Width returns the width in pixels.
func (b *Bitmap) Width() int {
	return b.width
}

// Height returns the height in pixels.
func (b *Bitmap) Height() int {
	return b.height
}

// Pages returns the number of 8-row pages.
func (b *Bitmap) Pages() int {
	return b.height / 8
}

// Data returns the backing array, including any mask bytes or additional
// frames it carries.
func (b *Bitmap) Data() []byte {
	return b.data
}

// At returns the pixel at (x, y) as 0 or 1.
func (b *Bitmap) At(x, y int) uint8 {
	return b.ByteAt(x, y/8) >> (y % 8) & 1
}

// ByteAt returns the packed byte for column x of the given 8-row page.
// This is the only access the compositor needs into a bitmap.
func (b *Bitmap) ByteAt(x, page int) byte {
	return b.data[(page*b.width+x)*b.stride]
}

// Frames returns the number of whole frames the backing array holds.
func (b *Bitmap) Frames() int {
	return len(b.data) / (b.width * b.height / 8 * b.stride)
}

// Frame returns a view over frame i. Frame data shares storage with the
// parent; frame 0 of a single-frame bitmap is the bitmap itself.
func (b *Bitmap) Frame(i int) *Bitmap {
	if i == 0 {
		return b
	}
	f := *b
	f.data = b.data[i*b.width*b.height/8*b.stride:]
	return &f
}

// Mask returns the mask view of a plus-mask bitmap, or nil for a plain
// bitmap.
func (b *Bitmap) Mask() *Bitmap {
	if b.stride != 2 {
		return nil
	}
	m := *b
	m.data = b.data[1:]
	return &m
}

func (b *Bitmap) String() string {
	return fmt.Sprintf("Bitmap(%d,%d)", b.width, b.height)
}
