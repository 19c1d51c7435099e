/*
Package rle implements the compressed monochrome image format consumed by
the compositor.

The stream is a sequence of bits packed least significant bit first. An
8-bit value of width-1 and an 8-bit value of height-1 (so both dimensions
lie in [1,256]) are followed by a single starting colour bit and then by
spans. Pixels are scanned in raster order: left to right within a row,
rows top to bottom. Each span is a run of one or more pixels of a single
colour and colours strictly alternate from the starting colour, so only
run lengths are coded: a length class of k bits is written as (k-1)/2 zero
bits and a terminating 1 bit, followed by the run length minus one in k
bits. The encoder always picks the smallest odd k with 2^k greater than
the run length minus one. The final byte is padded with 0 bits.

The decoder assumes a well-formed stream produced by Encode; it performs
no validation against truncated or corrupt input.
*/
package rle

import (
	"errors"
	"io"

	"github.com/bodgit/monogfx/bitmap"
	"github.com/bodgit/monogfx/bitstream"
)

// maxDimension is the largest width or height the 8-bit header fields can
// express.
const maxDimension = 256

var errTooBig = errors.New("rle: image dimensions must not exceed 256")

// pixelAt returns the pixel at raster index pos of b.
func pixelAt(b *bitmap.Bitmap, pos int) uint8 {
	return b.At(pos%b.Width(), pos/b.Width())
}

// runLength returns the length of the run of identically coloured pixels
// starting at raster index pos.
func runLength(b *bitmap.Bitmap, pos, total int) int {
	colour := pixelAt(b, pos)
	start := pos
	for pos < total && pixelAt(b, pos) == colour {
		pos++
	}
	return pos - start
}

// writeSpan writes the length class and the biased run length v, which is
// the true run length minus one.
func writeSpan(bw *bitstream.Writer, v int) error {
	bits := uint(1)
	for 1<<bits <= v {
		bits += 2
	}
	if err := bw.WriteBits(0, (bits-1)/2); err != nil {
		return err
	}
	if err := bw.WriteBit(1); err != nil {
		return err
	}
	return bw.WriteBits(uint32(v), bits)
}

// Encode writes b to w in compressed form.
func Encode(w io.Writer, b *bitmap.Bitmap) error {
	width, height := b.Width(), b.Height()
	if width > maxDimension || height > maxDimension {
		return errTooBig
	}

	bw := bitstream.NewWriter(w)
	if err := bw.WriteBits(uint32(width-1), 8); err != nil {
		return err
	}
	if err := bw.WriteBits(uint32(height-1), 8); err != nil {
		return err
	}
	if err := bw.WriteBit(uint32(b.At(0, 0))); err != nil {
		return err
	}

	total := width * height
	for pos := 0; pos < total; {
		n := runLength(b, pos, total)
		if err := writeSpan(bw, n-1); err != nil {
			return err
		}
		pos += n
	}

	return bw.Flush()
}

// DecodeConfig returns the dimensions of a compressed image without
// decoding it.
func DecodeConfig(data []byte) (width, height int) {
	br := bitstream.NewReader(data)
	width = int(br.ReadBits(8)) + 1
	height = int(br.ReadBits(8)) + 1
	return
}

// Decode reads a compressed image and calls span for each run of pixels,
// in raster order, until width*height pixels have been produced. Every
// run has a length of at least one and colours strictly alternate from
// the stored starting colour.
func Decode(data []byte, span func(colour uint8, count int)) (width, height int) {
	br := bitstream.NewReader(data)
	width = int(br.ReadBits(8)) + 1
	height = int(br.ReadBits(8)) + 1
	colour := uint8(br.ReadBits(1))

	total := width * height
	for pos := 0; pos < total; {
		bits := uint(1)
		for br.ReadBits(1) == 0 {
			bits += 2
		}
		count := int(br.ReadBits(bits)) + 1

		span(colour, count)
		pos += count
		colour ^= 1
	}
	return
}

// DecodeBitmap decodes a compressed image into a new bitmap.
func DecodeBitmap(data []byte) (*bitmap.Bitmap, error) {
	width, height := DecodeConfig(data)
	if err := bitmap.Validate(width, height); err != nil {
		return nil, err
	}

	buf := make([]byte, width*height/8)
	pos := 0
	Decode(data, func(colour uint8, count int) {
		if colour != 0 {
			for i := 0; i < count; i++ {
				x, y := (pos+i)%width, (pos+i)/width
				buf[(y/8)*width+x] |= 1 << (y % 8)
			}
		}
		pos += count
	})

	return bitmap.FromBytes(width, height, buf)
}
