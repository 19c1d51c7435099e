/*
Package monogfx is a compositing engine for monochrome page-packed
framebuffers of the kind driven out to SSD1306-class displays.

A Screen is a mutable framebuffer packed one byte per column per 8-row
page with bit 0 topmost, the same layout as the bitmap package. Drawing
primitives clip silently against the screen edges; coordinates off the
screen are never errors. The raw buffer is exposed for the host's display
transfer routine and needs no translation at that boundary.

The engine is single threaded: every call runs to completion and the
screen has one logical owner per frame. Concurrent callers must serialize
externally.
*/
package monogfx

import (
	"github.com/bodgit/monogfx/bitmap"
)

// Color selects how drawing operations affect the framebuffer.
type Color uint8

const (
	// Black clears pixels.
	Black Color = iota
	// White sets pixels.
	White
	// Invert toggles pixels. Only DrawBitmap honours it; elsewhere any
	// colour other than White clears.
	Invert
)

// Default screen dimensions of the original handheld display.
const (
	DefaultWidth  = 128
	DefaultHeight = 64
)

// Bitmapper is the read access the engine needs into a packed image: its
// dimensions and one packed byte per column per page. *bitmap.Bitmap
// implements it, as does the view returned by Screen.Bitmap.
type Bitmapper interface {
	Width() int
	Height() int
	ByteAt(x, page int) byte
}

// Screen is a fixed-size packed framebuffer. All drawing operations
// mutate it in place; there is no versioning or undo.
type Screen struct {
	buf    []byte
	width  int
	height int
	pages  int
}

// New returns a cleared screen of the given dimensions. The height must
// be a positive multiple of 8.
func New(width, height int) (*Screen, error) {
	if err := bitmap.Validate(width, height); err != nil {
		return nil, err
	}
	return &Screen{
		buf:    make([]byte, width*height/8),
		width:  width,
		height: height,
		pages:  height / 8,
	}, nil
}

// Width returns the width in pixels.
func (s *Screen) Width() int {
	return s.width
}

// Height returns the height in pixels.
func (s *Screen) Height() int {
	return s.height
}

// Buffer returns the backing framebuffer for the host display transfer
// routine. The layout is width columns by height/8 pages, one byte per
// column per page, bit 0 topmost.
func (s *Screen) Buffer() []byte {
	return s.buf
}

// Bitmap returns a bitmap view over the framebuffer, sharing its storage.
func (s *Screen) Bitmap() *bitmap.Bitmap {
	b, _ := bitmap.FromBytes(s.width, s.height, s.buf)
	return b
}

// DrawPixel sets or clears the pixel at (x, y). Out-of-range coordinates
// are silently ignored.
func (s *Screen) DrawPixel(x, y int, c Color) {
	if x < 0 || x > s.width-1 || y < 0 || y > s.height-1 {
		return
	}

	offset := (y/8)*s.width + x
	bit := byte(1) << (y % 8)
	if c == White {
		s.buf[offset] |= bit
	} else {
		s.buf[offset] &^= bit
	}
}

// GetPixel returns the pixel at (x, y) as 0 or 1, or 0 off screen.
func (s *Screen) GetPixel(x, y int) uint8 {
	if x < 0 || x > s.width-1 || y < 0 || y > s.height-1 {
		return 0
	}
	return s.buf[(y/8)*s.width+x] >> (y % 8) & 1
}

// FillScreen sets every pixel to the given colour.
func (s *Screen) FillScreen(c Color) {
	fill := byte(0x00)
	if c != Black {
		fill = 0xff
	}
	for i := range s.buf {
		s.buf[i] = fill
	}
}

// Clear blanks the screen.
func (s *Screen) Clear() {
	s.FillScreen(Black)
}
