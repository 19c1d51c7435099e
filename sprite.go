package monogfx

import "github.com/bodgit/monogfx/bitmap"

// Mode selects the compositing rule Blit applies.
type Mode uint8

const (
	// Overwrite replaces destination bits with source bits.
	Overwrite Mode = iota
	// SelfMasked uses the source as its own mask: only its 1 bits are
	// written, 0 bits leave the destination unchanged.
	SelfMasked
	// Erase clears destination bits where the source has 1 bits.
	Erase
	// ExternalMask takes a second bitmap of identical dimensions as a
	// per-pixel write enable.
	ExternalMask
	// InterleavedMask reads a plus-mask bitmap whose array alternates
	// image and mask bytes per column; the compositing rule is that of
	// ExternalMask.
	InterleavedMask
)

// Blit composites b onto the screen with its top left corner at the pixel
// coordinate (x, y), which need not be page aligned or on screen. A nil
// bitmap is a no-op and sprites wholly off screen return without touching
// the buffer. For ExternalMask the mask must have the same dimensions as
// b; for InterleavedMask the mask is taken from b itself and the mask
// argument is ignored.
func (s *Screen) Blit(b, mask *bitmap.Bitmap, x, y int, mode Mode) {
	if b == nil {
		return
	}
	if mode == InterleavedMask {
		mask = b.Mask()
		mode = ExternalMask
	}

	w, h := b.Width(), b.Height()
	if x+w <= 0 || x > s.width-1 || y+h <= 0 || y > s.height-1 {
		return
	}

	// Split the vertical position into a page row and a sub-byte offset;
	// every source byte lands in page sRow shifted up by yOffset with its
	// overflow in the page below.
	yOffset := abs(y) % 8
	sRow := y / 8
	if y < 0 && yOffset > 0 {
		sRow--
		yOffset = 8 - yOffset
	}

	// Precompute the clipped column and page ranges so the inner loops
	// touch only visible bytes.
	xOffset := 0
	if x < 0 {
		xOffset = -x
	}
	renderedWidth := w - xOffset
	if x+w > s.width-1 {
		renderedWidth = s.width - x - xOffset
	}

	startH := 0
	if sRow < -1 {
		startH = -sRow - 1
	}
	loopH := h / 8
	if sRow+loopH > s.pages {
		loopH = s.pages - sRow
	}
	loopH -= startH
	sRow += startH

	ofs := sRow*s.width + x + xOffset

	switch mode {
	case Overwrite:
		// The whole 8-bit source column is written, so the destination
		// keep mask is constant across the loop.
		keep := ^(uint16(0xff) << yOffset)
		for a := 0; a < loopH; a++ {
			for i := 0; i < renderedWidth; i++ {
				data := uint16(b.ByteAt(xOffset+i, startH+a)) << yOffset
				if sRow >= 0 {
					s.buf[ofs] = s.buf[ofs]&byte(keep) | byte(data)
				}
				if yOffset != 0 && sRow < s.pages-1 {
					s.buf[ofs+s.width] = s.buf[ofs+s.width]&byte(keep>>8) | byte(data>>8)
				}
				ofs++
			}
			sRow++
			ofs += s.width - renderedWidth
		}

	case SelfMasked:
		for a := 0; a < loopH; a++ {
			for i := 0; i < renderedWidth; i++ {
				data := uint16(b.ByteAt(xOffset+i, startH+a)) << yOffset
				if sRow >= 0 {
					s.buf[ofs] |= byte(data)
				}
				if yOffset != 0 && sRow < s.pages-1 {
					s.buf[ofs+s.width] |= byte(data >> 8)
				}
				ofs++
			}
			sRow++
			ofs += s.width - renderedWidth
		}

	case Erase:
		for a := 0; a < loopH; a++ {
			for i := 0; i < renderedWidth; i++ {
				data := uint16(b.ByteAt(xOffset+i, startH+a)) << yOffset
				if sRow >= 0 {
					s.buf[ofs] &^= byte(data)
				}
				if yOffset != 0 && sRow < s.pages-1 {
					s.buf[ofs+s.width] &^= byte(data >> 8)
				}
				ofs++
			}
			sRow++
			ofs += s.width - renderedWidth
		}

	case ExternalMask:
		for a := 0; a < loopH; a++ {
			for i := 0; i < renderedWidth; i++ {
				mb := mask.ByteAt(xOffset+i, startH+a)
				m := uint16(mb) << yOffset
				data := uint16(b.ByteAt(xOffset+i, startH+a)&mb) << yOffset
				if sRow >= 0 {
					s.buf[ofs] = s.buf[ofs]&^byte(m) | byte(data)
				}
				if yOffset != 0 && sRow < s.pages-1 {
					s.buf[ofs+s.width] = s.buf[ofs+s.width]&^byte(m>>8) | byte(data>>8)
				}
				ofs++
			}
			sRow++
			ofs += s.width - renderedWidth
		}
	}
}

// DrawOverwrite draws frame of b in Overwrite mode.
func (s *Screen) DrawOverwrite(x, y int, b *bitmap.Bitmap, frame int) {
	if b == nil {
		return
	}
	s.Blit(b.Frame(frame), nil, x, y, Overwrite)
}

// DrawSelfMasked draws frame of b in SelfMasked mode.
func (s *Screen) DrawSelfMasked(x, y int, b *bitmap.Bitmap, frame int) {
	if b == nil {
		return
	}
	s.Blit(b.Frame(frame), nil, x, y, SelfMasked)
}

// DrawErase draws frame of b in Erase mode.
func (s *Screen) DrawErase(x, y int, b *bitmap.Bitmap, frame int) {
	if b == nil {
		return
	}
	s.Blit(b.Frame(frame), nil, x, y, Erase)
}

// DrawExternalMask draws frame of b write-enabled by maskFrame of mask.
// The two frame numbers are independent so one mask sheet can serve
// several image frames.
func (s *Screen) DrawExternalMask(x, y int, b, mask *bitmap.Bitmap, frame, maskFrame int) {
	if b == nil {
		return
	}
	s.Blit(b.Frame(frame), mask.Frame(maskFrame), x, y, ExternalMask)
}

// DrawPlusMask draws frame of a plus-mask bitmap, taking the write enable
// from the interleaved mask bytes.
func (s *Screen) DrawPlusMask(x, y int, b *bitmap.Bitmap, frame int) {
	if b == nil {
		return
	}
	s.Blit(b.Frame(frame), nil, x, y, InterleavedMask)
}
