package monogfx

// Drawing primitives ported from the classic embedded implementations:
// horizontal runs are filled a byte row at a time and vertical runs a page
// at a time, everything else is built from pixels and lines.

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// DrawFastHLine draws a horizontal line of w pixels starting at (x, y),
// clipped to the screen.
func (s *Screen) DrawFastHLine(x, y, w int, c Color) {
	if y < 0 || y >= s.height {
		return
	}

	xEnd := x + w
	if xEnd <= 0 || x >= s.width {
		return
	}
	if x < 0 {
		x = 0
	}
	if xEnd > s.width {
		xEnd = s.width
	}

	offset := (y/8)*s.width + x
	bit := byte(1) << (y % 8)
	if c == White {
		for ; x < xEnd; x++ {
			s.buf[offset] |= bit
			offset++
		}
	} else {
		for ; x < xEnd; x++ {
			s.buf[offset] &^= bit
			offset++
		}
	}
}

// DrawFastVLine draws a vertical line of h pixels starting at (x, y),
// clipped to the screen. Whole pages are filled with a single byte
// operation; only the end pages need partial masks.
func (s *Screen) DrawFastVLine(x, y, h int, c Color) {
	if h < 1 || x < 0 || x >= s.width {
		return
	}

	yEnd := y + h
	if yEnd <= 0 || y >= s.height {
		return
	}
	if y < 0 {
		y = 0
	}
	if yEnd > s.height {
		yEnd = s.height
	}

	firstPage := y / 8
	lastPage := (yEnd - 1) / 8

	topMask := byte(0xff) << (y % 8)
	bottomMask := byte(0xff) >> (7 - (yEnd-1)%8)

	if firstPage == lastPage {
		s.applyMask(x, firstPage, topMask&bottomMask, c)
		return
	}
	s.applyMask(x, firstPage, topMask, c)
	for page := firstPage + 1; page < lastPage; page++ {
		s.applyMask(x, page, 0xff, c)
	}
	s.applyMask(x, lastPage, bottomMask, c)
}

func (s *Screen) applyMask(x, page int, mask byte, c Color) {
	if c == White {
		s.buf[page*s.width+x] |= mask
	} else {
		s.buf[page*s.width+x] &^= mask
	}
}

// DrawLine draws a line between (x0, y0) and (x1, y1) using Bresenham's
// algorithm.
func (s *Screen) DrawLine(x0, y0, x1, y1 int, c Color) {
	steep := abs(y1-y0) > abs(x1-x0)
	if steep {
		x0, y0 = y0, x0
		x1, y1 = y1, x1
	}
	if x0 > x1 {
		x0, x1 = x1, x0
		y0, y1 = y1, y0
	}

	dx := x1 - x0
	dy := abs(y1 - y0)
	err := dx / 2

	yStep := -1
	if y0 < y1 {
		yStep = 1
	}

	for ; x0 <= x1; x0++ {
		if steep {
			s.DrawPixel(y0, x0, c)
		} else {
			s.DrawPixel(x0, y0, c)
		}

		err -= dy
		if err < 0 {
			y0 += yStep
			err += dx
		}
	}
}

// DrawRect draws the outline of a w by h rectangle with its top left
// corner at (x, y).
func (s *Screen) DrawRect(x, y, w, h int, c Color) {
	s.DrawFastHLine(x, y, w, c)
	s.DrawFastHLine(x, y+h-1, w, c)
	s.DrawFastVLine(x, y, h, c)
	s.DrawFastVLine(x+w-1, y, h, c)
}

// FillRect fills a w by h rectangle with its top left corner at (x, y).
func (s *Screen) FillRect(x, y, w, h int, c Color) {
	for i := x; i < x+w; i++ {
		s.DrawFastVLine(i, y, h, c)
	}
}

// DrawCircle draws the outline of a circle of radius r centred on
// (x0, y0).
func (s *Screen) DrawCircle(x0, y0, r int, c Color) {
	f := 1 - r
	ddFx := 1
	ddFy := -2 * r
	x := 0
	y := r

	s.DrawPixel(x0, y0+r, c)
	s.DrawPixel(x0, y0-r, c)
	s.DrawPixel(x0+r, y0, c)
	s.DrawPixel(x0-r, y0, c)

	for x < y {
		if f >= 0 {
			y--
			ddFy += 2
			f += ddFy
		}

		x++
		ddFx += 2
		f += ddFx

		s.DrawPixel(x0+x, y0+y, c)
		s.DrawPixel(x0-x, y0+y, c)
		s.DrawPixel(x0+x, y0-y, c)
		s.DrawPixel(x0-x, y0-y, c)
		s.DrawPixel(x0+y, y0+x, c)
		s.DrawPixel(x0-y, y0+x, c)
		s.DrawPixel(x0+y, y0-x, c)
		s.DrawPixel(x0-y, y0-x, c)
	}
}

// drawCircleHelper draws quarter arcs selected by the corners bitmask;
// used for rounded rectangle corners.
func (s *Screen) drawCircleHelper(x0, y0, r int, corners uint8, c Color) {
	f := 1 - r
	ddFx := 1
	ddFy := -2 * r
	x := 0
	y := r

	for x < y {
		if f >= 0 {
			y--
			ddFy += 2
			f += ddFy
		}

		x++
		ddFx += 2
		f += ddFx

		if corners&0x4 != 0 { // lower right
			s.DrawPixel(x0+x, y0+y, c)
			s.DrawPixel(x0+y, y0+x, c)
		}
		if corners&0x2 != 0 { // upper right
			s.DrawPixel(x0+x, y0-y, c)
			s.DrawPixel(x0+y, y0-x, c)
		}
		if corners&0x8 != 0 { // lower left
			s.DrawPixel(x0-y, y0+x, c)
			s.DrawPixel(x0-x, y0+y, c)
		}
		if corners&0x1 != 0 { // upper left
			s.DrawPixel(x0-y, y0-x, c)
			s.DrawPixel(x0-x, y0-y, c)
		}
	}
}

// FillCircle fills a circle of radius r centred on (x0, y0).
func (s *Screen) FillCircle(x0, y0, r int, c Color) {
	s.DrawFastVLine(x0, y0-r, 2*r+1, c)
	s.fillCircleHelper(x0, y0, r, 3, 0, c)
}

// fillCircleHelper fills half circles selected by the sides bitmask (1 =
// right, 2 = left), stretched vertically by delta; used for rounded
// rectangle fills.
func (s *Screen) fillCircleHelper(x0, y0, r int, sides uint8, delta int, c Color) {
	f := 1 - r
	ddFx := 1
	ddFy := -2 * r
	x := 0
	y := r

	for x < y {
		if f >= 0 {
			y--
			ddFy += 2
			f += ddFy
		}

		x++
		ddFx += 2
		f += ddFx

		if sides&0x1 != 0 { // right side
			s.DrawFastVLine(x0+x, y0-y, 2*y+1+delta, c)
			s.DrawFastVLine(x0+y, y0-x, 2*x+1+delta, c)
		}
		if sides&0x2 != 0 { // left side
			s.DrawFastVLine(x0-x, y0-y, 2*y+1+delta, c)
			s.DrawFastVLine(x0-y, y0-x, 2*x+1+delta, c)
		}
	}
}

// DrawRoundRect draws the outline of a rectangle with corners rounded to
// radius r.
func (s *Screen) DrawRoundRect(x, y, w, h, r int, c Color) {
	s.DrawFastHLine(x+r, y, w-2*r, c)     // top
	s.DrawFastHLine(x+r, y+h-1, w-2*r, c) // bottom
	s.DrawFastVLine(x, y+r, h-2*r, c)     // left
	s.DrawFastVLine(x+w-1, y+r, h-2*r, c) // right
	s.drawCircleHelper(x+r, y+r, r, 1, c)
	s.drawCircleHelper(x+w-r-1, y+r, r, 2, c)
	s.drawCircleHelper(x+w-r-1, y+h-r-1, r, 4, c)
	s.drawCircleHelper(x+r, y+h-r-1, r, 8, c)
}

// FillRoundRect fills a rectangle with corners rounded to radius r.
func (s *Screen) FillRoundRect(x, y, w, h, r int, c Color) {
	s.FillRect(x+r, y, w-2*r, h, c)
	s.fillCircleHelper(x+w-r-1, y+r, r, 1, h-2*r-1, c)
	s.fillCircleHelper(x+r, y+r, r, 2, h-2*r-1, c)
}

// DrawTriangle draws the outline of a triangle.
func (s *Screen) DrawTriangle(x0, y0, x1, y1, x2, y2 int, c Color) {
	s.DrawLine(x0, y0, x1, y1, c)
	s.DrawLine(x1, y1, x2, y2, c)
	s.DrawLine(x2, y2, x0, y0, c)
}

// FillTriangle fills a triangle by scanline, splitting it into a flat
// bottomed upper part and a flat topped lower part.
func (s *Screen) FillTriangle(x0, y0, x1, y1, x2, y2 int, c Color) {
	// Sort by y so that y2 >= y1 >= y0.
	if y0 > y1 {
		x0, y0, x1, y1 = x1, y1, x0, y0
	}
	if y1 > y2 {
		x1, y1, x2, y2 = x2, y2, x1, y1
	}
	if y0 > y1 {
		x0, y0, x1, y1 = x1, y1, x0, y0
	}

	if y0 == y2 { // degenerate, all on one scanline
		a, b := x0, x0
		if x1 < a {
			a = x1
		} else if x1 > b {
			b = x1
		}
		if x2 < a {
			a = x2
		} else if x2 > b {
			b = x2
		}
		s.DrawFastHLine(a, y0, b-a+1, c)
		return
	}

	dx01, dy01 := x1-x0, y1-y0
	dx02, dy02 := x2-x0, y2-y0
	dx12, dy12 := x2-x1, y2-y1
	sa, sb := 0, 0

	// Scanline y1 belongs to the upper loop only for a flat bottomed
	// triangle; otherwise the lower loop handles it, which also avoids
	// dividing by a zero dy01 for a flat topped one.
	last := y1 - 1
	if y1 == y2 {
		last = y1
	}

	y := y0
	for ; y <= last; y++ {
		a := x0 + sa/dy01
		b := x0 + sb/dy02
		sa += dx01
		sb += dx02
		if a > b {
			a, b = b, a
		}
		s.DrawFastHLine(a, y, b-a+1, c)
	}

	sa = dx12 * (y - y1)
	sb = dx02 * (y - y0)
	for ; y <= y2; y++ {
		a := x1 + sa/dy12
		b := x0 + sb/dy02
		sa += dx12
		sb += dx02
		if a > b {
			a, b = b, a
		}
		s.DrawFastHLine(a, y, b-a+1, c)
	}
}

// DrawBitmap draws b with its top left corner at (x, y): set pixels of b
// are drawn in the given colour (set for White, cleared for Black,
// toggled for Invert) and clear pixels leave the screen untouched.
func (s *Screen) DrawBitmap(x, y int, b Bitmapper, c Color) {
	if b == nil {
		return
	}

	w, h := b.Width(), b.Height()
	if x+w <= 0 || x > s.width-1 || y+h <= 0 || y > s.height-1 {
		return
	}

	yOffset := abs(y) % 8
	sRow := y / 8
	if y < 0 && yOffset > 0 {
		sRow--
		yOffset = 8 - yOffset
	}

	rows := h / 8
	for a := 0; a < rows; a++ {
		bRow := sRow + a
		if bRow > s.pages-1 {
			break
		}
		if bRow <= -2 {
			continue
		}
		for col := 0; col < w; col++ {
			if col+x > s.width-1 {
				break
			}
			if col+x < 0 {
				continue
			}
			data := b.ByteAt(col, a)
			if bRow >= 0 {
				s.composite(bRow*s.width+x+col, data<<yOffset, c)
			}
			if yOffset != 0 && bRow < s.pages-1 && bRow > -2 {
				s.composite((bRow+1)*s.width+x+col, data>>(8-yOffset), c)
			}
		}
	}
}

func (s *Screen) composite(offset int, value byte, c Color) {
	switch c {
	case White:
		s.buf[offset] |= value
	case Black:
		s.buf[offset] &^= value
	default:
		s.buf[offset] ^= value
	}
}
