package monogfx

import "github.com/bodgit/monogfx/rle"

// DrawCompressed decompresses an rle image straight onto the screen with
// its top left corner at (x, y), without materialising an intermediate
// bitmap. Decoded 1 pixels are drawn in the given colour and decoded 0
// pixels leave the screen untouched, matching SelfMasked compositing for
// White and Erase for Black. The data must be a well-formed stream from
// rle.Encode.
func (s *Screen) DrawCompressed(x, y int, data []byte, c Color) {
	if data == nil {
		return
	}

	w, h := rle.DecodeConfig(data)
	if x+w <= 0 || x > s.width-1 || y+h <= 0 || y > s.height-1 {
		return
	}

	// A raster-order span is a row fragment, some whole rows and another
	// fragment, so each drawn span becomes at most a few clipped
	// horizontal line fills.
	pos := 0
	rle.Decode(data, func(colour uint8, count int) {
		if colour == 0 {
			pos += count
			return
		}
		for count > 0 {
			px, py := pos%w, pos/w
			run := w - px
			if run > count {
				run = count
			}
			s.DrawFastHLine(x+px, y+py, run, c)
			pos += run
			count -= run
		}
	})
}
