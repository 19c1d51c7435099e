package bitmap

import (
	"image"
	"image/color"
)

// opaque is the alpha level above which a pixel contributes to the image
// and its mask.
const opaque = 128

// FromImage converts m to a packed bitmap and an opacity mask. A pixel of
// the image is on when it is opaque and its gray level exceeds threshold;
// a pixel of the mask is on when it is opaque. The image height must be a
// multiple of 8.
func FromImage(m image.Image, threshold uint8) (*Bitmap, *Bitmap, error) {
	bounds := m.Bounds()
	width, height := bounds.Dx(), bounds.Dy()

	img, err := New(width, height)
	if err != nil {
		return nil, nil, err
	}
	mask, err := New(width, height)
	if err != nil {
		return nil, nil, err
	}

	for y := 0; y < height; y++ {
		page := y / 8
		bit := byte(1) << (y % 8)
		for x := 0; x < width; x++ {
			c := m.At(bounds.Min.X+x, bounds.Min.Y+y)
			_, _, _, a := c.RGBA()
			if a>>8 <= opaque {
				continue
			}
			mask.data[page*width+x] |= bit
			if color.GrayModel.Convert(c).(color.Gray).Y > threshold {
				img.data[page*width+x] |= bit
			}
		}
	}

	return img, mask, nil
}
