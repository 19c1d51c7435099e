package main

import (
	"image"
	"image/color"

	"github.com/ericpauley/go-quantize/quantize"
	"github.com/makeworld-the-better-one/dither/v2"
)

// ditherImage converts m to pure black and white with Floyd-Steinberg
// error diffusion.
func ditherImage(m image.Image) image.Image {
	d := dither.NewDitherer([]color.Color{color.Black, color.White})
	d.Matrix = dither.FloydSteinberg
	return d.Dither(m)
}

// autoThreshold picks the gray level separating the image's two dominant
// colours, found by median cut quantization, so that dark artwork on a
// dark background still splits sensibly.
func autoThreshold(m image.Image) uint8 {
	q := quantize.MedianCutQuantizer{}
	p := q.Quantize(make(color.Palette, 0, 2), m)
	if len(p) < 2 {
		return 128
	}

	g0 := color.GrayModel.Convert(p[0]).(color.Gray).Y
	g1 := color.GrayModel.Convert(p[1]).(color.Gray).Y
	return uint8((int(g0) + int(g1)) / 2)
}
