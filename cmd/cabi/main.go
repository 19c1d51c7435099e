package main

import (
	"bytes"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"log"
	"os"

	"github.com/bodgit/monogfx/bitmap"
	"github.com/bodgit/monogfx/rle"
	"github.com/urfave/cli/v2"
	_ "golang.org/x/image/bmp"
)

const defaultPrefix = "compressed_image"

func init() {
	cli.VersionFlag = &cli.BoolFlag{
		Name:    "version",
		Aliases: []string{"V"},
		Usage:   "print the version",
	}
}

func main() {
	app := cli.NewApp()

	app.Name = "cabi"
	app.Usage = "Compressed monochrome bitmap image encoder"
	app.Version = "1.0.0"

	app.Flags = []cli.Flag{
		&cli.BoolFlag{
			Name:    "verbose",
			Aliases: []string{"v"},
			Usage:   "increase verbosity",
		},
	}

	app.Commands = []*cli.Command{
		{
			Name:        "encode",
			Usage:       "Encode an image as compressed byte arrays",
			Description: "Reads an image file, derives the 1-bit image and its opacity mask,\nand writes both as named compressed byte arrays to standard output.",
			ArgsUsage:   "FILE [PREFIX]",
			Flags: []cli.Flag{
				&cli.IntFlag{
					Name:    "threshold",
					Aliases: []string{"t"},
					Value:   128,
					Usage:   "gray level above which a pixel is on",
				},
				&cli.BoolFlag{
					Name:  "auto",
					Usage: "derive the threshold from the image by median cut",
				},
				&cli.BoolFlag{
					Name:  "dither",
					Usage: "Floyd-Steinberg dither to black and white before encoding",
				},
				&cli.BoolFlag{
					Name:    "preview",
					Aliases: []string{"p"},
					Usage:   "print an ASCII rendering of the encoded image to standard error",
				},
			},
			Action: func(c *cli.Context) error {
				if c.NArg() < 1 {
					cli.ShowCommandHelpAndExit(c, c.Command.FullName(), 1)
				}

				logger := log.New(io.Discard, "", 0)
				if c.Bool("verbose") {
					logger.SetOutput(os.Stderr)
				}

				prefix := defaultPrefix
				if c.NArg() > 1 {
					prefix = c.Args().Get(1)
				}

				if err := encode(c.Args().First(), prefix, c, logger); err != nil {
					return cli.NewExitError(err, 1)
				}

				return nil
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func encode(file, prefix string, c *cli.Context, logger *log.Logger) error {
	f, err := os.Open(file)
	if err != nil {
		return err
	}
	defer f.Close()

	m, format, err := image.Decode(f)
	if err != nil {
		return fmt.Errorf("could not load %s: %w", file, err)
	}
	logger.Printf("decoded %s image %v", format, m.Bounds())

	if c.Bool("dither") {
		m = ditherImage(m)
	}

	threshold := uint8(c.Int("threshold"))
	if c.Bool("auto") {
		threshold = autoThreshold(m)
		logger.Printf("auto threshold %d", threshold)
	}

	img, mask, err := bitmap.FromImage(m, threshold)
	if err != nil {
		return err
	}

	// Compress both arrays up front so that nothing is printed when
	// either fails.
	var imgBuf, maskBuf bytes.Buffer
	if err := rle.Encode(&imgBuf, img); err != nil {
		return err
	}
	if err := rle.Encode(&maskBuf, mask); err != nil {
		return err
	}

	fmt.Printf("// %s  width: %d height: %d\n", file, img.Width(), img.Height())
	writeArray(os.Stdout, prefix, imgBuf.Bytes(), img)
	writeArray(os.Stdout, prefix+"_mask", maskBuf.Bytes(), mask)

	if c.Bool("preview") {
		preview(os.Stderr, imgBuf.Bytes())
	}

	return nil
}

// writeArray emits one compressed array as C source, the form the
// embedded build expects to include.
func writeArray(w io.Writer, name string, data []byte, b *bitmap.Bitmap) {
	fmt.Fprintf(w, "const uint8_t PROGMEM %s[] = {", name)
	for i, v := range data {
		if i > 0 {
			fmt.Fprint(w, ",")
		}
		if i%16 == 0 {
			fmt.Fprint(w, "\n")
		}
		fmt.Fprintf(w, "0x%02x", v)
	}
	fmt.Fprint(w, "\n};\n")
	fmt.Fprintf(w, "// bytes:%d ratio: %.3f\n\n", len(data),
		float64(len(data)*8)/float64(b.Width()*b.Height()))
}

// preview round-trips the compressed stream through the decoder and
// renders it as ASCII, one character per pixel.
func preview(w io.Writer, data []byte) {
	b, err := rle.DecodeBitmap(data)
	if err != nil {
		return
	}
	for y := 0; y < b.Height(); y++ {
		for x := 0; x < b.Width(); x++ {
			if b.At(x, y) != 0 {
				fmt.Fprint(w, "#")
			} else {
				fmt.Fprint(w, ".")
			}
		}
		fmt.Fprintln(w)
	}
}
