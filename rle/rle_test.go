package rle

import (
	"bytes"
	"fmt"
	"math/rand"
	"testing"

	"github.com/bodgit/monogfx/bitmap"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func solidBitmap(t *testing.T, width, height int, fill byte) *bitmap.Bitmap {
	t.Helper()
	data := make([]byte, width*height/8)
	for i := range data {
		data[i] = fill
	}
	b, err := bitmap.FromBytes(width, height, data)
	require.NoError(t, err)
	return b
}

func randomBitmap(t *testing.T, rnd *rand.Rand) *bitmap.Bitmap {
	t.Helper()
	width, height := 1+rnd.Intn(64), 8*(1+rnd.Intn(8))
	data := make([]byte, width*height/8)
	rnd.Read(data)
	b, err := bitmap.FromBytes(width, height, data)
	require.NoError(t, err)
	return b
}

func TestEncodeKnownVector(t *testing.T) {
	// An 8x8 all-white image: 0x07 0x07 headers, a starting colour of 1
	// and a single span of 64 pixels.
	var buf bytes.Buffer
	require.NoError(t, Encode(&buf, solidBitmap(t, 8, 8, 0xff)))
	assert.Equal(t, []byte{0x07, 0x07, 0xf1, 0x07}, buf.Bytes())
}

func TestEncodeKnownVectorBlack(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Encode(&buf, solidBitmap(t, 8, 8, 0x00)))
	assert.Equal(t, []byte{0x07, 0x07, 0xf0, 0x07}, buf.Bytes())
}

func TestEncodeTooBig(t *testing.T) {
	b, err := bitmap.FromBytes(300, 8, make([]byte, 300))
	require.NoError(t, err)
	assert.Error(t, Encode(&bytes.Buffer{}, b))
}

func TestDecodeConfig(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Encode(&buf, solidBitmap(t, 24, 16, 0xff)))

	width, height := DecodeConfig(buf.Bytes())
	assert.Equal(t, 24, width)
	assert.Equal(t, 16, height)
}

func TestUniformImageIsOneSpan(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Encode(&buf, solidBitmap(t, 16, 16, 0xff)))

	var spans int
	Decode(buf.Bytes(), func(colour uint8, count int) {
		spans++
		assert.Equal(t, uint8(1), colour)
		assert.Equal(t, 256, count)
	})
	assert.Equal(t, 1, spans)
}

func TestSpanInvariants(t *testing.T) {
	rnd := rand.New(rand.NewSource(2))

	for i := 0; i < 20; i++ {
		b := randomBitmap(t, rnd)
		var buf bytes.Buffer
		require.NoError(t, Encode(&buf, b))

		total := 0
		next := b.At(0, 0)
		Decode(buf.Bytes(), func(colour uint8, count int) {
			assert.Equal(t, next, colour)
			assert.GreaterOrEqual(t, count, 1)
			next ^= 1
			total += count
		})
		assert.Equal(t, b.Width()*b.Height(), total)
	}
}

func TestRoundTrip(t *testing.T) {
	rnd := rand.New(rand.NewSource(3))

	for i := 0; i < 30; i++ {
		b := randomBitmap(t, rnd)
		t.Run(fmt.Sprintf("test %d: %s", i, b), func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, Encode(&buf, b))

			d, err := DecodeBitmap(buf.Bytes())
			require.NoError(t, err)

			assert.Equal(t, b.Width(), d.Width())
			assert.Equal(t, b.Height(), d.Height())
			assert.Equal(t, b.Data(), d.Data())
		})
	}
}

func TestRoundTripRasterPattern(t *testing.T) {
	// A pattern that exercises runs crossing row and page boundaries.
	src := make([]byte, 32)
	for x := 0; x < 16; x++ {
		src[x] = 0x0f // rows 0..3 of page 0
		if x%2 == 0 {
			src[16+x] = 0xf0 // rows 12..15, alternate columns
		}
	}
	b, err := bitmap.FromBytes(16, 16, src)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, Encode(&buf, b))
	d, err := DecodeBitmap(buf.Bytes())
	require.NoError(t, err)
	assert.Equal(t, b.Data(), d.Data())
}

func TestSmallestLengthClass(t *testing.T) {
	// A single white pixel on a 1x8 column: the one-pixel span must use
	// the one-bit length class, so the whole stream fits in three bytes.
	b, err := bitmap.FromBytes(1, 8, []byte{0x01})
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, Encode(&buf, b))
	// 16 header bits, the colour bit, 2 bits for the length-1 span and 5
	// for the length-7 span: 24 bits exactly.
	assert.Len(t, buf.Bytes(), 3)

	d, err := DecodeBitmap(buf.Bytes())
	require.NoError(t, err)
	assert.Equal(t, b.Data(), d.Data())
}
