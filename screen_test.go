package monogfx

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newScreen(t *testing.T) *Screen {
	t.Helper()
	s, err := New(DefaultWidth, DefaultHeight)
	require.NoError(t, err)
	return s
}

func snapshot(s *Screen) []byte {
	return append([]byte(nil), s.Buffer()...)
}

func TestNew(t *testing.T) {
	s := newScreen(t)
	assert.Equal(t, 128, s.Width())
	assert.Equal(t, 64, s.Height())
	assert.Len(t, s.Buffer(), 1024)

	_, err := New(128, 60)
	assert.Error(t, err)
	_, err = New(0, 64)
	assert.Error(t, err)
}

func TestDrawPixel(t *testing.T) {
	s := newScreen(t)

	s.DrawPixel(3, 10, White)
	assert.Equal(t, byte(0x04), s.Buffer()[128+3])
	assert.Equal(t, uint8(1), s.GetPixel(3, 10))

	s.DrawPixel(3, 10, Black)
	assert.Equal(t, byte(0x00), s.Buffer()[128+3])
	assert.Equal(t, uint8(0), s.GetPixel(3, 10))
}

func TestDrawPixelClips(t *testing.T) {
	s := newScreen(t)
	before := snapshot(s)

	s.DrawPixel(-1, 0, White)
	s.DrawPixel(0, -1, White)
	s.DrawPixel(128, 0, White)
	s.DrawPixel(0, 64, White)

	assert.Equal(t, before, s.Buffer())
	assert.Equal(t, uint8(0), s.GetPixel(-1, -1))
}

func TestFillScreen(t *testing.T) {
	s := newScreen(t)

	s.FillScreen(White)
	for _, b := range s.Buffer() {
		require.Equal(t, byte(0xff), b)
	}

	s.Clear()
	for _, b := range s.Buffer() {
		require.Equal(t, byte(0x00), b)
	}
}

func TestBitmapViewSharesBuffer(t *testing.T) {
	s := newScreen(t)
	v := s.Bitmap()

	s.DrawPixel(5, 9, White)
	assert.Equal(t, uint8(1), v.At(5, 9))
	assert.Equal(t, byte(0x02), v.ByteAt(5, 1))
}
