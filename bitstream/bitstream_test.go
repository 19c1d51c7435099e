package bitstream

import (
	"bytes"
	"errors"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriterLSBFirst(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(&buf)

	// 1,0,1 then 1: bits 0, 2 and 3 of the first byte.
	require.NoError(t, w.WriteBits(0x5, 3))
	require.NoError(t, w.WriteBit(1))
	require.NoError(t, w.Flush())

	assert.Equal(t, []byte{0x0d}, buf.Bytes())
}

func TestWriterSpansBytes(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(&buf)

	require.NoError(t, w.WriteBits(0x07, 8))
	require.NoError(t, w.WriteBits(0x1ff, 9))
	require.NoError(t, w.Flush())

	assert.Equal(t, []byte{0x07, 0xff, 0x01}, buf.Bytes())
}

func TestWriterFlushOnByteBoundary(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(&buf)

	require.NoError(t, w.WriteBits(0xa5, 8))
	require.NoError(t, w.Flush())
	require.NoError(t, w.Flush())

	assert.Equal(t, []byte{0xa5}, buf.Bytes())
}

func TestReaderLSBFirst(t *testing.T) {
	r := NewReader([]byte{0x07, 0x07, 0xf1, 0x07})

	assert.Equal(t, uint32(7), r.ReadBits(8))
	assert.Equal(t, uint32(7), r.ReadBits(8))
	assert.Equal(t, uint32(1), r.ReadBits(1))
	assert.Equal(t, uint32(0), r.ReadBits(3))
	assert.Equal(t, uint32(1), r.ReadBits(1))
	assert.Equal(t, uint32(63), r.ReadBits(7))
}

func TestRoundTrip(t *testing.T) {
	rnd := rand.New(rand.NewSource(1))

	type field struct {
		v uint32
		n uint
	}

	var fields []field
	for i := 0; i < 200; i++ {
		n := uint(1 + rnd.Intn(17))
		fields = append(fields, field{v: rnd.Uint32() & (1<<n - 1), n: n})
	}

	var buf bytes.Buffer
	w := NewWriter(&buf)
	for _, f := range fields {
		require.NoError(t, w.WriteBits(f.v, f.n))
	}
	require.NoError(t, w.Flush())

	r := NewReader(buf.Bytes())
	for i, f := range fields {
		assert.Equal(t, f.v, r.ReadBits(f.n), "field %d", i)
	}
}

type failWriter struct{}

func (failWriter) Write([]byte) (int, error) {
	return 0, errors.New("broken")
}

func TestWriterStickyError(t *testing.T) {
	w := NewWriter(failWriter{})

	err := w.WriteBits(0xff, 8)
	require.Error(t, err)
	assert.Equal(t, err, w.WriteBit(1))
	assert.Equal(t, err, w.Flush())
}
