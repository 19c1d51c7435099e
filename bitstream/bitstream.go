/*
Package bitstream implements sequential least-significant-bit-first access
to a stream of bits packed into bytes.

Bit 0 of the first byte is the first bit of the stream. A Reader refills
its working byte one source byte at a time; a Writer accumulates bits into
a working byte and emits each completed byte to the underlying io.Writer
in stream order.
*/
package bitstream

import "io"

// Reader reads bits from an in-memory byte slice. It performs no bounds
// checking; the caller must only read as many bits as the stream contains.
type Reader struct {
	src  []byte
	pos  int
	cur  byte
	mask byte
}

// NewReader returns a Reader positioned at the first bit of src.
func NewReader(src []byte) *Reader {
	return &Reader{src: src}
}

// ReadBits reads the next n bits and returns them as an unsigned integer
// with the first bit read in bit 0.
func (r *Reader) ReadBits(n uint) uint32 {
	var v uint32
	for i := uint(0); i < n; i++ {
		if r.mask == 0 {
			r.mask = 0x01
			r.cur = r.src[r.pos]
			r.pos++
		}
		if r.cur&r.mask != 0 {
			v |= 1 << i
		}
		r.mask <<= 1
	}
	return v
}

// Writer writes bits to an io.Writer. Errors from the underlying writer
// are sticky; once a write fails all further operations return the same
// error.
type Writer struct {
	w    io.Writer
	cur  byte
	mask byte
	err  error
}

// NewWriter returns a Writer emitting completed bytes to w.
func NewWriter(w io.Writer) *Writer {
	return &Writer{w: w, mask: 0x01}
}

// WriteBit writes a single bit; any non-zero v writes a 1 bit.
func (w *Writer) WriteBit(v uint32) error {
	if w.err != nil {
		return w.err
	}
	if v != 0 {
		w.cur |= w.mask
	}
	w.mask <<= 1
	if w.mask == 0 {
		if _, err := w.w.Write([]byte{w.cur}); err != nil {
			w.err = err
			return err
		}
		w.cur = 0
		w.mask = 0x01
	}
	return nil
}

// WriteBits writes the low n bits of v, least significant bit first.
func (w *Writer) WriteBits(v uint32, n uint) error {
	for i := uint(0); i < n; i++ {
		if err := w.WriteBit(v & (1 << i)); err != nil {
			return err
		}
	}
	return nil
}

// Flush pads any partially filled byte with 0 bits and writes it out.
// Flushing on a byte boundary writes nothing.
func (w *Writer) Flush() error {
	for w.mask != 0x01 {
		if err := w.WriteBit(0); err != nil {
			return err
		}
	}
	return w.err
}
