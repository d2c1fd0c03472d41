// Package wire provides the low-level byte-reader/byte-writer helpers shared
// by every codec in this module. NBT packs big-endian; SMB1/SMB2 pack
// little-endian, so both helpers take an explicit binary.ByteOrder rather
// than hard-coding one.
package wire

import "encoding/binary"

// Reader walks a byte slice field by field, tracking a read position.
type Reader struct {
	data  []byte
	pos   int
	order binary.ByteOrder
}

// NewReader creates a Reader over data using the given byte order.
func NewReader(data []byte, order binary.ByteOrder) *Reader {
	return &Reader{data: data, order: order}
}

// Len returns the total length of the underlying buffer.
func (r *Reader) Len() int { return len(r.data) }

// Remaining returns the number of unread bytes.
func (r *Reader) Remaining() int { return len(r.data) - r.pos }

// Position returns the current read offset.
func (r *Reader) Position() int { return r.pos }

// Seek sets the read offset.
func (r *Reader) Seek(pos int) { r.pos = pos }

// Skip advances the read offset by n bytes.
func (r *Reader) Skip(n int) { r.pos += n }

// ReadBytes reads n bytes and advances the position. Returns nil if n bytes
// are not available.
func (r *Reader) ReadBytes(n int) []byte {
	if n < 0 || r.pos+n > len(r.data) {
		return nil
	}
	b := r.data[r.pos : r.pos+n]
	r.pos += n
	return b
}

// ReadByte reads a single byte. Returns 0, false if no bytes remain.
func (r *Reader) ReadByte() (byte, bool) {
	if r.pos >= len(r.data) {
		return 0, false
	}
	b := r.data[r.pos]
	r.pos++
	return b, true
}

// ReadUint16 reads a 2-byte field using the Reader's byte order.
func (r *Reader) ReadUint16() (uint16, bool) {
	b := r.ReadBytes(2)
	if b == nil {
		return 0, false
	}
	return r.order.Uint16(b), true
}

// ReadUint32 reads a 4-byte field using the Reader's byte order.
func (r *Reader) ReadUint32() (uint32, bool) {
	b := r.ReadBytes(4)
	if b == nil {
		return 0, false
	}
	return r.order.Uint32(b), true
}

// ReadUint64 reads an 8-byte field using the Reader's byte order.
func (r *Reader) ReadUint64() (uint64, bool) {
	b := r.ReadBytes(8)
	if b == nil {
		return 0, false
	}
	return r.order.Uint64(b), true
}

// Writer accumulates bytes, packed using a fixed byte order.
type Writer struct {
	data  []byte
	order binary.ByteOrder
}

// NewWriter creates a Writer with the given byte order and initial capacity.
func NewWriter(order binary.ByteOrder, capacity int) *Writer {
	return &Writer{data: make([]byte, 0, capacity), order: order}
}

// Bytes returns the accumulated bytes.
func (w *Writer) Bytes() []byte { return w.data }

// Len returns the number of bytes written so far.
func (w *Writer) Len() int { return len(w.data) }

// WriteBytes appends raw bytes.
func (w *Writer) WriteBytes(b []byte) { w.data = append(w.data, b...) }

// WriteByte appends a single byte. Implements io.ByteWriter.
func (w *Writer) WriteByte(b byte) error {
	w.data = append(w.data, b)
	return nil
}

// WriteUint16 appends a 2-byte field.
func (w *Writer) WriteUint16(v uint16) {
	var buf [2]byte
	w.order.PutUint16(buf[:], v)
	w.data = append(w.data, buf[:]...)
}

// WriteUint32 appends a 4-byte field.
func (w *Writer) WriteUint32(v uint32) {
	var buf [4]byte
	w.order.PutUint32(buf[:], v)
	w.data = append(w.data, buf[:]...)
}

// WriteUint64 appends an 8-byte field.
func (w *Writer) WriteUint64(v uint64) {
	var buf [8]byte
	w.order.PutUint64(buf[:], v)
	w.data = append(w.data, buf[:]...)
}

// WriteZeros appends n zero bytes.
func (w *Writer) WriteZeros(n int) {
	for i := 0; i < n; i++ {
		w.data = append(w.data, 0)
	}
}

// SetUint16At overwrites a uint16 already written at pos (backpatching).
func (w *Writer) SetUint16At(pos int, v uint16) {
	if pos+2 <= len(w.data) {
		w.order.PutUint16(w.data[pos:], v)
	}
}

// SetUint32At overwrites a uint32 already written at pos (backpatching).
func (w *Writer) SetUint32At(pos int, v uint32) {
	if pos+4 <= len(w.data) {
		w.order.PutUint32(w.data[pos:], v)
	}
}

// AlignTo8 rounds v up to the next multiple of 8.
func AlignTo8(v int) int { return (v + 7) &^ 7 }

// PadTo8ByteBoundary returns the padding needed to align offset to 8 bytes.
func PadTo8ByteBoundary(offset int) int {
	r := offset % 8
	if r == 0 {
		return 0
	}
	return 8 - r
}
