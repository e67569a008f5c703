package wire

import (
	"encoding/binary"
	"io"
	"math"
)

// MaxBlockCount is the largest number of instances a Variable block can
// carry in its one byte count prefix.
const MaxBlockCount = math.MaxUint8

// Writer encodes values to an io.Writer using the wire format.
type Writer struct {
	writer io.Writer
	tmp    [8]byte
	err    error
}

// NewWriter returns a Writer that writes to w.
func NewWriter(w io.Writer) *Writer {
	return &Writer{writer: w}
}

// Error returns the first error encountered by w.
func (w *Writer) Error() error {
	return w.err
}

func (w *Writer) fail(err error) {
	if w.err == nil {
		w.err = err
	}
}

// Data writes p verbatim.
func (w *Writer) Data(p []byte) {
	if w.err != nil {
		return
	}
	n, err := w.writer.Write(p)
	if err != nil {
		w.err = err
	} else if n != len(p) {
		w.err = io.ErrShortWrite
	}
}

func (w *Writer) Bool(v bool) {
	if v {
		w.Uint8(1)
	} else {
		w.Uint8(0)
	}
}

func (w *Writer) Uint8(v uint8) {
	w.tmp[0] = v
	w.Data(w.tmp[:1])
}

func (w *Writer) Int8(v int8) {
	w.Uint8(uint8(v))
}

func (w *Writer) Uint16(v uint16) {
	binary.LittleEndian.PutUint16(w.tmp[:2], v)
	w.Data(w.tmp[:2])
}

func (w *Writer) Int16(v int16) {
	w.Uint16(uint16(v))
}

func (w *Writer) Uint32(v uint32) {
	binary.LittleEndian.PutUint32(w.tmp[:4], v)
	w.Data(w.tmp[:4])
}

func (w *Writer) Int32(v int32) {
	w.Uint32(uint32(v))
}

func (w *Writer) Uint64(v uint64) {
	binary.LittleEndian.PutUint64(w.tmp[:8], v)
	w.Data(w.tmp[:8])
}

func (w *Writer) Int64(v int64) {
	w.Uint64(uint64(v))
}

func (w *Writer) Float32(v float32) {
	w.Uint32(math.Float32bits(v))
}

func (w *Writer) Float64(v float64) {
	w.Uint64(math.Float64bits(v))
}

func (w *Writer) UUID(v UUID) {
	w.Data(v[:])
}

// IPAddr writes the 4 bytes of an IPv4 address.
func (w *Writer) IPAddr(v IPAddr) {
	w.Data(v[:])
}

func (w *Writer) IPPort(v IPPort) {
	w.Uint16(v)
}

func (w *Writer) Vector3(v Vector3) {
	w.Float32(v.X)
	w.Float32(v.Y)
	w.Float32(v.Z)
}

func (w *Writer) Vector3d(v Vector3d) {
	w.Float64(v.X)
	w.Float64(v.Y)
	w.Float64(v.Z)
}

func (w *Writer) Vector4(v Vector4) {
	w.Float32(v.X)
	w.Float32(v.Y)
	w.Float32(v.Z)
	w.Float32(v.W)
}

// Quaternion normalises v and writes its X, Y and Z components.
func (w *Writer) Quaternion(v Quaternion) {
	n := v.Normalize()
	w.Float32(n.X)
	w.Float32(n.Y)
	w.Float32(n.Z)
}

// Bytes8 writes p with a one byte length prefix.
func (w *Writer) Bytes8(p []byte) {
	if len(p) > math.MaxUint8 {
		w.fail(&CountOverflowError{Count: len(p), Max: math.MaxUint8})
		return
	}
	w.Uint8(uint8(len(p)))
	w.Data(p)
}

// Bytes16 writes p with a two byte length prefix.
func (w *Writer) Bytes16(p []byte) {
	if len(p) > math.MaxUint16 {
		w.fail(&CountOverflowError{Count: len(p), Max: math.MaxUint16})
		return
	}
	w.Uint16(uint16(len(p)))
	w.Data(p)
}

// Count writes the one byte instance count of a Variable block.
func (w *Writer) Count(n int) {
	if n < 0 || n > MaxBlockCount {
		w.fail(&CountOverflowError{Count: n, Max: MaxBlockCount})
		return
	}
	w.Uint8(uint8(n))
}
