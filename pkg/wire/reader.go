package wire

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"math"
)

// Reader decodes values from an io.Reader using the wire format.
type Reader struct {
	reader io.Reader
	tmp    [8]byte
	err    error
}

// NewReader returns a Reader that reads from r.
func NewReader(r io.Reader) *Reader {
	return &Reader{reader: r}
}

// Error returns the first error encountered by r.
func (r *Reader) Error() error {
	return r.err
}

// Data fills p from the stream.
func (r *Reader) Data(p []byte) {
	if r.err != nil {
		return
	}
	if _, err := io.ReadFull(r.reader, p); err != nil {
		if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
			err = fmt.Errorf("%w: %w", ErrTruncated, err)
		}
		r.err = err
	}
}

func (r *Reader) fill(n int) []byte {
	b := r.tmp[:n]
	r.Data(b)
	if r.err != nil {
		clear(b)
	}
	return b
}

// Bool reads one byte; only 1 decodes as true.
func (r *Reader) Bool() bool {
	return r.Uint8() == 1
}

func (r *Reader) Uint8() uint8 {
	return r.fill(1)[0]
}

func (r *Reader) Int8() int8 {
	return int8(r.Uint8())
}

func (r *Reader) Uint16() uint16 {
	return binary.LittleEndian.Uint16(r.fill(2))
}

func (r *Reader) Int16() int16 {
	return int16(r.Uint16())
}

func (r *Reader) Uint32() uint32 {
	return binary.LittleEndian.Uint32(r.fill(4))
}

func (r *Reader) Int32() int32 {
	return int32(r.Uint32())
}

func (r *Reader) Uint64() uint64 {
	return binary.LittleEndian.Uint64(r.fill(8))
}

func (r *Reader) Int64() int64 {
	return int64(r.Uint64())
}

func (r *Reader) Float32() float32 {
	return math.Float32frombits(r.Uint32())
}

func (r *Reader) Float64() float64 {
	return math.Float64frombits(r.Uint64())
}

func (r *Reader) UUID() UUID {
	var v UUID
	r.Data(v[:])
	if r.err != nil {
		return UUID{}
	}
	return v
}

func (r *Reader) IPAddr() IPAddr {
	var v IPAddr
	r.Data(v[:])
	if r.err != nil {
		return IPAddr{}
	}
	return v
}

func (r *Reader) IPPort() IPPort {
	return r.Uint16()
}

func (r *Reader) Vector3() Vector3 {
	return Vector3{X: r.Float32(), Y: r.Float32(), Z: r.Float32()}
}

func (r *Reader) Vector3d() Vector3d {
	return Vector3d{X: r.Float64(), Y: r.Float64(), Z: r.Float64()}
}

func (r *Reader) Vector4() Vector4 {
	return Vector4{X: r.Float32(), Y: r.Float32(), Z: r.Float32(), W: r.Float32()}
}

// Quaternion reads the X, Y and Z components. W is not on the wire and is
// always 1.
// TODO: derive W from unit-norm completion once the format owner confirms
// senders always transmit unit quaternions.
func (r *Reader) Quaternion() Quaternion {
	return Quaternion{X: r.Float32(), Y: r.Float32(), Z: r.Float32(), W: 1}
}

// Bytes8 reads a buffer with a one byte length prefix. An empty buffer
// decodes as nil.
func (r *Reader) Bytes8() []byte {
	return r.bytes(int(r.Uint8()))
}

// Bytes16 reads a buffer with a two byte length prefix. An empty buffer
// decodes as nil.
func (r *Reader) Bytes16() []byte {
	return r.bytes(int(r.Uint16()))
}

func (r *Reader) bytes(n int) []byte {
	if r.err != nil || n == 0 {
		return nil
	}
	p := make([]byte, n)
	r.Data(p)
	if r.err != nil {
		return nil
	}
	return p
}

// Count reads the one byte instance count of a Variable block.
func (r *Reader) Count() int {
	return int(r.Uint8())
}

// MessageNumber reads the identifier bytes that follow the packet header.
// A leading 0xFF announces a second byte, and 0xFF 0xFF two more. The bytes
// read are returned big-endian, zero padded to 32 bits.
func (r *Reader) MessageNumber() uint32 {
	var id [4]byte
	r.Data(id[:1])
	if r.err == nil && id[0] == 0xff {
		r.Data(id[1:2])
		if r.err == nil && id[1] == 0xff {
			r.Data(id[2:4])
		}
	}
	if r.err != nil {
		return 0
	}
	return binary.BigEndian.Uint32(id[:])
}
