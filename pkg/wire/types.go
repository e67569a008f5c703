package wire

import (
	"fmt"
	"math"
	"net/netip"

	"github.com/google/uuid"
)

// UUID is a 128 bit identifier, 16 raw bytes on the wire.
type UUID = uuid.UUID

// IPAddr is an IPv4 address in network byte order, 4 raw bytes on the wire.
// The zero value is 0.0.0.0.
type IPAddr [4]byte

// IPAddrFrom converts addr to an IPAddr. IPv4-mapped IPv6 addresses are
// unmapped; any other address, including the zero netip.Addr, is rejected
// with ErrNotIPv4.
func IPAddrFrom(addr netip.Addr) (IPAddr, error) {
	addr = addr.Unmap()
	if !addr.Is4() {
		return IPAddr{}, fmt.Errorf("%w: %s", ErrNotIPv4, addr)
	}
	return addr.As4(), nil
}

// ParseIPAddr parses a dotted IPv4 address.
func ParseIPAddr(s string) (IPAddr, error) {
	addr, err := netip.ParseAddr(s)
	if err != nil {
		return IPAddr{}, err
	}
	return IPAddrFrom(addr)
}

// Addr returns a as a netip.Addr.
func (a IPAddr) Addr() netip.Addr {
	return netip.AddrFrom4(a)
}

func (a IPAddr) String() string {
	return a.Addr().String()
}

// IPPort is a port number, little-endian uint16 on the wire.
type IPPort = uint16

type Vector3 struct {
	X, Y, Z float32
}

type Vector3d struct {
	X, Y, Z float64
}

type Vector4 struct {
	X, Y, Z, W float32
}

// Quaternion is a rotation. Only the vector part of its unit form is
// transmitted.
type Quaternion struct {
	X, Y, Z, W float32
}

// Identity is the quaternion with no rotation.
var Identity = Quaternion{W: 1}

// Normalize returns q scaled to unit length. The zero quaternion is returned
// unchanged.
func (q Quaternion) Normalize() Quaternion {
	x, y, z, w := float64(q.X), float64(q.Y), float64(q.Z), float64(q.W)
	n := math.Sqrt(x*x + y*y + z*z + w*w)
	if n == 0 {
		return q
	}
	return Quaternion{
		X: float32(x / n),
		Y: float32(y / n),
		Z: float32(z / n),
		W: float32(w / n),
	}
}
