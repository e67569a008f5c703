// Package wire is the runtime imported by code that msgc generates.
//
// All multi-byte scalars are little-endian. Booleans are a single byte where
// 1 is true. UUIDs are 16 raw bytes, IPv4 addresses 4 raw bytes and ports a
// 16 bit value. Vectors are consecutive floats per component; quaternions
// carry only X, Y and Z of the normalised value and decode with W = 1.
// Variable length byte buffers have a 1 or 2 byte length prefix, fixed size
// byte arrays have none. Variable blocks are preceded by a 1 byte count.
//
// Reader and Writer keep the first error they encounter and turn every
// subsequent call into a no-op, so generated code checks Error once per
// block rather than after every field.
package wire
