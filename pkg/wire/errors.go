package wire

import (
	"errors"
	"fmt"
)

var (
	ErrTruncated            = errors.New("wire: truncated data")
	ErrCountOverflow        = errors.New("wire: count exceeds prefix capacity")
	ErrNotIPv4              = errors.New("wire: address is not IPv4")
	ErrUnknownMessageNumber = errors.New("wire: unknown message number")
)

// CountOverflowError reports a sequence or buffer that does not fit the
// width of its count prefix.
type CountOverflowError struct {
	Count int
	Max   int
}

func (e *CountOverflowError) Error() string {
	return fmt.Sprintf("wire: count %d exceeds maximum %d", e.Count, e.Max)
}

func (e *CountOverflowError) Is(target error) bool {
	return target == ErrCountOverflow
}

// UnknownMessageNumberError is returned by generated dispatch code when no
// message is registered under Number.
type UnknownMessageNumberError struct {
	Number uint32
}

func (e *UnknownMessageNumberError) Error() string {
	return fmt.Sprintf("wire: unknown message number 0x%08x", e.Number)
}

func (e *UnknownMessageNumberError) Is(target error) bool {
	return target == ErrUnknownMessageNumber
}
