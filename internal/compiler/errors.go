package compiler

import (
	"errors"
	"fmt"
)

// ErrorKind classifies a CompileError.
type ErrorKind int

const (
	KindUnknownType ErrorKind = iota + 1
	KindInvalidLengthPrefixWidth
	KindInvalidFixedArraySpec
	KindInvalidFrequencyClass
	KindInvalidFrequencyNumber
	KindInvalidQuantity
	KindDuplicateSymbol
)

// Sentinels matched by errors.Is against a CompileError of the same kind.
var (
	ErrUnknownType              = errors.New("unknown type")
	ErrInvalidLengthPrefixWidth = errors.New("invalid length prefix width")
	ErrInvalidFixedArraySpec    = errors.New("invalid fixed array spec")
	ErrInvalidFrequencyClass    = errors.New("invalid frequency class")
	ErrInvalidFrequencyNumber   = errors.New("invalid frequency number")
	ErrInvalidQuantity          = errors.New("invalid block quantity")
	ErrDuplicateSymbol          = errors.New("duplicate generated symbol")
)

var kinds = map[ErrorKind]struct {
	name     string
	sentinel error
}{
	KindUnknownType:              {"UnknownType", ErrUnknownType},
	KindInvalidLengthPrefixWidth: {"InvalidLengthPrefixWidth", ErrInvalidLengthPrefixWidth},
	KindInvalidFixedArraySpec:    {"InvalidFixedArraySpec", ErrInvalidFixedArraySpec},
	KindInvalidFrequencyClass:    {"InvalidFrequencyClass", ErrInvalidFrequencyClass},
	KindInvalidFrequencyNumber:   {"InvalidFrequencyNumber", ErrInvalidFrequencyNumber},
	KindInvalidQuantity:          {"InvalidQuantity", ErrInvalidQuantity},
	KindDuplicateSymbol:          {"DuplicateSymbol", ErrDuplicateSymbol},
}

func (k ErrorKind) String() string {
	if info, ok := kinds[k]; ok {
		return info.name
	}
	return fmt.Sprintf("ErrorKind(%d)", int(k))
}

// CompileError is a fatal schema error. Path locates the offending element
// as Message.Block.Field.
type CompileError struct {
	Kind    ErrorKind
	Path    string
	Message string
}

func (e *CompileError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("%s: %s: %s", e.Path, e.Kind, e.Message)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *CompileError) Unwrap() error {
	return kinds[e.Kind].sentinel
}

// at returns a copy of err located at path when err is a CompileError
// without a path of its own.
func at(err error, path string) error {
	var ce *CompileError
	if errors.As(err, &ce) && ce.Path == "" {
		located := *ce
		located.Path = path
		return &located
	}
	return err
}
