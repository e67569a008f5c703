package cli

import (
	"errors"
	"fmt"

	"github.com/roach88/msgc/internal/compiler"
	"github.com/roach88/msgc/internal/loader"
)

// Error codes for load and I/O failures. E001-E006 and E008 come from the
// loader.
const (
	ErrCodeGeneric     = loader.ErrCodeGeneric
	ErrCodeNotFound    = loader.ErrCodeNotFound
	ErrCodeWriteFailed = "E007" // File write error
)

// Error codes for compile failures, one per compiler.ErrorKind.
const (
	ErrCodeUnknownType              = "E101"
	ErrCodeInvalidLengthPrefixWidth = "E102"
	ErrCodeInvalidFixedArraySpec    = "E103"
	ErrCodeInvalidFrequencyClass    = "E104"
	ErrCodeInvalidFrequencyNumber   = "E105"
	ErrCodeInvalidQuantity          = "E106"
	ErrCodeDuplicateSymbol          = "E107"
)

var compileCodes = map[compiler.ErrorKind]string{
	compiler.KindUnknownType:              ErrCodeUnknownType,
	compiler.KindInvalidLengthPrefixWidth: ErrCodeInvalidLengthPrefixWidth,
	compiler.KindInvalidFixedArraySpec:    ErrCodeInvalidFixedArraySpec,
	compiler.KindInvalidFrequencyClass:    ErrCodeInvalidFrequencyClass,
	compiler.KindInvalidFrequencyNumber:   ErrCodeInvalidFrequencyNumber,
	compiler.KindInvalidQuantity:          ErrCodeInvalidQuantity,
	compiler.KindDuplicateSymbol:          ErrCodeDuplicateSymbol,
}

// Problem is one load or compile error in command output.
type Problem struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	File    string `json:"file,omitempty"`
	Line    int    `json:"line,omitempty"`
	Column  int    `json:"column,omitempty"`
	Path    string `json:"path,omitempty"`
}

// problems flattens err (including errors.Join trees) into Problems.
func problems(errs ...error) []Problem {
	var out []Problem
	for _, err := range errs {
		if joined, ok := err.(interface{ Unwrap() []error }); ok {
			out = append(out, problems(joined.Unwrap()...)...)
			continue
		}
		out = append(out, problem(err))
	}
	return out
}

func problem(err error) Problem {
	var loadErr *loader.LoadError
	if errors.As(err, &loadErr) {
		return Problem{
			Code:    loadErr.Code,
			Message: loadErr.Message,
			File:    loadErr.File,
			Line:    loadErr.Line,
			Column:  loadErr.Column,
		}
	}
	var compileErr *compiler.CompileError
	if errors.As(err, &compileErr) {
		code, ok := compileCodes[compileErr.Kind]
		if !ok {
			code = ErrCodeGeneric
		}
		return Problem{Code: code, Message: compileErr.Message, Path: compileErr.Path}
	}
	return Problem{Code: ErrCodeGeneric, Message: err.Error()}
}

// String renders p as a single diagnostic line.
func (p Problem) String() string {
	loc := p.Path
	switch {
	case p.File != "" && p.Line > 0 && p.Column > 0:
		loc = fmt.Sprintf("%s:%d:%d", p.File, p.Line, p.Column)
	case p.File != "" && p.Line > 0:
		loc = fmt.Sprintf("%s:%d", p.File, p.Line)
	case p.File != "":
		loc = p.File
	}
	if loc == "" {
		return fmt.Sprintf("%s: %s", p.Code, p.Message)
	}
	return fmt.Sprintf("%s: %s: %s", loc, p.Code, p.Message)
}
