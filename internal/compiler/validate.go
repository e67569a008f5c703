package compiler

import "fmt"

// Lint codes (E200-E299). Compile accepts these programs; Validate reports
// what is likely a schema mistake.
const (
	ErrDuplicateMessageNumber = "E201" // two messages share a dispatch number
	ErrSentinelNumber         = "E202" // High/Medium number 255 reads as the next class
	ErrNumberTruncated        = "E203" // number has bits the identifier drops
	ErrUnknownFlag            = "E204" // flag not recognized
	ErrEmptyBlock             = "E205" // block without fields
)

// Severity levels of a ValidationError.
const (
	SeverityError   = "error"
	SeverityWarning = "warning"
)

var knownFlags = map[string]bool{
	"Deprecated":     true,
	"UDPDeprecated":  true,
	"UDPBlackListed": true,
}

// ValidationError is a lint finding.
type ValidationError struct {
	Field    string `json:"field"`
	Message  string `json:"message"`
	Code     string `json:"code"`
	Severity string `json:"severity"`
}

// Error implements the error interface.
func (e ValidationError) Error() string {
	return fmt.Sprintf("[%s] %s: %s", e.Code, e.Field, e.Message)
}

// Fatal reports whether e must block code generation. Duplicate dispatch
// numbers produce a dispatch switch that does not compile, and a High or
// Medium number of 255 cannot be read back from a packet.
func (e ValidationError) Fatal() bool {
	return e.Severity == SeverityError
}

// Validate lints a compiled program.
// Returns all findings (does not fail-fast).
func Validate(p *Program) []ValidationError {
	var errs []ValidationError
	numbers := map[uint32]string{}

	for _, m := range p.Messages {
		number := m.MessageNumber()
		if prev, ok := numbers[number]; ok {
			errs = append(errs, ValidationError{
				Field:    m.Name,
				Message:  fmt.Sprintf("message number 0x%08x already used by %s", number, prev),
				Code:     ErrDuplicateMessageNumber,
				Severity: SeverityError,
			})
		} else {
			numbers[number] = m.Name
		}

		errs = append(errs, validateNumber(m)...)

		for _, flag := range m.Flags {
			if !knownFlags[flag] {
				errs = append(errs, ValidationError{
					Field:    m.Name,
					Message:  fmt.Sprintf("unknown flag %q", flag),
					Code:     ErrUnknownFlag,
					Severity: SeverityWarning,
				})
			}
		}

		for _, b := range m.Blocks {
			if len(b.Fields) == 0 {
				errs = append(errs, ValidationError{
					Field:    m.Name + "." + b.Name,
					Message:  "block has no fields",
					Code:     ErrEmptyBlock,
					Severity: SeverityWarning,
				})
			}
		}
	}
	return errs
}

func validateNumber(m *Message) []ValidationError {
	warn := func(code, msg string) []ValidationError {
		return []ValidationError{{Field: m.Name, Message: msg, Code: code, Severity: SeverityWarning}}
	}
	fail := func(code, msg string) []ValidationError {
		return []ValidationError{{Field: m.Name, Message: msg, Code: code, Severity: SeverityError}}
	}

	switch m.Frequency {
	case FrequencyHigh, FrequencyMedium:
		if m.Number > 0xff {
			return warn(ErrNumberTruncated, fmt.Sprintf("%s number %d does not fit in one byte", m.Frequency, m.Number))
		}
		if m.Number == 0xff {
			return fail(ErrSentinelNumber, fmt.Sprintf("%s number 255 is the escape byte of the next frequency class", m.Frequency))
		}
	case FrequencyLow:
		if m.Number > 0xffff {
			return warn(ErrNumberTruncated, fmt.Sprintf("Low number %d does not fit in two bytes", m.Number))
		}
	case FrequencyFixed:
		if upper := m.Number >> 8; upper != 0 && upper != 0xffffff {
			return warn(ErrNumberTruncated, fmt.Sprintf("Fixed number 0x%08x must start with 0xffffff", m.Number))
		}
	}
	return nil
}
