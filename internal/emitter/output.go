package emitter

import (
	"bytes"
	"go/format"
	"strings"
)

// FragmentKind says which part of the generated file a Fragment holds.
type FragmentKind int

const (
	FragmentPreamble FragmentKind = iota
	FragmentEnum
	FragmentUnion
	FragmentMessage
)

func (k FragmentKind) String() string {
	switch k {
	case FragmentPreamble:
		return "preamble"
	case FragmentEnum:
		return "enum"
	case FragmentUnion:
		return "union"
	case FragmentMessage:
		return "message"
	}
	return "unknown"
}

// Fragment is one emission unit. Name is the message name for
// FragmentMessage and empty otherwise.
type Fragment struct {
	Kind   FragmentKind
	Name   string
	Source string
}

// Output is the generated file as ordered fragments: preamble, enum,
// union, then one fragment per message in schema order.
type Output struct {
	Fragments []Fragment
}

// Source concatenates the fragments as emitted, unformatted.
func (o *Output) Source() []byte {
	var buf bytes.Buffer
	for _, f := range o.Fragments {
		buf.WriteString(f.Source)
	}
	return buf.Bytes()
}

// Format returns the gofmt-formatted file.
func (o *Output) Format() ([]byte, error) {
	return format.Source(o.Source())
}

// Message returns the fragment generated for the named message.
func (o *Output) Message(name string) (Fragment, bool) {
	for _, f := range o.Fragments {
		if f.Kind == FragmentMessage && f.Name == name {
			return f, true
		}
	}
	return Fragment{}, false
}

func splitLines(text string) []string {
	text = strings.TrimRight(text, "\n")
	if text == "" {
		return nil
	}
	return strings.Split(text, "\n")
}
