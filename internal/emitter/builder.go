package emitter

import (
	"bytes"
	"fmt"
)

// CodeBuilder accumulates indented Go source.
type CodeBuilder struct {
	buf    bytes.Buffer
	indent int
}

// P writes one line at the current indentation. An empty format writes a
// blank line.
func (b *CodeBuilder) P(format string, args ...any) {
	if format == "" {
		b.buf.WriteByte('\n')
		return
	}
	for i := 0; i < b.indent; i++ {
		b.buf.WriteByte('\t')
	}
	fmt.Fprintf(&b.buf, format, args...)
	b.buf.WriteByte('\n')
}

// Doc writes text as line comments.
func (b *CodeBuilder) Doc(text string) {
	for _, line := range splitLines(text) {
		if line == "" {
			b.P("//")
			continue
		}
		b.P("// %s", line)
	}
}

func (b *CodeBuilder) In()  { b.indent++ }
func (b *CodeBuilder) Out() { b.indent-- }

func (b *CodeBuilder) String() string {
	return b.buf.String()
}
