// Package emitter renders a compiled program as Go source that encodes and
// decodes every message with the wire runtime.
package emitter

import (
	"fmt"
	"path"
	"strings"

	"github.com/roach88/msgc/internal/compiler"
)

// DefaultRuntimeImport is the import path of the wire runtime.
const DefaultRuntimeImport = "github.com/roach88/msgc/pkg/wire"

// Options configures an Emitter.
type Options struct {
	Package       string // defaults to "messages"
	RuntimeImport string // defaults to DefaultRuntimeImport
	Source        string // schema path recorded in the header, optional
}

// Emitter renders compiled programs.
type Emitter struct {
	opts Options
}

// New returns an Emitter, filling in defaults.
func New(opts Options) *Emitter {
	if opts.Package == "" {
		opts.Package = "messages"
	}
	if opts.RuntimeImport == "" {
		opts.RuntimeImport = DefaultRuntimeImport
	}
	return &Emitter{opts: opts}
}

// Emit renders p. The result is deterministic for a given program and
// options.
func (e *Emitter) Emit(p *compiler.Program) *Output {
	out := &Output{}
	out.Fragments = append(out.Fragments,
		Fragment{Kind: FragmentPreamble, Source: e.preamble(p)},
		Fragment{Kind: FragmentEnum, Source: enum(p)},
		Fragment{Kind: FragmentUnion, Source: union(p)},
	)
	for _, m := range p.Messages {
		out.Fragments = append(out.Fragments, Fragment{
			Kind:   FragmentMessage,
			Name:   m.Name,
			Source: message(m),
		})
	}
	return out
}

func (e *Emitter) preamble(p *compiler.Program) string {
	g := &CodeBuilder{}
	g.P("// Code generated by msgc. DO NOT EDIT.")
	if e.opts.Source != "" {
		g.P("// Source: %s", e.opts.Source)
	}
	if p.Version != "" {
		g.P("// Schema version: %s", p.Version)
	}
	g.P("")
	g.P("package %s", e.opts.Package)
	g.P("")
	if path.Base(e.opts.RuntimeImport) == "wire" {
		g.P("import %q", e.opts.RuntimeImport)
	} else {
		g.P("import wire %q", e.opts.RuntimeImport)
	}
	return g.String()
}

func enum(p *compiler.Program) string {
	g := &CodeBuilder{}
	g.P("")
	g.P("// MessageType identifies a kind of message.")
	g.P("type MessageType int")
	g.P("")
	g.P("const (")
	g.In()
	for i, m := range p.Messages {
		if i == 0 {
			g.P("%s MessageType = iota + 1", m.TypeConst())
			continue
		}
		g.P("%s", m.TypeConst())
	}
	g.Out()
	g.P(")")
	g.P("")
	g.P("// String returns the schema name of the message kind.")
	g.P("func (t MessageType) String() string {")
	g.In()
	g.P("switch t {")
	for _, m := range p.Messages {
		g.P("case %s:", m.TypeConst())
		g.In()
		g.P("return %q", m.Name)
		g.Out()
	}
	g.P("}")
	g.P("return \"Unknown\"")
	g.Out()
	g.P("}")
	return g.String()
}

func union(p *compiler.Program) string {
	g := &CodeBuilder{}
	g.P("")
	g.P("// Message is implemented by every message record.")
	g.P("type Message interface {")
	g.In()
	g.P("wire.Encoder")
	g.P("MessageType() MessageType")
	g.P("MessageNumber() uint32")
	g.P("Decode(r *wire.Reader) error")
	g.P("isMessage()")
	g.Out()
	g.P("}")
	g.P("")
	g.P("// ReadMessage decodes the body of the message with the given number,")
	g.P("// as returned by wire.Reader.MessageNumber.")
	g.P("func ReadMessage(r *wire.Reader, number uint32) (Message, error) {")
	g.In()
	g.P("var m Message")
	g.P("switch number {")
	for _, m := range p.Messages {
		g.P("case 0x%08x:", m.MessageNumber())
		g.In()
		g.P("m = new(%s)", m.Ident)
		g.Out()
	}
	g.P("default:")
	g.In()
	g.P("return nil, &wire.UnknownMessageNumberError{Number: number}")
	g.Out()
	g.P("}")
	g.P("if err := m.Decode(r); err != nil {")
	g.In()
	g.P("return nil, err")
	g.Out()
	g.P("}")
	g.P("return m, nil")
	g.Out()
	g.P("}")
	return g.String()
}

func message(m *compiler.Message) string {
	g := &CodeBuilder{}
	for _, b := range m.Blocks {
		blockStruct(g, b, m)
	}

	g.P("")
	g.P("// %s is a %s frequency message.", m.Ident, m.Frequency)
	if m.Doc != "" {
		g.P("//")
		g.Doc(m.Doc)
	}
	if attrs := attributes(m); len(attrs) > 0 {
		g.P("//")
		g.P("// %s.", strings.Join(attrs, ", "))
	}
	g.P("type %s struct {", m.Ident)
	g.In()
	for _, b := range m.Blocks {
		g.P("%s %s", b.Ident, memberType(b))
	}
	g.Out()
	g.P("}")

	g.P("")
	g.P("// MessageType implements Message.")
	g.P("func (*%s) MessageType() MessageType {", m.Ident)
	g.In()
	g.P("return %s", m.TypeConst())
	g.Out()
	g.P("}")
	g.P("")
	g.P("// MessageNumber implements Message.")
	g.P("func (*%s) MessageNumber() uint32 {", m.Ident)
	g.In()
	g.P("return 0x%08x", m.MessageNumber())
	g.Out()
	g.P("}")
	g.P("")
	g.P("func (*%s) isMessage() {}", m.Ident)

	encode(g, m)
	decode(g, m)

	for _, b := range m.Blocks {
		blockReader(g, b, m)
		blockWriter(g, b)
	}
	return g.String()
}

func attributes(m *compiler.Message) []string {
	var attrs []string
	if m.Trusted {
		attrs = append(attrs, "Trusted")
	}
	if m.Zerocoded {
		attrs = append(attrs, "Zerocoded")
	}
	return append(attrs, m.Flags...)
}

func memberType(b *compiler.Block) string {
	switch b.Quantity.Kind {
	case compiler.QuantityFixed:
		return fmt.Sprintf("[%d]%s", b.Quantity.Count, b.TypeName())
	case compiler.QuantityVariable:
		return "[]" + b.TypeName()
	}
	return b.TypeName()
}

func idLiteral(m *compiler.Message) string {
	parts := make([]string, 0, 4)
	for _, c := range m.IDBytes() {
		parts = append(parts, fmt.Sprintf("0x%02x", c))
	}
	return "[]byte{" + strings.Join(parts, ", ") + "}"
}

func encode(g *CodeBuilder, m *compiler.Message) {
	g.P("")
	g.P("// Encode writes the identifier and blocks of m.")
	g.P("func (m *%s) Encode(w *wire.Writer) error {", m.Ident)
	g.In()
	g.P("w.Data(%s)", idLiteral(m))
	for _, b := range m.Blocks {
		switch b.Quantity.Kind {
		case compiler.QuantityFixed:
			g.P("wire.WriteFixed(w, m.%s[:], %s)", b.Ident, b.WriterName())
		case compiler.QuantityVariable:
			g.P("wire.WriteVariable(w, m.%s, %s)", b.Ident, b.WriterName())
		default:
			g.P("%s(w, &m.%s)", b.WriterName(), b.Ident)
		}
	}
	g.P("return w.Error()")
	g.Out()
	g.P("}")
}

func decode(g *CodeBuilder, m *compiler.Message) {
	g.P("")
	g.P("// Decode reads the blocks of m. The identifier must already be consumed.")
	g.P("func (m *%s) Decode(r *wire.Reader) error {", m.Ident)
	g.In()
	if len(m.Blocks) == 0 {
		g.P("return r.Error()")
		g.Out()
		g.P("}")
		return
	}

	g.P("var err error")
	for _, b := range m.Blocks {
		switch b.Quantity.Kind {
		case compiler.QuantityFixed:
			g.P("if err = wire.ReadFixed(r, m.%s[:], %s); err != nil {", b.Ident, b.ReaderName())
		case compiler.QuantityVariable:
			g.P("if m.%s, err = wire.ReadVariable(r, %s); err != nil {", b.Ident, b.ReaderName())
		default:
			g.P("if m.%s, err = %s(r); err != nil {", b.Ident, b.ReaderName())
		}
		g.In()
		g.P("return err")
		g.Out()
		g.P("}")
	}
	g.P("return nil")
	g.Out()
	g.P("}")
}

func blockStruct(g *CodeBuilder, b *compiler.Block, m *compiler.Message) {
	g.P("")
	g.P("// %s is the %s block of %s.", b.TypeName(), b.Name, m.Ident)
	g.P("type %s struct {", b.TypeName())
	g.In()
	for _, f := range b.Fields {
		g.Doc(f.Doc)
		g.P("%s %s", f.Ident, f.Rule.GoType())
	}
	g.Out()
	g.P("}")
}

func blockReader(g *CodeBuilder, b *compiler.Block, m *compiler.Message) {
	g.P("")
	g.P("// %s decodes one %s block of %s.", b.ReaderName(), b.Name, m.Ident)
	g.P("func %s(r *wire.Reader) (%s, error) {", b.ReaderName(), b.TypeName())
	g.In()
	g.P("var b %s", b.TypeName())
	for _, f := range b.Fields {
		g.P("%s", f.Rule.ReadStmt("b."+f.Ident))
	}
	g.P("return b, r.Error()")
	g.Out()
	g.P("}")
}

func blockWriter(g *CodeBuilder, b *compiler.Block) {
	g.P("")
	g.P("func %s(w *wire.Writer, b *%s) {", b.WriterName(), b.TypeName())
	g.In()
	for _, f := range b.Fields {
		g.P("%s", f.Rule.WriteStmt("b."+f.Ident))
	}
	g.Out()
	g.P("}")
}
