package emitter

import (
	"go/scanner"
	"go/token"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/msgc/internal/compiler"
	"github.com/roach88/msgc/internal/loader"
	"github.com/roach88/msgc/internal/schema"
)

var exampleDir = filepath.Join("..", "..", "example", "messages")

func compile(t *testing.T, s *schema.Schema) *compiler.Program {
	t.Helper()
	p, err := compiler.Compile(s, compiler.Options{})
	require.NoError(t, err)
	return p
}

type tok struct {
	tok token.Token
	lit string
}

// tokens scans src, ignoring layout and automatic semicolons.
func tokens(t *testing.T, src []byte) []tok {
	t.Helper()
	fset := token.NewFileSet()
	file := fset.AddFile("src.go", -1, len(src))

	var s scanner.Scanner
	s.Init(file, src, func(pos token.Position, msg string) {
		t.Errorf("%s: %s", pos, msg)
	}, scanner.ScanComments)

	var out []tok
	for {
		_, tk, lit := s.Scan()
		if tk == token.EOF {
			return out
		}
		if tk == token.SEMICOLON && lit == "\n" {
			continue
		}
		out = append(out, tok{tk, strings.TrimSpace(lit)})
	}
}

func TestExampleIsUpToDate(t *testing.T) {
	s, err := loader.LoadFile(filepath.Join(exampleDir, "schema.msg"))
	require.NoError(t, err)

	out := New(Options{Package: "messages", Source: "schema.msg"}).Emit(compile(t, s))
	generated, err := out.Format()
	require.NoError(t, err)

	checkedIn, err := os.ReadFile(filepath.Join(exampleDir, "messages_gen.go"))
	require.NoError(t, err)

	assert.Equal(t, tokens(t, checkedIn), tokens(t, generated),
		"example/messages is stale; run go generate ./example/...")
}

func TestEmitFragments(t *testing.T) {
	p := compile(t, &schema.Schema{Version: "2.0", Messages: []schema.Message{
		{Name: "Ping", Frequency: "High", Number: "1"},
		{Name: "Pong", Frequency: "Fixed", Number: "0xFFFFFF02", Blocks: []schema.Block{
			{Name: "Data", Quantity: "Single", Fields: []schema.Field{{Name: "Seq", Type: "U32"}}},
		}},
	}})

	out := New(Options{}).Emit(p)
	require.Len(t, out.Fragments, 5)

	kinds := make([]FragmentKind, len(out.Fragments))
	for i, f := range out.Fragments {
		kinds[i] = f.Kind
	}
	assert.Equal(t, []FragmentKind{FragmentPreamble, FragmentEnum, FragmentUnion, FragmentMessage, FragmentMessage}, kinds)

	pre := out.Fragments[0].Source
	assert.True(t, strings.HasPrefix(pre, "// Code generated by msgc. DO NOT EDIT.\n"))
	assert.Contains(t, pre, "package messages\n")
	assert.Contains(t, pre, `import "github.com/roach88/msgc/pkg/wire"`)
	assert.Contains(t, pre, "// Schema version: 2.0")

	assert.Contains(t, out.Fragments[1].Source, "MessageTypePing MessageType = iota + 1\n\tMessageTypePong\n")
	assert.Contains(t, out.Fragments[2].Source, "case 0x01000000:\n\t\tm = new(Ping)")
	assert.Contains(t, out.Fragments[2].Source, "case 0xffffff02:\n\t\tm = new(Pong)")

	ping, ok := out.Message("Ping")
	require.True(t, ok)
	assert.Contains(t, ping.Source, "w.Data([]byte{0x01})")
	assert.Contains(t, ping.Source, "func (m *Ping) Decode(r *wire.Reader) error {\n\treturn r.Error()\n}")
	assert.NotContains(t, ping.Source, "var err error")

	pong, ok := out.Message("Pong")
	require.True(t, ok)
	assert.Contains(t, pong.Source, "type PongData struct {\n\tSeq uint32\n}")
	assert.Contains(t, pong.Source, "writePongData(w, &m.Data)")
	assert.Contains(t, pong.Source, "if m.Data, err = ReadPongData(r); err != nil {")

	_, ok = out.Message("Missing")
	assert.False(t, ok)

	_, err := out.Format()
	assert.NoError(t, err)
}

func TestEmitQuantities(t *testing.T) {
	p := compile(t, &schema.Schema{Messages: []schema.Message{
		{Name: "Grid", Frequency: "Low", Number: "9", Trust: schema.TrustTrusted, Flags: []string{"Deprecated"}, Blocks: []schema.Block{
			{Name: "Cells", Quantity: "Multiple", Count: 3, Fields: []schema.Field{{Name: "V", Type: "U8"}}},
			{Name: "Notes", Quantity: "Variable", Fields: []schema.Field{
				{Name: "Text", Type: "Variable 2", Doc: "UTF-8, no terminator."},
				{Name: "Hash", Type: "Fixed", Count: 16},
			}},
		}},
	}})

	msg, ok := New(Options{}).Emit(p).Message("Grid")
	require.True(t, ok)
	src := msg.Source

	assert.Contains(t, src, "Cells [3]GridCells\n")
	assert.Contains(t, src, "Notes []GridNotes\n")
	assert.Contains(t, src, "wire.WriteFixed(w, m.Cells[:], writeGridCells)")
	assert.Contains(t, src, "wire.WriteVariable(w, m.Notes, writeGridNotes)")
	assert.Contains(t, src, "if err = wire.ReadFixed(r, m.Cells[:], ReadGridCells); err != nil {")
	assert.Contains(t, src, "if m.Notes, err = wire.ReadVariable(r, ReadGridNotes); err != nil {")
	assert.Contains(t, src, "\t// UTF-8, no terminator.\n\tText []byte\n")
	assert.Contains(t, src, "Hash [16]byte\n")
	assert.Contains(t, src, "b.Text = r.Bytes16()")
	assert.Contains(t, src, "r.Data(b.Hash[:])")
	assert.Contains(t, src, "w.Data([]byte{0xff, 0xff, 0x00, 0x09})")
	assert.Contains(t, src, "// Trusted, Deprecated.\n")
}

func TestEmitOptions(t *testing.T) {
	p := compile(t, &schema.Schema{Messages: []schema.Message{{Name: "Ping", Frequency: "High", Number: "1"}}})

	out := New(Options{Package: "proto", RuntimeImport: "example.com/rt/codec", Source: "a.msg"}).Emit(p)
	pre := out.Fragments[0].Source
	assert.Contains(t, pre, "// Source: a.msg\n")
	assert.Contains(t, pre, "package proto\n")
	assert.Contains(t, pre, `import wire "example.com/rt/codec"`)
	assert.NotContains(t, pre, "Schema version")
}

func TestEmitDeterministic(t *testing.T) {
	s, err := loader.LoadFile(filepath.Join(exampleDir, "schema.msg"))
	require.NoError(t, err)

	e := New(Options{})
	first := e.Emit(compile(t, s)).Source()
	second := e.Emit(compile(t, s)).Source()
	assert.Equal(t, first, second)
}

func TestCodeBuilder(t *testing.T) {
	g := &CodeBuilder{}
	g.P("func f() {")
	g.In()
	g.Doc("one\n\ntwo")
	g.P("return")
	g.Out()
	g.P("")
	g.P("}")
	assert.Equal(t, "func f() {\n\t// one\n\t//\n\t// two\n\treturn\n\n}\n", g.String())
}
