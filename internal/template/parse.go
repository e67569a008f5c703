// Package template parses message template files (.msg), the native
// schema format:
//
//	version 2.0
//
//	// Doc comment of the message.
//	{
//		TestMessage Low 1 NotTrusted Zerocoded
//		{
//			NeighborBlock Multiple 4
//			{ Test0 U32 }
//			{ Name Variable 1 }
//		}
//	}
//
// Line comments directly above a message or field brace become its doc.
package template

import (
	"fmt"
	"io"
	"strings"
	"text/scanner"

	"github.com/roach88/msgc/internal/schema"
)

// ParseError reports malformed template syntax.
type ParseError struct {
	Line    int
	Message string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("line %d: %s", e.Line, e.Message)
}

func errorf(line int, format string, args ...any) error {
	return &ParseError{Line: line, Message: fmt.Sprintf(format, args...)}
}

type token struct {
	tok  rune
	text string
	line int
	doc  string
}

func (t token) String() string {
	if t.tok == scanner.EOF {
		return "end of file"
	}
	return fmt.Sprintf("%q", t.text)
}

func (t token) isWord() bool {
	return t.tok == scanner.Ident || t.tok == scanner.Int || t.tok == scanner.Float
}

// Parse reads a message template. Types, quantities and frequencies are
// kept as written; the compiler resolves them.
func Parse(r io.Reader) (*schema.Schema, error) {
	toks, err := lex(r)
	if err != nil {
		return nil, err
	}
	p := &parser{toks: toks}
	return p.schema()
}

func lex(r io.Reader) ([]token, error) {
	var s scanner.Scanner
	s.Init(r)
	s.Mode = scanner.ScanIdents | scanner.ScanInts | scanner.ScanFloats | scanner.ScanComments

	var lexErr error
	s.Error = func(s *scanner.Scanner, msg string) {
		if lexErr == nil {
			lexErr = errorf(s.Pos().Line, "%s", msg)
		}
	}

	var (
		toks     []token
		doc      []string
		docEnd   int
		lastLine int
	)
	for tok := s.Scan(); tok != scanner.EOF; tok = s.Scan() {
		line := s.Position.Line
		text := s.TokenText()

		if tok == scanner.Comment {
			// Trailing comments and block comments are not docs.
			if line == lastLine || !strings.HasPrefix(text, "//") {
				continue
			}
			if line != docEnd+1 {
				doc = doc[:0]
			}
			docEnd = line
			if body := strings.TrimSpace(strings.TrimPrefix(text, "//")); strings.Trim(body, "*-=/ ") != "" {
				doc = append(doc, body)
			}
			continue
		}

		t := token{tok: tok, text: text, line: line}
		if tok == '{' && docEnd == line-1 {
			t.doc = strings.Join(doc, "\n")
		}
		doc, docEnd, lastLine = doc[:0], 0, line
		toks = append(toks, t)
	}
	if lexErr != nil {
		return nil, lexErr
	}
	return toks, nil
}

type parser struct {
	toks []token
	pos  int
}

func (p *parser) peek() token {
	if p.pos < len(p.toks) {
		return p.toks[p.pos]
	}
	t := token{tok: scanner.EOF}
	if n := len(p.toks); n > 0 {
		t.line = p.toks[n-1].line
	}
	return t
}

func (p *parser) next() token {
	t := p.peek()
	if p.pos < len(p.toks) {
		p.pos++
	}
	return t
}

func (p *parser) expect(tok rune, context string) (token, error) {
	t := p.next()
	if t.tok != tok {
		return t, errorf(t.line, "expected %q %s, found %s", string(tok), context, t)
	}
	return t, nil
}

// words consumes the run of words before the next brace.
func (p *parser) words() ([]token, error) {
	var out []token
	for {
		t := p.peek()
		switch {
		case t.isWord():
			out = append(out, p.next())
		case t.tok == '{' || t.tok == '}' || t.tok == scanner.EOF:
			return out, nil
		default:
			return nil, errorf(t.line, "unexpected %s", t)
		}
	}
}

func (p *parser) schema() (*schema.Schema, error) {
	s := &schema.Schema{}
	if t := p.peek(); t.tok == scanner.Ident && t.text == "version" {
		p.next()
		v := p.next()
		if !v.isWord() {
			return nil, errorf(v.line, "expected version number, found %s", v)
		}
		s.Version = v.text
	}

	for p.peek().tok != scanner.EOF {
		m, err := p.message()
		if err != nil {
			return nil, err
		}
		s.Messages = append(s.Messages, m)
	}
	return s, nil
}

func (p *parser) message() (schema.Message, error) {
	open, err := p.expect('{', "to open message")
	if err != nil {
		return schema.Message{}, err
	}
	hdr, err := p.words()
	if err != nil {
		return schema.Message{}, err
	}
	if len(hdr) < 3 {
		return schema.Message{}, errorf(open.line, "message header needs a name, frequency and number")
	}

	m := schema.Message{
		Name:      hdr[0].text,
		Frequency: hdr[1].text,
		Number:    hdr[2].text,
		Doc:       open.doc,
	}
	for _, w := range hdr[3:] {
		switch w.text {
		case schema.TrustTrusted, schema.TrustNotTrusted:
			m.Trust = w.text
		case schema.EncodingUnencoded, schema.EncodingZerocoded:
			m.Encoding = w.text
		default:
			m.Flags = append(m.Flags, w.text)
		}
	}

	for p.peek().tok == '{' {
		b, err := p.block()
		if err != nil {
			return schema.Message{}, err
		}
		m.Blocks = append(m.Blocks, b)
	}
	if _, err := p.expect('}', "to close message "+m.Name); err != nil {
		return schema.Message{}, err
	}
	return m, nil
}

func (p *parser) block() (schema.Block, error) {
	open, err := p.expect('{', "to open block")
	if err != nil {
		return schema.Block{}, err
	}
	hdr, err := p.words()
	if err != nil {
		return schema.Block{}, err
	}
	if len(hdr) < 2 || len(hdr) > 3 {
		return schema.Block{}, errorf(open.line, "block header needs a name, quantity and optional count")
	}

	b := schema.Block{Name: hdr[0].text, Quantity: joinWords(hdr[1:])}
	for p.peek().tok == '{' {
		f, err := p.field()
		if err != nil {
			return schema.Block{}, err
		}
		b.Fields = append(b.Fields, f)
	}
	if _, err := p.expect('}', "to close block "+b.Name); err != nil {
		return schema.Block{}, err
	}
	return b, nil
}

func (p *parser) field() (schema.Field, error) {
	open, err := p.expect('{', "to open field")
	if err != nil {
		return schema.Field{}, err
	}
	words, err := p.words()
	if err != nil {
		return schema.Field{}, err
	}
	if len(words) < 2 || len(words) > 3 {
		return schema.Field{}, errorf(open.line, "field needs a name, type and optional count")
	}
	if _, err := p.expect('}', "to close field "+words[0].text); err != nil {
		return schema.Field{}, err
	}
	return schema.Field{Name: words[0].text, Type: joinWords(words[1:]), Doc: open.doc}, nil
}

func joinWords(ws []token) string {
	parts := make([]string, len(ws))
	for i, w := range ws {
		parts[i] = w.text
	}
	return strings.Join(parts, " ")
}
