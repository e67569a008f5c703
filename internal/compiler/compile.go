package compiler

import (
	"errors"
	"fmt"

	"github.com/roach88/msgc/internal/schema"
)

// Mode controls how many errors Compile reports.
type Mode int

const (
	// FailFast reports the first error only.
	FailFast Mode = iota
	// CollectAll reports every error, joined with errors.Join.
	CollectAll
)

// Options configures Compile.
type Options struct {
	// Reserved names are escaped like Go keywords.
	Reserved []string
	Mode     Mode
}

// Program is a compiled schema, ready for emission.
type Program struct {
	Version  string
	Messages []*Message
}

// Message looks up a compiled message by schema name.
func (p *Program) Message(name string) *Message {
	for _, m := range p.Messages {
		if m.Name == name {
			return m
		}
	}
	return nil
}

type compiler struct {
	namer *Namer
	errs  []error
}

func (c *compiler) fail(err error) {
	c.errs = append(c.errs, err)
}

// Compile resolves every field type, block quantity and message identifier
// in s. Errors are fatal: on failure no Program is returned.
func Compile(s *schema.Schema, opts Options) (*Program, error) {
	c := &compiler{namer: NewNamer(opts.Reserved)}
	p := &Program{Version: s.Version}
	for i := range s.Messages {
		p.Messages = append(p.Messages, c.message(&s.Messages[i]))
	}
	if len(c.errs) == 0 {
		c.checkSymbols(p)
	}

	switch {
	case len(c.errs) == 0:
		return p, nil
	case opts.Mode == CollectAll:
		return nil, errors.Join(c.errs...)
	default:
		return nil, c.errs[0]
	}
}

// checkSymbols rejects programs whose generated names collide, either at
// package level or as members of one record.
func (c *compiler) checkSymbols(p *Program) {
	owners := map[string]string{
		"Message":     "message interface",
		"MessageType": "message type enum",
		"ReadMessage": "dispatch function",
	}
	claim := func(symbol, owner string) {
		if prev, ok := owners[symbol]; ok {
			c.fail(&CompileError{
				Kind:    KindDuplicateSymbol,
				Path:    owner,
				Message: fmt.Sprintf("generated name %s is already used by %s", symbol, prev),
			})
			return
		}
		owners[symbol] = owner
	}

	for _, m := range p.Messages {
		claim(m.Ident, m.Name)
		claim(m.TypeConst(), m.Name)

		members := map[string]string{}
		for _, b := range m.Blocks {
			path := m.Name + "." + b.Name
			claim(b.TypeName(), path)
			claim(b.ReaderName(), path)
			claim(b.WriterName(), path)
			c.member(members, b.Ident, path)

			fields := map[string]string{}
			for _, f := range b.Fields {
				c.member(fields, f.Ident, path+"."+f.Name)
			}
		}
	}
}

func (c *compiler) member(seen map[string]string, ident, path string) {
	if prev, ok := seen[ident]; ok {
		c.fail(&CompileError{
			Kind:    KindDuplicateSymbol,
			Path:    path,
			Message: fmt.Sprintf("member name %s is already used by %s", ident, prev),
		})
		return
	}
	seen[ident] = path
}
