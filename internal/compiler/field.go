package compiler

import "github.com/roach88/msgc/internal/schema"

// Field is a compiled block field.
type Field struct {
	Name  string // as declared in the schema
	Ident string
	Doc   string
	Rule  TypeRule
}

func (c *compiler) field(f *schema.Field, path string) (*Field, error) {
	rule, err := Resolve(f.Type, f.Count)
	if err != nil {
		return nil, at(err, path)
	}
	return &Field{
		Name:  f.Name,
		Ident: c.namer.Ident(f.Name),
		Doc:   f.Doc,
		Rule:  rule,
	}, nil
}
