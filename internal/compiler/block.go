package compiler

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/roach88/msgc/internal/schema"
)

// QuantityKind says how many instances of a block a message carries.
type QuantityKind int

const (
	QuantitySingle QuantityKind = iota + 1
	QuantityFixed
	QuantityVariable
)

// Quantity is a block's cardinality. Count is set for QuantityFixed only.
type Quantity struct {
	Kind  QuantityKind
	Count int
}

func (q Quantity) String() string {
	switch q.Kind {
	case QuantitySingle:
		return "Single"
	case QuantityFixed:
		return fmt.Sprintf("Fixed(%d)", q.Count)
	case QuantityVariable:
		return "Variable"
	}
	return "Invalid"
}

// ParseQuantity parses a block quantity. "Multiple" and "Fixed" are
// synonyms and need a positive count, either as an argument or inline
// ("Multiple 4").
func ParseQuantity(raw string, count int) (Quantity, error) {
	word, inline, hasCount := strings.Cut(strings.TrimSpace(raw), " ")
	if hasCount {
		n, err := strconv.Atoi(strings.TrimSpace(inline))
		if err != nil {
			return Quantity{}, &CompileError{
				Kind:    KindInvalidFixedArraySpec,
				Message: fmt.Sprintf("malformed count in quantity %q", raw),
			}
		}
		count = n
	}

	switch {
	case strings.EqualFold(word, schema.QuantitySingle):
		return Quantity{Kind: QuantitySingle}, nil
	case strings.EqualFold(word, schema.QuantityMultiple), strings.EqualFold(word, "Fixed"):
		if count < 1 {
			return Quantity{}, &CompileError{
				Kind:    KindInvalidFixedArraySpec,
				Message: fmt.Sprintf("fixed block count must be positive, got %d", count),
			}
		}
		return Quantity{Kind: QuantityFixed, Count: count}, nil
	case strings.EqualFold(word, schema.QuantityVariable):
		return Quantity{Kind: QuantityVariable}, nil
	}
	return Quantity{}, &CompileError{
		Kind:    KindInvalidQuantity,
		Message: fmt.Sprintf("unknown quantity %q", raw),
	}
}

// Block is a compiled message block.
type Block struct {
	Name     string // as declared in the schema
	Ident    string // member name in the message record
	Message  string // identifier of the owning message
	Quantity Quantity
	Fields   []*Field
}

// TypeName is the generated record type, unique across the program.
func (b *Block) TypeName() string { return b.Message + b.Ident }

// ReaderName is the generated decode function for one block instance.
func (b *Block) ReaderName() string { return "Read" + b.TypeName() }

// WriterName is the generated encode function for one block instance.
func (b *Block) WriterName() string { return "write" + b.TypeName() }

// Size returns the encoded size of one instance, or -1 when it contains
// a variable buffer.
func (b *Block) Size() int {
	size := 0
	for _, f := range b.Fields {
		n := f.Rule.Size()
		if n < 0 {
			return -1
		}
		size += n
	}
	return size
}

func (c *compiler) block(msgIdent string, blk *schema.Block, path string) *Block {
	q, err := ParseQuantity(blk.Quantity, blk.Count)
	if err != nil {
		c.fail(at(err, path))
	}
	b := &Block{
		Name:     blk.Name,
		Ident:    c.namer.Ident(blk.Name),
		Message:  msgIdent,
		Quantity: q,
	}
	for i := range blk.Fields {
		f := &blk.Fields[i]
		field, err := c.field(f, path+"."+f.Name)
		if err != nil {
			c.fail(err)
			continue
		}
		b.Fields = append(b.Fields, field)
	}
	return b
}
