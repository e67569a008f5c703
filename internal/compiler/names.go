package compiler

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/unicode/norm"
)

// generatedMethods are declared on every message record, so no member may
// take these names.
var generatedMethods = []string{"MessageType", "MessageNumber", "Encode", "Decode"}

// Namer turns schema names into exported Go identifiers.
type Namer struct {
	reserved map[string]bool
}

// NewNamer returns a Namer that also escapes the given extra names.
func NewNamer(reserved []string) *Namer {
	n := &Namer{reserved: make(map[string]bool, len(generatedMethods)+len(reserved))}
	for _, name := range generatedMethods {
		n.reserved[name] = true
	}
	for _, name := range reserved {
		n.reserved[name] = true
	}
	return n
}

// Ident normalizes name to an exported Go identifier. Separators are
// dropped and the following word is title-cased, existing capitals are
// kept: "agent_id" becomes "AgentId", "AgentID" stays "AgentID".
// The result always starts with an upper-case letter, so it can never be a
// Go keyword; only reserved names and the generated method names get a
// trailing underscore.
func (n *Namer) Ident(name string) string {
	name = norm.NFC.String(strings.TrimSpace(name))
	words := strings.FieldsFunc(name, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})

	caser := cases.Title(language.Und, cases.NoLower)
	var b strings.Builder
	for _, w := range words {
		b.WriteString(caser.String(w))
	}
	id := b.String()

	if r, _ := utf8.DecodeRuneInString(id); !unicode.IsUpper(r) {
		id = "X" + id
	}
	if n.reserved[id] {
		id += "_"
	}
	return id
}
