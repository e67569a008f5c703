package compiler

import (
	"encoding/binary"
	"fmt"
	"strconv"
	"strings"

	"github.com/roach88/msgc/internal/schema"
)

// Frequency is a message's frequency class. It decides how many identifier
// bytes precede the message body.
type Frequency int

const (
	FrequencyHigh Frequency = iota + 1
	FrequencyMedium
	FrequencyLow
	FrequencyFixed
)

var frequencyNames = map[Frequency]string{
	FrequencyHigh:   schema.FrequencyHigh,
	FrequencyMedium: schema.FrequencyMedium,
	FrequencyLow:    schema.FrequencyLow,
	FrequencyFixed:  schema.FrequencyFixed,
}

func (f Frequency) String() string {
	if name, ok := frequencyNames[f]; ok {
		return name
	}
	return "Invalid"
}

// IDLength is the number of identifier bytes on the wire.
func (f Frequency) IDLength() int {
	switch f {
	case FrequencyHigh:
		return 1
	case FrequencyMedium:
		return 2
	}
	return 4
}

// ParseFrequency parses a frequency class, ignoring case.
func ParseFrequency(raw string) (Frequency, error) {
	for f, name := range frequencyNames {
		if strings.EqualFold(strings.TrimSpace(raw), name) {
			return f, nil
		}
	}
	return 0, &CompileError{
		Kind:    KindInvalidFrequencyClass,
		Message: fmt.Sprintf("unknown frequency %q", raw),
	}
}

// ParseNumber parses a frequency number written in decimal or as 0x hex.
func ParseNumber(raw string) (uint32, error) {
	s := strings.TrimSpace(raw)
	base := 10
	if rest, ok := strings.CutPrefix(strings.ToLower(s), "0x"); ok {
		s, base = rest, 16
	}
	n, err := strconv.ParseUint(s, base, 32)
	if err != nil {
		return 0, &CompileError{
			Kind:    KindInvalidFrequencyNumber,
			Message: fmt.Sprintf("invalid frequency number %q", raw),
		}
	}
	return uint32(n), nil
}

// Message is a compiled message.
type Message struct {
	Name      string // as declared in the schema
	Ident     string
	Frequency Frequency
	Number    uint32 // number within the frequency class
	Doc       string
	Trusted   bool
	Zerocoded bool
	Flags     []string
	Blocks    []*Block
}

// IDWord returns the identifier bytes padded to four bytes. Only the low
// byte of Number is significant, and for Low messages the one above it:
//
//	High    [n 00 00 00]
//	Medium  [ff n 00 00]
//	Low     [ff ff hi lo]
//	Fixed   [ff ff ff n]
func (m *Message) IDWord() [4]byte {
	lo, hi := byte(m.Number), byte(m.Number>>8)
	switch m.Frequency {
	case FrequencyHigh:
		return [4]byte{lo}
	case FrequencyMedium:
		return [4]byte{0xff, lo}
	case FrequencyLow:
		return [4]byte{0xff, 0xff, hi, lo}
	case FrequencyFixed:
		return [4]byte{0xff, 0xff, 0xff, lo}
	}
	return [4]byte{}
}

// IDBytes returns the identifier bytes written before the message body.
func (m *Message) IDBytes() []byte {
	word := m.IDWord()
	return word[:m.Frequency.IDLength()]
}

// MessageNumber is the dispatch number: IDWord read big-endian.
func (m *Message) MessageNumber() uint32 {
	word := m.IDWord()
	return binary.BigEndian.Uint32(word[:])
}

// TypeConst is the generated enum constant naming m.
func (m *Message) TypeConst() string { return "MessageType" + m.Ident }

func (c *compiler) message(msg *schema.Message) *Message {
	m := &Message{
		Name:      msg.Name,
		Ident:     c.namer.Ident(msg.Name),
		Doc:       msg.Doc,
		Trusted:   msg.Trusted(),
		Zerocoded: msg.Zerocoded(),
		Flags:     msg.Flags,
	}

	var err error
	if m.Frequency, err = ParseFrequency(msg.Frequency); err != nil {
		c.fail(at(err, msg.Name))
	}
	if m.Number, err = ParseNumber(msg.Number); err != nil {
		c.fail(at(err, msg.Name))
	}
	for i := range msg.Blocks {
		blk := &msg.Blocks[i]
		m.Blocks = append(m.Blocks, c.block(m.Ident, blk, msg.Name+"."+blk.Name))
	}
	return m
}
