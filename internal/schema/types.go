package schema

// Raw frequency classes as written in schemas.
const (
	FrequencyHigh   = "High"
	FrequencyMedium = "Medium"
	FrequencyLow    = "Low"
	FrequencyFixed  = "Fixed"
)

// Raw block quantities as written in schemas.
const (
	QuantitySingle   = "Single"
	QuantityMultiple = "Multiple"
	QuantityVariable = "Variable"
)

const (
	TrustTrusted       = "Trusted"
	TrustNotTrusted    = "NotTrusted"
	EncodingUnencoded  = "Unencoded"
	EncodingZerocoded  = "Zerocoded"
	FlagDeprecated     = "Deprecated"
	FlagUDPDeprecated  = "UDPDeprecated"
	FlagUDPBlackListed = "UDPBlackListed"
)

// Schema is a complete, ordered message protocol description.
type Schema struct {
	Version  string    `json:"version,omitempty" yaml:"version,omitempty"`
	Messages []Message `json:"messages" yaml:"messages"`
}

// Message describes one message type.
type Message struct {
	Name      string   `json:"name" yaml:"name"`
	Frequency string   `json:"frequency" yaml:"frequency"`
	Number    string   `json:"number" yaml:"number"`
	Trust     string   `json:"trust,omitempty" yaml:"trust,omitempty"`
	Encoding  string   `json:"encoding,omitempty" yaml:"encoding,omitempty"`
	Flags     []string `json:"flags,omitempty" yaml:"flags,omitempty"`
	Doc       string   `json:"doc,omitempty" yaml:"doc,omitempty"`
	Blocks    []Block  `json:"blocks" yaml:"blocks"`
}

// Trusted reports whether the message may only arrive on trusted circuits.
func (m Message) Trusted() bool {
	return m.Trust == TrustTrusted
}

// Zerocoded reports whether the message body is zero-run encoded in transit.
func (m Message) Zerocoded() bool {
	return m.Encoding == EncodingZerocoded
}

// Block is a named group of fields repeated according to Quantity.
// Count is the repetition count of a Multiple block.
type Block struct {
	Name     string  `json:"name" yaml:"name"`
	Quantity string  `json:"quantity" yaml:"quantity"`
	Count    int     `json:"count,omitempty" yaml:"count,omitempty"`
	Fields   []Field `json:"fields" yaml:"fields"`
}

// Field is one primitive value in a block. Count is the byte length of a
// Fixed field or the prefix width of a Variable field; it may also be given
// inline in Type, as in "Fixed 32".
type Field struct {
	Name  string `json:"name" yaml:"name"`
	Type  string `json:"type" yaml:"type"`
	Count int    `json:"count,omitempty" yaml:"count,omitempty"`
	Doc   string `json:"doc,omitempty" yaml:"doc,omitempty"`
}
