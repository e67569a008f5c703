package compiler

import (
	"fmt"
	"strconv"
	"strings"
)

// Repr is the wire representation a schema type resolves to.
type Repr int

const (
	ReprUint8 Repr = iota + 1
	ReprUint16
	ReprUint32
	ReprUint64
	ReprInt8
	ReprInt16
	ReprInt32
	ReprInt64
	ReprFloat32
	ReprFloat64
	ReprBool
	ReprUUID
	ReprIPAddr
	ReprIPPort
	ReprVector3
	ReprVector3d
	ReprVector4
	ReprQuaternion
	ReprBuffer    // length-prefixed byte buffer
	ReprByteArray // fixed-length byte array
)

type reprSpec struct {
	goType string // Go type in generated code, empty when it depends on Count
	method string // wire.Reader/wire.Writer method, empty for byte arrays
	size   int    // encoded size in bytes, 0 when it depends on the value
}

var reprs = map[Repr]reprSpec{
	ReprUint8:      {"uint8", "Uint8", 1},
	ReprUint16:     {"uint16", "Uint16", 2},
	ReprUint32:     {"uint32", "Uint32", 4},
	ReprUint64:     {"uint64", "Uint64", 8},
	ReprInt8:       {"int8", "Int8", 1},
	ReprInt16:      {"int16", "Int16", 2},
	ReprInt32:      {"int32", "Int32", 4},
	ReprInt64:      {"int64", "Int64", 8},
	ReprFloat32:    {"float32", "Float32", 4},
	ReprFloat64:    {"float64", "Float64", 8},
	ReprBool:       {"bool", "Bool", 1},
	ReprUUID:       {"wire.UUID", "UUID", 16},
	ReprIPAddr:     {"wire.IPAddr", "IPAddr", 4},
	ReprIPPort:     {"wire.IPPort", "IPPort", 2},
	ReprVector3:    {"wire.Vector3", "Vector3", 12},
	ReprVector3d:   {"wire.Vector3d", "Vector3d", 24},
	ReprVector4:    {"wire.Vector4", "Vector4", 16},
	ReprQuaternion: {"wire.Quaternion", "Quaternion", 12},
	ReprBuffer:     {"[]byte", "", 0},
	ReprByteArray:  {"", "", 0},
}

// typeNames maps schema primitive type names to their representation.
var typeNames = map[string]Repr{
	"U8":           ReprUint8,
	"U16":          ReprUint16,
	"U32":          ReprUint32,
	"U64":          ReprUint64,
	"S8":           ReprInt8,
	"S16":          ReprInt16,
	"S32":          ReprInt32,
	"S64":          ReprInt64,
	"F32":          ReprFloat32,
	"F64":          ReprFloat64,
	"BOOL":         ReprBool,
	"LLUUID":       ReprUUID,
	"IPADDR":       ReprIPAddr,
	"IPPORT":       ReprIPPort,
	"LLVector3":    ReprVector3,
	"LLVector3d":   ReprVector3d,
	"LLVector4":    ReprVector4,
	"LLQuaternion": ReprQuaternion,
	"Variable":     ReprBuffer,
	"Fixed":        ReprByteArray,
}

// TypeNames returns the recognized schema type names.
func TypeNames() []string {
	names := make([]string, 0, len(typeNames))
	for name := range typeNames {
		names = append(names, name)
	}
	return names
}

// TypeRule describes how one field type is declared, written and read in
// generated code.
type TypeRule struct {
	Name  string // schema type name without count
	Repr  Repr
	Count int // prefix width for ReprBuffer, length for ReprByteArray
}

// Resolve looks up the rule for a schema type. count is the declared count
// of Variable and Fixed types; the inline forms "Variable 2" and "Fixed 32"
// are accepted too, and take precedence.
func Resolve(typeName string, count int) (TypeRule, error) {
	name := strings.TrimSpace(typeName)
	base, inline, hasCount := strings.Cut(name, " ")
	repr, ok := typeNames[base]
	if !ok {
		return TypeRule{}, &CompileError{
			Kind:    KindUnknownType,
			Message: fmt.Sprintf("unknown type %q", typeName),
		}
	}

	rule := TypeRule{Name: base, Repr: repr}
	if hasCount {
		n, err := strconv.Atoi(strings.TrimSpace(inline))
		if err != nil {
			return TypeRule{}, countError(repr, fmt.Sprintf("malformed count in type %q", typeName))
		}
		count = n
	}

	switch repr {
	case ReprBuffer:
		if count != 1 && count != 2 {
			return TypeRule{}, countError(repr, fmt.Sprintf("length prefix width must be 1 or 2, got %d", count))
		}
		rule.Count = count
	case ReprByteArray:
		if count < 1 {
			return TypeRule{}, countError(repr, fmt.Sprintf("fixed array length must be positive, got %d", count))
		}
		rule.Count = count
	default:
		if hasCount {
			return TypeRule{}, &CompileError{
				Kind:    KindUnknownType,
				Message: fmt.Sprintf("type %s does not take a count", base),
			}
		}
	}
	return rule, nil
}

func countError(repr Repr, msg string) error {
	kind := KindInvalidFixedArraySpec
	if repr == ReprBuffer {
		kind = KindInvalidLengthPrefixWidth
	}
	return &CompileError{Kind: kind, Message: msg}
}

// GoType returns the declared type of a field with this rule.
func (t TypeRule) GoType() string {
	if t.Repr == ReprByteArray {
		return fmt.Sprintf("[%d]byte", t.Count)
	}
	return reprs[t.Repr].goType
}

// Size returns the encoded size in bytes, or -1 for buffers whose size
// depends on their contents.
func (t TypeRule) Size() int {
	switch t.Repr {
	case ReprBuffer:
		return -1
	case ReprByteArray:
		return t.Count
	}
	return reprs[t.Repr].size
}

// WriteStmt returns the statement writing expr to the writer w.
func (t TypeRule) WriteStmt(expr string) string {
	switch t.Repr {
	case ReprByteArray:
		return fmt.Sprintf("w.Data(%s[:])", expr)
	case ReprBuffer:
		return fmt.Sprintf("w.Bytes%d(%s)", t.Count*8, expr)
	}
	return fmt.Sprintf("w.%s(%s)", reprs[t.Repr].method, expr)
}

// ReadStmt returns the statement reading from the reader r into dst.
func (t TypeRule) ReadStmt(dst string) string {
	switch t.Repr {
	case ReprByteArray:
		return fmt.Sprintf("r.Data(%s[:])", dst)
	case ReprBuffer:
		return fmt.Sprintf("%s = r.Bytes%d()", dst, t.Count*8)
	}
	return fmt.Sprintf("%s = r.%s()", dst, reprs[t.Repr].method)
}

func (t TypeRule) String() string {
	if t.Repr == ReprBuffer || t.Repr == ReprByteArray {
		return fmt.Sprintf("%s %d", t.Name, t.Count)
	}
	return t.Name
}
