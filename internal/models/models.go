package models

import "strings"

// Kind identifies which case of the JSON value union a Value holds.
type Kind int

const (
	Null Kind = iota
	Bool
	Number
	String
	Array
	Object
)

// String returns the JSON name of the kind.
func (k Kind) String() string {
	switch k {
	case Null:
		return "null"
	case Bool:
		return "boolean"
	case Number:
		return "number"
	case String:
		return "string"
	case Array:
		return "array"
	case Object:
		return "object"
	default:
		return "unknown"
	}
}

// IsScalar reports whether the kind is a leaf value (string, number, boolean or null).
func (k Kind) IsScalar() bool {
	return k == Null || k == Bool || k == Number || k == String
}

// Value is a parsed JSON value. Kind selects which payload field is meaningful:
// Bool for booleans, Text for strings and for the literal text of numbers,
// Items for arrays and Fields for objects. The zero Value is JSON null.
type Value struct {
	Kind   Kind
	Bool   bool
	Text   string
	Items  []Value
	Fields map[string]Value
}

// NullValue returns the JSON null value.
func NullValue() Value {
	return Value{Kind: Null}
}

// BoolValue wraps a JSON boolean.
func BoolValue(b bool) Value {
	return Value{Kind: Bool, Bool: b}
}

// NumberValue wraps a JSON number given by its literal text, e.g. "42" or "3.0".
func NumberValue(text string) Value {
	return Value{Kind: Number, Text: text}
}

// StringValue wraps a JSON string.
func StringValue(s string) Value {
	return Value{Kind: String, Text: s}
}

// ArrayValue wraps a JSON array.
func ArrayValue(items ...Value) Value {
	if items == nil {
		items = []Value{}
	}
	return Value{Kind: Array, Items: items}
}

// ObjectValue wraps a JSON object.
func ObjectValue(fields map[string]Value) Value {
	if fields == nil {
		fields = map[string]Value{}
	}
	return Value{Kind: Object, Fields: fields}
}

// Primitive type names understood by the table definition.
const (
	TypeString  = "string"
	TypeInt     = "int"
	TypeDouble  = "double"
	TypeBoolean = "boolean"
)

// TypeKind categorizes an inferred column type.
type TypeKind int

const (
	Primitive TypeKind = iota
	ArrayType
	StructType
)

// Field is one named member of a struct type, or one column of a table.
type Field struct {
	Name string
	Type TypeInfo
}

// TypeInfo is an inferred column type.
// Name is set for primitives, Elem for arrays and Fields (sorted by name) for structs.
type TypeInfo struct {
	Kind   TypeKind
	Name   string
	Elem   *TypeInfo
	Fields []Field
}

// PrimitiveOf returns the primitive type with the given name.
func PrimitiveOf(name string) TypeInfo {
	return TypeInfo{Kind: Primitive, Name: name}
}

// ArrayOf returns an array type with the given element type.
func ArrayOf(elem TypeInfo) TypeInfo {
	return TypeInfo{Kind: ArrayType, Elem: &elem}
}

// StructOf returns a struct type with the given fields. Fields must already be in order.
func StructOf(fields ...Field) TypeInfo {
	return TypeInfo{Kind: StructType, Fields: fields}
}

// String renders the type as it appears in a column definition,
// e.g. "array<struct<id:int, name:string>>".
func (t TypeInfo) String() string {
	switch t.Kind {
	case ArrayType:
		elem := ""
		if t.Elem != nil {
			elem = t.Elem.String()
		}
		return "array<" + elem + ">"
	case StructType:
		fields := make([]string, len(t.Fields))
		for i, f := range t.Fields {
			fields[i] = f.Name + ":" + f.Type.String()
		}
		return "struct<" + strings.Join(fields, ", ") + ">"
	default:
		return t.Name
	}
}
