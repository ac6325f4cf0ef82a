package vrml

import (
	"strconv"
	"strings"
)

// FieldType identifies the declared type of a prototype field.
type FieldType int

const (
	// TypeUnknown is used for type tags the parser does not recognize.
	// The field's value is kept as raw text and substituted verbatim.
	TypeUnknown FieldType = iota
	TypeFloat
	TypeVec3
	TypeRotation
	TypeColor
	TypeNode
	TypeNodeList
)

func (t FieldType) String() string {
	switch t {
	case TypeFloat:
		return "SFFloat"
	case TypeVec3:
		return "SFVec3f"
	case TypeRotation:
		return "SFRotation"
	case TypeColor:
		return "SFColor"
	case TypeNode:
		return "SFNode"
	case TypeNodeList:
		return "MFNode"
	default:
		return "unknown"
	}
}

// ParseFieldType maps a declaration's type tag to a FieldType.
// Matching is case-sensitive and exact; anything else is TypeUnknown.
func ParseFieldType(tag string) FieldType {
	switch tag {
	case "SFFloat":
		return TypeFloat
	case "SFVec3f":
		return TypeVec3
	case "SFRotation":
		return TypeRotation
	case "SFColor":
		return TypeColor
	case "SFNode":
		return TypeNode
	case "MFNode":
		return TypeNodeList
	default:
		return TypeUnknown
	}
}

// arity returns how many numeric components a value of this type carries.
// Zero means the value is raw text rather than numeric.
func (t FieldType) arity() int {
	switch t {
	case TypeFloat:
		return 1
	case TypeVec3, TypeColor:
		return 3
	case TypeRotation:
		return 4
	default:
		return 0
	}
}

// Value is a closed tagged union over the six field types. The Type tag
// decides which payload is meaningful: Float for TypeFloat, the first
// three or four components of Vec for TypeVec3/TypeColor/TypeRotation,
// and Raw for node-typed and unknown-typed values.
type Value struct {
	Type  FieldType
	Float float64
	Vec   [4]float64
	Raw   string
}

// FloatValue returns a TypeFloat value.
func FloatValue(f float64) Value {
	return Value{Type: TypeFloat, Float: f}
}

// Vec3Value returns a TypeVec3 value.
func Vec3Value(x, y, z float64) Value {
	return Value{Type: TypeVec3, Vec: [4]float64{x, y, z}}
}

// ColorValue returns a TypeColor value from RGB components in [0,1].
func ColorValue(r, g, b float64) Value {
	return Value{Type: TypeColor, Vec: [4]float64{r, g, b}}
}

// RotationValue returns a TypeRotation value (axis + angle).
func RotationValue(x, y, z, angle float64) Value {
	return Value{Type: TypeRotation, Vec: [4]float64{x, y, z, angle}}
}

// NodeValue returns a node-typed value carrying verbatim node text.
func NodeValue(t FieldType, text string) Value {
	return Value{Type: t, Raw: text}
}

// RawValue returns a TypeUnknown value carrying verbatim text.
func RawValue(text string) Value {
	return Value{Type: TypeUnknown, Raw: text}
}

// ZeroValue returns the type-appropriate fallback used when a value
// cannot be parsed: 0.0, [0 0 0], [0 0 1 0], or empty raw text.
func ZeroValue(t FieldType) Value {
	switch t {
	case TypeFloat:
		return FloatValue(0)
	case TypeVec3:
		return Vec3Value(0, 0, 0)
	case TypeColor:
		return ColorValue(0, 0, 0)
	case TypeRotation:
		return RotationValue(0, 0, 1, 0)
	default:
		return Value{Type: t}
	}
}

// Format renders the value as node text: space-joined components for
// tuple types, the literal scalar for floats, raw text otherwise.
// Repeated calls always produce byte-identical output.
func (v Value) Format() string {
	switch v.Type {
	case TypeFloat:
		return formatFloat(v.Float)
	case TypeVec3, TypeColor:
		return strings.Join([]string{
			formatFloat(v.Vec[0]),
			formatFloat(v.Vec[1]),
			formatFloat(v.Vec[2]),
		}, " ")
	case TypeRotation:
		return strings.Join([]string{
			formatFloat(v.Vec[0]),
			formatFloat(v.Vec[1]),
			formatFloat(v.Vec[2]),
			formatFloat(v.Vec[3]),
		}, " ")
	default:
		return v.Raw
	}
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'g', -1, 64)
}
