package vrml

import "strings"

// Field is one declared prototype parameter: a name, a type tag, and the
// default value used when an instance supplies no override. Immutable
// once created.
type Field struct {
	Name    string
	Type    FieldType
	Default Value
}

// parseFieldDeclarations parses the text between a prototype's parameter
// list delimiters. The grammar is a flat run of
//
//	field <Type> <name> <value tokens...>
//
// clauses, where a clause's value tokens run until the next "field"
// keyword or the end of the text. Parse failures are field-local: a
// field whose value cannot be read gets the type-appropriate zero value
// and a warning, and parsing continues with the next clause.
func parseFieldDeclarations(text string, log *Logger) []Field {
	var fields []Field
	toks := tokenize(text)

	for i := 0; i < len(toks); i++ {
		if toks[i].text != "field" {
			continue
		}
		if i+2 >= len(toks) {
			log.Warn("truncated field declaration at end of parameter list")
			break
		}
		typeTag := toks[i+1].text
		name := toks[i+2].text

		// The value region is the verbatim text from the token after the
		// name up to the next "field" keyword (or end of text).
		valueStart := len(text)
		if i+3 < len(toks) {
			valueStart = toks[i+3].start
		}
		valueEnd := len(text)
		next := i + 3
		for ; next < len(toks); next++ {
			if toks[next].text == "field" {
				valueEnd = toks[next].start
				break
			}
		}
		raw := text[valueStart:min(valueEnd, len(text))]

		ft := ParseFieldType(typeTag)
		if ft == TypeUnknown {
			log.WithField("field", name).Warn("unknown field type tag %q; keeping raw value", typeTag)
		}
		fields = append(fields, Field{
			Name:    name,
			Type:    ft,
			Default: parseFieldValue(ft, name, raw, log),
		})

		i = next - 1
	}
	return fields
}

// parseFieldValue reads one default value of the given type from raw
// declaration text, falling back to the zero value on short numeric runs.
func parseFieldValue(ft FieldType, name, raw string, log *Logger) Value {
	switch ft {
	case TypeFloat, TypeVec3, TypeColor, TypeRotation:
		n := ft.arity()
		nums := parseFloats(raw, n)
		if len(nums) < n {
			log.WithField("field", name).Warn("expected %d numeric literals for %s, found %d; using zero default", n, ft, len(nums))
			return ZeroValue(ft)
		}
		v := Value{Type: ft}
		if ft == TypeFloat {
			v.Float = nums[0]
		} else {
			copy(v.Vec[:], nums)
		}
		return v
	case TypeNode, TypeNodeList:
		return NodeValue(ft, strings.TrimSpace(raw))
	default:
		return RawValue(strings.TrimSpace(raw))
	}
}
