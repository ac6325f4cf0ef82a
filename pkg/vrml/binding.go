package vrml

import (
	"regexp"
	"strings"
)

// bindingRe matches one "<propertyToken> IS <fieldName>" binding. The
// property token is any non-space run; the field name is an identifier
// whose match cannot continue into a longer word, so a field "size"
// never captures part of "sizeHint".
var bindingRe = regexp.MustCompile(`(\S+)\s+IS\s+([A-Za-z_][A-Za-z0-9_]*)`)

// resolveBindings substitutes every IS binding in body whose field name
// is present in values, producing "<propertyToken> <formattedValue>".
// Bindings to absent fields are left textually unchanged and logged;
// they surface in the output as still-bound placeholders rather than
// failing the expansion. Repeated bindings of one field always receive
// byte-identical formatted text.
//
// strict only raises the diagnostic level for unresolved bindings; the
// degraded output is identical either way.
func resolveBindings(body string, values map[string]Value, log *Logger, strict bool) string {
	var out strings.Builder
	out.Grow(len(body))
	last := 0

	for _, m := range bindingRe.FindAllStringSubmatchIndex(body, -1) {
		property := body[m[2]:m[3]]
		fieldName := body[m[4]:m[5]]

		val, ok := values[fieldName]
		if !ok {
			degrade(log, strict, "unresolved binding: field %q is not declared; leaving %q in place", fieldName, body[m[0]:m[1]])
			continue
		}

		out.WriteString(body[last:m[0]])
		out.WriteString(property)
		out.WriteByte(' ')
		out.WriteString(val.Format())
		last = m[1]
	}
	out.WriteString(body[last:])
	return out.String()
}
