package vrml

import (
	"regexp"
	"strings"
)

// usageRe matches a candidate prototype usage: an identifier followed by
// an opening brace. Ordinary node types (Transform, Shape, ...) match
// too; the registry filter below rejects them.
var usageRe = regexp.MustCompile(`\b([A-Za-z_][A-Za-z0-9_]*)\s*\{`)

// protoInstance is one located usage of a registered prototype: the
// definition it refers to, its absolute [start, end) span in the text
// being expanded, and the per-field overrides read from its body.
// Instances are created and consumed within a single expansion pass.
type protoInstance struct {
	def        *ProtoDefinition
	start, end int
	overrides  map[string]Value
}

// locateInstances finds every top-level prototype usage in text, in
// ascending offset order. Candidates whose identifier is not in the
// registry are skipped, as are candidates nested inside an already
// located usage's span: those travel with the enclosing body and become
// visible to the next expansion pass.
func locateInstances(text string, reg *ProtoRegistry, log *Logger) []protoInstance {
	var instances []protoInstance

	for _, m := range usageRe.FindAllStringSubmatchIndex(text, -1) {
		name := text[m[2]:m[3]]
		def, ok := reg.Lookup(name)
		if !ok {
			continue
		}
		if n := len(instances); n > 0 && m[0] < instances[n-1].end {
			continue
		}

		openBrace := m[1] - 1
		closeBrace := matchDelim(text, openBrace, '{', '}')
		if closeBrace < 0 {
			log.Warn("skipping usage of %q: unmatched '{'", name)
			continue
		}

		body := text[openBrace+1 : closeBrace]
		instances = append(instances, protoInstance{
			def:       def,
			start:     m[0],
			end:       closeBrace + 1,
			overrides: parseOverrides(def, body, log),
		})
	}
	return instances
}

// parseOverrides scans a usage body for values overriding the declared
// fields. The scan is anchored to each field's name and type-directed
// with the same arities as declaration parsing; a field that is absent,
// or whose value cannot be read, keeps its default. Unknown tokens in
// the body are ignored.
func parseOverrides(def *ProtoDefinition, body string, log *Logger) map[string]Value {
	overrides := make(map[string]Value)

	for _, f := range def.Fields {
		at := findWord(body, f.Name, 0)
		if at < 0 {
			continue
		}
		rest := body[at+len(f.Name):]

		switch f.Type {
		case TypeFloat, TypeVec3, TypeColor, TypeRotation:
			n := f.Type.arity()
			nums := parseFloats(rest, n)
			if len(nums) < n {
				log.Warn("keeping default: %v", NewFieldError(def.Name, f.Name, "short override value"))
				continue
			}
			v := Value{Type: f.Type}
			if f.Type == TypeFloat {
				v.Float = nums[0]
			} else {
				copy(v.Vec[:], nums)
			}
			overrides[f.Name] = v
		default:
			// Node-typed and unknown-typed values run until the next
			// declared field name or the end of the body.
			end := len(rest)
			for _, other := range def.Fields {
				if other.Name == f.Name {
					continue
				}
				if i := findWord(rest, other.Name, 0); i >= 0 && i < end {
					end = i
				}
			}
			overrides[f.Name] = NodeValue(f.Type, strings.TrimSpace(rest[:end]))
		}
	}
	return overrides
}

// expand merges the instance's overrides over the definition's defaults
// (override wins per field) and resolves the body's IS bindings against
// the merged mapping. The returned text replaces the usage span.
func (inst *protoInstance) expand(log *Logger, strict bool) string {
	merged := make(map[string]Value, len(inst.def.Fields))
	for _, f := range inst.def.Fields {
		if v, ok := inst.overrides[f.Name]; ok {
			merged[f.Name] = v
			continue
		}
		merged[f.Name] = f.Default
	}
	return resolveBindings(inst.def.Body, merged, log, strict)
}
