package vrml

import "regexp"

// protoHeadRe matches the start of a prototype definition: the PROTO
// keyword, the prototype name, and the opening bracket of its parameter
// list. The bracket's position anchors the depth-counting scan.
var protoHeadRe = regexp.MustCompile(`\bPROTO\s+([A-Za-z_][A-Za-z0-9_]*)\s*\[`)

// extractProtos finds every prototype definition block in src, registers
// the well-formed ones in reg, and returns src with the consumed blocks
// removed. Malformed blocks (unmatched delimiters, missing body) are
// logged and skipped without blocking extraction of other blocks.
func extractProtos(src string, reg *ProtoRegistry, log *Logger) string {
	type span struct{ start, end int }
	var consumed []span

	for _, m := range protoHeadRe.FindAllStringSubmatchIndex(src, -1) {
		start := m[0]
		name := src[m[2]:m[3]]
		openBracket := m[1] - 1

		// A PROTO nested inside an already-consumed block travels with
		// that block's body; consuming it separately would corrupt the
		// enclosing span's offsets.
		if n := len(consumed); n > 0 && start < consumed[n-1].end {
			continue
		}

		closeBracket := matchDelim(src, openBracket, '[', ']')
		if closeBracket < 0 {
			log.Warn("skipping prototype: %v", NewProtoError(name, "unmatched '[' in parameter list"))
			continue
		}
		fields := parseFieldDeclarations(src[openBracket+1:closeBracket], log.WithField("proto", name))

		openBrace := -1
		for i := closeBracket + 1; i < len(src); i++ {
			if src[i] == '{' {
				openBrace = i
				break
			}
		}
		if openBrace < 0 {
			log.Warn("skipping prototype: %v", NewProtoError(name, "missing body"))
			continue
		}
		closeBrace := matchDelim(src, openBrace, '{', '}')
		if closeBrace < 0 {
			log.Warn("skipping prototype: %v", NewProtoError(name, "unmatched '{' in body"))
			continue
		}

		// The body is stored verbatim, IS bindings and all; they are
		// resolved per instance at expansion time.
		reg.Register(&ProtoDefinition{
			Name:   name,
			Fields: fields,
			Body:   src[openBrace+1 : closeBrace],
		})
		log.Debug("registered prototype %q with %d fields", name, len(fields))
		consumed = append(consumed, span{start: start, end: closeBrace + 1})
	}

	// Remove consumed blocks back to front so earlier spans keep their
	// offsets while later ones are cut out.
	residual := src
	for i := len(consumed) - 1; i >= 0; i-- {
		s := consumed[i]
		residual = residual[:s.start] + residual[s.end:]
	}
	return residual
}
