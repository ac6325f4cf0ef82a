package vrml

import (
	"fmt"
	"math"
	"regexp"
)

// defRe matches a "DEF <name>" naming prefix. DEF names exist for USE
// references the subset does not follow, so they are stripped before
// node extraction.
var defRe = regexp.MustCompile(`\bDEF\s+[A-Za-z_][A-Za-z0-9_]*\s*`)

// block is one brace-matched node occurrence: the keyword's offset and
// the [open, close] brace offsets.
type block struct {
	start, open, close int
}

func (b block) inner(text string) string {
	return text[b.open+1 : b.close]
}

// findBlocks locates every brace-matched "<name> { ... }" block in text,
// nested occurrences included, in ascending offset order. Occurrences
// with no matching closing brace are dropped.
func findBlocks(text, name string) []block {
	var blocks []block
	for from := 0; ; {
		at := findWord(text, name, from)
		if at < 0 {
			return blocks
		}
		from = at + len(name)
		open := -1
		for i := from; i < len(text); i++ {
			c := text[i]
			if c == '{' {
				open = i
			}
			if c != ' ' && c != '\t' && c != '\n' && c != '\r' {
				break
			}
		}
		if open < 0 {
			continue
		}
		close := matchDelim(text, open, '{', '}')
		if close < 0 {
			continue
		}
		blocks = append(blocks, block{start: at, open: open, close: close})
		from = open + 1
	}
}

// extractEntities walks fully expanded, template-free text and produces
// the ordered entity list. Transform blocks contribute position,
// rotation and scale around their nested Shape; Group blocks and
// standalone Shape blocks contribute entities at the origin. Blocks with
// no recognizable geometry are skipped; if nothing at all is produced, a
// single default entity keeps the scene non-empty.
func extractEntities(text string, log *Logger) []Entity {
	text = defRe.ReplaceAllString(text, "")

	var entities []Entity
	consumed := make(map[int]bool) // start offsets of Shape blocks already handled

	for _, t := range findBlocks(text, "Transform") {
		inner := t.inner(text)
		e := firstShapeEntity(text, t, inner, consumed, log)
		if e == nil {
			continue
		}
		if pos, ok := floatsAfter(inner, "translation", 3); ok {
			e.Position = [3]float64{pos[0], pos[1], pos[2]}
		}
		if rot, ok := floatsAfter(inner, "rotation", 3); ok {
			e.Rotation = &[3]float64{rot[0], rot[1], rot[2]}
		}
		if sc, ok := floatsAfter(inner, "scale", 3); ok {
			e.Scale = &[3]float64{sc[0], sc[1], sc[2]}
		}
		entities = append(entities, *e)
	}

	for _, g := range findBlocks(text, "Group") {
		inner := g.inner(text)
		for _, s := range findBlocks(inner, "Shape") {
			consumed[g.open+1+s.start] = true
		}
		if e := parseShapeContent(inner, log); e != nil {
			entities = append(entities, *e)
		}
	}

	for _, s := range findBlocks(text, "Shape") {
		if consumed[s.start] {
			continue
		}
		if e := parseShapeContent(s.inner(text), log); e != nil {
			entities = append(entities, *e)
		}
	}

	if len(entities) == 0 {
		log.Info("no entities extracted; synthesizing default entity")
		entities = append(entities, defaultEntity())
	}
	return entities
}

// firstShapeEntity parses the first Shape block nested in a Transform and
// marks it consumed so the standalone pass skips it.
func firstShapeEntity(text string, t block, inner string, consumed map[int]bool, log *Logger) *Entity {
	shapes := findBlocks(inner, "Shape")
	if len(shapes) == 0 {
		return nil
	}
	s := shapes[0]
	consumed[t.open+1+s.start] = true
	return parseShapeContent(s.inner(inner), log)
}

// parseShapeContent reads material and geometry attributes out of a
// shape block's inner text. It returns nil when no geometry keyword is
// present; such blocks are skipped, not faulted.
func parseShapeContent(inner string, log *Logger) *Entity {
	kind, ok := geometryKind(inner)
	if !ok {
		log.Debug("shape block has no recognizable geometry; skipping")
		return nil
	}

	e := &Entity{Color: defaultColor, Geometry: kind}
	if rgb, ok := floatsAfter(inner, "diffuseColor", 3); ok {
		e.Color = rgbHex(rgb[0], rgb[1], rgb[2])
	}
	if rgb, ok := floatsAfter(inner, "emissiveColor", 3); ok {
		e.EmissiveColor = rgbHex(rgb[0], rgb[1], rgb[2])
	}
	if tr, ok := floatsAfter(inner, "transparency", 1); ok {
		e.Transparency = &tr[0]
	}

	switch kind {
	case GeometryBox:
		size := [3]float64{1, 1, 1}
		if s, ok := floatsAfter(inner, "size", 3); ok {
			size = [3]float64{s[0], s[1], s[2]}
		}
		e.Size = &size
	case GeometrySphere:
		e.Radius = floatOrDefault(inner, "radius", 1)
	case GeometryCylinder:
		e.Radius = floatOrDefault(inner, "radius", 1)
		e.Height = floatOrDefault(inner, "height", 2)
	case GeometryCone:
		// The cone's bottomRadius is surfaced as the entity's radius.
		e.Radius = floatOrDefault(inner, "bottomRadius", 1)
		e.Height = floatOrDefault(inner, "height", 2)
	case GeometryMesh, GeometryLines:
		e.Vertices = bracketFloats(inner, "point")
		e.Indices = assembleIndices(bracketInts(inner, "coordIndex"), kind)
	}
	return e
}

// geometryKind picks the block's geometry by keyword presence, in fixed
// priority order: line sets beat face sets beat primitive shapes.
func geometryKind(inner string) (GeometryKind, bool) {
	checks := []struct {
		keyword string
		kind    GeometryKind
	}{
		{"IndexedLineSet", GeometryLines},
		{"IndexedFaceSet", GeometryMesh},
		{"Sphere", GeometrySphere},
		{"Box", GeometryBox},
		{"Cylinder", GeometryCylinder},
		{"Cone", GeometryCone},
	}
	for _, c := range checks {
		if findWord(inner, c.keyword, 0) >= 0 {
			return c.kind, true
		}
	}
	return "", false
}

// assembleIndices converts a raw coordIndex list, segmented on the -1
// sentinel, into renderable indices: triangle fans for meshes and
// consecutive vertex pairs for line sets.
func assembleIndices(raw []int32, kind GeometryKind) []int32 {
	var out []int32
	var seg []int32
	flush := func() {
		switch kind {
		case GeometryMesh:
			for k := 1; k+1 < len(seg); k++ {
				out = append(out, seg[0], seg[k], seg[k+1])
			}
		case GeometryLines:
			for k := 0; k+1 < len(seg); k++ {
				out = append(out, seg[k], seg[k+1])
			}
		}
		seg = seg[:0]
	}
	for _, idx := range raw {
		if idx == -1 {
			flush()
			continue
		}
		seg = append(seg, idx)
	}
	flush()
	return out
}

// floatsAfter scans for the first whole-word key in text and reads the
// next n floating literals after it.
func floatsAfter(text, key string, n int) ([]float64, bool) {
	at := findWord(text, key, 0)
	if at < 0 {
		return nil, false
	}
	nums := parseFloats(text[at+len(key):], n)
	if len(nums) < n {
		return nil, false
	}
	return nums, true
}

func floatOrDefault(text, key string, def float64) *float64 {
	if nums, ok := floatsAfter(text, key, 1); ok {
		return &nums[0]
	}
	return &def
}

// bracketFloats reads the flattened float list from "<key> [ ... ]".
func bracketFloats(text, key string) []float64 {
	body, ok := bracketBody(text, key)
	if !ok {
		return nil
	}
	return parseFloats(body, 0)
}

// bracketInts reads the integer list from "<key> [ ... ]".
func bracketInts(text, key string) []int32 {
	body, ok := bracketBody(text, key)
	if !ok {
		return nil
	}
	return parseInts(body)
}

func bracketBody(text, key string) (string, bool) {
	at := findWord(text, key, 0)
	if at < 0 {
		return "", false
	}
	open := -1
	for i := at + len(key); i < len(text); i++ {
		if text[i] == '[' {
			open = i
			break
		}
		if !isSpaceByte(text[i]) {
			return "", false
		}
	}
	if open < 0 {
		return "", false
	}
	close := matchDelim(text, open, '[', ']')
	if close < 0 {
		return "", false
	}
	return text[open+1 : close], true
}

func isSpaceByte(b byte) bool {
	return b == ' ' || b == '\t' || b == '\n' || b == '\r'
}

// rgbHex converts color components in [0,1] to a "#rrggbb" string.
func rgbHex(r, g, b float64) string {
	return fmt.Sprintf("#%02x%02x%02x", channel(r), channel(g), channel(b))
}

func channel(c float64) int {
	return int(math.Round(math.Min(1, math.Max(0, c)) * 255))
}
