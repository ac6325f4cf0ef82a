package vrml

import (
	"strconv"
	"strings"
	"unicode"
)

// token is a whitespace-delimited word plus its byte offset in the source.
type token struct {
	text  string
	start int
}

// tokenize splits s on whitespace, keeping each word's start offset so
// callers can slice verbatim regions back out of the original text.
func tokenize(s string) []token {
	var toks []token
	start := -1
	for i, r := range s {
		if unicode.IsSpace(r) {
			if start >= 0 {
				toks = append(toks, token{text: s[start:i], start: start})
				start = -1
			}
			continue
		}
		if start < 0 {
			start = i
		}
	}
	if start >= 0 {
		toks = append(toks, token{text: s[start:], start: start})
	}
	return toks
}

// parseFloats collects up to max floating-point literals from s, in order,
// skipping anything that is not a number. Commas are treated as separators
// so bracketed lists like "1, 2, 3," parse cleanly.
func parseFloats(s string, max int) []float64 {
	var out []float64
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return unicode.IsSpace(r) || r == ','
	})
	for _, f := range fields {
		v, err := strconv.ParseFloat(f, 64)
		if err != nil {
			continue
		}
		out = append(out, v)
		if max > 0 && len(out) == max {
			break
		}
	}
	return out
}

// parseInts collects every integer literal from s, skipping non-numbers.
// Commas are separators, matching coordIndex list syntax.
func parseInts(s string) []int32 {
	var out []int32
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return unicode.IsSpace(r) || r == ','
	})
	for _, f := range fields {
		v, err := strconv.ParseInt(f, 10, 32)
		if err != nil {
			continue
		}
		out = append(out, int32(v))
	}
	return out
}

// matchDelim returns the index of the delimiter closing the one at open,
// counting nested open/close pairs. It returns -1 when the text ends
// before the depth returns to zero.
func matchDelim(s string, open int, opener, closer byte) int {
	depth := 1
	for i := open + 1; i < len(s); i++ {
		switch s[i] {
		case opener:
			depth++
		case closer:
			depth--
			if depth == 0 {
				return i
			}
		}
	}
	return -1
}

func isWordByte(b byte) bool {
	return b == '_' || b >= '0' && b <= '9' || b >= 'a' && b <= 'z' || b >= 'A' && b <= 'Z'
}

// findWord returns the offset of the first whole-word occurrence of word
// in s at or after from, or -1. Partial matches inside longer identifiers
// (e.g. "size" inside "boxsize") do not count.
func findWord(s, word string, from int) int {
	for from <= len(s)-len(word) {
		i := strings.Index(s[from:], word)
		if i < 0 {
			return -1
		}
		i += from
		before := i == 0 || !isWordByte(s[i-1])
		after := i+len(word) == len(s) || !isWordByte(s[i+len(word)])
		if before && after {
			return i
		}
		from = i + 1
	}
	return -1
}

// stripComments removes '#' comments line-wise, including the version
// header ("#VRML V2.0 utf8"), which is inert to the rest of the pipeline.
// The subset grammar has no string literals, so '#' always starts a comment.
func stripComments(src string) string {
	var b strings.Builder
	b.Grow(len(src))
	for line := range strings.Lines(src) {
		if i := strings.IndexByte(line, '#'); i >= 0 {
			b.WriteString(line[:i])
			if strings.HasSuffix(line, "\n") {
				b.WriteByte('\n')
			}
			continue
		}
		b.WriteString(line)
	}
	return b.String()
}
