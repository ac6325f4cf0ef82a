package vrml

import (
	"strings"
	"testing"
)

// expandFixture registers protos from src and runs expansion over the
// residual text with a debug logger.
func expandFixture(t *testing.T, src string, cfg *Config) (string, *strings.Builder) {
	t.Helper()
	var buf strings.Builder
	log := NewLogger(&buf, LogDebug)
	reg := NewProtoRegistry()
	residual := extractProtos(src, reg, log)
	return expandInstances(residual, reg, NewConfigWithDefaults(cfg), log), &buf
}

func TestExpandUsesDefaults(t *testing.T) {
	src := coloredBoxProto + "\nColoredBox { }\n"

	got, _ := expandFixture(t, src, nil)

	if !strings.Contains(got, "diffuseColor 1 0 0") {
		t.Errorf("expected default color in output, got %q", got)
	}
	if !strings.Contains(got, "size 1") {
		t.Errorf("expected default size in output, got %q", got)
	}
	if strings.Contains(got, "ColoredBox") {
		t.Errorf("usage not expanded: %q", got)
	}
}

func TestExpandOverrideWins(t *testing.T) {
	src := coloredBoxProto + "\nColoredBox { boxColor 0 1 0 boxSize 2 }\n"

	got, _ := expandFixture(t, src, nil)

	if !strings.Contains(got, "diffuseColor 0 1 0") {
		t.Errorf("expected override color in output, got %q", got)
	}
	if !strings.Contains(got, "size 2") {
		t.Errorf("expected override size in output, got %q", got)
	}
	if strings.Contains(got, "diffuseColor 1 0 0") {
		t.Errorf("default color leaked into output: %q", got)
	}
}

func TestExpandTwoInstances(t *testing.T) {
	src := coloredBoxProto + `
ColoredBox { boxColor 0 1 0 boxSize 2 }
ColoredBox { boxColor 0 0 1 }
`
	got, _ := expandFixture(t, src, nil)

	for _, want := range []string{"diffuseColor 0 1 0", "size 2", "diffuseColor 0 0 1", "size 1"} {
		if !strings.Contains(got, want) {
			t.Errorf("expected %q in expanded output:\n%s", want, got)
		}
	}
	if n := strings.Count(got, "Shape {"); n != 2 {
		t.Errorf("expected 2 Shape blocks, found %d", n)
	}
}

func TestExpandNestedTwoLevels(t *testing.T) {
	src := `
PROTO Inner [ field SFFloat r 1 ] { Shape { geometry Sphere { radius IS r } } }
PROTO Outer [ field SFVec3f at 0 0 0 ] {
  Transform {
    translation IS at
    children [ Inner { r 5 } ]
  }
}
Outer { at 1 2 3 }
`
	got, _ := expandFixture(t, src, nil)

	for _, leftover := range []string{"Outer", "Inner", " IS "} {
		if strings.Contains(got, leftover) {
			t.Errorf("expansion left %q behind:\n%s", leftover, got)
		}
	}
	for _, want := range []string{"translation 1 2 3", "radius 5"} {
		if !strings.Contains(got, want) {
			t.Errorf("expected %q in expanded output:\n%s", want, got)
		}
	}
}

func TestExpandSelfReferenceTerminates(t *testing.T) {
	src := `
PROTO Ouroboros [ field SFFloat n 1 ] { Transform { Ouroboros { n 2 } } }
Ouroboros { }
`
	got, buf := expandFixture(t, src, &Config{MaxExpansionDepth: 5})

	if got == "" {
		t.Fatal("expansion returned empty text")
	}
	assertBuilderLogged(t, buf, "expansion stopped at depth 5")
}

func TestExpandMutualReferenceTerminates(t *testing.T) {
	src := `
PROTO Ping [ ] { Transform { Pong { } } }
PROTO Pong [ ] { Transform { Ping { } } }
Ping { }
`
	got, buf := expandFixture(t, src, &Config{MaxExpansionDepth: 4})

	if got == "" {
		t.Fatal("expansion returned empty text")
	}
	assertBuilderLogged(t, buf, "expansion stopped at depth 4")
}

func TestExpandUnregisteredUsageLeftAlone(t *testing.T) {
	var buf strings.Builder
	log := NewLogger(&buf, LogDebug)
	reg := NewProtoRegistry()

	text := "Mystery { radius 1 }"
	got := expandInstances(text, reg, DefaultConfig(), log)

	if got != text {
		t.Errorf("unregistered usage should pass through unchanged, got %q", got)
	}
}

func TestExpandDeepValidNestingWithinCeiling(t *testing.T) {
	src := `
PROTO L3 [ ] { Shape { geometry Box { size 3 3 3 } } }
PROTO L2 [ ] { Group { children [ L3 { } ] } }
PROTO L1 [ ] { Group { children [ L2 { } ] } }
L1 { }
`
	got, _ := expandFixture(t, src, nil)

	if !strings.Contains(got, "size 3 3 3") {
		t.Errorf("innermost body never surfaced:\n%s", got)
	}
	for _, leftover := range []string{"L1", "L2", "L3"} {
		if strings.Contains(got, leftover+" {") {
			t.Errorf("usage %q left behind:\n%s", leftover, got)
		}
	}
}

func assertBuilderLogged(t *testing.T, buf *strings.Builder, substr string) {
	t.Helper()
	if !strings.Contains(buf.String(), substr) {
		t.Errorf("expected log output to contain %q, got:\n%s", substr, buf.String())
	}
}
