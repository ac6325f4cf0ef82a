package vrml

import (
	"reflect"
	"testing"
)

func TestParseFieldDeclarations(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []Field
	}{
		{
			name:  "empty",
			input: "   \n  ",
			want:  nil,
		},
		{
			name:  "single float",
			input: "field SFFloat boxSize 2.5",
			want: []Field{
				{Name: "boxSize", Type: TypeFloat, Default: FloatValue(2.5)},
			},
		},
		{
			name:  "color and float",
			input: "field SFColor boxColor 1 0 0\nfield SFFloat boxSize 1",
			want: []Field{
				{Name: "boxColor", Type: TypeColor, Default: ColorValue(1, 0, 0)},
				{Name: "boxSize", Type: TypeFloat, Default: FloatValue(1)},
			},
		},
		{
			name:  "vec3 and rotation",
			input: "field SFVec3f offset 1 2 3 field SFRotation spin 0 1 0 3.14",
			want: []Field{
				{Name: "offset", Type: TypeVec3, Default: Vec3Value(1, 2, 3)},
				{Name: "spin", Type: TypeRotation, Default: RotationValue(0, 1, 0, 3.14)},
			},
		},
		{
			name:  "node field keeps verbatim text",
			input: "field SFNode inner Shape { geometry Box { } }",
			want: []Field{
				{Name: "inner", Type: TypeNode, Default: NodeValue(TypeNode, "Shape { geometry Box { } }")},
			},
		},
		{
			name:  "node list field",
			input: "field MFNode kids [ ] field SFFloat r 1",
			want: []Field{
				{Name: "kids", Type: TypeNodeList, Default: NodeValue(TypeNodeList, "[ ]")},
				{Name: "r", Type: TypeFloat, Default: FloatValue(1)},
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			log, _ := testLogger()
			got := parseFieldDeclarations(tt.input, log)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("parseFieldDeclarations() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestParseFieldDeclarationsZeroFallback(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  Value
	}{
		{"short vec3", "field SFVec3f offset 1 2", Vec3Value(0, 0, 0)},
		{"missing float", "field SFFloat boxSize", FloatValue(0)},
		{"short rotation", "field SFRotation spin 0 1", RotationValue(0, 0, 1, 0)},
		{"non-numeric color", "field SFColor tint red green blue", ColorValue(0, 0, 0)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			log, buf := testLogger()
			got := parseFieldDeclarations(tt.input, log)
			if len(got) != 1 {
				t.Fatalf("expected 1 field, got %d", len(got))
			}
			if !reflect.DeepEqual(got[0].Default, tt.want) {
				t.Errorf("default = %+v, want zero fallback %+v", got[0].Default, tt.want)
			}
			assertLogged(t, buf, "using zero default")
		})
	}
}

func TestParseFieldDeclarationsFailureIsFieldLocal(t *testing.T) {
	log, _ := testLogger()
	got := parseFieldDeclarations("field SFVec3f bad 1 field SFFloat good 7", log)

	want := []Field{
		{Name: "bad", Type: TypeVec3, Default: Vec3Value(0, 0, 0)},
		{Name: "good", Type: TypeFloat, Default: FloatValue(7)},
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("parseFieldDeclarations() = %+v, want %+v", got, want)
	}
}

func TestParseFieldDeclarationsUnknownType(t *testing.T) {
	log, buf := testLogger()
	got := parseFieldDeclarations(`field SFString label "hello world"`, log)

	if len(got) != 1 {
		t.Fatalf("expected 1 field, got %d", len(got))
	}
	if got[0].Type != TypeUnknown {
		t.Errorf("type = %v, want TypeUnknown", got[0].Type)
	}
	if got[0].Default.Raw != `"hello world"` {
		t.Errorf("raw value = %q, want the verbatim text", got[0].Default.Raw)
	}
	assertLogged(t, buf, "unknown field type tag")
}
