package vrml

// GeometryKind names the kind of geometry an entity carries. The string
// values are what convert to JSON/YAML for downstream consumers.
type GeometryKind string

const (
	GeometryBox      GeometryKind = "box"
	GeometrySphere   GeometryKind = "sphere"
	GeometryCylinder GeometryKind = "cylinder"
	GeometryCone     GeometryKind = "cone"
	GeometryMesh     GeometryKind = "mesh"
	GeometryLines    GeometryKind = "lines"
)

// Entity is one flat shape record in the output scene. Optional
// attributes are pointers so that "absent" and "zero" stay distinct in
// serialized output. Entities are immutable once produced.
//
// Transparency keeps the source convention (0 = opaque, 1 = fully
// transparent); renderers wanting opacity compute 1 - Transparency.
// Mesh and lines geometry expose flat vertex/index sequences; the
// consumer builds its own buffers and normals.
type Entity struct {
	Position      [3]float64   `json:"position" yaml:"position,flow"`
	Rotation      *[3]float64  `json:"rotation,omitempty" yaml:"rotation,omitempty,flow"`
	Scale         *[3]float64  `json:"scale,omitempty" yaml:"scale,omitempty,flow"`
	Color         string       `json:"color" yaml:"color"`
	EmissiveColor string       `json:"emissiveColor,omitempty" yaml:"emissiveColor,omitempty"`
	Transparency  *float64     `json:"transparency,omitempty" yaml:"transparency,omitempty"`
	Geometry      GeometryKind `json:"geometry" yaml:"geometry"`
	Size          *[3]float64  `json:"size,omitempty" yaml:"size,omitempty,flow"`
	Radius        *float64     `json:"radius,omitempty" yaml:"radius,omitempty"`
	Height        *float64     `json:"height,omitempty" yaml:"height,omitempty"`
	Vertices      []float64    `json:"vertices,omitempty" yaml:"vertices,omitempty,flow"`
	Indices       []int32      `json:"indices,omitempty" yaml:"indices,omitempty,flow"`
}

// Scene is the converter's sole output contract: entities in the order
// they were discovered in the source text. A scene is never empty; when
// extraction yields nothing a single default entity is synthesized.
// Consumers must treat the value as read-only.
type Scene struct {
	Entities []Entity `json:"entities" yaml:"entities"`
}

// defaultColor is the diffuse color used when a shape declares none.
const defaultColor = "#008080"

// defaultEntity is what an otherwise empty scene receives: a unit box at
// the origin in the default color.
func defaultEntity() Entity {
	return Entity{
		Position: [3]float64{0, 0, 0},
		Color:    defaultColor,
		Geometry: GeometryBox,
		Size:     &[3]float64{1, 1, 1},
	}
}
