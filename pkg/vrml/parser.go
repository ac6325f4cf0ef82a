package vrml

import "sort"

// Parser runs the full pipeline for one source text: strip comments,
// extract prototype definitions, expand every usage to a fixed point,
// then extract scene entities from the template-free result.
//
// Each Parser owns its own ProtoRegistry, which is cleared when Parse
// returns, so two parses never observe each other's prototypes. A Parser
// is single-use per call but holds no state between calls beyond the
// (cleared) registry; the Engine facade creates one per invocation so
// concurrent parses share nothing.
type Parser struct {
	config *Config
	log    *Logger
	reg    *ProtoRegistry
}

// NewParser creates a parser with the given configuration. A nil config
// means defaults with discarded diagnostics.
func NewParser(config *Config) *Parser {
	config = NewConfigWithDefaults(config)
	return &Parser{
		config: config,
		log:    config.logger(),
		reg:    NewProtoRegistry(),
	}
}

// Registry exposes the parser's prototype registry. It is populated
// during Parse and cleared again before Parse returns.
func (p *Parser) Registry() *ProtoRegistry {
	return p.reg
}

// Parse converts one source text into a scene. It never fails: every
// malformed construct degrades locally (logged through the configured
// sink), and the worst possible outcome is a partially expanded or
// default-filled scene.
func (p *Parser) Parse(src string) *Scene {
	scene, _ := p.run(src)
	return scene
}

// PrototypeInfo is a snapshot of one registered prototype, taken for
// inspection before the registry is cleared.
type PrototypeInfo struct {
	Name   string
	Fields []Field
}

// Inspection pairs a parse's result with the prototypes it registered
// along the way, for tooling that reports on a world file.
type Inspection struct {
	Prototypes []PrototypeInfo
	Scene      *Scene
}

// Inspect runs the same pipeline as Parse but also reports the
// registered prototypes, sorted by name.
func (p *Parser) Inspect(src string) *Inspection {
	scene, protos := p.run(src)
	return &Inspection{Prototypes: protos, Scene: scene}
}

func (p *Parser) run(src string) (*Scene, []PrototypeInfo) {
	defer p.reg.Clear()

	text := stripComments(src)
	residual := extractProtos(text, p.reg, p.log)
	p.log.Debug("extracted %d prototypes, %d bytes residual", p.reg.Len(), len(residual))

	var protos []PrototypeInfo
	for _, def := range p.reg.protos {
		protos = append(protos, PrototypeInfo{Name: def.Name, Fields: def.Fields})
	}
	sort.Slice(protos, func(i, j int) bool { return protos[i].Name < protos[j].Name })

	expanded := expandInstances(residual, p.reg, p.config, p.log)

	entities := extractEntities(expanded, p.log)
	p.log.Info("parsed scene with %d entities", len(entities))
	return &Scene{Entities: entities}, protos
}
