package vrml

// ProtoDefinition is one extracted prototype: its name, its parameter
// list in declaration order, and its body text with IS bindings still in
// place. Definitions are never mutated after registration.
type ProtoDefinition struct {
	Name   string
	Fields []Field
	Body   string
}

// ProtoRegistry maps prototype names to their definitions for the
// duration of a single parse. Each Parser owns exactly one registry and
// clears it when the parse completes, so nothing leaks between parses.
// A registry is not safe for concurrent use; concurrency is achieved by
// giving each parse its own.
type ProtoRegistry struct {
	protos map[string]*ProtoDefinition
}

// NewProtoRegistry returns an empty registry.
func NewProtoRegistry() *ProtoRegistry {
	return &ProtoRegistry{protos: make(map[string]*ProtoDefinition)}
}

// Register stores def under its name. Registration is an unconditional
// upsert: a later definition under the same name replaces the earlier one.
func (r *ProtoRegistry) Register(def *ProtoDefinition) {
	r.protos[def.Name] = def
}

// Lookup returns the definition registered under name, if any.
func (r *ProtoRegistry) Lookup(name string) (*ProtoDefinition, bool) {
	def, ok := r.protos[name]
	return def, ok
}

// Has reports whether a definition is registered under name.
func (r *ProtoRegistry) Has(name string) bool {
	_, ok := r.protos[name]
	return ok
}

// Len returns the number of registered definitions (unique names).
func (r *ProtoRegistry) Len() int {
	return len(r.protos)
}

// Clear drops every registered definition.
func (r *ProtoRegistry) Clear() {
	clear(r.protos)
}
