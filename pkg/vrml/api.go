// Package vrml converts a legacy declarative 3D scene description (a
// VRML-style node graph with nested blocks, typed fields, and
// parameterized PROTO templates) into a flat scene description a
// renderer can consume.
//
// Basic usage:
//
//	engine := vrml.New()
//	scene, err := engine.ParseFile("world.wrl")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	for _, e := range scene.Entities {
//	    fmt.Println(e.Geometry, e.Position)
//	}
//
// Parsing itself never fails: malformed prototypes, unresolved IS
// bindings and over-deep expansions all degrade locally and are reported
// through the configured diagnostics sink. ParseFile only returns file
// I/O errors. See Config for tuning the expansion depth ceiling,
// caching and diagnostics.
package vrml

import (
	"fmt"
	"os"
)

// Engine is the main entry point. It holds configuration and a scene
// cache; each Parse call gets a fresh Parser (and with it a fresh
// prototype registry), so an Engine may be used from multiple goroutines.
type Engine struct {
	config *Config
	cache  *SceneCache
}

// New creates an engine with configuration from the environment.
func New() *Engine {
	return NewWithConfig(ConfigFromEnvironment())
}

// NewWithConfig creates an engine with custom configuration.
func NewWithConfig(config *Config) *Engine {
	config = NewConfigWithDefaults(config)
	return &Engine{
		config: config,
		cache: NewSceneCache(CacheConfig{
			MaxSize: config.CacheMaxSize,
			TTL:     config.CacheTTL,
		}),
	}
}

// Config returns the engine's effective configuration.
func (e *Engine) Config() *Config {
	return e.config
}

// Parse converts source text into a scene, consulting the cache first.
func (e *Engine) Parse(src string) *Scene {
	key := SourceKey(src)
	if scene, ok := e.cache.Get(key); ok {
		return scene
	}
	scene := NewParser(e.config).Parse(src)
	e.cache.Set(key, scene)
	return scene
}

// Inspect converts source text and additionally reports the prototypes
// it registered. Inspection results bypass the cache.
func (e *Engine) Inspect(src string) *Inspection {
	return NewParser(e.config).Inspect(src)
}

// InspectFile reads a scene description file and inspects it.
func (e *Engine) InspectFile(path string) (*Inspection, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read scene file: %w", err)
	}
	return e.Inspect(string(data)), nil
}

// ParseFile reads a scene description file and converts it. The only
// possible errors are file I/O errors; see Parse.
func (e *Engine) ParseFile(path string) (*Scene, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read scene file: %w", err)
	}
	return e.Parse(string(data)), nil
}

// Parse converts source text into a scene using default configuration
// with diagnostics discarded. For anything beyond one-shot use, create
// an Engine.
func Parse(src string) *Scene {
	return NewParser(nil).Parse(src)
}
