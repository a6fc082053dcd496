package software

import (
	"fmt"

	"github.com/gogpu/lottie/engine"
	"github.com/gogpu/lottie/internal/cache"
)

// DefaultModelCacheSize is the number of parsed models kept by New engines.
const DefaultModelCacheSize = 10

// Engine is the pure Go reference engine.
//
// Engine is safe for concurrent use: Load may be called from several
// goroutines. Each returned animation must be used by one goroutine at a time.
type Engine struct {
	models *cache.LRU[modelKey, *composition]
}

// modelKey identifies a cached model. Files loaded from different
// directories may share a name, so the resource path is part of the key.
type modelKey struct {
	key          string
	resourcePath string
}

// shared backs the registry entry so every lookup sees one model cache,
// the way librlottie keeps a process-wide cache.
var shared = New()

// init registers the software engine on package import.
func init() {
	engine.Register(engine.EngineSoftware, func() engine.Engine {
		return shared
	})
}

// New creates a software engine with its own model cache.
func New() *Engine {
	return &Engine{
		models: cache.NewLRU[modelKey, *composition](DefaultModelCacheSize),
	}
}

// Name returns the engine identifier.
func (e *Engine) Name() string {
	return engine.EngineSoftware
}

// Load parses data and returns an animation. When key is not empty, a model
// cached under the same key and resource path is reused and data is not
// parsed again.
func (e *Engine) Load(data, key, resourcePath string) (engine.Animation, error) {
	log := engine.Logger()
	mk := modelKey{key: key, resourcePath: resourcePath}

	if key != "" {
		if comp, ok := e.models.Get(mk); ok {
			log.Debug("software: model cache hit", "key", key)
			return &animation{comp: comp}, nil
		}
	}

	comp, err := parseComposition(data)
	if err != nil {
		log.Debug("software: content rejected", "key", key, "err", err)
		return nil, fmt.Errorf("%w: %w", engine.ErrRejected, err)
	}
	if key != "" {
		e.models.Put(mk, comp)
	}

	log.Debug("software: animation loaded",
		"key", key,
		"resource_path", resourcePath,
		"size", fmt.Sprintf("%dx%d", comp.width, comp.height),
		"layers", len(comp.layers))
	return &animation{comp: comp}, nil
}

// SetModelCacheSize resizes the model cache; 0 disables caching.
func (e *Engine) SetModelCacheSize(size int) {
	e.models.SetCapacity(size)
}

// CacheStats returns model cache statistics.
func (e *Engine) CacheStats() cache.Stats {
	return e.models.Stats()
}

var (
	_ engine.Engine      = (*Engine)(nil)
	_ engine.ModelCacher = (*Engine)(nil)
)
