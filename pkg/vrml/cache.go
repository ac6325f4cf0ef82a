package vrml

import (
	"container/list"
	"hash/fnv"
	"strconv"
	"sync"
	"time"
)

// CacheConfig contains configuration options for the scene cache.
type CacheConfig struct {
	// MaxSize is the maximum number of scenes to cache. 0 disables caching.
	MaxSize int
	// TTL is the time-to-live for cached scenes. 0 means no expiration.
	TTL time.Duration
}

// SceneCache is an LRU cache of parsed scenes keyed by source text hash.
// Identical inputs always produce identical scenes, and scenes are
// immutable, so cached pointers can be shared across callers. Safe for
// concurrent use.
type SceneCache struct {
	mu     sync.Mutex
	cache  map[string]*sceneCacheEntry
	lru    *list.List
	config CacheConfig
}

type sceneCacheEntry struct {
	key     string
	scene   *Scene
	expiry  time.Time
	element *list.Element
}

// NewSceneCache creates a scene cache with the given configuration.
func NewSceneCache(config CacheConfig) *SceneCache {
	return &SceneCache{
		cache:  make(map[string]*sceneCacheEntry),
		lru:    list.New(),
		config: config,
	}
}

// SourceKey returns the cache key for a source text: its FNV-1a hash.
func SourceKey(src string) string {
	h := fnv.New64a()
	h.Write([]byte(src))
	return strconv.FormatUint(h.Sum64(), 16)
}

// Get retrieves a cached scene, honoring TTL expiry and refreshing the
// entry's LRU position on a hit.
func (sc *SceneCache) Get(key string) (*Scene, bool) {
	if sc.config.MaxSize == 0 {
		return nil, false
	}

	sc.mu.Lock()
	defer sc.mu.Unlock()

	entry, exists := sc.cache[key]
	if !exists {
		return nil, false
	}
	if sc.config.TTL > 0 && time.Now().After(entry.expiry) {
		sc.lru.Remove(entry.element)
		delete(sc.cache, key)
		return nil, false
	}
	sc.lru.MoveToFront(entry.element)
	return entry.scene, true
}

// Set stores a scene under key, evicting the least recently used entry
// when the cache is full.
func (sc *SceneCache) Set(key string, scene *Scene) {
	if sc.config.MaxSize == 0 {
		return
	}

	sc.mu.Lock()
	defer sc.mu.Unlock()

	if entry, exists := sc.cache[key]; exists {
		entry.scene = scene
		if sc.config.TTL > 0 {
			entry.expiry = time.Now().Add(sc.config.TTL)
		}
		sc.lru.MoveToFront(entry.element)
		return
	}

	if sc.lru.Len() >= sc.config.MaxSize {
		oldest := sc.lru.Back()
		if oldest != nil {
			oldEntry := oldest.Value.(*sceneCacheEntry)
			delete(sc.cache, oldEntry.key)
			sc.lru.Remove(oldest)
		}
	}

	entry := &sceneCacheEntry{key: key, scene: scene}
	if sc.config.TTL > 0 {
		entry.expiry = time.Now().Add(sc.config.TTL)
	}
	entry.element = sc.lru.PushFront(entry)
	sc.cache[key] = entry
}

// Remove deletes a cached scene.
func (sc *SceneCache) Remove(key string) {
	sc.mu.Lock()
	defer sc.mu.Unlock()

	if entry, exists := sc.cache[key]; exists {
		sc.lru.Remove(entry.element)
		delete(sc.cache, key)
	}
}

// Len returns the number of cached scenes.
func (sc *SceneCache) Len() int {
	sc.mu.Lock()
	defer sc.mu.Unlock()
	return sc.lru.Len()
}

// Clear empties the cache.
func (sc *SceneCache) Clear() {
	sc.mu.Lock()
	defer sc.mu.Unlock()
	sc.cache = make(map[string]*sceneCacheEntry)
	sc.lru.Init()
}
