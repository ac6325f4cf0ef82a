package vrml

import (
	"testing"
	"time"
)

func TestSceneCacheHitAndMiss(t *testing.T) {
	cache := NewSceneCache(CacheConfig{MaxSize: 2})
	scene := &Scene{Entities: []Entity{defaultEntity()}}

	if _, ok := cache.Get("a"); ok {
		t.Error("expected a miss on an empty cache")
	}

	cache.Set("a", scene)
	got, ok := cache.Get("a")
	if !ok {
		t.Fatal("expected a hit after Set")
	}
	if got != scene {
		t.Error("cache returned a different scene pointer")
	}
}

func TestSceneCacheEvictsLeastRecentlyUsed(t *testing.T) {
	cache := NewSceneCache(CacheConfig{MaxSize: 2})
	cache.Set("a", &Scene{})
	cache.Set("b", &Scene{})

	// Touch "a" so "b" becomes the eviction candidate.
	cache.Get("a")
	cache.Set("c", &Scene{})

	if _, ok := cache.Get("b"); ok {
		t.Error("expected the least recently used entry to be evicted")
	}
	if _, ok := cache.Get("a"); !ok {
		t.Error("recently used entry should survive eviction")
	}
	if cache.Len() != 2 {
		t.Errorf("Len() = %d, want 2", cache.Len())
	}
}

func TestSceneCacheTTLExpiry(t *testing.T) {
	cache := NewSceneCache(CacheConfig{MaxSize: 2, TTL: 10 * time.Millisecond})
	cache.Set("a", &Scene{})

	if _, ok := cache.Get("a"); !ok {
		t.Fatal("expected a hit before expiry")
	}
	time.Sleep(20 * time.Millisecond)
	if _, ok := cache.Get("a"); ok {
		t.Error("expected a miss after TTL expiry")
	}
}

func TestSceneCacheDisabled(t *testing.T) {
	cache := NewSceneCache(CacheConfig{MaxSize: 0})
	cache.Set("a", &Scene{})

	if _, ok := cache.Get("a"); ok {
		t.Error("a disabled cache must never hit")
	}
	if cache.Len() != 0 {
		t.Errorf("Len() = %d, want 0", cache.Len())
	}
}

func TestSceneCacheRemoveAndClear(t *testing.T) {
	cache := NewSceneCache(CacheConfig{MaxSize: 5})
	cache.Set("a", &Scene{})
	cache.Set("b", &Scene{})

	cache.Remove("a")
	if _, ok := cache.Get("a"); ok {
		t.Error("expected a miss after Remove")
	}

	cache.Clear()
	if cache.Len() != 0 {
		t.Errorf("Len() after Clear = %d, want 0", cache.Len())
	}
	if _, ok := cache.Get("b"); ok {
		t.Error("expected a miss after Clear")
	}
}

func TestSourceKeyDiffers(t *testing.T) {
	if SourceKey("Shape { }") == SourceKey("Group { }") {
		t.Error("distinct sources should hash to distinct keys")
	}
	if SourceKey("same") != SourceKey("same") {
		t.Error("identical sources must hash identically")
	}
}
