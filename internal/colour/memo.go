package colour

import "sync"

// Cache is the memoisation store used by Memo. Keys are canonical
// "#rrggbb" strings. Implementations must be safe for concurrent use if
// a Memo is shared between analysis calls; MapCache is, and callers that
// batch-process sites may instead construct a Memo per request.
type Cache interface {
	Get(key string) (any, bool)
	Put(key string, value any)
}

// MapCache is an unbounded, mutex-guarded map cache. Unbounded is
// acceptable here: the key domain is the set of distinct colours actually
// observed in the analysed CSS, which is small.
type MapCache struct {
	mu sync.RWMutex
	m  map[string]any
}

// NewMapCache creates an empty MapCache.
func NewMapCache() *MapCache {
	return &MapCache{m: make(map[string]any)}
}

// Get returns the cached value for key, if present.
func (c *MapCache) Get(key string) (any, bool) {
	c.mu.RLock()
	v, ok := c.m[key]
	c.mu.RUnlock()
	return v, ok
}

// Put stores value under key, replacing any previous entry.
func (c *MapCache) Put(key string, value any) {
	c.mu.Lock()
	c.m[key] = value
	c.mu.Unlock()
}

type memoEntry struct {
	rgb RGB
	hsl HSL
	lab LAB
	lum float64
}

// Memo provides memoised hex-keyed colour conversions. It is an
// explicitly constructed service rather than a package-level singleton so
// callers control sharing: one Memo per process, or one per request.
type Memo struct {
	cache Cache
}

// NewMemo creates a Memo backed by the given cache. A nil cache gets a
// fresh MapCache.
func NewMemo(cache Cache) *Memo {
	if cache == nil {
		cache = NewMapCache()
	}
	return &Memo{cache: cache}
}

// lookup parses and converts hex once, caching the full entry under the
// canonical key. Malformed hex returns ok=false and is never cached.
func (m *Memo) lookup(hex string) (memoEntry, bool) {
	key, ok := NormalizeHex(hex)
	if !ok {
		return memoEntry{}, false
	}

	if v, ok := m.cache.Get(key); ok {
		return v.(memoEntry), true
	}

	rgb, _ := ParseHex(key)
	entry := memoEntry{
		rgb: rgb,
		hsl: RGBToHSL(rgb),
		lab: RGBToLAB(rgb),
		lum: RelativeLuminance(rgb),
	}
	m.cache.Put(key, entry)
	return entry, true
}

// RGB returns the parsed RGB for a hex string.
func (m *Memo) RGB(hex string) (RGB, bool) {
	e, ok := m.lookup(hex)
	return e.rgb, ok
}

// HSL returns the memoised HSL conversion for a hex string.
func (m *Memo) HSL(hex string) (HSL, bool) {
	e, ok := m.lookup(hex)
	return e.hsl, ok
}

// LAB returns the memoised LAB conversion for a hex string.
func (m *Memo) LAB(hex string) (LAB, bool) {
	e, ok := m.lookup(hex)
	return e.lab, ok
}

// Luminance returns the memoised WCAG relative luminance for a hex string.
func (m *Memo) Luminance(hex string) (float64, bool) {
	e, ok := m.lookup(hex)
	return e.lum, ok
}
