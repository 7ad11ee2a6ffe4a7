package text

import "github.com/gogpu/maplabel/internal/cache"

// DefaultShapeCacheSize is the number of shaped strings kept by
// NewCachedShaper when size is not positive.
const DefaultShapeCacheSize = 1024

type shapeKey struct {
	text string
	face string
	size float64
}

type shapeResult struct {
	glyphs []GlyphInfo
	err    error
}

// CachedShaper memoizes another Shaper. Map labels repeat the same street
// and place names many times per pass, so shaping each once pays off.
//
// Character and line spacing do not affect shaping and are not part of
// the key. CachedShaper is safe for concurrent use if the wrapped shaper is.
type CachedShaper struct {
	inner Shaper
	cache *cache.Cache[shapeKey, shapeResult]
}

// NewCachedShaper wraps inner with an LRU cache of size entries.
func NewCachedShaper(inner Shaper, size int) *CachedShaper {
	if size <= 0 {
		size = DefaultShapeCacheSize
	}
	return &CachedShaper{
		inner: inner,
		cache: cache.New[shapeKey, shapeResult](size),
	}
}

// Shape implements Shaper.
func (s *CachedShaper) Shape(text string, f Format) ([]GlyphInfo, error) {
	key := shapeKey{text: text, face: f.Face, size: f.Size}
	r := s.cache.GetOrCreate(key, func() shapeResult {
		g, err := s.inner.Shape(text, f)
		return shapeResult{glyphs: g, err: err}
	})
	return r.glyphs, r.err
}

// Len returns the number of cached strings.
func (s *CachedShaper) Len() int {
	return s.cache.Len()
}

// Hits returns how many Shape calls were served from the cache.
func (s *CachedShaper) Hits() uint64 {
	return s.cache.Stats().Hits
}
