package text

import (
	"fmt"
	"slices"
	"strings"
	"sync"
)

// Registry maps font names to FontSources. Fonts are looked up either by
// family ("Go") or by family and style ("Go Bold"). The first registered
// font is the default for an empty name.
//
// A Registry is built once at startup and shared by all render passes.
// Registration and lookup are safe for concurrent use.
type Registry struct {
	mu      sync.RWMutex
	byName  map[string]*FontSource
	first   *FontSource
	sources []*FontSource
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{byName: make(map[string]*FontSource)}
}

func normalizeName(s string) string {
	return strings.ToLower(strings.Join(strings.Fields(s), " "))
}

// Register adds src under its family name and under "family style".
// A family keeps the first source registered for it.
func (r *Registry) Register(src *FontSource) {
	r.mu.Lock()
	defer r.mu.Unlock()

	family := normalizeName(src.Family())
	if _, ok := r.byName[family]; !ok {
		r.byName[family] = src
	}
	if style := src.Style(); style != "" {
		r.byName[normalizeName(src.Family()+" "+style)] = src
	}
	if r.first == nil {
		r.first = src
	}
	r.sources = append(r.sources, src)
}

// RegisterData parses data and registers the resulting source.
func (r *Registry) RegisterData(data []byte, opts ...SourceOption) (*FontSource, error) {
	src, err := NewFontSource(data, opts...)
	if err != nil {
		return nil, err
	}
	r.Register(src)
	return src, nil
}

// RegisterFile loads a font file and registers it.
func (r *Registry) RegisterFile(path string, opts ...SourceOption) (*FontSource, error) {
	src, err := NewFontSourceFromFile(path, opts...)
	if err != nil {
		return nil, err
	}
	r.Register(src)
	return src, nil
}

// Source returns the font registered under name. An empty name returns
// the default font.
func (r *Registry) Source(name string) (*FontSource, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if r.first == nil {
		return nil, ErrNoFonts
	}
	if name == "" {
		return r.first, nil
	}
	if src, ok := r.byName[normalizeName(name)]; ok {
		return src, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrFontNotFound, name)
}

// Face returns a face of the named font at size pixels per em.
func (r *Registry) Face(name string, size float64, opts ...FaceOption) (Face, error) {
	src, err := r.Source(name)
	if err != nil {
		return nil, err
	}
	return src.Face(size, opts...), nil
}

// Families returns the sorted, de-duplicated family names.
func (r *Registry) Families() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.sources))
	for _, s := range r.sources {
		names = append(names, s.Family())
	}
	slices.Sort(names)
	return slices.Compact(names)
}
