package color

import (
	"sort"
	"sync/atomic"
)

// Shared is a reference-counted handle to a Color. Every holder owns one
// reference and gives it back with Release; the handle is dead once the
// count reaches zero.
//
// The nil *Shared stands for an unset colour and is accepted by Retain,
// Release, Color and Refs.
type Shared struct {
	value Color
	refs  atomic.Int32
}

// NewShared returns a handle holding one reference, owned by the caller.
func NewShared(c Color) *Shared {
	s := &Shared{value: c}
	s.refs.Store(1)
	return s
}

// Color returns the held colour. A nil handle yields the zero (transparent) colour.
func (s *Shared) Color() Color {
	if s == nil {
		return Color{}
	}
	return s.value
}

// Retain adds a reference and returns s.
func (s *Shared) Retain() *Shared {
	if s == nil {
		return nil
	}
	for {
		n := s.refs.Load()
		if n <= 0 {
			panic("color: retain of released shared color")
		}
		if s.refs.CompareAndSwap(n, n+1) {
			return s
		}
	}
}

// Release drops a reference and reports whether it was the last one.
func (s *Shared) Release() bool {
	if s == nil {
		return false
	}
	n := s.refs.Add(-1)
	if n < 0 {
		panic("color: shared color released too many times")
	}
	return n == 0
}

// Refs returns the number of live references.
func (s *Shared) Refs() int {
	if s == nil {
		return 0
	}
	return int(s.refs.Load())
}

// Palette is a named set of shared colours. The palette holds one reference
// to each of its colours until the entry is replaced or the palette is closed.
type Palette struct {
	colors map[string]*Shared
}

func NewPalette() *Palette {
	return &Palette{colors: make(map[string]*Shared)}
}

// Set stores c under name, releasing the handle previously stored there.
func (p *Palette) Set(name string, c Color) *Shared {
	s := NewShared(c)
	if prev, ok := p.colors[name]; ok {
		prev.Release()
	}
	p.colors[name] = s
	return s
}

// Get returns the palette's handle for name, or nil. The caller must Retain
// the handle to keep it beyond the palette's lifetime.
func (p *Palette) Get(name string) *Shared {
	return p.colors[name]
}

// Names returns the colour names in sorted order.
func (p *Palette) Names() []string {
	names := make([]string, 0, len(p.colors))
	for name := range p.colors {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Close releases every reference held by the palette.
func (p *Palette) Close() {
	for name, s := range p.colors {
		s.Release()
		delete(p.colors, name)
	}
}
