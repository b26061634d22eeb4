// Package fonts maps menu font identifiers to tinyfont faces.
package fonts

import (
	"fmt"
	"sort"

	"tftmenu/menu"

	"tinygo.org/x/tinyfont"
	"tinygo.org/x/tinyfont/freemono"
	"tinygo.org/x/tinyfont/proggy"
)

// Face is a font plus the metrics needed to draw it by its top-left corner.
type Face struct {
	Font     tinyfont.Fonter
	Height   int16
	Baseline int16
}

// NewFace computes metrics for f.
func NewFace(f tinyfont.Fonter) (Face, error) {
	h, base, err := RowMetrics(f)
	if err != nil {
		return Face{}, err
	}
	return Face{Font: f, Height: h, Baseline: base}, nil
}

// Registry resolves font IDs. Unknown IDs resolve to the fallback face.
type Registry struct {
	faces    map[menu.FontID]Face
	fallback menu.FontID
}

func NewRegistry(fallback menu.FontID) *Registry {
	return &Registry{faces: make(map[menu.FontID]Face), fallback: fallback}
}

// Register adds f under id, replacing any previous face.
func (r *Registry) Register(id menu.FontID, f tinyfont.Fonter) error {
	face, err := NewFace(f)
	if err != nil {
		return fmt.Errorf("font %d: %w", id, err)
	}
	r.faces[id] = face
	return nil
}

// Face returns the face for id, or the fallback face.
func (r *Registry) Face(id menu.FontID) (Face, bool) {
	if f, ok := r.faces[id]; ok {
		return f, true
	}
	f, ok := r.faces[r.fallback]
	return f, ok
}

// IDs returns the registered font IDs in ascending order.
func (r *Registry) IDs() []menu.FontID {
	ids := make([]menu.FontID, 0, len(r.faces))
	for id := range r.faces {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

// Default returns the built-in font set, numbered like the classic TFT font slots:
// 1 small, 2 normal (the menu default), 4 large, 6 extra large.
func Default() *Registry {
	r := NewRegistry(menu.DefaultFont)
	for id, f := range map[menu.FontID]tinyfont.Fonter{
		1: &proggy.TinySZ8pt7b,
		2: &freemono.Regular9pt7b,
		4: &freemono.Regular12pt7b,
		6: &freemono.Bold18pt7b,
	} {
		if err := r.Register(id, f); err != nil {
			panic(err)
		}
	}
	return r
}
