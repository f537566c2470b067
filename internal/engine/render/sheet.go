package render

import (
	"sort"

	"github.com/vovakirdan/space-attackers/internal/core"
)

// Sprite is character art. Each frame is a list of rows; spaces are
// transparent.
type Sprite struct {
	Name   string
	Frames [][]string
	Color  core.Color
}

// Size returns the frame size in cells.
func (s Sprite) Size() (w, h int) {
	for _, f := range s.Frames {
		h = max(h, len(f))
		for _, row := range f {
			w = max(w, len([]rune(row)))
		}
	}
	return w, h
}

// Sheet holds the sprites a renderer can draw, by integer id.
type Sheet struct {
	sprites map[int]Sprite
	names   map[string]int
}

// NewSheet creates an empty sheet.
func NewSheet() *Sheet {
	return &Sheet{
		sprites: make(map[int]Sprite),
		names:   make(map[string]int),
	}
}

// Add registers s under id.
func (sh *Sheet) Add(id int, s Sprite) {
	sh.sprites[id] = s
	if s.Name != "" {
		sh.names[s.Name] = id
	}
}

// Len returns the number of sprites.
func (sh *Sheet) Len() int { return len(sh.sprites) }

// first returns the lowest registered id.
func (sh *Sheet) first() (int, bool) {
	if len(sh.sprites) == 0 {
		return 0, false
	}
	ids := make([]int, 0, len(sh.sprites))
	for id := range sh.sprites {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	return ids[0], true
}

// Get returns the sprite for id, falling back to the first sprite.
func (sh *Sheet) Get(id int) (Sprite, bool) {
	if s, ok := sh.sprites[id]; ok {
		return s, true
	}
	if f, ok := sh.first(); ok {
		return sh.sprites[f], true
	}
	return Sprite{}, false
}

// ID resolves a sprite name. Unknown names resolve to the first sprite.
func (sh *Sheet) ID(name string) int {
	if id, ok := sh.names[name]; ok {
		return id
	}
	f, _ := sh.first()
	return f
}
