package collision

import (
	"fmt"
	"image"
	"image/color"
	_ "image/png"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/image/bmp"
)

// Mask is an immutable per-pixel opacity map used for pixel-exact tests.
type Mask struct {
	w, h int
	bits []bool
}

// NewMask creates a fully transparent mask.
func NewMask(w, h int) *Mask {
	return &Mask{w: w, h: h, bits: make([]bool, w*h)}
}

// Width returns the mask width in pixels.
func (m *Mask) Width() int { return m.w }

// Height returns the mask height in pixels.
func (m *Mask) Height() int { return m.h }

// Set marks a pixel opaque or transparent. Out-of-bounds writes are ignored.
func (m *Mask) Set(x, y int, opaque bool) {
	if x < 0 || y < 0 || x >= m.w || y >= m.h {
		return
	}
	m.bits[y*m.w+x] = opaque
}

// Opaque reports whether the pixel is solid. Pixels outside the mask are
// transparent.
func (m *Mask) Opaque(x, y int) bool {
	if x < 0 || y < 0 || x >= m.w || y >= m.h {
		return false
	}
	return m.bits[y*m.w+x]
}

// Count returns the number of opaque pixels.
func (m *Mask) Count() int {
	n := 0
	for _, b := range m.bits {
		if b {
			n++
		}
	}
	return n
}

// FromImage builds a mask from an image. A pixel is transparent when its
// alpha is zero or, if key is non-nil, when it matches the colour key.
func FromImage(img image.Image, key *color.RGBA) *Mask {
	bounds := img.Bounds()
	m := NewMask(bounds.Dx(), bounds.Dy())
	for y := 0; y < m.h; y++ {
		for x := 0; x < m.w; x++ {
			c := color.RGBAModel.Convert(img.At(bounds.Min.X+x, bounds.Min.Y+y)).(color.RGBA)
			if c.A == 0 {
				continue
			}
			if key != nil && c.R == key.R && c.G == key.G && c.B == key.B {
				continue
			}
			m.bits[y*m.w+x] = true
		}
	}
	return m
}

// FromRows builds a mask from text art. Space and '.' are transparent,
// anything else is opaque. Short rows are padded with transparency.
func FromRows(rows []string) *Mask {
	w := 0
	for _, r := range rows {
		w = max(w, len([]rune(r)))
	}
	m := NewMask(w, len(rows))
	for y, r := range rows {
		for x, ch := range []rune(r) {
			m.Set(x, y, ch != ' ' && ch != '.')
		}
	}
	return m
}

// Scale returns a copy of m resized to w x h with nearest-neighbour sampling.
func (m *Mask) Scale(w, h int) *Mask {
	out := NewMask(w, h)
	if m.w == 0 || m.h == 0 {
		return out
	}
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			out.bits[y*w+x] = m.Opaque(x*m.w/w, y*m.h/h)
		}
	}
	return out
}

// Load decodes a BMP or PNG file into a mask.
func Load(path string, key *color.RGBA) (*Mask, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("collision: cannot open mask %s: %w", path, err)
	}
	defer f.Close()

	var img image.Image
	if strings.EqualFold(filepath.Ext(path), ".bmp") {
		img, err = bmp.Decode(f)
	} else {
		img, _, err = image.Decode(f)
	}
	if err != nil {
		return nil, fmt.Errorf("collision: cannot decode mask %s: %w", path, err)
	}
	return FromImage(img, key), nil
}
