package mathx

import "github.com/lucasb-eyer/go-colorful"

// RGBA is an 8-bit per channel colour with alpha.
type RGBA struct {
	R, G, B, A uint8
}

// White is the opaque white colour.
var White = RGBA{R: 255, G: 255, B: 255, A: 255}

// HSV converts hue (degrees), saturation and value in [0,1] into an opaque RGBA.
func HSV(h, s, v float64) RGBA {
	r, g, b := colorful.Hsv(h, s, v).RGB255()
	return RGBA{R: r, G: g, B: b, A: 255}
}

// WithAlpha returns c with its alpha replaced.
func (c RGBA) WithAlpha(a uint8) RGBA {
	c.A = a
	return c
}

// Scale multiplies the colour channels by f in [0,1], keeping alpha.
func (c RGBA) Scale(f float64) RGBA {
	f = Clamp(f, 0, 1)
	return RGBA{
		R: uint8(float64(c.R) * f),
		G: uint8(float64(c.G) * f),
		B: uint8(float64(c.B) * f),
		A: c.A,
	}
}
