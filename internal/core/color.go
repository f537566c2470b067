package core

import "fmt"

// Color is a 24-bit terminal colour. The zero value means the terminal's
// default colour, so a cleared screen inherits the user's theme.
type Color uint32

const colorSet Color = 1 << 24

// RGB builds an explicit colour.
func RGB(r, g, b uint8) Color {
	return colorSet | Color(r)<<16 | Color(g)<<8 | Color(b)
}

// Predefined colors for HUD and menu elements.
const (
	ColorDefault       Color = 0
	ColorBlack               = colorSet | 0x000000
	ColorRed                 = colorSet | 0xCD3131
	ColorGreen               = colorSet | 0x0DBC79
	ColorYellow              = colorSet | 0xE5E510
	ColorBlue                = colorSet | 0x2472C8
	ColorMagenta             = colorSet | 0xBC3FBC
	ColorCyan                = colorSet | 0x11A8CD
	ColorWhite               = colorSet | 0xE5E5E5
	ColorBrightRed           = colorSet | 0xF14C4C
	ColorBrightGreen         = colorSet | 0x23D18B
	ColorBrightYellow        = colorSet | 0xF5F543
	ColorBrightBlue          = colorSet | 0x3B8EEA
	ColorBrightMagenta       = colorSet | 0xD670D6
	ColorBrightCyan          = colorSet | 0x29B8DB
	ColorBrightWhite         = colorSet | 0xFFFFFF
	ColorOrange              = colorSet | 0xFF8700
	ColorGray                = colorSet | 0x8A8A8A
)

// IsDefault reports whether the colour defers to the terminal default.
func (c Color) IsDefault() bool {
	return c&colorSet == 0
}

// RGB returns the colour channels. The default colour reports black.
func (c Color) RGB() (r, g, b uint8) {
	return uint8(c >> 16), uint8(c >> 8), uint8(c)
}

// Hex returns the colour as "#rrggbb", or "" for the default colour.
func (c Color) Hex() string {
	if c.IsDefault() {
		return ""
	}
	r, g, b := c.RGB()
	return fmt.Sprintf("#%02x%02x%02x", r, g, b)
}

// Blend mixes src over c with the given alpha (0..255).
// Blending over the default colour treats it as black.
func (c Color) Blend(src Color, alpha uint8) Color {
	if alpha == 255 {
		return src
	}
	if alpha == 0 {
		return c
	}
	r1, g1, b1 := c.RGB()
	r2, g2, b2 := src.RGB()
	a := int(alpha)
	mix := func(x, y uint8) uint8 {
		return uint8((int(x)*(255-a) + int(y)*a) / 255)
	}
	return RGB(mix(r1, r2), mix(g1, g2), mix(b1, b2))
}
