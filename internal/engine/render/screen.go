// Package render draws the game world onto a terminal cell buffer.
//
// The world is measured in pixels (640x480 by default). Each terminal cell
// covers a block of world pixels, so positions are scaled on every draw
// while sprites keep their character-art size.
package render

import (
	"sync"

	"github.com/vovakirdan/space-attackers/internal/core"
	"github.com/vovakirdan/space-attackers/internal/engine/mathx"
)

// pixelRamp picks a glyph by alpha so faint particles look lighter.
var pixelRamp = []rune{'.', ':', '*', '#'}

// Screen is an engine.Renderer backed by a core.Screen.
type Screen struct {
	mu     sync.Mutex
	screen *core.Screen
	sheet  *Sheet
	worldW int
	worldH int
	frames int
}

// NewScreen creates a renderer for a world of worldW x worldH pixels
// shown on cols x rows cells.
func NewScreen(worldW, worldH, cols, rows int, sheet *Sheet) *Screen {
	if sheet == nil {
		sheet = NewSheet()
	}
	return &Screen{
		screen: core.NewScreen(cols, rows),
		sheet:  sheet,
		worldW: worldW,
		worldH: worldH,
	}
}

// Resize changes the cell grid.
func (s *Screen) Resize(cols, rows int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.screen.Resize(cols, rows)
}

// Sheet returns the sprite sheet.
func (s *Screen) Sheet() *Sheet { return s.sheet }

// Frames returns the number of completed frames.
func (s *Screen) Frames() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.frames
}

// Snapshot copies the last completed buffer state into dst, resizing it.
func (s *Screen) Snapshot(dst *core.Screen) {
	s.mu.Lock()
	defer s.mu.Unlock()
	w, h := s.screen.Width(), s.screen.Height()
	if dst.Width() != w || dst.Height() != h {
		dst.Resize(w, h)
	}
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			dst.SetCell(x, y, s.screen.GetCell(x, y))
		}
	}
}

// Begin starts a frame. Drawing calls between Begin and End hold the lock.
func (s *Screen) Begin() { s.mu.Lock() }

// End finishes a frame.
func (s *Screen) End() {
	s.frames++
	s.mu.Unlock()
}

// ClearScreen blanks every cell.
func (s *Screen) ClearScreen() { s.screen.Clear() }

// ScreenSize returns the world size in pixels.
func (s *Screen) ScreenSize() (int, int) { return s.worldW, s.worldH }

// Cell maps a world position to a cell.
func (s *Screen) Cell(x, y int) (col, row int) {
	return s.col(x), s.row(y)
}

func (s *Screen) col(x int) int {
	if x < 0 {
		return (x*s.screen.Width() - s.worldW + 1) / s.worldW
	}
	return x * s.screen.Width() / s.worldW
}

func (s *Screen) row(y int) int {
	if y < 0 {
		return (y*s.screen.Height() - s.worldH + 1) / s.worldH
	}
	return y * s.screen.Height() / s.worldH
}

func toColor(c mathx.RGBA) core.Color {
	return core.RGB(c.R, c.G, c.B)
}

// DrawSprite draws a frame of a sprite. Unknown ids fall back to the first
// sprite of the sheet and out-of-range frames wrap.
func (s *Screen) DrawSprite(id, frame, x, y int) {
	sp, ok := s.sheet.Get(id)
	if !ok || len(sp.Frames) == 0 {
		return
	}
	frame %= len(sp.Frames)
	if frame < 0 {
		frame += len(sp.Frames)
	}
	col, row := s.col(x), s.row(y)
	for dy, line := range sp.Frames[frame] {
		dx := 0
		for _, r := range line {
			if r != ' ' {
				cell := s.screen.GetCell(col+dx, row+dy)
				cell.Rune = r
				cell.FG = sp.Color
				s.screen.SetCell(col+dx, row+dy, cell)
			}
			dx++
		}
	}
}

// DrawPixel marks one cell, choosing the glyph by alpha.
func (s *Screen) DrawPixel(x, y int, c mathx.RGBA) {
	if c.A == 0 {
		return
	}
	s.plot(s.col(x), s.row(y), pixelRamp[int(c.A)*len(pixelRamp)/256], c)
}

func (s *Screen) plot(col, row int, r rune, c mathx.RGBA) {
	cell := s.screen.GetCell(col, row)
	cell.Rune = r
	if cell.FG.IsDefault() {
		cell.FG = core.ColorBlack
	}
	cell.FG = cell.FG.Blend(toColor(c), max(c.A, 128))
	s.screen.SetCell(col, row, cell)
}

// DrawLine draws a line between two world points in cell space.
func (s *Screen) DrawLine(x1, y1, x2, y2 int, c mathx.RGBA) {
	if c.A == 0 {
		return
	}
	c1, r1 := s.col(x1), s.row(y1)
	c2, r2 := s.col(x2), s.row(y2)
	glyph := lineGlyph(c2-c1, r2-r1)

	dx := mathx.Abs(c2 - c1)
	dy := -mathx.Abs(r2 - r1)
	sx, sy := 1, 1
	if c1 > c2 {
		sx = -1
	}
	if r1 > r2 {
		sy = -1
	}
	e := dx + dy
	for {
		s.plot(c1, r1, glyph, c)
		if c1 == c2 && r1 == r2 {
			return
		}
		e2 := 2 * e
		if e2 >= dy {
			e += dy
			c1 += sx
		}
		if e2 <= dx {
			e += dx
			r1 += sy
		}
	}
}

func lineGlyph(dx, dy int) rune {
	switch {
	case dx == 0 && dy == 0:
		return '*'
	case dy == 0 || mathx.Abs(dx) > 2*mathx.Abs(dy):
		return '-'
	case dx == 0 || mathx.Abs(dy) > 2*mathx.Abs(dx):
		return '|'
	case (dx > 0) == (dy > 0):
		return '\\'
	default:
		return '/'
	}
}

func (s *Screen) cellRect(r core.Rect) (c0, r0, c1, r1 int) {
	c0, r0 = s.col(r.X), s.row(r.Y)
	c1, r1 = s.col(r.Right()-1), s.row(r.Bottom()-1)
	return c0, r0, max(c0, c1), max(r0, r1)
}

// FillRect fills cells covered by r. Opaque colours replace the cells;
// translucent ones tint what is already there, which is how scenes fade.
func (s *Screen) FillRect(r core.Rect, c mathx.RGBA) {
	if c.A == 0 || r.W <= 0 || r.H <= 0 {
		return
	}
	col := toColor(c)
	c0, r0, c1, r1 := s.cellRect(r)
	for y := r0; y <= r1; y++ {
		for x := c0; x <= c1; x++ {
			if c.A == 255 {
				s.screen.SetCell(x, y, core.Cell{Rune: ' ', FG: col, BG: col})
				continue
			}
			cell := s.screen.GetCell(x, y)
			if cell.FG.IsDefault() {
				cell.FG = core.ColorWhite
			}
			if cell.BG.IsDefault() {
				cell.BG = core.ColorBlack
			}
			cell.FG = cell.FG.Blend(col, c.A)
			cell.BG = cell.BG.Blend(col, c.A)
			s.screen.SetCell(x, y, cell)
		}
	}
}

// DrawRect outlines the cells covered by r.
func (s *Screen) DrawRect(r core.Rect, c mathx.RGBA) {
	if c.A == 0 || r.W <= 0 || r.H <= 0 {
		return
	}
	c0, r0, c1, r1 := s.cellRect(r)
	for x := c0; x <= c1; x++ {
		s.plot(x, r0, '-', c)
		s.plot(x, r1, '-', c)
	}
	for y := r0; y <= r1; y++ {
		s.plot(c0, y, '|', c)
		s.plot(c1, y, '|', c)
	}
	for _, p := range [][2]int{{c0, r0}, {c1, r0}, {c0, r1}, {c1, r1}} {
		s.plot(p[0], p[1], '+', c)
	}
}

// DrawText writes text starting at a world position. Alpha dims the colour.
func (s *Screen) DrawText(x, y int, text string, c mathx.RGBA) {
	if c.A == 0 {
		return
	}
	s.screen.DrawColoredText(s.col(x), s.row(y), text, toColor(c.Scale(float64(c.A)/255)))
}

// DrawTextCentered writes text centred horizontally on the world row y.
func (s *Screen) DrawTextCentered(y int, text string, c mathx.RGBA) {
	if c.A == 0 {
		return
	}
	col := (s.screen.Width() - len([]rune(text))) / 2
	s.screen.DrawColoredText(col, s.row(y), text, toColor(c.Scale(float64(c.A)/255)))
}
