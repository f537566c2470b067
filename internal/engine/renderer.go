package engine

import (
	"github.com/vovakirdan/space-attackers/internal/core"
	"github.com/vovakirdan/space-attackers/internal/engine/mathx"
)

// Renderer is the drawing surface used during the render pass.
// Coordinates are world pixels; the implementation maps them to its output.
type Renderer interface {
	Begin()
	End()
	ClearScreen()
	ScreenSize() (w, h int)

	// DrawSprite draws frame of a sprite with its top-left corner at (x, y).
	DrawSprite(id, frame, x, y int)
	DrawPixel(x, y int, c mathx.RGBA)
	DrawLine(x1, y1, x2, y2 int, c mathx.RGBA)
	FillRect(r core.Rect, c mathx.RGBA)
	DrawRect(r core.Rect, c mathx.RGBA)
	DrawText(x, y int, text string, c mathx.RGBA)
	DrawTextCentered(y int, text string, c mathx.RGBA)
}
