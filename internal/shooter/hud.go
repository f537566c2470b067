package shooter

import (
	"fmt"

	"github.com/vovakirdan/space-attackers/internal/core"
	"github.com/vovakirdan/space-attackers/internal/engine"
	"github.com/vovakirdan/space-attackers/internal/engine/easing"
	"github.com/vovakirdan/space-attackers/internal/engine/interp"
	"github.com/vovakirdan/space-attackers/internal/engine/mathx"
	"github.com/vovakirdan/space-attackers/internal/engine/scene"
)

// glyphW is the world width of one character on an 80 column terminal.
const glyphW = 8

var (
	colorText     = mathx.RGBA{R: 255, G: 255, B: 255, A: 255}
	colorInfo     = mathx.RGBA{R: 220, G: 220, B: 220, A: 255}
	colorShield   = mathx.RGBA{R: 64, G: 255, B: 64, A: 255}
	colorShieldBg = mathx.RGBA{R: 0, G: 64, B: 0, A: 255}
	colorEnergy   = mathx.RGBA{R: 200, G: 200, B: 200, A: 255}
	colorEnergyBg = mathx.RGBA{R: 100, G: 100, B: 100, A: 255}
)

// levelStartCurve drops the level banner in from the bottom, holds it
// in the middle and flies it off the top.
func levelStartCurve(h int) *interp.Set {
	mid := float64(h/2 - 32)
	return interp.NewSet().
		Add(0, float64(h), nil).
		Add(1.5, mid, easing.OutCirc).
		Add(3.5, mid, easing.Linear).
		Add(5.0, -64, easing.InCirc)
}

// updateBanner restarts the banner on a new level and opens the level to
// enemies once it has gone.
func (l *Level) updateBanner() {
	if l.level != l.bannerLevel {
		l.banner.Reset()
		l.bannerLevel = l.level
		l.bannerInfo = ""
		if l.level > 1 && l.hitTotal > 0 && l.killedTotal > 0 {
			l.bannerInfo = fmt.Sprintf("Enemies Killed: %d  Bullets Fired: %d  Accuracy: %d%%",
				l.killedTotal, l.firedTotal, l.Accuracy())
		}
	}
	l.banner.Update()
	if l.banner.PassedTimeReal() > bannerSeconds {
		l.levelStarted = true
	}
}

func (l *Level) postRender(state scene.State, r engine.Renderer) {
	switch state {
	case LevelGame:
		l.drawHUD(r)
	case LevelFadeIn, LevelFadeOut, LevelEnd:
		shade := uint8(255 - mathx.Clamp(l.alpha, 0, 255))
		r.FillRect(core.NewRect(0, 0, l.screenW, l.screenH), mathx.RGBA{A: shade})
	}
}

func (l *Level) drawHUD(r engine.Renderer) {
	score := fmt.Sprintf("%07d", l.score)
	r.DrawText(l.screenW-len(score)*glyphW-10, 10, score, colorText)

	if t := l.banner.PassedTimeReal(); l.bannerLevel == l.level && t <= bannerSeconds {
		y := int(l.bannerCurve.Value(t))
		r.DrawTextCentered(y, "Get ready for", colorText)
		r.DrawTextCentered(y+38, fmt.Sprintf("LEVEL %03d", l.level), colorText)
		if l.bannerInfo != "" {
			r.DrawTextCentered(y+66, l.bannerInfo, colorInfo)
		}
	}

	health := int(float64(l.player.Health()) / 2.5)
	maxHealth := int(float64(l.cfg.Player.Health) / 2.5)
	drawBar(r, l.screenH-52, health, maxHealth, colorShield, colorShieldBg)

	energy := int(float64(l.bt.energy) / 15)
	maxEnergy := int(float64(l.bt.max) / 15)
	drawBar(r, l.screenH-28, energy, maxEnergy, colorEnergy, colorEnergyBg)
}

// drawBar draws a gauge at the bottom left: value filled, the rest of
// limit dimmed.
func drawBar(r engine.Renderer, y, value, limit int, fg, bg mathx.RGBA) {
	value = mathx.Clamp(value, 0, limit)
	r.FillRect(core.NewRect(32, y, value, 6), fg)
	r.FillRect(core.NewRect(32+value, y, limit-value, 6), bg)
}
