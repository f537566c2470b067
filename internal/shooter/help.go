package shooter

import (
	"github.com/vovakirdan/space-attackers/internal/core"
	"github.com/vovakirdan/space-attackers/internal/engine"
	"github.com/vovakirdan/space-attackers/internal/engine/easing"
	"github.com/vovakirdan/space-attackers/internal/engine/mathx"
	"github.com/vovakirdan/space-attackers/internal/engine/scene"
)

// Help scene states.
const (
	HelpStart scene.State = iota
	HelpFadeIn
	HelpDisplay
	HelpFadeToPage2
	HelpDisplayPage2
	HelpFadeOut
	HelpEnd = scene.StateEnd
)

var helpPages = [2][]string{
	{
		"CONTROLS",
		"",
		"arrow keys   fly",
		"space        fire",
		"z            bullet time",
		"m            music on/off",
		"esc          give up",
	},
	{
		"HOW TO PLAY",
		"",
		"Green planes are easy, red ones shoot faster.",
		"Every cleared wave heals your shields",
		"and adds to the bullet time energy.",
		"Bullet time drains energy while held",
		"and refills slowly when released.",
	},
}

// Help shows two pages of instructions.
type Help struct {
	*scene.Base

	ctx *engine.Context

	screenW int
	screenH int

	timer *engine.Timer
	alpha float64
	page  int
}

// NewHelp creates the help scene.
func NewHelp(ctx *engine.Context, res *Resources) *Help {
	h := &Help{
		ctx:     ctx,
		screenW: res.Config.Video.Width,
		screenH: res.Config.Video.Height,
		timer:   engine.NewTimer(ctx.Clock),
	}
	h.Base = scene.New(ctx, h)
	return h
}

func (h *Help) OnEnter() {
	h.page = 0
	h.alpha = 0
	h.SetState(HelpStart)
}

// Page returns the page on display.
func (h *Help) Page() int { return h.page }

func (h *Help) Handle(c scene.Call) {
	switch c.Hook {
	case scene.HookUpdate:
		h.update(c.State)
	case scene.HookKeyDown:
		h.keyPressed(c.State, c.Event.Key)
	case scene.HookPostRender:
		h.render(c.State, c.Renderer)
	}
}

func (h *Help) update(state scene.State) {
	switch state {
	case HelpStart:
		h.timer.Reset()
		h.SetState(HelpFadeIn)

	case HelpFadeIn, HelpFadeToPage2:
		h.timer.Update()
		h.alpha = easing.Linear(h.timer.PassedTimeReal(), 0, 255, fadeSeconds)
		if h.alpha >= 255 {
			h.alpha = 255
			if state == HelpFadeIn {
				h.SetState(HelpDisplay)
			} else {
				h.SetState(HelpDisplayPage2)
			}
		}

	case HelpFadeOut:
		h.timer.Update()
		h.alpha = easing.Linear(h.timer.PassedTimeReal(), 255, -255, fadeSeconds)
		if h.alpha <= 0 {
			h.alpha = 0
			h.SetState(HelpEnd)
		}
	}
}

func (h *Help) keyPressed(state scene.State, k core.Key) {
	next := k == core.KeySpace || k == core.KeyEnter
	switch {
	case state == HelpDisplay && next:
		h.page++
		h.timer.Reset()
		h.SetState(HelpFadeToPage2)
	case state == HelpDisplayPage2 && next,
		(state == HelpDisplay || state == HelpDisplayPage2) && k == core.KeyEscape:
		h.timer.Reset()
		h.SetState(HelpFadeOut)
	}
}

func (h *Help) render(state scene.State, r engine.Renderer) {
	a := uint8(mathx.Clamp(h.alpha, 0, 255))
	switch state {
	case HelpFadeToPage2:
		h.drawPage(r, 0, 255-a)
		h.drawPage(r, 1, a)
	case HelpFadeIn, HelpDisplay, HelpDisplayPage2, HelpFadeOut:
		h.drawPage(r, h.page, a)
	}
	if state == HelpDisplay || state == HelpDisplayPage2 {
		r.DrawTextCentered(h.screenH-35, "press space to continue", colorInfo)
	}
}

func (h *Help) drawPage(r engine.Renderer, page int, a uint8) {
	top := h.screenH/2 - len(helpPages[page])*24/2
	for i, line := range helpPages[page] {
		c := colorText
		if i == 0 {
			c = colorTitle
		}
		c.A = a
		r.DrawTextCentered(top+i*24, line, c)
	}
}
