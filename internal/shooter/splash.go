package shooter

import (
	"time"

	"github.com/vovakirdan/space-attackers/internal/audio"
	"github.com/vovakirdan/space-attackers/internal/core"
	"github.com/vovakirdan/space-attackers/internal/engine"
	"github.com/vovakirdan/space-attackers/internal/engine/easing"
	"github.com/vovakirdan/space-attackers/internal/engine/interp"
	"github.com/vovakirdan/space-attackers/internal/engine/mathx"
	"github.com/vovakirdan/space-attackers/internal/engine/scene"
)

// Splash scene states.
const (
	SplashIntro scene.State = iota
	SplashIntroFade
	SplashStart
	SplashStartNoMusic
	SplashFadeIn
	SplashDisplay
	SplashPreFadeOut
	SplashPreFadeOutNoMusic
	SplashFadeOut
	SplashEnd = scene.StateEnd
)

const (
	introSeconds = 5.0
	menuSpacing  = 32
	musicFade    = 800 * time.Millisecond
)

// Menu entries, in display order.
const (
	MenuNewGame = iota
	MenuHighscores
	MenuHelp
	MenuQuit
	menuCount
)

var menuLabels = [menuCount]string{"New Game", "Highscores", "Help", "Quit"}

var (
	colorTitle    = mathx.RGBA{R: 255, G: 64, B: 64, A: 255}
	colorMenu     = mathx.RGBA{R: 160, G: 160, B: 160, A: 255}
	colorSelected = mathx.RGBA{R: 255, G: 255, B: 64, A: 255}
)

// Splash is the intro and main menu. The intro plays once per session;
// later visits start straight at the menu.
type Splash struct {
	*scene.Base

	ctx *engine.Context
	res *Resources

	screenW int
	screenH int

	sky        *Background
	timer      *engine.Timer
	introCurve *interp.Set
	introShown bool

	alpha      float64
	introAlpha float64
	menuY      float64
	selection  int
}

// NewSplash creates the splash scene.
func NewSplash(ctx *engine.Context, res *Resources) *Splash {
	s := &Splash{
		ctx:     ctx,
		res:     res,
		screenW: res.Config.Video.Width,
		screenH: res.Config.Video.Height,
		timer:   engine.NewTimer(ctx.Clock),
		introCurve: interp.NewSet().
			Add(0, 0, nil).
			Add(0.5, 255, easing.OutCirc).
			Add(3.5, 255, easing.Linear).
			Add(introSeconds, 0, easing.InCirc),
	}
	s.Base = scene.New(ctx, s)
	return s
}

func (s *Splash) Load() error {
	s.sky = NewSky(s.ctx, s.screenW, s.screenH)
	s.Add(scene.PassPre, s.sky.ID, s.sky)
	return nil
}

func (s *Splash) Unload() {
	s.sky = nil
}

func (s *Splash) OnEnter() {
	s.selection = MenuNewGame
	s.alpha = 0
	s.menuY = float64(s.screenH)
	if s.introShown {
		s.SetState(SplashStart)
		return
	}
	s.SetState(SplashIntro)
}

// Selection returns the highlighted menu entry.
func (s *Splash) Selection() int { return s.selection }

func (s *Splash) music() bool {
	return engine.Value(s.ctx.Props, propGame, "Music", true)
}

func (s *Splash) Handle(c scene.Call) {
	switch c.Hook {
	case scene.HookUpdate:
		s.update(c.State)
	case scene.HookKeyDown:
		if c.State == SplashDisplay {
			s.keyPressed(c.Event.Key)
		}
	case scene.HookPostRender:
		s.render(c.State, c.Renderer)
	}
}

func (s *Splash) update(state scene.State) {
	switch state {
	case SplashIntro:
		s.res.Sound.Play(audio.IntroDisk)
		s.timer.Reset()
		s.introShown = true
		s.SetState(SplashIntroFade)

	case SplashIntroFade:
		s.timer.Update()
		t := s.timer.PassedTimeReal()
		s.introAlpha = s.introCurve.Value(t)
		if t >= introSeconds {
			s.introAlpha = 0
			s.SetState(SplashStart)
		}

	case SplashStart, SplashStartNoMusic:
		if state == SplashStart && s.music() {
			s.res.Sound.FadeInMusic(musicFade)
		}
		s.timer.Reset()
		s.menuY = float64(s.screenH)
		s.SetState(SplashFadeIn)

	case SplashFadeIn:
		s.timer.Update()
		t := s.timer.PassedTimeReal()
		s.alpha = easing.Linear(t, 0, 255, fadeSeconds)
		s.menuY = easing.OutCirc(t, float64(s.screenH), -float64(s.screenH), fadeSeconds)
		if s.alpha >= 255 {
			s.alpha = 255
			s.menuY = 0
			s.SetState(SplashDisplay)
		}

	case SplashPreFadeOut, SplashPreFadeOutNoMusic:
		s.timer.Reset()
		if state == SplashPreFadeOut && s.music() {
			s.res.Sound.FadeOutMusic(musicFade)
		}
		s.SetState(SplashFadeOut)

	case SplashFadeOut:
		s.timer.Update()
		t := s.timer.PassedTimeReal()
		s.alpha = easing.Linear(t, 255, -255, fadeSeconds)
		s.menuY = easing.InCirc(t, 0, float64(s.screenH), fadeSeconds)
		if s.alpha <= 0 {
			s.alpha = 0
			s.SetState(SplashEnd)
		}
	}
	s.SetAlpha(uint8(mathx.Clamp(s.alpha, 0, 255)))
}

func (s *Splash) keyPressed(k core.Key) {
	switch k {
	case 'm', 'M':
		music := !s.music()
		s.ctx.Props.Set(propGame, "Music", music)
		if music {
			s.res.Sound.FadeInMusic(musicFade)
		} else {
			s.res.Sound.FadeOutMusic(musicFade)
		}
	case core.KeyEscape:
		s.SendCustomEvent(EventEndGame)
	case core.KeyEnter, core.KeySpace:
		s.SendCustomEvent(menuEvent(s.selection))
	case core.KeyUp:
		s.selection = (s.selection + menuCount - 1) % menuCount
	case core.KeyDown:
		s.selection = (s.selection + 1) % menuCount
	}
}

func menuEvent(selection int) int {
	switch selection {
	case MenuHighscores:
		return EventHighscores
	case MenuHelp:
		return EventHelp
	case MenuQuit:
		return EventEndGame
	default:
		return EventNewGame
	}
}

func (s *Splash) render(state scene.State, r engine.Renderer) {
	switch state {
	case SplashIntro, SplashIntroFade:
		r.FillRect(core.NewRect(0, 0, s.screenW, s.screenH), mathx.RGBA{A: 255})
		a := uint8(mathx.Clamp(s.introAlpha, 0, 255))
		r.DrawTextCentered(s.screenH/2-16, "a wicked production", mathx.RGBA{R: 255, G: 255, B: 255, A: a})
		return
	case SplashFadeIn, SplashDisplay, SplashFadeOut:
	default:
		return
	}

	y := int(s.menuY)
	r.DrawTextCentered(s.screenH/4+y, "S P A C E   A T T A C K E R S", colorTitle)
	top := s.screenH/2 - 40 + y
	for i, label := range menuLabels {
		c := colorMenu
		if i == s.selection {
			c = colorSelected
			label = "> " + label + " <"
		}
		r.DrawTextCentered(top+i*menuSpacing, label, c)
	}
	r.DrawTextCentered(s.screenH-35, "arrows select, enter confirms, m toggles music", colorInfo)

	if shade := 255 - uint8(mathx.Clamp(s.alpha, 0, 255)); shade > 0 {
		r.FillRect(core.NewRect(0, 0, s.screenW, s.screenH), mathx.RGBA{A: shade})
	}
}
