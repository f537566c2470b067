package audio

import (
	"fmt"
	"math"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/speaker"
)

// fadeSteps is the number of volume updates per fade.
const fadeSteps = 20

// BeepServer plays synthesized sounds through the system speaker.
type BeepServer struct {
	mu      sync.Mutex
	rate    beep.SampleRate
	mixer   *beep.Mixer
	volume  float64
	music   *beep.Ctrl
	gain    *effects.Volume
	playing bool
	fadeGen int
}

// NewBeepServer initializes the speaker. Callers fall back to Silent when
// this fails, which is normal on headless machines and over SSH.
func NewBeepServer(sampleRate int, volume float64) (*BeepServer, error) {
	rate := beep.SampleRate(sampleRate)
	if err := speaker.Init(rate, rate.N(100*time.Millisecond)); err != nil {
		return nil, fmt.Errorf("audio: cannot init speaker: %w", err)
	}
	s := &BeepServer{
		rate:   rate,
		mixer:  &beep.Mixer{},
		volume: volume,
	}
	s.gain = &effects.Volume{Streamer: newBed(rate), Base: 2, Volume: -10, Silent: true}
	s.music = &beep.Ctrl{Streamer: s.gain, Paused: true}
	s.mixer.Add(s.music)
	speaker.Play(s.mixer)
	return s, nil
}

// level converts a linear 0..1 gain to the exponent effects.Volume expects.
func level(v float64) float64 {
	if v <= 0 {
		return -10
	}
	return math.Log2(v)
}

// Play starts a sound effect. Overlapping effects are mixed.
func (s *BeepServer) Play(snd Sound) {
	s.mu.Lock()
	defer s.mu.Unlock()
	v := &effects.Volume{Streamer: effect(snd, s.rate), Base: 2, Volume: level(s.volume), Silent: s.volume <= 0}
	speaker.Lock()
	s.mixer.Add(v)
	speaker.Unlock()
}

// FadeInMusic starts the music bed and ramps it up over d.
func (s *BeepServer) FadeInMusic(d time.Duration) {
	s.mu.Lock()
	s.playing = true
	s.mu.Unlock()

	speaker.Lock()
	s.music.Paused = false
	speaker.Unlock()
	s.fade(0, s.volume, d, false)
}

// FadeOutMusic ramps the music down over d and then pauses it.
func (s *BeepServer) FadeOutMusic(d time.Duration) {
	s.mu.Lock()
	s.playing = false
	s.mu.Unlock()
	s.fade(s.volume, 0, d, true)
}

// HaltMusic stops the music immediately.
func (s *BeepServer) HaltMusic() {
	s.mu.Lock()
	s.playing = false
	s.fadeGen++
	s.mu.Unlock()

	speaker.Lock()
	s.music.Paused = true
	speaker.Unlock()
}

// MusicPlaying reports whether the music bed is on or fading in.
func (s *BeepServer) MusicPlaying() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.playing
}

// fade runs the ramp on its own goroutine. A newer fade cancels an older one.
func (s *BeepServer) fade(from, to float64, d time.Duration, pause bool) {
	s.mu.Lock()
	s.fadeGen++
	gen := s.fadeGen
	s.mu.Unlock()

	go func() {
		step := d / fadeSteps
		for i := 1; i <= fadeSteps; i++ {
			time.Sleep(step)
			s.mu.Lock()
			stale := gen != s.fadeGen
			s.mu.Unlock()
			if stale {
				return
			}
			v := from + (to-from)*float64(i)/fadeSteps
			speaker.Lock()
			s.gain.Volume = level(v)
			s.gain.Silent = v <= 0
			if pause && i == fadeSteps {
				s.music.Paused = true
			}
			speaker.Unlock()
		}
	}()
}

// Close stops all output.
func (s *BeepServer) Close() error {
	s.HaltMusic()
	speaker.Lock()
	s.mixer.Clear()
	speaker.Unlock()
	return nil
}

// New returns a BeepServer when enabled and available, Silent otherwise.
// The error reports why the speaker could not be used; it is not fatal.
func New(enabled bool, sampleRate int, volume float64) (SoundServer, error) {
	if !enabled {
		return &Silent{}, nil
	}
	s, err := NewBeepServer(sampleRate, volume)
	if err != nil {
		return &Silent{}, err
	}
	return s, nil
}
