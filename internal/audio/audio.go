// Package audio plays the shooter's sound effects and music bed.
//
// Sounds are synthesized at runtime with beep oscillators so the game ships
// without sample files. When no audio device is available the Silent server
// stands in and every call is a no-op.
package audio

import "time"

// Sound identifies a sound effect.
type Sound int

const (
	PlayerFire Sound = iota
	EnemyFire
	Explosion1
	Explosion2
	IntroDisk
)

func (s Sound) String() string {
	switch s {
	case PlayerFire:
		return "player-fire"
	case EnemyFire:
		return "enemy-fire"
	case Explosion1:
		return "explosion1"
	case Explosion2:
		return "explosion2"
	case IntroDisk:
		return "intro-disk"
	default:
		return "unknown"
	}
}

// SoundServer is what scenes use to make noise.
type SoundServer interface {
	Play(s Sound)
	FadeInMusic(d time.Duration)
	FadeOutMusic(d time.Duration)
	HaltMusic()
	MusicPlaying() bool
	Close() error
}

// Silent discards everything. It records the music flag so game logic
// that toggles music behaves the same with and without a device.
type Silent struct {
	music bool
}

func (s *Silent) Play(Sound) {}

func (s *Silent) FadeInMusic(time.Duration) { s.music = true }

func (s *Silent) FadeOutMusic(time.Duration) { s.music = false }

func (s *Silent) HaltMusic() { s.music = false }

func (s *Silent) MusicPlaying() bool { return s.music }

func (s *Silent) Close() error { return nil }
