package audio

import (
	"math"
	"math/rand"
	"time"

	"github.com/gopxl/beep"
)

// WaveType selects the oscillator shape.
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveSaw
	WaveNoise
)

// sweep is an oscillator whose frequency glides linearly from one value to
// another over its duration.
type sweep struct {
	from, to float64
	wave     WaveType
	rate     beep.SampleRate
	phase    float64
	pos      int
	total    int
}

// NewSweep creates a finite oscillator gliding from one frequency to another.
func NewSweep(from, to float64, d time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return &sweep{from: from, to: to, wave: wave, rate: rate, total: rate.N(d)}
}

func (o *sweep) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.pos >= o.total {
			return i, i > 0
		}
		f := float64(o.pos) / float64(o.total)
		freq := o.from + (o.to-o.from)*f

		var val float64
		switch o.wave {
		case WaveSquare:
			val = 1
			if o.phase >= 0.5 {
				val = -1
			}
		case WaveSaw:
			val = 2 * (o.phase - 0.5)
		case WaveNoise:
			val = rand.Float64()*2 - 1
		default:
			val = math.Sin(2 * math.Pi * o.phase)
		}
		// linear decay so effects never click at the end
		val *= 1 - f

		samples[i][0] = val
		samples[i][1] = val
		o.phase += freq / float64(o.rate)
		o.phase -= math.Floor(o.phase)
		o.pos++
	}
	return len(samples), true
}

func (o *sweep) Err() error { return nil }

// bed is the endless music loop: a minor arpeggio over a soft bass.
type bed struct {
	rate  beep.SampleRate
	pos   int
	notes []float64
	step  int
}

func newBed(rate beep.SampleRate) *bed {
	return &bed{
		rate:  rate,
		notes: []float64{220, 261.63, 329.63, 261.63, 196, 246.94, 293.66, 246.94},
		step:  rate.N(250 * time.Millisecond),
	}
}

func (b *bed) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		t := float64(b.pos) / float64(b.rate)
		note := b.notes[(b.pos/b.step)%len(b.notes)]
		within := float64(b.pos%b.step) / float64(b.step)

		lead := 0.12 * math.Sin(2*math.Pi*note*t) * (1 - within)
		bass := 0.08 * math.Sin(2*math.Pi*note/2*t)
		samples[i][0] = lead + bass
		samples[i][1] = lead + bass
		b.pos++
	}
	return len(samples), true
}

func (b *bed) Err() error { return nil }

// effect builds the streamer for one sound.
func effect(s Sound, rate beep.SampleRate) beep.Streamer {
	switch s {
	case PlayerFire:
		return NewSweep(1200, 400, 90*time.Millisecond, WaveSquare, rate)
	case EnemyFire:
		return NewSweep(600, 250, 120*time.Millisecond, WaveSaw, rate)
	case Explosion1:
		return NewSweep(80, 20, 600*time.Millisecond, WaveNoise, rate)
	case Explosion2:
		return NewSweep(160, 60, 250*time.Millisecond, WaveNoise, rate)
	case IntroDisk:
		return NewSweep(90, 900, 1200*time.Millisecond, WaveSine, rate)
	default:
		return beep.Silence(0)
	}
}
