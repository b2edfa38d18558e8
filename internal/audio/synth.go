package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
)

// oscillator is a fixed-length sine generator used for fallback effects.
type oscillator struct {
	freq     float64
	phase    float64
	position int
	duration int
}

func newOscillator(freq float64, dur time.Duration) *oscillator {
	return &oscillator{freq: freq, duration: sampleRate.N(dur)}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.duration {
			return i, false
		}
		// Linear fade-out keeps the blip from clicking at the end.
		env := 1 - float64(o.position)/float64(o.duration)
		val := 0.25 * env * math.Sin(2*math.Pi*o.phase)
		samples[i][0] = val
		samples[i][1] = val

		o.phase += o.freq / float64(sampleRate)
		o.phase -= math.Floor(o.phase)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// fallbackEffect synthesizes a placeholder blip for sounds with no asset.
func fallbackEffect(name string) beep.Streamer {
	switch name {
	case SoundShoot:
		return newOscillator(880, 60*time.Millisecond)
	case SoundExplosion:
		return beep.Seq(
			newOscillator(220, 80*time.Millisecond),
			newOscillator(110, 160*time.Millisecond),
		)
	case SoundPlayerHit:
		return newOscillator(140, 200*time.Millisecond)
	case SoundWaveStart:
		return beep.Seq(
			newOscillator(523.25, 90*time.Millisecond),
			newOscillator(659.25, 90*time.Millisecond),
		)
	case SoundGameOver:
		return beep.Seq(
			newOscillator(330, 150*time.Millisecond),
			newOscillator(247, 150*time.Millisecond),
			newOscillator(165, 300*time.Millisecond),
		)
	default:
		return newOscillator(440, 80*time.Millisecond)
	}
}
