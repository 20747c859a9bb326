package audio

import (
	"math"
	"math/rand"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
)

// DefaultSampleRate is used by both sinks.
const DefaultSampleRate = beep.SampleRate(44100)

type wave int

const (
	waveSine wave = iota
	waveSquare
	waveSaw
	waveNoise
)

// tone is a fixed-length oscillator with a linear attack/release envelope.
// slide moves the frequency linearly to freq+slide over the duration.
type tone struct {
	freq    float64
	slide   float64
	wave    wave
	amp     float64
	total   int
	attack  int
	release int
	pos     int
	phase   float64
	rate    beep.SampleRate
	rng     *rand.Rand
}

func newTone(rate beep.SampleRate, w wave, freq, slide, amp float64, d time.Duration, rng *rand.Rand) *tone {
	total := rate.N(d)
	return &tone{
		freq:    freq,
		slide:   slide,
		wave:    w,
		amp:     amp,
		total:   total,
		attack:  rate.N(5 * time.Millisecond),
		release: total / 2,
		rate:    rate,
		rng:     rng,
	}
}

func (t *tone) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if t.pos >= t.total {
			return i, i > 0
		}
		var v float64
		switch t.wave {
		case waveSine:
			v = math.Sin(2 * math.Pi * t.phase)
		case waveSquare:
			v = 1
			if t.phase >= 0.5 {
				v = -1
			}
		case waveSaw:
			v = 2 * (t.phase - 0.5)
		case waveNoise:
			v = t.rng.Float64()*2 - 1
		}
		v *= t.amp * t.envelope()
		samples[i][0], samples[i][1] = v, v

		f := t.freq + t.slide*float64(t.pos)/float64(t.total)
		t.phase += f / float64(t.rate)
		t.phase -= math.Floor(t.phase)
		t.pos++
	}
	return len(samples), true
}

func (t *tone) Err() error { return nil }

func (t *tone) envelope() float64 {
	if t.pos < t.attack {
		return float64(t.pos) / float64(t.attack)
	}
	if start := t.total - t.release; t.pos >= start && t.release > 0 {
		return float64(t.total-t.pos) / float64(t.release)
	}
	return 1
}

func notes(rate beep.SampleRate, w wave, step time.Duration, amp float64, freqs ...float64) beep.Streamer {
	seq := make([]beep.Streamer, len(freqs))
	for i, f := range freqs {
		seq[i] = newTone(rate, w, f, 0, amp, step, nil)
	}
	return beep.Seq(seq...)
}

// chime plays pure sine notes back to back
func chime(rate beep.SampleRate, step time.Duration, freqs ...float64) beep.Streamer {
	seq := make([]beep.Streamer, 0, len(freqs))
	for _, f := range freqs {
		sine, err := generators.SineTone(rate, f)
		if err != nil {
			continue
		}
		seq = append(seq, &effects.Volume{Streamer: beep.Take(rate.N(step), sine), Base: 2, Volume: -1.5})
	}
	return beep.Seq(seq...)
}

// Synth builds a fresh streamer for one sound. rng feeds the noise
// channels and may be shared between calls on one goroutine.
func Synth(id Sound, rate beep.SampleRate, rng *rand.Rand) beep.Streamer {
	switch id {
	case SndShot:
		return newTone(rate, waveSquare, 880, -440, 0.25, 80*time.Millisecond, nil)
	case SndEnemyShot:
		return newTone(rate, waveSquare, 440, -220, 0.18, 80*time.Millisecond, nil)
	case SndExplosion:
		d := 450 * time.Millisecond
		return beep.Take(rate.N(d), beep.Mix(
			newTone(rate, waveNoise, 0, 0, 0.5, d, rng),
			newTone(rate, waveSine, 90, -50, 0.6, d, nil),
		))
	case SndPowerUp:
		return chime(rate, 70*time.Millisecond, 523.25, 659.25, 783.99)
	case SndWaveCleared:
		return notes(rate, waveSquare, 90*time.Millisecond, 0.2, 392, 523.25, 659.25, 783.99)
	case SndGameOver:
		return notes(rate, waveSaw, 220*time.Millisecond, 0.3, 392, 329.63, 261.63)
	}
	return beep.Silence(0)
}
