// Package ebitenaudio plays synthesized sounds through ebiten's audio context.
package ebitenaudio

import (
	"github.com/gopxl/beep"
	"github.com/hajimehoshi/ebiten/v2/audio"

	sfx "github.com/1siamBot/dogfight/engine/audio"
)

type Sink struct {
	ctx     *audio.Context
	rate    beep.SampleRate
	players []*audio.Player
}

// New reuses the process audio context or creates one at rate.
func New(rate beep.SampleRate) *Sink {
	ctx := audio.CurrentContext()
	if ctx == nil {
		ctx = audio.NewContext(int(rate))
	} else {
		rate = beep.SampleRate(ctx.SampleRate())
	}
	return &Sink{ctx: ctx, rate: rate}
}

// Rate is the sample rate the context was opened with.
func (s *Sink) Rate() beep.SampleRate { return s.rate }

func (s *Sink) Play(st beep.Streamer) {
	live := s.players[:0]
	for _, p := range s.players {
		if p.IsPlaying() {
			live = append(live, p)
		} else {
			p.Close()
		}
	}
	s.players = live

	p := s.ctx.NewPlayerFromBytes(sfx.PCM16(st, s.rate))
	p.Play()
	s.players = append(s.players, p)
}
