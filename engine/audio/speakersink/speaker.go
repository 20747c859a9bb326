// Package speakersink plays sounds through the beep speaker. Used by the
// terminal frontend, which has no ebiten audio context.
package speakersink

import (
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

type Sink struct {
	mixer *beep.Mixer
}

// New initializes the speaker at rate with a 100ms buffer.
func New(rate beep.SampleRate) (*Sink, error) {
	if err := speaker.Init(rate, rate.N(100*time.Millisecond)); err != nil {
		return nil, err
	}
	s := &Sink{mixer: &beep.Mixer{}}
	speaker.Play(s.mixer)
	return s, nil
}

func (s *Sink) Play(st beep.Streamer) {
	speaker.Lock()
	s.mixer.Add(st)
	speaker.Unlock()
}

// Close silences everything still playing.
func (s *Sink) Close() error {
	speaker.Lock()
	s.mixer.Clear()
	speaker.Unlock()
	return nil
}
