// Command dogfight-tty plays the game in a terminal.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/spf13/pflag"

	sfx "github.com/1siamBot/dogfight/engine/audio"
	"github.com/1siamBot/dogfight/engine/audio/speakersink"
	"github.com/1siamBot/dogfight/engine/input"
	"github.com/1siamBot/dogfight/engine/render"
	"github.com/1siamBot/dogfight/engine/render/termr"
	"github.com/1siamBot/dogfight/internal/app"
)

type Game struct {
	screen  tcell.Screen
	session *app.Session
	backend *termr.Backend
	keys    *termr.Keys
	input   *input.State
	dl      *render.DrawList
	start   time.Time
}

func NewGame(screen tcell.Screen, s *app.Session) *Game {
	cols, rows := screen.Size()
	st := input.NewState()
	sim := s.Driver.Sim()
	return &Game{
		screen:  screen,
		session: s,
		backend: termr.NewBackend(sim.Width(), sim.Height(), cols, rows),
		keys:    termr.NewKeys(st),
		input:   st,
		dl:      render.NewDrawList(),
		start:   time.Now(),
	}
}

// handleEvent returns false when the player quits.
func (g *Game) handleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return g.keys.Handle(ev, time.Since(g.start))
	case *tcell.EventResize:
		g.backend.Resize(g.screen.Size())
		g.screen.Sync()
	}
	return true
}

func (g *Game) frame(delta time.Duration) error {
	g.keys.Expire(time.Since(g.start))
	if err := g.session.Frame(delta, g.input.Snapshot()); err != nil {
		return err
	}
	g.dl.Reset()
	g.session.Driver.Render(g.dl)
	g.backend.Draw(g.dl.Commands())
	g.backend.Flush(g.screen)
	return nil
}

// pumpEvents forwards polled events until the screen is finalized or done
// closes. events is closed only in the first case.
func pumpEvents(poll func() tcell.Event, events chan<- tcell.Event, done <-chan struct{}) {
	for {
		ev := poll()
		if ev == nil {
			// screen finalized
			close(events)
			return
		}
		select {
		case events <- ev:
		case <-done:
			return
		}
	}
}

func (g *Game) Run(ctx context.Context) error {
	rate := g.session.Driver.Sim().RefreshRate
	ticker := time.NewTicker(time.Second / time.Duration(rate))
	defer ticker.Stop()

	events := make(chan tcell.Event, 16)
	done := make(chan struct{})
	defer close(done)
	go pumpEvents(g.screen.PollEvent, events, done)

	last := time.Now()
	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-events:
			if !ok || !g.handleEvent(ev) {
				return nil
			}
		case now := <-ticker.C:
			err := g.frame(now.Sub(last))
			last = now
			if errors.Is(err, app.ErrReplayDone) {
				return nil
			}
			if err != nil {
				return err
			}
		}
	}
}

func run() error {
	cfg, _, err := app.LoadConfig("dogfight-tty", os.Args[1:], nil)
	if err != nil {
		return err
	}
	if cfg.LogFile == "" {
		// the terminal belongs to the screen
		cfg.LogFile = "dogfight-tty.log"
	}

	var opts app.Options
	var sink *speakersink.Sink
	if cfg.Audio.Enabled {
		if sink, err = speakersink.New(sfx.DefaultSampleRate); err != nil {
			fmt.Fprintln(os.Stderr, "dogfight-tty: audio unavailable:", err)
			sink = nil
		} else {
			opts.Sink, opts.Rate = sink, sfx.DefaultSampleRate
			defer sink.Close()
		}
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	session, err := app.New(ctx, cfg, opts)
	if err != nil {
		return err
	}
	defer session.Close()

	screen, err := tcell.NewScreen()
	if err != nil {
		return err
	}
	if err := screen.Init(); err != nil {
		return err
	}
	defer screen.Fini()
	screen.HideCursor()

	err = NewGame(screen, session).Run(ctx)
	if err != nil {
		session.Log.Error().Err(err).Msg("game loop stopped")
	}
	return err
}

func main() {
	if err := run(); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return
		}
		fmt.Fprintln(os.Stderr, "dogfight-tty:", err)
		os.Exit(1)
	}
}
