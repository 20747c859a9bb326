package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/spf13/pflag"

	sfx "github.com/1siamBot/dogfight/engine/audio"
	"github.com/1siamBot/dogfight/engine/audio/ebitenaudio"
	"github.com/1siamBot/dogfight/engine/core"
	"github.com/1siamBot/dogfight/engine/input"
	"github.com/1siamBot/dogfight/engine/input/ebiteninput"
	"github.com/1siamBot/dogfight/engine/render"
	"github.com/1siamBot/dogfight/engine/render/ebitenr"
	"github.com/1siamBot/dogfight/internal/app"
)

// Game implements ebiten.Game interface
type Game struct {
	session  *app.Session
	source   *ebiteninput.Source
	input    *input.State
	backend  *ebitenr.Backend
	drawList *render.DrawList

	width, height int
	last          time.Time
}

func NewGame(s *app.Session) *Game {
	sheets := make([]string, 0, len(core.TeamSpecs))
	for _, spec := range core.TeamSpecs {
		sheets = append(sheets, spec.Sheet)
	}
	sim := s.Driver.Sim()
	return &Game{
		session:  s,
		source:   ebiteninput.NewSource(),
		input:    input.NewState(),
		backend:  ebitenr.NewBackend(ebitenr.LoadSheets(s.Config.Assets.Dir, sheets, s.Log)),
		drawList: render.NewDrawList(),
		width:    int(sim.Width()),
		height:   int(sim.Height()),
	}
}

func (g *Game) Update() error {
	now := time.Now()
	delta := time.Second / time.Duration(ebiten.TPS())
	if !g.last.IsZero() {
		delta = now.Sub(g.last)
	}
	g.last = now

	if !ebiten.IsFocused() {
		// keys released while unfocused never report
		g.input.ReleaseAll()
	}
	g.source.Poll(g.input)

	err := g.session.Frame(delta, g.input.Snapshot())
	if errors.Is(err, app.ErrReplayDone) {
		return ebiten.Termination
	}
	return err
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.drawList.Reset()
	g.session.Driver.Render(g.drawList)
	g.backend.Draw(screen, g.drawList.Commands())
}

// Layout keeps the playfield resolution; ebiten scales it to the window.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.width, g.height
}

func run() error {
	cfg, _, err := app.LoadConfig("dogfight", os.Args[1:], nil)
	if err != nil {
		return err
	}

	opts := app.Options{Console: os.Stderr}
	if cfg.Audio.Enabled {
		sink := ebitenaudio.New(sfx.DefaultSampleRate)
		opts.Sink, opts.Rate = sink, sink.Rate()
	}
	session, err := app.New(context.Background(), cfg, opts)
	if err != nil {
		return err
	}
	defer session.Close()

	ebiten.SetWindowSize(cfg.Window.Width, cfg.Window.Height)
	ebiten.SetWindowTitle(cfg.Window.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetTPS(cfg.Game.RefreshRate)
	ebiten.SetVsyncEnabled(true)

	if err := ebiten.RunGame(NewGame(session)); err != nil && !errors.Is(err, ebiten.Termination) {
		session.Log.Error().Err(err).Msg("game loop stopped")
		return err
	}
	return nil
}

func main() {
	if err := run(); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return
		}
		fmt.Fprintln(os.Stderr, "dogfight:", err)
		os.Exit(1)
	}
}
