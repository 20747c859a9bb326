package main

import (
	"context"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/metric/noop"

	"github.com/1siamBot/dogfight/engine/core"
	"github.com/1siamBot/dogfight/internal/app"
	"github.com/1siamBot/dogfight/internal/config"
)

func testGame(t *testing.T) (*Game, tcell.SimulationScreen) {
	t.Helper()
	cfg, err := config.Load(t.TempDir(), nil)
	require.NoError(t, err)
	cfg.Storage.Type = "memory"
	cfg.Game.Seed = 3

	s, err := app.New(context.Background(), cfg, app.Options{Meter: noop.NewMeterProvider().Meter("test")})
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })

	screen := tcell.NewSimulationScreen("UTF-8")
	require.NoError(t, screen.Init())
	screen.SetSize(120, 40)
	t.Cleanup(screen.Fini)
	return NewGame(screen, s), screen
}

func TestGame_AnyKeyStartsAndDraws(t *testing.T) {
	g, screen := testGame(t)

	require.True(t, g.handleEvent(tcell.NewEventKey(tcell.KeyRune, 'x', tcell.ModNone)))
	require.NoError(t, g.frame(time.Second/60))
	assert.Equal(t, core.PhaseRunning, g.session.Driver.State().Phase)

	cells, w, h := screen.GetContents()
	require.Equal(t, 120, w)
	require.Equal(t, 40, h)
	drawn := 0
	for _, c := range cells {
		if len(c.Runes) > 0 && c.Runes[0] != ' ' {
			drawn++
		}
	}
	assert.Positive(t, drawn, "HUD text should reach the screen")
}

func TestGame_QuitKeys(t *testing.T) {
	g, _ := testGame(t)
	assert.False(t, g.handleEvent(tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone)))
	assert.False(t, g.handleEvent(tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone)))
	assert.True(t, g.handleEvent(tcell.NewEventKey(tcell.KeyRune, 'p', tcell.ModNone)))
}

func TestGame_ResizeFollowsScreen(t *testing.T) {
	g, screen := testGame(t)
	screen.SetSize(80, 24)
	g.handleEvent(tcell.NewEventResize(80, 24))
	assert.Equal(t, 80, g.backend.Grid.W)
	assert.Equal(t, 24, g.backend.Grid.H)
}

func TestPumpEvents_StopsWhenRunReturns(t *testing.T) {
	key := tcell.NewEventKey(tcell.KeyRune, 'x', tcell.ModNone)
	events := make(chan tcell.Event, 1)
	done := make(chan struct{})
	exited := make(chan struct{})
	go func() {
		pumpEvents(func() tcell.Event { return key }, events, done)
		close(exited)
	}()

	// nobody reads: the pump fills the buffer and blocks on the next send
	require.Eventually(t, func() bool { return len(events) == 1 }, time.Second, time.Millisecond)
	close(done)
	select {
	case <-exited:
	case <-time.After(time.Second):
		t.Fatal("pump still blocked after done closed")
	}
}

func TestPumpEvents_ClosesOnFinalize(t *testing.T) {
	events := make(chan tcell.Event, 1)
	pumpEvents(func() tcell.Event { return nil }, events, make(chan struct{}))
	_, ok := <-events
	assert.False(t, ok)
}
