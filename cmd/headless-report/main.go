// Command headless-report plays games without a window, either with the
// autopilot or from a replay file, and prints what happened.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/pflag"

	"github.com/1siamBot/dogfight/engine/ai"
	"github.com/1siamBot/dogfight/engine/core"
	"github.com/1siamBot/dogfight/internal/app"
	"github.com/1siamBot/dogfight/internal/config"
	"github.com/1siamBot/dogfight/internal/telemetry"
)

type runStats struct {
	runIndex int
	seed     int64
	frames   int
	stats    telemetry.Stats
	final    core.GameState
	enemies  int
	elapsed  time.Duration
}

func reportFlags(fs *pflag.FlagSet) {
	fs.Int("runs", 3, "number of autopilot runs")
	fs.Int("frames", 3600, "frames per run")
	fs.Int64("seed-step", 1, "seed increment between runs")
}

// runOnce plays one session to the frame limit or the end of its replay.
func runOnce(cfg *config.Config, runIndex, frames int) (runStats, error) {
	s, err := app.New(context.Background(), cfg, app.Options{})
	if err != nil {
		return runStats{}, err
	}
	defer s.Close()

	rs := runStats{runIndex: runIndex, seed: s.Driver.Sim().Seed}
	pilot := ai.NewAutopilot()
	delta := time.Second / time.Duration(s.Driver.Sim().RefreshRate)
	start := time.Now()
	for frames <= 0 || rs.frames < frames {
		st := s.Driver.State()
		err := s.Frame(delta, pilot.Next(s.Driver.Sim().Arena, st.Phase == core.PhaseGameOver))
		if errors.Is(err, app.ErrReplayDone) {
			break
		}
		if err != nil {
			return rs, err
		}
		rs.frames++
	}
	rs.elapsed = time.Since(start)
	rs.stats = s.Telemetry.Snapshot()
	rs.final = *s.Driver.State()
	rs.enemies = len(s.Driver.Sim().Arena.Enemies)
	return rs, nil
}

func printRun(w io.Writer, rs runStats) {
	s := rs.stats
	fmt.Fprintf(w, "--- Run %d (seed=%d) ---\n", rs.runIndex, rs.seed)
	fmt.Fprintf(w, "frames=%d sim_time=%s wall=%s\n", rs.frames, rs.final.Clock.Round(time.Millisecond), rs.elapsed.Round(time.Millisecond))
	fmt.Fprintf(w, "score: ally=%d enemy=%d high=%d wave=%d phase=%s enemies_alive=%d\n",
		rs.final.AllyScore, rs.final.EnemyScore, rs.final.HighScore, rs.final.Wave, rs.final.Phase, rs.enemies)
	fmt.Fprintf(w, "shots: ally=%d enemy=%d explosions: ally=%d enemy=%d escapes=%d\n",
		s.Shots[core.TeamAlly], s.Shots[core.TeamEnemy], s.Explosions[core.TeamAlly], s.Explosions[core.TeamEnemy], s.Escapes)
	fmt.Fprintf(w, "powerups:")
	for k := core.PowerUpKind(0); k < core.PowerUpKindCount; k++ {
		fmt.Fprintf(w, " %s=%d", k, s.PowerUps[k])
	}
	fmt.Fprintf(w, "\ngames=%d shot_down=%d collisions=%d best=%d\n\n", s.Games, s.ShotDown, s.Collisions, s.BestScore)
}

func printAggregate(w io.Writer, all []runStats) {
	if len(all) == 0 {
		return
	}
	var games, best, waves, kills int
	for _, rs := range all {
		games += rs.stats.Games
		kills += rs.stats.Explosions[core.TeamEnemy]
		if rs.stats.BestScore > best {
			best = rs.stats.BestScore
		}
		waves += rs.stats.MaxWave
	}
	fmt.Fprintf(w, "=== Aggregate over %d runs ===\n", len(all))
	fmt.Fprintf(w, "games=%d kills=%d best_score=%d avg_wave=%.2f\n", games, kills, best, float64(waves)/float64(len(all)))
}

func run(args []string, out io.Writer) error {
	cfg, fs, err := app.LoadConfig("headless-report", args, reportFlags)
	if err != nil {
		return err
	}
	runs, _ := fs.GetInt("runs")
	frames, _ := fs.GetInt("frames")
	step, _ := fs.GetInt64("seed-step")
	if runs <= 0 {
		return fmt.Errorf("--runs must be > 0")
	}

	// reports never touch the player's high score or speakers
	if !fs.Changed("storage") {
		cfg.Storage.Type = "memory"
	}
	cfg.Audio.Enabled = false
	if cfg.Game.Seed == 0 {
		cfg.Game.Seed = 42
	}

	fmt.Fprintf(out, "=== Headless Dogfight Report ===\n")
	if cfg.Replay.Play != "" {
		fmt.Fprintf(out, "replay=%s\n\n", cfg.Replay.Play)
		rs, err := runOnce(cfg, 1, 0)
		if err != nil {
			return err
		}
		printRun(out, rs)
		return nil
	}

	fmt.Fprintf(out, "runs=%d frames=%d seed_base=%d seed_step=%d difficulty=%s\n\n", runs, frames, cfg.Game.Seed, step, cfg.Game.Difficulty)
	base := cfg.Game.Seed
	all := make([]runStats, 0, runs)
	for i := 0; i < runs; i++ {
		c := *cfg
		c.Game.Seed = base + int64(i)*step
		if i > 0 {
			// only the first run is recorded
			c.Replay.Record = ""
		}
		rs, err := runOnce(&c, i+1, frames)
		if err != nil {
			return err
		}
		all = append(all, rs)
		printRun(out, rs)
	}
	printAggregate(out, all)
	return nil
}

func main() {
	if err := run(os.Args[1:], os.Stdout); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return
		}
		fmt.Fprintln(os.Stderr, "headless-report:", err)
		os.Exit(1)
	}
}
