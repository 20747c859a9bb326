package core

import (
	"math"
	"time"
)

// Phase is the top-level game state
type Phase uint8

const (
	PhaseIdle Phase = iota
	PhaseRunning
	PhasePaused
	PhaseGameOver
)

var phaseNames = [...]string{"idle", "running", "paused", "gameover"}

func (p Phase) String() string { return phaseNames[p] }

// GameOverReason says how the ally was lost
type GameOverReason uint8

const (
	ReasonNone GameOverReason = iota
	ReasonShotDown
	ReasonCollision
)

var reasonNames = [...]string{"none", "shot down", "collision"}

func (r GameOverReason) String() string { return reasonNames[r] }

// GameState is the session-wide state shared by the driver and the
// collision resolver.
type GameState struct {
	Phase Phase

	AllyScore  int
	EnemyScore int

	Wave            int
	EnemiesInWave   int
	EnemiesDefeated int

	HighScore    int
	SessionHigh  int // high score when the session started
	Reason       GameOverReason
	FinalScore   int
	NewHighScore bool

	Status    string
	StatusSeq uint64

	ShowFPS bool
	FPS     FPSWindow

	// Clock is the simulation clock. It only moves while running.
	Clock      time.Duration
	Frame      uint64
	Generation uint64
}

// NewGameState builds an idle state seeded with the persisted high score.
func NewGameState(highScore int) *GameState {
	return &GameState{
		Phase:       PhaseIdle,
		HighScore:   highScore,
		SessionHigh: highScore,
		Status:      StatusWaitKey,
		FPS:         FPSWindow{FPS: TargetFPS},
	}
}

// Running reports whether the step should run this frame.
func (s *GameState) Running() bool { return s.Phase == PhaseRunning }

// BeginWave resets wave counters.
func (s *GameState) BeginWave(wave, target int) {
	s.Wave = wave
	s.EnemiesInWave = target
	s.EnemiesDefeated = 0
}

// AwardKill credits the ally with a kill and reports whether the high
// score moved.
func (s *GameState) AwardKill() bool {
	s.AllyScore += KillScore
	s.EnemiesDefeated++
	if s.AllyScore > s.HighScore {
		s.HighScore = s.AllyScore
		return true
	}
	return false
}

// SetStatus replaces the status line and returns its sequence number.
func (s *GameState) SetStatus(text string) uint64 {
	s.Status = text
	s.StatusSeq++
	return s.StatusSeq
}

// Finish moves the session to game over.
func (s *GameState) Finish(reason GameOverReason) {
	s.Phase = PhaseGameOver
	s.Reason = reason
	s.FinalScore = s.AllyScore
	s.NewHighScore = s.FinalScore > s.SessionHigh && s.FinalScore > 0
}

// Reset clears scores and waves for a new session. The high score and the
// FPS overlay survive; the generation moves on.
func (s *GameState) Reset() {
	s.AllyScore = 0
	s.EnemyScore = 0
	s.BeginWave(1, FirstWaveTarget)
	s.Reason = ReasonNone
	s.FinalScore = 0
	s.NewHighScore = false
	s.SessionHigh = s.HighScore
	s.Generation++
}

// FPSWindow is a rolling average over the last FPSSampleSize frame deltas.
type FPSWindow struct {
	samples [FPSSampleSize]time.Duration
	n, next int
	FPS     int
}

// Push records one frame delta and returns the updated estimate.
func (w *FPSWindow) Push(delta time.Duration) int {
	w.samples[w.next] = delta
	w.next = (w.next + 1) % FPSSampleSize
	if w.n < FPSSampleSize {
		w.n++
	}
	var sum time.Duration
	for i := 0; i < w.n; i++ {
		sum += w.samples[i]
	}
	avgMs := float64(sum) / float64(w.n) / float64(time.Millisecond)
	if avgMs > 0 {
		w.FPS = int(math.Round(1000 / avgMs))
	}
	return w.FPS
}
