package core

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFPSWindow_Average(t *testing.T) {
	var w FPSWindow
	for i := 0; i < 10; i++ {
		w.Push(16 * time.Millisecond)
	}
	assert.Equal(t, 63, w.FPS)
}

func TestFPSWindow_KeepsLastTenSamples(t *testing.T) {
	var w FPSWindow
	for i := 0; i < 10; i++ {
		w.Push(100 * time.Millisecond)
	}
	assert.Equal(t, 10, w.FPS)
	for i := 0; i < 10; i++ {
		w.Push(20 * time.Millisecond)
	}
	assert.Equal(t, 50, w.FPS)
}

func TestFPSWindow_ZeroDeltaKeepsEstimate(t *testing.T) {
	w := FPSWindow{FPS: TargetFPS}
	assert.Equal(t, TargetFPS, w.Push(0))
}

func TestGameState_AwardKillTracksHighScore(t *testing.T) {
	s := NewGameState(15)
	assert.False(t, s.AwardKill())
	assert.Equal(t, 10, s.AllyScore)
	assert.True(t, s.AwardKill())
	assert.Equal(t, 20, s.HighScore)
	assert.Equal(t, 2, s.EnemiesDefeated)
}

func TestGameState_FinishNewHighScore(t *testing.T) {
	s := NewGameState(20)
	s.Phase = PhaseRunning
	s.AllyScore = 30
	s.Finish(ReasonCollision)
	assert.Equal(t, PhaseGameOver, s.Phase)
	assert.Equal(t, 30, s.FinalScore)
	assert.True(t, s.NewHighScore)

	zero := NewGameState(0)
	zero.Finish(ReasonShotDown)
	assert.False(t, zero.NewHighScore, "zero score is never a record")

	tie := NewGameState(30)
	tie.AllyScore = 30
	tie.Finish(ReasonShotDown)
	assert.False(t, tie.NewHighScore)
}

func TestGameState_Reset(t *testing.T) {
	s := NewGameState(0)
	s.AllyScore, s.EnemyScore = 50, 4
	s.HighScore = 50
	s.BeginWave(4, 7)
	s.EnemiesDefeated = 3
	s.ShowFPS = true
	gen := s.Generation

	s.Reset()
	assert.Zero(t, s.AllyScore)
	assert.Zero(t, s.EnemyScore)
	assert.Equal(t, 1, s.Wave)
	assert.Equal(t, FirstWaveTarget, s.EnemiesInWave)
	assert.Zero(t, s.EnemiesDefeated)
	assert.Equal(t, 50, s.HighScore)
	assert.Equal(t, 50, s.SessionHigh)
	assert.True(t, s.ShowFPS)
	assert.Equal(t, gen+1, s.Generation)
}

func TestTeamSpecs(t *testing.T) {
	assert.Equal(t, "British", TeamAlly.String())
	assert.Equal(t, TeamEnemy, TeamAlly.Opponent())
	assert.Equal(t, 20, TeamEnemy.Spec().HitDamage)
	assert.Equal(t, 10, TeamAlly.Spec().HitDamage)
	assert.True(t, TeamEnemy.Spec().Flip)
	assert.Equal(t, "shield", PowerUpShield.String())
}
