package core

import "time"

// Gameplay constants. Distances are playfield pixels, rates are per step.
const (
	TargetFPS     = 60
	FPSSampleSize = 10

	PlaneSpeed     = 3.0
	PlaneMaxHealth = 100
	FireCooldown   = 300 * time.Millisecond
	ShootAnimTime  = 250 * time.Millisecond
	DamageFlash    = 5 // frames
	SmokeThreshold = 0.4
	SmokeChance    = 0.3

	BulletSpeed  = 8.0
	BulletWidth  = 8.0
	BulletHeight = 3.0

	ExplosionParticles = 30
	MuzzleParticles    = 5
	Gravity            = 0.1

	PowerUpSize      = 30.0
	PowerUpDrift     = 2.0
	PowerUpDespawnX  = -50.0
	HealAmount       = 50
	RapidFireTime    = 5 * time.Second
	ShieldTime       = 10 * time.Second
	PowerUpDropOdds  = 0.2
	PowerUpSpawnOdds = 0.001

	KillScore       = 10
	EnemyRemoveWait = 800 * time.Millisecond
	GameOverWait    = 1 * time.Second
	GameOverRetry   = 100 * time.Millisecond
	StatusTime      = 2 * time.Second

	AITrackFactor = 0.6
	AIDeadZone    = 5.0
	AIDriftFactor = 0.8
	AIFireChance  = 0.02
	AIEscapeX     = -100.0

	FirstWaveTarget = 3
	WaveTargetBase  = 3
	MaxEnemiesCap   = 3
	SpawnOddsBase   = 0.01
	SpawnOddsStep   = 0.002
	EnemySpawnInset = 150.0
	PowerUpInset    = 50.0

	CloudCount = 5

	// MaxFrameDelta caps how far the sim clock moves in one frame.
	MaxFrameDelta = 250 * time.Millisecond
)

// Ally movement bounds, measured from the playfield edges.
const (
	AllyMarginTop    = 20.0
	AllyMarginBottom = 20.0
	AllyMarginLeft   = 10.0
	AllyStartX       = 100.0
	AllyStartYOffset = 15.0
)

const (
	StatusGoodLuck = "Good luck, pilot!"
	StatusWaitKey  = "Press any key to start"
)
