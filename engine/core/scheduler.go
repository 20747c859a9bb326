package core

import (
	"sort"
	"time"
)

// TimerKind selects what a deferred timer does when it fires
type TimerKind uint8

const (
	TimerRevertShoot TimerKind = iota
	TimerRemoveEnemy
	TimerGameOver
	TimerClearStatus
)

// Timer is a deferred action on the simulation clock. Entity, Seq and
// Generation let the handler check the target is still the one it was
// armed for.
type Timer struct {
	Due        time.Duration
	Kind       TimerKind
	Entity     EntityID
	Seq        uint64
	Generation uint64
	Reason     GameOverReason
}

// Scheduler is a due-time ordered queue of timers. Timers with equal due
// times fire in the order they were armed.
type Scheduler struct {
	timers []Timer
}

// After arms t to fire delay after now.
func (s *Scheduler) After(now, delay time.Duration, t Timer) {
	t.Due = now + delay
	i := sort.Search(len(s.timers), func(i int) bool {
		return s.timers[i].Due > t.Due
	})
	s.timers = append(s.timers, Timer{})
	copy(s.timers[i+1:], s.timers[i:])
	s.timers[i] = t
}

// PopDue removes and returns every timer due at or before now.
func (s *Scheduler) PopDue(now time.Duration) []Timer {
	n := 0
	for n < len(s.timers) && s.timers[n].Due <= now {
		n++
	}
	if n == 0 {
		return nil
	}
	due := make([]Timer, n)
	copy(due, s.timers[:n])
	s.timers = append(s.timers[:0], s.timers[n:]...)
	return due
}

// Len returns the number of armed timers
func (s *Scheduler) Len() int { return len(s.timers) }

// Clear drops every armed timer
func (s *Scheduler) Clear() { s.timers = s.timers[:0] }
