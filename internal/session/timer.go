package session

import (
	"errors"
	"fmt"
	"math"
	"time"
)

// TimerState is the stopwatch phase
type TimerState int

const (
	TimerIdle TimerState = iota
	TimerRunning
	TimerStopped
)

func (t TimerState) String() string {
	switch t {
	case TimerRunning:
		return "running"
	case TimerStopped:
		return "stopped"
	default:
		return "idle"
	}
}

// ErrTimerNotRunning is a user-sequence warning, not a failure.
var ErrTimerNotRunning = errors.New("start the timer first")

// TimerState derives the phase from the stored fields
func (s *Store) TimerState() TimerState {
	s.ensure()
	switch {
	case s.timerStart != nil:
		return TimerRunning
	case s.elapsedSeconds != nil:
		return TimerStopped
	default:
		return TimerIdle
	}
}

// StartTimer begins timing from IDLE or STOPPED. Restarting a running
// timer moves its start point to now.
func (s *Store) StartTimer() {
	s.ensure()
	now := s.clock()
	s.timerStart = &now
	s.elapsedSeconds = nil
	s.draft.TotalTimeOverride = nil
}

// StopTimer finalizes the elapsed seconds and drops any time typed while
// running, so only an edit made after the stop overrides the stopwatch.
// Calling it without a running timer changes nothing and returns
// ErrTimerNotRunning.
func (s *Store) StopTimer() (int, error) {
	s.ensure()
	if s.timerStart == nil {
		return 0, ErrTimerNotRunning
	}
	elapsed := secondsBetween(*s.timerStart, s.clock())
	s.elapsedSeconds = &elapsed
	s.timerStart = nil
	s.draft.TotalTimeOverride = nil
	return elapsed, nil
}

// ResetTimer returns to IDLE
func (s *Store) ResetTimer() {
	s.ensure()
	s.timerStart = nil
	s.elapsedSeconds = nil
}

// ElapsedSeconds returns the finalized value, if the timer was stopped
func (s *Store) ElapsedSeconds() (int, bool) {
	s.ensure()
	if s.elapsedSeconds == nil {
		return 0, false
	}
	return *s.elapsedSeconds, true
}

// RunningSeconds is the live elapsed value while RUNNING, else 0
func (s *Store) RunningSeconds() int {
	s.ensure()
	if s.timerStart == nil {
		return 0
	}
	return secondsBetween(*s.timerStart, s.clock())
}

// DisplaySeconds is what the timer panel shows in any state
func (s *Store) DisplaySeconds() int {
	if elapsed, ok := s.ElapsedSeconds(); ok {
		return elapsed
	}
	return s.RunningSeconds()
}

func secondsBetween(start, end time.Time) int {
	diff := end.Sub(start).Seconds()
	if diff < 0 {
		return 0
	}
	return int(math.Floor(diff))
}

// FormatClock renders seconds as MM:SS; minutes keep counting past 59.
func FormatClock(seconds int) string {
	if seconds < 0 {
		seconds = 0
	}
	return fmt.Sprintf("%02d:%02d", seconds/60, seconds%60)
}

// FormatElapsed renders seconds as "MM:SS (N seconds)"
func FormatElapsed(seconds int) string {
	if seconds < 0 {
		seconds = 0
	}
	return fmt.Sprintf("%s (%d seconds)", FormatClock(seconds), seconds)
}
