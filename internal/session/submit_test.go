package session

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/balkashynov/brewlog/internal/brew"
)

func TestSubmitScenarioTimedBrew(t *testing.T) {
	clock := newFakeClock()
	s := loggedInStore(clock)
	inserter := &fakeInserter{}

	s.StartTimer()
	clock.Advance(47 * time.Second)
	elapsed, err := s.StopTimer()
	require.NoError(t, err)
	assert.Equal(t, "00:47 (47 seconds)", FormatElapsed(elapsed))

	inserted, err := s.Submit(context.Background(), inserter, time.Second)
	require.NoError(t, err)

	require.Len(t, inserter.calls, 1)
	assert.Equal(t, 47, inserter.calls[0].TotalTimeSec)
	assert.Equal(t, "user-1", inserter.calls[0].UserID)
	assert.Equal(t, int64(1), inserted.ID)
}

func TestSubmitSuccessResetsOnNextCycle(t *testing.T) {
	clock := newFakeClock()
	s := loggedInStore(clock)
	s.UpdateDraft(func(d *brew.Draft) {
		d.BeanName = "Guatemala"
		d.Method = brew.ChoiceAt(brew.Method, 1)
		d.DoseG = 18
	})
	s.StartTimer()
	clock.Advance(90 * time.Second)
	_, err := s.StopTimer()
	require.NoError(t, err)

	_, err = s.Submit(context.Background(), &fakeInserter{}, time.Second)
	require.NoError(t, err)

	assert.Equal(t, TimerIdle, s.TimerState())
	assert.Equal(t, "Saved brew #1", s.Flash())
	assert.True(t, s.PendingReset())

	s.BeginCycle()

	assert.True(t, brew.Defaults(clock.Now()).Equal(s.Draft()))
	assert.Equal(t, TimerIdle, s.TimerState())
	assert.Equal(t, "Saved brew #1", s.PopFlash())
}

func TestSubmitFailurePreservesState(t *testing.T) {
	clock := newFakeClock()
	s := loggedInStore(clock)
	s.UpdateDraft(func(d *brew.Draft) {
		d.BeanName = "Colombia"
		d.DoseG = 16.5
		d.Notes = "cocoa, red apple"
	})
	s.StartTimer()
	clock.Advance(61 * time.Second)
	_, err := s.StopTimer()
	require.NoError(t, err)
	before := s.Draft()

	inserter := &fakeInserter{err: errNetwork}
	_, err = s.Submit(context.Background(), inserter, time.Second)

	require.Error(t, err)
	assert.ErrorIs(t, err, errNetwork)
	assert.Contains(t, err.Error(), "connection refused")

	s.BeginCycle()
	assert.True(t, before.Equal(s.Draft()))
	assert.Empty(t, s.Flash())
	assert.False(t, s.PendingReset())
	elapsed, ok := s.ElapsedSeconds()
	require.True(t, ok)
	assert.Equal(t, 61, elapsed)

	inserter.err = nil
	_, err = s.Submit(context.Background(), inserter, time.Second)
	require.NoError(t, err)
	require.Len(t, inserter.calls, 2)
	assert.Equal(t, inserter.calls[0], inserter.calls[1], "retry sends the same record")
}

func TestSubmitRequiresLogin(t *testing.T) {
	s := New(newFakeClock().Now)
	inserter := &fakeInserter{}

	_, err := s.Submit(context.Background(), inserter, time.Second)

	assert.ErrorIs(t, err, ErrNotLoggedIn)
	assert.Empty(t, inserter.calls)
}

func TestSubmitTimesOutHungGateway(t *testing.T) {
	s := loggedInStore(newFakeClock())

	_, err := s.Submit(context.Background(), blockingInserter{}, 20*time.Millisecond)

	assert.ErrorIs(t, err, context.DeadlineExceeded)
	assert.Empty(t, s.Flash())
}

func TestSubmitWhileRunningUsesOverride(t *testing.T) {
	clock := newFakeClock()
	s := loggedInStore(clock)
	s.StartTimer()
	clock.Advance(10 * time.Second)
	s.UpdateDraft(func(d *brew.Draft) {
		override := 200
		d.TotalTimeOverride = &override
	})
	inserter := &fakeInserter{}

	_, err := s.Submit(context.Background(), inserter, time.Second)
	require.NoError(t, err)

	assert.Equal(t, 200, inserter.calls[0].TotalTimeSec)
	assert.Equal(t, TimerIdle, s.TimerState())
}

func TestPrepareSubmissionDoesNotMutate(t *testing.T) {
	clock := newFakeClock()
	s := loggedInStore(clock)
	before := s.Draft()

	sub, err := s.PrepareSubmission()
	require.NoError(t, err)

	assert.Equal(t, "user-1", sub.Record.UserID)
	assert.True(t, before.Equal(s.Draft()))
	assert.False(t, s.PendingReset())
}
