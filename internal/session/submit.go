package session

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/balkashynov/brewlog/internal/brew"
	"github.com/balkashynov/brewlog/internal/gateway"
	"github.com/balkashynov/brewlog/internal/models"
)

// DefaultSubmitTimeout bounds the single insert call
const DefaultSubmitTimeout = 15 * time.Second

// ErrNotLoggedIn is returned when submitting without a cached user
var ErrNotLoggedIn = errors.New("not logged in")

// Submission is a record ready to hand to the gateway.
type Submission struct {
	User   models.User
	Record models.Brew
}

// PrepareSubmission reads the draft and timer and builds the record. It
// does not touch state.
func (s *Store) PrepareSubmission() (Submission, error) {
	s.ensure()
	user, ok := s.User()
	if !ok {
		return Submission{}, ErrNotLoggedIn
	}

	record, err := brew.BuildRecord(s.draft, s.elapsedSeconds, user.ID)
	if err != nil {
		return Submission{}, fmt.Errorf("build brew record: %w", err)
	}
	return Submission{User: user, Record: record}, nil
}

// CompleteSubmission records a successful insert: flash for the next
// cycle, reset the draft on the next cycle, clear the timer now.
func (s *Store) CompleteSubmission(inserted models.Brew) {
	s.ensure()
	if inserted.ID != 0 {
		s.flash = fmt.Sprintf("Saved brew #%d", inserted.ID)
	} else {
		s.flash = "Saved brew"
	}
	s.pendingReset = true
	s.timerStart = nil
	s.elapsedSeconds = nil
}

// FailSubmission leaves every field as entered so the same draft can be
// resubmitted; it only decorates the error for display.
func (s *Store) FailSubmission(err error) error {
	return fmt.Errorf("save failed: %w", err)
}

// Insert performs the gateway call with a deadline.
func Insert(ctx context.Context, inserter gateway.Inserter, sub Submission, timeout time.Duration) (models.Brew, error) {
	if timeout <= 0 {
		timeout = DefaultSubmitTimeout
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	return inserter.Insert(ctx, sub.User, sub.Record)
}

// Submit runs the whole protocol synchronously: prepare, insert once,
// then complete or fail.
func (s *Store) Submit(ctx context.Context, inserter gateway.Inserter, timeout time.Duration) (models.Brew, error) {
	sub, err := s.PrepareSubmission()
	if err != nil {
		return models.Brew{}, err
	}

	inserted, err := Insert(ctx, inserter, sub, timeout)
	if err != nil {
		return models.Brew{}, s.FailSubmission(err)
	}

	s.CompleteSubmission(inserted)
	return inserted, nil
}
