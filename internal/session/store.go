// Package session holds the per-session state of the brew logger: the
// timer, the form draft, the queued flash message and the signed-in user.
//
// A Store belongs to exactly one session and is mutated by one goroutine
// (the render loop), so it carries no locks.
package session

import (
	"time"

	"github.com/balkashynov/brewlog/internal/brew"
	"github.com/balkashynov/brewlog/internal/models"
)

// Clock returns the current wall-clock time
type Clock func() time.Time

// Store is the state of one logged-in session.
type Store struct {
	clock Clock
	ready bool

	timerStart     *time.Time
	elapsedSeconds *int

	draft        brew.Draft
	flash        string
	pendingReset bool

	user *models.User
}

// New creates a session store. A nil clock means time.Now.
func New(clock Clock) *Store {
	if clock == nil {
		clock = time.Now
	}
	return &Store{clock: clock}
}

// ensure populates defaults on first access after creation or Clear
func (s *Store) ensure() {
	if s.ready {
		return
	}
	s.timerStart = nil
	s.elapsedSeconds = nil
	s.draft = brew.Defaults(s.clock())
	s.flash = ""
	s.pendingReset = false
	s.ready = true
}

// Now returns the store clock's current time
func (s *Store) Now() time.Time {
	return s.clock()
}

// BeginCycle runs at the top of every render cycle and applies a reset
// requested by the previous cycle.
func (s *Store) BeginCycle() {
	s.ensure()
	if !s.pendingReset {
		return
	}
	s.draft = brew.Defaults(s.clock())
	s.timerStart = nil
	s.elapsedSeconds = nil
	s.pendingReset = false
}

// RequestReset asks for the draft to be restored on the next cycle
func (s *Store) RequestReset() {
	s.ensure()
	s.pendingReset = true
}

// PendingReset reports whether a reset is queued
func (s *Store) PendingReset() bool {
	s.ensure()
	return s.pendingReset
}

// Draft returns a copy of the current form values
func (s *Store) Draft() brew.Draft {
	s.ensure()
	return s.draft
}

// SetDraft replaces the form values
func (s *Store) SetDraft(d brew.Draft) {
	s.ensure()
	s.draft = d
}

// UpdateDraft applies fn to the current draft in place
func (s *Store) UpdateDraft(fn func(*brew.Draft)) {
	s.ensure()
	fn(&s.draft)
}

// QueueFlash stores a message for the next cycle
func (s *Store) QueueFlash(msg string) {
	s.ensure()
	s.flash = msg
}

// Flash returns the queued message without clearing it
func (s *Store) Flash() string {
	s.ensure()
	return s.flash
}

// PopFlash returns the queued message and clears it
func (s *Store) PopFlash() string {
	s.ensure()
	msg := s.flash
	s.flash = ""
	return msg
}

// User returns the signed-in user, if any
func (s *Store) User() (models.User, bool) {
	if s.user == nil {
		return models.User{}, false
	}
	return *s.user, true
}

// SetUser caches the authenticated identity for this session
func (s *Store) SetUser(u models.User) {
	s.user = &u
}

// Clear drops all session state, including the user
func (s *Store) Clear() {
	s.user = nil
	s.ready = false
	s.ensure()
}
