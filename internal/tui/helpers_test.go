package tui

import (
	"context"
	"errors"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"

	"github.com/balkashynov/brewlog/internal/gateway"
	"github.com/balkashynov/brewlog/internal/models"
	"github.com/balkashynov/brewlog/internal/session"
)

type fakeClock struct {
	now time.Time
}

func (c *fakeClock) Now() time.Time          { return c.now }
func (c *fakeClock) Advance(d time.Duration) { c.now = c.now.Add(d) }

type fakeBackend struct {
	inserted  []models.Brew
	insertErr error
	signInErr error
	signUps   int
	signOuts  int
}

var _ gateway.Backend = (*fakeBackend)(nil)

func (f *fakeBackend) Insert(ctx context.Context, user models.User, brew models.Brew) (models.Brew, error) {
	f.inserted = append(f.inserted, brew)
	if f.insertErr != nil {
		return models.Brew{}, f.insertErr
	}
	brew.ID = int64(len(f.inserted))
	return brew, nil
}

func (f *fakeBackend) SignIn(ctx context.Context, email, password string) (models.User, error) {
	if f.signInErr != nil {
		return models.User{}, f.signInErr
	}
	return models.User{ID: "user-1", Email: email, AccessToken: "tok"}, nil
}

func (f *fakeBackend) SignUp(ctx context.Context, email, password string) (models.User, error) {
	f.signUps++
	return models.User{ID: "user-2", Email: email}, nil
}

func (f *fakeBackend) SignOut(ctx context.Context, user models.User) error {
	f.signOuts++
	return nil
}

func (f *fakeBackend) Name() string { return "fake" }
func (f *fakeBackend) Close() error { return nil }

var errNetwork = errors.New("dial tcp: connection refused")

func newClock() *fakeClock {
	return &fakeClock{now: time.Date(2025, 5, 20, 8, 15, 0, 0, time.Local)}
}

func newBrewScreen(clock *fakeClock, backend *fakeBackend) (BrewModel, *session.Store) {
	store := session.New(clock.Now)
	store.SetUser(models.User{ID: "user-1", Email: "me@example.com", AccessToken: "tok"})
	return NewBrewModel(store, backend, nil, time.Second), store
}

func press(t tea.KeyType) tea.KeyMsg {
	return tea.KeyMsg{Type: t}
}

func typed(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

// findMsg runs cmd, expanding batches, until it yields a T. Commands that
// sleep (timer ticks) must not be passed here.
func findMsg[T any](t *testing.T, cmd tea.Cmd) T {
	t.Helper()
	require.NotNil(t, cmd)

	queue := []tea.Cmd{cmd}
	for len(queue) > 0 {
		next := queue[0]
		queue = queue[1:]
		if next == nil {
			continue
		}
		msg := next()
		if batch, ok := msg.(tea.BatchMsg); ok {
			queue = append(queue, batch...)
			continue
		}
		if found, ok := msg.(T); ok {
			return found
		}
	}

	var zero T
	t.Fatalf("no %T produced", zero)
	return zero
}
