package session

import (
	"context"
	"errors"
	"time"

	"github.com/balkashynov/brewlog/internal/models"
)

type fakeClock struct {
	now time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{now: time.Date(2025, 5, 20, 8, 15, 0, 0, time.UTC)}
}

func (c *fakeClock) Now() time.Time          { return c.now }
func (c *fakeClock) Advance(d time.Duration) { c.now = c.now.Add(d) }

type fakeInserter struct {
	calls  []models.Brew
	err    error
	nextID int64
}

func (f *fakeInserter) Insert(ctx context.Context, user models.User, brew models.Brew) (models.Brew, error) {
	f.calls = append(f.calls, brew)
	if f.err != nil {
		return models.Brew{}, f.err
	}
	if err := ctx.Err(); err != nil {
		return models.Brew{}, err
	}
	f.nextID++
	brew.ID = f.nextID
	return brew, nil
}

type blockingInserter struct{}

func (blockingInserter) Insert(ctx context.Context, user models.User, brew models.Brew) (models.Brew, error) {
	<-ctx.Done()
	return models.Brew{}, ctx.Err()
}

var errNetwork = errors.New("dial tcp: connection refused")

func loggedInStore(clock *fakeClock) *Store {
	s := New(clock.Now)
	s.SetUser(models.User{ID: "user-1", Email: "me@example.com"})
	return s
}
