package db

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/balkashynov/brewlog/internal/brew"
	"github.com/balkashynov/brewlog/internal/gateway"
	"github.com/balkashynov/brewlog/internal/models"
)

var _ gateway.Backend = (*Database)(nil)

func openTestDB(t *testing.T) *Database {
	t.Helper()
	database, err := Open(filepath.Join(t.TempDir(), "brewlog-test.db"), nil)
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = database.Close()
	})
	return database
}

func TestOpenRejectsNonDatabaseFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "notes.txt")
	require.NoError(t, os.WriteFile(path, []byte(strings.Repeat("not a database\n", 64)), 0o600))

	database, err := Open(path, nil)
	assert.Error(t, err)
	assert.Nil(t, database)
}

func TestSignUpThenSignIn(t *testing.T) {
	database := openTestDB(t)
	ctx := context.Background()

	created, err := database.SignUp(ctx, " Barista@Example.com ", "pourover")
	require.NoError(t, err)
	assert.Equal(t, "barista@example.com", created.Email)
	assert.NotEmpty(t, created.ID)

	user, err := database.SignIn(ctx, "barista@example.com", "pourover")
	require.NoError(t, err)
	assert.Equal(t, created.ID, user.ID)
}

func TestSignInRejectsBadCredentials(t *testing.T) {
	database := openTestDB(t)
	ctx := context.Background()
	_, err := database.SignUp(ctx, "me@example.com", "pourover")
	require.NoError(t, err)

	_, err = database.SignIn(ctx, "me@example.com", "espresso")
	assert.ErrorIs(t, err, gateway.ErrInvalidCredentials)

	_, err = database.SignIn(ctx, "nobody@example.com", "pourover")
	assert.ErrorIs(t, err, gateway.ErrInvalidCredentials)
}

func TestSignUpDuplicateEmail(t *testing.T) {
	database := openTestDB(t)
	ctx := context.Background()
	_, err := database.SignUp(ctx, "me@example.com", "pourover")
	require.NoError(t, err)

	_, err = database.SignUp(ctx, "ME@example.com", "another1")
	assert.ErrorIs(t, err, gateway.ErrEmailTaken)
}

func TestInsertReturnsStoredRow(t *testing.T) {
	database := openTestDB(t)
	ctx := context.Background()
	user, err := database.SignUp(ctx, "me@example.com", "pourover")
	require.NoError(t, err)

	draft := brew.Defaults(time.Date(2025, 2, 3, 10, 0, 0, 0, time.UTC))
	draft.BeanName = "Ethiopia Natural"
	draft.Method = brew.ChoiceAt(brew.Method, 1)
	elapsed := 47
	record, err := brew.BuildRecord(draft, &elapsed, user.ID)
	require.NoError(t, err)

	inserted, err := database.Insert(ctx, user, record)
	require.NoError(t, err)
	assert.NotZero(t, inserted.ID)

	var stored models.Brew
	require.NoError(t, database.db.First(&stored, inserted.ID).Error)
	assert.Equal(t, "Ethiopia Natural", stored.BeanName)
	assert.Equal(t, 47, stored.TotalTimeSec)
	require.NotNil(t, stored.Method)
	assert.Equal(t, "V60ドリッパー", *stored.Method)
	assert.Nil(t, stored.Roaster)
	assert.Equal(t, user.ID, stored.UserID)
}

func TestInsertRejectsOutOfRange(t *testing.T) {
	database := openTestDB(t)
	user := models.User{ID: "user-1"}
	record := models.Brew{UserID: "user-1", BeanName: "x", DoseG: 15, DripCount: 1, Rating: 9}

	_, err := database.Insert(context.Background(), user, record)
	assert.ErrorIs(t, err, gateway.ErrConstraint)
	assert.Contains(t, err.Error(), "rating")
}

func TestInsertRequiresMatchingUser(t *testing.T) {
	database := openTestDB(t)
	record := models.Brew{UserID: "someone-else", DoseG: 15, DripCount: 1, Rating: 3}

	_, err := database.Insert(context.Background(), models.User{ID: "user-1"}, record)
	assert.ErrorIs(t, err, brew.ErrMissingUser)
}
