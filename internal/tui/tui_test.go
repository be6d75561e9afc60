package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/balkashynov/brewlog/internal/gateway"
	"github.com/balkashynov/brewlog/internal/session"
)

func updateApp(t *testing.T, m AppModel, msg tea.Msg) (AppModel, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	app, ok := next.(AppModel)
	require.True(t, ok)
	return app, cmd
}

func signIn(t *testing.T, m AppModel) (AppModel, tea.Cmd) {
	t.Helper()
	m, _ = updateApp(t, m, typed("me@example.com"))
	m, _ = updateApp(t, m, press(tea.KeyEnter))
	m, _ = updateApp(t, m, typed("secret1"))
	return updateApp(t, m, press(tea.KeyEnter))
}

func TestLoginOpensBrewScreen(t *testing.T) {
	clock := newClock()
	store := session.New(clock.Now)
	m := NewAppModel(Options{Backend: &fakeBackend{}, Store: store})
	require.Equal(t, screenLogin, m.screen)

	m, cmd := signIn(t, m)
	m, _ = updateApp(t, m, findMsg[authResultMsg](t, cmd))

	assert.Equal(t, screenBrew, m.screen)
	user, ok := store.User()
	require.True(t, ok)
	assert.Equal(t, "user-1", user.ID)
	assert.Contains(t, m.View(), "me@example.com")
}

func TestLoginFailureShowsInlineError(t *testing.T) {
	backend := &fakeBackend{signInErr: gateway.ErrInvalidCredentials}
	m := NewAppModel(Options{Backend: backend, Store: session.New(newClock().Now)})

	m, cmd := signIn(t, m)
	m, _ = updateApp(t, m, findMsg[authResultMsg](t, cmd))

	assert.Equal(t, screenLogin, m.screen)
	assert.Equal(t, "Invalid email or password", m.login.err)
	assert.False(t, m.login.busy, "the user can retry at once")
	assert.Contains(t, m.View(), "Invalid email or password")
}

func TestSignUpReturnsToSignIn(t *testing.T) {
	backend := &fakeBackend{}
	m := NewAppModel(Options{Backend: backend, Store: session.New(newClock().Now)})

	m, _ = updateApp(t, m, press(tea.KeyCtrlN))
	require.True(t, m.login.signingUp)

	m, cmd := signIn(t, m)
	m, _ = updateApp(t, m, findMsg[authResultMsg](t, cmd))

	assert.Equal(t, 1, backend.signUps)
	assert.Equal(t, screenLogin, m.screen)
	assert.False(t, m.login.signingUp)
	assert.Contains(t, m.login.notice, "Account created")
}

func TestLogoutClearsSession(t *testing.T) {
	backend := &fakeBackend{}
	store := session.New(newClock().Now)
	m := NewAppModel(Options{Backend: backend, Store: store, Email: "me@example.com"})

	m, _ = updateApp(t, m, typed("secret1"))
	m, cmd := updateApp(t, m, press(tea.KeyEnter))
	m, _ = updateApp(t, m, findMsg[authResultMsg](t, cmd))
	require.Equal(t, screenBrew, m.screen)

	m, _ = updateApp(t, m, typed("Kenya"))
	m, cmd = updateApp(t, m, press(tea.KeyCtrlL))

	assert.Equal(t, screenLogin, m.screen)
	_, ok := store.User()
	assert.False(t, ok)
	assert.Empty(t, store.Draft().BeanName)

	_, _ = updateApp(t, m, findMsg[signedOutMsg](t, cmd))
	assert.Equal(t, 1, backend.signOuts)
}

func TestCtrlCQuits(t *testing.T) {
	m := NewAppModel(Options{Backend: &fakeBackend{}})
	_, cmd := updateApp(t, m, press(tea.KeyCtrlC))
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}
