// Package tui is the interactive brew logger: a login screen, then the
// brew form with its stopwatch.
package tui

import (
	"context"
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	hclog "github.com/hashicorp/go-hclog"

	"github.com/balkashynov/brewlog/internal/gateway"
	"github.com/balkashynov/brewlog/internal/session"
)

// Options wires the TUI to its collaborators
type Options struct {
	Backend gateway.Backend
	Store   *session.Store
	Log     hclog.Logger
	Timeout time.Duration
	Email   string
}

type screen int

const (
	screenLogin screen = iota
	screenBrew
)

// signedOutMsg reports the server-side logout, which is best effort
type signedOutMsg struct {
	err error
}

// AppModel routes messages to the active screen
type AppModel struct {
	opts   Options
	screen screen
	login  LoginModel
	brew   BrewModel

	width  int
	height int
}

// NewAppModel creates the root model. A store that already holds a user
// starts on the brew screen.
func NewAppModel(opts Options) AppModel {
	if opts.Log == nil {
		opts.Log = hclog.NewNullLogger()
	}
	if opts.Timeout <= 0 {
		opts.Timeout = session.DefaultSubmitTimeout
	}
	if opts.Store == nil {
		opts.Store = session.New(nil)
	}

	m := AppModel{
		opts:  opts,
		login: NewLoginModel(opts.Backend, opts.Timeout, opts.Email),
	}
	if _, ok := opts.Store.User(); ok {
		m.screen = screenBrew
		m.brew = NewBrewModel(opts.Store, opts.Backend, opts.Log, opts.Timeout)
	}
	return m
}

// Init initializes the active screen
func (m AppModel) Init() tea.Cmd {
	if m.screen == screenBrew {
		return m.brew.Init()
	}
	return m.login.Init()
}

// Update handles messages
func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.login, _ = m.login.Update(msg)
		if m.screen == screenBrew {
			m.brew, _ = m.brew.Update(msg)
		}
		return m, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
		if m.screen == screenBrew && msg.String() == "ctrl+l" && !m.brew.submitting {
			return m.logout()
		}

	case authResultMsg:
		return m.authenticated(msg)

	case signedOutMsg:
		if msg.err != nil {
			m.opts.Log.Warn("sign out failed", "error", msg.err)
		}
		return m, nil
	}

	var cmd tea.Cmd
	if m.screen == screenBrew {
		m.brew, cmd = m.brew.Update(msg)
	} else {
		m.login, cmd = m.login.Update(msg)
	}
	return m, cmd
}

func (m AppModel) authenticated(msg authResultMsg) (tea.Model, tea.Cmd) {
	if msg.err != nil {
		m.opts.Log.Info("authentication failed", "sign_up", msg.signUp, "error", msg.err)
		m.login.failed(msg.err)
		return m, nil
	}
	if msg.signUp {
		m.opts.Log.Info("account created", "user", msg.user.ID)
		m.login.registered(msg.user)
		return m, nil
	}

	m.opts.Log.Info("signed in", "user", msg.user.ID, "backend", m.opts.Backend.Name())
	m.opts.Store.Clear()
	m.opts.Store.SetUser(msg.user)

	// Ticks from a previous session's timer must not match the new model
	gen := m.brew.tickGen
	m.screen = screenBrew
	m.brew = NewBrewModel(m.opts.Store, m.opts.Backend, m.opts.Log, m.opts.Timeout)
	m.brew.tickGen = gen + 1
	if m.width > 0 {
		m.brew, _ = m.brew.Update(tea.WindowSizeMsg{Width: m.width, Height: m.height})
	}
	return m, m.brew.Init()
}

// logout drops all session state and returns to the login screen
func (m AppModel) logout() (tea.Model, tea.Cmd) {
	user, _ := m.opts.Store.User()
	m.opts.Store.Clear()
	m.brew.tickGen++
	m.opts.Log.Info("signed out", "user", user.ID)

	m.screen = screenLogin
	m.login.reset("Signed out.")

	backend, timeout := m.opts.Backend, m.opts.Timeout
	signOut := func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()
		return signedOutMsg{err: backend.SignOut(ctx, user)}
	}
	return m, tea.Batch(m.login.Init(), signOut)
}

// View renders the active screen
func (m AppModel) View() string {
	if m.screen == screenBrew {
		return m.brew.View()
	}
	return m.login.View()
}

// RunBrewTUI starts the interactive brew logger
func RunBrewTUI(opts Options) error {
	model := NewAppModel(opts)

	p := tea.NewProgram(model, tea.WithAltScreen())
	finalModel, err := p.Run()
	if err != nil {
		return err
	}

	if m, ok := finalModel.(AppModel); ok {
		if m.screen == screenBrew && m.opts.Store.TimerState() == session.TimerRunning {
			fmt.Println("⏱  Timer was still running, the brew was not saved.")
		}
	}
	fmt.Println("☕ Bye.")
	return nil
}
