package tui

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/balkashynov/brewlog/internal/gateway"
	"github.com/balkashynov/brewlog/internal/models"
)

// authResultMsg is the outcome of a sign-in or sign-up request
type authResultMsg struct {
	user   models.User
	err    error
	signUp bool
}

// LoginModel is the email/password screen
type LoginModel struct {
	auth    gateway.Authenticator
	timeout time.Duration

	email    textinput.Model
	password textinput.Model
	focus    int

	signingUp bool
	busy      bool
	spinner   spinner.Model

	err    string
	notice string

	width  int
	height int
}

// NewLoginModel creates the login screen, with email pre-filled if given
func NewLoginModel(auth gateway.Authenticator, timeout time.Duration, email string) LoginModel {
	emailInput := textinput.New()
	emailInput.Placeholder = "you@example.com"
	emailInput.CharLimit = 254
	emailInput.Width = 40
	emailInput.SetValue(email)

	passwordInput := textinput.New()
	passwordInput.Placeholder = "password"
	passwordInput.EchoMode = textinput.EchoPassword
	passwordInput.EchoCharacter = '•'
	passwordInput.CharLimit = 128
	passwordInput.Width = 40

	for _, input := range []*textinput.Model{&emailInput, &passwordInput} {
		input.TextStyle = valueStyle
		input.PlaceholderStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(ColorPlaceholder))
		input.Cursor.Style = lipgloss.NewStyle().Foreground(lipgloss.Color(ColorAccentBright))
	}

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(lipgloss.Color(ColorAccentBright))

	m := LoginModel{
		auth:     auth,
		timeout:  timeout,
		email:    emailInput,
		password: passwordInput,
		spinner:  sp,
	}
	if strings.TrimSpace(email) != "" {
		m.focus = 1
	}
	m.applyFocus()
	return m
}

// Init starts the cursor blink
func (m LoginModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m *LoginModel) applyFocus() {
	if m.focus == 0 {
		m.email.Focus()
		m.password.Blur()
	} else {
		m.email.Blur()
		m.password.Focus()
	}
}

// Update handles login screen input
func (m LoginModel) Update(msg tea.Msg) (LoginModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case spinner.TickMsg:
		if !m.busy {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		if m.busy {
			return m, nil
		}
		switch msg.String() {
		case "tab", "shift+tab", "up", "down":
			m.focus = 1 - m.focus
			m.applyFocus()
			return m, textinput.Blink
		case "ctrl+n":
			m.signingUp = !m.signingUp
			m.err, m.notice = "", ""
			return m, nil
		case "enter":
			if m.focus == 0 && m.password.Value() == "" {
				m.focus = 1
				m.applyFocus()
				return m, textinput.Blink
			}
			return m.submit()
		}
	}

	var cmd tea.Cmd
	if m.focus == 0 {
		m.email, cmd = m.email.Update(msg)
	} else {
		m.password, cmd = m.password.Update(msg)
	}
	return m, cmd
}

func (m LoginModel) submit() (LoginModel, tea.Cmd) {
	email := strings.TrimSpace(m.email.Value())
	password := m.password.Value()
	if email == "" || password == "" {
		m.err = "Email and password are required"
		return m, nil
	}
	if m.signingUp {
		if err := gateway.ValidateCredentials(email, password); err != nil {
			m.err = err.Error()
			return m, nil
		}
	}

	m.busy = true
	m.err, m.notice = "", ""

	auth, timeout, signUp := m.auth, m.timeout, m.signingUp
	request := func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()

		var user models.User
		var err error
		if signUp {
			user, err = auth.SignUp(ctx, email, password)
		} else {
			user, err = auth.SignIn(ctx, email, password)
		}
		return authResultMsg{user: user, err: err, signUp: signUp}
	}
	return m, tea.Batch(m.spinner.Tick, request)
}

// failed shows an auth error inline; the user can retry at once
func (m *LoginModel) failed(err error) {
	m.busy = false
	switch {
	case errors.Is(err, gateway.ErrInvalidCredentials):
		m.err = "Invalid email or password"
	case errors.Is(err, gateway.ErrEmailTaken), errors.Is(err, gateway.ErrWeakPassword):
		m.err = err.Error()
	case errors.Is(err, context.DeadlineExceeded):
		m.err = "The server did not answer in time, try again"
	default:
		m.err = "Sign in failed: " + err.Error()
	}
	m.password.SetValue("")
	m.focus = 1
	m.applyFocus()
}

// registered switches back to sign-in after creating an account
func (m *LoginModel) registered(user models.User) {
	m.busy = false
	m.signingUp = false
	m.notice = "Account created for " + user.Email + ". Press enter to sign in."
	m.focus = 1
	m.applyFocus()
}

// reset clears the form for a fresh login, keeping the email
func (m *LoginModel) reset(notice string) {
	m.busy = false
	m.signingUp = false
	m.err = ""
	m.notice = notice
	m.password.SetValue("")
	m.focus = 1
	m.applyFocus()
}

// View renders the login screen
func (m LoginModel) View() string {
	title := "Sign in"
	if m.signingUp {
		title = "Create account"
	}

	lines := []string{
		titleStyle.Render("☕ brewlog"),
		mutedStyle.Render(title),
		"",
		labelStyle.Render("Email") + m.email.View(),
		labelStyle.Render("Password") + m.password.View(),
		"",
	}

	switch {
	case m.busy:
		lines = append(lines, m.spinner.View()+" Contacting server...")
	case m.err != "":
		lines = append(lines, errorStyle.Render("✗ "+m.err))
	case m.notice != "":
		lines = append(lines, flashStyle.Render(m.notice))
	default:
		lines = append(lines, "")
	}

	toggle := "ctrl+n create account"
	if m.signingUp {
		toggle = "ctrl+n back to sign in"
	}
	helpStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(ColorHelpText)).
		Italic(true)
	lines = append(lines, "", helpStyle.Render("enter submit · tab switch field · "+toggle+" · ctrl+c quit"))

	card := panelStyle.Render(strings.Join(lines, "\n"))
	if m.width == 0 || m.height == 0 {
		return card
	}
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, card)
}
