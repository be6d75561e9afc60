package tui

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	hclog "github.com/hashicorp/go-hclog"

	"github.com/balkashynov/brewlog/internal/brew"
	"github.com/balkashynov/brewlog/internal/gateway"
	"github.com/balkashynov/brewlog/internal/models"
	"github.com/balkashynov/brewlog/internal/parser"
	"github.com/balkashynov/brewlog/internal/session"
)

// timerTickMsg refreshes the clock while the timer runs. gen identifies
// the tick chain; bumping the model's generation cancels older chains.
type timerTickMsg struct {
	gen int
}

// submitResultMsg carries the outcome of the insert back to the render loop
type submitResultMsg struct {
	brew models.Brew
	err  error
}

// cycleMsg asks for another render cycle, so a queued reset and flash apply
type cycleMsg struct{}

// BrewModel is the brew screen: the form on the left, the timer on the right
type BrewModel struct {
	store    *session.Store
	inserter gateway.Inserter
	log      hclog.Logger
	timeout  time.Duration

	keys    brewKeyMap
	help    help.Model
	spinner spinner.Model

	inputs    [fieldCount]textinput.Model
	fieldErrs [fieldCount]string
	focus     fieldID

	tickGen    int
	submitting bool

	// Banners; cleared on the next key press
	flash  string
	notice string
	errMsg string

	width  int
	height int
}

// NewBrewModel creates the brew screen for a signed-in store
func NewBrewModel(store *session.Store, inserter gateway.Inserter, log hclog.Logger, timeout time.Duration) BrewModel {
	if log == nil {
		log = hclog.NewNullLogger()
	}

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(lipgloss.Color(ColorAccentBright))

	m := BrewModel{
		store:    store,
		inserter: inserter,
		log:      log,
		timeout:  timeout,
		keys:     newBrewKeyMap(),
		help:     help.New(),
		spinner:  sp,
		inputs:   newFormInputs(),
		focus:    fieldBean,
	}
	m.store.BeginCycle()
	m.syncInputs()
	m.inputs[m.focus].Focus()
	return m
}

// Init starts the cursor blink and, if the timer is already running, the clock
func (m BrewModel) Init() tea.Cmd {
	if m.store.TimerState() == session.TimerRunning {
		return tea.Batch(textinput.Blink, tickTimer(m.tickGen))
	}
	return textinput.Blink
}

func tickTimer(gen int) tea.Cmd {
	return tea.Tick(time.Second, func(time.Time) tea.Msg {
		return timerTickMsg{gen: gen}
	})
}

func nextCycle() tea.Msg {
	return cycleMsg{}
}

// Update runs one render cycle
func (m BrewModel) Update(msg tea.Msg) (BrewModel, tea.Cmd) {
	// A reset queued by the previous cycle applies before anything else
	resetting := m.store.PendingReset()
	m.store.BeginCycle()
	if resetting {
		m.fieldErrs = [fieldCount]string{}
		m.syncInputs()
	}
	if flash := m.store.PopFlash(); flash != "" {
		m.flash = flash
	}

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case timerTickMsg:
		if msg.gen != m.tickGen || m.store.TimerState() != session.TimerRunning {
			return m, nil
		}
		return m, tickTimer(m.tickGen)

	case spinner.TickMsg:
		if !m.submitting {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case submitResultMsg:
		m.submitting = false
		if msg.err != nil {
			err := m.store.FailSubmission(msg.err)
			m.log.Error("brew insert failed", "error", msg.err)
			m.errMsg = describeSubmitError(err)
			return m, nil
		}
		m.store.CompleteSubmission(msg.brew)
		m.tickGen++
		m.log.Info("brew saved", "id", msg.brew.ID, "bean", msg.brew.BeanName, "total_time_sec", msg.brew.TotalTimeSec)
		return m, nextCycle

	case cycleMsg:
		return m, nil

	case tea.KeyMsg:
		if m.submitting {
			return m, nil
		}
		m.flash, m.notice, m.errMsg = "", "", ""
		return m.handleKey(msg)
	}

	return m.updateFocusedInput(msg)
}

func (m BrewModel) handleKey(msg tea.KeyMsg) (BrewModel, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Start):
		m.store.StartTimer()
		m.tickGen++
		m.syncInput(fieldTime)
		m.log.Debug("timer started", "at", m.store.Now())
		return m, tickTimer(m.tickGen)

	case key.Matches(msg, m.keys.Stop):
		seconds, err := m.store.StopTimer()
		if errors.Is(err, session.ErrTimerNotRunning) {
			m.notice = "Start the timer first (ctrl+t)"
			return m, nil
		}
		m.tickGen++
		m.syncInput(fieldTime)
		m.notice = "Stopped at " + session.FormatElapsed(seconds)
		m.log.Debug("timer stopped", "seconds", seconds)
		return m, nil

	case key.Matches(msg, m.keys.Submit):
		return m.submit()

	case key.Matches(msg, m.keys.Reset):
		m.store.RequestReset()
		m.tickGen++
		return m, nextCycle

	case key.Matches(msg, m.keys.Next):
		return m.moveFocus(1)

	case key.Matches(msg, m.keys.Prev):
		return m.moveFocus(-1)

	case key.Matches(msg, m.keys.Left), key.Matches(msg, m.keys.Right):
		if m.focus.kind() == kindText {
			break
		}
		n := 1
		if key.Matches(msg, m.keys.Left) {
			n = -1
		}
		elapsed := m.elapsed()
		now := m.store.Now()
		m.store.UpdateDraft(func(d *brew.Draft) {
			stepField(d, m.focus, n, elapsed, now)
		})
		m.fieldErrs[m.focus] = ""
		m.syncInput(m.focus)
		return m, nil
	}

	if m.focus == fieldRating && msg.Type == tea.KeyRunes && len(msg.Runes) == 1 {
		if r := msg.Runes[0]; r >= '1' && r <= '5' {
			m.store.UpdateDraft(func(d *brew.Draft) { d.Rating = int(r - '0') })
			return m, nil
		}
	}

	return m.updateFocusedInput(msg)
}

// updateFocusedInput feeds msg to the focused input and writes the result
// into the draft
func (m BrewModel) updateFocusedInput(msg tea.Msg) (BrewModel, tea.Cmd) {
	if !m.focus.hasInput() {
		return m, nil
	}

	before := m.inputs[m.focus].Value()
	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)

	text := m.inputs[m.focus].Value()
	if text == before {
		return m, cmd
	}

	var applyErr error
	now := m.store.Now()
	m.store.UpdateDraft(func(d *brew.Draft) {
		applyErr = applyText(d, m.focus, text, now)
	})
	if applyErr != nil {
		m.fieldErrs[m.focus] = applyErr.Error()
	} else {
		m.fieldErrs[m.focus] = ""
	}
	return m, cmd
}

func (m BrewModel) moveFocus(delta int) (BrewModel, tea.Cmd) {
	// Show the leaving field's stored (clamped) value
	if m.focus.hasInput() {
		m.inputs[m.focus].Blur()
		m.syncInput(m.focus)
		m.fieldErrs[m.focus] = ""
	}

	m.focus = fieldID((int(m.focus) + delta + int(fieldCount)) % int(fieldCount))

	if m.focus.hasInput() {
		m.inputs[m.focus].CursorEnd()
		return m, m.inputs[m.focus].Focus()
	}
	return m, nil
}

func (m BrewModel) submit() (BrewModel, tea.Cmd) {
	sub, err := m.store.PrepareSubmission()
	if err != nil {
		m.errMsg = err.Error()
		return m, nil
	}

	m.submitting = true
	m.log.Debug("submitting brew", "bean", sub.Record.BeanName, "total_time_sec", sub.Record.TotalTimeSec)

	inserter, timeout := m.inserter, m.timeout
	insert := func() tea.Msg {
		inserted, err := session.Insert(context.Background(), inserter, sub, timeout)
		return submitResultMsg{brew: inserted, err: err}
	}
	return m, tea.Batch(m.spinner.Tick, insert)
}

func describeSubmitError(err error) string {
	switch {
	case errors.Is(err, context.DeadlineExceeded):
		return "Save timed out. Your brew is still here, press ctrl+s to retry."
	case errors.Is(err, gateway.ErrConstraint):
		return "Save rejected: " + err.Error()
	default:
		return "Save failed: " + strings.TrimPrefix(err.Error(), "save failed: ")
	}
}

func (m BrewModel) elapsed() *int {
	if seconds, ok := m.store.ElapsedSeconds(); ok {
		return &seconds
	}
	return nil
}

// syncInputs copies every draft value into its input
func (m *BrewModel) syncInputs() {
	for f := fieldID(0); f < fieldCount; f++ {
		m.syncInput(f)
	}
}

func (m *BrewModel) syncInput(f fieldID) {
	if !f.hasInput() {
		return
	}
	m.inputs[f].SetValue(fieldText(m.store.Draft(), f, m.elapsed()))
}

// View renders the brew screen
func (m BrewModel) View() string {
	width := m.width
	if width == 0 {
		width = 100
	}

	var sections []string

	header := titleStyle.Render("☕ brewlog")
	if user, ok := m.store.User(); ok {
		header += mutedStyle.Render("  ·  " + user.Email)
	}
	sections = append(sections, header)

	if banner := m.renderBanner(); banner != "" {
		sections = append(sections, banner)
	}

	form := m.renderForm()
	timer := m.renderTimerPanel()
	if width < 90 {
		sections = append(sections, panelStyle.Render(form), panelStyle.Render(timer))
	} else {
		formWidth := width*3/5 - 2
		timerWidth := width - formWidth - 6
		sections = append(sections, lipgloss.JoinHorizontal(
			lipgloss.Top,
			panelStyle.Width(formWidth).Render(form),
			" ",
			panelStyle.Width(timerWidth).Render(timer),
		))
	}

	sections = append(sections, m.help.View(m.keys))
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m BrewModel) renderBanner() string {
	switch {
	case m.submitting:
		return m.spinner.View() + " Saving brew..."
	case m.errMsg != "":
		return errorStyle.Render("✗ " + m.errMsg)
	case m.flash != "":
		return flashStyle.Render("✓ " + m.flash)
	case m.notice != "":
		return noticeStyle.Render("! " + m.notice)
	}
	return ""
}

func (m BrewModel) renderForm() string {
	draft := m.store.Draft()
	now := m.store.Now()

	var b strings.Builder
	for f := fieldID(0); f < fieldCount; f++ {
		focused := f == m.focus

		label := labelStyle.Render(fieldLabels[f])
		if focused {
			label = focusedLabelStyle.Render("› " + fieldLabels[f])
		}

		var value string
		switch f.kind() {
		case kindChoice:
			value = renderChoice(choiceValue(draft, f), focused)
		case kindRating:
			value = renderRating(draft.Rating)
		default:
			value = m.inputs[f].View()
			if f == fieldDate && !focused {
				value = valueStyle.Render(parser.FormatBrewDate(draft.BrewDate, now))
			}
		}

		b.WriteString(label + value + "\n")
		if msg := m.fieldErrs[f]; msg != "" {
			b.WriteString(labelStyle.Render("") + fieldErrorStyle.Render(msg) + "\n")
		}
	}
	return strings.TrimRight(b.String(), "\n")
}

func (m BrewModel) renderTimerPanel() string {
	state := m.store.TimerState()
	seconds := m.store.DisplaySeconds()

	color := ColorSecondaryText
	var status string
	switch state {
	case session.TimerRunning:
		color = ColorAccentBright
		status = "brewing · ctrl+x to stop"
	case session.TimerStopped:
		color = ColorPrimaryText
		status = "stopped · " + session.FormatElapsed(seconds)
	default:
		status = "ready · ctrl+t to start"
	}

	lines := []string{
		titleStyle.Render("⏱  BREW TIMER"),
		"",
		renderBigClock(seconds, color),
		"",
		valueStyle.Render(fmt.Sprintf("%d seconds", seconds)),
		mutedStyle.Render(status),
		"",
		mutedStyle.Render(fmt.Sprintf("saves as %ds", m.store.Draft().TotalTime(m.elapsed()))),
	}
	return strings.Join(lines, "\n")
}
