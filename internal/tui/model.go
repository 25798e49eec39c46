// Package tui is the interactive terminal estimator: paste a link, press
// enter, see what the video is worth.
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
	"github.com/dustin/go-humanize"

	"ytworth/internal/models"
	"ytworth/internal/session"
)

const (
	heading     = "how much is this video worth?"
	resultLabel = "this video is worth:"
)

type Estimator interface {
	Estimate(ctx context.Context, req models.EstimateRequest) (models.EstimateResponse, error)
}

// KeyMap defines the keybindings for the estimator.
type KeyMap struct {
	Submit key.Binding
	Clear  key.Binding
	Quit   key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Submit: key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "estimate")),
		Clear:  key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "clear")),
		Quit:   key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "quit")),
	}
}

// ShortHelp returns key bindings for the help line.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Submit, k.Clear, k.Quit}
}

func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

type Model struct {
	ctx       context.Context
	estimator Estimator
	timeout   time.Duration

	session *session.Session

	input   textinput.Model
	spinner spinner.Model
	help    help.Model
	keymap  KeyMap
	styles  Styles

	width    int
	quitting bool
}

// NewModel builds the estimator screen. A non-positive timeout falls back
// to DefaultLookupTimeout.
func NewModel(ctx context.Context, est Estimator, timeout time.Duration) *Model {
	if timeout <= 0 {
		timeout = DefaultLookupTimeout
	}

	styles := DefaultStyles()

	ti := textinput.New()
	ti.Placeholder = "https://www.youtube.com/watch?v=..."
	ti.Prompt = "▶ "
	ti.CharLimit = 2048
	ti.Width = 60
	ti.Focus()

	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = styles.Spinner

	return &Model{
		ctx:       ctx,
		estimator: est,
		timeout:   timeout,
		session:   session.New(),
		input:     ti,
		spinner:   s,
		help:      help.New(),
		keymap:    DefaultKeyMap(),
		styles:    styles,
	}
}

// Session exposes the interaction state.
func (m *Model) Session() *session.Session {
	return m.session
}

func (m *Model) Init() tea.Cmd {
	return textinput.Blink
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		return m, m.handleKey(msg)

	case spinner.TickMsg:
		// stop ticking once nothing is pending
		if m.session.State() != session.Loading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case EstimateResultMsg:
		m.handleResult(msg)
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, m.keymap.Quit):
		m.quitting = true
		return tea.Quit

	case key.Matches(msg, m.keymap.Submit):
		return m.submit()

	case key.Matches(msg, m.keymap.Clear):
		m.session.Reset()
		m.input.Reset()
		return m.input.Focus()
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return cmd
}

// submit starts a lookup for the current input. Blank input is a no-op and
// the input keeps focus.
func (m *Model) submit() tea.Cmd {
	seq, ok := m.session.Submit(m.input.Value())
	if !ok {
		return nil
	}

	return tea.Batch(
		estimateCmd(m.ctx, m.estimator, m.timeout, seq, m.session.Input()),
		m.spinner.Tick,
	)
}

func (m *Model) handleResult(msg EstimateResultMsg) {
	if msg.Err != nil {
		m.session.Fail(msg.Seq, models.UserMessage(msg.Err))
		return
	}
	m.session.Succeed(msg.Seq, msg.Estimate)
}

func (m *Model) View() string {
	if m.quitting {
		return ""
	}

	var b strings.Builder

	b.WriteString(m.styles.Title.Render(heading))
	b.WriteString("\n")
	b.WriteString(m.input.View())
	b.WriteString("\n")

	switch m.session.State() {
	case session.Loading:
		b.WriteString("\n")
		b.WriteString(m.spinner.View())
		b.WriteString(m.styles.Subtle.Render(" looking up view count..."))
		b.WriteString("\n")

	case session.Success:
		est, _ := m.session.Estimate()
		b.WriteString(m.renderEstimate(est))
		b.WriteString("\n")

	case session.Failed:
		b.WriteString(m.styles.Error.Render(m.session.Message()))
		b.WriteString("\n")
	}

	b.WriteString(m.styles.Help.Render(m.help.View(m.keymap)))

	return m.styles.Doc.Render(b.String())
}

func (m *Model) renderEstimate(est models.EstimateResponse) string {
	lines := []string{
		m.styles.Subtitle.Render(resultLabel),
		fmt.Sprintf("%s %s", m.styles.Amount.Render(est.Display), est.Emoji),
		m.styles.Subtle.Render(fmt.Sprintf("%s views · %s tier", humanize.Comma(est.Views), est.Tier)),
	}
	if est.Celebrate {
		lines = append(lines, m.styles.Celebrate.Render("🎉 jackpot! 🎉"))
	}

	return m.styles.Card.Render(strings.Join(lines, "\n"))
}

// Run blocks until the user quits or ctx is cancelled.
func Run(ctx context.Context, est Estimator, timeout time.Duration) error {
	p := tea.NewProgram(
		NewModel(ctx, est, timeout),
		tea.WithAltScreen(),
		tea.WithContext(ctx),
	)

	if _, err := p.Run(); err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		return fmt.Errorf("run tui: %w", err)
	}
	return nil
}
