package tui

import "github.com/charmbracelet/lipgloss"

var (
	primary   = lipgloss.AdaptiveColor{Light: "#CC0000", Dark: "#FF4E45"}
	subtle    = lipgloss.AdaptiveColor{Light: "#9B9B9B", Dark: "#5C5C5C"}
	success   = lipgloss.AdaptiveColor{Light: "#04B575", Dark: "#04B575"}
	highlight = lipgloss.AdaptiveColor{Light: "#874BFD", Dark: "#7D56F4"}
	errColor  = lipgloss.AdaptiveColor{Light: "#FF5F87", Dark: "#FF5F87"}
)

// Styles defines the estimator styles.
type Styles struct {
	Doc       lipgloss.Style
	Title     lipgloss.Style
	Subtitle  lipgloss.Style
	Card      lipgloss.Style
	Amount    lipgloss.Style
	Subtle    lipgloss.Style
	Celebrate lipgloss.Style
	Error     lipgloss.Style
	Spinner   lipgloss.Style
	Help      lipgloss.Style
}

func DefaultStyles() Styles {
	s := Styles{}
	s.Doc = lipgloss.NewStyle().Margin(1, 2)
	s.Title = lipgloss.NewStyle().Bold(true).Foreground(primary).MarginBottom(1)
	s.Subtitle = lipgloss.NewStyle().Foreground(subtle)
	s.Card = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(highlight).
		Padding(0, 2).
		MarginTop(1)
	s.Amount = lipgloss.NewStyle().Bold(true).Foreground(success)
	s.Subtle = lipgloss.NewStyle().Foreground(subtle)
	s.Celebrate = lipgloss.NewStyle().Bold(true).Foreground(highlight)
	s.Error = lipgloss.NewStyle().Foreground(errColor).MarginTop(1)
	s.Spinner = lipgloss.NewStyle().Foreground(primary)
	s.Help = lipgloss.NewStyle().Foreground(subtle).MarginTop(1)
	return s
}
