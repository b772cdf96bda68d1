package styles

import (
	"github.com/allbin/excserial/internal/tui/colors"
	"github.com/charmbracelet/lipgloss"
)

var (
	// Header styles
	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colors.Mauve).
			Background(colors.Surface0).
			Padding(0, 1)

	// Status styles
	StatusRunningStyle = lipgloss.NewStyle().
				Foreground(colors.Green).
				Bold(true)

	StatusStoppedStyle = lipgloss.NewStyle().
				Foreground(colors.Yellow).
				Bold(true)

	StatusFailedStyle = lipgloss.NewStyle().
				Foreground(colors.Red).
				Bold(true)

	// Content area styles
	ContentBorderStyle = lipgloss.NewStyle().
				BorderTop(true).
				BorderStyle(lipgloss.NormalBorder()).
				BorderForeground(colors.Surface1)

	// Glyphs printed in front of plain console lines
	InfoGlyphStyle = lipgloss.NewStyle().
			Foreground(colors.Mauve).
			Bold(true)

	SuccessGlyphStyle = lipgloss.NewStyle().
				Foreground(colors.Green).
				Bold(true)

	ErrorGlyphStyle = lipgloss.NewStyle().
			Foreground(colors.Red).
			Bold(true)

	// Table styles
	TableHeaderStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(colors.Mauve)

	TableBaseStyle = lipgloss.NewStyle().
			Foreground(colors.Text).
			BorderForeground(colors.Surface2).
			Align(lipgloss.Left)

	// Counter shown in the dashboard
	CounterStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colors.Peach)

	LabelStyle = lipgloss.NewStyle().
			Foreground(colors.Subtext0)

	HelpBoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colors.Overlay0).
			Padding(1, 2).
			Margin(1, 0)
)

type StatusType int

const (
	StatusRunning StatusType = iota
	StatusStopping
	StatusStopped
	StatusFailed
)

func (s StatusType) String() string {
	switch s {
	case StatusRunning:
		return "RUNNING"
	case StatusStopping:
		return "STOPPING"
	case StatusStopped:
		return "STOPPED"
	case StatusFailed:
		return "FAILED"
	default:
		return "UNKNOWN"
	}
}

func GetStatusStyle(status StatusType) lipgloss.Style {
	switch status {
	case StatusRunning:
		return StatusRunningStyle
	case StatusStopping, StatusStopped:
		return StatusStoppedStyle
	case StatusFailed:
		return StatusFailedStyle
	default:
		return StatusFailedStyle
	}
}
