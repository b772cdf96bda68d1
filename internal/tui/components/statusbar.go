package components

import (
	"fmt"
	"time"

	"github.com/allbin/excserial"
	"github.com/allbin/excserial/internal/tui/colors"
	"github.com/allbin/excserial/internal/tui/styles"
	"github.com/charmbracelet/lipgloss"
)

type ConnectionInfo struct {
	BaudRate int
	DataBits int
	StopBits int
	Parity   excserial.Parity
	Backend  excserial.Backend
	Pacing   excserial.Pacing
}

type StatusBar struct {
	portPath       string
	status         styles.StatusType
	err            error
	width          int
	connectionInfo *ConnectionInfo
}

func NewStatusBar(portPath string) *StatusBar {
	return &StatusBar{
		portPath: portPath,
		status:   styles.StatusRunning,
	}
}

func (sb *StatusBar) SetWidth(width int) {
	sb.width = width
}

func (sb *StatusBar) SetConnectionInfo(info *ConnectionInfo) {
	sb.connectionInfo = info
}

func (sb *StatusBar) SetStopping() {
	if sb.status == styles.StatusRunning {
		sb.status = styles.StatusStopping
	}
}

// SetDone records how the run ended
func (sb *StatusBar) SetDone(err error) {
	sb.err = err
	if err != nil {
		sb.status = styles.StatusFailed
	} else {
		sb.status = styles.StatusStopped
	}
}

func (sb *StatusBar) Status() styles.StatusType {
	return sb.status
}

func parityToString(p excserial.Parity) string {
	switch p {
	case excserial.ParityNone:
		return "N"
	case excserial.ParityEven:
		return "E"
	case excserial.ParityOdd:
		return "O"
	case excserial.ParityMark:
		return "M"
	case excserial.ParitySpace:
		return "S"
	default:
		return "N"
	}
}

// ConnectionSummary renders e.g. "115200 baud 8N1 native/spin"
func (sb *StatusBar) ConnectionSummary() string {
	if sb.connectionInfo == nil {
		return "serial"
	}
	ci := sb.connectionInfo
	return fmt.Sprintf("%d baud %d%s%d %s/%s",
		ci.BaudRate,
		ci.DataBits,
		parityToString(ci.Parity),
		ci.StopBits,
		ci.Backend,
		ci.Pacing)
}

// Render draws the one-line status bar: state, port, line settings and elapsed time
func (sb *StatusBar) Render(elapsed time.Duration) string {
	terminalWidth := sb.width
	if terminalWidth <= 0 {
		terminalWidth = 80
	}

	// Section 1: run state (like NORMAL in nvim)
	background := colors.Blue
	switch sb.status {
	case styles.StatusStopping, styles.StatusStopped:
		background = colors.Yellow
	case styles.StatusFailed:
		background = colors.Red
	}
	modeStyle := lipgloss.NewStyle().
		Foreground(colors.Base).
		Background(background).
		Bold(true).
		Padding(0, 1)
	mode := modeStyle.Render(sb.status.String())

	// Section 2: port path with state indicator
	portStyle := lipgloss.NewStyle().
		Foreground(colors.Mauve).
		Bold(true).
		Padding(0, 1)
	port := portStyle.Render(sb.portPath)

	indicator := "●"
	if sb.status != styles.StatusRunning {
		indicator = "○"
	}
	if sb.err != nil {
		indicator = "✗"
	}
	connectionIndicator := styles.GetStatusStyle(sb.status).Render(indicator)

	// Section 3: line settings
	connInfoStyle := lipgloss.NewStyle().
		Foreground(colors.Subtext0).
		Padding(0, 1)
	connectionDetails := connInfoStyle.Render("⚡ " + sb.ConnectionSummary())

	// Section 4: elapsed time
	timeStyle := lipgloss.NewStyle().
		Foreground(colors.Subtext1).
		Padding(0, 1)
	clock := timeStyle.Render(elapsed.Truncate(time.Second).String())

	dividerStyle := lipgloss.NewStyle().
		Foreground(colors.Surface2).
		Padding(0, 1)
	divider := dividerStyle.Render("│")

	leftSide := lipgloss.JoinHorizontal(lipgloss.Left, mode, port, connectionIndicator, divider)
	rightSide := lipgloss.JoinHorizontal(lipgloss.Left, connectionDetails, divider, clock)

	spacerWidth := terminalWidth - lipgloss.Width(leftSide) - lipgloss.Width(rightSide)
	if spacerWidth < 1 {
		spacerWidth = 1
	}
	spacer := lipgloss.NewStyle().Width(spacerWidth).Render("")

	statusBarStyle := lipgloss.NewStyle().
		Foreground(colors.Text).
		Background(colors.Surface0).
		Width(terminalWidth)

	content := lipgloss.JoinHorizontal(lipgloss.Left, leftSide, spacer, rightSide)
	return statusBarStyle.Render(content)
}
