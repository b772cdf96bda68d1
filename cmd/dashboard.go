/*
Copyright © 2025 Mathias Djärv <mathias.djarv@allbinary.se>
*/
package cmd

import (
	"errors"
	"fmt"
	"time"

	"github.com/allbin/excserial"
	"github.com/allbin/excserial/internal/tui/components"
	"github.com/allbin/excserial/internal/tui/keys"
	"github.com/allbin/excserial/internal/tui/models"
	"github.com/allbin/excserial/internal/tui/styles"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// dashboardRefresh bounds how often progress reaches the dashboard
const dashboardRefresh = 250 * time.Millisecond

// errDashboard marks a dashboard that stopped for any reason other than the
// transmitter finishing
var errDashboard = errors.New("dashboard failed")

// dashboardOptions are replaced in tests. Signals are left to NotifyStop so
// an interrupt ends the run the same way with or without the dashboard.
var dashboardOptions = []tea.ProgramOption{tea.WithAltScreen(), tea.WithoutSignalHandler()}

// dashboardModel represents the Bubble Tea model for the --tui dashboard
type dashboardModel struct {
	*models.PulseModel
	statusBar *components.StatusBar
	spinner   spinner.Model
	help      help.Model
	keys      keys.CommonKeys
}

func newDashboardModel(pa pulseArgs, s settings, started time.Time, stop func()) *dashboardModel {
	period, _ := excserial.PeriodForRate(pa.Rate)

	sb := components.NewStatusBar(pa.Port)
	sb.SetConnectionInfo(&components.ConnectionInfo{
		BaudRate: s.BaudRate,
		DataBits: 8,
		StopBits: 1,
		Parity:   excserial.ParityNone,
		Backend:  s.Backend,
		Pacing:   s.Pacing,
	})

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = styles.CounterStyle

	return &dashboardModel{
		PulseModel: models.NewPulseModel(pa.Port, pa.Value, pa.Rate, period, started, stop),
		statusBar:  sb,
		spinner:    sp,
		help:       help.New(),
		keys:       keys.NewCommonKeys(),
	}
}

// runDashboard runs the transmitter on this goroutine while the dashboard
// renders on its own. Quitting the dashboard only raises the stop flag; the
// dashboard closes once the transmitter has returned.
func runDashboard(port excserial.Port, pa pulseArgs, s settings, stop *excserial.StopFlag, opts []excserial.TransmitterOption) error {
	m := newDashboardModel(pa, s, time.Now(), stop.Stop)
	p := tea.NewProgram(m, dashboardOptions...)

	uiDone := make(chan error, 1)
	go func() {
		_, err := p.Run()
		// Covers the program exiting on its own
		stop.Stop()
		uiDone <- err
	}()

	interval := min(s.StatusInterval, dashboardRefresh)
	reporter := excserial.ReporterFunc(func(pr excserial.Progress) {
		p.Send(models.ProgressMsg(pr))
	})

	tx, err := excserial.NewTransmitter(port, pa.Value, pa.Rate,
		append(opts, excserial.WithStatusInterval(interval), excserial.WithReporter(reporter))...)
	if err != nil {
		p.Quit()
		<-uiDone
		return err
	}

	runErr := tx.Run(stop)
	p.Send(models.ProgressMsg{Sent: tx.Sent(), Value: tx.Value(), At: time.Now()})
	p.Send(models.DoneMsg{Err: runErr})

	if uiErr := <-uiDone; uiErr != nil {
		if runErr != nil {
			debugf("dashboard: %v", uiErr)
			return runErr
		}
		return fmt.Errorf("%w: %w", errDashboard, uiErr)
	}
	return runErr
}

func (m *dashboardModel) Init() tea.Cmd {
	return m.spinner.Tick
}

func (m *dashboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.statusBar.SetWidth(msg.Width)
		m.help.Width = msg.Width
		m.SetReady(true)

	case models.ProgressMsg:
		m.ApplyProgress(msg)

	case models.DoneMsg:
		m.Finish(msg.Err)
		m.statusBar.SetDone(msg.Err)
		return m, tea.Quit

	case spinner.TickMsg:
		if m.IsDone() {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.RequestStop()
			m.statusBar.SetStopping()

		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
		}
	}

	return m, nil
}

func (m *dashboardModel) View() string {
	title := styles.TitleStyle.Render(fmt.Sprintf("excserial → %s", m.GetPortPath()))

	activity := m.spinner.View()
	if m.IsStopping() || m.IsDone() {
		activity = " "
	}

	rows := []string{
		fmt.Sprintf("%s %s %s", activity, styles.LabelStyle.Render("Messages sent:"), styles.CounterStyle.Render(fmt.Sprintf("%d", m.Sent()))),
		fmt.Sprintf("  %s [+/-] %d", styles.LabelStyle.Render("Value:        "), m.Magnitude()),
		fmt.Sprintf("  %s %d Hz (%d ms)", styles.LabelStyle.Render("Frequency:    "), m.Rate(), m.Period().Milliseconds()),
		fmt.Sprintf("  %s %.1f frames/s", styles.LabelStyle.Render("Achieved:     "), m.AchievedRate()),
	}
	if err := m.GetError(); err != nil {
		rows = append(rows, "", styles.StatusFailedStyle.Render(fmt.Sprintf("✗ %v", err)))
	}
	content := styles.ContentBorderStyle.Render(lipgloss.JoinVertical(lipgloss.Left, rows...))

	parts := []string{title, content}
	if m.help.ShowAll {
		parts = append(parts, styles.HelpBoxStyle.Render(m.help.View(m.keys)))
	} else {
		parts = append(parts, m.help.View(m.keys))
	}
	parts = append(parts, m.statusBar.Render(m.Elapsed()))

	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}
