package ui

import (
	"context"
	"errors"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/google/uuid"

	"github.com/gravitrone/finance-app/cli/internal/api"
	"github.com/gravitrone/finance-app/cli/internal/ui/components"
)

// --- Messages ---

// healthCheckedMsg carries the settled health request back to the model
// that issued it. token identifies the mount.
type healthCheckedMsg struct {
	token  string
	report *api.HealthReport
	err    error
}

// StatusState is the lifecycle of one mount of the status view.
type StatusState int

const (
	StatusLoading StatusState = iota
	StatusReady
	StatusError
)

func (s StatusState) String() string {
	switch s {
	case StatusReady:
		return "ready"
	case StatusError:
		return "error"
	default:
		return "loading"
	}
}

// --- Status Model ---

// StatusModel shows the companion API's health status. Each mount issues
// exactly one request; its result is committed once, and only while the
// mount that issued it is still live.
type StatusModel struct {
	client  *api.Client
	labels  Strings
	state   StatusState
	text    string
	version string
	token   string
	cancel  context.CancelFunc
	width   int
}

func NewStatusModel(client *api.Client, s Strings) StatusModel {
	return StatusModel{
		client: client,
		labels: s,
		state:  StatusLoading,
		text:   s.Loading,
	}
}

// Mount starts a new mount and returns the one-shot health request. It is a
// no-op while a mount is already live.
func (m StatusModel) Mount(ctx context.Context) (StatusModel, tea.Cmd) {
	if m.Mounted() {
		return m, nil
	}
	if ctx == nil {
		ctx = context.Background()
	}
	ctx, cancel := context.WithCancel(ctx)
	m.token = uuid.NewString()
	m.cancel = cancel
	m.state = StatusLoading
	m.text = m.labels.Loading
	m.version = ""
	return m, checkHealthCmd(ctx, m.client, m.token)
}

// Unmount aborts any in-flight request; results that arrive afterwards are
// dropped by Update.
func (m StatusModel) Unmount() StatusModel {
	if m.cancel != nil {
		m.cancel()
	}
	m.cancel = nil
	m.token = ""
	return m
}

// Mounted reports whether the view currently owns a live mount.
func (m StatusModel) Mounted() bool {
	return m.token != ""
}

func (m StatusModel) State() StatusState {
	return m.state
}

// StatusText is the text currently shown after the status label.
func (m StatusModel) StatusText() string {
	return m.text
}

func (m StatusModel) Version() string {
	return m.version
}

func (m StatusModel) Update(msg tea.Msg) (StatusModel, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
	case healthCheckedMsg:
		if !m.Mounted() || msg.token != m.token || m.state != StatusLoading {
			return m, nil
		}
		if m.cancel != nil {
			m.cancel()
			m.cancel = nil
		}
		if msg.err != nil || msg.report == nil {
			m.state = StatusError
			m.text = m.labels.Failure
			return m, nil
		}
		m.state = StatusReady
		m.text = msg.report.Status
		m.version = msg.report.Version
	}
	return m, nil
}

func (m StatusModel) View() string {
	rows := []string{components.InfoRow(m.labels.StatusLabel, m.text, m.valueStyle())}
	if m.state == StatusReady && m.version != "" {
		rows = append(rows, components.InfoRow(m.labels.VersionLabel, m.version, MutedStyle))
	}
	return components.TitledBox(m.labels.PanelTitle, strings.Join(rows, "\n"), m.width)
}

// StatusLine renders the status as a single unstyled line.
func (m StatusModel) StatusLine() string {
	return components.SanitizeOneLine(m.labels.StatusLabel + ": " + m.text)
}

func (m StatusModel) valueStyle() lipgloss.Style {
	switch m.state {
	case StatusReady:
		return SuccessStyle
	case StatusError:
		return ErrorStyle
	default:
		return LoadingStyle
	}
}

func checkHealthCmd(ctx context.Context, client *api.Client, token string) tea.Cmd {
	return func() tea.Msg {
		if client == nil {
			return healthCheckedMsg{
				token: token,
				err:   &api.HealthCheckFailure{Cause: errors.New("no api client configured")},
			}
		}
		report, err := client.Health(ctx)
		return healthCheckedMsg{token: token, report: report, err: err}
	}
}
