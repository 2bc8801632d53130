package ui

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/gravitrone/finance-app/cli/internal/api"
	"github.com/gravitrone/finance-app/cli/internal/config"
	"github.com/gravitrone/finance-app/cli/internal/ui/components"
)

// --- Messages ---

// mountStatusMsg fires after the first render so the health request runs as
// an effect of the mounted view rather than during construction.
type mountStatusMsg struct{}

// --- App Model ---

// App is the root TUI model: the page heading, the status panel and the
// help overlay.
type App struct {
	client   *api.Client
	labels   Strings
	status   StatusModel
	width    int
	height   int
	helpOpen bool
	quitting bool
}

// NewApp creates the root application model.
func NewApp(client *api.Client, cfg *config.Config) App {
	locale := DefaultLocale
	if cfg != nil {
		locale = cfg.Locale
	}
	labels := StringsFor(locale)
	return App{
		client: client,
		labels: labels,
		status: NewStatusModel(client, labels),
	}
}

func (a App) Init() tea.Cmd {
	return func() tea.Msg {
		return mountStatusMsg{}
	}
}

func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.status, _ = a.status.Update(msg)
		return a, nil

	case mountStatusMsg:
		var cmd tea.Cmd
		a.status, cmd = a.status.Mount(context.Background())
		return a, cmd

	case healthCheckedMsg:
		var cmd tea.Cmd
		a.status, cmd = a.status.Update(msg)
		return a, cmd

	case tea.KeyMsg:
		if a.helpOpen {
			if isBack(msg) || isHelp(msg) {
				a.helpOpen = false
				return a, nil
			}
			if isQuit(msg) {
				return a.quit()
			}
			return a, nil
		}
		switch {
		case isHelp(msg):
			a.helpOpen = true
			return a, nil
		case isQuit(msg), isBack(msg):
			return a.quit()
		}
	}
	return a, nil
}

func (a App) quit() (tea.Model, tea.Cmd) {
	a.status = a.status.Unmount()
	a.quitting = true
	return a, tea.Quit
}

func (a App) View() string {
	if a.quitting {
		return ""
	}
	banner := centerBlockUniform(RenderBanner(a.labels), a.width)

	content := a.status.View()
	if a.helpOpen {
		content = a.renderHelp()
	}
	content = centerBlockUniform(content, a.width)

	hints := components.StatusBar(a.statusHints(), a.width)
	return fmt.Sprintf("%s\n%s\n\n%s", banner, content, hints)
}

// Status exposes the hosted status view.
func (a App) Status() StatusModel {
	return a.status
}

func (a App) statusHints() []string {
	return []string{
		components.Hint("?", a.labels.HelpHint),
		components.Hint("q", a.labels.QuitHint),
	}
}

func (a App) renderHelp() string {
	lines := []string{MutedStyle.Render(a.labels.CloseHint), ""}
	for _, hint := range a.statusHints() {
		lines = append(lines, "  "+hint)
	}
	if a.client != nil {
		lines = append(lines, "", MutedStyle.Render(a.client.BaseURL()+api.HealthPath))
	}
	return components.Indent(components.TitledBox(a.labels.HelpTitle, strings.Join(lines, "\n"), a.width), 1)
}

func centerBlockUniform(s string, width int) string {
	if width <= 0 {
		return s
	}
	lines := strings.Split(s, "\n")
	maxWidth := 0
	for _, line := range lines {
		if w := lipgloss.Width(line); w > maxWidth {
			maxWidth = w
		}
	}
	if maxWidth <= 0 || maxWidth >= width {
		return s
	}
	pad := (width - maxWidth) / 2
	if pad <= 0 {
		return s
	}
	prefix := strings.Repeat(" ", pad)
	for i := range lines {
		if lines[i] != "" {
			lines[i] = prefix + lines[i]
		}
	}
	return strings.Join(lines, "\n")
}
