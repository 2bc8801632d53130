package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// RenderBanner returns the page heading: the app title over a muted
// subtitle and a thin rule, centered on a shared block width.
func RenderBanner(s Strings) string {
	title := TitleStyle.Render(strings.ToUpper(s.Title))
	blockWidth := lipgloss.Width(title)
	if w := lipgloss.Width(s.Subtitle); w > blockWidth {
		blockWidth = w
	}

	center := lipgloss.NewStyle().Width(blockWidth).Align(lipgloss.Center)
	subtitle := center.Foreground(ColorMuted).Render(s.Subtitle)
	underline := center.Foreground(ColorBorder).Render(strings.Repeat("─", blockWidth))

	return "\n" + center.Render(title) + "\n" + subtitle + "\n" + underline + "\n"
}
