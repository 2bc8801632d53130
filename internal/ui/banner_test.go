package ui

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/gravitrone/finance-app/cli/internal/ui/components"
	"github.com/stretchr/testify/assert"
)

func TestRenderBannerHasNoOSCAndRule(t *testing.T) {
	out := RenderBanner(StringsFor("en"))
	assert.NotContains(t, out, "\x1b]")

	clean := components.SanitizeText(out)
	assert.Contains(t, clean, "FINANCE APP")
	assert.Contains(t, clean, "Personal finance analysis app")
	assert.True(t, strings.Contains(clean, "─"))
}

func TestRenderBannerLinesShareWidth(t *testing.T) {
	lines := strings.Split(strings.Trim(RenderBanner(StringsFor("hu")), "\n"), "\n")
	assert.Len(t, lines, 3)
	width := lipgloss.Width(lines[0])
	for _, line := range lines {
		assert.Equal(t, width, lipgloss.Width(line))
	}
}
