package components

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
)

func TestHintIncludesKeyAndDesc(t *testing.T) {
	out := Hint("?", "Help")
	assert.True(t, strings.Contains(out, "Help"))
	assert.True(t, strings.Contains(out, "?"))
}

func TestStatusBarRendersHints(t *testing.T) {
	out := StatusBar([]string{Hint("q", "Quit")}, 0)
	assert.Contains(t, out, "Quit")
	assert.Contains(t, out, "q")
}

func TestStatusBarEmpty(t *testing.T) {
	assert.Equal(t, "", StatusBar(nil, 80))
}

func TestStatusBarFitsWidth(t *testing.T) {
	out := StatusBar([]string{Hint("?", "Help"), Hint("q", "Quit")}, 60)
	for _, line := range strings.Split(out, "\n") {
		assert.LessOrEqual(t, lipgloss.Width(line), 60)
	}
}

func TestWrapSegmentsWrapsWhenNarrow(t *testing.T) {
	segments := []string{"123456", "abcdef", "ghijkl"}
	rows := wrapSegments(segments, 10)
	assert.Len(t, rows, 3)
	for _, row := range rows {
		assert.LessOrEqual(t, lipgloss.Width(row), 10)
	}
}

func TestWrapSegmentsSingleRowWhenWide(t *testing.T) {
	rows := wrapSegments([]string{"ab", "cd"}, 0)
	assert.Equal(t, []string{"abcd"}, rows)
}
