package components

import (
	"regexp"
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTableRender_AppliesConfiguredColumnWidth(t *testing.T) {
	tableModel := NewTable(
		WithColumns([]TableColumn{{Title: "KEY", Width: 5}}),
		WithRows([][]string{{"abc"}}),
		WithHeaderStyle(lipgloss.NewStyle()),
		WithCellStyle(lipgloss.NewStyle()),
	)

	rendered := stripANSI(tableModel.Render())

	var rowLine string
	for _, line := range strings.Split(rendered, "\n") {
		if strings.Contains(line, "abc") {
			rowLine = line
			break
		}
	}
	require.NotEmpty(t, rowLine)
	assert.Contains(t, rowLine, "abc  ")
}

func TestTableRender_TruncatesLongCellTextWithEllipsis(t *testing.T) {
	tableModel := NewTable(
		WithColumns([]TableColumn{{Title: "KEY", Width: 5}}),
		WithRows([][]string{{"abcdef"}}),
		WithHeaderStyle(lipgloss.NewStyle()),
		WithCellStyle(lipgloss.NewStyle()),
	)

	rendered := stripANSI(tableModel.Render())
	assert.Contains(t, rendered, "ab...")
	assert.NotContains(t, rendered, "abcdef")
}

func TestTableRender_NoColumns(t *testing.T) {
	assert.Empty(t, NewTable().Render())
}

func TestSimpleTable(t *testing.T) {
	rendered := stripANSI(SimpleTable(
		[]string{"KEY", "AGE", "SIZE"},
		[][]string{{"db-backup-app.2024-01-21", "2h old", "1.5KB"}},
	))

	assert.Contains(t, rendered, "KEY")
	assert.Contains(t, rendered, "db-backup-app.2024-01-21")
	assert.Contains(t, rendered, "1.5KB")
}

func TestTruncateCell_EdgeCases(t *testing.T) {
	tests := []struct {
		name     string
		value    string
		maxWidth int
		expected string
	}{
		{name: "short text unchanged", value: "abc", maxWidth: 5, expected: "abc"},
		{name: "zero width passthrough", value: "abcdef", maxWidth: 0, expected: "abcdef"},
		{name: "width three all dots", value: "abcdef", maxWidth: 3, expected: "..."},
		{name: "ascii truncates", value: "abcdef", maxWidth: 5, expected: "ab..."},
		{name: "cjk truncates by display width", value: "你好世界", maxWidth: 5, expected: "你..."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := truncateCell(tt.value, tt.maxWidth)
			assert.Equal(t, tt.expected, got)
			if tt.maxWidth > 0 {
				assert.LessOrEqual(t, runewidth.StringWidth(got), tt.maxWidth)
			}
		})
	}
}

func TestTruncateCell_AnsiInputPassthrough(t *testing.T) {
	styled := "\x1b[32mcompleted\x1b[0m"
	assert.Equal(t, styled, truncateCell(styled, 3))
}

func stripANSI(input string) string {
	ansiPattern := regexp.MustCompile(`\x1b\[[0-9;]*[A-Za-z]`)
	return ansiPattern.ReplaceAllString(input, "")
}
