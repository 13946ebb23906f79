package components

import (
	"fmt"
	"io"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/bnema/dbs3/internal/adapters/in/cli/ui/styles"
	"github.com/bnema/dbs3/internal/domain"
)

// BackupSelectorModel lets the user pick one backup from a list, newest first.
type BackupSelectorModel struct {
	title     string
	rows      []domain.BackupRow
	cursor    int
	selected  string
	cancelled bool
}

// NewBackupSelector creates a selector over rows.
func NewBackupSelector(title string, rows []domain.BackupRow) BackupSelectorModel {
	return BackupSelectorModel{title: title, rows: rows}
}

func (m BackupSelectorModel) Init() tea.Cmd { return nil }

func (m BackupSelectorModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch keyMsg.String() {
	case "esc", "ctrl+c", "q":
		m.cancelled = true
		return m, tea.Quit
	}
	if len(m.rows) == 0 {
		return m, nil
	}

	switch keyMsg.String() {
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(m.rows)-1 {
			m.cursor++
		}
	case "home", "g":
		m.cursor = 0
	case "end", "G":
		m.cursor = len(m.rows) - 1
	case "enter":
		m.selected = m.rows[m.cursor].Key
		return m, tea.Quit
	}
	return m, nil
}

func (m BackupSelectorModel) View() string {
	var b strings.Builder

	b.WriteString(styles.Theme.Bold.Render(m.title))
	b.WriteString("\n\n")

	keyWidth := 0
	for _, row := range m.rows {
		keyWidth = max(keyWidth, len(row.Key))
	}

	for i, row := range m.rows {
		cursor := "  "
		if i == m.cursor {
			cursor = styles.IconBullet + " "
		}
		line := fmt.Sprintf("%s%-*s  %-10s %s", cursor, keyWidth, row.Key, row.HumanAge, row.HumanSize)
		if i == m.cursor {
			b.WriteString(styles.Theme.Highlight.Render(line))
		} else {
			b.WriteString(line)
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(styles.RenderKeyHelp("↑/↓", "navigate") + "  " +
		styles.RenderKeyHelp("enter", "restore") + "  " +
		styles.RenderKeyHelp("esc", "cancel"))

	return b.String()
}

func (m BackupSelectorModel) Selected() string { return m.selected }
func (m BackupSelectorModel) Cancelled() bool  { return m.cancelled }

// RunBackupSelector shows the selector on the terminal. ok is false when the
// user cancelled.
func RunBackupSelector(in io.Reader, out io.Writer, title string, rows []domain.BackupRow) (key string, ok bool, err error) {
	p := tea.NewProgram(NewBackupSelector(title, rows), tea.WithInput(in), tea.WithOutput(out))
	finalModel, err := p.Run()
	if err != nil {
		return "", false, fmt.Errorf("error running selector: %w", err)
	}
	result := finalModel.(BackupSelectorModel)
	if result.Cancelled() || result.Selected() == "" {
		return "", false, nil
	}
	return result.Selected(), true, nil
}
