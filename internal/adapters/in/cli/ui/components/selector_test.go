package components

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"

	"github.com/bnema/dbs3/internal/domain"
)

func selectorRows() []domain.BackupRow {
	return []domain.BackupRow{
		{Key: "db-backup-app.2024-01-21", HumanAge: "2h old", HumanSize: "1.5MB"},
		{Key: "db-backup-app.2024-01-20", HumanAge: "1d old", HumanSize: "1.4MB"},
		{Key: "db-backup-app.2024-01-19", HumanAge: "2d old", HumanSize: "1.4MB"},
	}
}

func press(m tea.Model, keys ...tea.KeyMsg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	for _, k := range keys {
		m, cmd = m.Update(k)
	}
	return m, cmd
}

func TestBackupSelector_EnterSelectsHighlightedKey(t *testing.T) {
	m, cmd := press(NewBackupSelector("Pick", selectorRows()),
		tea.KeyMsg{Type: tea.KeyDown},
		tea.KeyMsg{Type: tea.KeyDown},
		tea.KeyMsg{Type: tea.KeyDown},
		tea.KeyMsg{Type: tea.KeyUp},
		tea.KeyMsg{Type: tea.KeyEnter},
	)

	result := m.(BackupSelectorModel)
	assert.Equal(t, "db-backup-app.2024-01-20", result.Selected())
	assert.False(t, result.Cancelled())
	assert.NotNil(t, cmd)
}

func TestBackupSelector_EscCancels(t *testing.T) {
	m, _ := press(NewBackupSelector("Pick", selectorRows()), tea.KeyMsg{Type: tea.KeyEsc})

	result := m.(BackupSelectorModel)
	assert.True(t, result.Cancelled())
	assert.Empty(t, result.Selected())
}

func TestBackupSelector_EmptyListIgnoresEnter(t *testing.T) {
	m, cmd := press(NewBackupSelector("Pick", nil), tea.KeyMsg{Type: tea.KeyEnter})

	assert.Empty(t, m.(BackupSelectorModel).Selected())
	assert.Nil(t, cmd)
}

func TestBackupSelector_ViewListsRows(t *testing.T) {
	view := stripANSI(NewBackupSelector("Select a backup", selectorRows()).View())

	assert.Contains(t, view, "Select a backup")
	assert.Contains(t, view, "db-backup-app.2024-01-19")
	assert.Contains(t, view, "2d old")
	assert.Contains(t, view, "1.4MB")
}

func TestSpinnerModel_QuitsWhenWorkDone(t *testing.T) {
	m, cmd := NewSpinner("Uploading").Update(workDoneMsg{})

	assert.True(t, m.(SpinnerModel).done)
	assert.Empty(t, m.View())
	assert.NotNil(t, cmd)
}
