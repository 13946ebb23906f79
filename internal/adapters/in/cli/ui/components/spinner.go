package components

import (
	"io"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/bnema/dbs3/internal/adapters/in/cli/ui/styles"
)

// SpinnerModel shows an animated spinner until the work it tracks is done.
type SpinnerModel struct {
	spinner spinner.Model
	message string
	done    bool
	err     error
}

type workDoneMsg struct{ err error }

// NewSpinner creates a spinner labelled with message.
func NewSpinner(message string) SpinnerModel {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(styles.ColorPrimary)
	return SpinnerModel{spinner: s, message: message}
}

// Init implements tea.Model.
func (m SpinnerModel) Init() tea.Cmd {
	return m.spinner.Tick
}

// Update implements tea.Model.
func (m SpinnerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if done, ok := msg.(workDoneMsg); ok {
		m.done = true
		m.err = done.err
		return m, tea.Quit
	}
	var cmd tea.Cmd
	m.spinner, cmd = m.spinner.Update(msg)
	return m, cmd
}

// View implements tea.Model.
func (m SpinnerModel) View() string {
	if m.done {
		return ""
	}
	return m.spinner.View() + " " + m.message
}

// RunWithSpinner runs work while animating a spinner on out and returns
// work's error. Interrupts are left to the caller's context.
func RunWithSpinner(out io.Writer, message string, work func() error) error {
	p := tea.NewProgram(NewSpinner(message),
		tea.WithInput(nil),
		tea.WithOutput(out),
		tea.WithoutSignalHandler(),
	)

	workErr := make(chan error, 1)
	go func() {
		err := work()
		workErr <- err
		p.Send(workDoneMsg{err: err})
	}()

	// A terminal failure only loses the animation; the work result still counts.
	_, _ = p.Run()
	return <-workErr
}
