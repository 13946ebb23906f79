package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/AlecAivazis/survey/v2"
	"github.com/AlecAivazis/survey/v2/terminal"

	"github.com/bnema/dbs3/internal/adapters/in/cli/ui/components"
	"github.com/bnema/dbs3/internal/domain"
)

// errNotInteractive is returned when a prompt is needed but stdin is no terminal.
var errNotInteractive = errors.New("confirmation required but stdin is not a terminal (pass --yes)")

// SurveyConfirmer asks yes/no questions on the terminal. The default answer is no.
type SurveyConfirmer struct {
	in  io.Reader
	out io.Writer
}

// NewSurveyConfirmer creates a confirmer bound to the given streams.
func NewSurveyConfirmer(in io.Reader, out io.Writer) *SurveyConfirmer {
	return &SurveyConfirmer{in: in, out: out}
}

// Ask implements out.Confirmer. Ctrl+C counts as "no".
func (c *SurveyConfirmer) Ask(_ context.Context, prompt string) (bool, error) {
	in, inOK := c.in.(terminal.FileReader)
	out, outOK := c.out.(terminal.FileWriter)
	if !inOK || !outOK || !isTerminal(c.in) {
		return false, errNotInteractive
	}

	var answer bool
	err := survey.AskOne(&survey.Confirm{Message: prompt, Default: false}, &answer,
		survey.WithStdio(in, out, os.Stderr))
	if errors.Is(err, terminal.InterruptErr) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("prompt failed: %w", err)
	}
	return answer, nil
}

// TeaChooser presents backups in an interactive list.
type TeaChooser struct {
	in  io.Reader
	out io.Writer
}

// NewTeaChooser creates a chooser bound to the given streams.
func NewTeaChooser(in io.Reader, out io.Writer) *TeaChooser {
	return &TeaChooser{in: in, out: out}
}

// PresentList implements out.Chooser.
func (c *TeaChooser) PresentList(_ context.Context, rows []domain.BackupRow) (string, bool, error) {
	if !isTerminal(c.in) {
		return "", false, errors.New("--choose needs an interactive terminal")
	}
	return components.RunBackupSelector(c.in, c.out, "Select a backup to restore", rows)
}
