package controller

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	m "github.com/mass-rename/regexrename/internal/model"
)

// TUI implements UI, running the plan confirmation as an interactive
// Bubble Tea program. Every other method falls back to plain output.
type TUI struct {
	*SimpleUI

	cmd *cobra.Command
}

// NewTUI creates a new TUI.
func NewTUI(cmd *cobra.Command) *TUI {
	return &TUI{SimpleUI: NewSimpleUI(cmd), cmd: cmd}
}

// ConfirmPlan shows the plan in a scrollable list and waits for the
// user to apply or cancel it.
func (t *TUI) ConfirmPlan(renames []m.Candidate) (bool, error) {
	program := tea.NewProgram(
		newPlanModel(renames),
		tea.WithOutput(t.cmd.OutOrStdout()),
		tea.WithAltScreen(),
	)

	final, err := program.Run()
	if err != nil {
		return false, err
	}

	model, ok := final.(planModel)
	if !ok || !model.confirmed {
		t.printf("aborted, no entries renamed\n")

		return false, nil
	}

	return true, nil
}
