// Package controller provides output surfaces for rename plans and
// results.
package controller

import (
	"io"
	"os"

	"github.com/spf13/cobra"

	m "github.com/mass-rename/regexrename/internal/model"
)

// UI renders plans, apply results, collision reports and rule tables.
// Implementations can use different output methods (plain text, TUI).
type UI interface {
	// DisplayPlan lists every planned rename, one "original -> proposed"
	// line per entry.
	DisplayPlan(renames []m.Candidate) error

	// ConfirmPlan presents the plan and asks whether to apply it.
	ConfirmPlan(renames []m.Candidate) (bool, error)

	// DisplayApplied reports a completed apply step.
	DisplayApplied(renames []m.Candidate) error

	// DisplayCollisions reports a rejected plan with every offending
	// pair.
	DisplayCollisions(err *m.CollisionError) error

	// DisplayApplyError reports a partially applied batch.
	DisplayApplyError(err *m.ApplyError) error

	// DisplayRules prints a rule table.
	DisplayRules(specs []m.RuleSpec) error
}

// NewUI creates a UI based on whether TTY mode is enabled. When useTTY
// is true the interactive confirmation runs as a Bubble Tea program;
// otherwise everything is plain text.
func NewUI(cmd *cobra.Command, useTTY bool) UI {
	if useTTY {
		return NewTUI(cmd)
	}

	return NewSimpleUI(cmd)
}

// IsTTY checks if the given writer is a terminal (TTY). Returns false
// when the output is redirected to a file or pipe.
func IsTTY(w io.Writer) bool {
	file, ok := w.(*os.File)
	if !ok {
		return false
	}

	fileInfo, err := file.Stat()
	if err != nil {
		return false
	}

	return (fileInfo.Mode() & os.ModeCharDevice) != 0
}
