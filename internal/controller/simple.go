package controller

import (
	"bytes"
	"fmt"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	m "github.com/mass-rename/regexrename/internal/model"
)

// SimpleUI implements UI with plain text on the command's output
// streams.
type SimpleUI struct {
	cmd *cobra.Command
}

// NewSimpleUI creates a new SimpleUI.
func NewSimpleUI(cmd *cobra.Command) *SimpleUI {
	return &SimpleUI{cmd: cmd}
}

// DisplayPlan prints one "original -> proposed" line per planned rename.
func (s *SimpleUI) DisplayPlan(renames []m.Candidate) error {
	for _, c := range renames {
		s.printf("%s -> %s\n", c.FromPath(), c.ToPath())
	}

	return nil
}

// ConfirmPlan prints the plan and confirms it. Without a terminal there
// is nobody to ask, so a plain UI always proceeds.
func (s *SimpleUI) ConfirmPlan(renames []m.Candidate) (bool, error) {
	if err := s.DisplayPlan(renames); err != nil {
		return false, err
	}

	return true, nil
}

// DisplayApplied reports the completed renames.
func (s *SimpleUI) DisplayApplied(renames []m.Candidate) error {
	if len(renames) == 0 {
		s.printf("nothing to rename\n")

		return nil
	}

	for _, c := range renames {
		s.printf("%s -> %s\n", c.FromPath(), c.ToPath())
	}

	s.printf("renamed %d entries\n", len(renames))

	return nil
}

// DisplayCollisions prints every offending pair as a table on stderr.
func (s *SimpleUI) DisplayCollisions(err *m.CollisionError) error {
	var tableBuffer bytes.Buffer

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetHeader([]string{"Original", "Proposed", "Conflict"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetColumnAlignment([]int{
		tablewriter.ALIGN_LEFT,
		tablewriter.ALIGN_LEFT,
		tablewriter.ALIGN_LEFT,
	})

	for _, collision := range err.Collisions {
		reason := fmt.Sprintf("would overwrite existing %q", collision.Other)
		if collision.Kind == m.CollisionDuplicate {
			reason = fmt.Sprintf("same target as %q", collision.Other)
		}

		table.Append([]string{
			string(collision.Candidate.FromPath()),
			collision.Candidate.To,
			reason,
		})
	}

	table.Render()

	s.errf("%s\n\n%s", err.Error(), tableBuffer.String())

	return nil
}

// DisplayApplyError reports which entries were renamed and which remain.
func (s *SimpleUI) DisplayApplyError(err *m.ApplyError) error {
	for _, c := range err.Completed {
		s.printf("%s -> %s\n", c.FromPath(), c.ToPath())
	}

	for _, f := range err.Failed {
		if f.Stranded() {
			s.errf("failed: %s -> %s: %v (entry left at %s)\n",
				f.Candidate.FromPath(), f.Candidate.ToPath(), f.Err, f.At)

			continue
		}

		s.errf("failed: %s -> %s: %v\n", f.Candidate.FromPath(), f.Candidate.ToPath(), f.Err)
	}

	s.errf("renamed %d entries, %d failed, %d left under their original names\n",
		len(err.Completed), len(err.Failed), len(err.Remaining))

	return nil
}

// DisplayRules prints the rule table in evaluation order.
func (s *SimpleUI) DisplayRules(specs []m.RuleSpec) error {
	var tableBuffer bytes.Buffer

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetHeader([]string{"#", "Pattern", "Template"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetColumnAlignment([]int{
		tablewriter.ALIGN_RIGHT,
		tablewriter.ALIGN_LEFT,
		tablewriter.ALIGN_LEFT,
	})

	for i, spec := range specs {
		table.Append([]string{
			fmt.Sprintf("%d", i+1),
			spec.Pattern,
			spec.Template,
		})
	}

	table.Render()

	s.printf("%s", tableBuffer.String())

	return nil
}

func (s *SimpleUI) printf(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(s.cmd.OutOrStdout(), format, args...)
}

func (s *SimpleUI) errf(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(s.cmd.ErrOrStderr(), format, args...)
}
