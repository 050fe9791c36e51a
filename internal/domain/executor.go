package domain

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/mass-rename/regexrename/internal/adapter"
	m "github.com/mass-rename/regexrename/internal/model"
)

// Executor applies the rename set of a validated plan.
type Executor interface {
	Apply(renames []m.Candidate) error
}

type executor struct {
	fs adapter.DirFS
}

// NewExecutor constructs an Executor backed by the provided filesystem
// adapter.
func NewExecutor(fs adapter.DirFS) Executor {
	return &executor{fs: fs}
}

type stagedRename struct {
	candidate m.Candidate
	tmp       m.Path
}

// Apply renames in two phases: every source first moves to a unique
// temporary name, then every temporary moves to its final name. Staging
// makes rename cycles (a -> b, b -> a) safe even on case-insensitive
// filesystems. A phase-one failure rolls the staged prefix back, leaving
// the directory untouched; phase-two failures restore the affected
// entries to their original names and are reported per entry, with
// completed renames left in place.
func (e *executor) Apply(renames []m.Candidate) error {
	staged := make([]stagedRename, 0, len(renames))

	for _, c := range renames {
		tmp, err := e.stagePath(c)
		if err == nil {
			err = e.fs.Rename(c.FromPath(), tmp)
		}

		if err != nil {
			e.rollback(staged)

			return &m.ApplyError{
				Remaining: renames,
				Failed:    []m.FailedRename{{Candidate: c, At: c.FromPath(), Err: err}},
			}
		}

		staged = append(staged, stagedRename{candidate: c, tmp: tmp})
	}

	var completed []m.Candidate

	var failed []m.FailedRename

	var remaining []m.Candidate

	for _, s := range staged {
		if err := e.fs.Rename(s.tmp, s.candidate.ToPath()); err != nil {
			// Restore the entry to its old name, but never onto another
			// entry: in a swap cycle the old name may be occupied by a
			// completed rename. An entry that cannot go back stays
			// parked under its staging name.
			at := s.tmp

			occupied, existsErr := e.fs.Exists(s.candidate.FromPath())
			if existsErr == nil && !occupied {
				if e.fs.Rename(s.tmp, s.candidate.FromPath()) == nil {
					at = s.candidate.FromPath()
					remaining = append(remaining, s.candidate)
				}
			}

			failed = append(failed, m.FailedRename{Candidate: s.candidate, At: at, Err: err})

			continue
		}

		completed = append(completed, s.candidate)
	}

	if len(failed) > 0 {
		return &m.ApplyError{
			Completed: completed,
			Remaining: remaining,
			Failed:    failed,
		}
	}

	return nil
}

// stagePath picks a temporary name in the candidate's directory that no
// existing entry occupies.
func (e *executor) stagePath(c m.Candidate) (m.Path, error) {
	for i := 0; i < 5; i++ {
		tmp := m.Path(fmt.Sprintf("%s.rrtmp-%s", c.FromPath(), uuid.NewString()[:8]))

		exists, err := e.fs.Exists(tmp)
		if err != nil {
			return "", err
		}

		if !exists {
			return tmp, nil
		}
	}

	return "", fmt.Errorf("could not find a free temporary name for %s", c.FromPath())
}

func (e *executor) rollback(staged []stagedRename) {
	for i := len(staged) - 1; i >= 0; i-- {
		_ = e.fs.Rename(staged[i].tmp, staged[i].candidate.FromPath())
	}
}
