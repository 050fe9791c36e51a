package model

import (
	"fmt"
	"strings"
)

// InvalidPatternError reports a regular expression that failed to
// compile. No filesystem access happens once it is raised.
type InvalidPatternError struct {
	Pattern string
	Err     error
}

func (e *InvalidPatternError) Error() string {
	return fmt.Sprintf("invalid pattern %q: %v", e.Pattern, e.Err)
}

func (e *InvalidPatternError) Unwrap() error {
	return e.Err
}

// CollisionKind distinguishes the two ways a proposed name can collide.
type CollisionKind int

const (
	// CollisionDuplicate means two entries in the rename set map to the
	// same proposed name.
	CollisionDuplicate CollisionKind = iota

	// CollisionClobber means a proposed name equals an existing entry
	// that is not itself being renamed away.
	CollisionClobber
)

// Collision is one offending (original, proposed) pair. Other holds the
// conflicting entry's name: the second source for a duplicate, the
// existing entry for a clobber.
type Collision struct {
	Kind      CollisionKind
	Candidate Candidate
	Other     string
}

func (c Collision) String() string {
	if c.Kind == CollisionDuplicate {
		return fmt.Sprintf("%q and %q -> %q", c.Candidate.From, c.Other, c.Candidate.To)
	}

	return fmt.Sprintf("%q -> %q would overwrite existing entry", c.Candidate.From, c.Candidate.To)
}

// CollisionError rejects an entire plan. It enumerates every offending
// pair so the user can adjust the pattern.
type CollisionError struct {
	Collisions []Collision
}

func (e *CollisionError) Error() string {
	return fmt.Sprintf("%d naming collision(s) detected, no entries renamed", len(e.Collisions))
}

// FailedRename records one rename syscall that failed during apply.
// At is the path where the entry actually sits afterwards: its original
// name when it could be restored, or its staging name when the original
// name is occupied again.
type FailedRename struct {
	Candidate Candidate
	At        Path
	Err       error
}

// Stranded reports whether the entry could not be restored to its
// original name and is parked under its staging name.
func (f FailedRename) Stranded() bool {
	return f.At != f.Candidate.FromPath()
}

// ApplyError reports a partially applied batch: which entries were
// renamed, which failed, and which remain under their original names.
// Completed renames are not rolled back.
type ApplyError struct {
	Completed []Candidate
	Remaining []Candidate
	Failed    []FailedRename
}

func (e *ApplyError) Error() string {
	var reasons []string
	for _, f := range e.Failed {
		reasons = append(reasons, fmt.Sprintf("%s: %v", f.Candidate.FromPath(), f.Err))
	}

	return fmt.Sprintf("renamed %d entries, %d failed (%s)",
		len(e.Completed), len(e.Failed), strings.Join(reasons, "; "))
}
