package domain

import (
	"errors"
	"regexp"

	"github.com/mass-rename/regexrename/internal/adapter"
	"github.com/mass-rename/regexrename/internal/controller"
	m "github.com/mass-rename/regexrename/internal/model"
)

// RunArgs carries the inputs of one invocation. Rules, plans and the
// rename schedule live only for the duration of Run; nothing persists
// across invocations.
type RunArgs struct {
	// Dir is the target directory.
	Dir m.Path

	// Entries optionally names an explicit working set inside Dir.
	// When nil the directory's own entry list is used.
	Entries []string

	// Specs is the ordered rule sequence to apply.
	Specs []m.RuleSpec

	// IgnoreCase switches pattern matching to case-insensitive.
	IgnoreCase bool

	// Exclude holds patterns for entry names to leave out of the
	// working set.
	Exclude []string

	// Recursive descends into subdirectories, renaming files per
	// directory, deepest first. Directories themselves are only renamed
	// in non-recursive runs.
	Recursive bool

	// DryRun reports the plan without touching the filesystem.
	DryRun bool

	// Interactive asks the UI for confirmation before applying.
	Interactive bool
}

// Workflow is the top-level plan/validate/apply orchestration.
type Workflow interface {
	Run(args RunArgs) error
}

type workflow struct {
	fs   adapter.DirFS
	exec Executor
	ui   controller.UI
}

// NewWorkflow creates a Workflow wired to the provided adapters and UI.
func NewWorkflow(fs adapter.DirFS, exec Executor, ui controller.UI) Workflow {
	return &workflow{fs: fs, exec: exec, ui: ui}
}

// Run enumerates the working set, computes and validates the plan for
// every directory in scope, and then either reports it (dry run) or
// applies it. Any collision rejects the whole batch before a single
// rename happens.
func (w *workflow) Run(args RunArgs) error {
	rules, err := m.CompileRules(args.Specs, args.IgnoreCase)
	if err != nil {
		return err
	}

	excludes, err := compileExcludes(args.Exclude)
	if err != nil {
		return err
	}

	renames, collisionErr, err := w.schedule(args, rules, excludes)
	if err != nil {
		return err
	}

	if collisionErr != nil {
		_ = w.ui.DisplayCollisions(collisionErr)

		return collisionErr
	}

	if args.DryRun {
		return w.ui.DisplayPlan(renames)
	}

	if len(renames) == 0 {
		return w.ui.DisplayApplied(nil)
	}

	if args.Interactive {
		confirmed, err := w.ui.ConfirmPlan(renames)
		if err != nil || !confirmed {
			return err
		}
	}

	if err := w.exec.Apply(renames); err != nil {
		var applyErr *m.ApplyError
		if errors.As(err, &applyErr) {
			_ = w.ui.DisplayApplyError(applyErr)
		}

		return err
	}

	return w.ui.DisplayApplied(renames)
}

// schedule builds and validates a plan per directory in scope and
// returns the merged rename set. Collisions from every directory are
// gathered into one error so the report is complete.
func (w *workflow) schedule(args RunArgs, rules []m.Rule, excludes []*regexp.Regexp) ([]m.Candidate, *m.CollisionError, error) {
	dirs := []m.Path{args.Dir}

	if args.Recursive && args.Entries == nil {
		var err error

		dirs, err = w.fs.Dirs(args.Dir)
		if err != nil {
			return nil, nil, err
		}
	}

	var renames []m.Candidate

	var collisions []m.Collision

	for _, dir := range dirs {
		existing, err := w.fs.List(dir)
		if err != nil {
			return nil, nil, err
		}

		entries := existing

		switch {
		case args.Entries != nil:
			entries = args.Entries
		case args.Recursive:
			entries, err = w.fs.ListFiles(dir)
			if err != nil {
				return nil, nil, err
			}
		}

		plan := BuildPlan(dir, filterExcluded(entries, excludes), rules)

		if collisionErr := Validate(plan, existing); collisionErr != nil {
			collisions = append(collisions, collisionErr.Collisions...)

			continue
		}

		renames = append(renames, plan.Renames()...)
	}

	if len(collisions) > 0 {
		return nil, &m.CollisionError{Collisions: collisions}, nil
	}

	return renames, nil, nil
}

func compileExcludes(patterns []string) ([]*regexp.Regexp, error) {
	excludes := make([]*regexp.Regexp, 0, len(patterns))

	for _, pattern := range patterns {
		re, err := regexp.Compile(pattern)
		if err != nil {
			return nil, &m.InvalidPatternError{Pattern: pattern, Err: err}
		}

		excludes = append(excludes, re)
	}

	return excludes, nil
}

func filterExcluded(entries []string, excludes []*regexp.Regexp) []string {
	if len(excludes) == 0 {
		return entries
	}

	var kept []string

	for _, name := range entries {
		if matchesAny(name, excludes) {
			continue
		}

		kept = append(kept, name)
	}

	return kept
}

func matchesAny(name string, excludes []*regexp.Regexp) bool {
	for _, re := range excludes {
		if re.MatchString(name) {
			return true
		}
	}

	return false
}
