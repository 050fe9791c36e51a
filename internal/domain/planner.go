// Package domain implements the plan, validate and apply steps of batch
// renaming. Planning and validation are pure; only the executor touches
// the filesystem.
package domain

import (
	m "github.com/mass-rename/regexrename/internal/model"
)

// BuildPlan computes the proposed name for every entry by running the
// rule sequence over it, each rule substituting into the previous
// result. Entries are deduplicated by name, preserving first-seen
// order. Entries no rule matches keep their name; they stay in the plan
// so validation can still detect collisions against them.
func BuildPlan(dir m.Path, entries []string, rules []m.Rule) m.Plan {
	plan := m.Plan{Dir: dir}
	seen := make(map[string]struct{}, len(entries))

	for _, name := range entries {
		if _, ok := seen[name]; ok {
			continue
		}

		seen[name] = struct{}{}

		plan.Candidates = append(plan.Candidates, m.Candidate{
			Dir:  dir,
			From: name,
			To:   applyRules(rules, name),
		})
	}

	return plan
}

func applyRules(rules []m.Rule, name string) string {
	for _, rule := range rules {
		name = rule.Apply(name)
	}

	return name
}

// Validate checks a plan against the directory's full entry list. It
// returns nil when the plan is safe to apply, or a CollisionError
// enumerating every offending pair when:
//
//   - two or more rename-set entries propose the same name, or
//   - a proposed name equals an existing entry that is not itself
//     renamed away.
func Validate(plan m.Plan, existing []string) *m.CollisionError {
	renames := plan.Renames()

	targets := make(map[string][]m.Candidate, len(renames))
	renamedAway := make(map[string]struct{}, len(renames))

	for _, c := range renames {
		targets[c.To] = append(targets[c.To], c)
		renamedAway[c.From] = struct{}{}
	}

	existingSet := make(map[string]struct{}, len(existing))
	for _, name := range existing {
		existingSet[name] = struct{}{}
	}

	var collisions []m.Collision

	for _, c := range renames {
		for _, other := range targets[c.To] {
			if other.From == c.From {
				continue
			}

			collisions = append(collisions, m.Collision{
				Kind:      m.CollisionDuplicate,
				Candidate: c,
				Other:     other.From,
			})

			break
		}

		_, exists := existingSet[c.To]
		_, away := renamedAway[c.To]

		if exists && !away {
			collisions = append(collisions, m.Collision{
				Kind:      m.CollisionClobber,
				Candidate: c,
				Other:     c.To,
			})
		}
	}

	if len(collisions) == 0 {
		return nil
	}

	return &m.CollisionError{Collisions: collisions}
}
