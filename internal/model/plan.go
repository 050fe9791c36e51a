package model

import "path/filepath"

// Path represents a file system path.
type Path string

// Candidate pairs one entry's current name with its proposed name.
// Names are relative to Dir; renames never cross directories.
type Candidate struct {
	Dir  Path
	From string
	To   string
}

// Changed reports whether the candidate is part of the rename set.
func (c Candidate) Changed() bool {
	return c.From != c.To
}

// FromPath returns the full current path of the entry.
func (c Candidate) FromPath() Path {
	return Path(filepath.Join(string(c.Dir), c.From))
}

// ToPath returns the full proposed path of the entry.
func (c Candidate) ToPath() Path {
	return Path(filepath.Join(string(c.Dir), c.To))
}

// Plan is the full original-to-proposed mapping for one directory in a
// single invocation. A plan is either valid as a whole or rejected as a
// whole; partial application never occurs.
type Plan struct {
	Dir        Path
	Candidates []Candidate
}

// Renames returns the candidates whose names actually change, in plan
// order.
func (p Plan) Renames() []Candidate {
	var renames []Candidate

	for _, c := range p.Candidates {
		if c.Changed() {
			renames = append(renames, c)
		}
	}

	return renames
}
