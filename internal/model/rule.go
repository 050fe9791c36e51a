// Package model defines the data structures for batch renaming.
package model

import (
	"regexp"
	"strings"
)

// RuleSpec is the uncompiled form of a rename rule, as supplied on the
// command line or in a rule file. The template may reference capture
// groups with back-references (\1, \2, ...).
type RuleSpec struct {
	Pattern  string `yaml:"pattern"`
	Template string `yaml:"template"`
}

// Rule is a compiled pattern/template pair. The template is stored in
// the expanded form understood by regexp.ReplaceAllString.
type Rule struct {
	Pattern  *regexp.Regexp
	Template string
}

// Apply substitutes every match of the rule's pattern in name.
// A name with no match is returned unchanged.
func (r Rule) Apply(name string) string {
	return r.Pattern.ReplaceAllString(name, r.Template)
}

// CompileRule compiles a rule spec. When ignoreCase is set the pattern
// matches case-insensitively. A pattern that fails to compile yields an
// InvalidPatternError.
func CompileRule(spec RuleSpec, ignoreCase bool) (Rule, error) {
	pattern := spec.Pattern
	if ignoreCase {
		pattern = "(?i)" + pattern
	}

	re, err := regexp.Compile(pattern)
	if err != nil {
		return Rule{}, &InvalidPatternError{Pattern: spec.Pattern, Err: err}
	}

	return Rule{Pattern: re, Template: translateTemplate(spec.Template)}, nil
}

// CompileRules compiles an ordered rule sequence, failing on the first
// invalid pattern.
func CompileRules(specs []RuleSpec, ignoreCase bool) ([]Rule, error) {
	rules := make([]Rule, 0, len(specs))

	for _, spec := range specs {
		rule, err := CompileRule(spec, ignoreCase)
		if err != nil {
			return nil, err
		}

		rules = append(rules, rule)
	}

	return rules, nil
}

// translateTemplate rewrites \1-style back-references into the ${1} form
// used by the regexp package. \\ becomes a literal backslash and literal
// $ characters are escaped so they survive expansion.
func translateTemplate(tpl string) string {
	var b strings.Builder

	for i := 0; i < len(tpl); {
		c := tpl[i]

		switch {
		case c == '$':
			b.WriteString("$$")

			i++
		case c == '\\' && i+1 < len(tpl):
			next := tpl[i+1]

			switch {
			case next == '\\':
				b.WriteByte('\\')

				i += 2
			case next >= '0' && next <= '9':
				j := i + 1
				for j < len(tpl) && tpl[j] >= '0' && tpl[j] <= '9' {
					j++
				}

				b.WriteString("${")
				b.WriteString(tpl[i+1 : j])
				b.WriteString("}")

				i = j
			default:
				b.WriteByte('\\')
				b.WriteByte(next)

				i += 2
			}
		default:
			b.WriteByte(c)

			i++
		}
	}

	return b.String()
}

// CleanupSpecs returns the built-in sanitization rule table, in
// evaluation order: common non-ASCII letters get readable replacements,
// then anything outside the safe character set collapses to underscore.
func CleanupSpecs() []RuleSpec {
	return []RuleSpec{
		{Pattern: "Å", Template: "AA"},
		{Pattern: "Ä", Template: "A"},
		{Pattern: "Ö", Template: "O"},
		{Pattern: "Ü", Template: "U"},
		{Pattern: "å", Template: "aa"},
		{Pattern: "ä", Template: "a"},
		{Pattern: "ö", Template: "o"},
		{Pattern: "ü", Template: "u"},
		{Pattern: "&", Template: "and"},
		{Pattern: "[^A-Za-z0-9.+_-]", Template: "_"},
	}
}
