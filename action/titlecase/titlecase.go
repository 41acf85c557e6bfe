// Package titlecase implements an Action rendering text in title case,
// using golang.org/x/text/cases for Unicode-aware word boundaries.
package titlecase

import (
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Action renders its input fragment in title case.
type Action struct {
	caser cases.Caser
}

// New returns a titlecase.Action using the given BCP 47 language tag for
// locale-sensitive casing rules (e.g. Turkish dotless i). An empty tag
// selects language.Und, the locale-neutral default.
func New(tag string) (Action, error) {
	t := language.Und
	if tag != "" {
		parsed, err := language.Parse(tag)
		if err != nil {
			return Action{}, err
		}
		t = parsed
	}
	return Action{caser: cases.Title(t)}, nil
}

// Act implements scope.Action.
func (a Action) Act(in string) string {
	return a.caser.String(in)
}
