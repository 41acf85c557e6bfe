// Package literalscope implements a Scoper backed by an exact string match,
// found via a left-to-right, non-overlapping linear scan.
package literalscope

import (
	"strings"

	"github.com/structedit/structedit/scope"
)

// Scoper scopes a fragment to non-overlapping occurrences of a literal
// string.
type Scoper struct {
	literal string
}

// New validates literal and returns a Scoper. Fails with scope.EmptyScope
// if literal is empty: an empty literal "matches" everywhere and nowhere
// usefully, producing only empty scopes that the builder would discard.
func New(literal string) (*Scoper, error) {
	if literal == "" {
		return nil, scope.NewBuildError(scope.EmptyScope, "literal must not be empty")
	}
	return &Scoper{literal: literal}, nil
}

// Scope implements scope.Scoper.
func (s *Scoper) Scope(fragment string) []scope.ROScope {
	var ranges []scope.Range
	cursor := 0
	for {
		idx := strings.Index(fragment[cursor:], s.literal)
		if idx < 0 {
			break
		}
		start := cursor + idx
		end := start + len(s.literal)
		ranges = append(ranges, scope.Range{Start: start, End: end})
		cursor = end
	}
	return scope.NewBuilder(fragment).ExplodeFromRanges(func(string) []scope.Range {
		return ranges
	}).Scopes()
}
