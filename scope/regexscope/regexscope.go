// Package regexscope implements a Scoper backed by a compiled regular
// expression: every non-overlapping match is marked In, the gaps between
// matches are marked Out.
package regexscope

import (
	"regexp"
	"regexp/syntax"

	"github.com/structedit/structedit/scope"
)

// Scoper scopes a fragment to the matches of a compiled regular expression.
type Scoper struct {
	re *regexp.Regexp
}

// New compiles pattern and returns a Scoper. Fails with scope.RegexErr if
// pattern does not compile, and scope.EmptyScope if pattern can only ever
// match the empty string (such a scoper would mark nothing useful, and
// every match would be discarded by the non-empty-scope rule anyway).
func New(pattern string) (*Scoper, error) {
	re, err := regexp.Compile(pattern)
	if err != nil {
		return nil, scope.NewBuildError(scope.RegexErr, err.Error())
	}
	// The pattern compiled above, so it parses with the same Perl flags. A
	// program with no rune-consuming instruction can only match "".
	parsed, _ := syntax.Parse(pattern, syntax.Perl)
	prog, _ := syntax.Compile(parsed.Simplify())
	consumes := false
	for _, inst := range prog.Inst {
		switch inst.Op {
		case syntax.InstRune, syntax.InstRune1, syntax.InstRuneAny, syntax.InstRuneAnyNotNL:
			consumes = true
		}
	}
	if !consumes {
		return nil, scope.NewBuildError(scope.EmptyScope, "pattern "+pattern+" only ever matches the empty string")
	}
	return &Scoper{re: re}, nil
}

// Scope implements scope.Scoper. Matches are leftmost-first, non-overlapping,
// exactly as regexp.FindAllStringIndex returns them; empty matches are
// dropped by the caller-facing non-empty-scope invariant.
func (s *Scoper) Scope(fragment string) []scope.ROScope {
	locs := s.re.FindAllStringIndex(fragment, -1)
	ranges := make([]scope.Range, 0, len(locs))
	for _, loc := range locs {
		ranges = append(ranges, scope.Range{Start: loc[0], End: loc[1]})
	}
	return scope.NewBuilder(fragment).ExplodeFromRanges(func(string) []scope.Range {
		return ranges
	}).Scopes()
}
