package scope

import "sort"

// Scoper is a pure function from a text fragment to an ordered list of
// In/Out scopes whose concatenation equals the fragment. Implementations
// must be safe to share across goroutines: construction may be fallible,
// but Scope itself never is.
type Scoper interface {
	// Scope returns the ordered, non-empty scopes covering fragment exactly.
	Scope(fragment string) []ROScope
}

// Builder owns a mutable sequence of read-only scopes over a single input
// buffer. The concatenation of all scope bytes equals the original input,
// byte-for-byte, at every stage of construction.
type Builder struct {
	scopes []ROScope
}

// NewBuilder produces a builder with a single In scope covering the whole
// input.
func NewBuilder(input string) *Builder {
	b := &Builder{scopes: []ROScope{{Kind: In, Bytes: input}}}
	return b.pruneEmpty()
}

// pruneEmpty drops any scope whose slice is empty. Empty scopes are never
// retained: they would break the at-most-one-adjacent-Out property render
// and actions like squeeze rely on, and cause spurious empty matches.
func (b *Builder) pruneEmpty() *Builder {
	kept := b.scopes[:0]
	for _, s := range b.scopes {
		if !s.IsEmpty() {
			kept = append(kept, s)
		}
	}
	b.scopes = kept
	return b
}

// ExplodeFromRanges is a convenience form of Explode: fn maps a fragment to
// the byte ranges within it that should be marked In; everything else
// becomes Out.
func (b *Builder) ExplodeFromRanges(fn func(fragment string) []Range) *Builder {
	return b.Explode(func(s string) []ROScope {
		return scopesFromRanges(s, fn(s))
	})
}

// scopesFromRanges converts a set of ranges into an ordered, gap-filled,
// non-overlapping scope list covering fragment exactly.
//
// Ranges are sorted by start ascending, ties broken by longer range first,
// and empty ranges are discarded. If two ranges still overlap after
// sorting, the later one is dropped — this keeps scopes disjoint and
// monotonically ordered, the precondition every downstream step relies on.
func scopesFromRanges(fragment string, ranges []Range) []ROScope {
	sorted := make([]Range, 0, len(ranges))
	for _, r := range ranges {
		if r.Len() > 0 {
			sorted = append(sorted, r)
		}
	}
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].Start != sorted[j].Start {
			return sorted[i].Start < sorted[j].Start
		}
		return sorted[i].Len() > sorted[j].Len()
	})

	out := make([]ROScope, 0, 2*len(sorted)+1)
	cursor := 0
	for _, r := range sorted {
		if r.Start < cursor {
			// Overlaps the previous, already-emitted range; discard.
			continue
		}
		out = append(out, ROScope{Kind: Out, Bytes: fragment[cursor:r.Start]})
		out = append(out, ROScope{Kind: In, Bytes: fragment[r.Start:r.End]})
		cursor = r.End
	}
	out = append(out, ROScope{Kind: Out, Bytes: fragment[cursor:]})

	kept := out[:0]
	for _, s := range out {
		if !s.IsEmpty() {
			kept = append(kept, s)
		}
	}
	return kept
}

// ExplodeFromScoper delegates fragment-to-scope-list conversion to s.
func (b *Builder) ExplodeFromScoper(s Scoper) *Builder {
	return b.Explode(s.Scope)
}

// Explode is the general form of explosion: fn is invoked once per current
// In fragment, replacing it with whatever scopes fn returns; Out fragments
// are forwarded unchanged. fn's output must concatenate back to its input
// for the builder's invariant to hold.
func (b *Builder) Explode(fn func(fragment string) []ROScope) *Builder {
	next := make([]ROScope, 0, len(b.scopes))
	for _, s := range b.scopes {
		if s.IsEmpty() {
			continue
		}
		switch s.Kind {
		case Out:
			next = append(next, s)
		case In:
			for _, sub := range fn(s.Bytes) {
				if !sub.IsEmpty() {
					next = append(next, sub)
				}
			}
		}
	}
	b.scopes = next
	return b
}

// Build freezes the builder into a View, the mutable, action-target form.
func (b *Builder) Build() *View {
	rw := make([]RWScope, len(b.scopes))
	for i, s := range b.scopes {
		rw[i] = s.toRW()
	}
	return &View{scopes: rw}
}

// Scopes exposes the builder's current scope list. Callers must not mutate
// the returned slice's elements.
func (b *Builder) Scopes() []ROScope {
	return b.scopes
}
