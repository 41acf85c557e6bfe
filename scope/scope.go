// Package scope implements the scope algebra: regions of an input buffer are
// tagged either In (subject to further subdivision and, later, to action
// transformation) or Out (frozen, forwarded verbatim to the rendered output).
package scope

// Kind distinguishes an in-scope fragment from an out-of-scope one.
type Kind int

const (
	// In marks a fragment that subsequent scopers may further subdivide and
	// that actions will transform.
	In Kind = iota
	// Out marks a fragment frozen for the remainder of the pipeline.
	Out
)

// Range is a half-open byte interval [Start, End) into the fragment it was
// produced from.
type Range struct {
	Start int
	End   int
}

// Len returns the number of bytes the range covers.
func (r Range) Len() int { return r.End - r.Start }

// ROScope is a read-only scope: its payload borrows a slice of the original
// input. This is the form produced and consumed while a Builder is being
// exploded by successive scopers.
type ROScope struct {
	Kind  Kind
	Bytes string
}

// IsEmpty reports whether the underlying slice has zero length.
func (s ROScope) IsEmpty() bool { return len(s.Bytes) == 0 }

// RWScope is a read-write scope: its payload is either a slice borrowed from
// the original input, or a string owned by an action that replaced it. Once
// any In scope has been mapped by an action, it carries owned bytes; Out
// scopes never change for the lifetime of a View.
type RWScope struct {
	Kind  Kind
	Bytes string
}

// IsEmpty reports whether the underlying slice has zero length.
func (s RWScope) IsEmpty() bool { return len(s.Bytes) == 0 }

// toRW promotes a read-only scope to its read-write incarnation. For In
// scopes this is a borrow, not a copy: RWScope.Bytes aliases the same
// backing array until an action replaces it.
func (s ROScope) toRW() RWScope {
	return RWScope{Kind: s.Kind, Bytes: s.Bytes}
}
