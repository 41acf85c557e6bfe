package scope

import "strings"

// Action is a pure text transformation applied to every In fragment of a
// View. It must be infallible: any inability to transform is expressed by
// returning the input unchanged, never by panicking or erroring. It must be
// safe to invoke concurrently, since the same Action may be shared across
// Pipelines.
type Action interface {
	Act(in string) string
}

// ActionFunc adapts a plain function to the Action interface.
type ActionFunc func(string) string

// Act implements Action.
func (f ActionFunc) Act(in string) string { return f(in) }

// View is the built, mutable form of a scope sequence: an ordered list of
// read-write scopes that actions map over and that renders by
// concatenation.
type View struct {
	scopes []RWScope
}

// NewView wraps an already-built scope list. Exposed so drivers that
// construct scopes outside of Builder (tests, for instance) can assemble a
// View directly.
func NewView(scopes []RWScope) *View {
	return &View{scopes: scopes}
}

// Map applies action to every In fragment in order, replacing each with the
// action's (owned) output; Out fragments are left untouched. Returns the
// receiver to allow chaining across a pipeline of actions.
func (v *View) Map(action Action) *View {
	for i, s := range v.scopes {
		if s.Kind != In {
			continue
		}
		v.scopes[i] = RWScope{Kind: In, Bytes: action.Act(s.Bytes)}
	}
	return v
}

// Delete replaces every In fragment with the empty string.
func (v *View) Delete() *View {
	return v.Map(ActionFunc(func(string) string { return "" }))
}

// Render concatenates the bytes of every scope in order.
func (v *View) Render() string {
	var b strings.Builder
	for _, s := range v.scopes {
		b.WriteString(s.Bytes)
	}
	return b.String()
}

// Scopes exposes the view's current scope list. Callers must not mutate the
// returned slice's elements; use Map to transform In fragments.
func (v *View) Scopes() []RWScope {
	return v.scopes
}

// InFragments returns the bytes of every In scope, in order. Useful for
// drivers (the LSP code-action bridge, primarily) that need to report what
// would change without rendering the whole output.
func (v *View) InFragments() []string {
	var out []string
	for _, s := range v.scopes {
		if s.Kind == In {
			out = append(out, s.Bytes)
		}
	}
	return out
}
