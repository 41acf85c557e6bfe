// Package pipeline is the library surface combining a Scoper with an
// ordered list of Actions: build a scope once, map every action over it in
// turn, and render the result. It is the shared core driven by the CLI,
// the LSP server, and the transform HTTP service.
package pipeline

import (
	"github.com/structedit/structedit/scope"
)

// Pipeline pairs one Scoper with zero or more Actions applied in order.
type Pipeline struct {
	scoper  scope.Scoper
	actions []scope.Action
}

// New returns a Pipeline scoping with scoper and applying actions in the
// given order. A nil or empty actions list is valid: the pipeline can be
// used purely to inspect scopes (InFragments) without mutating anything.
func New(scoper scope.Scoper, actions ...scope.Action) *Pipeline {
	return &Pipeline{scoper: scoper, actions: actions}
}

// Run scopes input, applies every configured action in order, and returns
// the rendered result.
func (p *Pipeline) Run(input string) string {
	return p.View(input).Render()
}

// View scopes input and applies every configured action, returning the
// built View so a caller can inspect InFragments, diff against the
// original, or render on demand.
func (p *Pipeline) View(input string) *scope.View {
	v := scope.NewBuilder(input).ExplodeFromScoper(p.scoper).Build()
	for _, a := range p.actions {
		v.Map(a)
	}
	return v
}

// Scopes scopes input without applying any action, useful for drivers
// (LSP code actions, --diff previews) that need to report what would
// change before committing to it.
func (p *Pipeline) Scopes(input string) []scope.ROScope {
	return scope.NewBuilder(input).ExplodeFromScoper(p.scoper).Scopes()
}
