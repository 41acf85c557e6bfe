package pipeline

import "github.com/structedit/structedit/scope"

// Chain composes multiple Scopers with sequential AND semantics: the first
// scoper's In fragments are the only input to the second, and so on. This
// mirrors the same composition rule a single Language's multiple queries
// follow, generalized to heterogeneous scopers (e.g. a regex scoper
// narrowing a tree-sitter scoper's output).
type Chain []scope.Scoper

// Scope implements scope.Scoper.
func (c Chain) Scope(fragment string) []scope.ROScope {
	b := scope.NewBuilder(fragment)
	for _, s := range c {
		b.ExplodeFromScoper(s)
	}
	return b.Scopes()
}
