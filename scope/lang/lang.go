// Package lang adapts tree-sitter grammars into scope.Scoper implementations.
// Each supported language ships a catalog of premade queries (PremadeGoQuery,
// PremadePythonQuery, PremadeHclQuery)
// alongside support for arbitrary custom queries, both compiled once and
// reused across fragments.
package lang

import (
	"context"
	"strings"

	sitter "github.com/smacker/go-tree-sitter"

	"github.com/structedit/structedit/scope"
)

// ignoreMarker is the leading byte of a capture name that opts it out of
// scoping. Tree-sitter requires capture names to be unique within a single
// query, so a query composing several logical captures that should all be
// ignored gives them disambiguating dotted suffixes, e.g. "@_docstring.quotes"
// and "@_docstring.marker" both carry the marker as their first byte.
const ignoreMarker = "_"

// CodeQuery is implemented by a language's premade query enum (an int-like
// type) and by custom raw queries. Query returns the tree-sitter S-expression
// to compile.
type CodeQuery interface {
	Query() string
}

// Custom wraps a raw tree-sitter query string supplied directly by a caller,
// for languages/queries not present in a premade catalog.
type Custom string

// Query implements CodeQuery.
func (c Custom) Query() string { return string(c) }

// Language is a Scoper backed by a tree-sitter grammar and one or more
// compiled queries. Multiple queries compose with AND semantics: a fragment
// must be captured by every query in turn, each query subdividing only the
// ranges the previous one yielded.
type Language struct {
	grammar *sitter.Language
	queries []*sitter.Query
}

// New parses and compiles each query against grammar. Compilation failures
// surface as scope.QueryErr.
func New(grammar *sitter.Language, queries ...CodeQuery) (*Language, error) {
	if len(queries) == 0 {
		return nil, scope.NewBuildError(scope.EmptyScope, "at least one query is required")
	}
	compiled := make([]*sitter.Query, 0, len(queries))
	for _, q := range queries {
		sq, err := sitter.NewQuery([]byte(q.Query()), grammar)
		if err != nil {
			return nil, scope.NewBuildError(scope.QueryErr, err.Error())
		}
		compiled = append(compiled, sq)
	}
	return &Language{grammar: grammar, queries: compiled}, nil
}

// Scope implements scope.Scoper. Each compiled query runs in sequence as its
// own Scoper, every pass re-parsing and re-querying whatever sub-fragment the
// previous pass narrowed the builder to (sequential AND composition) — the
// same composition rule pipeline.Chain applies across heterogeneous scopers.
func (l *Language) Scope(fragment string) []scope.ROScope {
	b := scope.NewBuilder(fragment)
	for _, q := range l.queries {
		b.ExplodeFromScoper(queryScoper{grammar: l.grammar, query: q})
	}
	return b.Scopes()
}

// queryScoper is a single compiled tree-sitter query as a scope.Scoper in its
// own right: it parses whatever fragment it is handed and returns ranges
// local to that fragment, so it composes correctly no matter how narrow a
// sub-fragment a prior pass has already produced.
type queryScoper struct {
	grammar *sitter.Language
	query   *sitter.Query
}

// Scope implements scope.Scoper.
func (qs queryScoper) Scope(fragment string) []scope.ROScope {
	src := []byte(fragment)
	parser := sitter.NewParser()
	parser.SetLanguage(qs.grammar)

	tree, err := parser.ParseCtx(context.Background(), nil, src)
	if err != nil || tree == nil {
		return []scope.ROScope{{Kind: scope.Out, Bytes: fragment}}
	}

	ranges := rangesForQuery(qs.query, tree.RootNode(), src)
	return scope.NewBuilder(fragment).ExplodeFromRanges(func(string) []scope.Range {
		return ranges
	}).Scopes()
}

// rangesForQuery runs query over root and returns the byte ranges of every
// capture whose name does not carry the ignore marker, in match order.
// Sorting by start (longer range first on ties) and discarding overlaps are
// left to the builder.
func rangesForQuery(query *sitter.Query, root *sitter.Node, src []byte) []scope.Range {
	cursor := sitter.NewQueryCursor()
	defer cursor.Close()
	cursor.Exec(query, root)

	var ranges []scope.Range
	for {
		m, ok := cursor.NextMatch()
		if !ok {
			break
		}
		m = cursor.FilterPredicates(m, src)
		for _, c := range m.Captures {
			name := query.CaptureNameForId(c.Index)
			if strings.HasPrefix(name, ignoreMarker) {
				continue
			}
			ranges = append(ranges, scope.Range{
				Start: int(c.Node.StartByte()),
				End:   int(c.Node.EndByte()),
			})
		}
	}
	return ranges
}
