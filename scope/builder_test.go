package scope_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/structedit/structedit/scope"
)

func render(b *scope.Builder) string {
	var out string
	for _, s := range b.Scopes() {
		out += s.Bytes
	}
	return out
}

func TestConcatenationInvariant(t *testing.T) {
	inputs := []string{
		"",
		"Hello, World!",
		"aAäÄöÖüÜßẞ!",
		"你好! привет!",
		"aaabbbcccc",
	}
	for _, in := range inputs {
		b := scope.NewBuilder(in)
		b.ExplodeFromRanges(func(s string) []scope.Range {
			if len(s) < 2 {
				return nil
			}
			return []scope.Range{{Start: 1, End: len(s) - 1}}
		})
		require.Equal(t, in, render(b), "concatenation must equal input for %q", in)
	}
}

func TestNoEmptyScopesRetained(t *testing.T) {
	b := scope.NewBuilder("abc")
	b.ExplodeFromRanges(func(s string) []scope.Range {
		return []scope.Range{{Start: 0, End: len(s)}}
	})
	for _, s := range b.Scopes() {
		assert.False(t, s.IsEmpty(), "no scope should be empty")
	}
}

func TestStrictlyIncreasingOrder(t *testing.T) {
	input := "aaabbbcccc"
	b := scope.NewBuilder(input)
	b.ExplodeFromRanges(func(s string) []scope.Range {
		return []scope.Range{{Start: 3, End: 6}}
	})
	pos := 0
	for _, s := range b.Scopes() {
		assert.Equal(t, input[pos:pos+len(s.Bytes)], s.Bytes)
		pos += len(s.Bytes)
	}
	assert.Equal(t, len(input), pos)
}

func TestIdentityScoperIsNoop(t *testing.T) {
	input := "unchanged text"
	plain := scope.NewBuilder(input)

	identity := scope.NewBuilder(input)
	identity.Explode(func(s string) []scope.ROScope {
		return []scope.ROScope{{Kind: scope.In, Bytes: s}}
	})

	assert.Equal(t, plain.Scopes(), identity.Scopes())
}

func TestOverlappingRangesDiscardLater(t *testing.T) {
	// Open question in the spec, pinned here: the later of two overlapping
	// ranges (after sort-by-start) is discarded entirely.
	input := "0123456789"
	b := scope.NewBuilder(input)
	b.ExplodeFromRanges(func(s string) []scope.Range {
		return []scope.Range{
			{Start: 0, End: 5},
			{Start: 3, End: 8}, // overlaps [0,5), discarded
		}
	})
	require.Len(t, b.Scopes(), 2)
	assert.Equal(t, scope.In, b.Scopes()[0].Kind)
	assert.Equal(t, "01234", b.Scopes()[0].Bytes)
	assert.Equal(t, scope.Out, b.Scopes()[1].Kind)
	assert.Equal(t, "56789", b.Scopes()[1].Bytes)
}

func TestExplosionIsSequentialAND(t *testing.T) {
	// Two explosions in sequence further subdivide only the prior In
	// fragments; Out fragments from the first pass are never reconsidered.
	input := "ab cd ef"
	b := scope.NewBuilder(input)
	b.ExplodeFromRanges(func(s string) []scope.Range {
		// mark "ab cd" in scope, " ef" out of scope
		return []scope.Range{{Start: 0, End: 5}}
	})
	b.ExplodeFromRanges(func(s string) []scope.Range {
		// within "ab cd", mark only "cd"
		idx := -1
		for i := 0; i+2 <= len(s); i++ {
			if s[i:i+2] == "cd" {
				idx = i
				break
			}
		}
		if idx < 0 {
			return nil
		}
		return []scope.Range{{Start: idx, End: idx + 2}}
	})

	var inParts []string
	for _, s := range b.Scopes() {
		if s.Kind == scope.In {
			inParts = append(inParts, s.Bytes)
		}
	}
	assert.Equal(t, []string{"cd"}, inParts)
	assert.Equal(t, input, render(b))
}
