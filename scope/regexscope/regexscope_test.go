package regexscope_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/structedit/structedit/scope"
	"github.com/structedit/structedit/scope/regexscope"
)

func TestScopeMarksMatchesIn(t *testing.T) {
	s, err := regexscope.New(`[A-Z]\w+`)
	require.NoError(t, err)

	got := s.Scope("Hello, World!")
	var kinds []scope.Kind
	var parts []string
	for _, sc := range got {
		kinds = append(kinds, sc.Kind)
		parts = append(parts, sc.Bytes)
	}

	assert.Equal(t, []scope.Kind{scope.In, scope.Out, scope.In, scope.Out}, kinds)
	assert.Equal(t, []string{"Hello", ", ", "World", "!"}, parts)
}

func TestNonOverlappingRuns(t *testing.T) {
	s, err := regexscope.New(`b+`)
	require.NoError(t, err)

	got := s.Scope("aaabbbcccc")
	require.Len(t, got, 3)
	assert.Equal(t, "aaa", got[0].Bytes)
	assert.Equal(t, scope.Out, got[0].Kind)
	assert.Equal(t, "bbb", got[1].Bytes)
	assert.Equal(t, scope.In, got[1].Kind)
	assert.Equal(t, "cccc", got[2].Bytes)
}

func TestInvalidRegexIsBuildError(t *testing.T) {
	_, err := regexscope.New(`(unclosed`)
	require.Error(t, err)
	var be *scope.BuildError
	require.ErrorAs(t, err, &be)
	assert.Equal(t, scope.RegexErr, be.Kind)
}

func TestEmptyPatternIsBuildError(t *testing.T) {
	_, err := regexscope.New(``)
	require.Error(t, err)
	var be *scope.BuildError
	require.ErrorAs(t, err, &be)
	assert.Equal(t, scope.EmptyScope, be.Kind)
}
