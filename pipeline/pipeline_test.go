package pipeline_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/structedit/structedit/action/upper"
	"github.com/structedit/structedit/pipeline"
	"github.com/structedit/structedit/scope/literalscope"
	"github.com/structedit/structedit/scope/regexscope"
)

func TestRunUppercasesScopedWords(t *testing.T) {
	s, err := regexscope.New(`[a-z]+`)
	require.NoError(t, err)

	p := pipeline.New(s, upper.New())
	assert.Equal(t, "HELLO, WORLD!", p.Run("hello, world!"))
}

func TestRunWithNoActionsIsIdentity(t *testing.T) {
	s, err := regexscope.New(`[a-z]+`)
	require.NoError(t, err)

	p := pipeline.New(s)
	assert.Equal(t, "hello, world!", p.Run("hello, world!"))
}

func TestChainNarrowsSequentially(t *testing.T) {
	words, err := regexscope.New(`\w+`)
	require.NoError(t, err)
	lit, err := literalscope.New("cd")
	require.NoError(t, err)

	chain := pipeline.Chain{words, lit}
	p := pipeline.New(chain, upper.New())
	assert.Equal(t, "ab CD ef", p.Run("ab cd ef"))
}

func TestScopesDoesNotApplyActions(t *testing.T) {
	s, err := regexscope.New(`[a-z]+`)
	require.NoError(t, err)

	p := pipeline.New(s, upper.New())
	scopes := p.Scopes("hello")
	require.Len(t, scopes, 1)
	assert.Equal(t, "hello", scopes[0].Bytes)
}
