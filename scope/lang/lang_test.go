package lang_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/structedit/structedit/scope"
	"github.com/structedit/structedit/scope/lang"
)

func TestPythonDocStringsScoped(t *testing.T) {
	l, err := lang.NewPython(lang.PythonDocStrings)
	require.NoError(t, err)

	src := "def f():\n    \"\"\"Explain f.\"\"\"\n    return 1\n"
	got := l.Scope(src)

	var in []string
	for _, s := range got {
		if s.Kind == scope.In {
			in = append(in, s.Bytes)
		}
	}
	require.Len(t, in, 1)
	assert.Equal(t, `"""Explain f."""`, in[0])
}

func TestPythonFunctionNamesScoped(t *testing.T) {
	l, err := lang.NewPython(lang.PythonFunctionNames)
	require.NoError(t, err)

	src := "def foo():\n    pass\n"
	got := l.Scope(src)

	var in []string
	for _, s := range got {
		if s.Kind == scope.In {
			in = append(in, s.Bytes)
		}
	}
	require.Len(t, in, 1)
	assert.Equal(t, "foo", in[0])
}

func TestHclResourceTypesScoped(t *testing.T) {
	l, err := lang.NewHcl(lang.HclResourceTypes)
	require.NoError(t, err)

	src := `resource "aws_instance" "web" {}`
	got := l.Scope(src)

	var in []string
	for _, s := range got {
		if s.Kind == scope.In {
			in = append(in, s.Bytes)
		}
	}
	require.Len(t, in, 1)
	assert.Equal(t, `"aws_instance"`, in[0])
}

func TestGoFunctionNamesScoped(t *testing.T) {
	l, err := lang.NewGo(lang.GoFunctionNames)
	require.NoError(t, err)

	src := "package p\n\nfunc Foo() {}\n"
	got := l.Scope(src)

	var in []string
	for _, s := range got {
		if s.Kind == scope.In {
			in = append(in, s.Bytes)
		}
	}
	require.Len(t, in, 1)
	assert.Equal(t, "Foo", in[0])
}

func TestSequentialQueriesAreAND(t *testing.T) {
	// Composing GoComments then a custom query that keeps only captures
	// starting with "//" demonstrates sequential AND narrowing, not union.
	l, err := lang.NewGo(lang.GoComments, lang.Custom(`((comment) @c (#match? @c "^//"))`))
	require.NoError(t, err)

	src := "package p\n\n/* block */\n// line\nfunc Foo() {}\n"
	got := l.Scope(src)

	var in []string
	for _, s := range got {
		if s.Kind == scope.In {
			in = append(in, s.Bytes)
		}
	}
	assert.Equal(t, []string{"// line"}, in)
}
