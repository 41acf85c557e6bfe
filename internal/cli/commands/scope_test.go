package commands

import (
	"bytes"
	"strings"
	"testing"
)

func TestNewScopeCommand_Flags(t *testing.T) {
	cmd := NewScopeCommand()

	if cmd.Use != "scope [file]" {
		t.Errorf("expected Use to be 'scope [file]', got %s", cmd.Use)
	}

	for _, name := range []string{"preset", "regex", "literal", "language", "query", "no-color"} {
		if cmd.Flags().Lookup(name) == nil {
			t.Errorf("expected --%s flag to exist", name)
		}
	}
}

func TestScopeCommand_RegexPreview(t *testing.T) {
	cmd := NewScopeCommand()
	in := strings.NewReader("hello world")
	out := &bytes.Buffer{}
	cmd.SetIn(in)
	cmd.SetOut(out)
	cmd.SetArgs([]string{"--regex", "hello", "--no-color"})

	if err := cmd.Execute(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got := out.String()
	if !strings.Contains(got, "in") || !strings.Contains(got, "\"hello\"") {
		t.Errorf("expected scope preview to list an in-scope hello fragment, got %q", got)
	}
}

func TestScopeCommand_UnknownPreset(t *testing.T) {
	cmd := NewScopeCommand()
	out := &bytes.Buffer{}
	errOut := &bytes.Buffer{}
	cmd.SetOut(out)
	cmd.SetErr(errOut)
	cmd.SetArgs([]string{"--preset", "does-not-exist"})

	if err := cmd.Execute(); err == nil {
		t.Fatal("expected an error for an unknown preset")
	}
}
