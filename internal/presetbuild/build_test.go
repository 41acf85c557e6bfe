package presetbuild

import (
	"testing"

	"github.com/structedit/structedit/internal/cliconfig"
)

func TestBuildRegexUpper(t *testing.T) {
	cfg := cliconfig.PresetConfig{
		Scope:   cliconfig.ScopeConfig{Regex: "[a-z]+"},
		Actions: []string{"upper"},
	}

	p, err := Build("shout", cfg)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got := p.Run("hello WORLD")
	want := "HELLO WORLD"
	if got != want {
		t.Errorf("Run() = %q, want %q", got, want)
	}
}

func TestBuildPythonDocstringsDeletion(t *testing.T) {
	cfg := cliconfig.PresetConfig{
		Scope:   cliconfig.ScopeConfig{Language: "python", Query: "docstrings"},
		Actions: []string{"deletion"},
	}

	p, err := Build("strip-docs", cfg)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	src := "def f():\n    \"\"\"doc\"\"\"\n    return 1\n"
	got := p.Run(src)
	if got == src {
		t.Error("expected docstring to be removed")
	}
}

func TestBuildNoScopeIsError(t *testing.T) {
	_, err := Build("empty", cliconfig.PresetConfig{Actions: []string{"upper"}})
	if err == nil {
		t.Fatal("expected error for preset with no scope")
	}
}

func TestBuildConflictingScopeIsError(t *testing.T) {
	cfg := cliconfig.PresetConfig{
		Scope: cliconfig.ScopeConfig{Regex: "x", Literal: "y"},
	}
	_, err := Build("conflict", cfg)
	if err == nil {
		t.Fatal("expected error for conflicting scope fields")
	}
}

func TestBuildUnknownActionIsError(t *testing.T) {
	cfg := cliconfig.PresetConfig{
		Scope:   cliconfig.ScopeConfig{Literal: "x"},
		Actions: []string{"uppercase"},
	}
	_, err := Build("typo", cfg)
	if err == nil {
		t.Fatal("expected error for unknown action name")
	}
}

func TestBuildTitlecaseAndNormalize(t *testing.T) {
	cfg := cliconfig.PresetConfig{
		Scope:   cliconfig.ScopeConfig{Regex: `\w+`},
		Actions: []string{"titlecase:en", "normalize:nfc"},
	}
	p, err := Build("title", cfg)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	got := p.Run("hello world")
	if got != "Hello World" {
		t.Errorf("Run() = %q, want %q", got, "Hello World")
	}
}
