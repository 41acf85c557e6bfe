package ui

import (
	"strings"
	"testing"
)

func TestRenderDiffShowsChangedLines(t *testing.T) {
	before := "hello world\nfoo\n"
	after := "HELLO WORLD\nfoo\n"

	out, err := RenderDiff(before, after, true)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !strings.Contains(out, "-hello world") {
		t.Errorf("expected removed line in diff, got:\n%s", out)
	}
	if !strings.Contains(out, "+HELLO WORLD") {
		t.Errorf("expected added line in diff, got:\n%s", out)
	}
}

func TestRenderDiffNoChange(t *testing.T) {
	text := "unchanged\n"
	out, err := RenderDiff(text, text, true)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out != "" {
		t.Errorf("expected empty diff for identical input, got:\n%s", out)
	}
}
