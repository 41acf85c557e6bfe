package ui

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/pmezard/go-difflib/difflib"
)

// RenderDiff renders a unified diff between before and after, colorizing
// added and removed lines the way a terminal diff viewer would. Used by
// `structedit apply --diff` to preview a pipeline's effect without
// overwriting the input file.
func RenderDiff(before, after string, noColor bool) (string, error) {
	diff := difflib.UnifiedDiff{
		A:        difflib.SplitLines(before),
		B:        difflib.SplitLines(after),
		FromFile: "before",
		ToFile:   "after",
		Context:  3,
	}

	text, err := difflib.GetUnifiedDiffString(diff)
	if err != nil {
		return "", fmt.Errorf("render diff: %w", err)
	}

	if text == "" {
		return "", nil
	}

	added := color.New(color.FgGreen)
	removed := color.New(color.FgRed)
	hunk := color.New(color.FgCyan)
	if noColor {
		added.DisableColor()
		removed.DisableColor()
		hunk.DisableColor()
	}

	var b strings.Builder
	for _, line := range strings.SplitAfter(text, "\n") {
		switch {
		case strings.HasPrefix(line, "+++") || strings.HasPrefix(line, "---"):
			b.WriteString(line)
		case strings.HasPrefix(line, "@@"):
			hunk.Fprint(&b, line)
		case strings.HasPrefix(line, "+"):
			added.Fprint(&b, line)
		case strings.HasPrefix(line, "-"):
			removed.Fprint(&b, line)
		default:
			b.WriteString(line)
		}
	}

	return b.String(), nil
}
