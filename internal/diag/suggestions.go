package diag

import (
	"fmt"
	"strings"
)

// suggestFix generates auto-fix suggestions based on error code.
func suggestFix(err Diagnostic) *FixSuggestion {
	switch err.Code {
	case ErrInvalidRegex:
		return suggestRegexFix(err)
	case ErrEmptyScope:
		return suggestNonEmptyScope(err)
	case ErrInvalidLiteral:
		return suggestNonEmptyLiteral(err)
	case ErrInvalidQuery:
		return suggestQueryFix(err)
	case ErrUnknownLanguage:
		return suggestKnownLanguage(err)
	case ErrUnknownAction:
		return suggestKnownAction(err)
	case ErrInvalidNormalizeForm:
		return suggestNormalizeForm(err)
	case ErrInvalidLanguageTag:
		return suggestLanguageTag(err)
	case ErrConfigInvalidField, ErrConfigMissingField:
		return suggestConfigFieldFix(err)
	case ErrConfigUnknownPreset, ErrPresetNotFound:
		return suggestKnownPreset(err)
	case ErrEmptyPipeline:
		return suggestConfigureScope(err)
	default:
		return nil
	}
}

func suggestRegexFix(err Diagnostic) *FixSuggestion {
	return &FixSuggestion{
		Description: "Check the regular expression is valid Go RE2 syntax: balanced parentheses and brackets, no unsupported lookaround",
		OldCode:     "scope: { regex: \"(unterminated\" }",
		NewCode:     "scope: { regex: \"(terminated)\" }",
		Confidence:  0.75,
	}
}

func suggestNonEmptyScope(err Diagnostic) *FixSuggestion {
	return &FixSuggestion{
		Description: "A scope that only ever matches the empty string selects nothing useful; broaden the pattern or literal",
		OldCode:     "scope: { regex: \"x*\" }",
		NewCode:     "scope: { regex: \"x+\" }",
		Confidence:  0.60,
	}
}

func suggestNonEmptyLiteral(err Diagnostic) *FixSuggestion {
	return &FixSuggestion{
		Description: "A literal scope needs a non-empty string to search for",
		OldCode:     "scope: { literal: \"\" }",
		NewCode:     "scope: { literal: \"TODO\" }",
		Confidence:  0.85,
	}
}

func suggestQueryFix(err Diagnostic) *FixSuggestion {
	msg := strings.ToLower(err.Message)
	if strings.Contains(msg, "capture") {
		return &FixSuggestion{
			Description: "Capture names must be unique within a query; disambiguate with a dotted suffix, e.g. @_id.usage",
			OldCode:     "@id ... @id",
			NewCode:     "@_id.declaration ... @_id.usage",
			Confidence:  0.80,
		}
	}
	return &FixSuggestion{
		Description: "Check the tree-sitter query against the grammar's node and field names",
		OldCode:     "",
		NewCode:     "Consult the language's premade queries for working examples",
		Confidence:  0.55,
	}
}

func suggestKnownLanguage(err Diagnostic) *FixSuggestion {
	return &FixSuggestion{
		Description: "Supported languages: python, hcl, go",
		OldCode:     "language: pythonn",
		NewCode:     "language: python",
		Confidence:  0.70,
	}
}

func suggestKnownAction(err Diagnostic) *FixSuggestion {
	actions := map[string]string{
		"uppercase":  "upper",
		"lowercase":  "lower",
		"titlecase":  "titlecase",
		"capitalize": "titlecase",
		"nfc":        "normalize",
		"delete":     "deletion",
		"remove":     "deletion",
		"dedupe":     "squeeze",
	}

	msg := strings.ToLower(err.Message)
	for unknown, known := range actions {
		if strings.Contains(msg, unknown) {
			return &FixSuggestion{
				Description: fmt.Sprintf("Did you mean action %q?", known),
				OldCode:     unknown,
				NewCode:     known,
				Confidence:  0.85,
			}
		}
	}

	return &FixSuggestion{
		Description: "Known actions: upper, lower, titlecase, normalize, german, symbols, squeeze, replace, deletion",
		OldCode:     "",
		NewCode:     "Choose one of the known action names",
		Confidence:  0.60,
	}
}

func suggestNormalizeForm(err Diagnostic) *FixSuggestion {
	return &FixSuggestion{
		Description: "Valid normalization forms: nfc, nfd, nfkc, nfkd",
		OldCode:     "form: nfx",
		NewCode:     "form: nfc",
		Confidence:  0.85,
	}
}

func suggestLanguageTag(err Diagnostic) *FixSuggestion {
	return &FixSuggestion{
		Description: "Use a valid BCP 47 tag, e.g. en, de, tr",
		OldCode:     "lang: english",
		NewCode:     "lang: en",
		Confidence:  0.75,
	}
}

func suggestConfigFieldFix(err Diagnostic) *FixSuggestion {
	if len(err.Context.SourceLines) == 0 {
		return nil
	}
	errorLine := err.Context.SourceLines[err.Context.Highlight.Line]
	return &FixSuggestion{
		Description: "Check this field's name and type against the preset schema",
		OldCode:     strings.TrimSpace(errorLine),
		NewCode:     "See `structedit init` for a valid .structedit.yaml skeleton",
		Confidence:  0.55,
	}
}

func suggestKnownPreset(err Diagnostic) *FixSuggestion {
	return &FixSuggestion{
		Description: "List configured presets with `structedit presets list`",
		OldCode:     "",
		NewCode:     "Use an existing preset name, or create one with `structedit init`",
		Confidence:  0.60,
	}
}

func suggestConfigureScope(err Diagnostic) *FixSuggestion {
	return &FixSuggestion{
		Description: "A pipeline needs at least one scoper before it can run",
		OldCode:     "scope: {}",
		NewCode:     "scope: { regex: \"...\" }",
		Confidence:  0.70,
	}
}
