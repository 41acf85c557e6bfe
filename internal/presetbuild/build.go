// Package presetbuild turns a cliconfig.PresetConfig into a runnable
// pipeline.Pipeline, resolving scoper kind and action names against the
// scope, scope/lang, action/* and pipeline packages.
package presetbuild

import (
	"fmt"
	"strings"

	"github.com/structedit/structedit/action/deletion"
	"github.com/structedit/structedit/action/german"
	"github.com/structedit/structedit/action/lower"
	"github.com/structedit/structedit/action/normalize"
	"github.com/structedit/structedit/action/replace"
	"github.com/structedit/structedit/action/squeeze"
	"github.com/structedit/structedit/action/symbols"
	"github.com/structedit/structedit/action/titlecase"
	"github.com/structedit/structedit/action/upper"
	"github.com/structedit/structedit/internal/cliconfig"
	"github.com/structedit/structedit/internal/diag"
	"github.com/structedit/structedit/pipeline"
	"github.com/structedit/structedit/scope"
	"github.com/structedit/structedit/scope/lang"
	"github.com/structedit/structedit/scope/literalscope"
	"github.com/structedit/structedit/scope/regexscope"
)

// Build resolves cfg into a Pipeline, or a diag.Diagnostic describing the
// first configuration problem found.
func Build(name string, cfg cliconfig.PresetConfig) (*pipeline.Pipeline, error) {
	scoper, err := buildScoper(name, cfg.Scope)
	if err != nil {
		return nil, err
	}

	actions := make([]scope.Action, 0, len(cfg.Actions))
	for _, spec := range cfg.Actions {
		a, err := buildAction(name, spec)
		if err != nil {
			return nil, err
		}
		actions = append(actions, a)
	}

	return pipeline.New(scoper, actions...), nil
}

func buildScoper(preset string, cfg cliconfig.ScopeConfig) (scope.Scoper, error) {
	set := 0
	if cfg.Regex != "" {
		set++
	}
	if cfg.Literal != "" {
		set++
	}
	if cfg.Language != "" {
		set++
	}
	if set == 0 {
		return nil, configErr(preset, diag.ErrEmptyPipeline, "preset has no scope configured")
	}
	if set > 1 {
		return nil, configErr(preset, diag.ErrScoperConflict, "preset scope must set exactly one of regex, literal, language")
	}

	switch {
	case cfg.Regex != "":
		s, err := regexscope.New(cfg.Regex)
		if err != nil {
			return nil, configErr(preset, diag.ErrInvalidRegex, err.Error())
		}
		return s, nil
	case cfg.Literal != "":
		s, err := literalscope.New(cfg.Literal)
		if err != nil {
			return nil, configErr(preset, diag.ErrInvalidLiteral, err.Error())
		}
		return s, nil
	default:
		return buildLanguageScoper(preset, cfg.Language, cfg.Query)
	}
}

func buildLanguageScoper(preset, language, query string) (scope.Scoper, error) {
	if query == "" {
		return nil, configErr(preset, diag.ErrConfigMissingField, "language scope requires a query")
	}

	switch strings.ToLower(language) {
	case "python":
		q, ok := pythonQueries[strings.ToLower(query)]
		if !ok {
			return nil, configErr(preset, diag.ErrInvalidQuery, fmt.Sprintf("unknown python query %q", query))
		}
		l, err := lang.NewPython(q)
		return wrapLang(l, err, preset)
	case "hcl":
		q, ok := hclQueries[strings.ToLower(query)]
		if !ok {
			return nil, configErr(preset, diag.ErrInvalidQuery, fmt.Sprintf("unknown hcl query %q", query))
		}
		l, err := lang.NewHcl(q)
		return wrapLang(l, err, preset)
	case "go":
		q, ok := goQueries[strings.ToLower(query)]
		if !ok {
			return nil, configErr(preset, diag.ErrInvalidQuery, fmt.Sprintf("unknown go query %q", query))
		}
		l, err := lang.NewGo(q)
		return wrapLang(l, err, preset)
	default:
		return nil, configErr(preset, diag.ErrUnknownLanguage, fmt.Sprintf("unknown language %q", language))
	}
}

func wrapLang(l *lang.Language, err error, preset string) (scope.Scoper, error) {
	if err != nil {
		return nil, configErr(preset, diag.ErrInvalidQuery, err.Error())
	}
	return l, nil
}

var pythonQueries = map[string]lang.PremadePythonQuery{
	"docstrings":    lang.PythonDocStrings,
	"comments":      lang.PythonComments,
	"functionnames": lang.PythonFunctionNames,
	"functioncalls": lang.PythonFunctionCalls,
	"strings":       lang.PythonStrings,
	"imports":       lang.PythonImports,
}

var hclQueries = map[string]lang.PremadeHclQuery{
	"variables":     lang.HclVariables,
	"resourcenames": lang.HclResourceNames,
	"resourcetypes": lang.HclResourceTypes,
	"datanames":     lang.HclDataNames,
	"datasources":   lang.HclDataSources,
	"comments":      lang.HclComments,
	"strings":       lang.HclStrings,
}

var goQueries = map[string]lang.PremadeGoQuery{
	"comments":       lang.GoComments,
	"functionnames":  lang.GoFunctionNames,
	"functioncalls":  lang.GoFunctionCalls,
	"stringliterals": lang.GoStringLiterals,
	"structtags":     lang.GoStructTags,
	"imports":        lang.GoImports,
}

// buildAction resolves one action spec of the form "name" or "name:arg".
func buildAction(preset, spec string) (scope.Action, error) {
	name, arg, _ := strings.Cut(spec, ":")
	name = strings.ToLower(strings.TrimSpace(name))
	arg = strings.TrimSpace(arg)

	switch name {
	case "upper":
		return upper.New(), nil
	case "lower":
		return lower.New(), nil
	case "deletion":
		return deletion.New(), nil
	case "squeeze":
		if arg == "" {
			return squeeze.New(), nil
		}
		return squeeze.Restricted([]rune(arg)), nil
	case "replace":
		return replace.New(arg), nil
	case "titlecase":
		if arg == "" {
			arg = "en"
		}
		a, err := titlecase.New(arg)
		if err != nil {
			return nil, configErr(preset, diag.ErrInvalidLanguageTag, err.Error())
		}
		return a, nil
	case "normalize":
		form, ok := normalizeForms[strings.ToUpper(arg)]
		if !ok {
			return nil, configErr(preset, diag.ErrInvalidNormalizeForm, fmt.Sprintf("unknown normalization form %q", arg))
		}
		a, err := normalize.New(form)
		if err != nil {
			return nil, configErr(preset, diag.ErrInvalidNormalizeForm, err.Error())
		}
		return a, nil
	case "german":
		switch strings.ToLower(arg) {
		case "", "expand":
			return german.NewExpand(), nil
		case "contract":
			return german.NewContract(), nil
		default:
			return nil, configErr(preset, diag.ErrInvalidActionArgs, fmt.Sprintf("german action takes expand or contract, got %q", arg))
		}
	case "symbols":
		if strings.ToLower(arg) == "inverted" {
			return symbols.Inverted(symbols.Default), nil
		}
		return symbols.New(symbols.Default), nil
	default:
		return nil, configErr(preset, diag.ErrUnknownAction, fmt.Sprintf("unknown action %q", name))
	}
}

var normalizeForms = map[string]normalize.Form{
	"NFC":  normalize.NFC,
	"NFD":  normalize.NFD,
	"NFKC": normalize.NFKC,
	"NFKD": normalize.NFKD,
}

func configErr(preset, code, message string) error {
	loc := diag.SourceLocation{File: ".structedit.yaml"}
	d := diag.NewDiagnostic("config", code, fmt.Sprintf("preset %q: %s", preset, message), loc, diag.Error)
	return d
}
