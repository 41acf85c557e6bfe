package lang

import (
	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/golang"
)

// PremadeGoQuery enumerates the built-in query catalog for Go.
type PremadeGoQuery int

const (
	// GoComments matches line and block comments.
	GoComments PremadeGoQuery = iota
	// GoFunctionNames matches function and method declaration names.
	GoFunctionNames
	// GoFunctionCalls matches the callee name of a call expression.
	GoFunctionCalls
	// GoStringLiterals matches interpreted and raw string literals.
	GoStringLiterals
	// GoStructTags matches struct field tag strings.
	GoStructTags
	// GoImports matches imported package paths.
	GoImports
)

// Query implements CodeQuery.
func (q PremadeGoQuery) Query() string {
	switch q {
	case GoComments:
		return "(comment) @comment"
	case GoFunctionNames:
		return `
			[
				(function_declaration name: (identifier) @name)
				(method_declaration name: (field_identifier) @name)
			]
		`
	case GoFunctionCalls:
		return `
			(call_expression
				function: [
					(identifier) @name
					(selector_expression field: (field_identifier) @name)
				]
			)
		`
	case GoStringLiterals:
		return `
			[
				(interpreted_string_literal) @string.literal
				(raw_string_literal) @string.literal
			]
		`
	case GoStructTags:
		return "(field_declaration tag: (raw_string_literal) @tag)"
	case GoImports:
		return `
			(import_spec path: (interpreted_string_literal) @path)
		`
	default:
		return ""
	}
}

// NewGo builds a Language scoping Go source against one or more queries,
// premade or Custom.
func NewGo(queries ...CodeQuery) (*Language, error) {
	return New(goGrammar(), queries...)
}

func goGrammar() *sitter.Language {
	return golang.GetLanguage()
}
