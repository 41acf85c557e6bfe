package lang

import (
	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/python"
)

// PremadePythonQuery enumerates the built-in query catalog for Python.
type PremadePythonQuery int

const (
	// PythonDocStrings matches the leading string literal of a module,
	// class, or function body.
	PythonDocStrings PremadePythonQuery = iota
	// PythonComments matches comments.
	PythonComments
	// PythonFunctionNames matches function and method definition names.
	PythonFunctionNames
	// PythonFunctionCalls matches the callee name of a call expression.
	PythonFunctionCalls
	// PythonStrings matches string literals, excluding docstrings.
	PythonStrings
	// PythonImports matches imported module and symbol names.
	PythonImports
)

// Query implements CodeQuery.
func (q PremadePythonQuery) Query() string {
	switch q {
	case PythonDocStrings:
		return `
			[
				(module . (expression_statement (string) @docstring))
				(class_definition
					body: (block . (expression_statement (string) @docstring)))
				(function_definition
					body: (block . (expression_statement (string) @docstring)))
			]
		`
	case PythonComments:
		return "(comment) @comment"
	case PythonFunctionNames:
		return `
			[
				(function_definition name: (identifier) @name)
				(class_definition body: (block (function_definition name: (identifier) @name)))
			]
		`
	case PythonFunctionCalls:
		return `
			(call
				function: [
					(identifier) @name
					(attribute attribute: (identifier) @name)
				]
			)
		`
	case PythonStrings:
		return `
			(string) @string.literal
			(#not-match? @string.literal "^(\"\"\"|''')")
		`
	case PythonImports:
		return `
			[
				(import_statement
					name: (dotted_name) @name)
				(import_from_statement
					module_name: (dotted_name) @name)
				(import_from_statement
					name: (dotted_name) @name)
				(aliased_import
					name: (dotted_name) @name)
			]
		`
	default:
		return ""
	}
}

// NewPython builds a Language scoping Python source against one or more
// queries, premade or Custom.
func NewPython(queries ...CodeQuery) (*Language, error) {
	return New(pythonGrammar(), queries...)
}

func pythonGrammar() *sitter.Language {
	return python.GetLanguage()
}
