package lang

import (
	sitter "github.com/smacker/go-tree-sitter"
	"github.com/smacker/go-tree-sitter/hcl"
)

// PremadeHclQuery enumerates the built-in query catalog for HCL.
type PremadeHclQuery int

const (
	// HclVariables matches `variable` block declarations and `var.x` usages.
	HclVariables PremadeHclQuery = iota
	// HclResourceNames matches the second string of a resource block, e.g.
	// in resource "a" "b" only "b" is matched, plus its usages.
	HclResourceNames
	// HclResourceTypes matches the first string of a resource block, e.g.
	// in resource "a" "b" only "a" is matched, plus its usages.
	HclResourceTypes
	// HclDataNames matches the second string of a data block, plus usages.
	HclDataNames
	// HclDataSources matches the first string of a data block, plus usages.
	HclDataSources
	// HclComments matches comments.
	HclComments
	// HclStrings matches literal and template strings, excluding block
	// names, types and interpolation parts.
	HclStrings
)

// Query implements CodeQuery.
func (q PremadeHclQuery) Query() string {
	switch q {
	case HclVariables:
		return `
			[
				(block
					(identifier) @_id.declaration
					(string_lit) @name.declaration
					(#match? @_id.declaration "variable")
				)
				(
					(variable_expr
						(identifier) @_id.usage
						(#match? @_id.usage "var")
					)
					.
					(get_attr
						(identifier) @name.usage
					)
				)
			]
		`
	case HclResourceNames:
		return `
			[
				(block
					(identifier) @_id.declaration
					(string_lit)
					(string_lit) @name.declaration
					(#match? @_id.declaration "resource")
				)
				(
					(variable_expr
						(identifier) @_id.usage
						(#not-any-of? @_id.usage
							"var"
							"data"
							"module"
							"local"
						)
					)
					.
					(get_attr
						(identifier) @name.usage
					)
				)
			]
		`
	case HclResourceTypes:
		return `
			[
				(block
					(identifier) @_id.declaration
					(string_lit) @name.type
					(string_lit)
					(#match? @_id.declaration "resource")
				)
				(
					(variable_expr
						.
						(identifier) @name.usage
						(#not-any-of? @name.usage
							"var"
							"data"
							"module"
							"local"
						)
					)
					.
					(get_attr
						(identifier)
					)
				)
			]
		`
	case HclDataNames:
		return `
			[
				(block
					(identifier) @_id.declaration
					(string_lit)
					(string_lit) @name.declaration
					(#match? @_id.declaration "data")
				)
				(
					(variable_expr
						(identifier) @_id.usage
						(#match? @_id.usage "data")
					)
					.
					(get_attr
						(identifier)
					)
					.
					(get_attr
						(identifier) @name.usage
					)
				)
			]
		`
	case HclDataSources:
		return `
			[
				(block
					(identifier) @_id.declaration
					(string_lit) @name.provider
					(string_lit)
					(#match? @_id.declaration "data")
				)
				(
					(variable_expr
						(identifier) @_id.usage
						(#match? @_id.usage "data")
					)
					.
					(get_attr
						(identifier) @name.provider
					)
					.
					(get_attr
						(identifier)
					)
				)
			]
		`
	case HclComments:
		return "(comment) @comment"
	case HclStrings:
		return `
			[
				(literal_value (string_lit) @string.literal)
				(quoted_template
					(template_literal) @string.template_literal
				)
				(heredoc_template
					(template_literal) @string.heredoc_literal
				)
			]
		`
	default:
		return ""
	}
}

// NewHcl builds a Language scoping HCL source against one or more queries,
// premade or Custom.
func NewHcl(queries ...CodeQuery) (*Language, error) {
	return New(hclGrammar(), queries...)
}

func hclGrammar() *sitter.Language {
	return hcl.GetLanguage()
}
