// Package symbols implements an Action substituting symbolic sequences
// (such as "!=" or "->") for their word equivalents, or the reverse, driven
// by a configurable table.
package symbols

import "strings"

// Mapping pairs a symbolic form with its word form. Order matters: longer
// or more specific symbols should precede shorter ones that are their
// prefix, since replacement is applied in table order.
type Mapping struct {
	Symbol string
	Word   string
}

// Default is the built-in table of common programming symbols, grounded on
// conventional "comment out the punctuation" style substitutions.
var Default = []Mapping{
	{"!=", " not equal to "},
	{"==", " equal to "},
	{"<=", " less than or equal to "},
	{">=", " greater than or equal to "},
	{"&&", " and "},
	{"||", " or "},
	{"->", " arrow "},
	{"=>", " fat arrow "},
}

// Action substitutes symbols for words, or words for symbols, depending on
// direction.
type Action struct {
	mapping []Mapping
	invert  bool
}

// New returns a symbols.Action applying mapping in symbol-to-word order.
func New(mapping []Mapping) Action {
	return Action{mapping: mapping}
}

// Inverted returns a symbols.Action applying mapping in word-to-symbol
// order.
func Inverted(mapping []Mapping) Action {
	return Action{mapping: mapping, invert: true}
}

// Act implements scope.Action.
func (a Action) Act(in string) string {
	out := in
	for _, m := range a.mapping {
		if a.invert {
			out = strings.ReplaceAll(out, m.Word, m.Symbol)
		} else {
			out = strings.ReplaceAll(out, m.Symbol, m.Word)
		}
	}
	return out
}
