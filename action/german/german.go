// Package german implements Actions for the two conventional ASCII
// transliterations of German umlauts and the sharp s: expansion (ä -> ae)
// and contraction (ae -> ä), applied in both directions a pipeline may need.
package german

import "strings"

var expansions = []struct{ umlaut, ascii string }{
	{"ä", "ae"}, {"Ä", "Ae"},
	{"ö", "oe"}, {"Ö", "Oe"},
	{"ü", "ue"}, {"Ü", "Ue"},
	{"ß", "ss"},
}

// Expand replaces German umlauts and ß with their conventional ASCII
// digraphs.
type Expand struct{}

// NewExpand returns a german.Expand action.
func NewExpand() Expand { return Expand{} }

// Act implements scope.Action.
func (Expand) Act(in string) string {
	out := in
	for _, e := range expansions {
		out = strings.ReplaceAll(out, e.umlaut, e.ascii)
	}
	return out
}

// Contract replaces the conventional ASCII digraphs with German umlauts and
// ß. Applied greedily, longest digraphs first, which for this fixed set
// means there is no overlap to order.
type Contract struct{}

// NewContract returns a german.Contract action.
func NewContract() Contract { return Contract{} }

// Act implements scope.Action.
func (Contract) Act(in string) string {
	out := in
	for _, e := range expansions {
		out = strings.ReplaceAll(out, e.ascii, e.umlaut)
	}
	return out
}
