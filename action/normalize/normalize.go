// Package normalize implements an Action applying Unicode normalization,
// via golang.org/x/text/unicode/norm.
package normalize

import (
	"fmt"

	"golang.org/x/text/unicode/norm"
)

// Form selects one of the four standard Unicode normalization forms.
type Form int

const (
	NFC Form = iota
	NFD
	NFKC
	NFKD
)

// Action normalizes its input fragment to a fixed Unicode normalization
// form.
type Action struct {
	form norm.Form
}

// New returns a normalize.Action for the given Form.
func New(f Form) (Action, error) {
	switch f {
	case NFC:
		return Action{form: norm.NFC}, nil
	case NFD:
		return Action{form: norm.NFD}, nil
	case NFKC:
		return Action{form: norm.NFKC}, nil
	case NFKD:
		return Action{form: norm.NFKD}, nil
	default:
		return Action{}, fmt.Errorf("normalize: unknown form %d", f)
	}
}

// Act implements scope.Action.
func (a Action) Act(in string) string {
	return a.form.String(in)
}
