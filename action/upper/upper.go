// Package upper implements an Action rendering text in uppercase.
package upper

import "strings"

// Action renders its input fragment in uppercase. German ß is expanded to
// the capital sharp s ẞ first: Go's strings.ToUpper leaves ß untouched,
// since it has no single-rune uppercase form.
type Action struct{}

// New returns an upper.Action.
func New() Action { return Action{} }

// Act implements scope.Action.
func (Action) Act(in string) string {
	return strings.ToUpper(strings.ReplaceAll(in, "ß", "ẞ"))
}
