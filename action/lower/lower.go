// Package lower implements an Action rendering text in lowercase.
package lower

import "strings"

// Action renders its input fragment in lowercase.
type Action struct{}

// New returns a lower.Action.
func New() Action { return Action{} }

// Act implements scope.Action.
func (Action) Act(in string) string {
	return strings.ToLower(in)
}
