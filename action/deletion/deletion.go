// Package deletion implements an Action that erases every fragment it acts
// on. A pipeline can select this the same way it selects any other named
// action, rather than requiring the caller to special-case deletion via
// scope.View.Delete.
package deletion

// Action erases its input fragment entirely.
type Action struct{}

// New returns a deletion.Action.
func New() Action { return Action{} }

// Act implements scope.Action.
func (Action) Act(string) string {
	return ""
}
