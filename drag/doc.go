// Package drag implements the session state machine behind Dragboard's
// drag-and-drop. It is a pure reducer: feed it the current session, one
// semantic interaction event, and an acceptance policy, and it returns
// the next session plus at most one reorder/transfer decision per
// completed gesture. The package never holds references to the item
// collections themselves; callers own those and apply the returned
// decisions, typically via Reorder.
package drag
