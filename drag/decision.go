package drag

// Decision tells the caller how to mutate its collections once a
// gesture completes. A nil Decision means leave everything as it is.
// Each gesture yields at most one Decision, produced exactly at the
// transition back to idle.
type Decision interface{ isDecision() }

// SameContainer moves one item to a new position within a single
// container. Indices use post-removal ("move") semantics; apply with
// Reorder.
type SameContainer struct {
	Container string
	From      int
	To        int
}

// CrossContainer moves one item out of one container and into another:
// remove at FromIndex, insert at ToIndex.
type CrossContainer struct {
	FromContainer string
	FromIndex     int
	ToContainer   string
	ToIndex       int
}

func (SameContainer) isDecision()  {}
func (CrossContainer) isDecision() {}
