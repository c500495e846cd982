package drag

// Reorder moves the element at from to position to, shifting every
// element strictly between them by one slot (a move, not a swap). The
// move happens in place and the input slice is returned. from == to and
// out-of-range indices are benign no-ops: a gesture can outlive the
// collection it started on, so stale indices degrade to the identity
// rather than a fault.
func Reorder[T any](seq []T, from, to int) []T {
	if from == to || from < 0 || to < 0 || from >= len(seq) || to >= len(seq) {
		return seq
	}
	moved := seq[from]
	if from < to {
		copy(seq[from:to], seq[from+1:to+1])
	} else {
		copy(seq[to+1:from+1], seq[to:from])
	}
	seq[to] = moved
	return seq
}
