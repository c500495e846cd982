// Package widgets contains dumb render primitives.
//
// Allowed here:
// - stateless drawing/composition helpers (column chrome, stacks)
//
// Not allowed here:
// - key handling, drag state transitions, or acceptance policy
package widgets
