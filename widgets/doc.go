// Package widgets contains dumb render primitives for the host program.
//
// Allowed here:
// - stateless drawing/composition helpers (panels, button bar, status line)
//
// Not allowed here:
// - key handling, node access, or any tree state
package widgets
