// Package tree contains the component-hierarchy contracts and routing.
//
// Allowed here:
// - node identity, declared operation/event contracts, parent/child edges
// - tree assembly and the attach/detach invariants
// - the Call/Emit boundary crossings and their copy discipline
//
// Not allowed here:
// - rendering, key handling, persistence, or any concrete component logic
package tree
