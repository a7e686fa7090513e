// Package recordui is the record list/form/buttons composition built on
// the tree contracts: a root controller that owns the record set and the
// current selection, and three children that only ever hold display
// projections pushed down to them.
//
// Allowed here:
// - the four concrete nodes, their contracts, and the root's event policy
// - the Store boundary to the persistence collaborator
//
// Not allowed here:
// - rendering, key decoding, or direct database access from child nodes
package recordui
