package tree

import "fmt"

// StructuralError reports an attach or detach that would break the tree
// shape. Attach and Detach validate before mutating, so a returned
// StructuralError means the tree is exactly as it was.
type StructuralError struct {
	Op     string // "new", "attach" or "detach"
	Reason string
}

func (e *StructuralError) Error() string {
	return fmt.Sprintf("tree: %s: %s", e.Op, e.Reason)
}

// ContractError reports use of an operation or event a node never declared,
// or an emission attempted from inside a setter invocation. These surface
// programming mistakes during development; callers are not expected to
// recover from them, only to propagate them.
type ContractError struct {
	Node string
	Kind string // "inbound op", "outbound event" or "setter emission"
	Name string
}

func (e *ContractError) Error() string {
	return fmt.Sprintf("tree: node %q: undeclared %s %q", e.Node, e.Kind, e.Name)
}
