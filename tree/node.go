package tree

// Node is one component instance in the hierarchy. Concrete nodes embed
// Base and implement Invoke (and HandleEvent when they own children); the
// unexported base method keeps edge bookkeeping inside this package, so a
// parent link can only ever be set by Tree.Attach and cleared by
// Tree.Detach.
type Node interface {
	// ID is the node's stable identity within its tree.
	ID() string
	// Contract enumerates the node's declared operations and events.
	Contract() Contract
	// Invoke services one declared inbound operation. Route through Call;
	// payloads arrive already cloned and the operation name already
	// checked against the contract.
	Invoke(op string, payload Payload) (Payload, error)
	// HandleEvent receives one emission from a direct child. It runs to
	// completion, including any downward calls it makes, before the
	// child's Emit returns.
	HandleEvent(child string, ev Event) error

	base() *nodeBase
}

type nodeBase struct {
	id       string
	contract Contract
	parent   Node
	children []Node
	silent   int // setter invocations currently on the stack
}

// Base carries a node's identity, contract and edges. Embed it by value.
type Base struct {
	nodeBase
}

// NewBase declares a node's identity and contract. The contract is fixed
// for the node's lifetime.
func NewBase(id string, c Contract) Base {
	return Base{nodeBase{id: id, contract: c}}
}

func (b *Base) ID() string         { return b.id }
func (b *Base) Contract() Contract { return b.contract }

// Parent is the node's immediate parent, or nil while detached.
func (b *Base) Parent() Node { return b.parent }

// Children returns a fresh slice of the node's direct children in
// attachment order. Mutating it does not change the tree.
func (b *Base) Children() []Node {
	out := make([]Node, len(b.children))
	copy(out, b.children)
	return out
}

// HandleEvent is the leaf default: children are ignored because there are
// none. Parents override it.
func (b *Base) HandleEvent(child string, ev Event) error { return nil }

func (b *Base) base() *nodeBase { return &b.nodeBase }
