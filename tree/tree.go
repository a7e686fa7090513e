package tree

// Tree composes nodes into a single rooted, acyclic, connected hierarchy
// and owns the attach/detach bookkeeping that keeps it that way. Every
// mutation validates completely before touching an edge, so a failed
// Attach or Detach leaves the tree untouched.
type Tree struct {
	root  Node
	nodes map[string]Node
}

// New roots a tree at root. The root must be detached and keeps no parent
// for its lifetime in this tree; events it emits are dropped unless a host
// shell later adopts it into a larger tree.
func New(root Node) (*Tree, error) {
	if root == nil {
		return nil, &StructuralError{Op: "new", Reason: "nil root"}
	}
	if root.base().parent != nil {
		return nil, &StructuralError{Op: "new", Reason: "root already has a parent"}
	}
	return &Tree{
		root:  root,
		nodes: map[string]Node{root.ID(): root},
	}, nil
}

// Root returns the tree's root node.
func (t *Tree) Root() Node { return t.root }

// Len is the number of member nodes, root included.
func (t *Tree) Len() int { return len(t.nodes) }

// Lookup finds a member node by id. Diagnostic use only: component logic
// must reach nodes through parent/child edges, never by id.
func (t *Tree) Lookup(id string) (Node, bool) {
	n, ok := t.nodes[id]
	return n, ok
}

// Attach makes child a new last child of parent. It fails if parent is not
// a member, if child already has a parent, or if child is already a member
// (which covers self-attachment and every possible cycle: a member child
// is either parent itself or reachable from the root some other way).
func (t *Tree) Attach(parent, child Node) error {
	if parent == nil || child == nil {
		return &StructuralError{Op: "attach", Reason: "nil node"}
	}
	if member, ok := t.nodes[parent.ID()]; !ok || member != parent {
		return &StructuralError{Op: "attach", Reason: "parent " + parent.ID() + " is not a member of this tree"}
	}
	if child.base().parent != nil {
		return &StructuralError{Op: "attach", Reason: "child " + child.ID() + " already has a parent"}
	}
	if _, ok := t.nodes[child.ID()]; ok {
		return &StructuralError{Op: "attach", Reason: "node " + child.ID() + " is already a member of this tree"}
	}
	child.base().parent = parent
	pb := parent.base()
	pb.children = append(pb.children, child)
	t.nodes[child.ID()] = child
	return nil
}

// Detach releases child (and its whole subtree) from parent. The detached
// child loses its parent link, so in-flight or subsequent emissions from it
// become no-ops; this is what makes teardown ordering safe.
func (t *Tree) Detach(parent, child Node) error {
	if parent == nil || child == nil {
		return &StructuralError{Op: "detach", Reason: "nil node"}
	}
	if member, ok := t.nodes[parent.ID()]; !ok || member != parent {
		return &StructuralError{Op: "detach", Reason: "parent " + parent.ID() + " is not a member of this tree"}
	}
	if child.base().parent != parent {
		return &StructuralError{Op: "detach", Reason: "node " + child.ID() + " is not a child of " + parent.ID()}
	}
	pb := parent.base()
	idx := -1
	for i, c := range pb.children {
		if c == child {
			idx = i
			break
		}
	}
	if idx < 0 {
		return &StructuralError{Op: "detach", Reason: "node " + child.ID() + " missing from parent child list"}
	}
	pb.children = append(pb.children[:idx], pb.children[idx+1:]...)
	child.base().parent = nil
	walk(child, 0, func(_ int, n Node) bool {
		delete(t.nodes, n.ID())
		return true
	})
	return nil
}

// Walk enumerates the tree depth-first, preorder. fn returning false skips
// the node's subtree. Walk exists for teardown and diagnostics; component
// logic must never use it to reach past a direct parent or child.
func (t *Tree) Walk(fn func(depth int, n Node) bool) {
	walk(t.root, 0, fn)
}

func walk(n Node, depth int, fn func(int, Node) bool) {
	if !fn(depth, n) {
		return
	}
	for _, c := range n.base().children {
		walk(c, depth+1, fn)
	}
}
