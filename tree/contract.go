package tree

// OpKind classifies a declared inbound operation.
type OpKind int

const (
	// Setter pushes data down from the parent. Setters are event-silent:
	// an Emit while a setter invocation is on the stack fails with a
	// ContractError, so downward pushes can never loop back upward.
	Setter OpKind = iota
	// Command delivers an action (typically raw user input forwarded by
	// the host). Commands may emit.
	Command
	// Query returns a copy of requested state to the caller, as the pull
	// alternative to event emission. The result is cloned on the way out.
	Query
)

func (k OpKind) String() string {
	switch k {
	case Setter:
		return "setter"
	case Command:
		return "command"
	case Query:
		return "query"
	}
	return "unknown"
}

// Op is one declared inbound operation.
type Op struct {
	Name string
	Kind OpKind
}

// Contract is the fixed, enumerable surface of a node: the inbound
// operations it services and the outbound events it may emit. A node's
// contract is set at construction and never changes.
type Contract struct {
	Ops    []Op
	Events []string
}

func (c Contract) op(name string) (Op, bool) {
	for _, op := range c.Ops {
		if op.Name == name {
			return op, true
		}
	}
	return Op{}, false
}

func (c Contract) emits(name string) bool {
	for _, ev := range c.Events {
		if ev == name {
			return true
		}
	}
	return false
}
