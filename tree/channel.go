package tree

// Call routes one inbound operation into child. It is the only sanctioned
// downward path: the operation must appear in the child's contract, the
// payload is cloned across the boundary, and setter invocations arm a
// guard that turns any emission during the call into a ContractError.
// Query results are cloned on the way back out for the same reason.
func Call(child Node, op string, payload Payload) (Payload, error) {
	if child == nil {
		return nil, &ContractError{Node: "<nil>", Kind: "inbound op", Name: op}
	}
	decl, ok := child.Contract().op(op)
	if !ok {
		return nil, &ContractError{Node: child.ID(), Kind: "inbound op", Name: op}
	}
	b := child.base()
	if decl.Kind == Setter {
		b.silent++
		defer func() { b.silent-- }()
	}
	out, err := child.Invoke(op, clonePayload(payload))
	if err != nil {
		return nil, err
	}
	return clonePayload(out), nil
}

// Emit delivers ev to the node's immediate parent, synchronously: the
// parent's HandleEvent, including every downward Call it makes in turn,
// completes before Emit returns, so ordering within one interaction is
// strict call/return nesting. Re-entrancy (a handler causing the same node
// to emit again before this Emit returns) is the emitting node's problem
// to guard against, not the channel's.
//
// Emitting while detached is a deliberate no-op so teardown order never
// matters. The parent link is read once on entry: a detach performed
// inside the handler affects later emissions only, this delivery runs to
// completion.
func Emit(from Node, ev Event) error {
	b := from.base()
	if !from.Contract().emits(ev.Name) {
		return &ContractError{Node: from.ID(), Kind: "outbound event", Name: ev.Name}
	}
	if b.silent > 0 {
		return &ContractError{Node: from.ID(), Kind: "setter emission", Name: ev.Name}
	}
	parent := b.parent
	if parent == nil {
		return nil
	}
	return parent.HandleEvent(from.ID(), Event{Name: ev.Name, Payload: clonePayload(ev.Payload)})
}
