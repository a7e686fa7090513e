package tree

// Payload is a value crossing a parent/child boundary. Clone must return a
// copy that shares no mutable state with the original; Call and Emit clone
// at every crossing, so the receiver always owns what it holds and later
// mutation by the sender is never visible to it.
type Payload interface {
	Clone() Payload
}

// Fields is a generic string field bag.
type Fields map[string]string

func (f Fields) Clone() Payload {
	if f == nil {
		return Fields(nil)
	}
	out := make(Fields, len(f))
	for k, v := range f {
		out[k] = v
	}
	return out
}

// Text is a single string payload (ids, button names, queries).
type Text string

func (t Text) Clone() Payload { return t }

// Flag is a single boolean payload (visibility pushes).
type Flag bool

func (f Flag) Clone() Payload { return f }

// Event is one upward notification: a name drawn from the emitting node's
// declared outbound set plus an optional payload.
type Event struct {
	Name    string
	Payload Payload
}

func clonePayload(p Payload) Payload {
	if p == nil {
		return nil
	}
	return p.Clone()
}
