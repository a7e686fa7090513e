package recordui

import (
	"fmt"

	"github.com/treeform-dev/treeform/tree"
)

// Buttons exposes the three CRUD actions. Its only state is whether save
// and delete are shown; new is always available. A press becomes the
// outbound event of the same name, and pressing a hidden button is simply
// ignored, mirroring a control the user cannot reach.
type Buttons struct {
	tree.Base
	visible bool
}

func NewButtons(id string) *Buttons {
	return &Buttons{
		Base: tree.NewBase(id, tree.Contract{
			Ops: []tree.Op{
				{Name: OpSetVisible, Kind: tree.Setter},
				{Name: OpPress, Kind: tree.Command},
				{Name: OpGetView, Kind: tree.Query},
			},
			Events: []string{EvNew, EvSave, EvDelete},
		}),
	}
}

func (b *Buttons) Invoke(op string, payload tree.Payload) (tree.Payload, error) {
	switch op {
	case OpSetVisible:
		viz, ok := payload.(tree.Flag)
		if !ok {
			return nil, fmt.Errorf("buttons: set_visible: unexpected payload %T", payload)
		}
		b.visible = bool(viz)
		return nil, nil
	case OpPress:
		name, ok := payload.(tree.Text)
		if !ok {
			return nil, fmt.Errorf("buttons: press: unexpected payload %T", payload)
		}
		return nil, b.press(string(name))
	case OpGetView:
		return b.view(), nil
	}
	return nil, fmt.Errorf("buttons: unhandled op %q", op)
}

func (b *Buttons) press(name string) error {
	switch name {
	case ButtonNew:
		return tree.Emit(b, tree.Event{Name: EvNew})
	case ButtonSave, ButtonDelete:
		if !b.visible {
			return nil
		}
		return tree.Emit(b, tree.Event{Name: name})
	}
	return fmt.Errorf("buttons: press: unknown button %q", name)
}

func (b *Buttons) view() ButtonsView {
	labels := []string{ButtonNew}
	if b.visible {
		labels = append(labels, ButtonSave, ButtonDelete)
	}
	return ButtonsView{Visible: b.visible, Labels: labels}
}
