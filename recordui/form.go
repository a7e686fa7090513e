package recordui

import (
	"fmt"

	"github.com/treeform-dev/treeform/tree"
)

// Form holds the in-progress edit buffer for one record plus its own
// visibility. The buffer starts as whatever the root last pushed; edits
// accumulate locally until the root pulls them with get_data on save.
// There is no emission on edit, which is the point: the root asks when it
// cares.
type Form struct {
	tree.Base
	buffer  Record
	visible bool
	focus   string
}

func NewForm(id string) *Form {
	return &Form{
		Base: tree.NewBase(id, tree.Contract{
			Ops: []tree.Op{
				{Name: OpSetData, Kind: tree.Setter},
				{Name: OpSetVisible, Kind: tree.Setter},
				{Name: OpEdit, Kind: tree.Command},
				{Name: OpGetData, Kind: tree.Query},
				{Name: OpGetView, Kind: tree.Query},
			},
		}),
		focus: FieldName,
	}
}

func (f *Form) Invoke(op string, payload tree.Payload) (tree.Payload, error) {
	switch op {
	case OpSetData:
		rec, ok := payload.(Record)
		if !ok {
			return nil, fmt.Errorf("form: set_data: unexpected payload %T", payload)
		}
		f.buffer = rec
		return nil, nil
	case OpSetVisible:
		viz, ok := payload.(tree.Flag)
		if !ok {
			return nil, fmt.Errorf("form: set_visible: unexpected payload %T", payload)
		}
		f.visible = bool(viz)
		return nil, nil
	case OpEdit:
		edit, ok := payload.(tree.Fields)
		if !ok {
			return nil, fmt.Errorf("form: edit: unexpected payload %T", payload)
		}
		return nil, f.applyEdit(edit)
	case OpGetData:
		return f.buffer, nil
	case OpGetView:
		return FormView{Visible: f.visible, Name: f.buffer.Name, Surname: f.buffer.Surname, Focus: f.focus}, nil
	}
	return nil, fmt.Errorf("form: unhandled op %q", op)
}

func (f *Form) applyEdit(edit tree.Fields) error {
	if edit["focus"] == "next" {
		if f.focus == FieldName {
			f.focus = FieldSurname
		} else {
			f.focus = FieldName
		}
		return nil
	}
	field := edit["field"]
	if field == "" {
		field = f.focus
	}
	var target *string
	switch field {
	case FieldName:
		target = &f.buffer.Name
	case FieldSurname:
		target = &f.buffer.Surname
	default:
		return fmt.Errorf("form: edit: unknown field %q", field)
	}
	if text, ok := edit["text"]; ok {
		*target = text
	}
	if add, ok := edit["append"]; ok {
		*target += add
	}
	if edit["backspace"] == "1" && len(*target) > 0 {
		runes := []rune(*target)
		*target = string(runes[:len(runes)-1])
	}
	return nil
}
