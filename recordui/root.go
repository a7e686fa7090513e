package recordui

import (
	"context"
	"fmt"
	"strconv"

	"github.com/google/uuid"

	"github.com/treeform-dev/treeform/tree"
)

// Root is the master controller and the sole owner of the record set and
// the current selection. It constructs its three children, pushes state
// down to them, and reacts to their emissions; the children never talk to
// each other or to the store. If a shell ever adopts the root into a
// larger tree it receives status events; standalone, those emissions are
// dropped by the detached-emit rule.
type Root struct {
	tree.Base
	ctx   context.Context
	store Store

	list    *List
	form    *Form
	buttons *Buttons

	records  Records
	selected string
}

func NewRoot(ctx context.Context, store Store) *Root {
	return &Root{
		Base: tree.NewBase("root", tree.Contract{
			Ops: []tree.Op{
				{Name: OpLoad, Kind: tree.Command},
				{Name: OpGetState, Kind: tree.Query},
			},
			Events: []string{EvStatus},
		}),
		ctx:     ctx,
		store:   store,
		list:    NewList("list"),
		form:    NewForm("form"),
		buttons: NewButtons("buttons"),
	}
}

// BuildTree roots r and attaches its children in display order.
func (r *Root) BuildTree() (*tree.Tree, error) {
	t, err := tree.New(r)
	if err != nil {
		return nil, err
	}
	for _, child := range []tree.Node{r.list, r.form, r.buttons} {
		if err := t.Attach(r, child); err != nil {
			return nil, err
		}
	}
	return t, nil
}

// The host delivers raw input to leaf nodes directly, so it needs them.

func (r *Root) List() *List       { return r.list }
func (r *Root) Form() *Form       { return r.form }
func (r *Root) Buttons() *Buttons { return r.buttons }

func (r *Root) Invoke(op string, payload tree.Payload) (tree.Payload, error) {
	switch op {
	case OpLoad:
		return nil, r.load()
	case OpGetState:
		return tree.Fields{
			"selected": r.selected,
			"count":    strconv.Itoa(len(r.records)),
		}, nil
	}
	return nil, fmt.Errorf("root: unhandled op %q", op)
}

// load pulls the full record set from the store. On store failure nothing
// changes: the old set and selection stay as they were.
func (r *Root) load() error {
	recs, err := r.store.List(r.ctx)
	if err != nil {
		return fmt.Errorf("load records: %w", err)
	}
	r.records = recs
	r.selected = ""
	if len(recs) > 0 {
		r.selected = recs[0].ID
	}
	if err := r.pushAll(); err != nil {
		return err
	}
	return r.statusf("loaded %d records", len(recs))
}

func (r *Root) HandleEvent(child string, ev tree.Event) error {
	switch ev.Name {
	case EvSelectionChanged:
		return r.onSelectionChanged(ev)
	case EvNew:
		return r.onNew()
	case EvSave:
		return r.onSave()
	case EvDelete:
		return r.onDelete()
	}
	return fmt.Errorf("root: unhandled event %q from %q", ev.Name, child)
}

func (r *Root) onSelectionChanged(ev tree.Event) error {
	id, ok := ev.Payload.(tree.Text)
	if !ok {
		return fmt.Errorf("root: selection_changed: unexpected payload %T", ev.Payload)
	}
	if id == "" {
		r.selected = ""
		return nil
	}
	idx := r.records.index(string(id))
	if idx < 0 {
		return fmt.Errorf("root: selection %q not in record set", id)
	}
	r.selected = string(id)
	return r.pushDetail(r.records[idx])
}

func (r *Root) onNew() error {
	rec := Record{ID: uuid.NewString()}
	if err := r.store.Upsert(r.ctx, rec); err != nil {
		return fmt.Errorf("create record: %w", err)
	}
	r.records = append(r.records, rec)
	r.selected = rec.ID
	if err := r.pushAll(); err != nil {
		return err
	}
	return r.statusf("created %s", rec.ID)
}

// onSave pulls the edited fields from the form on demand; the form never
// announces edits on its own.
func (r *Root) onSave() error {
	if r.selected == "" {
		return fmt.Errorf("root: save with no selection")
	}
	out, err := tree.Call(r.form, OpGetData, nil)
	if err != nil {
		return err
	}
	rec, ok := out.(Record)
	if !ok {
		return fmt.Errorf("root: get_data: unexpected payload %T", out)
	}
	if rec.ID == "" {
		rec.ID = r.selected
	}
	idx := r.records.index(rec.ID)
	if idx < 0 {
		return fmt.Errorf("root: save: record %q not in record set", rec.ID)
	}
	if err := r.store.Upsert(r.ctx, rec); err != nil {
		return fmt.Errorf("save record: %w", err)
	}
	r.records[idx] = rec
	r.selected = rec.ID
	// Re-push the list so its stale display copy catches up.
	if err := r.pushList(); err != nil {
		return err
	}
	return r.statusf("saved %s", rec.ID)
}

func (r *Root) onDelete() error {
	if r.selected == "" {
		return fmt.Errorf("root: delete with no selection")
	}
	idx := r.records.index(r.selected)
	if idx < 0 {
		return fmt.Errorf("root: delete: record %q not in record set", r.selected)
	}
	if err := r.store.Delete(r.ctx, r.selected); err != nil {
		return fmt.Errorf("delete record: %w", err)
	}
	deleted := r.selected
	r.records = append(r.records[:idx], r.records[idx+1:]...)
	r.selected = ""
	if len(r.records) > 0 {
		r.selected = r.records[0].ID
	}
	if err := r.pushAll(); err != nil {
		return err
	}
	return r.statusf("deleted %s", deleted)
}

// pushAll refreshes every child from the authoritative state.
func (r *Root) pushAll() error {
	if err := r.pushList(); err != nil {
		return err
	}
	if r.selected == "" {
		// Empty set: nothing to edit, nothing to save or delete.
		if _, err := tree.Call(r.form, OpSetVisible, tree.Flag(false)); err != nil {
			return err
		}
		_, err := tree.Call(r.buttons, OpSetVisible, tree.Flag(false))
		return err
	}
	return r.pushDetail(r.records[r.records.index(r.selected)])
}

func (r *Root) pushList() error {
	if _, err := tree.Call(r.list, OpSetData, r.records); err != nil {
		return err
	}
	_, err := tree.Call(r.list, OpSetUUID, tree.Text(r.selected))
	return err
}

func (r *Root) pushDetail(rec Record) error {
	if _, err := tree.Call(r.form, OpSetData, rec); err != nil {
		return err
	}
	if _, err := tree.Call(r.form, OpSetVisible, tree.Flag(true)); err != nil {
		return err
	}
	_, err := tree.Call(r.buttons, OpSetVisible, tree.Flag(true))
	return err
}

func (r *Root) statusf(format string, args ...any) error {
	return tree.Emit(r, tree.Event{Name: EvStatus, Payload: tree.Text(fmt.Sprintf(format, args...))})
}
