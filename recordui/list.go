package recordui

import (
	"fmt"

	"github.com/treeform-dev/treeform/tree"
)

// List shows the pushed record set and tracks the active row. It owns its
// display projection (rows, cursor, filter) and nothing else: the
// authoritative record set and selection live in the root, and the copies
// here go stale the moment the root changes without re-pushing.
type List struct {
	tree.Base
	rows    Records
	visible []int // indexes into rows surviving the filter, ranked
	cursor  int   // position within visible
	active  string
	query   string
}

func NewList(id string) *List {
	return &List{
		Base: tree.NewBase(id, tree.Contract{
			Ops: []tree.Op{
				{Name: OpSetData, Kind: tree.Setter},
				{Name: OpSetUUID, Kind: tree.Setter},
				{Name: OpCursor, Kind: tree.Command},
				{Name: OpFilter, Kind: tree.Command},
				{Name: OpGetView, Kind: tree.Query},
			},
			Events: []string{EvSelectionChanged},
		}),
	}
}

func (l *List) Invoke(op string, payload tree.Payload) (tree.Payload, error) {
	switch op {
	case OpSetData:
		rs, ok := payload.(Records)
		if !ok {
			return nil, fmt.Errorf("list: set_data: unexpected payload %T", payload)
		}
		l.rows = rs
		l.refilter()
		return nil, nil
	case OpSetUUID:
		id, ok := payload.(tree.Text)
		if !ok {
			return nil, fmt.Errorf("list: set_uuid: unexpected payload %T", payload)
		}
		l.active = string(id)
		l.moveCursorToActive()
		return nil, nil
	case OpCursor:
		dir, ok := payload.(tree.Text)
		if !ok {
			return nil, fmt.Errorf("list: cursor: unexpected payload %T", payload)
		}
		return nil, l.moveCursor(string(dir))
	case OpFilter:
		q, ok := payload.(tree.Text)
		if !ok {
			return nil, fmt.Errorf("list: filter: unexpected payload %T", payload)
		}
		l.query = string(q)
		l.refilter()
		return nil, nil
	case OpGetView:
		return l.view(), nil
	}
	return nil, fmt.Errorf("list: unhandled op %q", op)
}

// moveCursor shifts the cursor within the visible rows and emits the new
// row's id. This is the one user-triggered path out of the list.
func (l *List) moveCursor(dir string) error {
	if len(l.visible) == 0 {
		return nil
	}
	next := l.cursor
	switch dir {
	case CursorUp:
		next--
	case CursorDown:
		next++
	default:
		return fmt.Errorf("list: cursor: unknown direction %q", dir)
	}
	if next < 0 || next >= len(l.visible) {
		return nil
	}
	if next == l.cursor {
		return nil
	}
	l.cursor = next
	l.active = l.rows[l.visible[next]].ID
	return tree.Emit(l, tree.Event{Name: EvSelectionChanged, Payload: tree.Text(l.active)})
}

func (l *List) refilter() {
	l.visible = rankVisible(l.rows, l.query)
	l.moveCursorToActive()
}

func (l *List) moveCursorToActive() {
	for pos, idx := range l.visible {
		if l.rows[idx].ID == l.active {
			l.cursor = pos
			return
		}
	}
	l.cursor = 0
}

func (l *List) view() ListView {
	rows := make([]string, len(l.visible))
	for i, idx := range l.visible {
		rows[i] = l.rows[idx].Label()
	}
	return ListView{Rows: rows, Cursor: l.cursor, Query: l.query}
}
