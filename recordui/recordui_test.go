package recordui

import (
	"context"
	"errors"
	"testing"

	"github.com/treeform-dev/treeform/tree"
)

type fakeStore struct {
	recs       Records
	failList   bool
	failUpsert bool
	failDelete bool
	upserts    []Record
	deletes    []string
}

func (s *fakeStore) List(ctx context.Context) (Records, error) {
	if s.failList {
		return nil, errors.New("store offline")
	}
	return s.recs.Clone().(Records), nil
}

func (s *fakeStore) Upsert(ctx context.Context, rec Record) error {
	if s.failUpsert {
		return errors.New("store offline")
	}
	s.upserts = append(s.upserts, rec)
	if idx := s.recs.index(rec.ID); idx >= 0 {
		s.recs[idx] = rec
	} else {
		s.recs = append(s.recs, rec)
	}
	return nil
}

func (s *fakeStore) Delete(ctx context.Context, id string) error {
	if s.failDelete {
		return errors.New("store offline")
	}
	s.deletes = append(s.deletes, id)
	if idx := s.recs.index(id); idx >= 0 {
		s.recs = append(s.recs[:idx], s.recs[idx+1:]...)
	}
	return nil
}

func loadedRoot(t *testing.T, recs Records) (*Root, *fakeStore) {
	t.Helper()
	store := &fakeStore{recs: recs}
	root := NewRoot(context.Background(), store)
	if _, err := root.BuildTree(); err != nil {
		t.Fatalf("build tree: %v", err)
	}
	if _, err := tree.Call(root, OpLoad, nil); err != nil {
		t.Fatalf("load: %v", err)
	}
	return root, store
}

func listView(t *testing.T, root *Root) ListView {
	t.Helper()
	out, err := tree.Call(root.List(), OpGetView, nil)
	if err != nil {
		t.Fatalf("list get_view: %v", err)
	}
	return out.(ListView)
}

func formView(t *testing.T, root *Root) FormView {
	t.Helper()
	out, err := tree.Call(root.Form(), OpGetView, nil)
	if err != nil {
		t.Fatalf("form get_view: %v", err)
	}
	return out.(FormView)
}

func buttonsView(t *testing.T, root *Root) ButtonsView {
	t.Helper()
	out, err := tree.Call(root.Buttons(), OpGetView, nil)
	if err != nil {
		t.Fatalf("buttons get_view: %v", err)
	}
	return out.(ButtonsView)
}

func rootState(t *testing.T, root *Root) tree.Fields {
	t.Helper()
	out, err := tree.Call(root, OpGetState, nil)
	if err != nil {
		t.Fatalf("get_state: %v", err)
	}
	return out.(tree.Fields)
}

func twoRecords() Records {
	return Records{
		{ID: "u1", Name: "Ann", Surname: "Mouse"},
		{ID: "u2", Name: "Bob", Surname: "Builder"},
	}
}

func TestBuildTreeHasRootAndThreeChildren(t *testing.T) {
	root := NewRoot(context.Background(), &fakeStore{})
	tr, err := root.BuildTree()
	if err != nil {
		t.Fatalf("build tree: %v", err)
	}
	if tr.Len() != 4 {
		t.Fatalf("expected 4 nodes, got %d", tr.Len())
	}
	if got := len(root.Children()); got != 3 {
		t.Fatalf("expected 3 children on root, got %d", got)
	}
}

func TestLoadPushesRecordsAndSelectsFirst(t *testing.T) {
	root, _ := loadedRoot(t, twoRecords())
	lv := listView(t, root)
	if len(lv.Rows) != 2 || lv.Rows[0] != "Ann Mouse" {
		t.Fatalf("list rows %v", lv.Rows)
	}
	if lv.Cursor != 0 {
		t.Fatalf("cursor %d, want 0", lv.Cursor)
	}
	st := rootState(t, root)
	if st["selected"] != "u1" || st["count"] != "2" {
		t.Fatalf("root state %v", st)
	}
	if fv := formView(t, root); !fv.Visible || fv.Name != "Ann" {
		t.Fatalf("form view %+v", fv)
	}
}

func TestSelectionChangeFansOutToFormAndButtons(t *testing.T) {
	root, _ := loadedRoot(t, twoRecords())
	if _, err := tree.Call(root.List(), OpCursor, tree.Text(CursorDown)); err != nil {
		t.Fatalf("cursor down: %v", err)
	}
	st := rootState(t, root)
	if st["selected"] != "u2" {
		t.Fatalf("selection %q, want u2", st["selected"])
	}
	fv := formView(t, root)
	if !fv.Visible || fv.Name != "Bob" || fv.Surname != "Builder" {
		t.Fatalf("form did not receive pushed detail: %+v", fv)
	}
	if bv := buttonsView(t, root); !bv.Visible {
		t.Fatalf("buttons not made visible on selection")
	}
}

func TestSavePullsEditedFieldsAndUpdatesRoot(t *testing.T) {
	root, store := loadedRoot(t, twoRecords())
	if _, err := tree.Call(root.Form(), OpEdit, tree.Fields{"field": FieldName, "text": "Annie"}); err != nil {
		t.Fatalf("edit: %v", err)
	}
	// The edit lives only in the form buffer until the root pulls it.
	if root.records[0].Name != "Ann" {
		t.Fatalf("edit leaked into root before save")
	}
	if lv := listView(t, root); lv.Rows[0] != "Ann Mouse" {
		t.Fatalf("edit leaked into list before save")
	}
	if _, err := tree.Call(root.Buttons(), OpPress, tree.Text(ButtonSave)); err != nil {
		t.Fatalf("press save: %v", err)
	}
	if root.records[0].Name != "Annie" {
		t.Fatalf("root record set not updated, got %+v", root.records[0])
	}
	if len(store.upserts) != 1 || store.upserts[0].ID != "u1" || store.upserts[0].Name != "Annie" {
		t.Fatalf("store upserts %+v", store.upserts)
	}
	if lv := listView(t, root); lv.Rows[0] != "Annie Mouse" {
		t.Fatalf("list not re-pushed after save: %v", lv.Rows)
	}
}

func TestListCopyIsolatedFromRootMutation(t *testing.T) {
	root, _ := loadedRoot(t, twoRecords())
	root.records[0].Name = "Changed"
	if lv := listView(t, root); lv.Rows[0] != "Ann Mouse" {
		t.Fatalf("list shares the root's record set: %v", lv.Rows)
	}
}

func TestNewCreatesRecordAndShowsDetail(t *testing.T) {
	root, store := loadedRoot(t, nil)
	if fv := formView(t, root); fv.Visible {
		t.Fatalf("form visible with empty record set")
	}
	if _, err := tree.Call(root.Buttons(), OpPress, tree.Text(ButtonNew)); err != nil {
		t.Fatalf("press new: %v", err)
	}
	st := rootState(t, root)
	if st["count"] != "1" || st["selected"] == "" {
		t.Fatalf("root state after new: %v", st)
	}
	if len(store.upserts) != 1 {
		t.Fatalf("new record not persisted")
	}
	if fv := formView(t, root); !fv.Visible {
		t.Fatalf("form hidden after new")
	}
	if lv := listView(t, root); len(lv.Rows) != 1 || lv.Rows[0] != "(unnamed)" {
		t.Fatalf("list rows after new: %v", lv.Rows)
	}
}

func TestDeleteLastRecordHidesDetail(t *testing.T) {
	root, store := loadedRoot(t, Records{{ID: "u1", Name: "Ann", Surname: "Mouse"}})
	if _, err := tree.Call(root.Buttons(), OpPress, tree.Text(ButtonDelete)); err != nil {
		t.Fatalf("press delete: %v", err)
	}
	if len(store.deletes) != 1 || store.deletes[0] != "u1" {
		t.Fatalf("store deletes %v", store.deletes)
	}
	st := rootState(t, root)
	if st["count"] != "0" || st["selected"] != "" {
		t.Fatalf("root state after delete: %v", st)
	}
	if fv := formView(t, root); fv.Visible {
		t.Fatalf("form still visible after last delete")
	}
	bv := buttonsView(t, root)
	if bv.Visible || len(bv.Labels) != 1 || bv.Labels[0] != ButtonNew {
		t.Fatalf("buttons view after last delete: %+v", bv)
	}
}

func TestDeleteSelectsFirstRemaining(t *testing.T) {
	root, _ := loadedRoot(t, twoRecords())
	if _, err := tree.Call(root.Buttons(), OpPress, tree.Text(ButtonDelete)); err != nil {
		t.Fatalf("press delete: %v", err)
	}
	st := rootState(t, root)
	if st["selected"] != "u2" || st["count"] != "1" {
		t.Fatalf("root state after delete: %v", st)
	}
	if fv := formView(t, root); fv.Name != "Bob" {
		t.Fatalf("form not re-pushed after delete: %+v", fv)
	}
}

func TestLoadFailureLeavesStateUnchanged(t *testing.T) {
	root, store := loadedRoot(t, twoRecords())
	store.failList = true
	_, err := tree.Call(root, OpLoad, nil)
	if err == nil {
		t.Fatalf("expected load failure")
	}
	st := rootState(t, root)
	if st["selected"] != "u1" || st["count"] != "2" {
		t.Fatalf("failed load changed root state: %v", st)
	}
	if lv := listView(t, root); len(lv.Rows) != 2 {
		t.Fatalf("failed load changed list: %v", lv.Rows)
	}
}

func TestSaveStoreFailureKeepsCache(t *testing.T) {
	root, _ := loadedRoot(t, twoRecords())
	if _, err := tree.Call(root.Form(), OpEdit, tree.Fields{"field": FieldName, "text": "Annie"}); err != nil {
		t.Fatalf("edit: %v", err)
	}
	rootStore := root.store.(*fakeStore)
	rootStore.failUpsert = true
	_, err := tree.Call(root.Buttons(), OpPress, tree.Text(ButtonSave))
	if err == nil {
		t.Fatalf("expected save failure")
	}
	if root.records[0].Name != "Ann" {
		t.Fatalf("failed save mutated root cache: %+v", root.records[0])
	}
	if lv := listView(t, root); lv.Rows[0] != "Ann Mouse" {
		t.Fatalf("failed save re-pushed list: %v", lv.Rows)
	}
}

func TestHiddenSaveButtonIgnoresPress(t *testing.T) {
	root, store := loadedRoot(t, nil)
	if _, err := tree.Call(root.Buttons(), OpPress, tree.Text(ButtonSave)); err != nil {
		t.Fatalf("hidden press must be ignored, got %v", err)
	}
	if len(store.upserts) != 0 {
		t.Fatalf("hidden save reached the store")
	}
}

func TestUndeclaredOpOnChildFails(t *testing.T) {
	root, _ := loadedRoot(t, twoRecords())
	_, err := tree.Call(root.Form(), "set_everything", tree.Fields{})
	var ce *tree.ContractError
	if !errors.As(err, &ce) {
		t.Fatalf("expected ContractError, got %v", err)
	}
	if fv := formView(t, root); fv.Name != "Ann" {
		t.Fatalf("undeclared op changed form state: %+v", fv)
	}
}

func TestFilterNarrowsListWithoutEmitting(t *testing.T) {
	root, _ := loadedRoot(t, twoRecords())
	if _, err := tree.Call(root.List(), OpFilter, tree.Text("bob")); err != nil {
		t.Fatalf("filter: %v", err)
	}
	lv := listView(t, root)
	if len(lv.Rows) != 1 || lv.Rows[0] != "Bob Builder" {
		t.Fatalf("filtered rows %v", lv.Rows)
	}
	// Filtering narrows the display only; the selection is untouched
	// until the user moves the cursor.
	if st := rootState(t, root); st["selected"] != "u1" {
		t.Fatalf("filter changed selection: %v", st)
	}
}

// shell is a recording parent for the root, standing in for an
// application frame that cares about status events.
type shell struct {
	tree.Base
	statuses []string
}

func (s *shell) Invoke(op string, payload tree.Payload) (tree.Payload, error) {
	return nil, nil
}

func (s *shell) HandleEvent(child string, ev tree.Event) error {
	if ev.Name == EvStatus {
		s.statuses = append(s.statuses, string(ev.Payload.(tree.Text)))
	}
	return nil
}

func TestStatusReachesShellWhenRootIsAdopted(t *testing.T) {
	store := &fakeStore{recs: twoRecords()}
	root := NewRoot(context.Background(), store)
	sh := &shell{Base: tree.NewBase("shell", tree.Contract{})}
	tr, err := tree.New(sh)
	if err != nil {
		t.Fatalf("new tree: %v", err)
	}
	if err := tr.Attach(sh, root); err != nil {
		t.Fatalf("adopt root: %v", err)
	}
	for _, child := range []tree.Node{root.List(), root.Form(), root.Buttons()} {
		if err := tr.Attach(root, child); err != nil {
			t.Fatalf("attach %s: %v", child.ID(), err)
		}
	}
	if _, err := tree.Call(root, OpLoad, nil); err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(sh.statuses) != 1 || sh.statuses[0] != "loaded 2 records" {
		t.Fatalf("shell statuses %v", sh.statuses)
	}
}

func TestStatusDroppedWhenRootStandsAlone(t *testing.T) {
	// Standalone root: the same load path runs, the status emission is a
	// no-op instead of an error.
	root, _ := loadedRoot(t, twoRecords())
	if err := root.statusf("still %s", "fine"); err != nil {
		t.Fatalf("detached status emit: %v", err)
	}
}
