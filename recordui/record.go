package recordui

import "github.com/treeform-dev/treeform/tree"

// Record is one editable row. Plain value semantics are the copy
// discipline: assignment is already a full, independent copy.
type Record struct {
	ID      string
	Name    string
	Surname string
}

func (r Record) Clone() tree.Payload { return r }

// Label is the row text shown for the record.
func (r Record) Label() string {
	switch {
	case r.Name == "" && r.Surname == "":
		return "(unnamed)"
	case r.Surname == "":
		return r.Name
	default:
		return r.Name + " " + r.Surname
	}
}

// Records is an ordered record set payload.
type Records []Record

func (rs Records) Clone() tree.Payload {
	out := make(Records, len(rs))
	copy(out, rs)
	return out
}

func (rs Records) index(id string) int {
	for i, r := range rs {
		if r.ID == id {
			return i
		}
	}
	return -1
}
