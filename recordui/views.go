package recordui

import "github.com/treeform-dev/treeform/tree"

// View payloads are the query results the host renderer pulls from each
// child. They are snapshots: mutating one never touches node state.

type ListView struct {
	Rows   []string
	Cursor int
	Query  string
}

func (v ListView) Clone() tree.Payload {
	rows := make([]string, len(v.Rows))
	copy(rows, v.Rows)
	v.Rows = rows
	return v
}

type FormView struct {
	Visible bool
	Name    string
	Surname string
	Focus   string
}

func (v FormView) Clone() tree.Payload { return v }

type ButtonsView struct {
	Visible bool
	Labels  []string
}

func (v ButtonsView) Clone() tree.Payload {
	labels := make([]string, len(v.Labels))
	copy(labels, v.Labels)
	v.Labels = labels
	return v
}
