// Package tui is the host runtime: it owns the Bubble Tea loop, decodes
// raw key input, and delivers it into the tree by invoking inbound
// operations on the leaf nodes. All tree traffic happens synchronously
// inside Update, so the single-thread discipline of the hierarchy holds.
package tui

import (
	"context"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/treeform-dev/treeform/internal/config"
	"github.com/treeform-dev/treeform/recordui"
	"github.com/treeform-dev/treeform/tree"
	"github.com/treeform-dev/treeform/widgets"
)

type focusArea int

const (
	focusList focusArea = iota
	focusFilter
	focusForm
)

type keyMap struct {
	Up     key.Binding
	Down   key.Binding
	New    key.Binding
	Save   key.Binding
	Delete key.Binding
	Filter key.Binding
	Edit   key.Binding
	Next   key.Binding
	Back   key.Binding
	Quit   key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Up:     key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "row up")),
		Down:   key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "row down")),
		New:    key.NewBinding(key.WithKeys("n"), key.WithHelp("n", "new record")),
		Save:   key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "save record")),
		Delete: key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "delete record")),
		Filter: key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "filter list")),
		Edit:   key.NewBinding(key.WithKeys("e", "enter"), key.WithHelp("e", "edit form")),
		Next:   key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next field")),
		Back:   key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "back to list")),
		Quit:   key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "quit")),
	}
}

// loadRequestMsg asks Update to (re)load the record set. Tree calls only
// ever run inside Update, never inside a tea.Cmd goroutine.
type loadRequestMsg struct{}

func LoadCmd() tea.Cmd {
	return func() tea.Msg { return loadRequestMsg{} }
}

type App struct {
	cfg    config.Config
	root   *recordui.Root
	keys   keyMap
	focus  focusArea
	filter string
	status string
	isErr  bool
	width  int
	height int
}

// New assembles the node tree and wraps it for the Bubble Tea runtime.
func New(ctx context.Context, cfg config.Config, store recordui.Store) (App, error) {
	root := recordui.NewRoot(ctx, store)
	if _, err := root.BuildTree(); err != nil {
		return App{}, err
	}
	return App{cfg: cfg, root: root, keys: defaultKeyMap(), width: 80, height: 24}, nil
}

func (m App) Init() tea.Cmd {
	return LoadCmd()
}

func (m App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case loadRequestMsg:
		if _, err := tree.Call(m.root, recordui.OpLoad, nil); err != nil {
			m.setError(err)
		} else {
			m.setStatus("records loaded")
		}
		return m, nil
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		return m, nil
	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m App) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Quit) {
		return m, tea.Quit
	}
	if m.focus == focusList && msg.String() == "q" {
		return m, tea.Quit
	}
	switch m.focus {
	case focusList:
		return m.handleListKey(msg)
	case focusFilter:
		return m.handleFilterKey(msg)
	case focusForm:
		return m.handleFormKey(msg)
	}
	return m, nil
}

func (m App) handleListKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Up):
		m.callList(recordui.OpCursor, tree.Text(recordui.CursorUp))
	case key.Matches(msg, m.keys.Down):
		m.callList(recordui.OpCursor, tree.Text(recordui.CursorDown))
	case key.Matches(msg, m.keys.New):
		m.pressButton(recordui.ButtonNew)
	case key.Matches(msg, m.keys.Save):
		m.pressButton(recordui.ButtonSave)
	case key.Matches(msg, m.keys.Delete):
		m.pressButton(recordui.ButtonDelete)
	case key.Matches(msg, m.keys.Filter):
		m.focus = focusFilter
		m.setStatus("filter: type to narrow, esc clears")
	case key.Matches(msg, m.keys.Edit):
		m.focus = focusForm
		m.setStatus("editing: tab switches field, enter saves, esc returns")
	}
	return m, nil
}

func (m App) handleFilterKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.filter = ""
		m.focus = focusList
		m.callList(recordui.OpFilter, tree.Text(""))
		return m, nil
	case "enter":
		m.focus = focusList
		return m, nil
	case "backspace":
		if m.filter != "" {
			runes := []rune(m.filter)
			m.filter = string(runes[:len(runes)-1])
			m.callList(recordui.OpFilter, tree.Text(m.filter))
		}
		return m, nil
	}
	if msg.Type == tea.KeyRunes {
		m.filter += string(msg.Runes)
		m.callList(recordui.OpFilter, tree.Text(m.filter))
	}
	return m, nil
}

func (m App) handleFormKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.focus = focusList
		return m, nil
	case "enter":
		m.focus = focusList
		m.pressButton(recordui.ButtonSave)
		return m, nil
	case "tab":
		m.callForm(tree.Fields{"focus": "next"})
		return m, nil
	case "backspace":
		m.callForm(tree.Fields{"backspace": "1"})
		return m, nil
	}
	if msg.Type == tea.KeyRunes {
		m.callForm(tree.Fields{"append": string(msg.Runes)})
	}
	return m, nil
}

func (m *App) callList(op string, payload tree.Payload) {
	if _, err := tree.Call(m.root.List(), op, payload); err != nil {
		m.setError(err)
	}
}

func (m *App) callForm(edit tree.Fields) {
	if _, err := tree.Call(m.root.Form(), recordui.OpEdit, edit); err != nil {
		m.setError(err)
	}
}

func (m *App) pressButton(name string) {
	if _, err := tree.Call(m.root.Buttons(), recordui.OpPress, tree.Text(name)); err != nil {
		m.setError(err)
		return
	}
	switch name {
	case recordui.ButtonSave:
		m.setStatus("saved")
	case recordui.ButtonDelete:
		m.setStatus("deleted")
	case recordui.ButtonNew:
		m.setStatus("created")
	}
}

func (m *App) setStatus(text string) {
	m.status, m.isErr = text, false
}

func (m *App) setError(err error) {
	m.status, m.isErr = err.Error(), true
}

func (m App) View() string {
	lv, err := tree.Call(m.root.List(), recordui.OpGetView, nil)
	if err != nil {
		return err.Error()
	}
	fv, err := tree.Call(m.root.Form(), recordui.OpGetView, nil)
	if err != nil {
		return err.Error()
	}
	bv, err := tree.Call(m.root.Buttons(), recordui.OpGetView, nil)
	if err != nil {
		return err.Error()
	}
	list := lv.(recordui.ListView)
	form := fv.(recordui.FormView)
	buttons := bv.(recordui.ButtonsView)

	body := widgets.HStack{
		Ratios: []float64{1, 2},
		Gap:    1,
		Widgets: []widgets.Widget{
			widgets.ListPanel{
				Title:   m.cfg.UI.ListTitle,
				Rows:    list.Rows,
				Cursor:  list.Cursor,
				Query:   list.Query,
				Focused: m.focus == focusList || m.focus == focusFilter,
			},
			widgets.VStack{
				Ratios: []float64{4, 1},
				Widgets: []widgets.Widget{
					widgets.FormPanel{
						Title:   m.cfg.UI.FormTitle,
						Visible: form.Visible,
						Name:    form.Name,
						Surname: form.Surname,
						Focus:   form.Focus,
						Focused: m.focus == focusForm,
					},
					widgets.ButtonBar{Labels: buttons.Labels},
				},
			},
		},
	}
	status := widgets.StatusBar{Text: m.status, IsErr: m.isErr}
	return body.Render(m.width, m.height-1) + "\n" + status.Render(m.width, 1)
}
