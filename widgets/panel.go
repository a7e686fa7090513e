package widgets

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// Widget renders itself into a width/height box of plain text lines.
type Widget interface {
	Render(width, height int) string
}

var (
	borderStyle  = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
	focusBorder  = lipgloss.NewStyle().Border(lipgloss.ThickBorder()).Padding(0, 1)
	titleStyle   = lipgloss.NewStyle().Bold(true)
	cursorStyle  = lipgloss.NewStyle().Reverse(true)
	subduedStyle = lipgloss.NewStyle().Faint(true)
)

// Panel is the common chrome: a titled, bordered box around content.
type Panel struct {
	Title   string
	Content string
	Focused bool
}

func (p Panel) Render(width, height int) string {
	if width <= 0 || height <= 0 {
		return ""
	}
	style := borderStyle
	if p.Focused {
		style = focusBorder
	}
	body := titleStyle.Render(p.Title)
	if p.Content != "" {
		body += "\n" + p.Content
	}
	return style.Width(width - 2).Height(max(1, height-2)).Render(body)
}

// ListPanel draws rows with a cursor marker, truncated to fit.
type ListPanel struct {
	Title   string
	Rows    []string
	Cursor  int
	Query   string
	Focused bool
}

func (l ListPanel) Render(width, height int) string {
	inner := max(1, width-4)
	lines := make([]string, 0, len(l.Rows)+1)
	if l.Query != "" {
		lines = append(lines, subduedStyle.Render("/"+l.Query))
	}
	for i, row := range l.Rows {
		text := ansi.Truncate(row, inner-2, "…")
		if i == l.Cursor {
			lines = append(lines, cursorStyle.Render("> "+text))
		} else {
			lines = append(lines, "  "+text)
		}
	}
	if len(l.Rows) == 0 {
		lines = append(lines, subduedStyle.Render("(no records)"))
	}
	return Panel{Title: l.Title, Content: strings.Join(lines, "\n"), Focused: l.Focused}.Render(width, height)
}

// FormPanel draws the two labelled fields with a focus marker. A hidden
// form renders as empty chrome so the layout holds still.
type FormPanel struct {
	Title   string
	Visible bool
	Name    string
	Surname string
	Focus   string
	Focused bool
}

func (f FormPanel) Render(width, height int) string {
	if !f.Visible {
		return Panel{Title: f.Title, Content: subduedStyle.Render("(nothing selected)"), Focused: f.Focused}.Render(width, height)
	}
	rows := []string{
		formRow("Name", f.Name, f.Focus == "name"),
		formRow("Surname", f.Surname, f.Focus == "surname"),
	}
	return Panel{Title: f.Title, Content: strings.Join(rows, "\n"), Focused: f.Focused}.Render(width, height)
}

func formRow(label, value string, focused bool) string {
	marker := "  "
	if focused {
		marker = "> "
	}
	return marker + label + ": " + value + cursorIf(focused)
}

func cursorIf(focused bool) string {
	if focused {
		return cursorStyle.Render(" ")
	}
	return ""
}

// ButtonBar draws the available actions in a row.
type ButtonBar struct {
	Labels []string
}

func (b ButtonBar) Render(width, height int) string {
	parts := make([]string, len(b.Labels))
	for i, label := range b.Labels {
		parts[i] = "[ " + label + " ]"
	}
	return ansi.Truncate(strings.Join(parts, "  "), max(1, width), "…")
}

// StatusBar draws one status line, errors loud.
type StatusBar struct {
	Text  string
	IsErr bool
}

func (s StatusBar) Render(width, height int) string {
	text := ansi.Truncate(s.Text, max(1, width), "…")
	if s.IsErr {
		return lipgloss.NewStyle().Bold(true).Render(text)
	}
	return subduedStyle.Render(text)
}
