package tui

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/idilsaglam/itemdesk/internal/attach"
	"github.com/idilsaglam/itemdesk/internal/controller"
	"github.com/idilsaglam/itemdesk/internal/drafts"
	"github.com/idilsaglam/itemdesk/internal/model"
)

// savedItem adapts model.SavedItem to bubbles/list.Item
type savedItem struct{ model.SavedItem }

func (i savedItem) FilterValue() string { return i.Title }

// itemDelegate renders a saved item on two lines: marker and title, then the
// summary and image source.
type itemDelegate struct {
	placeholder string
}

func (d itemDelegate) Height() int                               { return 2 }
func (d itemDelegate) Spacing() int                              { return 0 }
func (d itemDelegate) Update(msg tea.Msg, m *list.Model) tea.Cmd { return nil }
func (d itemDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	it, ok := item.(savedItem)
	if !ok {
		return
	}
	width := m.Width() - 4
	if width < 20 {
		width = 20
	}

	marker := mutedStyle.Render(symNoImage)
	if it.HasImage() {
		marker = successStyle.Render(symImage)
	}
	title := it.Title
	if it.Description != "" {
		title += " - " + it.Description
	}
	title = runewidth.Truncate(title, width, "...")

	prefix := "  "
	if index == m.Index() {
		prefix = selectedStyle.Render(">") + " "
		title = titleStyle.Render(title)
	}
	detail := runewidth.Truncate(it.Summary()+"  "+it.ImageSrc(d.placeholder), width, "...")
	fmt.Fprintf(w, "%s%s %s\n", prefix, marker, title)
	fmt.Fprintf(w, "    %s", mutedStyle.Render(detail))
}

func (m Model) View() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Items"))
	b.WriteString("\n")
	for _, n := range []controller.Notice{m.saveNotice, m.notice} {
		if line := noticeLine(n); line != "" {
			b.WriteString(line + "\n")
		}
	}

	b.WriteString(m.box(paneRows, m.rowsView()))
	b.WriteString("\n")
	b.WriteString(m.box(paneFilter, m.filterView()))
	b.WriteString("\n")
	b.WriteString(m.box(paneList, m.listView()))
	b.WriteString("\n")
	if m.status != "" {
		b.WriteString(m.status + "\n")
	}
	b.WriteString(m.help.View(m.keys))
	return b.String()
}

func (m Model) box(p pane, body string) string {
	style := blurredBorder
	if m.focus == p {
		style = focusedBorder
	}
	return style.Width(max(m.width-4, 20)).Render(body)
}

func noticeLine(n controller.Notice) string {
	switch n.Level {
	case controller.LevelSuccess:
		return successStyle.Render("✔ " + n.Text)
	case controller.LevelError:
		return errorStyle.Render("✖ " + n.Text)
	default:
		return ""
	}
}

func (m Model) rowsView() string {
	rows := m.ctl.Drafts()
	var b strings.Builder

	head := make([]string, 0, len(columnWidths))
	for c, f := range drafts.Fields {
		head = append(head, headerCell(string(f), c))
	}
	head = append(head, headerCell("image", imageColumn))
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, head...))
	b.WriteString("\n")

	if rows.Len() == 0 {
		b.WriteString(mutedStyle.Render("no rows, press + to add one"))
	}
	for r, d := range rows.Snapshot() {
		cells := make([]string, 0, len(columnWidths))
		for c, f := range drafts.Fields {
			cells = append(cells, m.cell(r, c, d.FieldText(f)))
		}
		cells = append(cells, m.cell(r, imageColumn, imageText(d.Image)))
		b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, cells...))
		if r < rows.Len()-1 {
			b.WriteString("\n")
		}
	}

	if m.editing {
		b.WriteString("\n" + m.editor.View())
		if m.editErr != "" {
			b.WriteString("  " + errorStyle.Render(m.editErr))
		}
	}
	return b.String()
}

func headerCell(s string, col int) string {
	return cellStyle.Inherit(headingStyle).Render(pad(s, col))
}

func (m Model) cell(row, col int, text string) string {
	s := pad(text, col)
	if m.focus == paneRows && row == m.rowCursor && col == m.colCursor {
		return cellStyle.Inherit(selectedStyle).Render(s)
	}
	return cellStyle.Render(s)
}

// pad fits s to the width of column col.
func pad(s string, col int) string {
	w := columnWidths[col]
	return runewidth.FillRight(runewidth.Truncate(s, w, "…"), w)
}

func imageText(a *drafts.Attachment) string {
	if a == nil {
		return mutedStyle.Render(symNoImage)
	}
	return symImage + " " + attach.Describe(a)
}

func (m Model) filterView() string {
	parts := make([]string, len(m.filters))
	for i, ti := range m.filters {
		parts[i] = ti.View()
	}
	out := strings.Join(parts, "   ")
	if m.filterErr != "" {
		out += "\n" + errorStyle.Render(m.filterErr)
	}
	return out
}

func (m Model) listView() string {
	p := m.ctl.Pagination()
	head := fmt.Sprintf("%s   %s %d",
		titleStyle.Render("Saved Items"),
		accentStyle.Render("Total"), p.Total,
	)
	if m.ctl.QueryState() == controller.InFlight {
		head += "  " + m.spin.View()
	}

	var body string
	if len(m.list.Items()) == 0 {
		body = mutedStyle.Render("no items")
	} else {
		body = m.list.View()
	}
	return head + "\n" + body + "\n" + mutedStyle.Render("Page ") + m.pager.View()
}
