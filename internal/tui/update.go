package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/idilsaglam/itemdesk/internal/attach"
	"github.com/idilsaglam/itemdesk/internal/controller"
	"github.com/idilsaglam/itemdesk/internal/drafts"
	"github.com/idilsaglam/itemdesk/internal/model"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.resizeList()
		return m, nil

	case queryDoneMsg:
		n, applied := m.ctl.ApplyQuery(msg.res)
		if !applied {
			return m, nil
		}
		// a later good query clears the failure
		m.notice = n
		m.syncListing()
		return m, nil

	case submitDoneMsg:
		n, reload := m.ctl.ApplySubmit(msg.rep)
		m.saveNotice = n
		if reload {
			return m, m.queryCmd()
		}
		return m, nil

	case imageStagedMsg:
		idx := m.ctl.Drafts().IndexOf(msg.id)
		if idx < 0 {
			// row removed while the file was loading
			return m, nil
		}
		if msg.err != nil {
			m.status = errorStyle.Render(fmt.Sprintf("row %d image: %v", idx+1, msg.err))
			return m, nil
		}
		m.ctl.Drafts().AttachImage(idx, msg.att)
		m.status = mutedStyle.Render(fmt.Sprintf("row %d image staged: %s", idx+1, attach.Describe(msg.att)))
		return m, nil

	case tea.KeyMsg:
		if m.editing {
			return m.updateEditor(msg)
		}
		return m.updateKey(msg)
	}

	var cmd tea.Cmd
	m.spin, cmd = m.spin.Update(msg)
	return m, cmd
}

func (m Model) updateKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	m.status = ""
	switch {
	case msg.String() == "ctrl+c":
		return m, tea.Quit
	case key.Matches(msg, m.keys.Save):
		cmd, err := m.submitCmd()
		if err != nil {
			m.saveNotice = controller.Notice{Level: controller.LevelError, Text: "A save is already running.", Err: err}
			return m, nil
		}
		m.saveNotice = controller.Notice{}
		return m, cmd
	case key.Matches(msg, m.keys.Focus):
		return m.setFocus((m.focus + 1) % paneCount), nil
	case key.Matches(msg, m.keys.Back):
		return m.setFocus((m.focus + paneCount - 1) % paneCount), nil
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	}

	switch m.focus {
	case paneFilter:
		return m.updateFilter(msg)
	case paneRows:
		return m.updateRows(msg)
	default:
		return m.updateList(msg)
	}
}

func (m Model) setFocus(p pane) Model {
	m.focus = p
	for i := range m.filters {
		m.filters[i].Blur()
	}
	if p == paneFilter {
		m.filters[m.filterFocus].Focus()
	}
	return m
}

// updateFilter feeds keys to the focused filter input and starts a query
// whenever the effective filter changes.
func (m Model) updateFilter(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "up":
		m.filters[m.filterFocus].Blur()
		m.filterFocus = (m.filterFocus + filterCount - 1) % filterCount
		m.filters[m.filterFocus].Focus()
		return m, nil
	case "down", "enter":
		m.filters[m.filterFocus].Blur()
		m.filterFocus = (m.filterFocus + 1) % filterCount
		m.filters[m.filterFocus].Focus()
		return m, nil
	}

	var cmd tea.Cmd
	m.filters[m.filterFocus], cmd = m.filters[m.filterFocus].Update(msg)

	changed := m.ctl.SetTitleFilter(m.filters[filterTitle].Value())
	r, err := m.dateRange()
	if err != nil {
		// wait until the date is complete
		m.filterErr = err.Error()
	} else {
		m.filterErr = ""
		if m.ctl.SetDateRange(r) {
			changed = true
		}
	}
	if changed {
		return m, tea.Batch(cmd, m.queryCmd())
	}
	return m, cmd
}

func (m Model) dateRange() (model.DateRange, error) {
	start, err := model.ParseDate(m.filters[filterFrom].Value())
	if err != nil {
		return model.DateRange{}, fmt.Errorf("from: %w", err)
	}
	end, err := model.ParseDate(m.filters[filterTo].Value())
	if err != nil {
		return model.DateRange{}, fmt.Errorf("to: %w", err)
	}
	return model.DateRange{Start: start, End: end}, nil
}

func (m Model) updateRows(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	rows := m.ctl.Drafts()
	switch {
	case key.Matches(msg, m.keys.Up):
		if m.rowCursor > 0 {
			m.rowCursor--
		}
	case key.Matches(msg, m.keys.Down):
		if m.rowCursor < rows.Len()-1 {
			m.rowCursor++
		}
	case key.Matches(msg, m.keys.Left):
		if m.colCursor > 0 {
			m.colCursor--
		}
	case key.Matches(msg, m.keys.Right):
		if m.colCursor < imageColumn {
			m.colCursor++
		}
	case key.Matches(msg, m.keys.AddRow):
		rows.Add()
		m.rowCursor = rows.Len() - 1
		m.resizeList()
	case key.Matches(msg, m.keys.DelRow):
		rows.Remove(m.rowCursor)
		if m.rowCursor >= rows.Len() && m.rowCursor > 0 {
			m.rowCursor = rows.Len() - 1
		}
		m.resizeList()
	case key.Matches(msg, m.keys.Detach):
		rows.DetachImage(m.rowCursor)
	case key.Matches(msg, m.keys.Edit):
		return m.startEdit(), nil
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	}
	return m, nil
}

func (m Model) startEdit() Model {
	d, ok := m.ctl.Drafts().At(m.rowCursor)
	if !ok {
		return m
	}
	m.editing = true
	m.editErr = ""
	m.editor.Reset()
	m.editor.CharLimit = 0
	if m.colCursor == imageColumn {
		m.editor.Placeholder = "path to image file, empty to drop"
	} else {
		f := drafts.Fields[m.colCursor]
		m.editor.Placeholder = string(f)
		m.editor.SetValue(d.FieldText(f))
		if f == drafts.FieldDescription {
			m.editor.CharLimit = drafts.MaxDescriptionLen
		}
	}
	m.editor.CursorEnd()
	m.editor.Focus()
	return m
}

func (m Model) updateEditor(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit
	case "esc":
		m = m.stopEdit()
		return m, nil
	case "enter":
		return m.commitEdit()
	}
	var cmd tea.Cmd
	m.editor, cmd = m.editor.Update(msg)
	return m, cmd
}

func (m Model) commitEdit() (tea.Model, tea.Cmd) {
	rows := m.ctl.Drafts()
	value := m.editor.Value()

	if m.colCursor == imageColumn {
		path := strings.TrimSpace(value)
		m = m.stopEdit()
		if path == "" {
			rows.DetachImage(m.rowCursor)
			return m, nil
		}
		d, ok := rows.At(m.rowCursor)
		if !ok {
			return m, nil
		}
		m.status = mutedStyle.Render("loading " + path + "...")
		return m, m.stageImageCmd(d.ID, path)
	}

	if err := rows.Update(m.rowCursor, drafts.Fields[m.colCursor], value); err != nil {
		m.editErr = err.Error()
		return m, nil
	}
	return m.stopEdit(), nil
}

func (m Model) stopEdit() Model {
	m.editing = false
	m.editErr = ""
	m.editor.Reset()
	m.editor.Blur()
	return m
}

func (m Model) updateList(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.PrevPage):
		if m.ctl.Page() > 1 && m.ctl.SetPage(m.ctl.Page()-1) {
			return m, m.queryCmd()
		}
		return m, nil
	case key.Matches(msg, m.keys.NextPage):
		if m.ctl.Page() < m.ctl.Pagination().TotalPages && m.ctl.SetPage(m.ctl.Page()+1) {
			return m, m.queryCmd()
		}
		return m, nil
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	}
	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

// syncListing copies the controller's listing into the list and paginator.
func (m *Model) syncListing() {
	l := m.ctl.Listing()
	items := make([]list.Item, len(l.Items))
	for i, it := range l.Items {
		items[i] = savedItem{it}
	}
	m.list.SetItems(items)
	m.list.ResetSelected()

	p := m.ctl.Pagination()
	m.pager.PerPage = p.PageSize
	m.pager.TotalPages = p.TotalPages
	m.pager.Page = p.Current - 1
}

// resizeList fits the saved list under the form, which grows with the rows.
func (m *Model) resizeList() {
	m.list.SetSize(max(m.width-4, 20), m.listHeight())
}

func (m Model) listHeight() int {
	// rough space left for the saved list after the form
	h := m.height - 16 - m.ctl.Drafts().Len()
	if h < 4 {
		h = 4
	}
	return h
}
