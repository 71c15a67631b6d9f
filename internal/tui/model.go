// Package tui is the interactive entry and listing screen.
package tui

import (
	"context"
	"time"

	"github.com/charmbracelet/bubbles/cursor"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/paginator"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"

	"github.com/idilsaglam/itemdesk/internal/attach"
	"github.com/idilsaglam/itemdesk/internal/controller"
	"github.com/idilsaglam/itemdesk/internal/drafts"
	"github.com/idilsaglam/itemdesk/internal/model"
)

// Options tune the screen.
type Options struct {
	Timeout          time.Duration // per request; 0 means none
	ImageMaxDim      int
	PlaceholderImage string
}

type pane int

const (
	paneFilter pane = iota
	paneRows
	paneList
	paneCount
)

// filter inputs, in display order
const (
	filterTitle = iota
	filterFrom
	filterTo
	filterCount
)

// imageColumn is the row column after the text fields.
var imageColumn = len(drafts.Fields)

type queryDoneMsg struct{ res controller.QueryResult }

type submitDoneMsg struct{ rep controller.SubmitReport }

type imageStagedMsg struct {
	id  uuid.UUID
	att *drafts.Attachment
	err error
}

// Model is the Bubble Tea model. It owns the controller: all controller
// state changes happen in Update.
type Model struct {
	ctl  *controller.Controller
	opts Options
	ctx  context.Context
	keys keyMap

	focus pane

	filters     [filterCount]textinput.Model
	filterFocus int
	filterErr   string

	rowCursor int
	colCursor int

	// inline edit of one draft cell
	editing bool
	editor  textinput.Model
	editErr string

	list  list.Model
	pager paginator.Model
	spin  spinner.Model
	help  help.Model

	// the save result stays up while the reload after it reports its own
	saveNotice controller.Notice
	notice     controller.Notice
	status     string // transient, cleared on the next key

	width  int
	height int
}

// New builds the screen over ctl. An empty draft row is added when there
// are none, so there is always something to type into.
func New(ctx context.Context, ctl *controller.Controller, opts Options) Model {
	if opts.PlaceholderImage == "" {
		opts.PlaceholderImage = model.DefaultPlaceholderImage
	}
	if ctl.Drafts().Len() == 0 {
		ctl.Drafts().Add()
	}

	var filters [filterCount]textinput.Model
	filters[filterTitle] = newInput("Title: ", "Filter by title", 0)
	filters[filterFrom] = newInput("From: ", "YYYY-MM-DD", 10)
	filters[filterTo] = newInput("To: ", "YYYY-MM-DD", 10)
	filters[filterTitle].Focus()

	l := list.New(nil, itemDelegate{placeholder: opts.PlaceholderImage}, 0, 0)
	l.SetShowTitle(false)
	l.SetShowHelp(false)
	l.SetShowStatusBar(false)
	l.SetShowPagination(false)
	l.SetFilteringEnabled(false)
	l.DisableQuitKeybindings()

	pager := paginator.New()
	pager.Type = paginator.Arabic
	pager.PerPage = ctl.PageSize()
	pager.TotalPages = 1

	m := Model{
		ctl:     ctl,
		opts:    opts,
		ctx:     ctx,
		keys:    defaultKeys(),
		focus:   paneFilter,
		filters: filters,
		editor:  newInput("> ", "", 0),
		list:    l,
		pager:   pager,
		spin:    spinner.New(spinner.WithSpinner(spinner.Dot), spinner.WithStyle(pendingStyle)),
		help:    help.New(),
		width:   100,
		height:  30,
	}
	m.resizeList()
	return m
}

func newInput(prompt, placeholder string, limit int) textinput.Model {
	ti := textinput.New()
	ti.Prompt = prompt
	ti.Placeholder = placeholder
	ti.CharLimit = limit
	ti.Cursor.SetMode(cursor.CursorStatic)
	return ti
}

// Init runs the first listing query with the default filter on page 1.
func (m Model) Init() tea.Cmd {
	return tea.Batch(m.queryCmd(), m.spin.Tick)
}

// queryCmd issues a listing query; the response comes back as queryDoneMsg.
func (m Model) queryCmd() tea.Cmd {
	t := m.ctl.BeginQuery()
	ctl, parent, timeout := m.ctl, m.ctx, m.opts.Timeout
	return func() tea.Msg {
		ctx, cancel := withTimeout(parent, timeout)
		defer cancel()
		return queryDoneMsg{res: ctl.RunQuery(ctx, t)}
	}
}

// submitCmd saves the current rows; the report comes back as submitDoneMsg.
func (m Model) submitCmd() (tea.Cmd, error) {
	t, err := m.ctl.BeginSubmit()
	if err != nil {
		return nil, err
	}
	ctl, parent := m.ctl, m.ctx
	return func() tea.Msg {
		// the HTTP client bounds each request; the batch has no deadline
		return submitDoneMsg{rep: ctl.RunSubmit(parent, t, nil)}
	}, nil
}

// stageImageCmd loads an image file off the UI loop. The row is found again
// by ID when the result arrives, since rows may have moved.
func (m Model) stageImageCmd(id uuid.UUID, path string) tea.Cmd {
	maxDim := m.opts.ImageMaxDim
	return func() tea.Msg {
		att, err := attach.Load(path, maxDim)
		return imageStagedMsg{id: id, att: att, err: err}
	}
}

func withTimeout(ctx context.Context, d time.Duration) (context.Context, context.CancelFunc) {
	if d <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, d)
}
