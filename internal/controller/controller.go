// Package controller coordinates the draft rows, the listing filter and page,
// and the two backend workflows: submitting drafts and querying saved items.
//
// The controller is owned by a single goroutine (the UI loop). Each workflow is
// split into Begin (mutates state, on the owner), Run (network I/O, safe to
// call from any goroutine) and Apply (mutates state, on the owner). Refresh and
// Submit chain the three steps for synchronous callers.
package controller

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/idilsaglam/itemdesk/internal/api"
	"github.com/idilsaglam/itemdesk/internal/drafts"
	"github.com/idilsaglam/itemdesk/internal/model"
)

// ItemService is the backend as seen by the controller.
type ItemService interface {
	CreateItem(ctx context.Context, form drafts.Form) error
	ListItems(ctx context.Context, q api.ListQuery) (*model.ItemsPage, error)
}

// Option configures a Controller.
type Option func(*Controller)

// WithPageSize sets the page size used for page-count math.
func WithPageSize(n int) Option {
	return func(c *Controller) {
		if n > 0 {
			c.pageSize = n
		}
	}
}

// WithLogger sets the diagnostic logger.
func WithLogger(l zerolog.Logger) Option {
	return func(c *Controller) { c.log = l }
}

// Controller is the entry and listing state container.
type Controller struct {
	svc      ItemService
	rows     *drafts.RowSet
	log      zerolog.Logger
	pageSize int

	filter  model.Filter
	page    int
	listing model.ListingPage

	querySeq     uint64
	queryState   State
	queryOutcome State

	submitSeq     uint64
	submitState   State
	submitOutcome State
}

// New returns a controller over rows with an empty filter on page 1. A nil
// rows gets a fresh empty set.
func New(svc ItemService, rows *drafts.RowSet, opts ...Option) *Controller {
	if rows == nil {
		rows = drafts.New()
	}
	c := &Controller{
		svc:      svc,
		rows:     rows,
		log:      zerolog.Nop(),
		pageSize: model.DefaultPageSize,
		page:     1,
		listing:  model.ListingPage{CurrentPage: 1},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Drafts is the row set being edited.
func (c *Controller) Drafts() *drafts.RowSet { return c.rows }

// Filter is the current listing filter.
func (c *Controller) Filter() model.Filter { return c.filter }

// Page is the requested listing page (1-based).
func (c *Controller) Page() int { return c.page }

// PageSize is the page size assumed for pagination.
func (c *Controller) PageSize() int { return c.pageSize }

// Listing is the last successfully applied page of results.
func (c *Controller) Listing() model.ListingPage { return c.listing }

// Pagination describes the page control for the current listing.
func (c *Controller) Pagination() model.Pagination {
	return model.Paginate(c.listing.TotalCount, c.pageSize, c.listing.CurrentPage)
}

// SetFilter replaces the filter. It reports whether anything changed, in which
// case the caller should start a query.
func (c *Controller) SetFilter(f model.Filter) bool {
	if sameFilter(c.filter, f) {
		return false
	}
	c.filter = f
	return true
}

// SetTitleFilter changes only the title substring.
func (c *Controller) SetTitleFilter(title string) bool {
	f := c.filter
	f.Title = title
	return c.SetFilter(f)
}

// SetDateRange changes only the date range.
func (c *Controller) SetDateRange(r model.DateRange) bool {
	f := c.filter
	f.DateRange = r
	return c.SetFilter(f)
}

// SetPage changes the requested page. Pages below 1 clamp to 1. It reports
// whether the page changed.
func (c *Controller) SetPage(page int) bool {
	if page < 1 {
		page = 1
	}
	if page == c.page {
		return false
	}
	c.page = page
	return true
}

func sameFilter(a, b model.Filter) bool {
	return a.Title == b.Title &&
		model.FormatDate(a.DateRange.Start) == model.FormatDate(b.DateRange.Start) &&
		model.FormatDate(a.DateRange.End) == model.FormatDate(b.DateRange.End)
}
