package controller

import (
	"context"
	"fmt"

	"github.com/idilsaglam/itemdesk/internal/api"
	"github.com/idilsaglam/itemdesk/internal/model"
)

// QueryTicket identifies one issued listing query.
type QueryTicket struct {
	Seq   uint64
	Query api.ListQuery
}

// QueryResult is the outcome of running a ticket.
type QueryResult struct {
	Seq   uint64
	Query api.ListQuery
	Page  *model.ItemsPage
	Err   error
}

// QueryState is InFlight while any issued query is unanswered, else Idle.
func (c *Controller) QueryState() State { return c.queryState }

// QueryOutcome is the result of the last applied query, Idle if none yet.
func (c *Controller) QueryOutcome() State { return c.queryOutcome }

// BeginQuery issues a query for the current filter and page. Only the most
// recently issued ticket will be applied.
func (c *Controller) BeginQuery() QueryTicket {
	c.querySeq++
	c.queryState = InFlight
	t := QueryTicket{Seq: c.querySeq, Query: api.NewListQuery(c.filter, c.page)}
	c.log.Debug().Uint64("seq", t.Seq).Str("query", t.Query.Encode()).Msg("query issued")
	return t
}

// RunQuery performs the network call for t. It does not touch controller
// state.
func (c *Controller) RunQuery(ctx context.Context, t QueryTicket) QueryResult {
	page, err := c.svc.ListItems(ctx, t.Query)
	return QueryResult{Seq: t.Seq, Query: t.Query, Page: page, Err: err}
}

// ApplyQuery folds r into the listing. Results from superseded tickets are
// dropped and applied reports false. On failure the previous listing is kept
// and an error notice returned.
func (c *Controller) ApplyQuery(r QueryResult) (n Notice, applied bool) {
	if r.Seq != c.querySeq {
		c.log.Debug().Uint64("seq", r.Seq).Uint64("latest", c.querySeq).Msg("stale query result dropped")
		return Notice{}, false
	}
	c.queryState = Idle

	if r.Err != nil || r.Page == nil {
		cause := r.Err
		if cause == nil {
			cause = fmt.Errorf("empty response")
		}
		c.queryOutcome = Failed
		c.log.Warn().Err(cause).Str("query", r.Query.Encode()).Msg("load items failed")
		return Notice{
			Level: LevelError,
			Text:  "Failed to load items.",
			Err:   fmt.Errorf("%w: %w", ErrQueryFailed, cause),
		}, true
	}

	items := r.Page.Items
	if items == nil {
		items = []model.SavedItem{}
	}
	c.listing = model.ListingPage{
		Items:       items,
		TotalCount:  r.Page.Total,
		CurrentPage: r.Query.Page,
	}
	c.queryOutcome = Succeeded
	return Notice{}, true
}

// Refresh runs a query to completion and applies it.
func (c *Controller) Refresh(ctx context.Context) Notice {
	n, _ := c.ApplyQuery(c.RunQuery(ctx, c.BeginQuery()))
	return n
}
