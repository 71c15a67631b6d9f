package controller

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"github.com/idilsaglam/itemdesk/internal/drafts"
)

// SubmitTicket is a snapshot of the rows to save, taken when the save began.
type SubmitTicket struct {
	Seq    uint64
	Drafts []drafts.Draft
}

// RowOutcome is the result of saving one draft.
type RowOutcome struct {
	Index   int
	DraftID uuid.UUID
	Title   string
	Err     error
	Skipped bool
}

// OK reports whether the row was saved.
func (o RowOutcome) OK() bool { return o.Err == nil && !o.Skipped }

// SubmitReport collects per-row outcomes in row order.
type SubmitReport struct {
	Seq  uint64
	Rows []RowOutcome
}

// Saved counts saved rows.
func (r SubmitReport) Saved() int {
	n := 0
	for _, o := range r.Rows {
		if o.OK() {
			n++
		}
	}
	return n
}

// Failed returns the rows that were not saved, skipped rows included.
func (r SubmitReport) Failed() []RowOutcome {
	var out []RowOutcome
	for _, o := range r.Rows {
		if !o.OK() {
			out = append(out, o)
		}
	}
	return out
}

// Err is nil when every row was saved. Otherwise it matches ErrSubmitFailed
// and wraps each row's cause.
func (r SubmitReport) Err() error {
	failed := r.Failed()
	if len(failed) == 0 {
		return nil
	}
	errs := []error{ErrSubmitFailed}
	for _, o := range failed {
		errs = append(errs, fmt.Errorf("row %d: %w", o.Index+1, o.Err))
	}
	return errors.Join(errs...)
}

// SubmitState is InFlight while a save runs, else Idle.
func (c *Controller) SubmitState() State { return c.submitState }

// SubmitOutcome is the result of the last applied save, Idle if none yet.
func (c *Controller) SubmitOutcome() State { return c.submitOutcome }

// BeginSubmit snapshots the draft rows for saving. Only one save may run at a
// time.
func (c *Controller) BeginSubmit() (SubmitTicket, error) {
	if c.submitState == InFlight {
		return SubmitTicket{}, ErrSubmitInProgress
	}
	c.submitSeq++
	c.submitState = InFlight
	t := SubmitTicket{Seq: c.submitSeq, Drafts: c.rows.Snapshot()}
	c.log.Info().Uint64("seq", t.Seq).Int("rows", len(t.Drafts)).Msg("save started")
	return t, nil
}

// RunSubmit saves each draft of t in order, one request at a time, and keeps
// going after a failed row. If ctx ends, the remaining rows are marked
// skipped. progress, when non-nil, is called after each row.
func (c *Controller) RunSubmit(ctx context.Context, t SubmitTicket, progress func(RowOutcome)) SubmitReport {
	rep := SubmitReport{Seq: t.Seq, Rows: make([]RowOutcome, 0, len(t.Drafts))}
	for i, d := range t.Drafts {
		o := RowOutcome{Index: i, DraftID: d.ID, Title: d.Title}
		if err := ctx.Err(); err != nil {
			o.Skipped = true
			o.Err = err
		} else {
			o.Err = c.svc.CreateItem(ctx, d.Form())
		}
		rep.Rows = append(rep.Rows, o)
		if progress != nil {
			progress(o)
		}
	}
	return rep
}

// ApplySubmit records the outcome of a save and returns the notice to show.
// reload is true when at least one row reached the backend, or when there was
// nothing to fail.
func (c *Controller) ApplySubmit(rep SubmitReport) (n Notice, reload bool) {
	if rep.Seq == c.submitSeq {
		c.submitState = Idle
	}

	err := rep.Err()
	saved := rep.Saved()
	if err == nil {
		c.submitOutcome = Succeeded
		c.log.Info().Int("saved", saved).Msg("save finished")
		return Notice{Level: LevelSuccess, Text: "Items saved successfully."}, true
	}

	c.submitOutcome = Failed
	c.log.Warn().Err(err).Int("saved", saved).Int("rows", len(rep.Rows)).Msg("save finished with failures")
	if saved == 0 {
		return Notice{Level: LevelError, Text: "Failed to save items.", Err: err}, false
	}
	return Notice{Level: LevelError, Text: partialText(rep), Err: err}, true
}

func partialText(rep SubmitReport) string {
	failed := rep.Failed()
	nums := make([]string, len(failed))
	for i, o := range failed {
		nums[i] = strconv.Itoa(o.Index + 1)
	}
	label := "row"
	if len(failed) > 1 {
		label = "rows"
	}
	return fmt.Sprintf("Saved %d of %d items; failed %s: %s.",
		rep.Saved(), len(rep.Rows), label, strings.Join(nums, ", "))
}

// Submit saves all draft rows and, when anything was saved, reloads the
// listing. It returns the save notice followed by any reload notice.
func (c *Controller) Submit(ctx context.Context, progress func(RowOutcome)) (SubmitReport, []Notice) {
	t, err := c.BeginSubmit()
	if err != nil {
		return SubmitReport{}, []Notice{{Level: LevelError, Text: "A save is already running.", Err: err}}
	}
	rep := c.RunSubmit(ctx, t, progress)
	n, reload := c.ApplySubmit(rep)
	notices := []Notice{n}
	if reload {
		if rn := c.Refresh(ctx); !rn.IsZero() {
			notices = append(notices, rn)
		}
	}
	return rep, notices
}
