// Package drafts holds the in-progress item rows a user edits before saving.
//
// Rows are addressed by position. Removing a row shifts every later row down
// by one, so an index is only meaningful against the state it was read from.
// Each row also carries a synthetic ID for callers that need to find a row
// again after the set has changed.
package drafts

import (
	"errors"

	"github.com/google/uuid"
)

var (
	ErrUnknownField  = errors.New("unknown field")
	ErrInvalidNumber = errors.New("not a number")
	ErrNegative      = errors.New("must not be negative")
	ErrInvalidDate   = errors.New("date must be YYYY-MM-DD")
)

// Field names an editable text field of a draft.
type Field string

const (
	FieldTitle       Field = "title"
	FieldDescription Field = "description"
	FieldQuantity    Field = "quantity"
	FieldPrice       Field = "price"
	FieldDate        Field = "date"
)

// Fields lists the editable fields in form order.
var Fields = []Field{FieldTitle, FieldDescription, FieldQuantity, FieldPrice, FieldDate}

// RowSet is an ordered list of drafts. Every mutation swaps in a new backing
// slice, so a slice returned by Snapshot is never changed afterwards.
type RowSet struct {
	rows []Draft
}

// New returns an empty row set.
func New() *RowSet { return &RowSet{} }

// FromDrafts returns a row set holding ds in order. Drafts without an ID get
// one.
func FromDrafts(ds []Draft) *RowSet {
	rows := make([]Draft, len(ds))
	copy(rows, ds)
	for i := range rows {
		if rows[i].ID == uuid.Nil {
			rows[i].ID = uuid.New()
		}
	}
	return &RowSet{rows: rows}
}

// Len is the number of rows.
func (s *RowSet) Len() int { return len(s.rows) }

// At returns the draft at index.
func (s *RowSet) At(index int) (Draft, bool) {
	if index < 0 || index >= len(s.rows) {
		return Draft{}, false
	}
	return s.rows[index], true
}

// IndexOf finds the current position of the draft with id, or -1.
func (s *RowSet) IndexOf(id uuid.UUID) int {
	for i, d := range s.rows {
		if d.ID == id {
			return i
		}
	}
	return -1
}

// Snapshot returns the current rows. Later edits do not show through.
func (s *RowSet) Snapshot() []Draft { return s.rows }

// Add appends an empty draft and returns its ID.
func (s *RowSet) Add() uuid.UUID {
	d := Draft{ID: uuid.New()}
	next := make([]Draft, len(s.rows), len(s.rows)+1)
	copy(next, s.rows)
	s.rows = append(next, d)
	return d.ID
}

// Remove drops the draft at index. An out-of-range index does nothing.
func (s *RowSet) Remove(index int) {
	next := make([]Draft, 0, len(s.rows))
	for i, d := range s.rows {
		if i != index {
			next = append(next, d)
		}
	}
	s.rows = next
}

// Update sets one field of the draft at index from input text. Empty text
// clears the field. On error the row is left unchanged. An out-of-range index
// does nothing.
func (s *RowSet) Update(index int, field Field, value string) error {
	if index < 0 || index >= len(s.rows) {
		return nil
	}
	d := s.rows[index]
	switch field {
	case FieldTitle:
		d.Title = value
	case FieldDescription:
		d.Description = truncateRunes(value, MaxDescriptionLen)
	case FieldQuantity:
		n, err := parseNumber(value)
		if err != nil {
			return err
		}
		d.Quantity = n
	case FieldPrice:
		n, err := parseNumber(value)
		if err != nil {
			return err
		}
		d.Price = n
	case FieldDate:
		v, err := dateText(value)
		if err != nil {
			return err
		}
		d.Date = v
	default:
		return ErrUnknownField
	}
	s.replace(index, d)
	return nil
}

// AttachImage stages img on the draft at index. It returns false: the image
// must not be uploaded now, only with the draft on submit.
func (s *RowSet) AttachImage(index int, img *Attachment) bool {
	if index < 0 || index >= len(s.rows) {
		return false
	}
	d := s.rows[index]
	d.Image = img
	s.replace(index, d)
	return false
}

// DetachImage clears the staged image on the draft at index.
func (s *RowSet) DetachImage(index int) {
	if index < 0 || index >= len(s.rows) {
		return
	}
	d := s.rows[index]
	d.Image = nil
	s.replace(index, d)
}

func (s *RowSet) replace(index int, d Draft) {
	next := make([]Draft, len(s.rows))
	copy(next, s.rows)
	next[index] = d
	s.rows = next
}
