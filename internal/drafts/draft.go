package drafts

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/idilsaglam/itemdesk/internal/model"
)

// MaxDescriptionLen caps the description at input time.
const MaxDescriptionLen = 250

// Attachment is an image staged on a draft. It is only sent when the draft is
// submitted.
type Attachment struct {
	Name        string
	ContentType string
	Data        []byte
}

// Draft is an item being edited before submission. Any field may be unset.
type Draft struct {
	ID          uuid.UUID
	Title       string
	Description string
	Quantity    *decimal.Decimal
	Price       *decimal.Decimal
	Date        string // YYYY-MM-DD or ""
	Image       *Attachment
}

// Form is the text form of a draft as it goes on the wire, with absent
// fields defaulted.
type Form struct {
	Title       string
	Description string
	Quantity    string
	Price       string
	Date        string
	Image       *Attachment
}

// Form applies submission defaults: quantity and price become "0", date
// becomes "".
func (d Draft) Form() Form {
	return Form{
		Title:       d.Title,
		Description: d.Description,
		Quantity:    numberOrZero(d.Quantity),
		Price:       numberOrZero(d.Price),
		Date:        d.Date,
		Image:       d.Image,
	}
}

// Empty reports whether nothing has been entered on the draft.
func (d Draft) Empty() bool {
	return d.Title == "" && d.Description == "" && d.Quantity == nil &&
		d.Price == nil && d.Date == "" && d.Image == nil
}

// FieldText returns the current input text for a field, "" if unset.
func (d Draft) FieldText(f Field) string {
	switch f {
	case FieldTitle:
		return d.Title
	case FieldDescription:
		return d.Description
	case FieldQuantity:
		return numberOrEmpty(d.Quantity)
	case FieldPrice:
		return numberOrEmpty(d.Price)
	case FieldDate:
		return d.Date
	}
	return ""
}

func numberOrZero(n *decimal.Decimal) string {
	if n == nil {
		return "0"
	}
	return n.String()
}

func numberOrEmpty(n *decimal.Decimal) string {
	if n == nil {
		return ""
	}
	return n.String()
}

// dateText validates YYYY-MM-DD input.
func dateText(s string) (string, error) {
	if _, err := model.ParseDate(s); err != nil {
		return "", ErrInvalidDate
	}
	return s, nil
}

// truncateRunes keeps at most n characters of s.
func truncateRunes(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n])
}

// parseNumber accepts non-negative decimal text. Empty text clears the value.
func parseNumber(s string) (*decimal.Decimal, error) {
	if s == "" {
		return nil, nil
	}
	n, err := decimal.NewFromString(s)
	if err != nil {
		return nil, ErrInvalidNumber
	}
	if n.IsNegative() {
		return nil, ErrNegative
	}
	return &n, nil
}
