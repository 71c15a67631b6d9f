package model

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// DefaultPlaceholderImage is shown for saved items that carry no image.
const DefaultPlaceholderImage = "https://via.placeholder.com/50"

// SavedItem is a record as returned by the backend listing. The client never
// mutates one; it only re-fetches.
type SavedItem struct {
	Title       string          `json:"title"`
	Description string          `json:"description"`
	Quantity    decimal.Decimal `json:"quantity"`
	Price       decimal.Decimal `json:"price"`
	Date        string          `json:"date"`
	Image       string          `json:"image,omitempty"` // base64 JPEG bytes
}

// HasImage reports whether the backend sent image bytes for the item.
func (s SavedItem) HasImage() bool { return s.Image != "" }

// ImageSrc returns the inline data URI for the item image, or placeholder
// when the item has none.
func (s SavedItem) ImageSrc(placeholder string) string {
	if !s.HasImage() {
		return placeholder
	}
	return "data:image/jpeg;base64," + s.Image
}

// Summary is the secondary line shown under the title in listings.
func (s SavedItem) Summary() string {
	return fmt.Sprintf("quantity: %s, Price: $%s, Date: %s", s.Quantity.String(), s.Price.String(), s.Date)
}

// ItemsPage is the body of a list-items response.
type ItemsPage struct {
	Items []SavedItem `json:"items"`
	Total int         `json:"total"`
}
