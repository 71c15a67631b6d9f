package ui

import (
	"fmt"

	"github.com/mattn/go-runewidth"

	"github.com/idilsaglam/itemdesk/internal/model"
)

const maxSrcWidth = 48

// ItemLines renders saved items for the non-interactive listing: an image
// marker and title, then the description, the summary line and the image
// source.
func ItemLines(items []model.SavedItem, placeholder string) []string {
	t := Current()
	if len(items) == 0 {
		return []string{C(t.Muted, "no items")}
	}
	out := make([]string, 0, len(items)*4)
	for i, it := range items {
		marker := C(t.Muted, t.SymNoImage)
		if it.HasImage() {
			marker = C(t.Success, t.SymImage)
		}
		idx := C(dim, fmt.Sprintf("%2d.", i+1))
		title := runewidth.Truncate(it.Title, 80, "...")
		out = append(out, fmt.Sprintf("%s %s %s", idx, marker, C(t.Title, title)))
		if it.Description != "" {
			out = append(out, "       "+runewidth.Truncate(it.Description, 80, "..."))
		}
		out = append(out, "       "+C(t.Muted, it.Summary()))
		out = append(out, "       "+C(t.Muted, runewidth.Truncate(it.ImageSrc(placeholder), maxSrcWidth, "...")))
	}
	return out
}

// ListingHeader is the title line with the total and page position.
func ListingHeader(p model.Pagination) string {
	t := Current()
	return fmt.Sprintf("%s   %s %d   %s %d/%d",
		C(t.Title, "Saved Items"),
		C(t.Accent, "Total"), p.Total,
		C(t.Accent, "Page"), p.Current, p.TotalPages,
	)
}
