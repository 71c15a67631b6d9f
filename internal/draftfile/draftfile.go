package draftfile

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/shopspring/decimal"

	"github.com/idilsaglam/itemdesk/internal/attach"
	"github.com/idilsaglam/itemdesk/internal/drafts"
)

// JSON file of drafts for batch entry. Single file, human-readable:
//
//	[{"title": "Mug", "quantity": 2, "price": "4.50", "date": "2024-01-05", "image": "mug.jpg"}]
//
// Image paths are relative to the file.

type entry struct {
	Title       string           `json:"title"`
	Description string           `json:"description"`
	Quantity    *decimal.Decimal `json:"quantity"`
	Price       *decimal.Decimal `json:"price"`
	Date        string           `json:"date"`
	Image       string           `json:"image"`
}

// Load reads the drafts file at path into a new row set. Every value goes
// through the same checks as typed input. maxDim is passed to attach.Load.
func Load(path string, maxDim int) (*drafts.RowSet, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read file: %w", err)
	}
	var entries []entry
	if err := json.Unmarshal(b, &entries); err != nil {
		return nil, fmt.Errorf("json unmarshal: %w", err)
	}

	base := filepath.Dir(path)
	rows := drafts.New()
	for i, e := range entries {
		rows.Add()
		values := map[drafts.Field]string{
			drafts.FieldTitle:       e.Title,
			drafts.FieldDescription: e.Description,
			drafts.FieldQuantity:    decimalText(e.Quantity),
			drafts.FieldPrice:       decimalText(e.Price),
			drafts.FieldDate:        e.Date,
		}
		for _, f := range drafts.Fields {
			if err := rows.Update(i, f, values[f]); err != nil {
				return nil, fmt.Errorf("entry %d: %s: %w", i+1, f, err)
			}
		}
		if e.Image != "" {
			p := e.Image
			if !filepath.IsAbs(p) {
				p = filepath.Join(base, p)
			}
			img, err := attach.Load(p, maxDim)
			if err != nil {
				return nil, fmt.Errorf("entry %d: %w", i+1, err)
			}
			rows.AttachImage(i, img)
		}
	}
	return rows, nil
}

func decimalText(d *decimal.Decimal) string {
	if d == nil {
		return ""
	}
	return d.String()
}
