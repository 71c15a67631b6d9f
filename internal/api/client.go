// Package api talks to the item backend: one endpoint to create an item from a
// multipart form, one to list a filtered page of items.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/idilsaglam/itemdesk/internal/drafts"
	"github.com/idilsaglam/itemdesk/internal/model"
)

const (
	createPath = "/save-item"
	listPath   = "/get-items"
)

// StatusError is returned when the backend answers with a non-success status.
type StatusError struct {
	Op         string
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("%s: status %d: %s", e.Op, e.StatusCode, e.Body)
}

// ListQuery is the serialized form of a listing request. Dates are
// YYYY-MM-DD or "".
type ListQuery struct {
	Title     string
	StartDate string
	EndDate   string
	Page      int
}

// NewListQuery serializes a filter and page.
func NewListQuery(f model.Filter, page int) ListQuery {
	return ListQuery{
		Title:     f.Title,
		StartDate: model.FormatDate(f.DateRange.Start),
		EndDate:   model.FormatDate(f.DateRange.End),
		Page:      page,
	}
}

// Encode renders the query string with parameters in the fixed order title,
// startDate, endDate, page.
func (q ListQuery) Encode() string {
	var b strings.Builder
	b.WriteString("title=")
	b.WriteString(url.QueryEscape(q.Title))
	b.WriteString("&startDate=")
	b.WriteString(url.QueryEscape(q.StartDate))
	b.WriteString("&endDate=")
	b.WriteString(url.QueryEscape(q.EndDate))
	b.WriteString("&page=")
	b.WriteString(strconv.Itoa(q.Page))
	return b.String()
}

// Client is an HTTP client for the item backend.
type Client struct {
	BaseURL    string
	httpClient *http.Client
	log        zerolog.Logger
}

// NewClient creates a client for baseURL. A zero timeout means none.
func NewClient(baseURL string, timeout time.Duration, log zerolog.Logger) *Client {
	return &Client{
		BaseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log.With().Str("component", "api").Logger(),
	}
}

// CreateItem posts one draft form to the backend.
func (c *Client) CreateItem(ctx context.Context, form drafts.Form) error {
	body, contentType, err := encodeForm(form)
	if err != nil {
		return fmt.Errorf("encode form: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.BaseURL+createPath, body)
	if err != nil {
		return fmt.Errorf("save item: %w", err)
	}
	req.Header.Set("Content-Type", contentType)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.log.Error().Err(err).Str("title", form.Title).Msg("Error saving item")
		return fmt.Errorf("save item: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		b, _ := io.ReadAll(resp.Body)
		serr := &StatusError{Op: "save item", StatusCode: resp.StatusCode, Body: string(b)}
		c.log.Error().Err(serr).Str("title", form.Title).Msg("Error saving item")
		return serr
	}
	_, _ = io.Copy(io.Discard, resp.Body)
	return nil
}

// ListItems fetches one page of items matching q.
func (c *Client) ListItems(ctx context.Context, q ListQuery) (*model.ItemsPage, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.BaseURL+listPath+"?"+q.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("get items: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.log.Error().Err(err).Msg("Error fetching items")
		return nil, fmt.Errorf("get items: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		b, _ := io.ReadAll(resp.Body)
		serr := &StatusError{Op: "get items", StatusCode: resp.StatusCode, Body: string(b)}
		c.log.Error().Err(serr).Msg("Error fetching items")
		return nil, serr
	}

	var page model.ItemsPage
	if err := json.NewDecoder(resp.Body).Decode(&page); err != nil {
		c.log.Error().Err(err).Msg("Error decoding items")
		return nil, fmt.Errorf("decode items: %w", err)
	}
	if page.Items == nil {
		page.Items = []model.SavedItem{}
	}
	return &page, nil
}

// encodeForm writes the multipart body for one item. Text fields come first
// in a fixed order, then the optional image part.
func encodeForm(form drafts.Form) (io.Reader, string, error) {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	fields := [][2]string{
		{"title", form.Title},
		{"description", form.Description},
		{"quantity", form.Quantity},
		{"price", form.Price},
		{"date", form.Date},
	}
	for _, f := range fields {
		if err := w.WriteField(f[0], f[1]); err != nil {
			return nil, "", err
		}
	}

	if form.Image != nil {
		name := form.Image.Name
		if name == "" {
			name = "image"
		}
		ct := form.Image.ContentType
		if ct == "" {
			ct = "application/octet-stream"
		}
		h := make(textproto.MIMEHeader)
		h.Set("Content-Disposition", fmt.Sprintf(`form-data; name="image"; filename="%s"`, escapeQuotes(name)))
		h.Set("Content-Type", ct)
		part, err := w.CreatePart(h)
		if err != nil {
			return nil, "", err
		}
		if _, err := part.Write(form.Image.Data); err != nil {
			return nil, "", err
		}
	}

	if err := w.Close(); err != nil {
		return nil, "", err
	}
	return &buf, w.FormDataContentType(), nil
}

var quoteEscaper = strings.NewReplacer("\\", "\\\\", `"`, "\\\"")

func escapeQuotes(s string) string { return quoteEscaper.Replace(s) }
