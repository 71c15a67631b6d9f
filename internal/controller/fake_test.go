package controller

import (
	"context"
	"errors"
	"sync"

	"github.com/idilsaglam/itemdesk/internal/api"
	"github.com/idilsaglam/itemdesk/internal/drafts"
	"github.com/idilsaglam/itemdesk/internal/model"
)

var errBackend = errors.New("backend unavailable")

// fakeService records calls and answers from canned responses.
type fakeService struct {
	mu sync.Mutex

	creates []drafts.Form
	// failCreate lists 1-based call numbers that fail.
	failCreate map[int]bool

	queries []api.ListQuery
	page    *model.ItemsPage
	listErr error
}

func newFakeService() *fakeService {
	return &fakeService{failCreate: map[int]bool{}}
}

func (f *fakeService) CreateItem(_ context.Context, form drafts.Form) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.creates = append(f.creates, form)
	if f.failCreate[len(f.creates)] {
		return errBackend
	}
	return nil
}

func (f *fakeService) ListItems(_ context.Context, q api.ListQuery) (*model.ItemsPage, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.queries = append(f.queries, q)
	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.page, nil
}

func (f *fakeService) createTitles() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]string, len(f.creates))
	for i, c := range f.creates {
		out[i] = c.Title
	}
	return out
}

func itemsPage(n, total int) *model.ItemsPage {
	items := make([]model.SavedItem, n)
	for i := range items {
		items[i] = model.SavedItem{Title: "item"}
	}
	return &model.ItemsPage{Items: items, Total: total}
}
