package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/idilsaglam/itemdesk/internal/controller"
	"github.com/idilsaglam/itemdesk/internal/drafts"
)

type backend struct {
	mu      sync.Mutex
	saved   []map[string]string
	queries []string
	total   int
	listErr bool
}

func newBackend(t *testing.T) (*backend, string) {
	t.Helper()
	b := &backend{total: 1}
	mux := http.NewServeMux()
	mux.HandleFunc("/save-item", func(w http.ResponseWriter, r *http.Request) {
		if !assert.NoError(t, r.ParseMultipartForm(1<<20)) {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		form := map[string]string{}
		for k, v := range r.MultipartForm.Value {
			form[k] = v[0]
		}
		b.mu.Lock()
		b.saved = append(b.saved, form)
		b.mu.Unlock()
		if form["title"] == "bad" {
			http.Error(w, "rejected", http.StatusInternalServerError)
			return
		}
		w.WriteHeader(http.StatusCreated)
	})
	mux.HandleFunc("/get-items", func(w http.ResponseWriter, r *http.Request) {
		b.mu.Lock()
		b.queries = append(b.queries, r.URL.RawQuery)
		fail, total := b.listErr, b.total
		b.mu.Unlock()
		if fail {
			http.Error(w, "boom", http.StatusBadGateway)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{
			"items": []map[string]any{
				{"title": "Mug", "description": "Blue", "quantity": 2, "price": 4.5, "date": "2024-01-05"},
			},
			"total": total,
		})
	})
	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)
	return b, server.URL
}

func run(t *testing.T, apiURL string, args ...string) (string, error) {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	t.Setenv("ITEMDESK_API_URL", "")
	t.Setenv("ITEMDESK_LOG_FILE", "")

	a := &app{}
	t.Cleanup(a.close)
	cmd := newRootCmd(a)
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(append([]string{
		"--api-url", apiURL,
		"--log-file", filepath.Join(t.TempDir(), "itemdesk.log"),
		"--no-color",
	}, args...))
	err := cmd.ExecuteContext(context.Background())
	return out.String(), err
}

func testArgs(t *testing.T, apiURL string, args ...string) []string {
	t.Helper()
	t.Setenv("HOME", t.TempDir())
	t.Setenv("ITEMDESK_API_URL", "")
	t.Setenv("ITEMDESK_LOG_FILE", "")
	return append([]string{
		"--api-url", apiURL,
		"--log-file", filepath.Join(t.TempDir(), "itemdesk.log"),
		"--no-color",
	}, args...)
}

func TestListPrintsPage(t *testing.T) {
	b, url := newBackend(t)
	b.total = 25

	out, err := run(t, url, "ls", "--title", "mug", "--from", "2024-01-01", "--page", "2")
	require.NoError(t, err)

	require.Len(t, b.queries, 1)
	assert.Equal(t, "title=mug&startDate=2024-01-01&endDate=&page=2", b.queries[0])
	assert.Contains(t, out, "Saved Items")
	assert.Contains(t, out, "Page 2/3")
	assert.Contains(t, out, "Mug")
	assert.Contains(t, out, "quantity: 2, Price: $4.5, Date: 2024-01-05")
	assert.Contains(t, out, "https://via.placeholder.com/50")
	assert.Contains(t, out, "‹ 1 [2] 3 ›")
}

func TestListFailure(t *testing.T) {
	b, url := newBackend(t)
	b.listErr = true

	_, err := run(t, url, "ls")
	require.Error(t, err)
	assert.ErrorIs(t, err, controller.ErrQueryFailed)
}

func TestListRejectsBadDate(t *testing.T) {
	b, url := newBackend(t)

	_, err := run(t, url, "ls", "--to", "05/01/2024")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "--to")
	assert.Empty(t, b.queries)
}

func TestAddSingleItem(t *testing.T) {
	b, url := newBackend(t)

	out, err := run(t, url, "add", "--title", "Lamp", "--price", "12.50", "--date", "2024-02-01")
	require.NoError(t, err)

	require.Len(t, b.saved, 1)
	assert.Equal(t, map[string]string{
		"title":       "Lamp",
		"description": "",
		"quantity":    "0",
		"price":       "12.5",
		"date":        "2024-02-01",
	}, b.saved[0])
	assert.Contains(t, out, "Items saved successfully.")
	assert.Len(t, b.queries, 1, "listing reloads after saving")
}

func TestAddRejectsNegativeQuantity(t *testing.T) {
	b, url := newBackend(t)

	_, err := run(t, url, "add", "--title", "Lamp", "--quantity", "-1")
	require.Error(t, err)
	assert.ErrorIs(t, err, drafts.ErrNegative)
	assert.Empty(t, b.saved)
}

func TestAddFileContinuesPastFailure(t *testing.T) {
	b, url := newBackend(t)
	path := filepath.Join(t.TempDir(), "drafts.json")
	require.NoError(t, os.WriteFile(path, []byte(`[
		{"title": "one"},
		{"title": "bad"},
		{"title": "three", "quantity": 3}
	]`), 0o600))

	out, err := run(t, url, "add", "--file", path)
	require.Error(t, err)
	assert.ErrorIs(t, err, controller.ErrSubmitFailed)

	require.Len(t, b.saved, 3)
	assert.Equal(t, "three", b.saved[2]["title"])
	assert.Equal(t, "3", b.saved[2]["quantity"])
	assert.Contains(t, out, "Saved 2 of 3 items; failed row: 2.")
	assert.Contains(t, out, "2/3")
}

func TestAddFileAndFieldsConflict(t *testing.T) {
	_, url := newBackend(t)

	_, err := run(t, url, "add", "--file", "x.json", "--title", "Lamp")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "either --file")
}

func TestExecuteClosesLogAfterFailedCommand(t *testing.T) {
	b, url := newBackend(t)
	b.listErr = true
	a := &app{}

	err := execute(context.Background(), a, "test", testArgs(t, url, "ls"))
	require.Error(t, err)
	require.NotNil(t, a.r, "runner was built")
	assert.Nil(t, a.r.closeLog, "log closed even though ls failed")
}

func TestAddWithoutFieldsSavesNothing(t *testing.T) {
	b, url := newBackend(t)

	_, err := run(t, url, "add")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "nothing to save")
	assert.Empty(t, b.saved)
}
