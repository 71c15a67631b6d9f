package draftfile

import (
	"bytes"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/idilsaglam/itemdesk/internal/drafts"
)

func writeDrafts(t *testing.T, dir, body string) string {
	t.Helper()
	p := filepath.Join(dir, "drafts.json")
	require.NoError(t, os.WriteFile(p, []byte(body), 0o644))
	return p
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, image.NewRGBA(image.Rect(0, 0, 4, 4))))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "mug.png"), buf.Bytes(), 0o644))

	p := writeDrafts(t, dir, `[
		{"title": "Mug", "quantity": 2, "price": "4.50", "date": "2024-01-05", "image": "mug.png"},
		{"title": "Cap"}
	]`)

	rows, err := Load(p, 0)

	require.NoError(t, err)
	require.Equal(t, 2, rows.Len())

	mug, _ := rows.At(0)
	assert.Equal(t, "Mug", mug.Title)
	assert.Equal(t, drafts.Form{
		Title: "Mug", Quantity: "2", Price: "4.5", Date: "2024-01-05", Image: mug.Image,
	}, mug.Form())
	require.NotNil(t, mug.Image)
	assert.Equal(t, "image/png", mug.Image.ContentType)

	hat, _ := rows.At(1)
	assert.Equal(t, "0", hat.Form().Quantity)
	assert.Nil(t, hat.Image)
}

func TestLoadRejectsBadEntry(t *testing.T) {
	p := writeDrafts(t, t.TempDir(), `[{"title": "ok"}, {"title": "bad", "price": -3}]`)

	_, err := Load(p, 0)

	require.Error(t, err)
	assert.ErrorIs(t, err, drafts.ErrNegative)
	assert.Contains(t, err.Error(), "entry 2")
}

func TestLoadMalformed(t *testing.T) {
	p := writeDrafts(t, t.TempDir(), `{"title": "not an array"}`)
	_, err := Load(p, 0)
	assert.Error(t, err)
}
