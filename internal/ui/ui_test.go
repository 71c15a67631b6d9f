package ui

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/idilsaglam/itemdesk/internal/model"
)

func useMono(t *testing.T) {
	t.Helper()
	SetTheme("mono")
	t.Cleanup(func() {
		SetColorForcing(false, false)
		SetTheme("classic")
	})
}

func TestPageBar(t *testing.T) {
	useMono(t)

	tests := []struct {
		name string
		p    model.Pagination
		want string
	}{
		{"first of five", model.Paginate(47, 10, 1), "[1] 2 3 … 5 ›"},
		{"middle", model.Paginate(47, 10, 3), "‹ 1 2 [3] 4 5 ›"},
		{"single page", model.Paginate(0, 10, 1), "[1]"},
		{"elided", model.Paginate(200, 10, 10), "‹ 1 … 8 9 [10] 11 12 … 20 ›"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, PageBar(tt.p))
		})
	}
}

func TestProgressBar(t *testing.T) {
	useMono(t)
	assert.Equal(t, "#####..... 1/2", ProgressBar(1, 2, 10))
}

func TestPanel(t *testing.T) {
	useMono(t)
	var buf bytes.Buffer

	Panel(&buf, []string{"ab", "abcd"})

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 4)
	assert.Equal(t, "+------+", lines[0])
	assert.Equal(t, "| ab   |", lines[1])
	assert.Equal(t, "| abcd |", lines[2])
}

func TestItemLines(t *testing.T) {
	useMono(t)

	lines := ItemLines([]model.SavedItem{
		{Title: "mug", Description: "blue", Date: "2024-01-05"},
		{Title: "cap", Image: "AAEC"},
	}, model.DefaultPlaceholderImage)

	joined := strings.Join(lines, "\n")
	assert.Contains(t, joined, " 1. [   ] mug")
	assert.Contains(t, joined, "blue")
	assert.Contains(t, joined, "quantity: 0, Price: $0, Date: 2024-01-05")
	assert.Contains(t, joined, model.DefaultPlaceholderImage)
	assert.Contains(t, joined, " 2. [img] cap")
	assert.Contains(t, joined, "data:image/jpeg;base64,AAEC")
}

func TestItemLinesEmpty(t *testing.T) {
	useMono(t)
	assert.Equal(t, []string{"no items"}, ItemLines(nil, ""))
}

func TestMessages(t *testing.T) {
	useMono(t)
	var buf bytes.Buffer

	OK(&buf, "saved")
	Fail(&buf, "nope")

	assert.Equal(t, "ok saved\nerror: nope\n", buf.String())
}

func TestSkipUsesPendingColor(t *testing.T) {
	SetTheme("classic")
	SetColorForcing(true, false)
	t.Cleanup(func() { SetColorForcing(false, false) })
	var buf bytes.Buffer

	Skip(&buf, "row 2: skipped")

	assert.Equal(t, Current().Pending+"row 2: skipped"+reset+"\n", buf.String())
}
