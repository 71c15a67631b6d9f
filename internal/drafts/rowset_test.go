package drafts

import (
	"math/rand"
	"strconv"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddRemoveKeepsOrder(t *testing.T) {
	s := New()
	a := s.Add()
	b := s.Add()
	c := s.Add()
	require.Equal(t, 3, s.Len())

	s.Remove(1)

	require.Equal(t, 2, s.Len())
	assert.Equal(t, 0, s.IndexOf(a))
	assert.Equal(t, -1, s.IndexOf(b))
	assert.Equal(t, 1, s.IndexOf(c), "later rows shift down by one")
}

func TestRemoveOutOfRangeIsNoop(t *testing.T) {
	s := New()
	s.Add()
	s.Add()

	s.Remove(-1)
	s.Remove(2)
	s.Remove(99)

	assert.Equal(t, 2, s.Len())
}

func TestUpdateOnlyTouchesTarget(t *testing.T) {
	s := New()
	s.Add()
	s.Add()
	s.Add()

	require.NoError(t, s.Update(1, FieldTitle, "shirt"))
	require.NoError(t, s.Update(1, FieldPrice, "12.50"))

	for i := 0; i < s.Len(); i++ {
		d, _ := s.At(i)
		if i == 1 {
			assert.Equal(t, "shirt", d.Title)
			require.NotNil(t, d.Price)
			assert.Equal(t, "12.5", d.Price.String())
			continue
		}
		assert.True(t, d.Empty(), "row %d should be untouched", i)
	}
}

func TestUpdateDoesNotLeakIntoSnapshot(t *testing.T) {
	s := New()
	s.Add()
	before := s.Snapshot()

	require.NoError(t, s.Update(0, FieldTitle, "after"))

	assert.Equal(t, "", before[0].Title)
	after, _ := s.At(0)
	assert.Equal(t, "after", after.Title)
}

func TestUpdateValidation(t *testing.T) {
	tests := []struct {
		name    string
		field   Field
		value   string
		wantErr error
	}{
		{"negative quantity", FieldQuantity, "-1", ErrNegative},
		{"non numeric price", FieldPrice, "ten", ErrInvalidNumber},
		{"bad date", FieldDate, "01/02/2024", ErrInvalidDate},
		{"unknown field", Field("colour"), "red", ErrUnknownField},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := New()
			s.Add()
			err := s.Update(0, tt.field, tt.value)
			assert.ErrorIs(t, err, tt.wantErr)
			d, _ := s.At(0)
			assert.True(t, d.Empty(), "row must be unchanged after a rejected edit")
		})
	}
}

func TestUpdateClearsOnEmptyText(t *testing.T) {
	s := New()
	s.Add()
	require.NoError(t, s.Update(0, FieldQuantity, "4"))
	require.NoError(t, s.Update(0, FieldQuantity, ""))

	d, _ := s.At(0)
	assert.Nil(t, d.Quantity)
}

func TestDescriptionIsCapped(t *testing.T) {
	s := New()
	s.Add()
	long := make([]rune, MaxDescriptionLen+40)
	for i := range long {
		long[i] = 'é'
	}

	require.NoError(t, s.Update(0, FieldDescription, string(long)))

	d, _ := s.At(0)
	assert.Len(t, []rune(d.Description), MaxDescriptionLen)
}

func TestUpdateOutOfRangeIsNoop(t *testing.T) {
	s := New()
	s.Add()
	assert.NoError(t, s.Update(3, FieldTitle, "x"))
	d, _ := s.At(0)
	assert.Equal(t, "", d.Title)
}

func TestAttachImageStagesOnly(t *testing.T) {
	s := New()
	s.Add()
	s.Add()
	img := &Attachment{Name: "a.jpg", ContentType: "image/jpeg", Data: []byte{0xff, 0xd8}}

	upload := s.AttachImage(1, img)

	assert.False(t, upload)
	d0, _ := s.At(0)
	d1, _ := s.At(1)
	assert.Nil(t, d0.Image)
	assert.Same(t, img, d1.Image)

	s.DetachImage(1)
	d1, _ = s.At(1)
	assert.Nil(t, d1.Image)
}

func TestRandomEditSequences(t *testing.T) {
	rng := rand.New(rand.NewSource(7))

	for run := 0; run < 50; run++ {
		s := New()
		var adds, removes int
		// mirror tracks expected titles by position
		var mirror []string

		for step := 0; step < 60; step++ {
			switch rng.Intn(3) {
			case 0:
				s.Add()
				adds++
				mirror = append(mirror, "")
			case 1:
				if len(mirror) == 0 {
					continue
				}
				i := rng.Intn(len(mirror))
				s.Remove(i)
				removes++
				mirror = append(mirror[:i:i], mirror[i+1:]...)
			case 2:
				if len(mirror) == 0 {
					continue
				}
				i := rng.Intn(len(mirror))
				title := "t" + strconv.Itoa(step)
				require.NoError(t, s.Update(i, FieldTitle, title))
				mirror[i] = title
			}
		}

		require.Equal(t, adds-removes, s.Len())
		for i, want := range mirror {
			d, ok := s.At(i)
			require.True(t, ok)
			assert.Equal(t, want, d.Title, "run %d row %d", run, i)
		}
	}
}

func TestFromDraftsAssignsIDs(t *testing.T) {
	keep := uuid.New()
	s := FromDrafts([]Draft{{ID: keep, Title: "a"}, {Title: "b"}})

	assert.Equal(t, 0, s.IndexOf(keep))
	d, _ := s.At(1)
	assert.NotEqual(t, uuid.Nil, d.ID)
}
