package palette_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"langmap/internal/palette"
)

func TestSelectionAssignsColorsInOrder(t *testing.T) {
	var s palette.Selection
	s = s.Set([]string{"en", "es", "fr"})

	assert.Equal(t, []string{"en", "es", "fr"}, s.Codes())
	assert.Equal(t, 3, s.Counter())
	for i, code := range []string{"en", "es", "fr"} {
		c, ok := s.Color(code)
		require.True(t, ok)
		assert.Equal(t, palette.ColorForIndex(i), c)
	}
}

func TestSelectionRetainsColorsAcrossReorder(t *testing.T) {
	var s palette.Selection
	s = s.Set([]string{"en", "es"})
	en, _ := s.Color("en")
	es, _ := s.Color("es")

	s = s.Set([]string{"es", "en"})
	gotEn, _ := s.Color("en")
	gotEs, _ := s.Color("es")
	assert.Equal(t, en, gotEn)
	assert.Equal(t, es, gotEs)
	assert.Equal(t, 2, s.Counter())
}

func TestSelectionReselectGetsFreshColor(t *testing.T) {
	var s palette.Selection
	s = s.Set([]string{"A", "B"})
	origA, _ := s.Color("A")
	b, _ := s.Color("B")

	s = s.Toggle("A")
	assert.False(t, s.Contains("A"))
	assert.Equal(t, []string{"B"}, s.Codes())

	s = s.Toggle("A")
	newA, ok := s.Color("A")
	require.True(t, ok)
	assert.NotEqual(t, b, newA)
	assert.NotEqual(t, origA, newA)
	assert.Equal(t, []string{"B", "A"}, s.Codes())
	stillB, _ := s.Color("B")
	assert.Equal(t, b, stillB)
}

func TestSelectionIgnoresDuplicates(t *testing.T) {
	var s palette.Selection
	s = s.Set([]string{"en", "en", "es", "en"})
	assert.Equal(t, []string{"en", "es"}, s.Codes())
	assert.Equal(t, 2, s.Counter())
}

func TestSelectionClearKeepsCounter(t *testing.T) {
	var s palette.Selection
	s = s.Set([]string{"en", "es"}).Clear()
	assert.Equal(t, 0, s.Len())
	assert.Equal(t, 2, s.Counter())

	s = s.Toggle("en")
	c, _ := s.Color("en")
	assert.Equal(t, palette.ColorForIndex(2), c)
}

func TestSelectionIsValue(t *testing.T) {
	var s palette.Selection
	before := s.Set([]string{"en"})
	after := before.Toggle("es")

	assert.Equal(t, []string{"en"}, before.Codes())
	assert.False(t, before.Contains("es"))
	assert.Equal(t, []string{"en", "es"}, after.Codes())

	codes := after.Codes()
	codes[0] = "zz"
	assert.Equal(t, []string{"en", "es"}, after.Codes())
}
