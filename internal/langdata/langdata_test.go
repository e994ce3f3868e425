package langdata_test

import (
	"context"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"langmap/internal/langdata"
	"langmap/internal/palette"
)

func testDataset() langdata.Dataset {
	return langdata.Dataset{
		Codes: langdata.CodeMap{
			"250": "FR",
			"756": "CH",
			"404": "KE",
			"999": "ZZ",
		},
		Countries: map[string]langdata.Country{
			"FR": {Name: "France", Languages: []string{"fr"}, PrimaryFamily: "Indo-European"},
			"CH": {Name: "Switzerland", Languages: []string{"de", "fr", "it"}, PrimaryFamily: "Indo-European"},
			"KE": {Name: "Kenya", Languages: []string{"sw", "en"}, PrimaryFamily: "Niger-Congo"},
		},
		Languages: map[string]langdata.Language{
			"fr": {Name: "French", NativeName: "français", Family: "Indo-European"},
			"de": {Name: "German", NativeName: "Deutsch", Family: "Indo-European"},
			"sw": {Name: "Swahili", NativeName: "Kiswahili", Family: "Niger-Congo"},
		},
	}
}

func TestLookup(t *testing.T) {
	d := testDataset()

	r := d.Lookup("756", "Switzerland (geometry)")
	assert.True(t, r.HasData)
	assert.Equal(t, "Switzerland", r.Name)
	assert.Equal(t, "CH", r.Code)
	assert.Equal(t, []string{"de", "fr", "it"}, r.Languages)
	assert.Equal(t, "Indo-European", r.Family)

	tests := []struct {
		name, id, fallback string
		wantName, wantCode string
	}{
		{"no code mapping", "123", "Atlantis", "Atlantis", ""},
		{"no country record", "999", "Nowhere", "Nowhere", "ZZ"},
		{"no fallback name", "123", "", "Unknown", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := d.Lookup(tt.id, tt.fallback)
			assert.False(t, r.HasData)
			assert.Equal(t, tt.wantName, r.Name)
			assert.Equal(t, tt.wantCode, r.Code)
			assert.Empty(t, r.Languages)
			assert.Equal(t, langdata.Unknown, r.Family)
		})
	}
}

func TestLookupDoesNotAliasTable(t *testing.T) {
	d := testDataset()
	r := d.Lookup("756", "")
	r.Languages[0] = "xx"
	assert.Equal(t, "de", d.Countries["CH"].Languages[0])
}

func TestLanguageName(t *testing.T) {
	d := testDataset()
	assert.Equal(t, "French", d.LanguageName("fr"))
	assert.Equal(t, "it", d.LanguageName("it"), "unknown codes fall back to the code")
	assert.Equal(t, "fr", d.Language("fr").Code)
}

func TestAllLanguagesCollated(t *testing.T) {
	d := langdata.Dataset{
		Countries: map[string]langdata.Country{
			"A": {Languages: []string{"zu", "em", "en"}},
			"B": {Languages: []string{"af", "en"}},
		},
		Languages: map[string]langdata.Language{
			"zu": {Name: "Zulu"},
			"em": {Name: "Émilien"},
			"en": {Name: "English"},
			"af": {Name: "afrikaans"},
		},
	}
	var names []string
	for _, l := range d.AllLanguages() {
		names = append(names, l.Name)
	}
	assert.Equal(t, []string{"afrikaans", "Émilien", "English", "Zulu"}, names)
}

func TestUniqueFamilies(t *testing.T) {
	assert.Equal(t, []string{"Indo-European", "Niger-Congo"}, testDataset().UniqueFamilies())
}

func TestRegions(t *testing.T) {
	rs := testDataset().Regions()
	require.Len(t, rs, 3)
	assert.Equal(t, "France", rs[0].Name)
	assert.Equal(t, "Kenya", rs[1].Name)
	assert.Equal(t, "Switzerland", rs[2].Name)
}

func TestColorizerHighlight(t *testing.T) {
	d := testDataset()
	c := langdata.Colorizer{Mode: langdata.ModeHighlight}

	ch := d.Lookup("756", "")
	fr := d.Lookup("250", "")
	ke := d.Lookup("404", "")
	none := d.Lookup("123", "Atlantis")

	assert.Equal(t, palette.DefaultColor, c.Color(ch), "empty selection")
	assert.Equal(t, palette.NoDataColor, c.Color(none))
	assert.NotEqual(t, palette.DefaultColor, palette.NoDataColor)

	c.Selection = c.Selection.Set([]string{"sw", "fr"})
	sw, _ := c.Selection.Color("sw")
	frc, _ := c.Selection.Color("fr")
	assert.Equal(t, frc, c.Color(ch))
	assert.Equal(t, frc, c.Color(fr))
	assert.Equal(t, sw, c.Color(ke))
	assert.Equal(t, palette.NoDataColor, c.Color(none))

	c.Selection = c.Selection.Set([]string{"it"})
	assert.Equal(t, palette.DefaultColor, c.Color(fr), "no match")
}

func TestColorizerFirstSelectedWins(t *testing.T) {
	d := testDataset()
	ch := d.Lookup("756", "")

	c := langdata.Colorizer{Mode: langdata.ModeHighlight}
	c.Selection = c.Selection.Set([]string{"it", "de"})
	it, _ := c.Selection.Color("it")
	assert.Equal(t, it, c.Color(ch), "selection order, not the region's language order")

	c.Selection = c.Selection.Set([]string{"de", "it"})
	de, _ := c.Selection.Color("de")
	assert.Equal(t, de, c.Color(ch))
}

func TestColorizerFamilies(t *testing.T) {
	d := testDataset()
	c := langdata.Colorizer{
		Mode:     langdata.ModeFamilies,
		Families: palette.NewFamilyPalette(d.UniqueFamilies()),
	}
	ie, ok := c.Families.Color("Indo-European")
	require.True(t, ok)
	assert.Equal(t, ie, c.Color(d.Lookup("250", "")))
	assert.Equal(t, palette.NoDataColor, c.Color(d.Lookup("123", "")))

	odd := langdata.Region{HasData: true, Family: "Constructed"}
	assert.Equal(t, palette.NeutralColor, c.Color(odd))
}

func TestParseMode(t *testing.T) {
	m, err := langdata.ParseMode("Families")
	require.NoError(t, err)
	assert.Equal(t, langdata.ModeFamilies, m)
	assert.Equal(t, langdata.ModeHighlight, m.Next())

	m, err = langdata.ParseMode("")
	require.NoError(t, err)
	assert.Equal(t, langdata.ModeHighlight, m)

	_, err = langdata.ParseMode("heatmap")
	assert.Error(t, err)
}

func TestLoadJSON(t *testing.T) {
	fsys := fstest.MapFS{
		langdata.CodeMapJSON:   {Data: []byte(`{"250":"FR"}`)},
		langdata.CountriesJSON: {Data: []byte(`{"FR":{"name":"France","languages":["fr"],"primaryFamily":"Indo-European"}}`)},
		langdata.LanguagesJSON: {Data: []byte(`{"fr":{"name":"French","nativeName":"français","family":"Indo-European"}}`)},
	}
	d, err := langdata.Load(context.Background(), fsys)
	require.NoError(t, err)
	assert.Equal(t, "FR", d.Codes["250"])
	assert.Equal(t, "fr", d.Languages["fr"].Code)
	assert.Equal(t, "France", d.Lookup("250", "").Name)
}

func TestLoadCSVCodeMap(t *testing.T) {
	fsys := fstest.MapFS{
		langdata.CodeMapCSV:    {Data: []byte("Numeric, Alpha2\n4,af\n250,FR\n,XX\n")},
		langdata.CountriesJSON: {Data: []byte(`{}`)},
		langdata.LanguagesJSON: {Data: []byte(`{}`)},
	}
	d, err := langdata.Load(context.Background(), fsys)
	require.NoError(t, err)
	assert.Equal(t, langdata.CodeMap{"004": "AF", "250": "FR"}, d.Codes)
}

func TestParseCodeMapCSVErrors(t *testing.T) {
	_, err := langdata.ParseCodeMapCSV([]byte("lat,lon\n1,2\n"))
	assert.Error(t, err)
	_, err = langdata.ParseCodeMapCSV(nil)
	assert.Error(t, err)
}

func TestLoadMissingTable(t *testing.T) {
	fsys := fstest.MapFS{
		langdata.CountriesJSON: {Data: []byte(`{}`)},
		langdata.LanguagesJSON: {Data: []byte(`{}`)},
	}
	_, err := langdata.Load(context.Background(), fsys)
	assert.ErrorIs(t, err, langdata.ErrMissingTable)

	delete(fsys, langdata.LanguagesJSON)
	fsys[langdata.CodeMapJSON] = &fstest.MapFile{Data: []byte(`{}`)}
	_, err = langdata.Load(context.Background(), fsys)
	assert.ErrorIs(t, err, langdata.ErrMissingTable)
}

func TestLoadCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := langdata.Load(ctx, langdata.Default())
	assert.ErrorIs(t, err, context.Canceled)
}

func TestDefaultTables(t *testing.T) {
	d, err := langdata.Load(context.Background(), langdata.Default())
	require.NoError(t, err)

	fr := d.Lookup("250", "")
	require.True(t, fr.HasData)
	assert.Equal(t, "FR", fr.Code)
	assert.Contains(t, fr.Languages, "fr")

	for code, c := range d.Countries {
		for _, l := range c.Languages {
			_, ok := d.Languages[l]
			assert.True(t, ok, "%s speaks undescribed language %s", code, l)
		}
	}
	for id, code := range d.Codes {
		assert.Len(t, id, 3)
		_, ok := d.Countries[code]
		assert.True(t, ok, "code map %s -> %s has no record", id, code)
	}
	assert.NotEmpty(t, d.AllLanguages())
	assert.Contains(t, d.UniqueFamilies(), "Indo-European")
}
