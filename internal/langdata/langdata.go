// Package langdata holds the static reference tables (geometry id to
// country code, country records, language descriptors) and joins them for
// coloring and display.
package langdata

import (
	"errors"
	"slices"
	"sort"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// ErrMissingTable is returned by Load when a required table is absent.
var ErrMissingTable = errors.New("langdata: missing table")

// Unknown is the family label and display name used when data is missing.
const Unknown = "Unknown"

// CodeMap maps a geometry identifier to an alpha-2 country code.
type CodeMap map[string]string

type Country struct {
	Name          string   `json:"name"`
	Languages     []string `json:"languages"`
	PrimaryFamily string   `json:"primaryFamily"`
}

type Language struct {
	Code       string `json:"-"`
	Name       string `json:"name"`
	NativeName string `json:"nativeName"`
	Family     string `json:"family"`
}

// Region is the result of joining one geometry against the tables.
type Region struct {
	ID        string
	Name      string
	Code      string
	Languages []string
	Family    string
	HasData   bool
}

// Dataset is the immutable join of the three reference tables.
type Dataset struct {
	Codes     CodeMap
	Countries map[string]Country
	Languages map[string]Language
}

// Lookup resolves a geometry id to its region. Misses at either stage fall
// back to the geometry's own name, no languages and the Unknown family.
func (d Dataset) Lookup(id, fallbackName string) Region {
	r := Region{ID: id, Name: fallbackName, Family: Unknown}
	if r.Name == "" {
		r.Name = Unknown
	}
	code, ok := d.Codes[id]
	if !ok {
		return r
	}
	r.Code = code
	c, ok := d.Countries[code]
	if !ok {
		return r
	}
	r.HasData = true
	if c.Name != "" {
		r.Name = c.Name
	}
	r.Languages = slices.Clone(c.Languages)
	if c.PrimaryFamily != "" {
		r.Family = c.PrimaryFamily
	}
	return r
}

// Language returns the descriptor for code. Unknown codes get the code as
// their display name.
func (d Dataset) Language(code string) Language {
	if l, ok := d.Languages[code]; ok {
		l.Code = code
		return l
	}
	return Language{Code: code, Name: code}
}

func (d Dataset) LanguageName(code string) string { return d.Language(code).Name }

// AllLanguages lists every language spoken in at least one country,
// ordered by display name the way an English reader expects.
func (d Dataset) AllLanguages() []Language {
	seen := make(map[string]struct{})
	var out []Language
	for _, c := range d.Countries {
		for _, code := range c.Languages {
			if _, ok := seen[code]; ok {
				continue
			}
			seen[code] = struct{}{}
			out = append(out, d.Language(code))
		}
	}
	col := collate.New(language.English)
	slices.SortFunc(out, func(a, b Language) int {
		if n := col.CompareString(a.Name, b.Name); n != 0 {
			return n
		}
		return col.CompareString(a.Code, b.Code)
	})
	return out
}

// UniqueFamilies returns the distinct primary families, sorted.
func (d Dataset) UniqueFamilies() []string {
	set := make(map[string]struct{})
	for _, c := range d.Countries {
		if c.PrimaryFamily != "" {
			set[c.PrimaryFamily] = struct{}{}
		}
	}
	out := make([]string, 0, len(set))
	for f := range set {
		out = append(out, f)
	}
	sort.Strings(out)
	return out
}

// Regions joins every code-mapped geometry id, sorted by country name.
// Ids whose code has no record are skipped.
func (d Dataset) Regions() []Region {
	var out []Region
	for id := range d.Codes {
		r := d.Lookup(id, "")
		if r.HasData {
			out = append(out, r)
		}
	}
	col := collate.New(language.English)
	slices.SortFunc(out, func(a, b Region) int {
		if n := col.CompareString(a.Name, b.Name); n != 0 {
			return n
		}
		return col.CompareString(a.ID, b.ID)
	})
	return out
}
