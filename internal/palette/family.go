package palette

import (
	"slices"
	"sort"
)

// Tableau10 categorical scheme.
var categorical = [...]Color{
	"#4e79a7",
	"#f28e2c",
	"#e15759",
	"#76b7b2",
	"#59a14f",
	"#edc949",
	"#af7aa1",
	"#ff9da7",
	"#9c755f",
	"#bab0ab",
}

// FamilyPalette maps language family labels to categorical colors.
type FamilyPalette struct {
	labels []string
	index  map[string]int
}

// NewFamilyPalette sorts the distinct labels and assigns colors by position
// modulo the palette size. Empty labels are skipped.
func NewFamilyPalette(labels []string) FamilyPalette {
	seen := make(map[string]struct{}, len(labels))
	uniq := make([]string, 0, len(labels))
	for _, l := range labels {
		if l == "" {
			continue
		}
		if _, ok := seen[l]; ok {
			continue
		}
		seen[l] = struct{}{}
		uniq = append(uniq, l)
	}
	sort.Strings(uniq)
	p := FamilyPalette{labels: uniq, index: make(map[string]int, len(uniq))}
	for i, l := range uniq {
		p.index[l] = i
	}
	return p
}

// Color returns the label's color, or NeutralColor and false when the label
// is not part of the palette.
func (p FamilyPalette) Color(label string) (Color, bool) {
	i, ok := p.index[label]
	if !ok {
		return NeutralColor, false
	}
	return categorical[i%len(categorical)], true
}

// Labels returns the sorted labels.
func (p FamilyPalette) Labels() []string { return slices.Clone(p.labels) }
