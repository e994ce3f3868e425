package tui

import (
	"fmt"
	"strings"

	"langmap/internal/langdata"
	"langmap/internal/palette"
)

func (m Model) renderLegend() string {
	var b strings.Builder
	switch m.mode {
	case langdata.ModeHighlight:
		b.WriteString(headingStyle.Render("Legend") + "\n")
		if m.selection.Len() == 0 {
			b.WriteString(dimStyle.Render("Select one or more languages to highlight") + "\n")
			break
		}
		for _, code := range m.selection.Codes() {
			c, _ := m.selection.Color(code)
			fmt.Fprintf(&b, "%s Speaks %s\n", swatch(c), m.data.LanguageName(code))
		}
		fmt.Fprintf(&b, "%s No selected languages spoken\n", swatch(palette.DefaultColor))
	case langdata.ModeFamilies:
		b.WriteString(headingStyle.Render("Language Families") + "\n")
		for _, f := range m.families.Labels() {
			c, _ := m.families.Color(f)
			fmt.Fprintf(&b, "%s %s\n", swatch(c), f)
		}
	}
	fmt.Fprintf(&b, "%s No data", swatch(palette.NoDataColor))
	return b.String()
}

func (m Model) renderDetail() string {
	r := m.selected
	if r == nil {
		return ""
	}
	var b strings.Builder
	b.WriteString(headingStyle.Render(r.Name) + "\n")
	if !r.HasData {
		b.WriteString(dimStyle.Render("No language data available"))
		return b.String()
	}
	fmt.Fprintf(&b, "Code: %s\n", r.Code)
	b.WriteString(dimStyle.Render("Primary Language Family") + "\n")
	b.WriteString(r.Family + "\n")
	b.WriteString(dimStyle.Render("Official / Major Languages"))
	for _, code := range r.Languages {
		l := m.data.Language(code)
		name := l.Name
		if l.NativeName != "" && l.NativeName != l.Name {
			name += " (" + l.NativeName + ")"
		}
		b.WriteString("\n• " + name)
		if l.Family != "" {
			b.WriteString(dimStyle.Render(" · " + l.Family))
		}
	}
	return b.String()
}

// tooltipLines is the plain text shown next to the pointer.
func (m Model) tooltipLines(r langdata.Region) []string {
	lines := []string{r.Name}
	if !r.HasData || len(r.Languages) == 0 {
		return append(lines, "No language data")
	}
	names := make([]string, 0, len(r.Languages))
	for _, code := range r.Languages {
		names = append(names, m.data.LanguageName(code))
	}
	return append(lines,
		"Languages: "+strings.Join(names, ", "),
		"Family: "+r.Family,
	)
}
