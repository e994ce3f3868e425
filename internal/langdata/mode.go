package langdata

import (
	"fmt"
	"strings"

	"langmap/internal/palette"
)

// Mode selects how regions are colored.
type Mode int

const (
	ModeHighlight Mode = iota
	ModeFamilies
)

func (m Mode) String() string {
	switch m {
	case ModeHighlight:
		return "highlight"
	case ModeFamilies:
		return "families"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// Next cycles to the other mode.
func (m Mode) Next() Mode {
	if m == ModeHighlight {
		return ModeFamilies
	}
	return ModeHighlight
}

func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "highlight":
		return ModeHighlight, nil
	case "families", "family":
		return ModeFamilies, nil
	}
	return ModeHighlight, fmt.Errorf("unknown mode %q", s)
}

// Colorizer picks a fill color for a region in the current mode.
type Colorizer struct {
	Mode      Mode
	Selection palette.Selection
	Families  palette.FamilyPalette
}

func (c Colorizer) Color(r Region) palette.Color {
	if !r.HasData {
		return palette.NoDataColor
	}
	switch c.Mode {
	case ModeHighlight:
		return c.highlight(r)
	case ModeFamilies:
		col, _ := c.Families.Color(r.Family)
		return col
	default:
		panic(fmt.Sprintf("langdata: unhandled mode %d", int(c.Mode)))
	}
}

// highlight colors by the first selected language the region speaks,
// taken in selection order.
func (c Colorizer) highlight(r Region) palette.Color {
	if c.Selection.Len() == 0 {
		return palette.DefaultColor
	}
	for _, code := range c.Selection.Codes() {
		for _, l := range r.Languages {
			if l != code {
				continue
			}
			if col, ok := c.Selection.Color(code); ok {
				return col
			}
		}
	}
	return palette.DefaultColor
}
