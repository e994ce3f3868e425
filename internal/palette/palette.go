// Package palette assigns display colors to highlighted languages and to
// language families.
package palette

import (
	"math"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// Color is a "#rrggbb" hex color.
type Color string

// Fixed map colors.
const (
	DefaultColor   Color = "#2b3648"
	HoverColor     Color = "#60a5fa"
	NoDataColor    Color = "#111a28"
	StrokeColor    Color = "#4d5d78"
	GraticuleColor Color = "#253449"
	NeutralColor   Color = "#6b7280"
	OceanColor     Color = "#0b0f14"
)

var highlight = [...]Color{
	"#60a5fa",
	"#34d399",
	"#f59e0b",
	"#f87171",
	"#22d3ee",
	"#a78bfa",
	"#f472b6",
	"#fb7185",
	"#4ade80",
	"#facc15",
}

const (
	goldenAngle  = 137.508
	generatedSat = 0.72
	generatedLum = 0.58
)

// CuratedSize is the number of hand-picked highlight colors.
const CuratedSize = len(highlight)

// ColorForIndex returns the i-th highlight color. The first CuratedSize
// indices come from the curated palette; later ones rotate the hue by the
// golden angle so consecutive colors stay far apart.
func ColorForIndex(i int) Color {
	if i < 0 {
		i = 0
	}
	if i < len(highlight) {
		return highlight[i]
	}
	hue := float64(GeneratedHue(i))
	return Color(colorful.Hsl(hue, generatedSat, generatedLum).Clamped().Hex())
}

// GeneratedHue is the hue in degrees [0,360) used for index i past the
// curated palette.
func GeneratedHue(i int) int {
	return int(math.Round(float64(i)*goldenAngle)) % 360
}
