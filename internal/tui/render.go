package tui

import (
	"math"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
	"github.com/paulmach/orb"

	"langmap/internal/palette"
)

const (
	tooltipFg palette.Color = "#E6E6E6"
	tooltipBg palette.Color = "#111827"
)

// cell is one terminal cell of the map.
type cell struct {
	r      rune
	fg, bg palette.Color
	skip   bool // covered by the wide rune to its left
}

// raster is the per-frame micro-grid of the map area.
type raster struct {
	w, h    int // cells
	mw, mh  int // micro-dots
	owner   []int32
	scale   float64
	ox, oy  float64 // translate in micro-dots
	cells   []cell
	hovered int32
}

func (m Model) renderMap(w, h int) string {
	rs := m.rasterize(w, h)
	if m.hover != nil && m.pan == nil {
		rs.stampTooltip(m.hover.cx, m.hover.cy, m.tooltipLines(m.hover.region))
	}
	return rs.String()
}

func (m Model) rasterize(w, h int) *raster {
	t := m.vp.Transform()
	rs := &raster{
		w: w, h: h,
		mw: w * 2, mh: h * 4,
		scale:   t.Scale,
		ox:      t.X * 2,
		oy:      t.Y * 4,
		cells:   make([]cell, w*h),
		hovered: -1,
	}
	rs.owner = make([]int32, rs.mw*rs.mh)
	for i := range rs.owner {
		rs.owner[i] = -1
	}
	if m.hover != nil {
		rs.hovered = int32(m.hover.feature)
	}

	for _, s := range m.projected.Shapes {
		minX, minY := rs.screen(s.Bound.Min)
		maxX, maxY := rs.screen(s.Bound.Max)
		if maxX < 0 || maxY < 0 || minX >= float64(rs.mw) || minY >= float64(rs.mh) {
			continue
		}
		for _, poly := range s.Polygons {
			rs.fill(poly, int32(s.Index))
		}
	}

	border := newBrailleBuf(w, h)
	hoverBorder := newBrailleBuf(w, h)
	rs.borders(border, hoverBorder)

	grat := newBrailleBuf(w, h)
	for _, ls := range m.projected.Graticule {
		for i := 1; i < len(ls); i++ {
			x0, y0 := rs.screen(ls[i-1])
			x1, y1 := rs.screen(ls[i])
			grat.drawLineMicro(round(x0), round(y0), round(x1), round(y1))
		}
	}

	col := m.colorizer()
	fills := make(map[int32]palette.Color)
	fill := func(o int32) palette.Color {
		if o < 0 {
			return palette.OceanColor
		}
		c, ok := fills[o]
		if !ok {
			c = col.Color(m.regions[o])
			fills[o] = c
		}
		return c
	}

	for cy := 0; cy < h; cy++ {
		for cx := 0; cx < w; cx++ {
			o := rs.majority(cx, cy)
			c := cell{r: ' ', bg: fill(o)}
			hb, bb := hoverBorder.mask(cx, cy), border.mask(cx, cy)
			switch {
			case hb != 0:
				c.r, c.fg = brailleRune(hb|bb), palette.HoverColor
			case bb != 0:
				c.r, c.fg = brailleRune(bb), palette.StrokeColor
			case o < 0 && grat.mask(cx, cy) != 0:
				c.r, c.fg = brailleRune(grat.mask(cx, cy)), palette.GraticuleColor
			}
			rs.cells[cy*w+cx] = c
		}
	}
	return rs
}

func (rs *raster) screen(p orb.Point) (float64, float64) {
	return rs.ox + p[0]*rs.scale, rs.oy + p[1]*rs.scale
}

func round(v float64) int { return int(math.Round(v)) }

type edge struct{ x0, y0, x1, y1 float64 }

// fill paints a polygon (holes included) into the owner grid with the
// even-odd rule, sampling each micro-dot at its centre.
func (rs *raster) fill(poly orb.Polygon, id int32) {
	var edges []edge
	minY, maxY := math.Inf(1), math.Inf(-1)
	for _, r := range poly {
		if len(r) < 3 {
			continue
		}
		for i := range r {
			j := (i + 1) % len(r)
			x0, y0 := rs.screen(r[i])
			x1, y1 := rs.screen(r[j])
			if y0 == y1 { // horizontal edge: skip
				continue
			}
			edges = append(edges, edge{x0, y0, x1, y1})
			minY = math.Min(minY, math.Min(y0, y1))
			maxY = math.Max(maxY, math.Max(y0, y1))
		}
	}
	if len(edges) == 0 {
		return
	}
	yStart := clampInt(int(math.Floor(minY)), 0, rs.mh)
	yEnd := clampInt(int(math.Ceil(maxY)), 0, rs.mh)
	var xs []float64
	for y := yStart; y < yEnd; y++ {
		sy := float64(y) + 0.5
		xs = xs[:0]
		for _, e := range edges {
			if (sy >= e.y0 && sy < e.y1) || (sy >= e.y1 && sy < e.y0) {
				xs = append(xs, e.x0+(sy-e.y0)*(e.x1-e.x0)/(e.y1-e.y0))
			}
		}
		sort.Float64s(xs)
		row := rs.owner[y*rs.mw : (y+1)*rs.mw]
		for i := 0; i+1 < len(xs); i += 2 {
			from := clampInt(int(math.Ceil(xs[i]-0.5)), 0, rs.mw)
			to := clampInt(int(math.Ceil(xs[i+1]-0.5)), 0, rs.mw)
			for x := from; x < to; x++ {
				row[x] = id
			}
		}
	}
}

// borders marks land dots whose neighbour belongs to someone else.
func (rs *raster) borders(border, hover *brailleBuf) {
	for y := 0; y < rs.mh; y++ {
		for x := 0; x < rs.mw; x++ {
			i := y*rs.mw + x
			o := rs.owner[i]
			if o < 0 {
				continue
			}
			if (x > 0 && rs.owner[i-1] != o) ||
				(x < rs.mw-1 && rs.owner[i+1] != o) ||
				(y > 0 && rs.owner[i-rs.mw] != o) ||
				(y < rs.mh-1 && rs.owner[i+rs.mw] != o) {
				if o == rs.hovered {
					hover.setPixel(x, y)
				} else {
					border.setPixel(x, y)
				}
			}
		}
	}
}

// majority returns the owner covering most of a cell's eight dots.
func (rs *raster) majority(cx, cy int) int32 {
	var ids [8]int32
	var counts [8]int
	n := 0
	for dy := 0; dy < 4; dy++ {
		row := (cy*4 + dy) * rs.mw
		for dx := 0; dx < 2; dx++ {
			o := rs.owner[row+cx*2+dx]
			k := 0
			for k < n && ids[k] != o {
				k++
			}
			if k == n {
				ids[n] = o
				n++
			}
			counts[k]++
		}
	}
	best := 0
	for k := 1; k < n; k++ {
		if counts[k] > counts[best] {
			best = k
		}
	}
	return ids[best]
}

// stampTooltip writes a text box beside the pointer cell, flipping to the
// other side when it would leave the map.
func (rs *raster) stampTooltip(px, py int, lines []string) {
	if len(lines) == 0 || rs.w < 6 {
		return
	}
	inner := 0
	for _, l := range lines {
		inner = max(inner, runewidth.StringWidth(l))
	}
	inner = min(inner, rs.w-2)
	bw, bh := inner+2, min(len(lines), rs.h)

	x, y := px+2, py+1
	if x+bw > rs.w {
		x = px - bw - 1
	}
	if y+bh > rs.h {
		y = rs.h - bh
	}
	x, y = clampInt(x, 0, rs.w-bw), max(0, y)

	for row := 0; row < bh; row++ {
		base := (y + row) * rs.w
		for col := x; col < x+bw; col++ {
			rs.cells[base+col] = cell{r: ' ', fg: tooltipFg, bg: tooltipBg}
		}
		col := x + 1
		for _, r := range runewidth.Truncate(lines[row], inner, "…") {
			rw := runewidth.RuneWidth(r)
			if rw == 0 || col+rw > x+bw-1 {
				continue
			}
			rs.cells[base+col].r = r
			if rw == 2 {
				rs.cells[base+col+1].skip = true
			}
			col += rw
		}
	}
}

// String renders the cells, one lipgloss style per run of equal colors.
func (rs *raster) String() string {
	styles := make(map[[2]palette.Color]lipgloss.Style)
	style := func(fg, bg palette.Color) lipgloss.Style {
		k := [2]palette.Color{fg, bg}
		s, ok := styles[k]
		if !ok {
			s = lipgloss.NewStyle().Background(lipgloss.Color(string(bg)))
			if fg != "" {
				s = s.Foreground(lipgloss.Color(string(fg)))
			}
			styles[k] = s
		}
		return s
	}

	var out strings.Builder
	var run []rune
	for y := 0; y < rs.h; y++ {
		if y > 0 {
			out.WriteByte('\n')
		}
		row := rs.cells[y*rs.w : (y+1)*rs.w]
		var cur cell
		run = run[:0]
		flush := func() {
			if len(run) > 0 {
				out.WriteString(style(cur.fg, cur.bg).Render(string(run)))
				run = run[:0]
			}
		}
		for _, c := range row {
			if c.skip {
				continue
			}
			if len(run) > 0 && (c.fg != cur.fg || c.bg != cur.bg) {
				flush()
			}
			cur = c
			run = append(run, c.r)
		}
		flush()
	}
	return out.String()
}
