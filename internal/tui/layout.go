package tui

import (
	"github.com/charmbracelet/lipgloss"

	"langmap/internal/viewport"
)

const (
	sidebarWidth = 34
	headerHeight = 1
)

type layout struct {
	contentW, contentH int
	mapX, mapY         int // map origin in terminal cells
	mapW, mapH         int
}

// layout must match the composition in View.
func (m Model) layout() layout {
	if m.width == 0 || m.height == 0 {
		return layout{}
	}
	// status line plus however many rows the key help takes
	footerHeight := 1 + lipgloss.Height(m.help.View(m.keys))
	l := layout{
		contentW: max(10, m.width),
		contentH: max(4, m.height-headerHeight-footerHeight),
	}
	l.mapX = sidebarWidth + 1
	l.mapY = headerHeight
	l.mapW = max(10, l.contentW-sidebarWidth-1)
	l.mapH = l.contentH
	return l
}

// mapCell converts a terminal cell to map-local coordinates.
func (l layout) mapCell(x, y int) (cx, cy int, inside bool) {
	cx, cy = x-l.mapX, y-l.mapY
	inside = cx >= 0 && cx < l.mapW && cy >= 0 && cy < l.mapH
	return cx, cy, inside
}

// pointer is the viewport position of the centre of a map-local cell.
func pointer(cx, cy int) viewport.Point {
	return viewport.Point{X: float64(cx) + 0.5, Y: float64(cy) + 0.5}
}
