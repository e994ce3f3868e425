package tui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"langmap/internal/langdata"
)

func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}
	l := m.layout()

	// Header
	header := titleStyle.Render(" langmap ─ world languages ")
	header = lipgloss.NewStyle().Width(l.contentW).Render(header)

	// Sidebar
	sidebar := lipgloss.NewStyle().Width(sidebarWidth).Height(l.contentH).MaxHeight(l.contentH).
		Render(m.renderSidebar())

	// Map viewport
	var mapView string
	switch {
	case m.showTable:
		mapView = lipgloss.Place(l.mapW, l.mapH, lipgloss.Center, lipgloss.Center, boxStyle.Render(m.tbl.View()))
	case m.load == loadFailed:
		msg := errorStyle.Render("Failed to load map data: " + m.loadErr.Error())
		mapView = lipgloss.Place(l.mapW, l.mapH, lipgloss.Center, lipgloss.Center,
			lipgloss.NewStyle().MaxWidth(l.mapW).Render(msg))
	case m.load == loadPending || m.mapW != l.mapW || m.mapH != l.mapH:
		mapView = lipgloss.Place(l.mapW, l.mapH, lipgloss.Center, lipgloss.Center, dimStyle.Render("Loading map…"))
	default:
		mapView = m.renderMap(l.mapW, l.mapH)
	}
	mapView = lipgloss.NewStyle().Width(l.mapW).Height(l.mapH).MaxHeight(l.mapH).Render(mapView)

	body := lipgloss.JoinHorizontal(lipgloss.Top, sidebar, " ", mapView)

	// Footer: status and pointer on the first line, key help on the second
	status := dimStyle.Render(" " + m.status + " ")
	coords := fmt.Sprintf("zoom %.2fx ", m.vp.Transform().Scale)
	if m.hasGeo {
		coords = fmt.Sprintf("lon=%.3f lat=%.3f  ", m.pointerLon, m.pointerLat) + coords
	}
	coords = dimStyle.Render(coords)
	spacerW := max(0, l.contentW-lipgloss.Width(status)-lipgloss.Width(coords))
	line := lipgloss.JoinHorizontal(lipgloss.Bottom, status, lipgloss.NewStyle().Width(spacerW).Render(""), coords)
	helpLine := " " + m.help.View(m.keys)
	footer := lipgloss.NewStyle().Width(l.contentW).
		Render(lipgloss.JoinVertical(lipgloss.Left, line, helpLine))

	ui := lipgloss.JoinVertical(lipgloss.Left, header, body, footer)
	return appStyle.Width(l.contentW).Height(m.height).MaxHeight(m.height).Render(ui)
}

type sidebarParts struct {
	mode, summary, legend, detail string
}

func (m Model) sidebarParts() sidebarParts {
	pad := lipgloss.NewStyle().Width(sidebarWidth - 2).PaddingLeft(1)
	p := sidebarParts{
		mode:    pad.Render(headingStyle.Render("Mode: ") + m.mode.String() + dimStyle.Render("  (m)")),
		summary: pad.Render(dimStyle.Render(m.selectionSummary() + "  c clear")),
		legend:  pad.Render(m.renderLegend()),
	}
	if m.selected != nil {
		p.detail = boxStyle.Width(sidebarWidth - 2).Render(m.renderDetail())
	}
	return p
}

// listHeight is what the selector gets once the other sidebar blocks are
// placed.
func (p sidebarParts) listHeight(total int) int {
	used := lipgloss.Height(p.mode) + lipgloss.Height(p.summary) + lipgloss.Height(p.legend) + 1
	if p.detail != "" {
		used += lipgloss.Height(p.detail) + 1
	}
	return max(3, total-used)
}

// renderSidebar stacks the mode line, the language selector, the legend
// and the detail panel.
func (m Model) renderSidebar() string {
	p := m.sidebarParts()
	blocks := []string{p.mode}
	if m.mode == langdata.ModeHighlight {
		blocks = append(blocks, p.summary, m.langs.View())
	}
	blocks = append(blocks, "", p.legend)
	if p.detail != "" {
		blocks = append(blocks, "", p.detail)
	}
	return lipgloss.JoinVertical(lipgloss.Left, blocks...)
}

// syncWidgets sizes the selector and table to the current layout. Sizes
// live on the model so paging in Update matches what View draws.
func (m *Model) syncWidgets() {
	l := m.layout()
	if l.contentH == 0 {
		return
	}
	h := m.sidebarParts().listHeight(l.contentH)
	if m.langs.Height() != h || m.langs.Width() != sidebarWidth-2 {
		m.langs.SetSize(sidebarWidth-2, h)
	}
	if th := max(3, min(l.mapH-4, 20)); m.tbl.Height() != th {
		m.tbl.SetHeight(th)
	}
}
