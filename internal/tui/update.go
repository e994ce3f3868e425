package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	list "github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/paulmach/orb"

	"langmap/internal/langdata"
	"langmap/internal/palette"
)

// clickMsg follows a release on the map. It is sequenced before
// dragClearMsg so a drag can still suppress it.
type clickMsg struct {
	cx, cy int
	inside bool
}

type dragClearMsg struct{}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	m, cmd := m.update(msg)
	m.syncWidgets()
	return m, cmd
}

func (m Model) update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.reproject()
		return m, nil
	case geometryLoadedMsg:
		m.geometryLoaded(msg)
		return m, nil
	case geometryFailedMsg:
		m.geometryFailed(msg)
		return m, nil
	case tea.BlurMsg:
		m.endPan()
		m.clearPointer()
		return m, nil
	case tea.MouseMsg:
		return m.handleMouse(msg)
	case clickMsg:
		m.handleClick(msg)
		return m, nil
	case dragClearMsg:
		m.dragged = false
		return m, nil
	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	var cmd tea.Cmd
	m.langs, cmd = m.langs.Update(msg)
	return m, cmd
}

func (m Model) handleKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	if m.langs.FilterState() == list.Filtering {
		var cmd tea.Cmd
		m.langs, cmd = m.langs.Update(msg)
		return m, cmd
	}
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.endPan()
		return m, tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		m.reproject()
		return m, nil
	case key.Matches(msg, m.keys.Mode):
		m.mode = m.mode.Next()
		m.status = "mode: " + m.mode.String()
		return m, nil
	case key.Matches(msg, m.keys.Countries):
		m.showTable = !m.showTable
		if m.showTable {
			m.tbl.Focus()
		} else {
			m.tbl.Blur()
		}
		return m, nil
	case key.Matches(msg, m.keys.Close):
		switch {
		case m.showTable:
			m.showTable = false
			m.tbl.Blur()
		case m.selected != nil:
			m.selected = nil
		default:
			var cmd tea.Cmd
			m.langs, cmd = m.langs.Update(msg)
			return m, cmd
		}
		return m, nil
	case key.Matches(msg, m.keys.ZoomIn):
		m.zoomCenter(-m.opts.WheelStep)
		return m, nil
	case key.Matches(msg, m.keys.ZoomOut):
		m.zoomCenter(m.opts.WheelStep)
		return m, nil
	case key.Matches(msg, m.keys.Reset):
		m.vp.Reset()
		m.status = "view reset"
		return m, nil
	case key.Matches(msg, m.keys.PanLeft):
		m.panBy(m.opts.PanStep, 0)
		return m, nil
	case key.Matches(msg, m.keys.PanRight):
		m.panBy(-m.opts.PanStep, 0)
		return m, nil
	case key.Matches(msg, m.keys.PanUp):
		m.panBy(0, m.opts.PanStep)
		return m, nil
	case key.Matches(msg, m.keys.PanDown):
		m.panBy(0, -m.opts.PanStep)
		return m, nil
	}

	if m.showTable {
		if key.Matches(msg, m.keys.Toggle) {
			if i := m.tbl.Cursor(); i >= 0 && i < len(m.tblRows) {
				r := m.tblRows[i]
				m.selected = &r
				m.showTable = false
				m.tbl.Blur()
				m.status = "selected " + r.Name
			}
			return m, nil
		}
		var cmd tea.Cmd
		m.tbl, cmd = m.tbl.Update(msg)
		return m, cmd
	}

	if m.mode == langdata.ModeHighlight {
		switch {
		case key.Matches(msg, m.keys.Toggle):
			if it, ok := m.langs.SelectedItem().(languageItem); ok {
				return m, m.setSelection(m.selection.Toggle(it.lang.Code))
			}
			return m, nil
		case key.Matches(msg, m.keys.Clear):
			return m, m.setSelection(m.selection.Clear())
		}
	}
	var cmd tea.Cmd
	m.langs, cmd = m.langs.Update(msg)
	return m, cmd
}

func (m Model) handleMouse(msg tea.MouseMsg) (Model, tea.Cmd) {
	l := m.layout()
	cx, cy, inside := l.mapCell(msg.X, msg.Y)

	// an active pan owns every pointer event, wherever it happens
	if m.pan.Active() {
		switch msg.Action {
		case tea.MouseActionMotion:
			m.pan.Move(&m.vp, pointer(cx, cy))
			return m, nil
		case tea.MouseActionRelease:
			m.dragged = m.endPan()
			return m, tea.Sequence(
				func() tea.Msg { return clickMsg{cx: cx, cy: cy, inside: inside} },
				func() tea.Msg { return dragClearMsg{} },
			)
		}
	}

	switch {
	case msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonWheelUp:
		if inside {
			m.zoomAt(cx, cy, -m.opts.WheelStep)
		}
	case msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonWheelDown:
		if inside {
			m.zoomAt(cx, cy, m.opts.WheelStep)
		}
	case msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft:
		if inside && m.load == loadReady {
			m.pan = m.vp.BeginPan(pointer(cx, cy))
			m.dragged = false
			m.hover = nil
		}
	case msg.Action == tea.MouseActionMotion:
		if inside {
			m.updatePointer(cx, cy)
		} else {
			m.clearPointer()
		}
	}
	return m, nil
}

// endPan releases the pan session and reports whether it was a drag.
func (m *Model) endPan() bool {
	if m.pan == nil {
		return false
	}
	dragged := m.pan.Dragged()
	m.pan.End()
	m.pan = nil
	return dragged
}

func (m *Model) handleClick(msg clickMsg) {
	if m.dragged {
		m.log.Debug("click_suppressed", "cx", msg.cx, "cy", msg.cy)
		return
	}
	if !msg.inside {
		return
	}
	i, ok := m.featureAt(msg.cx, msg.cy)
	if !ok {
		return
	}
	r := m.regions[i]
	m.selected = &r
	m.status = "selected " + r.Name
	m.log.Debug("region_selected", "id", r.ID, "code", r.Code)
}

func (m *Model) zoomAt(cx, cy int, delta float64) {
	if m.vp.Zoom(pointer(cx, cy), delta) {
		m.status = fmt.Sprintf("zoom: %.2fx", m.vp.Transform().Scale)
		m.updatePointer(cx, cy)
	}
}

func (m *Model) zoomCenter(delta float64) {
	if m.vp.ZoomCenter(delta) {
		m.status = fmt.Sprintf("zoom: %.2fx", m.vp.Transform().Scale)
		m.hover = nil
	}
}

func (m *Model) panBy(dx, dy int) {
	if m.vp.PanBy(float64(dx), float64(dy)) {
		m.hover = nil
	}
}

// microPoint is the projected-space point under a map-local cell.
func (m Model) microPoint(cx, cy int) orb.Point {
	w := m.vp.Transform().Invert(pointer(cx, cy))
	return orb.Point{w.X * 2, w.Y * 4}
}

// featureAt hit-tests a map-local cell and returns the feature index.
func (m Model) featureAt(cx, cy int) (int, bool) {
	if m.load != loadReady {
		return 0, false
	}
	s, ok := m.projected.At(m.microPoint(cx, cy))
	return s.Index, ok
}

func (m *Model) updatePointer(cx, cy int) {
	if m.load != loadReady {
		return
	}
	ll, ok := m.projected.Projection.Invert(m.microPoint(cx, cy))
	m.hasGeo = ok
	if ok {
		m.pointerLon, m.pointerLat = ll[0], ll[1]
	}
	i, ok := m.featureAt(cx, cy)
	if !ok {
		m.hover = nil
		return
	}
	m.hover = &hoverState{
		feature: i,
		region:  m.regions[i],
		cx:      cx,
		cy:      cy,
	}
}

func (m *Model) clearPointer() {
	m.hover = nil
	m.hasGeo = false
}

func (m *Model) setSelection(s palette.Selection) tea.Cmd {
	m.selection = s
	m.status = fmt.Sprintf("%d selected", s.Len())
	return m.refreshLanguages()
}
