package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"langmap/internal/geom"
	"langmap/internal/langdata"
	"langmap/internal/viewport"
)

type geometryLoadedMsg struct {
	path       string
	collection geom.Collection
}

type geometryFailedMsg struct {
	path string
	err  error
}

// loadGeometry reads the map once. There is no retry.
func loadGeometry(path, object string) tea.Cmd {
	return func() tea.Msg {
		c, err := geom.Load(path, object)
		if err != nil {
			return geometryFailedMsg{path: path, err: err}
		}
		return geometryLoadedMsg{path: path, collection: c}
	}
}

func (m *Model) geometryLoaded(msg geometryLoadedMsg) {
	m.load = loadReady
	m.features = msg.collection.Features
	m.regions = make([]langdata.Region, len(m.features))
	missing := 0
	for i, f := range m.features {
		m.regions[i] = m.data.Lookup(f.ID, f.Name)
		if !m.regions[i].HasData {
			missing++
		}
	}
	m.reproject()
	m.status = fmt.Sprintf("loaded %d regions", len(m.features))
	m.log.Info("geometry_loaded", "path", msg.path, "features", len(m.features), "without_data", missing)
}

func (m *Model) geometryFailed(msg geometryFailedMsg) {
	m.load = loadFailed
	m.loadErr = msg.err
	m.status = "map unavailable"
	m.log.Error("geometry_load_failed", "path", msg.path, "err", msg.err)
}

// reproject fits the features to the map area and resets the transform's
// bounds. Called on load and whenever the map area changes size.
func (m *Model) reproject() {
	l := m.layout()
	if l.mapW == m.mapW && l.mapH == m.mapH && m.projected.Shapes != nil {
		return
	}
	m.mapW, m.mapH = l.mapW, l.mapH
	size := viewport.Size{W: float64(l.mapW), H: float64(l.mapH)}
	m.vp.Resize(size, size)
	if m.load != loadReady || l.mapW <= 0 || l.mapH <= 0 {
		return
	}
	m.projected = geom.ProjectCollection(geom.Collection{Features: m.features}, float64(l.mapW*2), float64(l.mapH*4))
	m.hover = nil
}
