package tui

import (
	"io"
	"log/slog"

	"github.com/charmbracelet/bubbles/help"
	list "github.com/charmbracelet/bubbles/list"
	table "github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"

	"langmap/internal/geom"
	"langmap/internal/langdata"
	"langmap/internal/palette"
	"langmap/internal/viewport"
)

// Options configure a Model.
type Options struct {
	Data           langdata.Dataset
	GeometryPath   string
	TopologyObject string
	Mode           langdata.Mode
	WheelStep      float64 // wheel delta per tick
	PanStep        int     // cells per pan key press
	Logger         *slog.Logger
}

type loadState int

const (
	loadPending loadState = iota
	loadReady
	loadFailed
)

// hoverState is the region under the pointer and where the pointer is.
type hoverState struct {
	feature int
	region  langdata.Region
	cx, cy  int // map-local cell
}

type Model struct {
	width  int
	height int

	opts Options
	log  *slog.Logger
	keys keyMap
	help help.Model

	status string

	// reference data
	data     langdata.Dataset
	families palette.FamilyPalette

	// map data
	load      loadState
	loadErr   error
	features  []geom.Feature
	regions   []langdata.Region // joined per feature
	projected geom.Projected
	mapW      int
	mapH      int

	// pan and zoom
	vp      viewport.Viewport
	pan     *viewport.PanSession
	dragged bool // last gesture was a drag; cleared by dragClearMsg

	// pointer
	hover      *hoverState
	hasGeo     bool
	pointerLon float64
	pointerLat float64

	// coloring
	mode      langdata.Mode
	selection palette.Selection

	// detail panel
	selected *langdata.Region

	// language selector
	langs list.Model

	// country table
	showTable bool
	tbl       table.Model
	tblRows   []langdata.Region
}

func New(opts Options) Model {
	if opts.WheelStep <= 0 {
		opts.WheelStep = 100
	}
	if opts.PanStep <= 0 {
		opts.PanStep = 4
	}
	if opts.Logger == nil {
		opts.Logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	m := Model{
		opts:     opts,
		log:      opts.Logger,
		keys:     defaultKeys(),
		help:     help.New(),
		status:   "loading map data",
		data:     opts.Data,
		families: palette.NewFamilyPalette(opts.Data.UniqueFamilies()),
		mode:     opts.Mode,
		vp:       viewport.New(viewport.Size{}),
	}
	m.langs = newLanguageList()
	m.refreshLanguages()
	m.tbl = newCountryTable()
	m.refreshCountries()
	return m
}

func (m Model) Init() tea.Cmd {
	return loadGeometry(m.opts.GeometryPath, m.opts.TopologyObject)
}

func (m Model) colorizer() langdata.Colorizer {
	return langdata.Colorizer{Mode: m.mode, Selection: m.selection, Families: m.families}
}
