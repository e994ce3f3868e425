package geom_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"langmap/internal/geom"
)

const topo = `{
  "type": "Topology",
  "transform": {"scale": [0.5, 2], "translate": [100, -50]},
  "objects": {
    "countries": {
      "type": "GeometryCollection",
      "geometries": [
        {"type": "Polygon", "id": "004", "properties": {"name": "Alpha"}, "arcs": [[0, 1]]},
        {"type": "MultiPolygon", "id": 8, "properties": {"name": "Beta"}, "arcs": [[[-2, -1]]]},
        {"type": null, "id": "999"}
      ]
    },
    "land": {"type": "GeometryCollection", "geometries": []}
  },
  "arcs": [
    [[0, 0], [10, 0], [0, 10]],
    [[10, 10], [-10, 0], [0, -10]]
  ]
}`

func TestDecodeTopoJSON(t *testing.T) {
	c, err := geom.DecodeTopoJSON([]byte(topo), "countries")
	require.NoError(t, err)
	require.Len(t, c.Features, 2)

	a := c.Features[0]
	assert.Equal(t, "004", a.ID)
	assert.Equal(t, "Alpha", a.Name)
	require.Len(t, a.Geometry, 1)
	assert.Equal(t, orb.Ring{{100, -50}, {105, -50}, {105, -30}, {100, -30}, {100, -50}}, a.Geometry[0][0])

	b := c.Features[1]
	assert.Equal(t, "008", b.ID, "numeric ids are zero padded")
	assert.Equal(t, "Beta", b.Name)
	assert.Equal(t, orb.Ring{{100, -50}, {100, -30}, {105, -30}, {105, -50}, {100, -50}}, b.Geometry[0][0])
}

func TestDecodeTopoJSONObjectSelection(t *testing.T) {
	_, err := geom.DecodeTopoJSON([]byte(topo), "rivers")
	assert.ErrorIs(t, err, geom.ErrMissingObject)

	// "countries" sorts before "land"
	c, err := geom.DecodeTopoJSON([]byte(topo), "")
	require.NoError(t, err)
	assert.Len(t, c.Features, 2)

	_, err = geom.DecodeTopoJSON([]byte(topo), "land")
	assert.ErrorIs(t, err, geom.ErrNoFeatures)
}

func TestDecodeTopoJSONBadArcIndex(t *testing.T) {
	doc := `{"type":"Topology","objects":{"c":{"type":"Polygon","arcs":[[7]]}},"arcs":[[[0,0],[1,1]]]}`
	_, err := geom.DecodeTopoJSON([]byte(doc), "c")
	assert.True(t, errors.Is(err, geom.ErrArcIndexOutOfRange))
}

const squares = `{
  "type": "FeatureCollection",
  "features": [
    {"type": "Feature", "id": "250", "properties": {"name": "Square"},
     "geometry": {"type": "Polygon", "coordinates": [
       [[-10,-10],[10,-10],[10,10],[-10,10],[-10,-10]],
       [[-2,-2],[2,-2],[2,2],[-2,2],[-2,-2]]
     ]}},
    {"type": "Feature", "id": 36, "properties": {"name": "Islands"},
     "geometry": {"type": "MultiPolygon", "coordinates": [
       [[[20,20],[30,20],[30,30],[20,30],[20,20]]],
       [[[40,-30],[50,-30],[50,-20],[40,-20],[40,-30]]]
     ]}},
    {"type": "Feature", "id": "x", "properties": {},
     "geometry": {"type": "Point", "coordinates": [0, 0]}}
  ]
}`

func TestDecodeGeoJSON(t *testing.T) {
	c, err := geom.Decode([]byte(squares), "")
	require.NoError(t, err)
	require.Len(t, c.Features, 2, "points are dropped")
	assert.Equal(t, "250", c.Features[0].ID)
	assert.Equal(t, "Square", c.Features[0].Name)
	assert.Len(t, c.Features[0].Geometry[0], 2)
	assert.Equal(t, "036", c.Features[1].ID)
	assert.Len(t, c.Features[1].Geometry, 2)
}

func TestDecodeUnsupported(t *testing.T) {
	_, err := geom.Decode([]byte(`{"type":"Point","coordinates":[1,2]}`), "")
	assert.ErrorIs(t, err, geom.ErrUnsupportedFormat)

	_, err = geom.Decode([]byte(`not json`), "")
	assert.Error(t, err)

	_, err = geom.Decode([]byte(`{"type":"FeatureCollection","features":[]}`), "")
	assert.ErrorIs(t, err, geom.ErrNoFeatures)
}

func TestLoadFromFile(t *testing.T) {
	dir := t.TempDir()
	p := filepath.Join(dir, "countries.json")
	require.NoError(t, os.WriteFile(p, []byte(topo), 0o644))

	c, err := geom.Load(p, "countries")
	require.NoError(t, err)
	assert.Len(t, c.Features, 2)

	_, err = geom.Load(filepath.Join(dir, "missing.json"), "countries")
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestProjectionInvertsItself(t *testing.T) {
	p := geom.Fit(geom.Collection{}, 400, 200)
	for lon := -170.0; lon <= 170; lon += 17 {
		for lat := -85.0; lat <= 85; lat += 17 {
			got, ok := p.Invert(p.Project(orb.Point{lon, lat}))
			require.True(t, ok)
			assert.InDelta(t, lon, got[0], 1e-6)
			assert.InDelta(t, lat, got[1], 1e-6)
		}
	}
}

func TestFitCentersSphere(t *testing.T) {
	p := geom.Fit(geom.Collection{}, 200, 100)
	center := p.Project(orb.Point{0, 0})
	assert.InDelta(t, 100, center[0], 1e-9)
	assert.InDelta(t, 50, center[1], 1e-9)

	north := p.Project(orb.Point{0, 90})
	south := p.Project(orb.Point{0, -90})
	assert.Less(t, north[1], south[1], "north is up")
	assert.InDelta(t, 0, north[1], 1e-6)
	assert.InDelta(t, 100, south[1], 1e-6)

	_, ok := p.Invert(orb.Point{-500, -500})
	assert.False(t, ok)
}

func TestProjectedAt(t *testing.T) {
	c, err := geom.DecodeGeoJSON([]byte(squares))
	require.NoError(t, err)
	pr := geom.ProjectCollection(c, 300, 150)
	require.Len(t, pr.Shapes, 2)
	assert.NotEmpty(t, pr.Graticule)

	proj := pr.Projection
	s, ok := pr.At(proj.Project(orb.Point{6, 6}))
	require.True(t, ok)
	assert.Equal(t, 0, s.Index)

	_, ok = pr.At(proj.Project(orb.Point{0, 0}))
	assert.False(t, ok, "inside the hole")

	s, ok = pr.At(proj.Project(orb.Point{45, -25}))
	require.True(t, ok)
	assert.Equal(t, 1, s.Index)

	_, ok = pr.At(proj.Project(orb.Point{-40, 25}))
	assert.False(t, ok, "ocean")
}

func TestGraticule(t *testing.T) {
	lines := geom.Graticule(30)
	// 11 inner meridians, 6 parallels (-80..70), 2 outline meridians
	assert.Len(t, lines, 11+6+2)
	for _, ls := range lines {
		assert.GreaterOrEqual(t, len(ls), 2)
	}
}
