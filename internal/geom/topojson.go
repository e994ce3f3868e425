package geom

import (
	"encoding/json"
	"fmt"
	"slices"
	"sort"

	"github.com/paulmach/orb"
)

type topology struct {
	Type      string                     `json:"type"`
	Transform *topoTransform             `json:"transform"`
	Objects   map[string]json.RawMessage `json:"objects"`
	Arcs      [][][]float64              `json:"arcs"`
}

type topoTransform struct {
	Scale     [2]float64 `json:"scale"`
	Translate [2]float64 `json:"translate"`
}

type topoGeometry struct {
	Type       string          `json:"type"`
	ID         any             `json:"id"`
	Properties map[string]any  `json:"properties"`
	Arcs       json.RawMessage `json:"arcs"`
	Geometries []topoGeometry  `json:"geometries"`
}

// DecodeTopoJSON converts the named object of a topology (for world-atlas
// this is "countries") into features. When object is empty or missing the
// first object in name order is used.
func DecodeTopoJSON(data []byte, object string) (Collection, error) {
	var topo topology
	if err := json.Unmarshal(data, &topo); err != nil {
		return Collection{}, fmt.Errorf("decode topojson: %w", err)
	}
	raw, ok := topo.Objects[object]
	if !ok {
		if object != "" && len(topo.Objects) > 0 {
			return Collection{}, fmt.Errorf("%w: %q", ErrMissingObject, object)
		}
		names := make([]string, 0, len(topo.Objects))
		for name := range topo.Objects {
			names = append(names, name)
		}
		if len(names) == 0 {
			return Collection{}, ErrNoFeatures
		}
		sort.Strings(names)
		raw = topo.Objects[names[0]]
	}
	var root topoGeometry
	if err := json.Unmarshal(raw, &root); err != nil {
		return Collection{}, fmt.Errorf("decode topojson object: %w", err)
	}

	arcs := topo.decodeArcs()
	var c Collection
	var walk func(g topoGeometry) error
	walk = func(g topoGeometry) error {
		if g.Type != "GeometryCollection" && len(g.Arcs) == 0 {
			return nil
		}
		switch g.Type {
		case "GeometryCollection":
			for _, child := range g.Geometries {
				if err := walk(child); err != nil {
					return err
				}
			}
			return nil
		case "Polygon":
			var rings [][]int
			if err := json.Unmarshal(g.Arcs, &rings); err != nil {
				return fmt.Errorf("polygon arcs: %w", err)
			}
			poly, err := polygon(arcs, rings)
			if err != nil {
				return err
			}
			c.Features = append(c.Features, Feature{ID: normalizeID(g.ID), Name: featureName(g.Properties), Geometry: orb.MultiPolygon{poly}})
			return nil
		case "MultiPolygon":
			var polys [][][]int
			if err := json.Unmarshal(g.Arcs, &polys); err != nil {
				return fmt.Errorf("multipolygon arcs: %w", err)
			}
			mp := make(orb.MultiPolygon, 0, len(polys))
			for _, rings := range polys {
				poly, err := polygon(arcs, rings)
				if err != nil {
					return err
				}
				mp = append(mp, poly)
			}
			c.Features = append(c.Features, Feature{ID: normalizeID(g.ID), Name: featureName(g.Properties), Geometry: mp})
			return nil
		default:
			// points, lines and null geometries carry no region
			return nil
		}
	}
	if err := walk(root); err != nil {
		return Collection{}, err
	}
	if len(c.Features) == 0 {
		return Collection{}, ErrNoFeatures
	}
	return c, nil
}

// decodeArcs resolves quantized, delta-encoded arcs into absolute lon/lat.
func (t topology) decodeArcs() [][]orb.Point {
	out := make([][]orb.Point, len(t.Arcs))
	for i, arc := range t.Arcs {
		pts := make([]orb.Point, 0, len(arc))
		var x, y float64
		for _, p := range arc {
			if len(p) < 2 {
				continue
			}
			if t.Transform == nil {
				pts = append(pts, orb.Point{p[0], p[1]})
				continue
			}
			x += p[0]
			y += p[1]
			pts = append(pts, orb.Point{
				x*t.Transform.Scale[0] + t.Transform.Translate[0],
				y*t.Transform.Scale[1] + t.Transform.Translate[1],
			})
		}
		out[i] = pts
	}
	return out
}

func polygon(arcs [][]orb.Point, rings [][]int) (orb.Polygon, error) {
	poly := make(orb.Polygon, 0, len(rings))
	for _, idx := range rings {
		r, err := ring(arcs, idx)
		if err != nil {
			return nil, err
		}
		poly = append(poly, r)
	}
	return poly, nil
}

// ring stitches arcs together. A negative index ~i means arc i reversed.
// Consecutive arcs share an endpoint, which is kept once.
func ring(arcs [][]orb.Point, idx []int) (orb.Ring, error) {
	var r orb.Ring
	for k, i := range idx {
		reverse := i < 0
		if reverse {
			i = ^i
		}
		if i >= len(arcs) {
			return nil, fmt.Errorf("%w: %d of %d", ErrArcIndexOutOfRange, i, len(arcs))
		}
		pts := slices.Clone(arcs[i])
		if reverse {
			slices.Reverse(pts)
		}
		if k > 0 && len(pts) > 0 {
			pts = pts[1:]
		}
		r = append(r, pts...)
	}
	return r, nil
}
