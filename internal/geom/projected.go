package geom

import (
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/planar"
)

// Shape is a feature projected onto the surface.
type Shape struct {
	Index    int // position in Collection.Features
	Polygons orb.MultiPolygon
	Bound    orb.Bound
}

// Projected is a collection laid out on a surface, ready for rasterizing
// and hit testing.
type Projected struct {
	Projection Projection
	Shapes     []Shape
	Graticule  []orb.LineString
}

// ProjectCollection fits c into w x h and projects every feature and the
// graticule.
func ProjectCollection(c Collection, w, h float64) Projected {
	p := Fit(c, w, h)
	out := Projected{Projection: p, Shapes: make([]Shape, 0, len(c.Features))}
	for i, f := range c.Features {
		mp := make(orb.MultiPolygon, 0, len(f.Geometry))
		for _, poly := range f.Geometry {
			pp := make(orb.Polygon, 0, len(poly))
			for _, r := range poly {
				pr := make(orb.Ring, len(r))
				for j, pt := range r {
					pr[j] = p.Project(pt)
				}
				pp = append(pp, pr)
			}
			mp = append(mp, pp)
		}
		if len(mp) == 0 {
			continue
		}
		out.Shapes = append(out.Shapes, Shape{Index: i, Polygons: mp, Bound: mp.Bound()})
	}
	for _, ls := range Graticule(30) {
		pl := make(orb.LineString, len(ls))
		for j, pt := range ls {
			pl[j] = p.Project(pt)
		}
		out.Graticule = append(out.Graticule, pl)
	}
	return out
}

// At returns the shape containing pt (surface coordinates).
func (p Projected) At(pt orb.Point) (Shape, bool) {
	for _, s := range p.Shapes {
		if !s.Bound.Contains(pt) {
			continue
		}
		if planar.MultiPolygonContains(s.Polygons, pt) {
			return s, true
		}
	}
	return Shape{}, false
}
