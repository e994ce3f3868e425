package geom

import (
	"math"

	"github.com/paulmach/orb"
)

// Projection is the Natural Earth I projection scaled and translated to a
// w x h surface with y growing downward.
type Projection struct {
	k, tx, ty float64
}

func naturalEarth(lambda, phi float64) (x, y float64) {
	phi2 := phi * phi
	phi4 := phi2 * phi2
	x = lambda * (0.8707 - 0.131979*phi2 + phi4*(-0.013791+phi4*(0.003971*phi2-0.001529*phi4)))
	y = phi * (1.007226 + phi2*(0.015085+phi4*(-0.044475+0.028874*phi2-0.005916*phi4)))
	return x, y
}

// naturalEarthInvert solves y for phi with Newton's method, then x for
// lambda.
func naturalEarthInvert(x, y float64) (lambda, phi float64) {
	phi = y
	for i := 0; i < 25; i++ {
		phi2 := phi * phi
		phi4 := phi2 * phi2
		delta := (phi*(1.007226+phi2*(0.015085+phi4*(-0.044475+0.028874*phi2-0.005916*phi4))) - y) /
			(1.007226 + phi2*(0.015085*3+phi4*(-0.044475*7+0.028874*9*phi2-0.005916*11*phi4)))
		phi -= delta
		if math.Abs(delta) <= 1e-9 {
			break
		}
	}
	phi2 := phi * phi
	lambda = x / (0.8707 + phi2*(-0.131979+phi2*(-0.013791+phi2*phi2*phi2*(0.003971-0.001529*phi2))))
	return lambda, phi
}

func radians(d float64) float64 { return d * math.Pi / 180 }
func degrees(r float64) float64 { return r * 180 / math.Pi }

// Fit returns the projection that scales and centers the projected extent
// of c inside a w x h surface. An empty collection fits the whole sphere.
func Fit(c Collection, w, h float64) Projection {
	b := rawBound(c)
	dx := b.Max[0] - b.Min[0]
	dy := b.Max[1] - b.Min[1]
	if dx <= 0 || dy <= 0 || w <= 0 || h <= 0 {
		return Projection{k: 1}
	}
	k := math.Min(w/dx, h/dy)
	return Projection{
		k:  k,
		tx: (w - k*(b.Min[0]+b.Max[0])) / 2,
		ty: (h - k*(b.Min[1]+b.Max[1])) / 2,
	}
}

// rawBound is the extent of c in unscaled projected units with y flipped.
func rawBound(c Collection) orb.Bound {
	first := true
	var b orb.Bound
	add := func(lon, lat float64) {
		x, y := naturalEarth(radians(lon), radians(lat))
		p := orb.Point{x, -y}
		if first {
			b = orb.Bound{Min: p, Max: p}
			first = false
			return
		}
		b = b.Extend(p)
	}
	for _, f := range c.Features {
		for _, poly := range f.Geometry {
			for _, r := range poly {
				for _, p := range r {
					add(p[0], p[1])
				}
			}
		}
	}
	if first {
		for lat := -90.0; lat <= 90; lat += 5 {
			add(-180, lat)
			add(180, lat)
		}
	}
	return b
}

// Project maps lon/lat degrees onto the surface.
func (p Projection) Project(ll orb.Point) orb.Point {
	x, y := naturalEarth(radians(ll[0]), radians(ll[1]))
	return orb.Point{p.k*x + p.tx, -p.k*y + p.ty}
}

// Invert maps a surface point back to lon/lat degrees. It reports false
// for points off the globe.
func (p Projection) Invert(pt orb.Point) (orb.Point, bool) {
	if p.k == 0 {
		return orb.Point{}, false
	}
	x := (pt[0] - p.tx) / p.k
	y := -(pt[1] - p.ty) / p.k
	lambda, phi := naturalEarthInvert(x, y)
	lon, lat := degrees(lambda), degrees(phi)
	if math.IsNaN(lon) || math.IsNaN(lat) || math.Abs(lat) > 90+1e-6 || math.Abs(lon) > 180+1e-6 {
		return orb.Point{}, false
	}
	return orb.Point{lon, lat}, true
}

// Scale is the multiplier from unscaled projected units to surface units.
func (p Projection) Scale() float64 { return p.k }
