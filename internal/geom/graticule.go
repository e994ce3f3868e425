package geom

import "github.com/paulmach/orb"

// Graticule returns meridians and parallels every step degrees, clipped to
// ±80° latitude, plus the ±180° meridians that outline the globe. Lines are
// sampled densely enough to look curved once projected.
func Graticule(step float64) []orb.LineString {
	if step <= 0 {
		step = 30
	}
	const sample = 2.5
	var lines []orb.LineString
	for lon := -180 + step; lon < 180; lon += step {
		var ls orb.LineString
		for lat := -80.0; lat <= 80; lat += sample {
			ls = append(ls, orb.Point{lon, lat})
		}
		lines = append(lines, ls)
	}
	for lat := -80.0; lat <= 80; lat += step {
		var ls orb.LineString
		for lon := -180.0; lon <= 180; lon += sample {
			ls = append(ls, orb.Point{lon, lat})
		}
		lines = append(lines, ls)
	}
	for _, lon := range []float64{-180, 180} {
		var ls orb.LineString
		for lat := -90.0; lat <= 90; lat += sample {
			ls = append(ls, orb.Point{lon, lat})
		}
		lines = append(lines, ls)
	}
	return lines
}
