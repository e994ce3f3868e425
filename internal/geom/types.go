package geom

import (
	"errors"
	"fmt"
	"math"

	"github.com/paulmach/orb"
)

var (
	ErrNoFeatures         = errors.New("no polygon features found")
	ErrUnsupportedFormat  = errors.New("unsupported geometry format")
	ErrMissingObject      = errors.New("topology object not found")
	ErrArcIndexOutOfRange = errors.New("arc index out of range")
)

// Feature is one region polygon in lon/lat degrees.
type Feature struct {
	ID       string
	Name     string
	Geometry orb.MultiPolygon
}

// Collection is the decoded geometry source.
type Collection struct {
	Features []Feature
}

// normalizeID turns a GeoJSON/TopoJSON id into the string used as key in
// the code map. Numeric ids become zero-padded three digit strings.
func normalizeID(v any) string {
	switch id := v.(type) {
	case nil:
		return ""
	case string:
		return id
	case float64:
		if id == math.Trunc(id) {
			return fmt.Sprintf("%03d", int64(id))
		}
		return fmt.Sprintf("%g", id)
	case int:
		return fmt.Sprintf("%03d", id)
	case int64:
		return fmt.Sprintf("%03d", id)
	default:
		return fmt.Sprint(id)
	}
}

func featureName(props map[string]any) string {
	if props == nil {
		return ""
	}
	if s, ok := props["name"].(string); ok {
		return s
	}
	return ""
}
