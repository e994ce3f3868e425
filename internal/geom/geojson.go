package geom

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
)

// Load reads a TopoJSON topology or a GeoJSON FeatureCollection. object
// names the topology object holding the regions; it is ignored for
// GeoJSON.
func Load(path, object string) (Collection, error) {
	f, err := os.Open(path)
	if err != nil {
		return Collection{}, err
	}
	defer f.Close()
	data, err := io.ReadAll(f)
	if err != nil {
		return Collection{}, err
	}
	return Decode(data, object)
}

// Decode sniffs the document type and decodes it.
func Decode(data []byte, object string) (Collection, error) {
	var head struct {
		Type string `json:"type"`
	}
	if err := json.Unmarshal(data, &head); err != nil {
		return Collection{}, fmt.Errorf("decode geometry: %w", err)
	}
	switch head.Type {
	case "Topology":
		return DecodeTopoJSON(data, object)
	case "FeatureCollection":
		return DecodeGeoJSON(data)
	default:
		return Collection{}, fmt.Errorf("%w: type %q", ErrUnsupportedFormat, head.Type)
	}
}

// DecodeGeoJSON keeps the Polygon and MultiPolygon features of a
// FeatureCollection.
func DecodeGeoJSON(data []byte) (Collection, error) {
	fc, err := geojson.UnmarshalFeatureCollection(bytes.TrimSpace(data))
	if err != nil {
		return Collection{}, fmt.Errorf("decode geojson: %w", err)
	}
	var c Collection
	for _, f := range fc.Features {
		if f == nil {
			continue
		}
		var mp orb.MultiPolygon
		switch g := f.Geometry.(type) {
		case orb.Polygon:
			mp = orb.MultiPolygon{g}
		case orb.MultiPolygon:
			mp = g
		default:
			continue
		}
		c.Features = append(c.Features, Feature{
			ID:       normalizeID(f.ID),
			Name:     featureName(f.Properties),
			Geometry: mp,
		})
	}
	if len(c.Features) == 0 {
		return Collection{}, ErrNoFeatures
	}
	return c, nil
}
