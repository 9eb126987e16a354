package dataset

import (
	"bytes"
	"delivery-assignment-service/internal/domain"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"math/rand"
	"os"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
)

//go:embed data/bounds.geojson
var defaultBoundsGeoJSON []byte

// Bounds is the lat/lon box that generated tasks fall into.
type Bounds struct {
	Name   string
	MinLat float64
	MaxLat float64
	MinLon float64
	MaxLon float64
}

func DefaultBounds() (Bounds, error) {
	return ReadGeoJSONBounds(bytes.NewReader(defaultBoundsGeoJSON))
}

// LoadGeoJSONBounds reads the bounding box of the first feature in a GeoJSON file.
func LoadGeoJSONBounds(path string) (Bounds, error) {
	f, err := os.Open(path)
	if err != nil {
		return Bounds{}, fmt.Errorf("load bounds: open %q: %w", path, err)
	}
	defer f.Close()

	b, err := ReadGeoJSONBounds(f)
	if err != nil {
		return Bounds{}, fmt.Errorf("load bounds %q: %w", path, err)
	}
	return b, nil
}

// ReadGeoJSONBounds accepts a FeatureCollection whose first feature is a
// Polygon or MultiPolygon.
func ReadGeoJSONBounds(r io.Reader) (Bounds, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return Bounds{}, fmt.Errorf("read bounds: %w", err)
	}

	fc, err := geojson.UnmarshalFeatureCollection(data)
	if err != nil {
		return Bounds{}, fmt.Errorf("read bounds: decode geojson: %w", err)
	}
	if len(fc.Features) == 0 {
		return Bounds{}, errors.New("read bounds: geojson has no features")
	}
	feature := fc.Features[0]

	switch g := feature.Geometry.(type) {
	case orb.Polygon, orb.MultiPolygon:
	case nil:
		return Bounds{}, errors.New("read bounds: feature has no geometry")
	default:
		return Bounds{}, fmt.Errorf("read bounds: unsupported geometry type %q", g.GeoJSONType())
	}

	bound := feature.Geometry.Bound()
	if bound.IsEmpty() {
		return Bounds{}, errors.New("read bounds: geometry has no positions")
	}

	return Bounds{
		Name:   feature.Properties.MustString("name", ""),
		MinLat: bound.Min.Lat(),
		MaxLat: bound.Max.Lat(),
		MinLon: bound.Min.Lon(),
		MaxLon: bound.Max.Lon(),
	}, nil
}

func (b Bounds) Contains(gp domain.Geopoint) bool {
	return gp.Latitude >= b.MinLat && gp.Latitude <= b.MaxLat &&
		gp.Longitude >= b.MinLon && gp.Longitude <= b.MaxLon
}

// RandomPoint draws a uniform point inside the box.
func (b Bounds) RandomPoint(rng *rand.Rand) domain.Geopoint {
	return domain.Geopoint{
		Latitude:  b.MinLat + rng.Float64()*(b.MaxLat-b.MinLat),
		Longitude: b.MinLon + rng.Float64()*(b.MaxLon-b.MinLon),
	}
}
