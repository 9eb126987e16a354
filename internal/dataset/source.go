package dataset

import (
	"fmt"
	"math/rand"
)

// Source is the reference data generated datasets draw from.
type Source struct {
	Names  NameHelper
	Bounds Bounds
}

// LoadSource reads a GeoJSON bounds file and first/last name files. Empty
// paths fall back to the built-in data.
func LoadSource(boundsPath, firstNamesPath, lastNamesPath string) (Source, error) {
	names, err := LoadNames(firstNamesPath, lastNamesPath)
	if err != nil {
		return Source{}, fmt.Errorf("load source: %w", err)
	}

	var bounds Bounds
	if boundsPath == "" {
		bounds, err = DefaultBounds()
	} else {
		bounds, err = LoadGeoJSONBounds(boundsPath)
	}
	if err != nil {
		return Source{}, fmt.Errorf("load source: %w", err)
	}

	return Source{Names: names, Bounds: bounds}, nil
}

// Generator returns a generator over s seeded with seed.
func (s Source) Generator(seed int64) *Generator {
	return NewGenerator(rand.New(rand.NewSource(seed)), s.Names, s.Bounds)
}
