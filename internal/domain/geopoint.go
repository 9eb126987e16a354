package domain

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
)

// Immutable geographic point (latitude, longitude).
// Geopoints compare by value and can be used as map keys.
type Geopoint struct {
	Latitude  float64
	Longitude float64
}

// NewGeopoint validates and returns a point. Non-finite coordinates are rejected.
func NewGeopoint(lat, lon float64) (Geopoint, error) {
	if math.IsNaN(lat) || math.IsInf(lat, 0) {
		return Geopoint{}, fmt.Errorf("new geopoint: latitude must be finite, got %v", lat)
	}
	if math.IsNaN(lon) || math.IsInf(lon, 0) {
		return Geopoint{}, fmt.Errorf("new geopoint: longitude must be finite, got %v", lon)
	}
	return Geopoint{Latitude: lat, Longitude: lon}, nil
}

func (g Geopoint) String() string {
	return fmt.Sprintf("Point(%v, %v)", g.Latitude, g.Longitude)
}

type geopointJSON struct {
	Latitude  *float64 `json:"latitude"`
	Longitude *float64 `json:"longitude"`
}

func (g Geopoint) MarshalJSON() ([]byte, error) {
	return json.Marshal(geopointJSON{Latitude: &g.Latitude, Longitude: &g.Longitude})
}

// UnmarshalJSON fails fast when either coordinate is missing.
func (g *Geopoint) UnmarshalJSON(b []byte) error {
	var raw geopointJSON
	if err := json.Unmarshal(b, &raw); err != nil {
		return fmt.Errorf("decode geopoint: %w", err)
	}

	switch {
	case raw.Latitude == nil && raw.Longitude == nil:
		return errors.New("decode geopoint: latitude and longitude must both be present")
	case raw.Latitude == nil:
		return errors.New("decode geopoint: latitude must be present")
	case raw.Longitude == nil:
		return errors.New("decode geopoint: longitude must be present")
	}

	p, err := NewGeopoint(*raw.Latitude, *raw.Longitude)
	if err != nil {
		return fmt.Errorf("decode geopoint: %w", err)
	}
	*g = p
	return nil
}
