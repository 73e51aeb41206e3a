package globe

import (
	"fmt"
	"math"

	"github.com/BurntSushi/toml"
)

// City is one input entity: a display name and a geographic coordinate in
// degrees.
type City struct {
	Name string  `json:"name" toml:"name"`
	Lat  float64 `json:"lat" toml:"lat"`
	Lon  float64 `json:"lon" toml:"lon"`
}

// DefaultCities returns the built-in demo dataset.
func DefaultCities() []City {
	return []City{
		{Name: "New York", Lat: 40.7128, Lon: -74.0060},
		{Name: "London", Lat: 51.5074, Lon: -0.1278},
		{Name: "Paris", Lat: 48.8566, Lon: 2.3522},
		{Name: "Tokyo", Lat: 35.6762, Lon: 139.6503},
		{Name: "Sydney", Lat: -33.8688, Lon: 151.2093},
		{Name: "Cairo", Lat: 30.0444, Lon: 31.2357},
		{Name: "Rio de Janeiro", Lat: -22.9068, Lon: -43.1729},
	}
}

type cityFile struct {
	Cities []City `toml:"city"`
}

// LoadCities reads cities from a TOML file of [[city]] tables, each with
// name, lat, and lon keys. Coordinates are validated here so malformed input
// fails fast instead of propagating NaN into the projection.
func LoadCities(path string) ([]City, error) {
	var f cityFile
	if _, err := toml.DecodeFile(path, &f); err != nil {
		return nil, fmt.Errorf("decoding %s: %w", path, err)
	}
	if len(f.Cities) == 0 {
		return nil, fmt.Errorf("no [[city]] entries in %s", path)
	}
	for i, c := range f.Cities {
		if err := validateCity(c); err != nil {
			return nil, fmt.Errorf("city %d in %s: %w", i+1, path, err)
		}
	}
	return f.Cities, nil
}

func validateCity(c City) error {
	if c.Name == "" {
		return fmt.Errorf("missing name")
	}
	if math.IsNaN(c.Lat) || math.IsInf(c.Lat, 0) || c.Lat < -90 || c.Lat > 90 {
		return fmt.Errorf("%q: latitude %v outside [-90, 90]", c.Name, c.Lat)
	}
	if math.IsNaN(c.Lon) || math.IsInf(c.Lon, 0) || c.Lon < -180 || c.Lon > 180 {
		return fmt.Errorf("%q: longitude %v outside [-180, 180]", c.Name, c.Lon)
	}
	return nil
}
