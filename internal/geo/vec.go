package geo

import "math"

// Vec3 is a 3D Cartesian point / vector.
type Vec3 struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
}

// Coord is a geographic coordinate in degrees. Lat should be in [-90, 90]
// and Lon in [-180, 180] for accurate placement; values outside that range
// still produce a well-defined point because the trig wraps.
type Coord struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

func (v Vec3) Add(o Vec3) Vec3 {
	return Vec3{v.X + o.X, v.Y + o.Y, v.Z + o.Z}
}

func (v Vec3) Scale(s float64) Vec3 {
	return Vec3{v.X * s, v.Y * s, v.Z * s}
}

// Length returns the Euclidean distance from the origin.
func (v Vec3) Length() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y + v.Z*v.Z)
}
