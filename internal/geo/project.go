package geo

import "math"

// DefaultRadius is the sphere radius used by the reference scene.
const DefaultRadius = 5000.0

// Projector maps geographic coordinates onto the surface of a sphere of
// fixed radius centered on the origin.
type Projector struct {
	Radius float64
}

func NewProjector(radius float64) Projector {
	if radius <= 0 {
		radius = DefaultRadius
	}
	return Projector{Radius: radius}
}

// Project converts c to a Cartesian point on the sphere. It is a pure
// function: the same input always yields bit-identical output.
//
// phi is the colatitude measured from the north pole, theta the longitude
// offset from the reference meridian. Both poles (Lat = ±90) collapse to
// (0, ±R, 0) regardless of Lon - the usual spherical coordinate degeneracy.
func (p Projector) Project(c Coord) Vec3 {
	phi := (90 - c.Lat) * math.Pi / 180
	theta := (180 - c.Lon) * math.Pi / 180
	return Vec3{
		X: p.Radius * math.Sin(phi) * math.Cos(theta),
		Y: p.Radius * math.Cos(phi),
		Z: p.Radius * math.Sin(phi) * math.Sin(theta),
	}
}
