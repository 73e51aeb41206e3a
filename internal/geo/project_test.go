package geo

import (
	"math"
	"testing"
)

func TestProjectDeterminism(t *testing.T) {
	p := NewProjector(0)

	c := Coord{Lat: 40.7128, Lon: -74.006}
	first := p.Project(c)
	second := p.Project(c)

	if first != second {
		t.Errorf("Project not deterministic: %+v != %+v", first, second)
	}
}

func TestProjectFollowsFormula(t *testing.T) {
	p := NewProjector(5000)

	// Lat 0, Lon 0: phi = 90deg, theta = 180deg, so the point sits on the
	// equator at (-R, 0, ~0).
	got := p.Project(Coord{})

	if math.Abs(got.X+5000) > 1e-9 {
		t.Errorf("X = %v, want -5000", got.X)
	}
	if math.Abs(got.Y) > 1e-9 {
		t.Errorf("Y = %v, want 0", got.Y)
	}
	if math.Abs(got.Z) > 1e-9 {
		t.Errorf("Z = %v, want ~0", got.Z)
	}
}

func TestProjectStaysOnSphere(t *testing.T) {
	p := NewProjector(5000)

	coords := []Coord{
		{Lat: 40.7128, Lon: -74.0060},
		{Lat: 51.5074, Lon: -0.1278},
		{Lat: -33.8688, Lon: 151.2093},
		{Lat: 0, Lon: 0},
		{Lat: -90, Lon: 10},
		{Lat: 89.9, Lon: -179.9},
	}

	for _, c := range coords {
		if d := p.Project(c).Length(); math.Abs(d-5000) > 1e-6 {
			t.Errorf("Project(%+v) at distance %v from origin, want 5000", c, d)
		}
	}
}

func TestProjectNorthPoleDegeneracy(t *testing.T) {
	p := NewProjector(5000)

	// All longitudes collapse at the pole.
	a := p.Project(Coord{Lat: 90, Lon: -120})
	b := p.Project(Coord{Lat: 90, Lon: 45})

	if a != b {
		t.Errorf("pole projections differ: %+v != %+v", a, b)
	}
	if a != (Vec3{X: 0, Y: 5000, Z: 0}) {
		t.Errorf("north pole = %+v, want (0, 5000, 0)", a)
	}
}

func TestProjectSouthPoleDegeneracy(t *testing.T) {
	p := NewProjector(5000)

	a := p.Project(Coord{Lat: -90, Lon: -120})
	b := p.Project(Coord{Lat: -90, Lon: 45})

	for _, v := range []Vec3{a, b} {
		if math.Abs(v.X) > 1e-9 || math.Abs(v.Y+5000) > 1e-9 || math.Abs(v.Z) > 1e-9 {
			t.Errorf("south pole = %+v, want ~(0, -5000, 0)", v)
		}
	}
}

func TestNewProjectorDefaultRadius(t *testing.T) {
	if p := NewProjector(0); p.Radius != DefaultRadius {
		t.Errorf("Radius = %v, want %v", p.Radius, DefaultRadius)
	}
	if p := NewProjector(250); p.Radius != 250 {
		t.Errorf("Radius = %v, want 250", p.Radius)
	}
}
