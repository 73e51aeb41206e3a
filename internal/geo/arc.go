package geo

// DefaultArcSamples is the number of points sampled along each arc in the
// reference scene.
const DefaultArcSamples = 400

// ArcBuilder produces curved polylines between two points on the sphere
// surface. The curve is a quadratic Bezier whose control point is the chord
// midpoint pushed outward along the z-axis, so edges read as arcs instead of
// chords cutting through the sphere.
type ArcBuilder struct {
	Samples int
}

func NewArcBuilder(samples int) ArcBuilder {
	if samples < 2 {
		samples = DefaultArcSamples
	}
	return ArcBuilder{Samples: samples}
}

// Points samples the arc from source to target into exactly b.Samples points.
// The first and last points equal source and target. Returns nil for the
// degenerate source == target case, which callers exclude anyway by keeping
// the graph free of self-loops. NaN coordinates propagate unchecked.
func (b ArcBuilder) Points(source, target Vec3) []Vec3 {
	if source == target {
		return nil
	}

	control := bulgeControl(source, target)

	points := make([]Vec3, b.Samples)
	last := float64(b.Samples - 1)
	for i := range points {
		t := float64(i) / last
		points[i] = quadraticBezier(source, control, target, t)
	}
	return points
}

// bulgeControl returns the Bezier control point: the chord midpoint offset
// outward along z by an amount proportional to the planar span of the chord.
// This is a visual heuristic, not a great-circle computation; it is kept in
// one place so it can be swapped for a true geodesic later without touching
// the sampling code.
func bulgeControl(source, target Vec3) Vec3 {
	mid := source.Add(target).Scale(0.5)
	mid.Z += bulgeOffset(source, target)
	return mid
}

func bulgeOffset(source, target Vec3) float64 {
	dx := source.X - target.X
	if dx < 0 {
		dx = -dx
	}
	dy := source.Y - target.Y
	if dy < 0 {
		dy = -dy
	}
	// The uneven dx/dy weighting matches the reference scene's tuning.
	return dx + dy/1.3
}

func quadraticBezier(p0, p1, p2 Vec3, t float64) Vec3 {
	u := 1 - t
	return p0.Scale(u * u).
		Add(p1.Scale(2 * u * t)).
		Add(p2.Scale(t * t))
}
