package geom

import "math"

// Point is a plain 2D coordinate pair, with no coordinate-space tag.
// Code outside this package should generally hold one of the space-tagged
// wrappers in package space instead of a bare Point.
type Point struct {
	X, Y float64
}

// P constructs a Point from x, y coordinates.
func P(x, y float64) Point {
	return Point{X: x, Y: y}
}

// Add returns a + b.
func (a Point) Add(b Point) Point {
	return Point{X: a.X + b.X, Y: a.Y + b.Y}
}

// Sub returns a - b.
func (a Point) Sub(b Point) Point {
	return Point{X: a.X - b.X, Y: a.Y - b.Y}
}

// Scale returns a point scaled by s about the origin.
func (a Point) Scale(s float64) Point {
	return Point{X: a.X * s, Y: a.Y * s}
}

// Lerp returns the point at parameter t along the segment from a to b.
// t=0 returns a, t=1 returns b; t outside [0,1] extrapolates.
func Lerp(a, b Point, t float64) Point {
	return Point{
		X: a.X + t*(b.X-a.X),
		Y: a.Y + t*(b.Y-a.Y),
	}
}

// ReflectAbout reflects p about pivot: pivot + (pivot - p).
// This is the reflection that gives S/T commands their implicit first
// control point.
func ReflectAbout(p, pivot Point) Point {
	return Point{
		X: 2*pivot.X - p.X,
		Y: 2*pivot.Y - p.Y,
	}
}

// AlmostEqual reports whether a and b are within eps of each other on both axes.
func AlmostEqual(a, b Point, eps float64) bool {
	return math.Abs(a.X-b.X) <= eps && math.Abs(a.Y-b.Y) <= eps
}

// BezierSegment is a single cubic Bézier curve: four points in the same
// coordinate space. The segment itself carries no space tag; keeping the
// four points in one space is up to the caller.
type BezierSegment struct {
	Start, Control1, Control2, End Point
}

// PointAt evaluates the cubic at parameter t in [0,1] via direct Bernstein
// basis evaluation (not de Casteljau — the closed form avoids the
// recursion). MidpointDeviation and the tests use it; Bounds evaluates each
// axis separately through cubicAt.
func (b BezierSegment) PointAt(t float64) Point {
	mt := 1 - t
	mt2 := mt * mt
	t2 := t * t
	a := mt2 * mt
	c1 := 3 * mt2 * t
	c2 := 3 * mt * t2
	d := t2 * t
	return Point{
		X: a*b.Start.X + c1*b.Control1.X + c2*b.Control2.X + d*b.End.X,
		Y: a*b.Start.Y + c1*b.Control1.Y + c2*b.Control2.Y + d*b.End.Y,
	}
}

// MidpointDeviation returns the distance between the straight-chord midpoint
// (Start/End average) and the curve's true midpoint (t=0.5). Used as the
// arc quality error estimate in spec.md §4.3 / §8 invariant 4.
func (b BezierSegment) MidpointDeviation() float64 {
	chordMid := Lerp(b.Start, b.End, 0.5)
	curveMid := b.PointAt(0.5)
	dx := curveMid.X - chordMid.X
	dy := curveMid.Y - chordMid.Y
	return math.Sqrt(dx*dx + dy*dy)
}

// Bounds returns the tight axis-aligned bounding box of the cubic, including
// its extrema (not just its endpoints). This is the optional refinement
// named in spec.md §9 Open Question 2.
func (b BezierSegment) Bounds() (minX, minY, maxX, maxY float64) {
	minX, maxX = axisBounds(b.Start.X, b.Control1.X, b.Control2.X, b.End.X)
	minY, maxY = axisBounds(b.Start.Y, b.Control1.Y, b.Control2.Y, b.End.Y)
	return
}

// axisBounds computes the min/max of a single cubic Bézier axis, including
// any interior extrema found by solving the derivative for roots in (0,1).
func axisBounds(p0, p1, p2, p3 float64) (lo, hi float64) {
	lo, hi = math.Min(p0, p3), math.Max(p0, p3)
	expand := func(v float64) {
		if v < lo {
			lo = v
		}
		if v > hi {
			hi = v
		}
	}
	// Derivative of the cubic Bernstein form is a quadratic a*t^2 + b*t + c.
	a := -p0 + 3*p1 - 3*p2 + p3
	b := 2 * (p0 - 2*p1 + p2)
	c := p1 - p0
	if a == 0 {
		if b == 0 {
			return
		}
		if t := -c / b; t > 0 && t < 1 {
			expand(cubicAt(p0, p1, p2, p3, t))
		}
		return
	}
	disc := b*b - 4*a*c
	if disc < 0 {
		return
	}
	sqrtDisc := math.Sqrt(disc)
	for _, t := range [2]float64{(-b + sqrtDisc) / (2 * a), (-b - sqrtDisc) / (2 * a)} {
		if t > 0 && t < 1 {
			expand(cubicAt(p0, p1, p2, p3, t))
		}
	}
	return
}

func cubicAt(p0, p1, p2, p3, t float64) float64 {
	mt := 1 - t
	return mt*mt*mt*p0 + 3*mt*mt*t*p1 + 3*mt*t*t*p2 + t*t*t*p3
}
