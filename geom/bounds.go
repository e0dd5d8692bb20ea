package geom

import "math"

// Bounds is an axis-aligned bounding rectangle with no space tag (see
// package space for the tagged variant used in the public API).
type Bounds struct {
	MinX, MinY, MaxX, MaxY float64
}

// Width returns MaxX - MinX.
func (b Bounds) Width() float64 { return b.MaxX - b.MinX }

// Height returns MaxY - MinY.
func (b Bounds) Height() float64 { return b.MaxY - b.MinY }

// Expand grows b to include p.
func (b Bounds) Expand(p Point) Bounds {
	if p.X < b.MinX {
		b.MinX = p.X
	}
	if p.X > b.MaxX {
		b.MaxX = p.X
	}
	if p.Y < b.MinY {
		b.MinY = p.Y
	}
	if p.Y > b.MaxY {
		b.MaxY = p.Y
	}
	return b
}

// ExpandBezier grows b to include the full extrema-aware bounds of seg.
func (b Bounds) ExpandBezier(seg BezierSegment) Bounds {
	minX, minY, maxX, maxY := seg.Bounds()
	if minX < b.MinX {
		b.MinX = minX
	}
	if maxX > b.MaxX {
		b.MaxX = maxX
	}
	if minY < b.MinY {
		b.MinY = minY
	}
	if maxY > b.MaxY {
		b.MaxY = maxY
	}
	return b
}

// EmptyBounds returns a Bounds primed for accumulation via Expand/ExpandBezier:
// +Inf/-Inf sentinels so the first Expand call establishes real values.
func EmptyBounds() Bounds {
	return Bounds{
		MinX: math.Inf(1), MinY: math.Inf(1),
		MaxX: math.Inf(-1), MaxY: math.Inf(-1),
	}
}

// IsEmpty reports whether b has never been Expanded.
func (b Bounds) IsEmpty() bool {
	return math.IsInf(b.MinX, 1) || math.IsInf(b.MaxX, -1)
}
