package arc

import (
	"fmt"
	"math"

	"github.com/svg2pptx/pathcore/geom"
)

// BezierSegment is geom.BezierSegment under the name used throughout this
// package's contract; the arc converter has no notion of coordinate space,
// so it operates on bare geom points rather than a space-tagged wrapper.
type BezierSegment = geom.BezierSegment

const (
	epsilon        = 1e-10
	endpointEps    = 1e-12
	maxSweepDegree = 1000.0
)

// ArcToCubics converts one SVG elliptical arc, given in endpoint
// parameterization, into a sequence of cubic Bézier segments via the a2c
// algorithm (SVG 1.1 Appendix F.6.5/F.6.6). maxSegmentDeg caps the angular
// width of any one segment; values <= 0 default to 90, matching spec.md
// §4.3's default.
//
// Degenerate inputs are handled per spec rather than rejected: start == end
// yields zero segments, and a zero radius collapses the arc to a single
// linear cubic. Non-finite radii or endpoints, and a sweep whose magnitude
// exceeds the sanity bound, are reported as a *ConversionError instead.
func ArcToCubics(start geom.Point, rx, ry, phiDeg float64, largeArc, sweep bool, end geom.Point, maxSegmentDeg float64) ([]BezierSegment, error) {
	if maxSegmentDeg <= 0 {
		maxSegmentDeg = 90
	}

	if !finite(rx) || !finite(ry) {
		return nil, &ConversionError{Kind: InvalidRadius, Reason: "non-finite arc radius"}
	}
	if !finite(start.X) || !finite(start.Y) || !finite(end.X) || !finite(end.Y) {
		return nil, &ConversionError{Kind: InvalidArcParameters, Reason: "non-finite arc endpoint"}
	}

	if geom.AlmostEqual(start, end, endpointEps) {
		return nil, nil
	}

	rx, ry = math.Abs(rx), math.Abs(ry)
	if rx < epsilon || ry < epsilon {
		return linearFallback(start, end), nil
	}

	phi := math.Mod(phiDeg, 360.0) * math.Pi / 180.0
	cosPhi, sinPhi := math.Cos(phi), math.Sin(phi)

	dx := (start.X - end.X) / 2.0
	dy := (start.Y - end.Y) / 2.0
	x1p := cosPhi*dx + sinPhi*dy
	y1p := -sinPhi*dx + cosPhi*dy

	if lambda := (x1p*x1p)/(rx*rx) + (y1p*y1p)/(ry*ry); lambda > 1 {
		s := math.Sqrt(lambda)
		rx *= s
		ry *= s
	}

	sign := 1.0
	if largeArc == sweep {
		sign = -1.0
	}

	rxSq, rySq := rx*rx, ry*ry
	x1pSq, y1pSq := x1p*x1p, y1p*y1p
	denom := rxSq*y1pSq + rySq*x1pSq
	if denom == 0 {
		return nil, &ConversionError{Kind: InvalidArcParameters, Reason: "radii cannot reach the given endpoints"}
	}

	discriminant := math.Max(0, (rxSq*rySq-rxSq*y1pSq-rySq*x1pSq)/denom)
	coeff := sign * math.Sqrt(discriminant)
	cxp := coeff * (rx * y1p / ry)
	cyp := coeff * -(ry * x1p / rx)

	cx := cosPhi*cxp - sinPhi*cyp + (start.X+end.X)/2.0
	cy := sinPhi*cxp + cosPhi*cyp + (start.Y+end.Y)/2.0

	startAngle := vectorAngle((x1p-cxp)/rx, (y1p-cyp)/ry)
	endAngle := vectorAngle((-x1p-cxp)/rx, (-y1p-cyp)/ry)

	sweepAngle := endAngle - startAngle
	switch {
	case !sweep && sweepAngle > 0:
		sweepAngle -= 2 * math.Pi
	case sweep && sweepAngle < 0:
		sweepAngle += 2 * math.Pi
	}

	if sweepDeg := math.Abs(sweepAngle) * 180 / math.Pi; sweepDeg > maxSweepDegree {
		return nil, &ConversionError{
			Kind:   ArcTooBig,
			Reason: fmt.Sprintf("sweep of %.1f degrees exceeds the %.0f degree sanity bound", sweepDeg, maxSweepDegree),
		}
	}

	segments := segmentArc(geom.P(cx, cy), rx, ry, cosPhi, sinPhi, startAngle, sweepAngle, maxSegmentDeg)
	segments[0].Start = start
	segments[len(segments)-1].End = end
	return segments, nil
}

// ValidateParameters is validate_arc_parameters carried forward from
// original_source/core/paths/a2c.py: a pure precondition check callers may
// run before ArcToCubics, requiring strictly positive radii and finite
// coordinates.
func ValidateParameters(rx, ry float64, start, end geom.Point) bool {
	if rx <= 0 || ry <= 0 {
		return false
	}
	for _, v := range [...]float64{rx, ry, start.X, start.Y, end.X, end.Y} {
		if !finite(v) {
			return false
		}
	}
	return true
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

func vectorAngle(ux, uy float64) float64 {
	if math.Abs(ux) < epsilon && math.Abs(uy) < epsilon {
		return 0
	}
	length := math.Hypot(ux, uy)
	if length < epsilon {
		return 0
	}
	return math.Atan2(uy/length, ux/length)
}

func linearFallback(start, end geom.Point) []BezierSegment {
	return []BezierSegment{{
		Start:    start,
		Control1: geom.Lerp(start, end, 1.0/3.0),
		Control2: geom.Lerp(start, end, 2.0/3.0),
		End:      end,
	}}
}

// segmentArc splits [startAngle, startAngle+sweepAngle) into runs no wider
// than maxSegmentDeg and converts each to one cubic, per spec.md §4.3's
// segmentation rule.
func segmentArc(center geom.Point, rx, ry, cosPhi, sinPhi, startAngle, sweepAngle, maxSegmentDeg float64) []BezierSegment {
	maxSegmentRad := maxSegmentDeg * math.Pi / 180.0
	numSegments := int(math.Ceil(math.Abs(sweepAngle) / maxSegmentRad))
	if numSegments < 1 {
		numSegments = 1
	}
	segAngle := sweepAngle / float64(numSegments)

	segments := make([]BezierSegment, numSegments)
	angle := startAngle
	for i := 0; i < numSegments; i++ {
		segments[i] = arcSegmentToCubic(center, rx, ry, cosPhi, sinPhi, angle, segAngle)
		angle += segAngle
	}
	return segments
}

// arcSegmentToCubic approximates one arc segment (at most maxSegmentDeg
// wide) with the optimal cubic Bézier, using the standard magic-number
// control-point extension alpha = sin(α)·(√(4+3·tan²(α/2))−1)/3.
func arcSegmentToCubic(center geom.Point, rx, ry, cosPhi, sinPhi, startAngle, segAngle float64) BezierSegment {
	endAngle := startAngle + segAngle
	cosStart, sinStart := math.Cos(startAngle), math.Sin(startAngle)
	cosEnd, sinEnd := math.Cos(endAngle), math.Sin(endAngle)

	tanHalf := math.Tan(segAngle / 2)
	alpha := math.Sin(segAngle) * (math.Sqrt(4+3*tanHalf*tanHalf) - 1) / 3

	return BezierSegment{
		Start:    ellipsePoint(center, rx, ry, cosPhi, sinPhi, cosStart, sinStart),
		Control1: ellipsePoint(center, rx, ry, cosPhi, sinPhi, cosStart-alpha*sinStart, sinStart+alpha*cosStart),
		Control2: ellipsePoint(center, rx, ry, cosPhi, sinPhi, cosEnd+alpha*sinEnd, sinEnd-alpha*cosEnd),
		End:      ellipsePoint(center, rx, ry, cosPhi, sinPhi, cosEnd, sinEnd),
	}
}

func ellipsePoint(center geom.Point, rx, ry, cosPhi, sinPhi, ux, uy float64) geom.Point {
	x, y := rx*ux, ry*uy
	return geom.P(
		center.X+cosPhi*x-sinPhi*y,
		center.Y+sinPhi*x+cosPhi*y,
	)
}
