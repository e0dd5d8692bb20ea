package viewport

import (
	"fmt"

	"github.com/svg2pptx/pathcore/arc"
	"github.com/svg2pptx/pathcore/geom"
	"github.com/svg2pptx/pathcore/pathdata"
	"github.com/svg2pptx/pathcore/space"
	"github.com/svg2pptx/pathcore/units"
)

// ConversionContext is units.ConversionContext under the name the
// coordinate-system contract (spec.md §4.2) exposes it as.
type ConversionContext = units.ConversionContext

// TransformError reports that a command sequence could not be walked to
// compute bounds, because an arc within it failed to convert.
type TransformError struct {
	Cause error
}

func (e *TransformError) Error() string {
	return fmt.Sprintf("viewport: coordinate transform failed: %v", e.Cause)
}

func (e *TransformError) Unwrap() error { return e.Cause }

// CalculatePathBounds walks commands tracking a pen in SVG user-space, maps
// every bounds-contributing point (per spec.md §4.2's per-command point
// table) through mapping into viewport user units, then through ctx's DPI
// into EMU — the unit converter's px→EMU factor, the same one Resolve
// applies to a plain "px" length — and returns the resulting axis-aligned
// box in EMU. arcStats, if non-nil, records each arc's conversion quality.
func CalculatePathBounds(commands []pathdata.Command, mapping ViewportMapping, ctx ConversionContext, maxSegmentDeg float64, arcStats *arc.Stats) (space.EMUBounds, error) {
	t := mapping.Transform()
	box := geom.EmptyBounds()
	pen := geom.Point{}
	subpathStart := geom.Point{}

	toEMU := func(p geom.Point) geom.Point {
		px := t.ApplyToPoint(p)
		return geom.P(units.PxToEMU(px.X, ctx.DPI), units.PxToEMU(px.Y, ctx.DPI))
	}

	resolve := func(x, y float64, relative bool) geom.Point {
		if relative {
			return geom.P(pen.X+x, pen.Y+y)
		}
		return geom.P(x, y)
	}
	add := func(p geom.Point) {
		box = box.Expand(toEMU(p))
	}

	for _, cmd := range commands {
		switch p := cmd.Params.(type) {
		case pathdata.MoveToParams:
			pen = resolve(p.X, p.Y, cmd.Relative)
			subpathStart = pen
			add(pen)

		case pathdata.LineToParams:
			pen = resolve(p.X, p.Y, cmd.Relative)
			add(pen)

		case pathdata.HorizontalParams:
			x := p.X
			if cmd.Relative {
				x += pen.X
			}
			pen = geom.P(x, pen.Y)
			add(pen)

		case pathdata.VerticalParams:
			y := p.Y
			if cmd.Relative {
				y += pen.Y
			}
			pen = geom.P(pen.X, y)
			add(pen)

		case pathdata.CubicParams:
			c1 := resolve(p.X1, p.Y1, cmd.Relative)
			c2 := resolve(p.X2, p.Y2, cmd.Relative)
			end := resolve(p.X, p.Y, cmd.Relative)
			add(c1)
			add(c2)
			add(end)
			pen = end

		case pathdata.SmoothCubicParams:
			c2 := resolve(p.X2, p.Y2, cmd.Relative)
			end := resolve(p.X, p.Y, cmd.Relative)
			add(c2)
			add(end)
			pen = end

		case pathdata.QuadraticParams:
			c1 := resolve(p.X1, p.Y1, cmd.Relative)
			end := resolve(p.X, p.Y, cmd.Relative)
			add(c1)
			add(end)
			pen = end

		case pathdata.SmoothQuadParams:
			end := resolve(p.X, p.Y, cmd.Relative)
			add(end)
			pen = end

		case pathdata.ArcParams:
			end := resolve(p.X, p.Y, cmd.Relative)
			segs, err := arc.ArcToCubics(pen, p.RX, p.RY, p.XAxisRotationDeg, p.LargeArc, p.Sweep, end, maxSegmentDeg)
			if err != nil {
				return space.EMUBounds{}, &TransformError{Cause: err}
			}
			if arcStats != nil {
				arcStats.Record(segs)
			}
			for _, seg := range segs {
				box = box.ExpandBezier(geom.BezierSegment{
					Start:    toEMU(seg.Start),
					Control1: toEMU(seg.Control1),
					Control2: toEMU(seg.Control2),
					End:      toEMU(seg.End),
				})
			}
			pen = end

		case pathdata.CloseParams:
			pen = subpathStart
		}
	}

	return space.WrapEMUBounds(box), nil
}

// SVGToRelative implements spec.md §4.2's svg_to_relative: it maps an EMU
// point into PowerPoint's normalized 0-100000 coordinate space given the
// path's EMU bounds. A zero-width or zero-height bounds box maps every
// point on that axis to 0 rather than dividing by zero.
func SVGToRelative(p space.EMU, bounds space.EMUBounds) space.Relative {
	const scale = 100000.0

	relX := 0.0
	if w := bounds.Width(); w != 0 {
		relX = (p.X - bounds.MinX) / w * scale
	}
	relY := 0.0
	if h := bounds.Height(); h != 0 {
		relY = (p.Y - bounds.MinY) / h * scale
	}
	return space.NewRelative(relX, relY)
}
