package drawingml

import (
	"fmt"

	"github.com/svg2pptx/pathcore/arc"
	"github.com/svg2pptx/pathcore/geom"
	"github.com/svg2pptx/pathcore/pathdata"
	"github.com/svg2pptx/pathcore/space"
	"github.com/svg2pptx/pathcore/units"
	"github.com/svg2pptx/pathcore/viewport"
)

const drawingMLNamespace = "http://schemas.openxmlformats.org/drawingml/2006/main"
const presentationMLNamespace = "http://schemas.openxmlformats.org/presentationml/2006/main"

// fallbackStrokeWidthEMU is "1px = 0.75pt = 9525 EMU", the fallback spec.md
// §4.4 names for a stroke-width that can't be resolved through the unit
// converter.
const fallbackStrokeWidthEMU = 9525

// XMLGenerationError wraps a failure encountered while walking a command
// sequence to produce XML, most commonly a failing arc conversion.
type XMLGenerationError struct {
	Cause error
}

func (e *XMLGenerationError) Error() string {
	return fmt.Sprintf("drawingml: failed to generate path XML: %v", e.Cause)
}

func (e *XMLGenerationError) Unwrap() error { return e.Cause }

// Style is the enumerated style-attribute subset spec.md §6 names as
// input, all optional. A nil pointer field means the attribute was absent.
type Style struct {
	Fill          string
	FillOpacity   *float64
	Stroke        string
	StrokeWidth   string
	StrokeOpacity *float64
	Opacity       *float64
}

// GeneratePathXML walks commands, tracking a pen in SVG user-space exactly
// as CalculatePathBounds does, and emits the DrawingML fragment spec.md
// §4.4 describes. Every point is folded through ctx's DPI into EMU before
// normalizing against bounds, the same px→EMU factor CalculatePathBounds
// applies when it computes bounds — so the two stay in the same unit and
// the normalized ratio this produces is correct regardless of DPI. Arc
// commands are converted to cubic segments by the a2c package before
// emission; arcStats, if non-nil, records their conversion quality.
// Returns "" for an empty command sequence.
func GeneratePathXML(commands []pathdata.Command, bounds space.EMUBounds, mapping viewport.ViewportMapping, ctx units.ConversionContext, maxSegmentDeg float64, arcStats *arc.Stats) (string, error) {
	if len(commands) == 0 {
		return "", nil
	}

	t := mapping.Transform()
	var b builder

	pen := geom.Point{}
	subpathStart := geom.Point{}
	var prevCubicC2 *geom.Point
	var prevQuadC1 *geom.Point

	resolve := func(x, y float64, relative bool) geom.Point {
		if relative {
			return geom.P(pen.X+x, pen.Y+y)
		}
		return geom.P(x, y)
	}
	toRel := func(p geom.Point) (float64, float64) {
		px := t.ApplyToPoint(p)
		emuX := units.PxToEMU(px.X, ctx.DPI)
		emuY := units.PxToEMU(px.Y, ctx.DPI)
		rel := viewport.SVGToRelative(space.NewEMU(emuX, emuY), bounds)
		return rel.X, rel.Y
	}
	emitCubic := func(c1, c2, end geom.Point) {
		x1, y1 := toRel(c1)
		x2, y2 := toRel(c2)
		x, y := toRel(end)
		b.emitCubicTo(x1, y1, x2, y2, x, y)
	}
	quadToCubic := func(q1, end geom.Point) (geom.Point, geom.Point) {
		c1 := geom.P(pen.X+2.0/3.0*(q1.X-pen.X), pen.Y+2.0/3.0*(q1.Y-pen.Y))
		c2 := geom.P(end.X+2.0/3.0*(q1.X-end.X), end.Y+2.0/3.0*(q1.Y-end.Y))
		return c1, c2
	}

	for _, cmd := range commands {
		switch p := cmd.Params.(type) {
		case pathdata.MoveToParams:
			pen = resolve(p.X, p.Y, cmd.Relative)
			subpathStart = pen
			x, y := toRel(pen)
			b.emitMoveTo(x, y)
			prevCubicC2, prevQuadC1 = nil, nil

		case pathdata.LineToParams:
			pen = resolve(p.X, p.Y, cmd.Relative)
			x, y := toRel(pen)
			b.emitLineTo(x, y)
			prevCubicC2, prevQuadC1 = nil, nil

		case pathdata.HorizontalParams:
			x := p.X
			if cmd.Relative {
				x += pen.X
			}
			pen = geom.P(x, pen.Y)
			rx, ry := toRel(pen)
			b.emitLineTo(rx, ry)
			prevCubicC2, prevQuadC1 = nil, nil

		case pathdata.VerticalParams:
			y := p.Y
			if cmd.Relative {
				y += pen.Y
			}
			pen = geom.P(pen.X, y)
			rx, ry := toRel(pen)
			b.emitLineTo(rx, ry)
			prevCubicC2, prevQuadC1 = nil, nil

		case pathdata.CubicParams:
			c1 := resolve(p.X1, p.Y1, cmd.Relative)
			c2 := resolve(p.X2, p.Y2, cmd.Relative)
			end := resolve(p.X, p.Y, cmd.Relative)
			emitCubic(c1, c2, end)
			prevCubicC2, prevQuadC1 = &c2, nil
			pen = end

		case pathdata.SmoothCubicParams:
			c2 := resolve(p.X2, p.Y2, cmd.Relative)
			end := resolve(p.X, p.Y, cmd.Relative)
			c1 := pen
			if prevCubicC2 != nil {
				c1 = geom.P(2*pen.X-prevCubicC2.X, 2*pen.Y-prevCubicC2.Y)
			}
			emitCubic(c1, c2, end)
			prevCubicC2, prevQuadC1 = &c2, nil
			pen = end

		case pathdata.QuadraticParams:
			q1 := resolve(p.X1, p.Y1, cmd.Relative)
			end := resolve(p.X, p.Y, cmd.Relative)
			c1, c2 := quadToCubic(q1, end)
			emitCubic(c1, c2, end)
			prevCubicC2, prevQuadC1 = nil, &q1
			pen = end

		case pathdata.SmoothQuadParams:
			end := resolve(p.X, p.Y, cmd.Relative)
			q1 := pen
			if prevQuadC1 != nil {
				q1 = geom.P(2*pen.X-prevQuadC1.X, 2*pen.Y-prevQuadC1.Y)
			}
			c1, c2 := quadToCubic(q1, end)
			emitCubic(c1, c2, end)
			prevCubicC2, prevQuadC1 = nil, &q1
			pen = end

		case pathdata.ArcParams:
			end := resolve(p.X, p.Y, cmd.Relative)
			segs, err := arc.ArcToCubics(pen, p.RX, p.RY, p.XAxisRotationDeg, p.LargeArc, p.Sweep, end, maxSegmentDeg)
			if err != nil {
				return "", &XMLGenerationError{Cause: err}
			}
			if arcStats != nil {
				arcStats.Record(segs)
			}
			prevCubicC2, prevQuadC1 = nil, nil
			for i := range segs {
				emitCubic(segs[i].Control1, segs[i].Control2, segs[i].End)
				if i == len(segs)-1 {
					c2 := segs[i].Control2
					prevCubicC2 = &c2
				}
			}
			pen = end

		case pathdata.CloseParams:
			b.emitClose()
			pen = subpathStart
			prevCubicC2, prevQuadC1 = nil, nil
		}
	}

	if b.Len() == 0 {
		return "", nil
	}

	return fmt.Sprintf(
		`<a:pathLst xmlns:a="%s"><a:path w="100000" h="100000">%s</a:path></a:pathLst>`,
		drawingMLNamespace, b.String(),
	), nil
}

func (b *builder) emitMoveTo(x, y float64) {
	b.openTag("a:moveTo")
	b.writePoint(x, y)
	b.closeTag("a:moveTo")
}

func (b *builder) emitLineTo(x, y float64) {
	b.openTag("a:lnTo")
	b.writePoint(x, y)
	b.closeTag("a:lnTo")
}

func (b *builder) emitCubicTo(x1, y1, x2, y2, x, y float64) {
	b.openTag("a:cubicBezTo")
	b.writePoint(x1, y1)
	b.writePoint(x2, y2)
	b.writePoint(x, y)
	b.closeTag("a:cubicBezTo")
}

func (b *builder) emitClose() {
	b.selfClosingTag("a:close")
}

// GenerateShapeXML wraps pathXML (the output of GeneratePathXML) in a
// complete PowerPoint shape, applying fill/stroke styling and an
// xfrm/off/ext derived from bounds. shapeID is caller-supplied — spec.md
// §4.4 is explicit that the emitter keeps no global counter.
func GenerateShapeXML(pathXML string, bounds space.EMUBounds, style *Style, shapeID uint32, ctx units.ConversionContext) (string, error) {
	if pathXML == "" {
		return "", nil
	}
	if style == nil {
		style = &Style{}
	}

	var b builder
	b.openTag("p:sp", attr{"xmlns:p", presentationMLNamespace}, attr{"xmlns:a", drawingMLNamespace})

	b.openTag("p:nvSpPr")
	b.selfClosingTag("p:cNvPr", intAttr("id", int64(shapeID)), attr{"name", fmt.Sprintf("Custom Shape %d", shapeID)})
	b.selfClosingTag("p:cNvSpPr")
	b.selfClosingTag("p:nvPr")
	b.closeTag("p:nvSpPr")

	b.openTag("p:spPr")
	b.openTag("a:xfrm")
	b.selfClosingTag("a:off", intAttr("x", int64(bounds.MinX)), intAttr("y", int64(bounds.MinY)))
	b.selfClosingTag("a:ext", intAttr("cx", int64(bounds.Width())), intAttr("cy", int64(bounds.Height())))
	b.closeTag("a:xfrm")

	b.openTag("a:custGeom")
	b.selfClosingTag("a:avLst")
	b.selfClosingTag("a:gdLst")
	b.selfClosingTag("a:ahLst")
	b.selfClosingTag("a:cxnLst")
	b.selfClosingTag("a:rect", attr{"l", "0"}, attr{"t", "0"}, attr{"r", "100000"}, attr{"b", "100000"})
	b.WriteString(pathXML)
	b.closeTag("a:custGeom")

	if err := writeFill(&b, style); err != nil {
		return "", &XMLGenerationError{Cause: err}
	}
	if err := writeStroke(&b, style, ctx); err != nil {
		return "", &XMLGenerationError{Cause: err}
	}
	b.closeTag("p:spPr")

	b.closeTag("p:sp")
	return b.String(), nil
}

func writeFill(b *builder, style *Style) error {
	fill := style.Fill
	if fill == "" {
		fill = "none"
	}
	if fill == "none" {
		b.selfClosingTag("a:noFill")
		return nil
	}

	hex, _, err := ParseStyleColor(fill)
	if err != nil {
		return err
	}
	b.openTag("a:solidFill")
	writeColorWithAlpha(b, hex, coalesce(style.FillOpacity, style.Opacity))
	b.closeTag("a:solidFill")
	return nil
}

func writeStroke(b *builder, style *Style, ctx units.ConversionContext) error {
	if style.Stroke == "" || style.Stroke == "none" {
		return nil
	}

	hex, _, err := ParseStyleColor(style.Stroke)
	if err != nil {
		return err
	}

	widthEMU := int64(fallbackStrokeWidthEMU)
	if style.StrokeWidth != "" {
		if emu, err := units.Resolve(style.StrokeWidth, units.AxisDiagonal, ctx); err == nil {
			widthEMU = emu
		}
	}

	b.openTag("a:ln", intAttr("w", widthEMU))
	b.openTag("a:solidFill")
	writeColorWithAlpha(b, hex, coalesce(style.StrokeOpacity, style.Opacity))
	b.closeTag("a:solidFill")
	b.closeTag("a:ln")
	return nil
}

func writeColorWithAlpha(b *builder, hex string, opacity *float64) {
	if opacity == nil || *opacity >= 1.0 {
		b.selfClosingTag("a:srgbClr", attr{"val", hex})
		return
	}
	b.openTag("a:srgbClr", attr{"val", hex})
	pct := int64(clampOpacity(*opacity) * 100000)
	b.selfClosingTag("a:alpha", intAttr("val", pct))
	b.closeTag("a:srgbClr")
}

func coalesce(primary, fallback *float64) *float64 {
	if primary != nil {
		return primary
	}
	return fallback
}

func clampOpacity(v float64) float64 {
	switch {
	case v < 0:
		return 0
	case v > 1:
		return 1
	default:
		return v
	}
}
