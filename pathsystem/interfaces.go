package pathsystem

import (
	"github.com/svg2pptx/pathcore/arc"
	"github.com/svg2pptx/pathcore/drawingml"
	"github.com/svg2pptx/pathcore/geom"
	"github.com/svg2pptx/pathcore/pathdata"
	"github.com/svg2pptx/pathcore/space"
	"github.com/svg2pptx/pathcore/units"
	"github.com/svg2pptx/pathcore/viewport"
)

// Parser is the path-data parsing collaborator. The facade depends only on
// this trait, not on package pathdata directly, per spec.md §9's
// architecture-interfaces remapping.
type Parser interface {
	Parse(d string) ([]pathdata.Command, error)
	Validate(d string) bool
}

// CoordinateSystem composes viewBox mapping and walks a command sequence to
// compute its bounds.
type CoordinateSystem interface {
	ComposeViewport(viewportW, viewportH float64, viewbox *viewport.ViewBox, preserveAspectRatio string) (viewport.ViewportMapping, error)
	CalculatePathBounds(commands []pathdata.Command, mapping viewport.ViewportMapping, ctx units.ConversionContext, maxSegmentDeg float64, stats *arc.Stats) (space.EMUBounds, error)
}

// ArcConverter turns one elliptical arc into cubic Bézier segments. C3 and
// C4 call package arc directly (spec.md §4.2/§4.4 wire the arc converter in
// as a concrete step of their own walkers, not an injected collaborator),
// so this trait exists to complete the architecture-interfaces module per
// spec.md §9, and to let a test substitute a fake converter independently
// of the real walkers.
type ArcConverter interface {
	ArcToCubics(start geom.Point, rx, ry, phiDeg float64, largeArc, sweep bool, end geom.Point, maxSegmentDeg float64) ([]arc.BezierSegment, error)
}

// DrawingMLGenerator walks a command sequence into DrawingML XML.
type DrawingMLGenerator interface {
	GeneratePathXML(commands []pathdata.Command, bounds space.EMUBounds, mapping viewport.ViewportMapping, ctx units.ConversionContext, maxSegmentDeg float64, stats *arc.Stats) (string, error)
	GenerateShapeXML(pathXML string, bounds space.EMUBounds, style *drawingml.Style, shapeID uint32, ctx units.ConversionContext) (string, error)
}

type defaultParser struct{}

func (defaultParser) Parse(d string) ([]pathdata.Command, error) { return pathdata.Parse(d) }
func (defaultParser) Validate(d string) bool                     { return pathdata.Validate(d) }

type defaultCoordinateSystem struct{}

func (defaultCoordinateSystem) ComposeViewport(w, h float64, vb *viewport.ViewBox, par string) (viewport.ViewportMapping, error) {
	return viewport.ComposeViewport(w, h, vb, par)
}

func (defaultCoordinateSystem) CalculatePathBounds(commands []pathdata.Command, mapping viewport.ViewportMapping, ctx units.ConversionContext, maxSegmentDeg float64, stats *arc.Stats) (space.EMUBounds, error) {
	return viewport.CalculatePathBounds(commands, mapping, ctx, maxSegmentDeg, stats)
}

type defaultDrawingMLGenerator struct{}

func (defaultDrawingMLGenerator) GeneratePathXML(commands []pathdata.Command, bounds space.EMUBounds, mapping viewport.ViewportMapping, ctx units.ConversionContext, maxSegmentDeg float64, stats *arc.Stats) (string, error) {
	return drawingml.GeneratePathXML(commands, bounds, mapping, ctx, maxSegmentDeg, stats)
}

func (defaultDrawingMLGenerator) GenerateShapeXML(pathXML string, bounds space.EMUBounds, style *drawingml.Style, shapeID uint32, ctx units.ConversionContext) (string, error) {
	return drawingml.GenerateShapeXML(pathXML, bounds, style, shapeID, ctx)
}
