package space

import "github.com/svg2pptx/pathcore/geom"

// SVG is a point expressed in SVG user units (the raw numbers that appear
// in a path's `d` attribute, after viewBox mapping but before DPI/unit
// resolution has been folded in — see package viewport for the full
// pipeline).
type SVG struct {
	geom.Point
}

// NewSVG constructs an SVG-space point.
func NewSVG(x, y float64) SVG { return SVG{geom.P(x, y)} }

// EMU is a point expressed in English Metric Units (914400 EMU = 1 inch),
// PowerPoint's absolute length unit.
type EMU struct {
	geom.Point
}

// NewEMU constructs an EMU-space point.
func NewEMU(x, y float64) EMU { return EMU{geom.P(x, y)} }

// Relative is a point expressed in PowerPoint's path-local normalized space,
// nominally 0-100000 for on-path points (control points may overshoot).
type Relative struct {
	geom.Point
}

// NewRelative constructs a Relative-space point.
func NewRelative(x, y float64) Relative { return Relative{geom.P(x, y)} }

// Bounds is an axis-aligned bounds rectangle tagged by coordinate space,
// mirroring spec.md §3's PathBounds. The zero value is not meaningful;
// construct via geom.EmptyBounds and Expand, then wrap.
type Bounds[T any] struct {
	geom.Bounds
}

// SVGBounds, EMUBounds and RelativeBounds are the concrete instantiations
// used by the pipeline; a generic Bounds[T] only exists to share the method
// set — callers should use these named aliases, not Bounds[T] directly.
type (
	SVGBounds      = Bounds[SVG]
	EMUBounds      = Bounds[EMU]
	RelativeBounds = Bounds[Relative]
)

// WrapSVGBounds tags a geom.Bounds as SVG-space.
func WrapSVGBounds(b geom.Bounds) SVGBounds { return SVGBounds{b} }

// WrapEMUBounds tags a geom.Bounds as EMU-space.
func WrapEMUBounds(b geom.Bounds) EMUBounds { return EMUBounds{b} }
