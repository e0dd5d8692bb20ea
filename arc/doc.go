// Package arc converts a single SVG elliptical arc into a sequence of cubic
// Bézier segments (the "a2c" algorithm), grounded on
// original_source/core/paths/a2c.py and arc_converter.py's endpoint→center
// parameterization, radii correction, and magic-number cubic approximation,
// with the teacher's mp/transform.go rotation-matrix idiom
// (Txx/Txy/Tyx/Tyy, Concat) generalized into the ellipse-basis transform
// used to place each segment's control points.
//
// ArcToCubics never swallows a genuine failure the way the reference
// implementation's broad except clause does: only recoverable degenerate
// inputs (zero radii, coincident endpoints) produce a fallback or empty
// result, while non-finite parameters and oversized sweeps are reported as
// errors so a caller can decide how to handle a malformed path.
package arc
