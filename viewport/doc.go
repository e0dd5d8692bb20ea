// Package viewport composes SVG viewBox/preserveAspectRatio mapping, walks
// a parsed command sequence to compute its bounding box, and normalizes
// coordinates into PowerPoint's 0-100000 relative space, per spec.md §4.2.
//
// Its affine Transform is grounded on the teacher's mp/transform.go
// (Txx/Txy/Tx/Tyx/Tyy/Ty fields, Shifted/Scaled/Then/ApplyToPoint),
// generalized from MetaPost's general-purpose affine maps to the narrower
// scale-then-translate composition SVG's viewBox mapping needs. Tight arc
// bounds reuse the teacher's svg/writer.go bbox1D/PathBBox cubic-extrema
// technique, now exposed as geom.BezierSegment.Bounds.
package viewport
