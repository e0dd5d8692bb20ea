// Package geom provides the shared geometric primitives used across the
// path-conversion pipeline: a coordinate-space-free Point, cubic Bézier
// segments, and axis-aligned bounds.
//
// # Coordinate spaces
//
// geom.Point carries no space information by itself — it is the common
// (X, Y) pair that the space-tagged wrapper types in package space embed.
// The space-tagged types appear at the pipeline's public boundaries (EMU
// bounds, the EMU to Relative projection), where mixing an SVG-user-unit
// coordinate with an EMU coordinate is a compile error; the arc converter
// and the bounds and emitter walkers work on bare geom.Point values. See
// package space for the three wrapper types (SVG, EMU, Relative).
//
// This mirrors the teacher package's mp.Point / mp.P helper (a single
// concrete (X, Y) struct used everywhere geometry is needed) generalized
// with the space-isolation the specification calls for.
package geom
