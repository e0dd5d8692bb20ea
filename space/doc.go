// Package space defines coordinate-space-tagged point and bounds types so
// that mixing an SVG-user-unit coordinate with an EMU or PowerPoint-relative
// coordinate is a compile-time type error, never a runtime label check.
//
// spec.md §3 describes geom.Point as "(x, y) tagged with a coordinate-space
// label (Svg, Emu, Relative)" and spec.md §9 asks for "a phantom type
// parameter or newtype per space ... so cross-space arithmetic is a compile
// error". Go has no phantom types, so this package uses three distinct
// concrete struct types instead — SVG, EMU, and Relative — each wrapping a
// geom.Point. None of them convert to one another implicitly; the EMU to
// Relative step is the named function viewport.SVGToRelative. The SVG to EMU
// step happens inside the bounds and emitter walkers (viewport and
// drawingml), which work on bare geom.Point values.
package space
