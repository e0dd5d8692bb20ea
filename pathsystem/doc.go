// Package pathsystem composes the path-data parser, coordinate system, arc
// converter, and DrawingML emitter into one configure-then-use facade, per
// spec.md §4.5.
//
// PathSystem is grounded on the teacher's draw.Context: construct with
// NewPathSystem, call the Configure* methods once the way draw.NewContext's
// caller calls Known/Unknown to declare variables, then call ProcessPath
// freely — mirroring NewContext() → ctx.Known(...) → ctx.Solve(). Batch
// processing's "one bad item doesn't sink the batch" semantics are grounded
// on draw.Picture.AddPath, which silently tolerates a nil path rather than
// aborting picture construction; ProcessMultiplePaths generalizes that
// tolerance from a nil pointer to a captured per-item error.
package pathsystem
