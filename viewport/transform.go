package viewport

import "github.com/svg2pptx/pathcore/geom"

// Transform is a 2D affine map x' = Txx*x + Txy*y + Tx, y' = Tyx*x + Tyy*y + Ty,
// mirroring the teacher's mp.Transform matrix layout. viewBox composition only
// ever needs the scale+translate subset (Txy and Tyx stay zero), but the full
// matrix form composes cleanly via Then.
type Transform struct {
	Txx, Txy, Tx float64
	Tyx, Tyy, Ty float64
}

// Identity returns the transform that leaves every point unchanged.
func Identity() Transform {
	return Transform{Txx: 1, Tyy: 1}
}

// Shifted returns a translation by (dx, dy).
func Shifted(dx, dy float64) Transform {
	return Transform{Txx: 1, Tx: dx, Tyy: 1, Ty: dy}
}

// Scaled returns an independent-axis scale about the origin.
func Scaled(sx, sy float64) Transform {
	return Transform{Txx: sx, Tyy: sy}
}

// Then composes t followed by other (other ∘ t).
func (t Transform) Then(other Transform) Transform {
	return Transform{
		Txx: other.Txx*t.Txx + other.Txy*t.Tyx,
		Txy: other.Txx*t.Txy + other.Txy*t.Tyy,
		Tx:  other.Txx*t.Tx + other.Txy*t.Ty + other.Tx,
		Tyx: other.Tyx*t.Txx + other.Tyy*t.Tyx,
		Tyy: other.Tyx*t.Txy + other.Tyy*t.Tyy,
		Ty:  other.Tyx*t.Tx + other.Tyy*t.Ty + other.Ty,
	}
}

// ApplyToPoint maps p through the transform.
func (t Transform) ApplyToPoint(p geom.Point) geom.Point {
	return geom.P(
		t.Txx*p.X+t.Txy*p.Y+t.Tx,
		t.Tyx*p.X+t.Tyy*p.Y+t.Ty,
	)
}
