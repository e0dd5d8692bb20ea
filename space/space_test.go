package space

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/svg2pptx/pathcore/geom"
)

func TestNewConstructorsTagTheUnderlyingPoint(t *testing.T) {
	svg := NewSVG(1, 2)
	emu := NewEMU(3, 4)
	rel := NewRelative(5, 6)

	assert.Equal(t, geom.P(1, 2), svg.Point)
	assert.Equal(t, geom.P(3, 4), emu.Point)
	assert.Equal(t, geom.P(5, 6), rel.Point)
}

func TestWrapBoundsPreservesExtent(t *testing.T) {
	raw := geom.Bounds{MinX: 0, MinY: 0, MaxX: 10, MaxY: 20}

	svgBounds := WrapSVGBounds(raw)
	emuBounds := WrapEMUBounds(raw)

	assert.Equal(t, 10.0, svgBounds.Width())
	assert.Equal(t, 20.0, svgBounds.Height())
	assert.Equal(t, raw, emuBounds.Bounds)
}
