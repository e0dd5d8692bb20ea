package pathsystem

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/svg2pptx/pathcore/drawingml"
	"github.com/svg2pptx/pathcore/viewport"
)

func TestProcessPathRequiresConfiguration(t *testing.T) {
	ps := NewPathSystem()
	_, err := ps.ProcessPath("M 0 0 L 10 10", nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNotConfigured)
}

func TestProcessPathTriangle(t *testing.T) {
	ps := NewPathSystem()
	require.NoError(t, ps.ConfigureViewport(100, 100, nil, "", 96))

	result, err := ps.ProcessPath("M 10 10 L 90 10 L 90 90 Z", nil)
	require.NoError(t, err)
	assert.Contains(t, result.PathXML, "<a:moveTo>")
	assert.Contains(t, result.PathXML, "<a:close/>")
	assert.Equal(t, "", result.ShapeXML)
	assert.Len(t, result.Commands, 4)
	assert.Equal(t, int64(1), result.Stats.PathsProcessed)
}

func TestProcessPathWithStyleProducesShapeXML(t *testing.T) {
	ps := NewPathSystem()
	require.NoError(t, ps.ConfigureViewport(100, 100, nil, "", 96))

	result, err := ps.ProcessPath("M 0 0 L 10 10 Z", &drawingml.Style{Fill: "#FF0000"})
	require.NoError(t, err)
	assert.Contains(t, result.ShapeXML, "<p:sp ")
	assert.Contains(t, result.ShapeXML, `val="FF0000"`)
}

func TestProcessPathSurfacesParseErrorWithStage(t *testing.T) {
	ps := NewPathSystem()
	require.NoError(t, ps.ConfigureViewport(100, 100, nil, "", 96))

	_, err := ps.ProcessPath("L 10 10", nil)
	require.Error(t, err)
	var procErr *PathProcessingError
	require.ErrorAs(t, err, &procErr)
	assert.Equal(t, StageParse, procErr.Stage)
}

func TestProcessMultiplePathsKeepsIndexAlignmentAcrossFailures(t *testing.T) {
	ps := NewPathSystem()
	require.NoError(t, ps.ConfigureViewport(100, 100, nil, "", 96))

	specs := []PathSpec{
		{D: "M 0 0 L 10 10"},
		{D: "not a path"},
		{D: "M 5 5 L 50 50 Z"},
	}
	outcomes := ps.ProcessMultiplePaths(specs)

	require.Len(t, outcomes, 3)
	assert.NoError(t, outcomes[0].Err)
	assert.Error(t, outcomes[1].Err)
	assert.NoError(t, outcomes[2].Err)
	assert.NotEmpty(t, outcomes[2].Result.PathXML)
}

func TestValidatePathData(t *testing.T) {
	ps := NewPathSystem()
	assert.True(t, ps.ValidatePathData("M 0 0 L 10 10"))
	assert.False(t, ps.ValidatePathData("L 10 10"))
}

func TestConfigureArcQualityClampsOutOfRangeDefault(t *testing.T) {
	ps := NewPathSystem()
	ps.ConfigureArcQuality(5, 0)
	assert.Equal(t, 90.0, ps.maxSegmentDeg)

	ps.ConfigureArcQuality(45, 0)
	assert.Equal(t, 45.0, ps.maxSegmentDeg)
}

func TestConfigureViewportRejectsInvalidDimensions(t *testing.T) {
	ps := NewPathSystem()
	err := ps.ConfigureViewport(0, 100, nil, "", 96)
	assert.Error(t, err)
}

func TestStatsAccumulateArcConversions(t *testing.T) {
	ps := NewPathSystem()
	require.NoError(t, ps.ConfigureViewport(200, 200, &viewport.ViewBox{Width: 200, Height: 200}, "", 96))

	_, err := ps.ProcessPath("M 0 0 A 50 50 0 0 1 100 0", nil)
	require.NoError(t, err)

	stats := ps.Stats()
	assert.Equal(t, uint64(1), stats.ArcsConverted)
	assert.Greater(t, stats.SegmentsGenerated, uint64(0))
}
