package pathdata

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseEmpty(t *testing.T) {
	cmds, err := Parse("   \t\n  ")
	require.NoError(t, err)
	assert.Nil(t, cmds)
}

func TestParseMustStartWithMoveTo(t *testing.T) {
	_, err := Parse("L 10 20")
	require.Error(t, err)
	assert.True(t, MustStartWithMoveTo(err))
}

func TestParseAbuttingNumbersAndCommands(t *testing.T) {
	cmds, err := Parse("M10,20L30,40")
	require.NoError(t, err)
	require.Len(t, cmds, 2)
	assert.Equal(t, MoveTo, cmds[0].Kind)
	assert.Equal(t, MoveToParams{X: 10, Y: 20}, cmds[0].Params)
	assert.Equal(t, LineTo, cmds[1].Kind)
	assert.Equal(t, LineToParams{X: 30, Y: 40}, cmds[1].Params)
}

func TestParseImplicitLineToAfterMove(t *testing.T) {
	cmds, err := Parse("M 1 2 3 4")
	require.NoError(t, err)
	require.Len(t, cmds, 2)
	assert.Equal(t, MoveTo, cmds[0].Kind)
	assert.Equal(t, LineTo, cmds[1].Kind)
	assert.Equal(t, LineToParams{X: 3, Y: 4}, cmds[1].Params)
	assert.Equal(t, byte('L'), cmds[1].Letter)
}

func TestParseImplicitRepeatsOtherCommands(t *testing.T) {
	cmds, err := Parse("M 0 0 L 1 2 3 4")
	require.NoError(t, err)
	require.Len(t, cmds, 3)
	assert.Equal(t, LineTo, cmds[1].Kind)
	assert.Equal(t, LineTo, cmds[2].Kind)
	assert.Equal(t, LineToParams{X: 3, Y: 4}, cmds[2].Params)
}

func TestParseAmbiguousDecimals(t *testing.T) {
	cmds, err := Parse("M0 0L.5.5")
	require.NoError(t, err)
	require.Len(t, cmds, 2)
	assert.Equal(t, LineToParams{X: 0.5, Y: 0.5}, cmds[1].Params)
}

func TestParseCompactArcFlags(t *testing.T) {
	// "1 1" compacted with no separator between the two flags, and no
	// separator before the following coordinate.
	cmds, err := Parse("M0 0A5 5 0 11162.55 162.45")
	require.NoError(t, err)
	require.Len(t, cmds, 2)
	arc, ok := cmds[1].Params.(ArcParams)
	require.True(t, ok)
	assert.True(t, arc.LargeArc)
	assert.True(t, arc.Sweep)
	assert.InDelta(t, 162.55, arc.X, 1e-9)
	assert.InDelta(t, 162.45, arc.Y, 1e-9)
}

func TestParseArcFlagsNotFloats(t *testing.T) {
	cmds, err := Parse("M0 0A30 50 0 0 1 162.55 162.45")
	require.NoError(t, err)
	arc := cmds[1].Params.(ArcParams)
	assert.False(t, arc.LargeArc)
	assert.True(t, arc.Sweep)
}

func TestParseNumberAfterClosePathIsAnError(t *testing.T) {
	// ClosePath takes no arguments and has no implicit-repeat form; a
	// trailing number must be rejected rather than looping forever trying
	// to repeat a zero-arity command.
	_, err := Parse("M0 0Z3")
	require.Error(t, err)
	var parseErr *ParseError
	require.ErrorAs(t, err, &parseErr)
	assert.Equal(t, ErrUnexpectedNumber, parseErr.Kind)
}

func TestParseInsufficientParameters(t *testing.T) {
	_, err := Parse("M 10 20 L 1")
	require.Error(t, err)
	assert.True(t, InsufficientParameters(err))
}

func TestParseRelativeLowercase(t *testing.T) {
	cmds, err := Parse("m0 0 l10 10 z")
	require.NoError(t, err)
	require.Len(t, cmds, 3)
	assert.True(t, cmds[0].Relative)
	assert.True(t, cmds[1].Relative)
	assert.Equal(t, ClosePath, cmds[2].Kind)
}

func TestValidateMatchesParse(t *testing.T) {
	good := "M 10 20 C 10 5 40 5 40 20 Z"
	bad := "L 10 20"
	assert.True(t, Validate(good))
	_, goodErr := Parse(good)
	_, badErr := Parse(bad)
	assert.Equal(t, goodErr == nil, Validate(good))
	assert.Equal(t, badErr == nil, Validate(bad))
	assert.False(t, Validate(bad))
}

func TestParseScientificNotation(t *testing.T) {
	cmds, err := Parse("M 1e2 -2.5e-1")
	require.NoError(t, err)
	m := cmds[0].Params.(MoveToParams)
	assert.InDelta(t, 100.0, m.X, 1e-9)
	assert.InDelta(t, -0.25, m.Y, 1e-9)
}

func TestParseAllCommandKinds(t *testing.T) {
	d := "M0 0 L1 1 H2 V3 C1 1 2 2 3 3 S4 4 5 5 Q1 1 2 2 T3 3 A1 1 0 0 1 4 4 Z"
	cmds, err := Parse(d)
	require.NoError(t, err)
	wantKinds := []Kind{MoveTo, LineTo, Horizontal, Vertical, CubicCurve, SmoothCubic, Quadratic, SmoothQuad, Arc, ClosePath}
	require.Len(t, cmds, len(wantKinds))
	for i, k := range wantKinds {
		assert.Equalf(t, k, cmds[i].Kind, "command %d", i)
	}
}

func TestSupportedCommandsAndInfo(t *testing.T) {
	letters := SupportedCommands()
	assert.Contains(t, letters, byte('A'))
	assert.Contains(t, letters, byte('z'))

	kind, count, relative, ok := CommandInfo('a')
	require.True(t, ok)
	assert.Equal(t, Arc, kind)
	assert.Equal(t, 7, count)
	assert.True(t, relative)

	_, _, _, ok = CommandInfo('@')
	assert.False(t, ok)
}
