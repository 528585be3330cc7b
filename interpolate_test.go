package linechart

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestInterpolateEndpoints(t *testing.T) {
	fn, err := Interpolate("M0,0 L10,10", "M0,0 L10,10 L20,0", nil)
	require.NoError(t, err)

	require.Equal(t, "M0,0 L10,10", fn(0))
	require.Equal(t, "M0,0 L10,10 L20,0", fn(1))

	// progress is clamped to [0,1]
	require.Equal(t, fn(0), fn(-0.5))
	require.Equal(t, fn(1), fn(2))
}

func TestInterpolateGrowingLine(t *testing.T) {
	fn, err := Interpolate("M0,0 L10,10", "M0,0 L10,10 L20,0", nil)
	require.NoError(t, err)

	// the padded third command grows out of the shorter path's tail
	require.Equal(t, "M0,0 L10,10 L12.5,7.5", fn(0.25))
	require.Equal(t, "M0,0 L10,10 L15,5", fn(0.5))
	require.Equal(t, "M0,0 L10,10 L17.5,2.5", fn(0.75))
}

func TestInterpolateTypeSwitchAtMidpoint(t *testing.T) {
	fn, err := Interpolate("M0,0 L10,10", "M0,0 C0,0 5,5 10,10", nil)
	require.NoError(t, err)

	// below 0.5 the command type comes from the first path, at and
	// above it from the second
	require.Equal(t, "M0,0 L7.5,7.5 8.75,8.75 10,10", fn(0.25))
	require.Equal(t, "M0,0 C5,5 7.5,7.5 10,10", fn(0.5))
	require.Equal(t, "M0,0 C2.5,2.5 6.25,6.25 10,10", fn(0.75))
}

func TestInterpolateIdempotent(t *testing.T) {
	fn, err := Interpolate("M0,0 L10,10 Z", "M5,5 C1,1 2,2 30,-10 Z", nil)
	require.NoError(t, err)

	for _, tt := range []float64{0, 0.1, 0.25, 0.5, 0.75, 0.99, 1} {
		require.Equal(t, fn(tt), fn(tt), "t=%v", tt)
	}
	// evaluation order must not matter
	at1 := fn(1)
	fn(0.5)
	fn(0)
	require.Equal(t, at1, fn(1))
}

func TestInterpolateMonotonicCoordinates(t *testing.T) {
	fn, err := Interpolate("M0,0 L10,10", "M0,0 L30,-10", nil)
	require.NoError(t, err)

	prevX, prevY := 10.0, 10.0
	for _, tt := range []float64{0.1, 0.2, 0.3, 0.5, 0.7, 0.9, 1} {
		p, err := ParsePath(fn(tt))
		require.NoError(t, err)
		coords := p.Commands[1].Coordinates
		require.GreaterOrEqual(t, coords[0], prevX, "x at t=%v", tt)
		require.LessOrEqual(t, coords[1], prevY, "y at t=%v", tt)
		require.True(t, coords[0] >= 10 && coords[0] <= 30)
		require.True(t, coords[1] >= -10 && coords[1] <= 10)
		prevX, prevY = coords[0], coords[1]
	}
}

func TestInterpolateClosePathPassesThrough(t *testing.T) {
	fn, err := Interpolate("M0,0 L10,10 Z", "M0,0 L20,20 Z", nil)
	require.NoError(t, err)

	for _, tt := range []float64{0, 0.25, 0.5, 0.75, 1} {
		p, perr := ParsePath(fn(tt))
		require.NoError(t, perr)
		require.Equal(t, ClosePath, p.Commands[2].Type, "t=%v", tt)
		require.Equal(t, "Z", p.Commands[2].String(), "t=%v", tt)
	}
}

func TestInterpolateExcludeByIndex(t *testing.T) {
	opts := &Options{Exclude: &Filter{Indices: []int{0}}}
	fn, err := Interpolate("M0,0 L10,10", "M5,5 L20,20", opts)
	require.NoError(t, err)

	// the excluded command passes through unchanged, switching source
	// at the midpoint like command types do
	require.Equal(t, "M0,0 L12.5,12.5", fn(0.25))
	require.Equal(t, "M5,5 L17.5,17.5", fn(0.75))
}

func TestInterpolateExcludeWinsOverInclude(t *testing.T) {
	opts := &Options{
		Include: &Filter{Indices: []int{1}},
		Exclude: &Filter{Types: []CommandType{LineTo}},
	}
	fn, err := Interpolate("M0,0 L10,10", "M0,0 L20,20", opts)
	require.NoError(t, err)
	require.Equal(t, "M0,0 L10,10", fn(0.25))
	require.Equal(t, "M0,0 L20,20", fn(0.75))
}

func TestInterpolateIncludeLimitsSelection(t *testing.T) {
	opts := &Options{Include: &Filter{Indices: []int{1}}}
	fn, err := Interpolate("M0,0 L10,10", "M4,4 L20,20", opts)
	require.NoError(t, err)

	// index 1 interpolates, index 0 passes through
	require.Equal(t, "M0,0 L12.5,12.5", fn(0.25))
	require.Equal(t, "M4,4 L17.5,17.5", fn(0.75))
}

func TestInterpolateMaxSegmentLengthAccepted(t *testing.T) {
	fn, err := Interpolate("M0,0 L10,10", "M0,0 L20,20", &Options{MaxSegmentLength: 5})
	require.NoError(t, err)
	require.Equal(t, "M0,0 L15,15", fn(0.5))
}

func TestInterpolateParseErrorsPropagate(t *testing.T) {
	fn, err := Interpolate("M0,0 X10,10", "M0,0 L10,10", nil)
	require.Nil(t, fn)
	_, ok := err.(*InvalidPathError)
	require.True(t, ok, "expected *InvalidPathError, got %T", err)

	fn, err = Interpolate("M0,0 L10,10", "", nil)
	require.Nil(t, fn)
	_, ok = err.(*InvalidPathError)
	require.True(t, ok, "expected *InvalidPathError, got %T", err)
}

func TestInterpolateRelativeInputs(t *testing.T) {
	// relative descriptions are normalized before aligning
	fn, err := Interpolate("m0,0 l10,10", "M0,0 L20,20", nil)
	require.NoError(t, err)
	require.Equal(t, "M0,0 L15,15", fn(0.5))
}

func TestBuildInterpolatorOwnsItsState(t *testing.T) {
	a := mustAbsolute(t, "M0,0 L10,10")
	b := mustAbsolute(t, "M0,0 L20,20")

	pi := BuildInterpolator(a, b, nil)
	before := pi.Eval(0.5)

	// mutating the inputs after construction must not leak in
	a[1].Coordinates[0] = -999
	b[1].Coordinates[1] = -999
	require.Equal(t, before, pi.Eval(0.5))
}
