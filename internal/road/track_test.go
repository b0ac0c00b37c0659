package road

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateDeterministic(t *testing.T) {
	plan := DefaultPlan(2000)

	a, err := Generate(2000, 200, plan)
	require.NoError(t, err)
	b, err := Generate(2000, 200, plan)
	require.NoError(t, err)

	assert.Equal(t, a.Segments(), b.Segments())
}

func TestGeneratePositions(t *testing.T) {
	track, err := Generate(50, 200, nil)
	require.NoError(t, err)

	segs := track.Segments()
	require.Len(t, segs, 50)
	for i, s := range segs {
		assert.Equal(t, i, s.Index)
		assert.Equal(t, float64(i)*200, s.Z)
		assert.Zero(t, s.Curve, "no plan means a straight track")
		if i > 0 {
			assert.Equal(t, 200.0, s.Z-segs[i-1].Z)
		}
	}
	assert.Equal(t, 10000.0, track.Length())
}

func TestDefaultPlanMatchesClassicLayout(t *testing.T) {
	track, err := Generate(2000, 200, DefaultPlan(2000))
	require.NoError(t, err)

	tests := []struct {
		index int
		curve float64
	}{
		{0, 0},
		{300, 0},
		{301, 1},
		{499, 1},
		{500, 0},
		{800, 0},
		{801, -1},
		{1199, -1},
		{1200, 0},
		{1999, 0},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.curve, track.At(tc.index).Curve, "segment %d", tc.index)
	}
}

func TestCurvePlanOverlapLaterWins(t *testing.T) {
	plan := CurvePlan{
		{Start: 0, End: 10, Curve: 1},
		{Start: 5, End: 8, Curve: -2},
	}
	track, err := Generate(12, 100, plan)
	require.NoError(t, err)

	assert.Equal(t, 1.0, track.At(4).Curve)
	assert.Equal(t, -2.0, track.At(5).Curve)
	assert.Equal(t, -2.0, track.At(7).Curve)
	assert.Equal(t, 1.0, track.At(8).Curve)
	assert.Equal(t, 0.0, track.At(10).Curve)
}

func TestGenerateRejectsDegenerateConfig(t *testing.T) {
	tests := []struct {
		name   string
		count  int
		length float64
		plan   CurvePlan
	}{
		{"empty track", 0, 200, nil},
		{"negative count", -3, 200, nil},
		{"zero segment length", 10, 0, nil},
		{"negative segment length", 10, -1, nil},
		{"NaN segment length", 10, math.NaN(), nil},
		{"infinite segment length", 10, math.Inf(1), nil},
		{"empty bend", 10, 200, CurvePlan{{Start: 4, End: 4, Curve: 1}}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			track, err := Generate(tc.count, tc.length, tc.plan)
			require.ErrorIs(t, err, ErrInvalidConfig)
			assert.Nil(t, track)
		})
	}
}

func TestTrackIndexingWraps(t *testing.T) {
	track, err := Generate(10, 200, nil)
	require.NoError(t, err)

	assert.Equal(t, 3, track.At(13).Index)
	assert.Equal(t, 9, track.At(-1).Index)
	assert.Equal(t, 0, track.At(-10).Index)

	tests := []struct {
		z    float64
		want int
	}{
		{0, 0},
		{199.9, 0},
		{200, 1},
		{1999, 9},
		{2000, 0},
		{2100, 0},
		{-1, 9},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.want, track.BaseIndex(tc.z), "z=%v", tc.z)
		assert.Equal(t, tc.want, track.SegmentAt(tc.z).Index, "z=%v", tc.z)
	}
}

func TestDefaultPlanShortTrack(t *testing.T) {
	for _, n := range []int{1, 2, 4, 7, 10} {
		_, err := Generate(n, 200, DefaultPlan(n))
		assert.NoError(t, err, "count=%d", n)
	}
}
