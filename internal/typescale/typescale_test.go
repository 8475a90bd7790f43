package typescale

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	tserrors "github.com/alexisbeaulieu97/tokensmith/pkg/errors"
)

func TestComputeMajorThird(t *testing.T) {
	t.Parallel()

	s, err := Compute(16, 1.25)
	require.NoError(t, err)
	require.InDelta(t, 48.828125, s.Steps[5], 1e-9)
	require.Equal(t, 49, s.StepPx(H1))
	require.Equal(t, [StepCount]int{16, 20, 25, 31, 39, 49}, s.Px())
	require.Equal(t, 16.0, s.Step(Body))
	require.Equal(t, 0.0, s.Step(Level(9)))
}

func TestComputeStrictlyIncreasing(t *testing.T) {
	t.Parallel()

	for _, base := range []float64{0.5, 12, 16, 17.5, 24} {
		for _, r := range NamedRatios {
			s, err := Compute(base, r.Value)
			require.NoError(t, err)
			for i := 1; i < StepCount; i++ {
				require.Greater(t, s.Steps[i], s.Steps[i-1], "base=%v ratio=%v step=%d", base, r.Value, i)
			}
		}
	}
}

func TestComputeRejectsInvalidInputs(t *testing.T) {
	t.Parallel()

	cases := []struct {
		base, ratio float64
		field       string
	}{
		{0, 1.25, "typography.baseSize"},
		{-4, 1.25, "typography.baseSize"},
		{math.NaN(), 1.25, "typography.baseSize"},
		{16, 1, "typography.scaleRatio"},
		{16, 0.8, "typography.scaleRatio"},
		{16, math.Inf(1), "typography.scaleRatio"},
	}

	for _, tc := range cases {
		_, err := Compute(tc.base, tc.ratio)
		var validationErr *tserrors.ValidationError
		require.ErrorAs(t, err, &validationErr)
		require.Equal(t, tc.field, validationErr.Field)
	}
}

func TestRoundPxIsHalfUp(t *testing.T) {
	t.Parallel()

	require.Equal(t, 20, RoundPx(19.5))
	require.Equal(t, 19, RoundPx(19.4999))
	require.Equal(t, 25, RoundPx(25.0))
	require.Equal(t, 31, RoundPx(31.25))
	require.Equal(t, 39, RoundPx(39.0625))
}

func TestLevelNames(t *testing.T) {
	t.Parallel()

	names := make([]string, 0, StepCount)
	for _, l := range Levels() {
		names = append(names, l.String())
	}
	require.Equal(t, []string{"body", "h5", "h4", "h3", "h2", "h1"}, names)
	require.Equal(t, "level(7)", Level(7).String())
}

func TestNamedRatios(t *testing.T) {
	t.Parallel()

	v, ok := LookupRatio("major-third")
	require.True(t, ok)
	require.Equal(t, 1.25, v)

	v, ok = LookupRatio("Golden Ratio")
	require.True(t, ok)
	require.Equal(t, 1.618, v)

	_, ok = LookupRatio("octave")
	require.False(t, ok)

	name, ok := NameOf(1.333)
	require.True(t, ok)
	require.Equal(t, "Perfect Fourth", name)

	_, ok = NameOf(1.3)
	require.False(t, ok)
}
