package contrast

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/tokensmith/internal/colormath"
	"github.com/alexisbeaulieu97/tokensmith/internal/tokens"
)

func TestRatioEndpoints(t *testing.T) {
	t.Parallel()

	require.InDelta(t, 21.0, Ratio(colormath.White, colormath.Black), 1e-9)

	for _, hex := range []string{"#FFFFFF", "#000000", "#3B82F6", "#777777"} {
		h := colormath.MustParse(hex)
		require.InDelta(t, 1.0, Ratio(h, h), 1e-12, hex)
	}
}

func TestRatioIsSymmetric(t *testing.T) {
	t.Parallel()

	rng := rand.New(rand.NewSource(7))
	for i := 0; i < 500; i++ {
		a := colormath.Hex{R: uint8(rng.Intn(256)), G: uint8(rng.Intn(256)), B: uint8(rng.Intn(256))}
		b := colormath.Hex{R: uint8(rng.Intn(256)), G: uint8(rng.Intn(256)), B: uint8(rng.Intn(256))}

		ab, ba := Ratio(a, b), Ratio(b, a)
		require.Equal(t, ab, ba)
		require.GreaterOrEqual(t, ab, 1.0)
		require.LessOrEqual(t, ab, 21.0+1e-9)
	}
}

func TestWhiteOnBlue500FailsAA(t *testing.T) {
	t.Parallel()

	result, err := EvaluateHex("#FFFFFF", "#3B82F6")
	require.NoError(t, err)
	require.InDelta(t, 3.68, result.Ratio, 0.01)
	require.False(t, result.AA)
	require.False(t, result.AAA)
	require.Equal(t, "3.68:1", result.Display())
	require.Equal(t, "FAIL", result.Level())
}

func TestClassifyThresholds(t *testing.T) {
	t.Parallel()

	require.Equal(t, Result{Ratio: 4.49, AA: false, AAA: false}, Classify(4.49))
	require.Equal(t, Result{Ratio: 4.5, AA: true, AAA: false}, Classify(4.5))
	require.Equal(t, "AA", Classify(6.99).Level())
	require.Equal(t, Result{Ratio: 7, AA: true, AAA: true}, Classify(7))
	require.Equal(t, "AAA", Classify(21).Level())
}

func TestRatioOfRejectsMalformed(t *testing.T) {
	t.Parallel()

	_, err := RatioOf("#FFF", "#12")
	require.Error(t, err)
	_, err = EvaluateHex("nope", "#000")
	require.Error(t, err)
}

func TestHealthScoreDefaultGraph(t *testing.T) {
	t.Parallel()

	g := tokens.Default()
	// White on #3B82F6 is the only failing pair.
	require.Equal(t, 75, HealthScore(g))

	audit, err := Audit(g)
	require.NoError(t, err)
	require.Len(t, audit.Pairs, 4)
	require.Equal(t, 3, audit.Passing())
	require.Equal(t, "primary-brand", audit.Pairs[2].ID)
	require.False(t, audit.Pairs[2].AA)
}

func TestHealthScoreIsSimpleSum(t *testing.T) {
	t.Parallel()

	g := tokens.Default()
	g.Colors.Primary = "#1D4ED8"
	require.Equal(t, 100, HealthScore(g))

	g.Colors.Light.Text = "#EEEEEE"
	g.Colors.Dark.Text = "#111111"
	require.Equal(t, 25, HealthScore(g))
}

func TestAuditReportsBadPairWithoutAbortingOthers(t *testing.T) {
	t.Parallel()

	g := tokens.Default()
	g.Colors.Dark.Canvas = "#XYZ"

	audit, err := Audit(g)
	require.Error(t, err)
	require.Contains(t, err.Error(), "dark-content")
	require.Len(t, audit.Pairs, 3)
	require.Equal(t, 50, audit.Score)
}
