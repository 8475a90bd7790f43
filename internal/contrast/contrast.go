// Package contrast evaluates WCAG 2.x contrast between token colors and
// aggregates the canonical pairs of a graph into a health score.
package contrast

import (
	"fmt"
	"math"

	"github.com/alexisbeaulieu97/tokensmith/internal/colormath"
	"github.com/alexisbeaulieu97/tokensmith/internal/tokens"
	tserrors "github.com/alexisbeaulieu97/tokensmith/pkg/errors"
)

const (
	// ThresholdAA is the minimum ratio for normal-size text at level AA.
	ThresholdAA = 4.5
	// ThresholdAAA is the minimum ratio for normal-size text at level AAA.
	ThresholdAAA = 7.0

	pointsPerPair = 25
)

// Result classifies a contrast ratio.
type Result struct {
	Ratio float64 `json:"ratio"`
	AA    bool    `json:"aa"`
	AAA   bool    `json:"aaa"`
}

// Display formats the ratio as shown on badges, e.g. "3.68:1".
func (r Result) Display() string {
	return fmt.Sprintf("%.2f:1", r.Ratio)
}

// Level returns the highest level met: "AAA", "AA" or "FAIL".
func (r Result) Level() string {
	switch {
	case r.AAA:
		return "AAA"
	case r.AA:
		return "AA"
	default:
		return "FAIL"
	}
}

// Ratio returns (max(La,Lb)+0.05)/(min(La,Lb)+0.05); symmetric in a and b.
func Ratio(a, b colormath.Hex) float64 {
	la := colormath.RelativeLuminance(a)
	lb := colormath.RelativeLuminance(b)
	return (math.Max(la, lb) + 0.05) / (math.Min(la, lb) + 0.05)
}

// RatioOf parses both colors before computing the ratio.
func RatioOf(a, b string) (float64, error) {
	ha, err := colormath.Parse(a)
	if err != nil {
		return 0, err
	}
	hb, err := colormath.Parse(b)
	if err != nil {
		return 0, err
	}
	return Ratio(ha, hb), nil
}

// Classify applies the AA and AAA thresholds.
func Classify(ratio float64) Result {
	return Result{Ratio: ratio, AA: ratio >= ThresholdAA, AAA: ratio >= ThresholdAAA}
}

// Evaluate computes and classifies the contrast of fg on bg.
func Evaluate(fg, bg colormath.Hex) Result {
	return Classify(Ratio(fg, bg))
}

// EvaluateHex parses fg and bg and evaluates them.
func EvaluateHex(fg, bg string) (Result, error) {
	ratio, err := RatioOf(fg, bg)
	if err != nil {
		return Result{}, err
	}
	return Classify(ratio), nil
}

// Pair is one canonical foreground/background combination of a graph.
type Pair struct {
	ID         string `json:"id"`
	Label      string `json:"label"`
	Foreground string `json:"foreground"`
	Background string `json:"background"`
}

// Pairs returns the four canonical pairs in fixed order.
func Pairs(g tokens.Graph) []Pair {
	return []Pair{
		{ID: "light-content", Label: "Light text on canvas", Foreground: g.Colors.Light.Text, Background: g.Colors.Light.Canvas},
		{ID: "dark-content", Label: "Dark text on canvas", Foreground: g.Colors.Dark.Text, Background: g.Colors.Dark.Canvas},
		{ID: "primary-brand", Label: "White on primary", Foreground: colormath.White.String(), Background: g.Colors.Primary},
		{ID: "input-field", Label: "Light text on input", Foreground: g.Colors.Light.Text, Background: g.Inputs.BaseBg},
	}
}

// PairResult is a pair with its evaluation.
type PairResult struct {
	Pair
	Result
}

// Report is the full accessibility view of a graph.
type Report struct {
	Pairs []PairResult `json:"pairs"`
	Score int          `json:"score"`
}

// Passing counts the pairs that meet AA.
func (a Report) Passing() int {
	n := 0
	for _, p := range a.Pairs {
		if p.AA {
			n++
		}
	}
	return n
}

// Audit evaluates every canonical pair. A malformed color is reported as a
// field-level error for that pair; the other pairs are still evaluated.
func Audit(g tokens.Graph) (Report, error) {
	var audit Report
	var fe tserrors.FieldErrors

	for _, pair := range Pairs(g) {
		result, err := EvaluateHex(pair.Foreground, pair.Background)
		if err != nil {
			fe.Add(pair.ID, fmt.Sprintf("cannot evaluate %s on %s", pair.Foreground, pair.Background), err)
			continue
		}
		audit.Pairs = append(audit.Pairs, PairResult{Pair: pair, Result: result})
		if result.AA {
			audit.Score += pointsPerPair
		}
	}

	return audit, fe.Err()
}

// HealthScore awards 25 points per canonical pair meeting AA (0..100).
// Pairs with malformed colors score nothing.
func HealthScore(g tokens.Graph) int {
	audit, _ := Audit(g)
	return audit.Score
}
