// Package typescale computes geometric font-size ladders.
package typescale

import (
	"fmt"
	"math"
	"strings"

	tserrors "github.com/alexisbeaulieu97/tokensmith/pkg/errors"
)

// StepCount is the number of sizes in a scale: body plus five heading levels.
const StepCount = 6

// Level names a step of the scale. Level(n) has size base*ratio^n.
type Level int

const (
	Body Level = iota
	H5
	H4
	H3
	H2
	H1
)

var levelNames = [StepCount]string{"body", "h5", "h4", "h3", "h2", "h1"}

func (l Level) String() string {
	if l < Body || l > H1 {
		return fmt.Sprintf("level(%d)", int(l))
	}
	return levelNames[l]
}

// Levels returns every level from body to h1.
func Levels() []Level {
	return []Level{Body, H5, H4, H3, H2, H1}
}

// Scale is a computed type ladder. Steps are exact; use Px for display.
type Scale struct {
	BaseSize float64            `json:"baseSize"`
	Ratio    float64            `json:"ratio"`
	Steps    [StepCount]float64 `json:"steps"`
}

// Compute builds the ladder steps[n] = baseSize * ratio^n. A ratio of 1 or
// less would not be increasing and is rejected.
func Compute(baseSize, ratio float64) (Scale, error) {
	if !(baseSize > 0) || math.IsInf(baseSize, 0) {
		return Scale{}, tserrors.NewValidationError("typography.baseSize", fmt.Sprintf("%v must be greater than 0", baseSize), nil)
	}
	if !(ratio > 1) || math.IsInf(ratio, 0) {
		return Scale{}, tserrors.NewValidationError("typography.scaleRatio", fmt.Sprintf("%v must be greater than 1", ratio), nil)
	}

	s := Scale{BaseSize: baseSize, Ratio: ratio}
	for n := range s.Steps {
		s.Steps[n] = baseSize * math.Pow(ratio, float64(n))
	}
	return s, nil
}

// Step returns the exact size at level.
func (s Scale) Step(level Level) float64 {
	if level < Body || level > H1 {
		return 0
	}
	return s.Steps[level]
}

// Px returns every step rounded with RoundPx.
func (s Scale) Px() [StepCount]int {
	var px [StepCount]int
	for i, v := range s.Steps {
		px[i] = RoundPx(v)
	}
	return px
}

// StepPx returns the rounded pixel size at level.
func (s Scale) StepPx(level Level) int {
	return RoundPx(s.Step(level))
}

// RoundPx rounds half-up to a whole pixel. Every surface that shows a size
// (CSS, config, brief, terminal) goes through this function.
func RoundPx(v float64) int {
	return int(math.Floor(v + 0.5))
}

// NamedRatio is a conventional musical-interval scale ratio.
type NamedRatio struct {
	Name  string
	Value float64
}

// NamedRatios lists the conventional ratios, smallest first.
var NamedRatios = []NamedRatio{
	{Name: "Minor Second", Value: 1.067},
	{Name: "Major Second", Value: 1.125},
	{Name: "Minor Third", Value: 1.2},
	{Name: "Major Third", Value: 1.25},
	{Name: "Perfect Fourth", Value: 1.333},
	{Name: "Augmented Fourth", Value: 1.414},
	{Name: "Perfect Fifth", Value: 1.5},
	{Name: "Golden Ratio", Value: 1.618},
}

// LookupRatio finds a named ratio. Matching ignores case, spaces and dashes,
// so "major-third" and "Major Third" both resolve.
func LookupRatio(name string) (float64, bool) {
	key := ratioKey(name)
	for _, r := range NamedRatios {
		if ratioKey(r.Name) == key {
			return r.Value, true
		}
	}
	return 0, false
}

// NameOf returns the conventional name for ratio, if it is one.
func NameOf(ratio float64) (string, bool) {
	for _, r := range NamedRatios {
		if math.Abs(r.Value-ratio) < 1e-9 {
			return r.Name, true
		}
	}
	return "", false
}

func ratioKey(s string) string {
	return strings.NewReplacer(" ", "", "-", "", "_", "").Replace(strings.ToLower(strings.TrimSpace(s)))
}
