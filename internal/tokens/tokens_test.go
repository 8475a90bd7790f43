package tokens

import (
	"testing"

	"github.com/stretchr/testify/require"

	tserrors "github.com/alexisbeaulieu97/tokensmith/pkg/errors"
)

func TestDefaultGraphIsValid(t *testing.T) {
	t.Parallel()

	require.NoError(t, Validate(Default()))
}

func TestValidateReportsEveryFieldPath(t *testing.T) {
	t.Parallel()

	g := Default()
	g.Colors.Primary = "#abc"
	g.Typography.ScaleRatio = 1
	g.Motion.Easing = "bouncy"
	g.Spacing.BaseUnit = 0

	err := Validate(g)
	require.Error(t, err)

	var fe tserrors.FieldErrors
	require.ErrorAs(t, err, &fe)
	require.ElementsMatch(t, []string{
		"colors.primary",
		"typography.scaleRatio",
		"motion.easing",
		"spacing.baseUnit",
	}, fe.Fields())
}

func TestValidEasing(t *testing.T) {
	t.Parallel()

	for _, easing := range []string{"linear", "ease", "ease-in-out", "cubic-bezier(0.4, 0, 0.2, 1)", "cubic-bezier(.17,.67,.83,.67)"} {
		require.True(t, ValidEasing(easing), easing)
	}
	for _, easing := range []string{"", "bounce", "cubic-bezier(1,2,3)", "steps(4)"} {
		require.False(t, ValidEasing(easing), easing)
	}
}

func TestPathsAreDeterministicAndComplete(t *testing.T) {
	t.Parallel()

	paths := Paths()
	require.Equal(t, paths, Paths())
	require.Equal(t, "colors.primary", paths[0])
	require.Contains(t, paths, "colors.light.canvas")
	require.Contains(t, paths, "shape.shadow.blur")
	require.Equal(t, "motion.easing", paths[len(paths)-1])

	require.Equal(t, []string{
		"colors.primary", "colors.secondary", "colors.accent", "colors.success", "colors.error",
		"colors.light.canvas", "colors.light.text", "colors.dark.canvas", "colors.dark.text",
		"interactive.primaryHover", "interactive.primaryFocus",
		"inputs.baseBg", "inputs.borderColor",
	}, ColorPaths())
}

func TestLeavesAndGet(t *testing.T) {
	t.Parallel()

	g := Default()
	leaves := Leaves(g)
	require.Len(t, leaves, len(Paths()))

	value, ok := Get(g, "typography.baseSize")
	require.True(t, ok)
	require.Equal(t, 16.0, value)

	_, ok = Get(g, "typography.missing")
	require.False(t, ok)

	kind, ok := KindOf("colors.dark.text")
	require.True(t, ok)
	require.Equal(t, KindColor, kind)
	require.Equal(t, []string{"colors", "dark", "text"}, leaves[8].Segments())
}

func TestSetReturnsNewGraphAndLeavesInputUntouched(t *testing.T) {
	t.Parallel()

	base := Default()
	updated, err := Apply(base, SetColor("colors.primary", "#0f0"))
	require.NoError(t, err)
	require.Equal(t, "#00FF00", updated.Colors.Primary)
	require.Equal(t, "#3B82F6", base.Colors.Primary)
}

func TestSetRejectsInvalidValues(t *testing.T) {
	t.Parallel()

	base := Default()
	cases := []struct {
		name  string
		cmd   Command
		field string
	}{
		{"bad hex", SetColor("colors.primary", "#12"), "colors.primary"},
		{"ratio not increasing", SetTypeScale(16, 1.0), "typography.scaleRatio"},
		{"non-positive base", SetTypeScale(0, 1.25), "typography.baseSize"},
		{"unknown path", Set("colors.tertiary", "#FFFFFF"), "colors.tertiary"},
		{"wrong type", Set("spacing.baseUnit", "eight"), "spacing.baseUnit"},
		{"fractional integer", Set("spacing.baseUnit", 8.5), "spacing.baseUnit"},
		{"not a color path", SetColor("typography.headingFont", "#FFFFFF"), "typography.headingFont"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := Apply(base, tc.cmd)
			require.Error(t, err)
			require.Equal(t, base, got)

			var validationErr *tserrors.ValidationError
			require.ErrorAs(t, err, &validationErr)
			require.Equal(t, tc.field, validationErr.Field)
		})
	}
}

func TestApplyIsAllOrNothing(t *testing.T) {
	t.Parallel()

	base := Default()
	got, err := Apply(base, SetColor("colors.accent", "#000000"), SetTypeScale(16, 0.9))
	require.Error(t, err)
	require.Equal(t, base, got)
}

func TestLinkedCornersPropagateRadius(t *testing.T) {
	t.Parallel()

	linked, err := Apply(Default(), Set("shape.borderRadius", 12))
	require.NoError(t, err)
	require.Equal(t, 12, linked.Buttons.Radius)
	require.Equal(t, 12, linked.Inputs.Radius)

	unlinked, err := Apply(Default(), Set("shape.linkCorners", false), Set("shape.borderRadius", 20))
	require.NoError(t, err)
	require.Equal(t, 20, unlinked.Shape.BorderRadius)
	require.Equal(t, 8, unlinked.Buttons.Radius)
}

func TestSetLayoutAndFonts(t *testing.T) {
	t.Parallel()

	g, err := Apply(Default(), SetLayout("spacious", 1600), SetFonts("Playfair Display", "Merriweather"))
	require.NoError(t, err)
	require.Equal(t, "spacious", g.Spacing.SectionSpacing)
	require.Equal(t, 1600, g.Spacing.ContainerWidth)
	require.Equal(t, "Playfair Display", g.Typography.HeadingFont)

	_, err = Apply(Default(), SetLayout("cramped", 1600))
	require.Error(t, err)
}

func TestMergeRejectsFieldByField(t *testing.T) {
	t.Parallel()

	fragment := Fragment{
		"colors": map[string]any{
			"primary": "#112233",
			"accent":  "not-a-color",
			"light":   map[string]any{"canvas": "#fafafa"},
		},
		"typography": map[string]any{
			"scaleRatio": 0.8,
			"baseSize":   18.0,
		},
		"unknown": map[string]any{"thing": 1},
	}

	result := Merge(Default(), fragment)

	require.Equal(t, "#112233", result.Graph.Colors.Primary)
	require.Equal(t, "#FAFAFA", result.Graph.Colors.Light.Canvas)
	require.Equal(t, 18.0, result.Graph.Typography.BaseSize)
	require.Equal(t, Default().Colors.Accent, result.Graph.Colors.Accent)
	require.Equal(t, 1.25, result.Graph.Typography.ScaleRatio)

	require.Equal(t, []string{"colors.light.canvas", "colors.primary", "typography.baseSize"}, result.Applied)
	require.ElementsMatch(t, []string{"colors.accent", "typography.scaleRatio", "unknown.thing"}, result.Rejected.Fields())
	require.NoError(t, Validate(result.Graph))
}

func TestMergeKeepsExplicitRadiusWithLinkedCorners(t *testing.T) {
	t.Parallel()

	base := Default()
	require.True(t, base.Shape.LinkCorners)

	result := Merge(base, Fragment{
		"shape":   map[string]any{"borderRadius": 12},
		"buttons": map[string]any{"radius": 4},
	})

	require.Empty(t, result.Rejected)
	require.Equal(t, []string{"shape.borderRadius", "buttons.radius"}, result.Applied)
	require.Equal(t, 12, result.Graph.Shape.BorderRadius)
	require.Equal(t, 4, result.Graph.Buttons.Radius)
	require.Equal(t, 12, result.Graph.Inputs.Radius)
}

func TestFragmentFlatten(t *testing.T) {
	t.Parallel()

	flat := Fragment{
		"shape": Fragment{"shadow": map[string]any{"x": 2}},
		"motion": map[string]any{
			"easing": "linear",
		},
	}.Flatten()

	require.Equal(t, map[string]any{"shape.shadow.x": 2, "motion.easing": "linear"}, flat)
}

func TestSectionGap(t *testing.T) {
	t.Parallel()

	s := Default().Spacing
	require.Equal(t, 64, s.SectionGap())

	s.SectionSpacing = "compact"
	require.Equal(t, 32, s.SectionGap())

	s.SectionSpacing = "spacious"
	s.BaseUnit = 4
	require.Equal(t, 64, s.SectionGap())
}
