package export

import (
	"fmt"
	"strings"

	"github.com/alexisbeaulieu97/tokensmith/internal/tokens"
	"github.com/alexisbeaulieu97/tokensmith/internal/typescale"
)

// spacingSteps are the multiples of the base unit exposed as spacing keys.
var spacingSteps = []int{1, 2, 3, 4, 6, 8, 12, 16}

// ToConfigObject renders g as a Tailwind-style `module.exports` theme
// extension. Font sizes come from the rounded type scale.
func ToConfigObject(g tokens.Graph) (string, error) {
	if err := tokens.Validate(g); err != nil {
		return "", err
	}
	scale, err := typescale.Compute(g.Typography.BaseSize, g.Typography.ScaleRatio)
	if err != nil {
		return "", err
	}

	w := &objectWriter{}
	w.open("module.exports =")
	w.open("theme:")
	w.open("extend:")

	w.open("colors:")
	w.open("primary:")
	w.str("DEFAULT", g.Colors.Primary)
	w.str("hover", g.Interactive.PrimaryHover)
	w.str("focus", g.Interactive.PrimaryFocus)
	w.close()
	w.str("secondary", g.Colors.Secondary)
	w.str("accent", g.Colors.Accent)
	w.str("success", g.Colors.Success)
	w.str("error", g.Colors.Error)
	w.open("canvas:")
	w.str("light", g.Colors.Light.Canvas)
	w.str("dark", g.Colors.Dark.Canvas)
	w.close()
	w.open("text:")
	w.str("light", g.Colors.Light.Text)
	w.str("dark", g.Colors.Dark.Text)
	w.close()
	w.open("input:")
	w.str("bg", g.Inputs.BaseBg)
	w.str("border", g.Inputs.BorderColor)
	w.close()
	w.close()

	w.open("fontFamily:")
	w.raw("heading", fmt.Sprintf("['\"%s\"', 'sans-serif']", g.Typography.HeadingFont))
	w.raw("body", fmt.Sprintf("['\"%s\"', 'sans-serif']", g.Typography.BodyFont))
	w.close()

	w.open("fontSize:")
	for _, level := range typescale.Levels() {
		w.str(level.String(), fmt.Sprintf("%dpx", scale.StepPx(level)))
	}
	w.close()

	w.open("lineHeight:")
	w.str("heading", formatValue(g.Typography.LineHeightHeading))
	w.str("body", formatValue(g.Typography.LineHeightBody))
	w.close()

	w.open("letterSpacing:")
	w.str("base", formatValue(g.Typography.LetterSpacing)+"em")
	w.close()

	w.open("borderRadius:")
	w.str("DEFAULT", fmt.Sprintf("%dpx", g.Shape.BorderRadius))
	w.str("btn", fmt.Sprintf("%dpx", g.Buttons.Radius))
	w.str("input", fmt.Sprintf("%dpx", g.Inputs.Radius))
	w.close()

	w.open("borderWidth:")
	w.str("btn", fmt.Sprintf("%dpx", g.Buttons.BorderWidth))
	w.str("input", fmt.Sprintf("%dpx", g.Inputs.BorderWidth))
	w.close()

	w.open("boxShadow:")
	w.str("DEFAULT", fmt.Sprintf("%dpx %dpx %dpx rgba(0, 0, 0, 0.1)", g.Shape.Shadow.X, g.Shape.Shadow.Y, g.Shape.Shadow.Blur))
	w.str("btn", buttonShadow(g))
	w.close()

	w.open("scale:")
	w.str("hover", formatValue(g.Buttons.HoverScale))
	w.close()

	w.open("ringWidth:")
	w.str("DEFAULT", fmt.Sprintf("%dpx", g.Inputs.FocusRingWidth))
	w.close()

	w.open("spacing:")
	w.str("unit", fmt.Sprintf("%dpx", g.Spacing.BaseUnit))
	for _, n := range spacingSteps {
		w.str(fmt.Sprint(n), fmt.Sprintf("%dpx", g.Spacing.BaseUnit*n))
	}
	w.str("section", fmt.Sprintf("%dpx", g.Spacing.SectionGap()))
	w.close()

	w.open("maxWidth:")
	w.str("container", fmt.Sprintf("%dpx", g.Spacing.ContainerWidth))
	w.close()

	w.open("transitionDuration:")
	w.str("DEFAULT", fmt.Sprintf("%dms", g.Motion.Duration))
	w.close()

	w.open("transitionTimingFunction:")
	w.str("DEFAULT", g.Motion.Easing)
	w.close()

	w.close() // extend
	w.close() // theme
	w.close() // module.exports

	return w.String(), nil
}

// objectWriter emits an indented JavaScript object literal.
type objectWriter struct {
	b     strings.Builder
	depth int
}

func (w *objectWriter) indent() {
	w.b.WriteString(strings.Repeat("  ", w.depth))
}

func (w *objectWriter) open(label string) {
	w.indent()
	fmt.Fprintf(&w.b, "%s {\n", label)
	w.depth++
}

func (w *objectWriter) close() {
	w.depth--
	w.indent()
	if w.depth == 0 {
		w.b.WriteString("};\n")
		return
	}
	w.b.WriteString("},\n")
}

func (w *objectWriter) str(key, value string) {
	w.raw(key, "'"+strings.ReplaceAll(value, "'", `\'`)+"'")
}

func (w *objectWriter) raw(key, value string) {
	w.indent()
	fmt.Fprintf(&w.b, "%s: %s,\n", jsKey(key), value)
}

func (w *objectWriter) String() string {
	return w.b.String()
}

// jsKey quotes keys that are not plain identifiers.
func jsKey(key string) string {
	for i, r := range key {
		if r == '_' || r == '$' || (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (i > 0 && r >= '0' && r <= '9') {
			continue
		}
		return "'" + key + "'"
	}
	return key
}
