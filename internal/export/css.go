package export

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"github.com/alexisbeaulieu97/tokensmith/internal/tokens"
	"github.com/alexisbeaulieu97/tokensmith/internal/typescale"
)

// cssUnits maps leaf paths to the unit appended to their value. Leaves not
// listed are unitless.
var cssUnits = map[string]string{
	"typography.baseSize":      "px",
	"typography.letterSpacing": "em",
	"spacing.baseUnit":         "px",
	"spacing.containerWidth":   "px",
	"shape.borderRadius":       "px",
	"shape.shadow.x":           "px",
	"shape.shadow.y":           "px",
	"shape.shadow.blur":        "px",
	"buttons.radius":           "px",
	"buttons.borderWidth":      "px",
	"inputs.radius":            "px",
	"inputs.borderWidth":       "px",
	"inputs.focusRingWidth":    "px",
	"motion.duration":          "ms",
}

var fontPaths = map[string]struct{}{
	"typography.headingFont": {},
	"typography.bodyFont":    {},
}

// ToCSS renders g as a :root block of custom properties. Property names are
// the kebab-cased leaf paths, emitted in declaration order, followed by the
// computed type scale and layout values.
func ToCSS(g tokens.Graph) (string, error) {
	if err := tokens.Validate(g); err != nil {
		return "", err
	}
	scale, err := typescale.Compute(g.Typography.BaseSize, g.Typography.ScaleRatio)
	if err != nil {
		return "", err
	}

	var b strings.Builder
	b.WriteString(":root {\n")

	section := ""
	for _, leaf := range tokens.Leaves(g) {
		if head := leaf.Segments()[0]; head != section {
			if section != "" {
				b.WriteString("\n")
			}
			fmt.Fprintf(&b, "  /* %s */\n", head)
			section = head
		}
		writeProperty(&b, CSSVariable(leaf.Path), cssValue(leaf))
	}

	b.WriteString("\n  /* derived */\n")
	for _, level := range typescale.Levels() {
		writeProperty(&b, "--typography-scale-"+level.String(), fmt.Sprintf("%dpx", scale.StepPx(level)))
	}
	writeProperty(&b, "--buttons-shadow", buttonShadow(g))
	writeProperty(&b, "--layout-section-gap", fmt.Sprintf("%dpx", g.Spacing.SectionGap()))

	b.WriteString("}\n")
	return b.String(), nil
}

// CSSVariable returns the custom property name for a leaf path, e.g.
// "interactive.primaryHover" becomes "--interactive-primary-hover".
func CSSVariable(path string) string {
	var b strings.Builder
	b.WriteString("--")
	for i, r := range path {
		switch {
		case r == '.':
			b.WriteByte('-')
		case unicode.IsUpper(r):
			if i > 0 {
				b.WriteByte('-')
			}
			b.WriteRune(unicode.ToLower(r))
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}

func writeProperty(b *strings.Builder, name, value string) {
	fmt.Fprintf(b, "  %s: %s;\n", name, value)
}

func cssValue(leaf tokens.Leaf) string {
	if _, ok := fontPaths[leaf.Path]; ok {
		return fmt.Sprintf("%q, sans-serif", leaf.Value)
	}
	return formatValue(leaf.Value) + cssUnits[leaf.Path]
}

func buttonShadow(g tokens.Graph) string {
	if !g.Buttons.ApplyShadow {
		return "none"
	}
	s := g.Shape.Shadow
	return fmt.Sprintf("%dpx %dpx %dpx rgba(0, 0, 0, 0.1)", s.X, s.Y, s.Blur)
}

// formatValue prints numbers in their shortest exact form and booleans as 1 or 0.
func formatValue(v any) string {
	switch val := v.(type) {
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64)
	case int:
		return strconv.Itoa(val)
	case bool:
		if val {
			return "1"
		}
		return "0"
	case string:
		return val
	default:
		return fmt.Sprint(val)
	}
}
