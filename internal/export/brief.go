package export

import (
	"fmt"
	"strings"

	"github.com/alexisbeaulieu97/tokensmith/internal/contrast"
	"github.com/alexisbeaulieu97/tokensmith/internal/strategy"
	"github.com/alexisbeaulieu97/tokensmith/internal/tokens"
	"github.com/alexisbeaulieu97/tokensmith/internal/typescale"
)

// ToBrief renders a Markdown build brief for g laid out by bp. The template's
// density and container width replace the graph's layout tokens. Only
// selected pages are listed.
func ToBrief(g tokens.Graph, bp strategy.Blueprint) (string, error) {
	if err := tokens.Validate(g); err != nil {
		return "", err
	}
	g, err := tokens.Apply(g, tokens.SetLayout(bp.Template.SpacingDensity, bp.Template.ContainerWidth))
	if err != nil {
		return "", err
	}
	scale, err := typescale.Compute(g.Typography.BaseSize, g.Typography.ScaleRatio)
	if err != nil {
		return "", err
	}
	audit, err := contrast.Audit(g)
	if err != nil {
		return "", err
	}

	var b strings.Builder
	line := func(format string, args ...any) {
		fmt.Fprintf(&b, format, args...)
		b.WriteByte('\n')
	}

	ctx := bp.Context
	line("# Project Blueprint: %s - %s", strings.ToUpper(string(ctx.BusinessType)), strings.ToUpper(string(ctx.BrandVibe)))
	line("")
	line("Conversion goal: %s", ctx.ConversionGoal)
	line("")

	line("## 1. Design Tokens")
	line("Implement these tokens as the single source of styling.")
	line("")
	line("### Colors")
	line("- **Primary:** %s (hover %s, focus %s)", g.Colors.Primary, g.Interactive.PrimaryHover, g.Interactive.PrimaryFocus)
	line("- **Secondary:** %s", g.Colors.Secondary)
	line("- **Accent:** %s", g.Colors.Accent)
	line("- **Success / Error:** %s / %s", g.Colors.Success, g.Colors.Error)
	line("- **Light Theme:** Bg: %s, Text: %s", g.Colors.Light.Canvas, g.Colors.Light.Text)
	line("- **Dark Theme:** Bg: %s, Text: %s", g.Colors.Dark.Canvas, g.Colors.Dark.Text)
	line("")
	line("### Typography")
	line("- **Heading Font:** %s", g.Typography.HeadingFont)
	line("- **Body Font:** %s", g.Typography.BodyFont)
	ratio := formatValue(g.Typography.ScaleRatio)
	if name, ok := typescale.NameOf(g.Typography.ScaleRatio); ok {
		ratio = fmt.Sprintf("%s, %s", ratio, name)
	}
	line("- **Base Size:** %spx (Scale Ratio: %s)", formatValue(g.Typography.BaseSize), ratio)
	sizes := make([]string, 0, typescale.StepCount-1)
	for level := typescale.H1; level > typescale.Body; level-- {
		sizes = append(sizes, fmt.Sprintf("**%s:** %dpx", strings.ToUpper(level.String()), scale.StepPx(level)))
	}
	line("- %s", strings.Join(sizes, " | "))
	line("- **Line Height:** headings %s, body %s", formatValue(g.Typography.LineHeightHeading), formatValue(g.Typography.LineHeightBody))
	line("")
	line("### UI Primitives")
	line("- **Radius:** %dpx", g.Shape.BorderRadius)
	line("- **Buttons:** %dpx %s border, %dpx radius, %s text, weight %d, hover scale %s.",
		g.Buttons.BorderWidth, g.Buttons.BorderStyle, g.Buttons.Radius, g.Buttons.TextTransform, g.Buttons.FontWeight, formatValue(g.Buttons.HoverScale))
	line("- **Inputs:** %dpx border (%s) on %s, %dpx radius, %dpx focus ring.",
		g.Inputs.BorderWidth, g.Inputs.BorderColor, g.Inputs.BaseBg, g.Inputs.Radius, g.Inputs.FocusRingWidth)
	line("- **Shadows:** %dpx %dpx %dpx.", g.Shape.Shadow.X, g.Shape.Shadow.Y, g.Shape.Shadow.Blur)
	line("- **Motion:** %dms %s.", g.Motion.Duration, g.Motion.Easing)
	line("")

	rec := bp.Recommendation()
	line("## 2. Layout Strategy")
	line("**Formula:** %s (%s)", strings.ToUpper(bp.Template.ID), rec.Title)
	line("%s", rec.Rationale)
	line("")
	line("**Hero Style:** %s", strings.ToUpper(string(bp.Template.HeroStyle)))
	line("**Container Max:** %dpx", g.Spacing.ContainerWidth)
	line("**Section Gap:** %dpx (%s)", g.Spacing.SectionGap(), g.Spacing.SectionSpacing)
	line("")
	line("### Homepage Section Order")
	for i, tag := range bp.Template.Sections {
		spec, ok := strategy.Describe(tag)
		if !ok {
			line("%d. [%s]", i+1, tag.Label())
			continue
		}
		line("%d. [%s] %s", i+1, tag.Label(), spec.Wireframe)
	}
	line("")

	line("## 3. Site Architecture")
	line("Scaffold the following pages with a shared layout (navbar and footer).")
	line("")
	for _, p := range bp.Selected() {
		line("- %s (%s): %s", p.Slug, p.Name, p.Reason)
	}
	line("")

	line("## 4. Accessibility")
	line("**Health Score:** %d/100", audit.Score)
	for _, p := range audit.Pairs {
		line("- %s: %s %s", p.Label, p.Display(), p.Level())
	}
	line("")

	line("## 5. Technical Stack")
	line("- React 18+")
	line("- Tailwind CSS (use the tokens above)")
	line("- Lucide React (icons)")
	line("- Framer Motion (animation duration: %dms)", g.Motion.Duration)
	line("")
	line("**Action:** Initialize this project structure and generate the Tailwind config.")

	return b.String(), nil
}
