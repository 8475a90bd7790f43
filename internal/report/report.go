// Package report renders terminal views of a token graph: contrast badges,
// the health bar, the type ladder, the palette and a layout blueprint.
package report

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/tokensmith/internal/contrast"
	"github.com/alexisbeaulieu97/tokensmith/internal/fonts"
	"github.com/alexisbeaulieu97/tokensmith/internal/strategy"
	"github.com/alexisbeaulieu97/tokensmith/internal/tokens"
	"github.com/alexisbeaulieu97/tokensmith/internal/typescale"
)

// Badge renders a contrast result as "3.68:1 FAIL" on a colored chip.
func Badge(r contrast.Result) string {
	text := fmt.Sprintf("%s %s", r.Display(), r.Level())
	switch {
	case r.AAA:
		return aaaBadge.Render(text)
	case r.AA:
		return aaBadge.Render(text)
	default:
		return failBadge.Render(text)
	}
}

// Swatch renders a sample of fg on bg.
func Swatch(fg, bg string) string {
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color(fg)).
		Background(lipgloss.Color(bg)).
		Padding(0, 1).
		Render("Aa")
}

// Audit renders every canonical pair and the health bar.
func Audit(audit contrast.Report) string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Accessibility"))
	b.WriteString("\n")
	for _, p := range audit.Pairs {
		fmt.Fprintf(&b, "%s %s %s\n", labelStyle.Render(p.Label), Swatch(p.Foreground, p.Background), Badge(p.Result))
	}
	b.WriteString(NewHealthBar(30).View(audit.Score))
	b.WriteString("\n")
	return b.String()
}

// Ladder renders the type scale from h1 down to body with rounded sizes.
func Ladder(scale typescale.Scale) string {
	var b strings.Builder
	title := fmt.Sprintf("Type scale %spx x %s", trimFloat(scale.BaseSize), trimFloat(scale.Ratio))
	if name, ok := typescale.NameOf(scale.Ratio); ok {
		title += " (" + name + ")"
	}
	b.WriteString(titleStyle.Render(title))
	b.WriteString("\n")

	levels := typescale.Levels()
	for i := len(levels) - 1; i >= 0; i-- {
		level := levels[i]
		fmt.Fprintf(&b, "%s %4dpx %s\n",
			labelStyle.Width(6).Render(level.String()),
			scale.StepPx(level),
			mutedStyle.Render(fmt.Sprintf("(%.3f)", scale.Step(level))),
		)
	}
	return b.String()
}

// Palette renders every color token with a swatch.
func Palette(g tokens.Graph) string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Palette"))
	b.WriteString("\n")
	for _, path := range tokens.ColorPaths() {
		value, _ := tokens.Get(g, path)
		hex, _ := value.(string)
		chip := lipgloss.NewStyle().Background(lipgloss.Color(hex)).Render("    ")
		fmt.Fprintf(&b, "%s %s %s\n", labelStyle.Render(path), chip, hex)
	}
	return b.String()
}

// Blueprint renders a resolved layout: template, sections and pages.
func Blueprint(bp strategy.Blueprint) string {
	var b strings.Builder
	rec := bp.Recommendation()

	b.WriteString(titleStyle.Render(fmt.Sprintf("%s  %s", bp.Template.Name, mutedStyle.Render(rec.Title))))
	b.WriteString("\n")
	b.WriteString(mutedStyle.Render(rec.Rationale))
	b.WriteString("\n")
	fmt.Fprintf(&b, "hero %s, %s density, %dpx container\n", bp.Template.HeroStyle, bp.Template.SpacingDensity, bp.Template.ContainerWidth)

	b.WriteString(sectionStyle.Render("Sections"))
	b.WriteString("\n")
	for i, tag := range bp.Template.Sections {
		spec, _ := strategy.Describe(tag)
		fmt.Fprintf(&b, "%2d. %s %s\n", i+1, labelStyle.Width(16).Render(tag.String()), mutedStyle.Render(string(spec.Renderer)))
	}

	b.WriteString(sectionStyle.Render("Pages"))
	b.WriteString("\n")
	for _, p := range bp.Pages {
		fmt.Fprintf(&b, "%s %s %s\n", checkbox(p), labelStyle.Width(14).Render(p.Slug), mutedStyle.Render(p.Reason))
	}
	return b.String()
}

// Warnings renders font availability warnings, or nothing.
func Warnings(warnings []fonts.Warning) string {
	if len(warnings) == 0 {
		return ""
	}
	var b strings.Builder
	for _, w := range warnings {
		b.WriteString(warnStyle.Render("! " + w.String()))
		b.WriteString("\n")
	}
	return b.String()
}

func checkbox(p strategy.PageDefinition) string {
	switch {
	case p.Required:
		return "[*]"
	case p.Selected:
		return "[x]"
	default:
		return "[ ]"
	}
}

func trimFloat(v float64) string {
	return strings.TrimRight(strings.TrimRight(fmt.Sprintf("%.3f", v), "0"), ".")
}
