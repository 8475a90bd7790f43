package report

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/alexisbeaulieu97/tokensmith/internal/tokens"
)

// ButtonVariant selects the brand color a preview button is filled with.
type ButtonVariant int

const (
	ButtonPrimary ButtonVariant = iota
	ButtonSecondary
	ButtonAccent
)

// Button is a terminal rendition of a button styled by the button tokens.
type Button struct {
	label   string
	variant ButtonVariant
	buttons tokens.Buttons
	colors  tokens.Colors
}

// NewButton creates a button for g.
func NewButton(g tokens.Graph, label string, variant ButtonVariant) Button {
	return Button{label: label, variant: variant, buttons: g.Buttons, colors: g.Colors}
}

func (b Button) fill() string {
	switch b.variant {
	case ButtonSecondary:
		return b.colors.Secondary
	case ButtonAccent:
		return b.colors.Accent
	default:
		return b.colors.Primary
	}
}

// View renders the button.
func (b Button) View() string {
	style := lipgloss.NewStyle().
		Foreground(lipgloss.Color("#FFFFFF")).
		Background(lipgloss.Color(b.fill())).
		Padding(0, 2).
		Bold(b.buttons.FontWeight >= 600)

	if b.buttons.BorderWidth > 0 {
		style = style.Border(borderFor(b.buttons.Radius, b.buttons.BorderStyle)).BorderForeground(lipgloss.Color(b.fill()))
	}
	return style.Render(transform(b.label, b.buttons.TextTransform))
}

// Input renders a form field with the input tokens on the given text color.
func Input(g tokens.Graph, placeholder string) string {
	style := lipgloss.NewStyle().
		Foreground(lipgloss.Color(g.Colors.Light.Text)).
		Background(lipgloss.Color(g.Inputs.BaseBg)).
		Width(28).
		Padding(0, 1)
	if g.Inputs.BorderWidth > 0 {
		style = style.Border(borderFor(g.Inputs.Radius, "solid")).BorderForeground(lipgloss.Color(g.Inputs.BorderColor))
	}
	return style.Render(placeholder)
}

// Card renders a content card on one theme's canvas.
func Card(g tokens.Graph, theme tokens.ThemeColors, title, body string) string {
	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(g.Colors.Primary))
	bodyStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(theme.Text))

	content := lipgloss.JoinVertical(lipgloss.Left,
		titleStyle.Render(transform(title, g.Typography.TextTransform)),
		bodyStyle.Render(body),
	)
	return lipgloss.NewStyle().
		Background(lipgloss.Color(theme.Canvas)).
		Border(borderFor(g.Shape.BorderRadius, "solid")).
		BorderForeground(lipgloss.Color(g.Inputs.BorderColor)).
		Padding(1, 2).
		Width(36).
		Render(content)
}

// Preview renders the light and dark cards side by side, then the buttons
// and an input.
func Preview(g tokens.Graph) string {
	light := Card(g, g.Colors.Light, "Light theme", "Body copy on the light canvas.")
	dark := Card(g, g.Colors.Dark, "Dark theme", "Body copy on the dark canvas.")

	buttons := lipgloss.JoinHorizontal(lipgloss.Center,
		NewButton(g, "Get started", ButtonPrimary).View(), "  ",
		NewButton(g, "Learn more", ButtonSecondary).View(), "  ",
		NewButton(g, "Sale", ButtonAccent).View(),
	)

	return lipgloss.JoinVertical(lipgloss.Left,
		titleStyle.Render("Preview"),
		lipgloss.JoinHorizontal(lipgloss.Top, light, "  ", dark),
		buttons,
		Input(g, "you@example.com"),
	) + "\n"
}

var (
	dashedBorder = lipgloss.Border{Top: "╌", Bottom: "╌", Left: "╎", Right: "╎", TopLeft: "┌", TopRight: "┐", BottomLeft: "└", BottomRight: "┘"}
	dottedBorder = lipgloss.Border{Top: "┈", Bottom: "┈", Left: "┊", Right: "┊", TopLeft: "┌", TopRight: "┐", BottomLeft: "└", BottomRight: "┘"}
)

func borderFor(radius int, style string) lipgloss.Border {
	switch {
	case style == "dashed":
		return dashedBorder
	case style == "dotted":
		return dottedBorder
	case radius > 0:
		return lipgloss.RoundedBorder()
	default:
		return lipgloss.NormalBorder()
	}
}

func transform(s, mode string) string {
	switch mode {
	case "uppercase":
		return strings.ToUpper(s)
	case "lowercase":
		return strings.ToLower(s)
	case "capitalize":
		return cases.Title(language.English, cases.NoLower).String(s)
	default:
		return s
	}
}
