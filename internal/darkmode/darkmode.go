// Package darkmode derives dark-theme counterparts of light-theme colors.
//
// The mapping keeps the hue, compresses lightness into a narrow band for the
// target role and, for backgrounds, mutes saturation. It is a heuristic: the
// result is not checked against any contrast threshold.
package darkmode

import (
	"fmt"
	"strings"

	"github.com/alexisbeaulieu97/tokensmith/internal/colormath"
	"github.com/alexisbeaulieu97/tokensmith/internal/tokens"
	tserrors "github.com/alexisbeaulieu97/tokensmith/pkg/errors"
)

// Role selects the lightness band a counterpart is mapped into.
type Role int

const (
	Background Role = iota
	Text
)

func (r Role) String() string {
	switch r {
	case Background:
		return "background"
	case Text:
		return "text"
	default:
		return fmt.Sprintf("role(%d)", int(r))
	}
}

// ParseRole accepts "background"/"bg" and "text"/"fg".
func ParseRole(s string) (Role, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "background", "bg", "canvas":
		return Background, nil
	case "text", "fg", "foreground":
		return Text, nil
	default:
		return 0, tserrors.NewValidationError("role", fmt.Sprintf("unknown role %q: expected background or text", s), nil)
	}
}

const (
	backgroundFloor      = 0.06
	backgroundSpan       = 0.12
	backgroundSaturation = 0.80

	textFloor = 0.88
	textSpan  = 0.10
)

// Counterpart maps color into the dark-theme band for role.
//
// Backgrounds land in lightness 0.06..0.18 with 80% of the source saturation;
// text lands in 0.88..0.98 with saturation unchanged. Lighter sources map to
// the darker end of either band.
func Counterpart(color colormath.Hex, role Role) colormath.Hex {
	hsl := colormath.ToHSL(color)
	inverse := 1 - hsl.L

	switch role {
	case Text:
		hsl.L = textFloor + inverse*textSpan
	default:
		hsl.L = backgroundFloor + inverse*backgroundSpan
		hsl.S *= backgroundSaturation
	}

	return colormath.FromHSL(hsl)
}

// CounterpartHex parses color before mapping it.
func CounterpartHex(color string, role Role) (string, error) {
	h, err := colormath.Parse(color)
	if err != nil {
		return "", err
	}
	return Counterpart(h, role).String(), nil
}

// SyncDark returns g with the dark canvas and text derived from their light
// counterparts. Every other token is left as is.
func SyncDark(g tokens.Graph) (tokens.Graph, error) {
	return tokens.Apply(g, Sync())
}

// Sync is SyncDark as an update command, for callers that batch it with
// other edits.
func Sync() tokens.Command {
	return func(g tokens.Graph) (tokens.Graph, error) {
		var fe tserrors.FieldErrors

		canvas, err := CounterpartHex(g.Colors.Light.Canvas, Background)
		if err != nil {
			fe.Add("colors.light.canvas", "cannot derive dark canvas", err)
		}
		text, err := CounterpartHex(g.Colors.Light.Text, Text)
		if err != nil {
			fe.Add("colors.light.text", "cannot derive dark text", err)
		}
		if err := fe.Err(); err != nil {
			return g, err
		}

		return tokens.Apply(g,
			tokens.SetColor("colors.dark.canvas", canvas),
			tokens.SetColor("colors.dark.text", text),
		)
	}
}
