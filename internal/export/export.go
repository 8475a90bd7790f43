// Package export renders a token graph as JSON, CSS custom properties, a
// Tailwind-style config object or a Markdown build brief, and imports the
// JSON form back.
package export

import (
	"strings"

	"github.com/alexisbeaulieu97/tokensmith/internal/strategy"
	"github.com/alexisbeaulieu97/tokensmith/internal/tokens"
	tserrors "github.com/alexisbeaulieu97/tokensmith/pkg/errors"
)

// Format selects an export projection.
type Format string

const (
	FormatJSON   Format = "json"
	FormatCSS    Format = "css"
	FormatConfig Format = "config"
	FormatBrief  Format = "brief"
)

// Formats lists every supported format.
func Formats() []Format {
	return []Format{FormatJSON, FormatCSS, FormatConfig, FormatBrief}
}

// Extension is the file extension conventionally used for f.
func (f Format) Extension() string {
	switch f {
	case FormatJSON:
		return ".json"
	case FormatCSS:
		return ".css"
	case FormatConfig:
		return ".config.js"
	case FormatBrief:
		return ".md"
	default:
		return ""
	}
}

// ParseFormat resolves a format key case-insensitively. "tailwind" is
// accepted as an alias of "config" and "md" of "brief".
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "json":
		return FormatJSON, nil
	case "css":
		return FormatCSS, nil
	case "config", "tailwind":
		return FormatConfig, nil
	case "brief", "md", "markdown":
		return FormatBrief, nil
	default:
		return "", tserrors.NewSerializationError(s, nil)
	}
}

// Export renders g in format. A nil blueprint is only consulted by the brief,
// which then resolves the default context.
func Export(g tokens.Graph, blueprint *strategy.Blueprint, format Format) (string, error) {
	switch format {
	case FormatJSON:
		data, err := ToJSON(g)
		if err != nil {
			return "", err
		}
		return string(data), nil
	case FormatCSS:
		return ToCSS(g)
	case FormatConfig:
		return ToConfigObject(g)
	case FormatBrief:
		bp := strategy.NewBlueprint(strategy.DefaultContext())
		if blueprint != nil {
			bp = *blueprint
		}
		return ToBrief(g, bp)
	default:
		return "", tserrors.NewSerializationError(string(format), nil)
	}
}
