// Package fonts reports whether the font families a graph names are
// available. Unavailable fonts are warnings only; they never block an edit.
package fonts

import (
	"fmt"
	"net/url"
	"sort"
	"strings"

	"github.com/alexisbeaulieu97/tokensmith/internal/tokens"
)

// Category is a font classification used for fallbacks.
type Category string

const (
	SansSerif Category = "sans-serif"
	Serif     Category = "serif"
	Monospace Category = "monospace"
	Display   Category = "display"
)

// Status is the outcome of resolving one family.
type Status struct {
	Family    string   `json:"family"`
	Available bool     `json:"available"`
	Category  Category `json:"category,omitempty"`
}

// Resolver decides whether a family can be loaded.
type Resolver interface {
	Resolve(family string) Status
}

// Font is a catalog entry.
type Font struct {
	Family   string
	Category Category
}

// Popular is the built-in catalog.
var Popular = []Font{
	{Family: "Inter", Category: SansSerif},
	{Family: "Roboto", Category: SansSerif},
	{Family: "Open Sans", Category: SansSerif},
	{Family: "Lato", Category: SansSerif},
	{Family: "Montserrat", Category: SansSerif},
	{Family: "Poppins", Category: SansSerif},
	{Family: "Space Grotesk", Category: SansSerif},
	{Family: "Playfair Display", Category: Serif},
	{Family: "Merriweather", Category: Serif},
	{Family: "Lora", Category: Serif},
	{Family: "Oswald", Category: Display},
	{Family: "Bebas Neue", Category: Display},
	{Family: "Space Mono", Category: Monospace},
	{Family: "JetBrains Mono", Category: Monospace},
}

// Catalog resolves families against a fixed list, ignoring case and
// surrounding whitespace.
type Catalog struct {
	byKey map[string]Font
}

// NewCatalog builds a catalog from fonts. With no arguments it uses Popular.
func NewCatalog(fonts ...Font) *Catalog {
	if len(fonts) == 0 {
		fonts = Popular
	}
	c := &Catalog{byKey: make(map[string]Font, len(fonts))}
	for _, f := range fonts {
		c.byKey[key(f.Family)] = f
	}
	return c
}

// Resolve implements Resolver.
func (c *Catalog) Resolve(family string) Status {
	f, ok := c.byKey[key(family)]
	if !ok {
		return Status{Family: family}
	}
	return Status{Family: f.Family, Available: true, Category: f.Category}
}

// Families lists the catalog in alphabetical order.
func (c *Catalog) Families() []string {
	out := make([]string, 0, len(c.byKey))
	for _, f := range c.byKey {
		out = append(out, f.Family)
	}
	sort.Strings(out)
	return out
}

func key(family string) string {
	return strings.ToLower(strings.TrimSpace(family))
}

// Warning describes an unavailable font at a token path.
type Warning struct {
	Path   string `json:"path"`
	Family string `json:"family"`
}

func (w Warning) String() string {
	return fmt.Sprintf("%s: font %q is not available; browsers will use the fallback stack", w.Path, w.Family)
}

// Check resolves the heading and body fonts of g.
func Check(r Resolver, g tokens.Graph) []Warning {
	var warnings []Warning
	for _, f := range []struct{ path, family string }{
		{"typography.headingFont", g.Typography.HeadingFont},
		{"typography.bodyFont", g.Typography.BodyFont},
	} {
		if !r.Resolve(f.family).Available {
			warnings = append(warnings, Warning{Path: f.path, Family: f.family})
		}
	}
	return warnings
}

// StylesheetURL returns the Google Fonts css2 URL loading families with the
// usual weights. Duplicates are requested once.
func StylesheetURL(families ...string) string {
	seen := make(map[string]struct{}, len(families))
	params := make([]string, 0, len(families))
	for _, family := range families {
		family = strings.TrimSpace(family)
		if family == "" {
			continue
		}
		if _, dup := seen[key(family)]; dup {
			continue
		}
		seen[key(family)] = struct{}{}
		params = append(params, "family="+url.QueryEscape(family)+":wght@300;400;500;600;700;800")
	}
	return "https://fonts.googleapis.com/css2?" + strings.Join(params, "&") + "&display=swap"
}
