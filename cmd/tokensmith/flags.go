package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/tokensmith/internal/config"
	"github.com/alexisbeaulieu97/tokensmith/internal/document"
	"github.com/alexisbeaulieu97/tokensmith/internal/strategy"
	"github.com/alexisbeaulieu97/tokensmith/internal/tokens"
)

// contextFlags selects a business context. Empty values fall back to the
// strategy section of the configuration.
type contextFlags struct {
	business string
	vibe     string
	goal     string
}

func (f *contextFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.business, "business", "", "Business type (saas, ecommerce, service, portfolio)")
	cmd.Flags().StringVar(&f.vibe, "vibe", "", "Brand vibe (innovative, trustworthy, luxury, friendly)")
	cmd.Flags().StringVar(&f.goal, "goal", "", "Conversion goal (lead, purchase, awareness)")
}

func (f *contextFlags) context(cfg *config.Config) (strategy.Context, error) {
	def := cfg.Strategy
	ctx, err := strategy.ParseContext(
		firstNonEmpty(f.business, def.BusinessType),
		firstNonEmpty(f.vibe, def.BrandVibe),
		firstNonEmpty(f.goal, def.ConversionGoal),
	)
	if err != nil {
		return strategy.Context{}, newCommandError("resolve business context", "strategy flags", err, "Run `tokensmith resolve --help` for the accepted values.")
	}
	return ctx, nil
}

// pageFlags adjusts the optional pages of a blueprint.
type pageFlags struct {
	include []string
	exclude []string
}

func (f *pageFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringSliceVar(&f.include, "include-page", nil, "Optional page IDs to add to the sitemap")
	cmd.Flags().StringSliceVar(&f.exclude, "exclude-page", nil, "Optional page IDs to drop from the sitemap")
}

func (f *pageFlags) apply(bp strategy.Blueprint) (strategy.Blueprint, error) {
	pages := bp.Pages
	for _, ids := range []struct {
		ids      []string
		selected bool
	}{{f.include, true}, {f.exclude, false}} {
		for _, id := range ids.ids {
			if _, ok := strategy.FindPage(pages, id); !ok {
				return bp, newCommandError("select pages", id, fmt.Errorf("no page %q in the %s sitemap", id, bp.Context.BusinessType), "Run `tokensmith resolve` to list page IDs.")
			}
			pages = strategy.SetSelected(pages, id, ids.selected)
		}
	}
	return bp.WithPages(pages), nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

// loadGraph reads the token document at path, or returns the default graph
// when path is empty.
func loadGraph(path string) (tokens.Graph, error) {
	if path == "" {
		return tokens.Default(), nil
	}
	g, err := document.Load(path)
	if err != nil {
		return tokens.Graph{}, newCommandError("load tokens", path, err, "Check the document against `tokensmith init` output.")
	}
	return g, nil
}

func optionalArg(args []string) string {
	if len(args) == 0 {
		return ""
	}
	return args[0]
}

// writeOutput writes data to out, or to w when out is empty or "-".
func writeOutput(w io.Writer, out, data string) error {
	if out == "" || out == "-" {
		_, err := io.WriteString(w, data)
		return err
	}
	if err := document.WriteFile(out, []byte(data)); err != nil {
		return newCommandError("write output", out, err, "Check that the directory is writable.")
	}
	return nil
}
