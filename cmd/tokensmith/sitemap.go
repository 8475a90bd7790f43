package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/tokensmith/internal/export"
	"github.com/alexisbeaulieu97/tokensmith/internal/report"
	"github.com/alexisbeaulieu97/tokensmith/internal/tui"
)

type sitemapOptions struct {
	ctx            contextFlags
	pages          pageFlags
	tokensFile     string
	briefOut       string
	nonInteractive bool
}

func newSitemapCmd(root *rootFlags) *cobra.Command {
	opts := &sitemapOptions{}

	cmd := &cobra.Command{
		Use:   "sitemap",
		Short: "Choose the pages to build and optionally write the build brief",
		Long: `Sitemap opens an interactive picker over the recommended pages for the
business context. Required pages cannot be deselected. Without a terminal, or
with --non-interactive, the page flags are applied and the result is printed.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := root.load(cmd, "sitemap")
			if err != nil {
				return err
			}
			bp, err := buildBlueprint(app.cfg, &opts.ctx, &opts.pages)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if !opts.nonInteractive && isInteractive(cmd) {
				chosen, confirmed, err := tui.Run(cmd.Context(), bp, cmd.InOrStdin(), out)
				if err != nil {
					return newCommandError("run sitemap picker", string(bp.Context.BusinessType), err, "Retry with --non-interactive.")
				}
				if !confirmed {
					app.log.Info("sitemap selection cancelled")
					return nil
				}
				bp = chosen
			}

			fmt.Fprint(out, report.Blueprint(bp))

			if opts.briefOut == "" {
				return nil
			}
			g, err := loadGraph(opts.tokensFile)
			if err != nil {
				return err
			}
			brief, err := export.ToBrief(g, bp)
			if err != nil {
				return newCommandError("render brief", opts.briefOut, err, "Fix the reported field and retry.")
			}
			if err := writeOutput(out, outputPath(app.cfg, opts.briefOut), brief); err != nil {
				return err
			}
			app.log.With("output", opts.briefOut).Info("brief written")
			return nil
		},
	}

	opts.ctx.register(cmd)
	opts.pages.register(cmd)
	cmd.Flags().StringVar(&opts.tokensFile, "tokens", "", "Tokens file used for the brief (default tokens)")
	cmd.Flags().StringVar(&opts.briefOut, "brief", "", "Write the Markdown build brief to this file")
	cmd.Flags().BoolVar(&opts.nonInteractive, "non-interactive", false, "Skip the interactive picker")

	return cmd
}
