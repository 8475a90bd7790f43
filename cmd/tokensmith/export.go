package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/tokensmith/internal/config"
	"github.com/alexisbeaulieu97/tokensmith/internal/export"
	"github.com/alexisbeaulieu97/tokensmith/internal/strategy"
	"github.com/alexisbeaulieu97/tokensmith/pkg/diff"
)

type exportOptions struct {
	format string
	out    string
	check  bool
	ctx    contextFlags
	pages  pageFlags
}

func newExportCmd(root *rootFlags) *cobra.Command {
	opts := &exportOptions{}

	cmd := &cobra.Command{
		Use:   "export [tokens-file]",
		Short: "Render tokens as json, css, config or a Markdown brief",
		Long: `Export renders the tokens file (or the defaults) in one format. The format
defaults to export.default_format from the configuration. --out "-" writes to
stdout; a directory-less name is placed under export.output_dir.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := root.load(cmd, "export")
			if err != nil {
				return err
			}

			format, err := export.ParseFormat(firstNonEmpty(opts.format, app.cfg.Export.DefaultFormat))
			if err != nil {
				return newCommandError("export tokens", opts.format, err, "Use one of json, css, config or brief.")
			}

			bp, err := buildBlueprint(app.cfg, &opts.ctx, &opts.pages)
			if err != nil {
				return err
			}

			path := optionalArg(args)
			g, err := loadGraph(path)
			if err != nil {
				return err
			}

			rendered, err := export.Export(g, &bp, format)
			if err != nil {
				return newCommandError("export tokens", string(format), err, "Fix the reported field and retry.")
			}

			target := outputPath(app.cfg, opts.out)
			if opts.check {
				return checkOutput(cmd, target, rendered)
			}
			if err := writeOutput(cmd.OutOrStdout(), target, rendered); err != nil {
				return err
			}
			app.log.WithFields(map[string]any{
				"format": string(format),
				"output": firstNonEmpty(target, "stdout"),
			}).Debug("export complete")
			return nil
		},
	}

	cmd.Flags().StringVarP(&opts.format, "format", "f", "", "Output format: json, css, config (tailwind) or brief (md)")
	cmd.Flags().StringVarP(&opts.out, "out", "o", "", "Output file (default stdout)")
	cmd.Flags().BoolVar(&opts.check, "check", false, "Fail with a diff when --out differs from a fresh export instead of writing it")
	opts.ctx.register(cmd)
	opts.pages.register(cmd)

	return cmd
}

func buildBlueprint(cfg *config.Config, ctxFlags *contextFlags, pages *pageFlags) (strategy.Blueprint, error) {
	ctx, err := ctxFlags.context(cfg)
	if err != nil {
		return strategy.Blueprint{}, err
	}
	return pages.apply(strategy.NewBlueprint(ctx))
}

// outputPath places bare file names under export.output_dir.
func outputPath(cfg *config.Config, out string) string {
	if out == "" || out == "-" || filepath.IsAbs(out) || strings.ContainsRune(out, filepath.Separator) {
		return out
	}
	return filepath.Join(cfg.Export.OutputDir, out)
}

// checkOutput compares the file at target with rendered and prints the diff
// when they differ.
func checkOutput(cmd *cobra.Command, target, rendered string) error {
	if target == "" || target == "-" {
		return newCommandError("check export", "--check", fmt.Errorf("--check needs --out"), "Pass the generated file to compare.")
	}

	existing, err := os.ReadFile(target)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return newCommandError("check export", target, err, "Check that the file is readable.")
	}

	out := diff.Unified(existing, []byte(rendered), target, "fresh export")
	if out == "" {
		fmt.Fprintf(cmd.OutOrStdout(), "%s is up to date\n", target)
		return nil
	}
	fmt.Fprint(cmd.OutOrStdout(), out)
	added, removed := diff.Changed(existing, []byte(rendered))
	return newCommandError("check export", target, fmt.Errorf("export is stale: %d lines added, %d removed", added, removed), "Run export without --check to regenerate it.")
}
