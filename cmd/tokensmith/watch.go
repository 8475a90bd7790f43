package main

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/tokensmith/internal/export"
	"github.com/alexisbeaulieu97/tokensmith/internal/watch"
)

type watchOptions struct {
	format string
	out    string
	ctx    contextFlags
	pages  pageFlags
}

func newWatchCmd(root *rootFlags) *cobra.Command {
	opts := &watchOptions{}

	cmd := &cobra.Command{
		Use:   "watch <tokens-file>",
		Short: "Re-export whenever the tokens file changes",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := root.load(cmd, "watch")
			if err != nil {
				return err
			}

			format, err := export.ParseFormat(firstNonEmpty(opts.format, app.cfg.Export.DefaultFormat))
			if err != nil {
				return newCommandError("watch tokens", opts.format, err, "Use one of json, css, config or brief.")
			}
			bp, err := buildBlueprint(app.cfg, &opts.ctx, &opts.pages)
			if err != nil {
				return err
			}

			path := args[0]
			target := outputPath(app.cfg, firstNonEmpty(opts.out, defaultOutput(path, format)))
			if target == "-" {
				return newCommandError("watch tokens", path, fmt.Errorf("watch needs an output file"), "Pass --out with a file name.")
			}

			app.log.WithFields(map[string]any{"path": path, "output": target}).Info("watching tokens")
			err = watch.Watch(cmd.Context(), watch.Options{
				Path:     path,
				Debounce: app.cfg.Watch.Debounce,
				Logger:   app.log,
			}, watch.ExportTo(format, target, bp, app.log))
			if err != nil {
				return newCommandError("watch tokens", path, err, "Check that the file exists.")
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&opts.format, "format", "f", "", "Output format: json, css, config or brief")
	cmd.Flags().StringVarP(&opts.out, "out", "o", "", "Output file (default <tokens-name><format extension>)")
	opts.ctx.register(cmd)
	opts.pages.register(cmd)

	return cmd
}

// defaultOutput derives "tokens.css" from "tokens.json" for FormatCSS.
func defaultOutput(path string, format export.Format) string {
	base := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	name := base + format.Extension()
	if name == filepath.Base(path) {
		name = base + ".out" + format.Extension()
	}
	return name
}
