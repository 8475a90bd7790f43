package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/tokensmith/internal/darkmode"
	"github.com/alexisbeaulieu97/tokensmith/internal/document"
	"github.com/alexisbeaulieu97/tokensmith/internal/report"
)

type darkOptions struct {
	color string
	role  string
	out   string
}

func newDarkCmd(root *rootFlags) *cobra.Command {
	opts := &darkOptions{}

	cmd := &cobra.Command{
		Use:   "dark [tokens-file]",
		Short: "Derive dark-mode colors from the light theme",
		Long: `With --color, print the dark counterpart of a single color for --role
(background or text). Otherwise derive colors.dark.canvas and colors.dark.text
from the light theme of the tokens file and save it back (or to --out).`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := root.load(cmd, "dark")
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()

			if opts.color != "" {
				role, err := darkmode.ParseRole(opts.role)
				if err != nil {
					return newCommandError("derive counterpart", opts.color, err, "Use --role background or --role text.")
				}
				counterpart, err := darkmode.CounterpartHex(opts.color, role)
				if err != nil {
					return newCommandError("derive counterpart", opts.color, err, "Pass a #RGB or #RRGGBB color.")
				}
				fmt.Fprintln(out, counterpart)
				return nil
			}

			path := optionalArg(args)
			if path == "" {
				return newCommandError("derive dark theme", "no tokens file", fmt.Errorf("a tokens file or --color is required"), "Run `tokensmith init` first or pass --color.")
			}
			g, err := loadGraph(path)
			if err != nil {
				return err
			}
			synced, err := darkmode.SyncDark(g)
			if err != nil {
				return newCommandError("derive dark theme", path, err, "Fix the light theme colors.")
			}

			target := firstNonEmpty(opts.out, path)
			if err := document.Save(target, synced); err != nil {
				return newCommandError("save tokens", target, err, "Check that the directory is writable.")
			}
			app.log.With("path", target).Info("dark theme derived")

			fmt.Fprintf(out, "canvas %s -> %s\n", g.Colors.Light.Canvas, synced.Colors.Dark.Canvas)
			fmt.Fprintf(out, "text   %s -> %s %s\n", g.Colors.Light.Text, synced.Colors.Dark.Text, report.Swatch(synced.Colors.Dark.Text, synced.Colors.Dark.Canvas))
			return nil
		},
	}

	cmd.Flags().StringVar(&opts.color, "color", "", "Single color to convert instead of a tokens file")
	cmd.Flags().StringVar(&opts.role, "role", "background", "Role of --color: background or text")
	cmd.Flags().StringVarP(&opts.out, "out", "o", "", "Write the updated document here instead of in place")

	return cmd
}
