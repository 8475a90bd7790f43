package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/tokensmith/internal/darkmode"
	"github.com/alexisbeaulieu97/tokensmith/internal/document"
	"github.com/alexisbeaulieu97/tokensmith/internal/tokens"
)

type initOptions struct {
	force    bool
	syncDark bool
}

func newInitCmd(root *rootFlags) *cobra.Command {
	opts := &initOptions{}

	cmd := &cobra.Command{
		Use:   "init [path]",
		Short: "Write the default token document (tokens.json, or .yaml by extension)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := root.load(cmd, "init")
			if err != nil {
				return err
			}
			path := firstNonEmpty(optionalArg(args), "tokens.json")
			if err := runInit(path, opts); err != nil {
				app.log.Error(err, "init failed")
				return err
			}
			app.log.With("path", path).Info("token document written")
			fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", path)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&opts.force, "force", "f", false, "Overwrite an existing document")
	cmd.Flags().BoolVar(&opts.syncDark, "sync-dark", false, "Derive the dark canvas and text from the light theme")

	return cmd
}

func runInit(path string, opts *initOptions) error {
	if _, err := document.EncodingFor(path); err != nil {
		return newCommandError("initialise tokens", path, err, "Use a .json, .yaml or .yml file name.")
	}
	if !opts.force {
		if _, err := os.Stat(path); err == nil {
			return newCommandError("initialise tokens", path, fs.ErrExist, "Pass --force to overwrite it.")
		} else if !errors.Is(err, fs.ErrNotExist) {
			return newCommandError("initialise tokens", path, err, "Check that the path is accessible.")
		}
	}

	g := tokens.Default()
	if opts.syncDark {
		synced, err := darkmode.SyncDark(g)
		if err != nil {
			return newCommandError("derive dark theme", path, err, "Check the light theme colors.")
		}
		g = synced
	}

	if err := document.Save(path, g); err != nil {
		return newCommandError("initialise tokens", path, err, "Check that the directory is writable.")
	}
	return nil
}
