package main

import (
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/alexisbeaulieu97/tokensmith/internal/config"
	"github.com/alexisbeaulieu97/tokensmith/internal/logger"
)

type rootFlags struct {
	configPath string
	logLevel   string
	verbose    bool
}

// appContext bundles what every command needs once flags are parsed.
type appContext struct {
	cfg *config.Config
	log *logger.Logger
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}

	cmd := &cobra.Command{
		Use:           "tokensmith",
		Short:         "tokensmith derives, audits and exports design tokens",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().StringVarP(&flags.configPath, "config", "c", "", "Path to tokensmith.yaml (default $"+config.EnvPath+" or ./"+config.DefaultPath+")")
	cmd.PersistentFlags().StringVar(&flags.logLevel, "log-level", "", "Log level (debug, info, warn, error)")
	cmd.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "Enable verbose logging")

	cmd.AddCommand(newInitCmd(flags))
	cmd.AddCommand(newAuditCmd(flags))
	cmd.AddCommand(newDarkCmd(flags))
	cmd.AddCommand(newScaleCmd(flags))
	cmd.AddCommand(newResolveCmd(flags))
	cmd.AddCommand(newExportCmd(flags))
	cmd.AddCommand(newSitemapCmd(flags))
	cmd.AddCommand(newSuggestCmd(flags))
	cmd.AddCommand(newServeCmd(flags))
	cmd.AddCommand(newWatchCmd(flags))
	cmd.AddCommand(newVersionCmd())

	return cmd
}

// load reads the configuration and builds the logger for cmd. Flags win over
// the config file.
func (f *rootFlags) load(cmd *cobra.Command, component string) (*appContext, error) {
	path := config.ResolvePath(f.configPath)
	cfg, err := config.Load(path)
	if err != nil {
		return nil, newCommandError("load configuration", path, err, "Fix the reported field or remove the file to use defaults.")
	}

	level := cfg.Log.Level
	if f.logLevel != "" {
		level = f.logLevel
	}
	if f.verbose {
		level = "debug"
	}

	errOut := cmd.ErrOrStderr()
	log, err := logger.New(logger.Options{
		Level:         level,
		HumanReadable: cfg.Log.Human || isTerminal(errOut),
		Writer:        errOut,
		Component:     component,
	})
	if err != nil {
		return nil, newCommandError("create logger", "level "+level, err, "Use one of debug, info, warn or error.")
	}

	log.With("config", path).Debug("configuration loaded")
	return &appContext{cfg: cfg, log: log}, nil
}

func isTerminal(w io.Writer) bool {
	file, ok := w.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(file.Fd()))
}

func isInteractive(cmd *cobra.Command) bool {
	in, ok := cmd.InOrStdin().(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(in.Fd())) && isTerminal(cmd.OutOrStdout())
}
