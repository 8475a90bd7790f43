package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/tokensmith/internal/config"
	"github.com/alexisbeaulieu97/tokensmith/internal/document"
	"github.com/alexisbeaulieu97/tokensmith/internal/export"
	"github.com/alexisbeaulieu97/tokensmith/internal/suggest"
	"github.com/alexisbeaulieu97/tokensmith/pkg/diff"
)

type suggestOptions struct {
	tokensFile string
	write      bool
	diff       bool
}

// newSuggester is swapped in tests.
var newSuggester = func(cfg config.SuggestConfig) (suggest.Suggester, error) {
	return suggest.NewAnthropicSuggester(suggest.Options{
		APIKey:    os.Getenv(cfg.APIKeyEnv),
		Model:     cfg.Model,
		MaxTokens: cfg.MaxTokens,
		BaseURL:   cfg.BaseURL,
		Timeout:   cfg.Timeout,
	})
}

func newSuggestCmd(root *rootFlags) *cobra.Command {
	opts := &suggestOptions{}

	cmd := &cobra.Command{
		Use:   "suggest <prompt>",
		Short: "Ask a model for token changes and merge the valid ones",
		Long: `Suggest sends the prompt and the current tokens to the configured model.
Each suggested field is validated on its own: valid fields are applied and
invalid ones are listed as rejected. With --write the merged tokens replace
the tokens file.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := root.load(cmd, "suggest")
			if err != nil {
				return err
			}
			if opts.write && opts.tokensFile == "" {
				return newCommandError("suggest tokens", "--write", fmt.Errorf("--write needs --tokens"), "Pass the tokens file to update.")
			}

			current, err := loadGraph(opts.tokensFile)
			if err != nil {
				return err
			}

			suggester, err := newSuggester(app.cfg.Suggest)
			if err != nil {
				return newCommandError("create suggestion client", app.cfg.Suggest.Model, err, fmt.Sprintf("Set %s or suggest.api_key_env in the configuration.", app.cfg.Suggest.APIKeyEnv))
			}

			prompt := strings.Join(args, " ")
			app.log.With("model", app.cfg.Suggest.Model).Info("requesting suggestion")
			suggestion, err := suggester.Suggest(cmd.Context(), prompt, current)
			if err != nil {
				return newCommandError("suggest tokens", prompt, err, "Retry, or rephrase the prompt.")
			}

			result := suggest.Apply(current, suggestion)
			out := cmd.OutOrStdout()
			if suggestion.Rationale != "" {
				fmt.Fprintf(out, "%s\n\n", suggestion.Rationale)
			}
			flat := suggestion.Fragment.Flatten()
			for _, path := range result.Applied {
				fmt.Fprintf(out, "applied  %s = %v\n", path, flat[path])
			}
			for _, rejected := range result.Rejected {
				fmt.Fprintf(out, "rejected %s: %s\n", rejected.Field, rejected.Message)
			}

			if opts.diff && len(result.Applied) > 0 {
				before, err := export.ToJSON(current)
				if err != nil {
					return err
				}
				after, err := export.ToJSON(result.Graph)
				if err != nil {
					return err
				}
				fmt.Fprintf(out, "\n%s", diff.Unified(before, after, firstNonEmpty(opts.tokensFile, "default tokens"), "suggested"))
			}

			if opts.write && len(result.Applied) > 0 {
				if err := document.Save(opts.tokensFile, result.Graph); err != nil {
					return newCommandError("save tokens", opts.tokensFile, err, "Check that the directory is writable.")
				}
				app.log.With("path", opts.tokensFile).Info("tokens updated")
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&opts.tokensFile, "tokens", "t", "", "Tokens file to start from (default tokens)")
	cmd.Flags().BoolVarP(&opts.write, "write", "w", false, "Save the merged tokens back to --tokens")
	cmd.Flags().BoolVar(&opts.diff, "diff", false, "Show the merged tokens as a diff against the current tokens")

	return cmd
}
