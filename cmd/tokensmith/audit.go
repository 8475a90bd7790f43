package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/tokensmith/internal/contrast"
	"github.com/alexisbeaulieu97/tokensmith/internal/fonts"
	"github.com/alexisbeaulieu97/tokensmith/internal/report"
)

type auditOptions struct {
	json     bool
	preview  bool
	minScore int
}

type auditOutput struct {
	Score    int                   `json:"score"`
	Passing  int                   `json:"passing"`
	Pairs    []contrast.PairResult `json:"pairs"`
	Warnings []fonts.Warning       `json:"fontWarnings"`
}

func newAuditCmd(root *rootFlags) *cobra.Command {
	opts := &auditOptions{}

	cmd := &cobra.Command{
		Use:   "audit [tokens-file]",
		Short: "Check contrast of the canonical color pairs and font availability",
		Long: `Audit evaluates the four canonical foreground/background pairs against
WCAG AA (4.5:1) and AAA (7:1) and prints the 0-100 health score. Without a
file the default tokens are audited.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := root.load(cmd, "audit")
			if err != nil {
				return err
			}

			path := optionalArg(args)
			g, err := loadGraph(path)
			if err != nil {
				return err
			}

			result, err := contrast.Audit(g)
			if err != nil {
				return newCommandError("audit tokens", firstNonEmpty(path, "default tokens"), err, "Fix the reported color.")
			}
			warnings := fonts.Check(fonts.NewCatalog(), g)

			app.log.WithFields(map[string]any{
				"score":   result.Score,
				"passing": result.Passing(),
			}).Debug("audit complete")

			out := cmd.OutOrStdout()
			if opts.json {
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				if err := enc.Encode(auditOutput{Score: result.Score, Passing: result.Passing(), Pairs: result.Pairs, Warnings: warnings}); err != nil {
					return err
				}
			} else {
				fmt.Fprint(out, report.Audit(result))
				fmt.Fprint(out, report.Warnings(warnings))
				if opts.preview {
					fmt.Fprint(out, report.Preview(g))
				}
			}

			if result.Score < opts.minScore {
				return newCommandError("meet contrast target", fmt.Sprintf("score %d is below %d", result.Score, opts.minScore), fmt.Errorf("%d of %d pairs pass AA", result.Passing(), len(result.Pairs)), "Darken the failing backgrounds or lighten their text.")
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&opts.json, "json", false, "Output results in JSON format")
	cmd.Flags().BoolVar(&opts.preview, "preview", false, "Render sample cards, buttons and an input with the tokens")
	cmd.Flags().IntVar(&opts.minScore, "min-score", 0, "Fail when the health score is below this value")

	return cmd
}
