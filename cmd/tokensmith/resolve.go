package main

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/tokensmith/internal/report"
	"github.com/alexisbeaulieu97/tokensmith/internal/strategy"
)

func newResolveCmd(root *rootFlags) *cobra.Command {
	ctxFlags := &contextFlags{}
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "resolve",
		Short: "Pick a layout template and sitemap for a business context",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := root.load(cmd, "resolve")
			if err != nil {
				return err
			}
			ctx, err := ctxFlags.context(app.cfg)
			if err != nil {
				return err
			}

			bp := strategy.NewBlueprint(ctx)
			app.log.WithFields(map[string]any{
				"business": string(ctx.BusinessType),
				"template": bp.Template.ID,
			}).Debug("context resolved")

			out := cmd.OutOrStdout()
			if asJSON {
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				return enc.Encode(struct {
					strategy.Blueprint
					Recommendation strategy.Recommendation `json:"recommendation"`
				}{Blueprint: bp, Recommendation: bp.Recommendation()})
			}
			fmt.Fprint(out, report.Blueprint(bp))
			return nil
		},
	}

	ctxFlags.register(cmd)
	cmd.Flags().BoolVar(&asJSON, "json", false, "Output the blueprint in JSON format")

	return cmd
}
