package main

import (
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/tokensmith/internal/report"
	"github.com/alexisbeaulieu97/tokensmith/internal/typescale"
	tserrors "github.com/alexisbeaulieu97/tokensmith/pkg/errors"
)

type scaleOptions struct {
	base  float64
	ratio string
	json  bool
}

func newScaleCmd(root *rootFlags) *cobra.Command {
	opts := &scaleOptions{}

	cmd := &cobra.Command{
		Use:   "scale",
		Short: "Compute a type scale from a base size and ratio",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := root.load(cmd, "scale"); err != nil {
				return err
			}

			ratio, err := parseRatio(opts.ratio)
			if err != nil {
				return newCommandError("compute type scale", opts.ratio, err, "Pass a number above 1 or a name such as major-third.")
			}
			scale, err := typescale.Compute(opts.base, ratio)
			if err != nil {
				return newCommandError("compute type scale", fmt.Sprintf("%v x %v", opts.base, ratio), err, "Use a positive base size and a ratio above 1.")
			}

			out := cmd.OutOrStdout()
			if opts.json {
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				return enc.Encode(struct {
					typescale.Scale
					Px [typescale.StepCount]int `json:"px"`
				}{Scale: scale, Px: scale.Px()})
			}
			fmt.Fprint(out, report.Ladder(scale))
			return nil
		},
	}

	cmd.Flags().Float64Var(&opts.base, "base", 16, "Base (body) font size in px")
	cmd.Flags().StringVar(&opts.ratio, "ratio", "1.25", "Scale ratio, numeric or named (e.g. golden-ratio)")
	cmd.Flags().BoolVar(&opts.json, "json", false, "Output the scale in JSON format")

	return cmd
}

func parseRatio(s string) (float64, error) {
	if v, err := strconv.ParseFloat(s, 64); err == nil {
		return v, nil
	}
	if v, ok := typescale.LookupRatio(s); ok {
		return v, nil
	}
	return 0, tserrors.NewValidationError("ratio", fmt.Sprintf("unknown ratio %q", s), nil)
}
