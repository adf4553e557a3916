package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"almanac/internal/solve"
)

func solveCmd(a *app) *cobra.Command {
	var (
		mode       string
		noValidate bool
		showRanges bool
	)

	cmd := &cobra.Command{
		Use:   "solve [FILE]",
		Short: "Print the lowest reachable location",
		Long: `Print the lowest location reachable from the almanac's seeds.

Modes:
  points  every seed is a single value
  ranges  seeds are (start, length) pairs
  both    print both answers (default)`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("mode") {
				mode = a.cfg.Mode
			}

			m, err := solve.ParseMode(mode)
			if err != nil {
				return err
			}

			alm, err := a.load(args)
			if err != nil {
				return err
			}

			solver := solve.New(
				solve.WithLogger(a.logger),
				solve.WithValidation(a.cfg.Validate && !noValidate),
			)

			rep, err := solver.Solve(alm, m)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()

			if m == solve.ModeBoth || m == solve.ModePoints {
				fmt.Fprintf(out, "points: %d\n", rep.PointsLowest)
			}

			if m == solve.ModeBoth || m == solve.ModeRanges {
				fmt.Fprintf(out, "ranges: %d\n", rep.RangesLowest)

				if showRanges {
					for _, r := range rep.Locations {
						fmt.Fprintf(out, "  %s\n", r)
					}
				}
			}

			return nil
		},
	}

	cmd.Flags().StringVar(&mode, "mode", "both", "seed interpretation: points, ranges or both")
	cmd.Flags().BoolVar(&noValidate, "no-validate", false, "skip the overlapping-rule check")
	cmd.Flags().BoolVar(&showRanges, "show-ranges", false, "also print the final location ranges")

	return cmd
}
