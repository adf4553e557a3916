package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"almanac/internal/solve"
)

func traceCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "trace FILE SEED",
		Short: "Show a single seed's value after every stage",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			seed, err := strconv.ParseInt(args[1], 10, 64)
			if err != nil {
				return fmt.Errorf("invalid seed %q: %w", args[1], err)
			}

			alm, err := a.load(args[:1])
			if err != nil {
				return err
			}

			steps, err := solve.New(solve.WithLogger(a.logger)).Trace(alm, seed)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			for _, step := range steps {
				fmt.Fprintf(out, "%-24s %d -> %d\n", step.Stage.String()+":", step.From, step.To)
			}

			return nil
		},
	}
}
