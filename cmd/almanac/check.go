package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"almanac/internal/almanac"
)

var errInvalidAlmanac = errors.New("almanac has errors")

func checkCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "check [FILE]",
		Short: "Validate an almanac and list its problems",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			alm, err := a.load(args)
			if err != nil {
				return err
			}

			res := almanac.Validate(alm)

			out := cmd.OutOrStdout()
			fmt.Fprint(out, res.Report())

			if res.HasErrors() {
				return fmt.Errorf("%w: %w", errInvalidAlmanac, res.Error())
			}

			fmt.Fprintln(out, "ok")

			return nil
		},
	}
}
