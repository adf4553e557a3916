package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"almanac/internal/almanac"
)

func convertCmd(a *app) *cobra.Command {
	var (
		to      string
		outPath string
	)

	cmd := &cobra.Command{
		Use:   "convert [FILE]",
		Short: "Convert an almanac between the text listing and YAML",
		Long: `Convert an almanac between the text listing and YAML.

Without --to, text input becomes YAML and YAML input becomes text.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			alm, err := a.load(args)
			if err != nil {
				return err
			}

			if to == "" {
				to = "yaml"
				if len(args) > 0 && almanac.IsYAMLPath(args[0]) {
					to = "text"
				}
			}

			var data []byte

			switch to {
			case "yaml":
				if outPath != "" {
					return almanac.WriteYAMLFile(alm, outPath)
				}

				data, err = almanac.MarshalYAML(alm)
				if err != nil {
					return fmt.Errorf("failed to marshal almanac: %w", err)
				}
			case "text":
				data = almanac.Format(alm)
			default:
				return fmt.Errorf("unknown output format %q: want yaml or text", to)
			}

			if outPath == "" {
				_, err = cmd.OutOrStdout().Write(data)
				return err
			}

			if err := os.WriteFile(outPath, data, 0644); err != nil {
				return fmt.Errorf("failed to write %s: %w", outPath, err)
			}

			return nil
		},
	}

	cmd.Flags().StringVar(&to, "to", "", "output format: yaml or text")
	cmd.Flags().StringVarP(&outPath, "out", "o", "", "write to this file instead of stdout")

	return cmd
}
