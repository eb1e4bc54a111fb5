package cmd

import (
	"fmt"

	"github.com/bnema/zoo-api/internal/adapters/export"
	"github.com/bnema/zoo-api/internal/domain"
	"github.com/spf13/cobra"
)

func newExportCmd(loader *appLoader) *cobra.Command {
	var rawFormat string

	cmd := &cobra.Command{
		Use:       "export <animals|zookeepers>",
		Short:     "Write every record of a collection to stdout as JSON, YAML or TOML",
		Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		ValidArgs: []string{"animals", "zookeepers"},
		RunE: func(cmd *cobra.Command, args []string) error {
			format, err := export.ParseFormat(rawFormat)
			if err != nil {
				return err
			}

			app, err := loader.load(cmd)
			if err != nil {
				return err
			}

			switch args[0] {
			case "animals":
				animals, err := app.service.ListAnimals(cmd.Context(), domain.Query{})
				if err != nil {
					return err
				}
				return export.Animals(cmd.OutOrStdout(), format, animals)
			case "zookeepers":
				keepers, err := app.service.ListZookeepers(cmd.Context(), domain.Query{})
				if err != nil {
					return err
				}
				return export.Zookeepers(cmd.OutOrStdout(), format, keepers)
			default:
				return fmt.Errorf("unknown collection %q", args[0])
			}
		},
	}

	cmd.Flags().StringVarP(&rawFormat, "format", "f", string(export.FormatJSON), "Output format: json, yaml or toml")

	return cmd
}
