package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/bnema/zoo-api/internal/adapters/httpapi"
	"github.com/bnema/zoo-api/internal/domain"
	"github.com/spf13/cobra"
)

func writeAnimalsOutput(cmd *cobra.Command, app *app, animals []domain.Animal, asJSON bool) error {
	if asJSON {
		return writeJSONOutput(cmd, httpapi.FromAnimals(animals))
	}

	rendered, err := app.animalRenderer(animals)
	if err != nil {
		return fmt.Errorf("render animals: %w", err)
	}

	_, err = fmt.Fprintln(cmd.OutOrStdout(), rendered)
	return err
}

func writeZookeepersOutput(cmd *cobra.Command, app *app, keepers []domain.Zookeeper, asJSON bool) error {
	if asJSON {
		return writeJSONOutput(cmd, httpapi.FromZookeepers(keepers))
	}

	rendered, err := app.zookeeperRenderer(keepers)
	if err != nil {
		return fmt.Errorf("render zookeepers: %w", err)
	}

	_, err = fmt.Fprintln(cmd.OutOrStdout(), rendered)
	return err
}

func writeJSONOutput(cmd *cobra.Command, v any) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
