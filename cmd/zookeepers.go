package cmd

import (
	"strconv"

	"github.com/bnema/zoo-api/internal/domain"
	"github.com/spf13/cobra"
)

func newZookeepersCmd(loader *appLoader) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "zookeepers",
		Aliases: []string{"zookeeper"},
		Short:   "List, show and create zookeepers",
	}

	cmd.AddCommand(
		newZookeepersListCmd(loader),
		newZookeepersGetCmd(loader),
		newZookeepersCreateCmd(loader),
	)

	return cmd
}

func newZookeepersListCmd(loader *appLoader) *cobra.Command {
	var name, favoriteAnimal string
	var age int
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List zookeepers, optionally filtered",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loader.load(cmd)
			if err != nil {
				return err
			}

			query := domain.Query{}
			setQueryValue(query, domain.QueryName, name)
			setQueryValue(query, domain.QueryFavoriteAnimal, favoriteAnimal)
			if cmd.Flags().Changed("age") {
				query[domain.QueryAge] = []string{strconv.Itoa(age)}
			}

			keepers, err := app.service.ListZookeepers(cmd.Context(), query)
			if err != nil {
				return err
			}

			return writeZookeepersOutput(cmd, app, keepers, asJSON)
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Only zookeepers with this name")
	cmd.Flags().IntVar(&age, "age", 0, "Only zookeepers of this age")
	cmd.Flags().StringVar(&favoriteAnimal, "favorite-animal", "", "Only zookeepers with this favorite animal")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Render JSON output")

	return cmd
}

func newZookeepersGetCmd(loader *appLoader) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "get <id>",
		Short: "Show one zookeeper",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := loader.load(cmd)
			if err != nil {
				return err
			}

			keeper, err := app.service.GetZookeeper(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			return writeZookeepersOutput(cmd, app, []domain.Zookeeper{keeper}, asJSON)
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Render JSON output")

	return cmd
}

func newZookeepersCreateCmd(loader *appLoader) *cobra.Command {
	var name, favoriteAnimal string
	var age int
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a zookeeper and rewrite the zookeepers file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loader.load(cmd)
			if err != nil {
				return err
			}

			candidate := domain.Candidate{}
			setCandidateString(cmd, candidate, "name", domain.FieldName, name)
			setCandidateString(cmd, candidate, "favorite-animal", domain.FieldFavoriteAnimal, favoriteAnimal)
			if cmd.Flags().Changed("age") {
				candidate[domain.FieldAge] = age
			}

			keeper, err := app.service.CreateZookeeper(cmd.Context(), candidate)
			if err != nil {
				return err
			}

			return writeZookeepersOutput(cmd, app, []domain.Zookeeper{keeper}, asJSON)
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Zookeeper name")
	cmd.Flags().IntVar(&age, "age", 0, "Zookeeper age in years")
	cmd.Flags().StringVar(&favoriteAnimal, "favorite-animal", "", "Zookeeper's favorite animal")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Render JSON output")

	return cmd
}
