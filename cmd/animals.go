package cmd

import (
	"github.com/bnema/zoo-api/internal/domain"
	"github.com/spf13/cobra"
)

func newAnimalsCmd(loader *appLoader) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "animals",
		Aliases: []string{"animal"},
		Short:   "List, show and create animals",
	}

	cmd.AddCommand(
		newAnimalsListCmd(loader),
		newAnimalsGetCmd(loader),
		newAnimalsCreateCmd(loader),
	)

	return cmd
}

func newAnimalsListCmd(loader *appLoader) *cobra.Command {
	var name, species, diet string
	var traits []string
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List animals, optionally filtered",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loader.load(cmd)
			if err != nil {
				return err
			}

			query := domain.Query{}
			setQueryValue(query, domain.QueryName, name)
			setQueryValue(query, domain.QuerySpecies, species)
			setQueryValue(query, domain.QueryDiet, diet)
			if len(traits) > 0 {
				query[domain.QueryPersonalityTraits] = traits
			}

			animals, err := app.service.ListAnimals(cmd.Context(), query)
			if err != nil {
				return err
			}

			return writeAnimalsOutput(cmd, app, animals, asJSON)
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Only animals with this name")
	cmd.Flags().StringVar(&species, "species", "", "Only animals of this species")
	cmd.Flags().StringVar(&diet, "diet", "", "Only animals with this diet")
	cmd.Flags().StringArrayVar(&traits, "trait", nil, "Only animals with this personality trait (repeatable)")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Render JSON output")

	return cmd
}

func newAnimalsGetCmd(loader *appLoader) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "get <id>",
		Short: "Show one animal",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := loader.load(cmd)
			if err != nil {
				return err
			}

			animal, err := app.service.GetAnimal(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			return writeAnimalsOutput(cmd, app, []domain.Animal{animal}, asJSON)
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Render JSON output")

	return cmd
}

func newAnimalsCreateCmd(loader *appLoader) *cobra.Command {
	var name, species, diet string
	var traits []string
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create an animal and rewrite the animals file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loader.load(cmd)
			if err != nil {
				return err
			}

			candidate := domain.Candidate{
				domain.FieldPersonalityTraits: append([]string{}, traits...),
			}
			setCandidateString(cmd, candidate, "name", domain.FieldName, name)
			setCandidateString(cmd, candidate, "species", domain.FieldSpecies, species)
			setCandidateString(cmd, candidate, "diet", domain.FieldDiet, diet)

			animal, err := app.service.CreateAnimal(cmd.Context(), candidate)
			if err != nil {
				return err
			}

			return writeAnimalsOutput(cmd, app, []domain.Animal{animal}, asJSON)
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Animal name")
	cmd.Flags().StringVar(&species, "species", "", "Animal species")
	cmd.Flags().StringVar(&diet, "diet", "", "Animal diet")
	cmd.Flags().StringArrayVar(&traits, "trait", nil, "Personality trait (repeatable)")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Render JSON output")

	return cmd
}

func setQueryValue(query domain.Query, key, value string) {
	if value != "" {
		query[key] = []string{value}
	}
}

// setCandidateString leaves field absent unless the flag was given, so an
// omitted flag is reported as missing.
func setCandidateString(cmd *cobra.Command, candidate domain.Candidate, flag, field, value string) {
	if cmd.Flags().Changed(flag) {
		candidate[field] = value
	}
}
