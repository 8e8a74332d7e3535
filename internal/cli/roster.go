package cli

import (
	"context"

	"github.com/spf13/cobra"

	pqerrors "github.com/matzehuels/pokequiz/pkg/errors"
	"github.com/matzehuels/pokequiz/pkg/pokeapi"
)

// rosterCommand creates the "roster" command group.
func (c *CLI) rosterCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "roster",
		Short: "List the species of a pokedex or generation",
	}

	cmd.AddCommand(c.rosterSubcommand("pokedex <name-or-id>", "List the species of a regional pokedex in entry order",
		(*pokeapi.Client).SpeciesInPokedex))
	cmd.AddCommand(c.rosterSubcommand("generation <name-or-id>", "List the species introduced in a generation",
		(*pokeapi.Client).SpeciesInGeneration))

	return cmd
}

type rosterFunc func(*pokeapi.Client, context.Context, string) ([]string, error)

func (c *CLI) rosterSubcommand(use, short string, fetch rosterFunc) *cobra.Command {
	return &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := pqerrors.ValidateNameOrURL(args[0]); err != nil {
				return err
			}
			ctx := cmd.Context()
			client, err := c.newClient(ctx)
			if err != nil {
				return err
			}
			names, err := fetch(client, ctx, args[0])
			if err != nil {
				return err
			}
			if limit := c.settings.Limit; limit > 0 && len(names) > limit {
				names = names[:limit]
			}
			loggerFromContext(ctx).Debug("roster loaded", "source", args[0], "species", len(names))
			printLines(cmd.OutOrStdout(), names)
			return nil
		},
	}
}
