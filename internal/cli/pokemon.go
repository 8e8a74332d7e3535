package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	pqerrors "github.com/matzehuels/pokequiz/pkg/errors"
	"github.com/matzehuels/pokequiz/pkg/pokeapi"
)

// pokemonCommand creates the "pokemon" command.
func (c *CLI) pokemonCommand() *cobra.Command {
	var stat string

	cmd := &cobra.Command{
		Use:   "pokemon <species>",
		Short: "Summarise the default variety of a species",
		Long: `Summarise the default variety of a species: types, height, weight and
base stats. With --stat only the named base stat is printed.`,
		Example: `  pokequiz pokemon pikachu
  pokequiz pokemon garchomp --stat speed`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := pqerrors.ValidateNameOrURL(args[0]); err != nil {
				return err
			}
			ctx := cmd.Context()
			client, err := c.newClient(ctx)
			if err != nil {
				return err
			}
			p, err := client.DefaultVariety(ctx, args[0])
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			if stat != "" {
				v, ok := pokeapi.StatValue(p, stat)
				if !ok {
					return &pqerrors.MissingDataError{Resource: pokeapi.CategoryPokemon + "/" + p.Name, Field: "stat " + stat}
				}
				fmt.Fprintln(w, v)
				return nil
			}

			printTitle(w, fmt.Sprintf("%s #%d", p.Name, p.ID))
			printKeyValue(w, "Species", p.Species.Name)
			printKeyValue(w, "Types", strings.Join(p.TypeNames(), ", "))
			printKeyValue(w, "Height", fmt.Sprintf("%.1f m", p.HeightMeters()))
			printKeyValue(w, "Weight", fmt.Sprintf("%.1f kg", p.WeightKg()))
			if len(p.Stats) > 0 {
				printTable(w, []string{"Stat", "Base", "Effort"}, statRows(p))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&stat, "stat", "", "print only this base stat (e.g. hp, attack, speed)")
	return cmd
}

func statRows(p *pokeapi.Pokemon) [][]string {
	rows := make([][]string, 0, len(p.Stats)+1)
	total := 0
	for _, s := range p.Stats {
		rows = append(rows, []string{s.Stat.Name, strconv.Itoa(s.BaseStat), strconv.Itoa(s.Effort)})
		total += s.BaseStat
	}
	return append(rows, []string{"total", strconv.Itoa(total), ""})
}
