package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	pqerrors "github.com/matzehuels/pokequiz/pkg/errors"
	"github.com/matzehuels/pokequiz/pkg/evolution"
	"github.com/matzehuels/pokequiz/pkg/pokeapi"
)

// Output formats of the evolution command.
const (
	formatText = "text"
	formatDOT  = "dot"
	formatSVG  = "svg"
)

// evolutionCommand creates the "evolution" command.
func (c *CLI) evolutionCommand() *cobra.Command {
	var (
		format string
		output string
		all    bool
	)

	cmd := &cobra.Command{
		Use:   "evolution <species>",
		Short: "Show the evolution path of a species",
		Long: `Show the evolution path through a species, with the conditions of each
step. --all lists every path of the species' chain. The dot and svg formats
draw the whole chain as a graph.`,
		Example: `  pokequiz evolution charmander
  pokequiz evolution eevee --all
  pokequiz evolution eevee --format svg -o eevee.svg`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			species := args[0]
			if err := pqerrors.ValidateNameOrURL(species); err != nil {
				return err
			}
			switch format {
			case formatText, formatDOT, formatSVG:
			default:
				return pqerrors.New(pqerrors.ErrCodeInvalidFormat, "unknown format %q (want text, dot or svg)", format)
			}

			ctx := cmd.Context()
			client, err := c.newClient(ctx)
			if err != nil {
				return err
			}
			chain, err := client.EvolutionChainBySpecies(ctx, species)
			if err != nil {
				return err
			}

			var data []byte
			switch format {
			case formatText:
				text, err := evolutionText(chain, species, all)
				if err != nil {
					return err
				}
				data = []byte(text)
			case formatDOT:
				data = []byte(evolution.ToDOT(chain))
			case formatSVG:
				if data, err = evolution.RenderSVG(ctx, evolution.ToDOT(chain)); err != nil {
					return err
				}
			}
			return writeOutput(cmd, output, data)
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", formatText, "output format: text, dot or svg")
	cmd.Flags().StringVarP(&output, "output", "o", "", "write to this file instead of stdout")
	cmd.Flags().BoolVar(&all, "all", false, "list every path of the chain")
	return cmd
}

// evolutionText renders the path through species, or every path with all.
// Species given as a URL are matched by the chain's own names, so all paths
// are shown for them.
func evolutionText(chain *pokeapi.EvolutionChain, species string, all bool) (string, error) {
	paths := evolution.Paths(chain)
	if !all && !pokeapi.IsURL(species) {
		p := evolution.PathContaining(paths, species)
		if p == nil {
			return "", &pqerrors.MissingDataError{
				Resource: fmt.Sprintf("%s/%d", pokeapi.CategoryEvolutionChain, chain.ID),
				Field:    "species " + species,
			}
		}
		paths = []evolution.Path{p}
	}

	var b strings.Builder
	for _, p := range paths {
		b.WriteString(p.String())
		b.WriteByte('\n')
	}
	return b.String(), nil
}

// writeOutput writes data to path, or to the command's stdout if path is empty.
func writeOutput(cmd *cobra.Command, path string, data []byte) error {
	if path == "" {
		_, err := cmd.OutOrStdout().Write(data)
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return err
	}
	printSuccess(cmd.ErrOrStderr(), "Wrote %d bytes", len(data))
	printFile(cmd.ErrOrStderr(), path)
	return nil
}
