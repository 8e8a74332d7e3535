package cli

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	pqerrors "github.com/matzehuels/pokequiz/pkg/errors"
	"github.com/matzehuels/pokequiz/pkg/pokeapi"
)

// listCommand creates the "list" command.
func (c *CLI) listCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list <category>",
		Short: "List every resource name of a category",
		Long: `List every resource name of a category, following pagination.

Use --limit or --fast to stop after a number of names.`,
		Example: `  pokequiz list pokemon-species --fast
  pokequiz list type`,
		Args:      cobra.ExactArgs(1),
		ValidArgs: pqerrors.Categories,
		RunE: func(cmd *cobra.Command, args []string) error {
			items, err := c.collect(cmd, args[0])
			if err != nil {
				return err
			}
			names := make([]string, len(items))
			for i, it := range items {
				names[i] = it.Name
			}
			printLines(cmd.OutOrStdout(), names)
			return nil
		},
	}
}

// browseCommand creates the "browse" command.
func (c *CLI) browseCommand() *cobra.Command {
	var raw bool

	cmd := &cobra.Command{
		Use:       "browse <category>",
		Short:     "Pick a resource interactively and print its JSON",
		Args:      cobra.ExactArgs(1),
		ValidArgs: pqerrors.Categories,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			items, err := c.collect(cmd, args[0])
			if err != nil {
				return err
			}
			if len(items) == 0 {
				printWarning(cmd.ErrOrStderr(), "No %s found", args[0])
				return nil
			}

			p := tea.NewProgram(NewNameListModel(args[0], items),
				tea.WithContext(ctx),
				tea.WithInput(cmd.InOrStdin()),
				tea.WithOutput(cmd.ErrOrStderr()))
			final, err := p.Run()
			if err != nil {
				return err
			}
			m, ok := final.(NameListModel)
			if !ok || m.Selected == nil {
				printDetail(cmd.ErrOrStderr(), "No selection made")
				return nil
			}

			client, err := c.newClient(ctx)
			if err != nil {
				return err
			}
			data, err := client.Fetch(ctx, m.Selected.URL)
			if err != nil {
				return err
			}
			return writeJSON(cmd.OutOrStdout(), data, raw)
		},
	}

	cmd.Flags().BoolVar(&raw, "raw", false, "print the document as received, without indentation")
	return cmd
}

// collect walks a category's pagination up to the configured limit.
func (c *CLI) collect(cmd *cobra.Command, category string) ([]pokeapi.NamedResource, error) {
	if err := pqerrors.ValidateIdentifier(category); err != nil {
		return nil, err
	}
	ctx := cmd.Context()
	client, err := c.newClient(ctx)
	if err != nil {
		return nil, err
	}

	prog := newProgress(loggerFromContext(ctx))
	spinner := startSpinner(ctx, cmd.ErrOrStderr(), fmt.Sprintf("Collecting %s...", category))
	items, err := client.FetchAllLimit(ctx, client.Endpoint(category, ""), c.settings.Limit)
	spinner.Stop()
	if err != nil {
		return nil, err
	}
	prog.done(fmt.Sprintf("Collected %d %s", len(items), category))
	return items, nil
}
