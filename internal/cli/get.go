package cli

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	pqerrors "github.com/matzehuels/pokequiz/pkg/errors"
	"github.com/matzehuels/pokequiz/pkg/pokeapi"
)

// getCommand creates the "get" command.
func (c *CLI) getCommand() *cobra.Command {
	var raw bool

	cmd := &cobra.Command{
		Use:   "get <path-or-url>",
		Short: "Print the JSON document of any resource",
		Long: `Print the JSON document of any resource.

The argument is either an absolute URL or a path below the API base URL,
such as "pokemon/pikachu" or "evolution-chain/1".`,
		Example: `  pokequiz get pokemon-species/eevee
  pokequiz get https://pokeapi.co/api/v2/type/fire/ --raw`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			client, err := c.newClient(ctx)
			if err != nil {
				return err
			}
			url, err := resourceURL(client, args[0])
			if err != nil {
				return err
			}
			data, err := client.Fetch(ctx, url)
			if err != nil {
				return err
			}
			return writeJSON(cmd.OutOrStdout(), data, raw)
		},
	}

	cmd.Flags().BoolVar(&raw, "raw", false, "print the document as received, without indentation")
	return cmd
}

// resourceURL turns a URL or an API-relative path into an absolute URL.
// Every path segment must be a valid identifier.
func resourceURL(client *pokeapi.Client, arg string) (string, error) {
	if pokeapi.IsURL(arg) {
		if err := pqerrors.ValidateURL(arg); err != nil {
			return "", err
		}
		return arg, nil
	}
	path := strings.Trim(arg, "/")
	if path == "" {
		return "", pqerrors.New(pqerrors.ErrCodeInvalidInput, "empty resource path")
	}
	segments := strings.Split(path, "/")
	for _, seg := range segments {
		if err := pqerrors.ValidateIdentifier(seg); err != nil {
			return "", err
		}
	}
	return client.Endpoint(segments[0], strings.Join(segments[1:], "/")), nil
}

// writeJSON prints a JSON document, indented unless raw is set.
func writeJSON(w io.Writer, data []byte, raw bool) error {
	if raw {
		_, err := fmt.Fprintf(w, "%s\n", bytes.TrimRight(data, "\n"))
		return err
	}
	var buf bytes.Buffer
	if err := json.Indent(&buf, data, "", "  "); err != nil {
		return pqerrors.Wrap(pqerrors.ErrCodeInvalidFormat, err, "indent response")
	}
	buf.WriteByte('\n')
	_, err := buf.WriteTo(w)
	return err
}
