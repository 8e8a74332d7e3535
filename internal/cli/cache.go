package cli

import (
	"fmt"
	"net/url"
	"path/filepath"
	"strconv"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/matzehuels/pokequiz/pkg/cache"
	pqerrors "github.com/matzehuels/pokequiz/pkg/errors"
)

// cacheCommand creates the cache management command.
func (c *CLI) cacheCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cache",
		Short: "Manage the HTTP response cache",
	}

	cmd.AddCommand(c.cacheClearCommand())
	cmd.AddCommand(c.cachePathCommand())
	cmd.AddCommand(c.cacheStatsCommand())

	return cmd
}

// cacheClearCommand creates the "cache clear" subcommand.
func (c *CLI) cacheClearCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Clear all cached HTTP responses",
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := c.openCache(cmd.Context())
			if err != nil {
				return err
			}
			cl, ok := store.(cache.Clearer)
			if !ok {
				printInfo(cmd.OutOrStdout(), "The %s cache holds nothing to clear", store.Name())
				return nil
			}
			count, err := cl.Clear(cmd.Context())
			if err != nil {
				return err
			}
			printSuccess(cmd.OutOrStdout(), "Cleared %d cached entries", count)
			printDetail(cmd.OutOrStdout(), "Location: %s", c.cacheLocation())
			return nil
		},
	}
}

// cachePathCommand creates the "cache path" subcommand.
func (c *CLI) cachePathCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "path",
		Short: "Print where the cache is stored",
		RunE: func(cmd *cobra.Command, args []string) error {
			loc := c.cacheLocation()
			if loc == "" {
				return pqerrors.New(pqerrors.ErrCodeUnsupported, "the %s cache has no location", c.settings.CacheOptions().Backend)
			}
			fmt.Fprintln(cmd.OutOrStdout(), loc)
			return nil
		},
	}
}

// cacheStatsCommand creates the "cache stats" subcommand.
func (c *CLI) cacheStatsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Show the number and size of cached responses",
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := c.openCache(cmd.Context())
			if err != nil {
				return err
			}
			st, ok := store.(cache.Statser)
			if !ok {
				printInfo(cmd.OutOrStdout(), "The %s cache keeps no statistics", store.Name())
				return nil
			}
			s, err := st.Stats(cmd.Context())
			if err != nil {
				return err
			}
			printTable(cmd.OutOrStdout(),
				[]string{"Backend", "Location", "Entries", "Size"},
				[][]string{{
					store.Name(),
					c.cacheLocation(),
					strconv.Itoa(s.Entries),
					humanize.Bytes(uint64(max(s.Bytes, 0))),
				}})
			return nil
		},
	}
}

// cacheLocation describes where the configured backend keeps its data.
// In-process backends have no location. Passwords in DSNs are masked.
func (c *CLI) cacheLocation() string {
	opts := c.settings.CacheOptions()
	dir := opts.Dir
	if dir == "" {
		dir = cache.DefaultDir
	}
	switch opts.Backend {
	case "", cache.BackendFile:
		return dir
	case cache.BackendSQLite:
		return filepath.Join(dir, cache.SQLiteFile)
	case cache.BackendRedis, cache.BackendMongo:
		if u, err := url.Parse(opts.DSN); err == nil {
			return u.Redacted()
		}
		return opts.Backend
	default:
		return ""
	}
}
