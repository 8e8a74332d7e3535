// Package cli implements the pokequiz command-line interface.
//
// Commands read PokeAPI resources through [pokeapi.Client], print them with
// lipgloss styles and log progress with charmbracelet/log. Configuration is
// merged from a TOML file, the environment and persistent flags before any
// command runs.
package cli

import (
	"context"
	"io"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/matzehuels/pokequiz/pkg/buildinfo"
	"github.com/matzehuels/pokequiz/pkg/cache"
	"github.com/matzehuels/pokequiz/pkg/metrics"
	"github.com/matzehuels/pokequiz/pkg/pokeapi"
)

// =============================================================================
// Constants
// =============================================================================

const (
	// appName is the application name used for files and display.
	appName = "pokequiz"

	// metricsNamespace prefixes every exported metric.
	metricsNamespace = appName
)

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger
	RunID  string

	flags    globalFlags
	settings Settings
	metrics  *metrics.Collector
	cache    cache.Cache
	client   *pokeapi.Client
}

// New creates a new CLI instance with a default logger. Every log line
// carries a short run ID that is unique to this invocation.
func New(w io.Writer, level log.Level) *CLI {
	id := uuid.NewString()
	return &CLI{
		Logger:   newLogger(w, level).With("run", id[:8]),
		RunID:    id,
		settings: defaultSettings(),
		metrics:  metrics.New(metricsNamespace),
	}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// Settings returns the merged configuration. It is only complete once the
// root command's pre-run has executed.
func (c *CLI) Settings() Settings { return c.settings }

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   appName,
		Short: "Pokequiz answers trivia questions from PokeAPI data",
		Long: `Pokequiz reads species, pokemon, types, pokedexes, generations and
evolution chains from the PokeAPI REST service. Responses are cached so
repeated questions never hit the network twice.`,
		Version:           buildinfo.Version,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: c.preRun,
	}

	root.SetVersionTemplate(buildinfo.Template())
	c.flags.register(root)

	root.AddCommand(c.getCommand())
	root.AddCommand(c.listCommand())
	root.AddCommand(c.browseCommand())
	root.AddCommand(c.pokemonCommand())
	root.AddCommand(c.evolutionCommand())
	root.AddCommand(c.rosterCommand())
	root.AddCommand(c.cacheCommand())
	root.AddCommand(c.completionCommand())

	return root
}

func (c *CLI) preRun(cmd *cobra.Command, args []string) error {
	if c.flags.verbose {
		c.SetLogLevel(LogDebug)
	}
	s, err := loadSettings(cmd, &c.flags, getenv)
	if err != nil {
		return err
	}
	c.settings = s
	c.metrics.Install()

	c.Logger.Debug("settings loaded",
		"base_url", s.BaseURL, "cache", s.CacheOptions().Backend,
		"retries", s.Retries, "limit", s.Limit)
	cmd.SetContext(withLogger(cmd.Context(), c.Logger))
	return nil
}

// =============================================================================
// Client Factory
// =============================================================================

// newClient opens the configured cache and returns a client on top of it.
// Both are created once per invocation and released by [CLI.Close].
func (c *CLI) newClient(ctx context.Context) (*pokeapi.Client, error) {
	if c.client != nil {
		return c.client, nil
	}
	store, err := c.openCache(ctx)
	if err != nil {
		return nil, err
	}
	c.client = pokeapi.NewClient(store, c.settings.ClientConfig(), c.Logger)
	return c.client, nil
}

func (c *CLI) openCache(ctx context.Context) (cache.Cache, error) {
	if c.cache != nil {
		return c.cache, nil
	}
	store, err := cache.Open(ctx, c.settings.CacheOptions())
	if err != nil {
		return nil, err
	}
	c.Logger.Debug("cache opened", "backend", store.Name())
	c.cache = store
	return store, nil
}

// Close writes the metrics textfile, if one is configured, and releases the
// cache. It is safe to call more than once.
func (c *CLI) Close() error {
	var err error
	if path := c.settings.MetricsFile; path != "" {
		if werr := c.metrics.WriteTextfile(path); werr != nil {
			err = werr
		} else {
			c.Logger.Debug("metrics written", "path", path)
		}
	}
	if c.cache != nil {
		if cerr := c.cache.Close(); cerr != nil && err == nil {
			err = cerr
		}
		c.cache, c.client = nil, nil
	}
	return err
}
