package cli

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/spf13/cobra"

	"github.com/matzehuels/pokequiz/pkg/cache"
	pqerrors "github.com/matzehuels/pokequiz/pkg/errors"
	"github.com/matzehuels/pokequiz/pkg/pokeapi"
)

// defaultConfigFile is read from the working directory when --config is not given.
const defaultConfigFile = appName + ".toml"

// fastLimit is the item cap applied by --fast.
const fastLimit = 200

// Environment variables.
const (
	envBaseURL     = "POKEAPI_BASE"
	envSleep       = "SLEEP_BETWEEN_CALLS"
	envRetries     = "POKEQUIZ_RETRIES"
	envBackoff     = "POKEQUIZ_BACKOFF"
	envCache       = "POKEQUIZ_CACHE"
	envCacheDir    = "POKEQUIZ_CACHE_DIR"
	envCacheDSN    = "POKEQUIZ_CACHE_DSN"
	envMetricsFile = "POKEQUIZ_METRICS_FILE"
)

// Settings is the merged configuration of one invocation. Sources are
// applied in order: defaults, TOML file, environment, flags.
type Settings struct {
	BaseURL     string        `toml:"base_url"`
	Sleep       float64       `toml:"sleep"`
	Retries     int           `toml:"retries"`
	Backoff     float64       `toml:"backoff"`
	Timeout     duration      `toml:"timeout"`
	Limit       int           `toml:"limit"`
	MetricsFile string        `toml:"metrics_file"`
	Cache       CacheSettings `toml:"cache"`

	NoCache bool `toml:"-"`
}

// CacheSettings selects and locates the cache backend.
type CacheSettings struct {
	Backend string `toml:"backend"`
	Dir     string `toml:"dir"`
	DSN     string `toml:"dsn"`
}

// duration reads Go duration strings such as "30s" from TOML.
type duration struct{ time.Duration }

func (d *duration) UnmarshalText(b []byte) error {
	v, err := time.ParseDuration(string(b))
	if err != nil {
		return err
	}
	d.Duration = v
	return nil
}

func defaultSettings() Settings {
	cfg := pokeapi.DefaultConfig()
	return Settings{
		BaseURL: cfg.BaseURL,
		Retries: cfg.Retries,
		Backoff: cfg.Backoff,
		Timeout: duration{cfg.Timeout},
		Cache: CacheSettings{
			Backend: cache.BackendFile,
			Dir:     cache.DefaultDir,
		},
	}
}

// globalFlags are the persistent flags shared by every command.
type globalFlags struct {
	verbose     bool
	configFile  string
	baseURL     string
	sleep       float64
	retries     int
	cacheName   string
	cacheDir    string
	noCache     bool
	limit       int
	fast        bool
	metricsFile string
}

func (f *globalFlags) register(cmd *cobra.Command) {
	pf := cmd.PersistentFlags()
	pf.BoolVarP(&f.verbose, "verbose", "v", false, "enable verbose logging")
	pf.StringVar(&f.configFile, "config", "", "config file (default ./"+defaultConfigFile+" if present)")
	pf.StringVar(&f.baseURL, "base-url", "", "API base URL")
	pf.Float64Var(&f.sleep, "sleep", 0, "pause after each network request, in seconds")
	pf.IntVar(&f.retries, "retries", 0, "retries for transient failures")
	pf.StringVar(&f.cacheName, "cache", "", "cache backend: "+strings.Join(cache.Backends, ", "))
	pf.StringVar(&f.cacheDir, "cache-dir", "", "cache directory for the file and sqlite backends")
	pf.BoolVar(&f.noCache, "no-cache", false, "disable the response cache")
	pf.IntVar(&f.limit, "limit", 0, "maximum number of items to collect from collections")
	pf.BoolVar(&f.fast, "fast", false, fmt.Sprintf("shorthand for --limit %d", fastLimit))
	pf.StringVar(&f.metricsFile, "metrics-file", "", "write Prometheus metrics to this file on exit")
}

// loadSettings merges every configuration source.
func loadSettings(cmd *cobra.Command, f *globalFlags, getenv func(string) string) (Settings, error) {
	s := defaultSettings()

	path, required := f.configFile, true
	if path == "" {
		path, required = defaultConfigFile, false
	}
	if err := loadFile(path, required, &s); err != nil {
		return s, err
	}
	if err := applyEnv(&s, getenv); err != nil {
		return s, err
	}
	f.apply(cmd, &s)
	return s, s.Validate()
}

func loadFile(path string, required bool, s *Settings) error {
	md, err := toml.DecodeFile(path, s)
	if errors.Is(err, fs.ErrNotExist) && !required {
		return nil
	}
	if err != nil {
		return pqerrors.Wrap(pqerrors.ErrCodeInvalidConfig, err, "read %s", path)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return pqerrors.New(pqerrors.ErrCodeInvalidConfig, "%s: unknown key %q", path, undecoded[0].String())
	}
	return nil
}

func applyEnv(s *Settings, getenv func(string) string) error {
	str := func(key string, dst *string) {
		if v := getenv(key); v != "" {
			*dst = v
		}
	}
	str(envBaseURL, &s.BaseURL)
	str(envCache, &s.Cache.Backend)
	str(envCacheDir, &s.Cache.Dir)
	str(envCacheDSN, &s.Cache.DSN)
	str(envMetricsFile, &s.MetricsFile)

	if v := getenv(envSleep); v != "" {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return pqerrors.Wrap(pqerrors.ErrCodeInvalidConfig, err, "%s", envSleep)
		}
		s.Sleep = f
	}
	if v := getenv(envRetries); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return pqerrors.Wrap(pqerrors.ErrCodeInvalidConfig, err, "%s", envRetries)
		}
		s.Retries = n
	}
	if v := getenv(envBackoff); v != "" {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return pqerrors.Wrap(pqerrors.ErrCodeInvalidConfig, err, "%s", envBackoff)
		}
		s.Backoff = f
	}
	return nil
}

// apply copies the flags the user actually set.
func (f *globalFlags) apply(cmd *cobra.Command, s *Settings) {
	changed := func(name string) bool {
		fl := cmd.Flags().Lookup(name)
		return fl != nil && fl.Changed
	}
	if changed("base-url") {
		s.BaseURL = f.baseURL
	}
	if changed("sleep") {
		s.Sleep = f.sleep
	}
	if changed("retries") {
		s.Retries = f.retries
	}
	if changed("cache") {
		s.Cache.Backend = f.cacheName
	}
	if changed("cache-dir") {
		s.Cache.Dir = f.cacheDir
	}
	if changed("limit") {
		s.Limit = f.limit
	}
	if changed("metrics-file") {
		s.MetricsFile = f.metricsFile
	}
	if f.fast && s.Limit == 0 {
		s.Limit = fastLimit
	}
	s.NoCache = f.noCache
}

// Validate checks the merged settings.
func (s Settings) Validate() error {
	if err := s.ClientConfig().Validate(); err != nil {
		return err
	}
	if s.Limit < 0 {
		return pqerrors.New(pqerrors.ErrCodeInvalidConfig, "limit must not be negative, got %d", s.Limit)
	}
	if s.NoCache {
		return nil
	}
	switch s.Cache.Backend {
	case cache.BackendRedis, cache.BackendMongo:
		if s.Cache.DSN == "" {
			return pqerrors.New(pqerrors.ErrCodeInvalidConfig, "cache backend %q needs %s or cache.dsn", s.Cache.Backend, envCacheDSN)
		}
	case cache.BackendFile, cache.BackendMemory, cache.BackendSQLite, cache.BackendNone:
	default:
		return pqerrors.New(pqerrors.ErrCodeInvalidConfig, "unknown cache backend %q (want one of %s)",
			s.Cache.Backend, strings.Join(cache.Backends, ", "))
	}
	return nil
}

// ClientConfig converts the settings to a client configuration.
func (s Settings) ClientConfig() pokeapi.Config {
	cfg := pokeapi.DefaultConfig()
	cfg.BaseURL = s.BaseURL
	cfg.Delay = time.Duration(s.Sleep * float64(time.Second))
	cfg.Retries = s.Retries
	cfg.Backoff = s.Backoff
	cfg.Timeout = s.Timeout.Duration
	return cfg
}

// CacheOptions returns the options for [cache.Open].
func (s Settings) CacheOptions() cache.Options {
	if s.NoCache {
		return cache.Options{Backend: cache.BackendNone}
	}
	return cache.Options{Backend: s.Cache.Backend, Dir: s.Cache.Dir, DSN: s.Cache.DSN}
}

// getenv is replaced in tests.
var getenv = os.Getenv
