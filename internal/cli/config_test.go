package cli

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/cobra"

	"github.com/matzehuels/pokequiz/pkg/cache"
	pqerrors "github.com/matzehuels/pokequiz/pkg/errors"
	"github.com/matzehuels/pokequiz/pkg/pokeapi"
)

func parseFlags(t *testing.T, args ...string) (*cobra.Command, *globalFlags) {
	t.Helper()
	var f globalFlags
	cmd := &cobra.Command{Use: "test"}
	f.register(cmd)
	if err := cmd.ParseFlags(args); err != nil {
		t.Fatalf("ParseFlags(%v): %v", args, err)
	}
	return cmd, &f
}

func envMap(m map[string]string) func(string) string {
	return func(k string) string { return m[k] }
}

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "pokequiz.toml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadSettingsDefaults(t *testing.T) {
	cmd, f := parseFlags(t)
	s, err := loadSettings(cmd, f, envMap(nil))
	if err != nil {
		t.Fatalf("loadSettings: %v", err)
	}

	if s.BaseURL != pokeapi.DefaultBaseURL {
		t.Errorf("BaseURL = %q, want %q", s.BaseURL, pokeapi.DefaultBaseURL)
	}
	if s.Retries != 4 || s.Backoff != 0.8 {
		t.Errorf("Retries/Backoff = %d/%v, want 4/0.8", s.Retries, s.Backoff)
	}
	if s.Sleep != 0 || s.Limit != 0 {
		t.Errorf("Sleep/Limit = %v/%d, want 0/0", s.Sleep, s.Limit)
	}
	if s.Cache.Backend != cache.BackendFile || s.Cache.Dir != cache.DefaultDir {
		t.Errorf("Cache = %+v, want file in %s", s.Cache, cache.DefaultDir)
	}
}

func TestLoadSettingsFile(t *testing.T) {
	path := writeConfig(t, `
base_url = "http://localhost:9000/api/v2"
sleep = 0.25
retries = 2
backoff = 1.5
timeout = "5s"
limit = 40
metrics_file = "/tmp/pokequiz.prom"

[cache]
backend = "sqlite"
dir = "/var/cache/pokequiz"
`)
	cmd, f := parseFlags(t, "--config", path)
	s, err := loadSettings(cmd, f, envMap(nil))
	if err != nil {
		t.Fatalf("loadSettings: %v", err)
	}

	cfg := s.ClientConfig()
	if cfg.BaseURL != "http://localhost:9000/api/v2" {
		t.Errorf("BaseURL = %q", cfg.BaseURL)
	}
	if cfg.Delay != 250*time.Millisecond {
		t.Errorf("Delay = %v, want 250ms", cfg.Delay)
	}
	if cfg.Retries != 2 || cfg.Backoff != 1.5 || cfg.Timeout != 5*time.Second {
		t.Errorf("ClientConfig = %+v", cfg)
	}
	if s.Limit != 40 || s.MetricsFile != "/tmp/pokequiz.prom" {
		t.Errorf("Limit/MetricsFile = %d/%q", s.Limit, s.MetricsFile)
	}
	opts := s.CacheOptions()
	if opts.Backend != cache.BackendSQLite || opts.Dir != "/var/cache/pokequiz" {
		t.Errorf("CacheOptions = %+v", opts)
	}
}

func TestLoadSettingsPrecedence(t *testing.T) {
	path := writeConfig(t, `
base_url = "http://file/api/v2"
sleep = 1.0
retries = 1
`)
	env := envMap(map[string]string{
		envBaseURL: "http://env/api/v2",
		envSleep:   "0.5",
	})

	tests := []struct {
		name        string
		args        []string
		wantBaseURL string
		wantSleep   float64
		wantRetries int
	}{
		{"env over file", nil, "http://env/api/v2", 0.5, 1},
		{"flag over env", []string{"--base-url", "http://flag/api/v2", "--retries", "7"}, "http://flag/api/v2", 0.5, 7},
		{"zero flag still wins", []string{"--sleep", "0"}, "http://env/api/v2", 0, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd, f := parseFlags(t, append([]string{"--config", path}, tt.args...)...)
			s, err := loadSettings(cmd, f, env)
			if err != nil {
				t.Fatalf("loadSettings: %v", err)
			}
			if s.BaseURL != tt.wantBaseURL {
				t.Errorf("BaseURL = %q, want %q", s.BaseURL, tt.wantBaseURL)
			}
			if s.Sleep != tt.wantSleep {
				t.Errorf("Sleep = %v, want %v", s.Sleep, tt.wantSleep)
			}
			if s.Retries != tt.wantRetries {
				t.Errorf("Retries = %d, want %d", s.Retries, tt.wantRetries)
			}
		})
	}
}

func TestLoadSettingsEnv(t *testing.T) {
	cmd, f := parseFlags(t)
	s, err := loadSettings(cmd, f, envMap(map[string]string{
		envRetries:     "0",
		envBackoff:     "2",
		envCache:       "redis",
		envCacheDSN:    "redis://localhost:6379/0",
		envMetricsFile: "metrics.prom",
	}))
	if err != nil {
		t.Fatalf("loadSettings: %v", err)
	}
	if s.Retries != 0 || s.Backoff != 2 {
		t.Errorf("Retries/Backoff = %d/%v, want 0/2", s.Retries, s.Backoff)
	}
	if s.Cache.Backend != cache.BackendRedis || s.Cache.DSN != "redis://localhost:6379/0" {
		t.Errorf("Cache = %+v", s.Cache)
	}
	if s.MetricsFile != "metrics.prom" {
		t.Errorf("MetricsFile = %q", s.MetricsFile)
	}
}

func TestLoadSettingsLimitFlags(t *testing.T) {
	tests := []struct {
		args []string
		want int
	}{
		{nil, 0},
		{[]string{"--fast"}, fastLimit},
		{[]string{"--limit", "10"}, 10},
		{[]string{"--limit", "10", "--fast"}, 10},
	}
	for _, tt := range tests {
		cmd, f := parseFlags(t, tt.args...)
		s, err := loadSettings(cmd, f, envMap(nil))
		if err != nil {
			t.Fatalf("loadSettings(%v): %v", tt.args, err)
		}
		if s.Limit != tt.want {
			t.Errorf("loadSettings(%v).Limit = %d, want %d", tt.args, s.Limit, tt.want)
		}
	}
}

func TestLoadSettingsNoCache(t *testing.T) {
	cmd, f := parseFlags(t, "--cache", "sqlite", "--no-cache")
	s, err := loadSettings(cmd, f, envMap(nil))
	if err != nil {
		t.Fatalf("loadSettings: %v", err)
	}
	if got := s.CacheOptions().Backend; got != cache.BackendNone {
		t.Errorf("CacheOptions().Backend = %q, want none", got)
	}
}

func TestLoadSettingsErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
		env  map[string]string
		file string
	}{
		{name: "unknown key", file: "colour = \"red\"\n"},
		{name: "bad toml", file: "retries = [\n"},
		{name: "bad duration", file: "timeout = \"soon\"\n"},
		{name: "missing config file", args: []string{"--config", "/nonexistent/pokequiz.toml"}},
		{name: "bad sleep env", env: map[string]string{envSleep: "abc"}},
		{name: "bad retries env", env: map[string]string{envRetries: "many"}},
		{name: "negative retries", args: []string{"--retries=-1"}},
		{name: "negative sleep", args: []string{"--sleep=-2"}},
		{name: "negative limit", args: []string{"--limit=-5"}},
		{name: "unknown backend", args: []string{"--cache", "etcd"}},
		{name: "redis without dsn", args: []string{"--cache", "redis"}},
		{name: "bad base url", args: []string{"--base-url", "ftp://pokeapi.co"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			args := tt.args
			if tt.file != "" {
				args = append([]string{"--config", writeConfig(t, tt.file)}, args...)
			}
			cmd, f := parseFlags(t, args...)
			_, err := loadSettings(cmd, f, envMap(tt.env))
			if err == nil {
				t.Fatal("expected an error")
			}
			if !pqerrors.Is(err, pqerrors.ErrCodeInvalidConfig) {
				t.Errorf("error code = %q, want %q (err: %v)", pqerrors.GetCode(err), pqerrors.ErrCodeInvalidConfig, err)
			}
		})
	}
}
