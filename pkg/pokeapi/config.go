package pokeapi

import (
	"strings"
	"time"

	pqerrors "github.com/matzehuels/pokequiz/pkg/errors"
	"github.com/matzehuels/pokequiz/pkg/httputil"
)

// Defaults for [Config].
const (
	DefaultBaseURL   = "https://pokeapi.co/api/v2"
	DefaultTimeout   = 30 * time.Second
	DefaultUserAgent = "pokequiz"
)

// Config controls how a [Client] talks to the API.
type Config struct {
	// BaseURL is the API root, e.g. "https://pokeapi.co/api/v2".
	BaseURL string
	// Delay is slept after every successful network fetch. Cache hits do not sleep.
	Delay time.Duration
	// Retries is the number of extra attempts after a transient failure.
	Retries int
	// Backoff is the exponential backoff base in seconds.
	Backoff float64
	// Timeout bounds a single HTTP attempt.
	Timeout time.Duration
	// UserAgent is sent with every request.
	UserAgent string
}

// DefaultConfig returns the configuration used against the public API.
func DefaultConfig() Config {
	return Config{
		BaseURL:   DefaultBaseURL,
		Retries:   httputil.DefaultRetries,
		Backoff:   httputil.DefaultBase,
		Timeout:   DefaultTimeout,
		UserAgent: DefaultUserAgent,
	}
}

// Validate reports the first invalid setting.
func (c Config) Validate() error {
	if err := pqerrors.ValidateURL(c.BaseURL); err != nil {
		return pqerrors.Wrap(pqerrors.ErrCodeInvalidConfig, err, "base URL")
	}
	if c.Retries < 0 {
		return pqerrors.New(pqerrors.ErrCodeInvalidConfig, "retries must not be negative, got %d", c.Retries)
	}
	if c.Backoff <= 0 {
		return pqerrors.New(pqerrors.ErrCodeInvalidConfig, "backoff must be positive, got %g", c.Backoff)
	}
	if c.Delay < 0 {
		return pqerrors.New(pqerrors.ErrCodeInvalidConfig, "sleep must not be negative, got %s", c.Delay)
	}
	if c.Timeout < 0 {
		return pqerrors.New(pqerrors.ErrCodeInvalidConfig, "timeout must not be negative, got %s", c.Timeout)
	}
	return nil
}

// withDefaults fills unset fields. Retries and Delay are left alone since
// zero is meaningful for both.
func (c Config) withDefaults() Config {
	d := DefaultConfig()
	if c.BaseURL == "" {
		c.BaseURL = d.BaseURL
	}
	if c.Backoff <= 0 {
		c.Backoff = d.Backoff
	}
	if c.Timeout <= 0 {
		c.Timeout = d.Timeout
	}
	if c.UserAgent == "" {
		c.UserAgent = d.UserAgent
	}
	c.Retries = max(c.Retries, 0)
	c.BaseURL = strings.TrimRight(c.BaseURL, "/")
	return c
}

// policy builds the retry policy for this configuration.
func (c Config) policy() httputil.Policy {
	return httputil.Policy{
		Retries: c.Retries,
		Base:    c.Backoff,
		Offset:  httputil.DefaultOffset,
	}
}
