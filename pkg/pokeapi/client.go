package pokeapi

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/pokequiz/pkg/cache"
	pqerrors "github.com/matzehuels/pokequiz/pkg/errors"
	"github.com/matzehuels/pokequiz/pkg/httputil"
	"github.com/matzehuels/pokequiz/pkg/observability"
)

// Client fetches PokeAPI resources through a cache with retries.
//
// A Client is meant for sequential use; it holds no locks of its own and
// relies on the cache backend for any concurrency guarantees.
type Client struct {
	http   *http.Client
	cache  cache.Cache
	cfg    Config
	logger *log.Logger
	sleep  httputil.SleepFunc
}

// NewClient creates a Client. A nil cache disables caching and a nil logger
// discards log output. Unset fields of cfg take their [DefaultConfig] values,
// except Retries and Delay where zero is kept.
func NewClient(c cache.Cache, cfg Config, logger *log.Logger) *Client {
	if c == nil {
		c = cache.NewNullCache()
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}
	cfg = cfg.withDefaults()
	return &Client{
		http:   &http.Client{Timeout: cfg.Timeout},
		cache:  c,
		cfg:    cfg,
		logger: logger,
		sleep:  httputil.Sleep,
	}
}

// Config returns the effective configuration.
func (c *Client) Config() Config { return c.cfg }

// Fetch returns the raw JSON document at url.
//
// A valid cached copy is returned without touching the network. Otherwise the
// URL is requested until it succeeds, fails permanently, or the retry budget
// is spent. The body of a successful response is stored in the cache before
// it is returned. Failures are reported as [*errors.FetchError]; a cancelled
// context is returned as ctx.Err().
func (c *Client) Fetch(ctx context.Context, url string) ([]byte, error) {
	start := time.Now()

	if data, ok := c.lookup(ctx, url); ok {
		observability.Fetch().OnFetchComplete(ctx, url, true, time.Since(start), nil)
		return data, nil
	}

	data, err := c.fetchNetwork(ctx, url)
	observability.Fetch().OnFetchComplete(ctx, url, false, time.Since(start), err)
	return data, err
}

// FetchJSON fetches url and decodes the document into v.
func (c *Client) FetchJSON(ctx context.Context, url string, v any) error {
	data, err := c.Fetch(ctx, url)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(data, v); err != nil {
		return pqerrors.Wrap(pqerrors.ErrCodeInternal, err, "decode %s", url)
	}
	return nil
}

// lookup returns a cached document. Read errors and entries that are not
// valid JSON count as misses.
func (c *Client) lookup(ctx context.Context, url string) ([]byte, bool) {
	backend := c.cache.Name()
	data, ok, err := c.cache.Get(ctx, url)
	switch {
	case err != nil:
		c.logger.Debug("cache read failed, refetching", "url", url, "backend", backend, "err", err)
	case !ok:
	case !json.Valid(data):
		c.logger.Debug("corrupt cache entry, refetching", "url", url, "backend", backend, "bytes", len(data))
	default:
		c.logger.Debug("cache hit", "url", url, "backend", backend)
		observability.Cache().OnCacheHit(ctx, backend)
		return data, true
	}
	observability.Cache().OnCacheMiss(ctx, backend)
	return nil, false
}

func (c *Client) store(ctx context.Context, url string, data []byte) {
	backend := c.cache.Name()
	if err := c.cache.Set(ctx, url, data); err != nil {
		c.logger.Debug("cache write failed", "url", url, "backend", backend, "err", err)
		return
	}
	observability.Cache().OnCacheSet(ctx, backend, len(data))
}

func (c *Client) fetchNetwork(ctx context.Context, url string) ([]byte, error) {
	var (
		body     []byte
		status   int
		attempts int
	)

	policy := c.cfg.policy()
	policy.Sleep = c.sleep
	policy.OnRetry = func(attempt int, delay time.Duration, err error) {
		c.logger.Warn("transient failure, retrying", "url", url, "attempt", attempt+1, "delay", delay, "err", err)
		observability.Fetch().OnRetry(ctx, url, attempt+1, delay, err)
	}

	err := policy.Do(ctx, func(attempt int) error {
		attempts = attempt + 1
		data, code, err := c.get(ctx, url)
		status = code
		body = data
		return err
	})
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil && errors.Is(err, ctxErr) {
			return nil, ctxErr
		}
		var re *httputil.RetryableError
		if errors.As(err, &re) {
			err = re.Err
		}
		return nil, &pqerrors.FetchError{URL: url, Status: status, Attempts: attempts, Err: err}
	}

	c.store(ctx, url, body)

	if c.cfg.Delay > 0 {
		if err := c.sleep(ctx, c.cfg.Delay); err != nil {
			return nil, err
		}
	}
	return body, nil
}

// get performs one attempt. It returns the status code whenever a response
// was received.
func (c *Client) get(ctx context.Context, url string) ([]byte, int, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, 0, pqerrors.Wrap(pqerrors.ErrCodeInvalidInput, err, "bad request URL")
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.cfg.UserAgent)

	hooks := observability.HTTP()
	host, path := req.URL.Host, req.URL.Path
	hooks.OnRequest(ctx, req.Method, host, path)
	start := time.Now()

	resp, err := c.http.Do(req)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, 0, ctxErr
		}
		hooks.OnError(ctx, req.Method, host, path, err)
		return nil, 0, &httputil.RetryableError{Err: fmt.Errorf("%w: %w", ErrNetwork, err)}
	}
	defer resp.Body.Close()
	hooks.OnResponse(ctx, req.Method, host, path, resp.StatusCode, time.Since(start))

	if err := checkStatus(resp.StatusCode); err != nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil, resp.StatusCode, err
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return nil, resp.StatusCode, ctxErr
		}
		return nil, resp.StatusCode, &httputil.RetryableError{Err: fmt.Errorf("%w: read body: %w", ErrNetwork, err)}
	}
	if !json.Valid(data) {
		return nil, resp.StatusCode, ErrInvalidJSON
	}
	return data, resp.StatusCode, nil
}

func checkStatus(code int) error {
	switch {
	case code == http.StatusOK:
		return nil
	case code == http.StatusNotFound:
		return fmt.Errorf("%w: %w", ErrNotFound, &StatusError{Code: code})
	case isTransientStatus(code):
		return &httputil.RetryableError{Err: &StatusError{Code: code}}
	default:
		return &StatusError{Code: code}
	}
}
