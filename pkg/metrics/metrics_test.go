package metrics

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"

	"github.com/matzehuels/pokequiz/internal/pokeapitest"
	"github.com/matzehuels/pokequiz/pkg/cache"
	"github.com/matzehuels/pokequiz/pkg/observability"
	"github.com/matzehuels/pokequiz/pkg/pokeapi"
)

func TestCollectorCounts(t *testing.T) {
	c := New("test")
	ctx := context.Background()

	c.OnCacheHit(ctx, "file")
	c.OnCacheHit(ctx, "file")
	c.OnCacheMiss(ctx, "file")
	c.OnCacheSet(ctx, "file", 512)
	c.OnRetry(ctx, "https://pokeapi.co/api/v2/type/fire", 1, time.Second, errors.New("503"))
	c.OnFetchComplete(ctx, "u", true, time.Millisecond, nil)
	c.OnFetchComplete(ctx, "u", false, time.Second, errors.New("boom"))
	c.OnResponse(ctx, "GET", "pokeapi.co", "/api/v2/type/fire", 503, time.Second)
	c.OnError(ctx, "GET", "pokeapi.co", "/api/v2/type/fire", errors.New("timeout"))

	tests := []struct {
		name string
		got  float64
		want float64
	}{
		{"hits", testutil.ToFloat64(c.CacheEvents.WithLabelValues("file", EventHit)), 2},
		{"misses", testutil.ToFloat64(c.CacheEvents.WithLabelValues("file", EventMiss)), 1},
		{"sets", testutil.ToFloat64(c.CacheEvents.WithLabelValues("file", EventSet)), 1},
		{"bytes", testutil.ToFloat64(c.CacheBytes.WithLabelValues("file")), 512},
		{"retries", testutil.ToFloat64(c.Retries), 1},
		{"cached ok", testutil.ToFloat64(c.Fetches.WithLabelValues("cache", "ok")), 1},
		{"network error", testutil.ToFloat64(c.Fetches.WithLabelValues("network", "error")), 1},
		{"http 503", testutil.ToFloat64(c.HTTPRequests.WithLabelValues("GET", "pokeapi.co", "503")), 1},
		{"http errors", testutil.ToFloat64(c.HTTPErrors.WithLabelValues("GET", "pokeapi.co")), 1},
	}
	for _, tt := range tests {
		if tt.got != tt.want {
			t.Errorf("%s = %v, want %v", tt.name, tt.got, tt.want)
		}
	}
}

func TestCollectorWithClient(t *testing.T) {
	c := New("pokequiz")
	c.Install()
	t.Cleanup(observability.Reset)

	srv := pokeapitest.New(t)
	srv.Add("pokemon/25", map[string]any{"name": "pikachu"})

	mem, _ := cache.NewMemoryCache(0)
	client := pokeapi.NewClient(mem, pokeapi.Config{BaseURL: srv.BaseURL()}, nil)
	for range 3 {
		if _, err := client.Pokemon(context.Background(), "25"); err != nil {
			t.Fatalf("Pokemon() error: %v", err)
		}
	}

	if got := testutil.ToFloat64(c.CacheEvents.WithLabelValues("memory", EventHit)); got != 2 {
		t.Errorf("cache hits = %v, want 2", got)
	}
	if got := testutil.ToFloat64(c.CacheEvents.WithLabelValues("memory", EventMiss)); got != 1 {
		t.Errorf("cache misses = %v, want 1", got)
	}
	if got := testutil.CollectAndCount(c.HTTPRequests); got != 1 {
		t.Errorf("http request series = %d, want 1", got)
	}
}

func TestWriteTextfile(t *testing.T) {
	c := New("pokequiz")
	c.OnCacheMiss(context.Background(), "file")

	path := filepath.Join(t.TempDir(), "pokequiz.prom")
	if err := c.WriteTextfile(path); err != nil {
		t.Fatalf("WriteTextfile() error: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	want := `pokequiz_cache_events_total{backend="file",event="miss"} 1`
	if !strings.Contains(string(data), want) {
		t.Errorf("textfile missing %q:\n%s", want, data)
	}
}
