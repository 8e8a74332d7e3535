package pokeapi

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/matzehuels/pokequiz/internal/pokeapitest"
)

func names(n int, prefix string) []string {
	out := make([]string, n)
	for i := range out {
		out[i] = fmt.Sprintf("%s-%d", prefix, i)
	}
	return out
}

func TestFetchAllFollowsNext(t *testing.T) {
	srv := pokeapitest.New(t)
	want := names(12, "species")
	srv.AddList("pokemon-species", want, 4)

	client, _ := testClient(t, nil, Config{BaseURL: srv.BaseURL()})
	items, err := client.FetchAll(context.Background(), client.Endpoint(CategorySpecies, ""))
	if err != nil {
		t.Fatalf("FetchAll() error: %v", err)
	}

	if len(items) != len(want) {
		t.Fatalf("FetchAll() returned %d items, want %d", len(items), len(want))
	}
	for i, it := range items {
		if it.Name != want[i] {
			t.Errorf("items[%d] = %q, want %q", i, it.Name, want[i])
		}
	}
	if got := srv.TotalHits(); got != 3 {
		t.Errorf("page requests = %d, want 3", got)
	}
}

func TestFetchAllSinglePage(t *testing.T) {
	srv := pokeapitest.New(t)
	srv.AddList("type", []string{"normal", "fire"}, 0)

	client, _ := testClient(t, nil, Config{BaseURL: srv.BaseURL()})
	items, err := client.FetchAll(context.Background(), client.Endpoint(CategoryType, ""))
	if err != nil {
		t.Fatalf("FetchAll() error: %v", err)
	}
	if len(items) != 2 {
		t.Errorf("FetchAll() = %v, want 2 items", items)
	}
}

func TestFetchAllDoesNotDeduplicate(t *testing.T) {
	srv := pokeapitest.New(t)
	srv.AddList("pokemon", []string{"ditto", "ditto", "mew"}, 2)

	client, _ := testClient(t, nil, Config{BaseURL: srv.BaseURL()})
	items, err := client.FetchAll(context.Background(), client.Endpoint(CategoryPokemon, ""))
	if err != nil {
		t.Fatalf("FetchAll() error: %v", err)
	}
	if len(items) != 3 {
		t.Errorf("FetchAll() returned %d items, want 3", len(items))
	}
}

func TestFetchAllPageFailure(t *testing.T) {
	srv := pokeapitest.New(t)
	srv.AddList("pokemon-species", names(6, "s"), 2)
	srv.FailNext("pokemon-species/?offset=2&limit=2", 404)

	client, _ := testClient(t, nil, Config{BaseURL: srv.BaseURL()})
	items, err := client.FetchAll(context.Background(), client.Endpoint(CategorySpecies, ""))
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("FetchAll() error = %v, want ErrNotFound", err)
	}
	if items != nil {
		t.Errorf("FetchAll() returned partial results: %v", items)
	}
}

func TestFetchAllLimit(t *testing.T) {
	srv := pokeapitest.New(t)
	srv.AddList("pokemon-species", names(12, "s"), 4)

	client, _ := testClient(t, nil, Config{BaseURL: srv.BaseURL()})
	items, err := client.FetchAllLimit(context.Background(), client.Endpoint(CategorySpecies, ""), 5)
	if err != nil {
		t.Fatalf("FetchAllLimit() error: %v", err)
	}
	if len(items) != 5 || items[4].Name != "s-4" {
		t.Errorf("FetchAllLimit() = %v, want first 5 items", items)
	}
	if got := srv.TotalHits(); got != 2 {
		t.Errorf("page requests = %d, want 2", got)
	}
}
