package pokeapi

import (
	"context"
	"errors"
	"slices"
	"strconv"
	"testing"

	"github.com/matzehuels/pokequiz/internal/pokeapitest"
	pqerrors "github.com/matzehuels/pokequiz/pkg/errors"
)

func TestEndpoint(t *testing.T) {
	client := NewClient(nil, Config{BaseURL: "https://pokeapi.co/api/v2/"}, nil)

	tests := []struct {
		category, id, want string
	}{
		{"pokemon", "pikachu", "https://pokeapi.co/api/v2/pokemon/pikachu"},
		{"pokemon-species", "/4/", "https://pokeapi.co/api/v2/pokemon-species/4"},
		{"type", "", "https://pokeapi.co/api/v2/type"},
	}
	for _, tt := range tests {
		if got := client.Endpoint(tt.category, tt.id); got != tt.want {
			t.Errorf("Endpoint(%q, %q) = %q, want %q", tt.category, tt.id, got, tt.want)
		}
	}
}

func TestAccessorDispatch(t *testing.T) {
	srv := pokeapitest.New(t)
	srv.Add("pokemon/pikachu", map[string]any{"id": 25, "name": "pikachu"})

	client, _ := testClient(t, nil, Config{BaseURL: srv.BaseURL()})
	ctx := context.Background()

	byName, err := client.Pokemon(ctx, "pikachu")
	if err != nil {
		t.Fatalf("Pokemon(name) error: %v", err)
	}
	byURL, err := client.Pokemon(ctx, srv.URLFor("pokemon/pikachu"))
	if err != nil {
		t.Fatalf("Pokemon(url) error: %v", err)
	}
	if byName.ID != 25 || byURL.ID != 25 {
		t.Errorf("ids = %d, %d; want 25", byName.ID, byURL.ID)
	}
}

func speciesDoc(name string, varieties ...map[string]any) map[string]any {
	return map[string]any{
		"name":            name,
		"varieties":       varieties,
		"evolution_chain": map[string]any{"url": ""},
	}
}

func variety(url string, isDefault bool) map[string]any {
	return map[string]any{"is_default": isDefault, "pokemon": map[string]any{"name": "x", "url": url}}
}

func TestDefaultVariety(t *testing.T) {
	srv := pokeapitest.New(t)
	srv.Add("pokemon-species/deoxys", speciesDoc("deoxys",
		variety(srv.URLFor("pokemon/10001"), false),
		variety(srv.URLFor("pokemon/386"), true),
	))
	srv.Add("pokemon/386", map[string]any{"id": 386, "name": "deoxys-normal"})

	client, _ := testClient(t, nil, Config{BaseURL: srv.BaseURL()})
	p, err := client.DefaultVariety(context.Background(), "deoxys")
	if err != nil {
		t.Fatalf("DefaultVariety() error: %v", err)
	}
	if p.Name != "deoxys-normal" {
		t.Errorf("DefaultVariety() = %q, want deoxys-normal", p.Name)
	}
	if srv.Hits("pokemon/10001") != 0 {
		t.Error("non-default variety should not be fetched")
	}
}

func TestDefaultVarietyFallsBackToSpeciesName(t *testing.T) {
	srv := pokeapitest.New(t)
	srv.Add("pokemon-species/missing", speciesDoc("missing", variety(srv.URLFor("pokemon/1"), false)))
	srv.Add("pokemon/missing", map[string]any{"name": "missing"})

	client, _ := testClient(t, nil, Config{BaseURL: srv.BaseURL()})
	p, err := client.DefaultVariety(context.Background(), "missing")
	if err != nil {
		t.Fatalf("DefaultVariety() error: %v", err)
	}
	if p.Name != "missing" {
		t.Errorf("DefaultVariety() = %q, want fallback pokemon", p.Name)
	}
}

func TestDefaultVarietyUnresolvable(t *testing.T) {
	srv := pokeapitest.New(t)
	srv.Add("pokemon-species/ghost", speciesDoc("ghost"))

	client, _ := testClient(t, nil, Config{BaseURL: srv.BaseURL()})
	_, err := client.DefaultVariety(context.Background(), "ghost")

	var fe *pqerrors.FetchError
	if !errors.As(err, &fe) || !errors.Is(err, ErrNotFound) {
		t.Errorf("DefaultVariety() error = %v, want not-found FetchError", err)
	}
}

func TestEvolutionChainBySpecies(t *testing.T) {
	srv := pokeapitest.New(t)
	srv.Add("pokemon-species/charmander", map[string]any{
		"name":            "charmander",
		"evolution_chain": map[string]any{"url": srv.URLFor("evolution-chain/2")},
	})
	srv.Add("evolution-chain/2", map[string]any{
		"id": 2,
		"chain": map[string]any{
			"species":           map[string]any{"name": "charmander"},
			"evolution_details": []any{},
			"evolves_to": []any{map[string]any{
				"species":           map[string]any{"name": "charmeleon"},
				"evolution_details": []any{map[string]any{"min_level": 16, "trigger": map[string]any{"name": "level-up"}}},
				"evolves_to":        []any{},
			}},
		},
	})

	client, _ := testClient(t, nil, Config{BaseURL: srv.BaseURL()})
	chain, err := client.EvolutionChainBySpecies(context.Background(), "charmander")
	if err != nil {
		t.Fatalf("EvolutionChainBySpecies() error: %v", err)
	}
	if chain.ID != 2 || chain.Chain.Species.Name != "charmander" {
		t.Fatalf("chain = %+v", chain)
	}
	next := chain.Chain.EvolvesTo[0]
	if next.Species.Name != "charmeleon" || *next.EvolutionDetails[0].MinLevel != 16 {
		t.Errorf("first evolution = %+v", next)
	}
}

func TestEvolutionChainBySpeciesMissing(t *testing.T) {
	srv := pokeapitest.New(t)
	srv.Add("pokemon-species/mew", map[string]any{"name": "mew"})

	client, _ := testClient(t, nil, Config{BaseURL: srv.BaseURL()})
	_, err := client.EvolutionChainBySpecies(context.Background(), "mew")

	var me *pqerrors.MissingDataError
	if !errors.As(err, &me) {
		t.Fatalf("error = %v, want *errors.MissingDataError", err)
	}
	if me.Resource != "pokemon-species/mew" || me.Field != "evolution_chain" {
		t.Errorf("MissingDataError = %+v", me)
	}
	if !pqerrors.Is(err, pqerrors.ErrCodeMissingData) {
		t.Errorf("code = %q, want MISSING_DATA", pqerrors.GetCode(err))
	}
}

func TestStatValue(t *testing.T) {
	p := &Pokemon{Stats: []PokemonStat{
		{BaseStat: 45, Stat: NamedResource{Name: "hp"}},
		{BaseStat: 90, Stat: NamedResource{Name: "speed"}},
	}}

	tests := []struct {
		stat   string
		want   int
		wantOK bool
	}{
		{"hp", 45, true},
		{"speed", 90, true},
		{"attack", 0, false},
	}
	for _, tt := range tests {
		got, ok := StatValue(p, tt.stat)
		if got != tt.want || ok != tt.wantOK {
			t.Errorf("StatValue(%q) = (%d, %v), want (%d, %v)", tt.stat, got, ok, tt.want, tt.wantOK)
		}
	}
	if _, ok := StatValue(nil, "hp"); ok {
		t.Error("StatValue(nil) should report absent")
	}
}

func TestSpeciesInPokedex(t *testing.T) {
	srv := pokeapitest.New(t)
	srv.Add("pokedex/kanto", map[string]any{
		"name": "kanto",
		"pokemon_entries": []any{
			map[string]any{"entry_number": 1, "pokemon_species": map[string]any{"name": "bulbasaur"}},
			map[string]any{"entry_number": 2, "pokemon_species": map[string]any{"name": "ivysaur"}},
			map[string]any{"entry_number": 3},
		},
	})

	client, _ := testClient(t, nil, Config{BaseURL: srv.BaseURL()})
	got, err := client.SpeciesInPokedex(context.Background(), "kanto")
	if err != nil {
		t.Fatalf("SpeciesInPokedex() error: %v", err)
	}
	if want := []string{"bulbasaur", "ivysaur"}; !slices.Equal(got, want) {
		t.Errorf("SpeciesInPokedex() = %v, want %v", got, want)
	}
}

func TestSpeciesInGeneration(t *testing.T) {
	srv := pokeapitest.New(t)
	srv.Add("generation/2", map[string]any{
		"name":            "generation-ii",
		"pokemon_species": []any{map[string]any{"name": "chikorita"}, map[string]any{"name": "cyndaquil"}},
	})

	client, _ := testClient(t, nil, Config{BaseURL: srv.BaseURL()})
	got, err := client.SpeciesInGeneration(context.Background(), strconv.Itoa(2))
	if err != nil {
		t.Fatalf("SpeciesInGeneration() error: %v", err)
	}
	if want := []string{"chikorita", "cyndaquil"}; !slices.Equal(got, want) {
		t.Errorf("SpeciesInGeneration() = %v, want %v", got, want)
	}
}

func TestPokemonConversions(t *testing.T) {
	p := &Pokemon{Height: 17, Weight: 905, Types: []PokemonType{
		{Slot: 1, Type: NamedResource{Name: "fire"}},
		{Slot: 2, Type: NamedResource{Name: "flying"}},
	}}
	if p.HeightMeters() != 1.7 {
		t.Errorf("HeightMeters() = %v, want 1.7", p.HeightMeters())
	}
	if p.WeightKg() != 90.5 {
		t.Errorf("WeightKg() = %v, want 90.5", p.WeightKg())
	}
	if got := p.TypeNames(); !slices.Equal(got, []string{"fire", "flying"}) {
		t.Errorf("TypeNames() = %v", got)
	}
}

func TestEvolutionDetailIsZero(t *testing.T) {
	if !(EvolutionDetail{}).IsZero() {
		t.Error("empty detail should be zero")
	}
	lvl := 16
	if (EvolutionDetail{MinLevel: &lvl}).IsZero() {
		t.Error("detail with a level should not be zero")
	}
}
