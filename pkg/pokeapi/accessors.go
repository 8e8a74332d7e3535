package pokeapi

import (
	"context"
	"strings"

	pqerrors "github.com/matzehuels/pokequiz/pkg/errors"
)

// Resource categories, as they appear in endpoint paths.
const (
	CategoryPokemon        = "pokemon"
	CategorySpecies        = "pokemon-species"
	CategoryType           = "type"
	CategoryPokedex        = "pokedex"
	CategoryGeneration     = "generation"
	CategoryEvolutionChain = "evolution-chain"
)

// Endpoint builds the canonical URL of a resource. With an empty id it
// returns the collection URL.
func (c *Client) Endpoint(category, id string) string {
	parts := []string{c.cfg.BaseURL, strings.Trim(category, "/")}
	if id = strings.Trim(id, "/"); id != "" {
		parts = append(parts, id)
	}
	return strings.Join(parts, "/")
}

// IsURL reports whether s is treated as a URL rather than a name or id.
func IsURL(s string) bool {
	return strings.HasPrefix(s, "http")
}

func (c *Client) resolve(category, nameOrURL string) string {
	if IsURL(nameOrURL) {
		return nameOrURL
	}
	return c.Endpoint(category, nameOrURL)
}

func fetchAs[T any](ctx context.Context, c *Client, category, nameOrURL string) (*T, error) {
	var v T
	if err := c.FetchJSON(ctx, c.resolve(category, nameOrURL), &v); err != nil {
		return nil, err
	}
	return &v, nil
}

// Species fetches a pokemon-species document by name, id or URL.
func (c *Client) Species(ctx context.Context, nameOrURL string) (*Species, error) {
	return fetchAs[Species](ctx, c, CategorySpecies, nameOrURL)
}

// Pokemon fetches a pokemon document by name, id or URL.
func (c *Client) Pokemon(ctx context.Context, nameOrURL string) (*Pokemon, error) {
	return fetchAs[Pokemon](ctx, c, CategoryPokemon, nameOrURL)
}

// Type fetches a type document by name, id or URL.
func (c *Client) Type(ctx context.Context, nameOrURL string) (*Type, error) {
	return fetchAs[Type](ctx, c, CategoryType, nameOrURL)
}

// Pokedex fetches a regional pokedex by name, id or URL.
func (c *Client) Pokedex(ctx context.Context, nameOrURL string) (*Pokedex, error) {
	return fetchAs[Pokedex](ctx, c, CategoryPokedex, nameOrURL)
}

// Generation fetches a generation by name, id or URL.
func (c *Client) Generation(ctx context.Context, nameOrURL string) (*Generation, error) {
	return fetchAs[Generation](ctx, c, CategoryGeneration, nameOrURL)
}

// EvolutionChain fetches an evolution chain by id or URL.
func (c *Client) EvolutionChain(ctx context.Context, idOrURL string) (*EvolutionChain, error) {
	return fetchAs[EvolutionChain](ctx, c, CategoryEvolutionChain, idOrURL)
}

// DefaultVariety returns the default pokemon of a species. If the species
// flags no variety as default, the species name is looked up as a pokemon.
func (c *Client) DefaultVariety(ctx context.Context, species string) (*Pokemon, error) {
	sp, err := c.Species(ctx, species)
	if err != nil {
		return nil, err
	}
	if u := sp.DefaultVarietyURL(); u != "" {
		return c.Pokemon(ctx, u)
	}
	c.logger.Debug("no default variety, falling back to species name", "species", sp.Name)
	return c.Pokemon(ctx, speciesName(sp, species))
}

// EvolutionChainBySpecies fetches the evolution chain a species belongs to.
// It fails with [*errors.MissingDataError] if the species has no chain.
func (c *Client) EvolutionChainBySpecies(ctx context.Context, species string) (*EvolutionChain, error) {
	sp, err := c.Species(ctx, species)
	if err != nil {
		return nil, err
	}
	if sp.EvolutionChain == nil || sp.EvolutionChain.URL == "" {
		return nil, &pqerrors.MissingDataError{
			Resource: CategorySpecies + "/" + speciesName(sp, species),
			Field:    "evolution_chain",
		}
	}
	return c.EvolutionChain(ctx, sp.EvolutionChain.URL)
}

// SpeciesInPokedex lists the species names of a pokedex in entry order.
func (c *Client) SpeciesInPokedex(ctx context.Context, nameOrURL string) ([]string, error) {
	px, err := c.Pokedex(ctx, nameOrURL)
	if err != nil {
		return nil, err
	}
	names := make([]string, 0, len(px.PokemonEntries))
	for _, e := range px.PokemonEntries {
		if e.PokemonSpecies.Name != "" {
			names = append(names, e.PokemonSpecies.Name)
		}
	}
	return names, nil
}

// SpeciesInGeneration lists the species introduced in a generation.
func (c *Client) SpeciesInGeneration(ctx context.Context, nameOrID string) ([]string, error) {
	g, err := c.Generation(ctx, nameOrID)
	if err != nil {
		return nil, err
	}
	names := make([]string, 0, len(g.PokemonSpecies))
	for _, s := range g.PokemonSpecies {
		names = append(names, s.Name)
	}
	return names, nil
}

// speciesName prefers the document's own name, which is always a bare
// name even when the species was requested by URL.
func speciesName(sp *Species, requested string) string {
	if sp.Name != "" {
		return sp.Name
	}
	return requested
}
