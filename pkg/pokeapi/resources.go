package pokeapi

// NamedResource is a reference to another resource by name and URL.
type NamedResource struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}

// Page is one page of a paginated collection endpoint.
type Page struct {
	Count    int             `json:"count"`
	Next     *string         `json:"next"`
	Previous *string         `json:"previous"`
	Results  []NamedResource `json:"results"`
}

// Species is a pokemon-species document.
type Species struct {
	ID                 int              `json:"id"`
	Name               string           `json:"name"`
	IsLegendary        bool             `json:"is_legendary"`
	IsMythical         bool             `json:"is_mythical"`
	IsBaby             bool             `json:"is_baby"`
	Habitat            *NamedResource   `json:"habitat"`
	Color              *NamedResource   `json:"color"`
	Generation         *NamedResource   `json:"generation"`
	EvolvesFromSpecies *NamedResource   `json:"evolves_from_species"`
	EvolutionChain     *APIResource     `json:"evolution_chain"`
	Varieties          []SpeciesVariety `json:"varieties"`
	PokedexNumbers     []PokedexNumber  `json:"pokedex_numbers"`
}

// APIResource is a reference to an unnamed resource.
type APIResource struct {
	URL string `json:"url"`
}

// SpeciesVariety is one form of a species.
type SpeciesVariety struct {
	IsDefault bool          `json:"is_default"`
	Pokemon   NamedResource `json:"pokemon"`
}

// PokedexNumber is a species' entry number in one pokedex.
type PokedexNumber struct {
	EntryNumber int           `json:"entry_number"`
	Pokedex     NamedResource `json:"pokedex"`
}

// DefaultVarietyURL returns the pokemon URL of the default variety, or ""
// if no variety is flagged default.
func (s *Species) DefaultVarietyURL() string {
	for _, v := range s.Varieties {
		if v.IsDefault {
			return v.Pokemon.URL
		}
	}
	return ""
}

// Pokemon is a pokemon document. Height is in decimetres, weight in hectograms.
type Pokemon struct {
	ID             int           `json:"id"`
	Name           string        `json:"name"`
	Height         int           `json:"height"`
	Weight         int           `json:"weight"`
	BaseExperience int           `json:"base_experience"`
	IsDefault      bool          `json:"is_default"`
	Species        NamedResource `json:"species"`
	Stats          []PokemonStat `json:"stats"`
	Types          []PokemonType `json:"types"`
}

// PokemonStat is one base stat of a pokemon.
type PokemonStat struct {
	BaseStat int           `json:"base_stat"`
	Effort   int           `json:"effort"`
	Stat     NamedResource `json:"stat"`
}

// PokemonType is one type slot of a pokemon.
type PokemonType struct {
	Slot int           `json:"slot"`
	Type NamedResource `json:"type"`
}

// HeightMeters converts the height to metres.
func (p *Pokemon) HeightMeters() float64 { return float64(p.Height) / 10 }

// WeightKg converts the weight to kilograms.
func (p *Pokemon) WeightKg() float64 { return float64(p.Weight) / 10 }

// TypeNames lists the pokemon's types in slot order.
func (p *Pokemon) TypeNames() []string {
	names := make([]string, 0, len(p.Types))
	for _, t := range p.Types {
		names = append(names, t.Type.Name)
	}
	return names
}

// StatValue returns the base value of the named stat. The second result is
// false when the pokemon has no such stat.
func StatValue(p *Pokemon, stat string) (int, bool) {
	if p == nil {
		return 0, false
	}
	for _, s := range p.Stats {
		if s.Stat.Name == stat {
			return s.BaseStat, true
		}
	}
	return 0, false
}

// Type is an elemental type document.
type Type struct {
	ID         int           `json:"id"`
	Name       string        `json:"name"`
	Generation NamedResource `json:"generation"`
	Pokemon    []TypePokemon `json:"pokemon"`
}

// TypePokemon is a pokemon that has the type in the given slot.
type TypePokemon struct {
	Slot    int           `json:"slot"`
	Pokemon NamedResource `json:"pokemon"`
}

// Pokedex is a regional index document.
type Pokedex struct {
	ID             int            `json:"id"`
	Name           string         `json:"name"`
	IsMainSeries   bool           `json:"is_main_series"`
	Region         *NamedResource `json:"region"`
	PokemonEntries []PokedexEntry `json:"pokemon_entries"`
}

// PokedexEntry is one numbered species in a pokedex.
type PokedexEntry struct {
	EntryNumber    int           `json:"entry_number"`
	PokemonSpecies NamedResource `json:"pokemon_species"`
}

// Generation is a generation document.
type Generation struct {
	ID             int             `json:"id"`
	Name           string          `json:"name"`
	MainRegion     NamedResource   `json:"main_region"`
	PokemonSpecies []NamedResource `json:"pokemon_species"`
	Types          []NamedResource `json:"types"`
}

// EvolutionChain is an evolution-chain document.
type EvolutionChain struct {
	ID    int       `json:"id"`
	Chain ChainLink `json:"chain"`
}

// ChainLink is a node of an evolution tree. EvolutionDetails holds the
// alternative condition sets that lead from the parent to this node.
type ChainLink struct {
	IsBaby           bool              `json:"is_baby"`
	Species          NamedResource     `json:"species"`
	EvolutionDetails []EvolutionDetail `json:"evolution_details"`
	EvolvesTo        []ChainLink       `json:"evolves_to"`
}

// EvolutionDetail is one set of conditions for an evolution.
// Unset conditions are nil or empty.
type EvolutionDetail struct {
	Trigger       *NamedResource `json:"trigger,omitempty"`
	MinLevel      *int           `json:"min_level,omitempty"`
	Item          *NamedResource `json:"item,omitempty"`
	HeldItem      *NamedResource `json:"held_item,omitempty"`
	KnownMove     *NamedResource `json:"known_move,omitempty"`
	KnownMoveType *NamedResource `json:"known_move_type,omitempty"`
	MinHappiness  *int           `json:"min_happiness,omitempty"`
	MinBeauty     *int           `json:"min_beauty,omitempty"`
	Location      *NamedResource `json:"location,omitempty"`
	TimeOfDay     string         `json:"time_of_day,omitempty"`
	TradeSpecies  *NamedResource `json:"trade_species,omitempty"`
}

// IsZero reports whether no condition is set.
func (d EvolutionDetail) IsZero() bool {
	return d == EvolutionDetail{}
}
