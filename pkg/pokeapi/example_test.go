package pokeapi_test

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"

	"github.com/matzehuels/pokequiz/pkg/cache"
	"github.com/matzehuels/pokequiz/pkg/pokeapi"
)

func ExampleStatValue() {
	p := &pokeapi.Pokemon{
		Name: "jolteon",
		Stats: []pokeapi.PokemonStat{
			{BaseStat: 65, Stat: pokeapi.NamedResource{Name: "hp"}},
			{BaseStat: 130, Stat: pokeapi.NamedResource{Name: "speed"}},
		},
	}

	speed, ok := pokeapi.StatValue(p, "speed")
	fmt.Println(speed, ok)

	_, ok = pokeapi.StatValue(p, "luck")
	fmt.Println(ok)
	// Output:
	// 130 true
	// false
}

func ExampleClient_Endpoint() {
	client := pokeapi.NewClient(nil, pokeapi.DefaultConfig(), nil)
	fmt.Println(client.Endpoint(pokeapi.CategorySpecies, "charmander"))
	fmt.Println(client.Endpoint(pokeapi.CategoryGeneration, "1"))
	// Output:
	// https://pokeapi.co/api/v2/pokemon-species/charmander
	// https://pokeapi.co/api/v2/generation/1
}

func ExampleClient_Pokemon() {
	calls := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		fmt.Fprint(w, `{"id": 25, "name": "pikachu", "height": 4, "weight": 60}`)
	}))
	defer srv.Close()

	mem, _ := cache.NewMemoryCache(0)
	client := pokeapi.NewClient(mem, pokeapi.Config{BaseURL: srv.URL}, nil)

	ctx := context.Background()
	for range 2 {
		p, err := client.Pokemon(ctx, "pikachu")
		if err != nil {
			fmt.Println("error:", err)
			return
		}
		fmt.Printf("%s: %.1f m, %.1f kg\n", p.Name, p.HeightMeters(), p.WeightKg())
	}
	fmt.Println("requests:", calls)
	// Output:
	// pikachu: 0.4 m, 6.0 kg
	// pikachu: 0.4 m, 6.0 kg
	// requests: 1
}
