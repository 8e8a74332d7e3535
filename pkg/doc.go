// Package pkg provides the libraries behind the pokequiz trivia tool.
//
// # Overview
//
// Pokequiz answers questions about Pokemon from the public PokeAPI REST
// service. The pkg directory is organized into these areas:
//
//  1. [pokeapi] - Client, resource types, pagination and accessors
//  2. [evolution] - Path enumeration and rendering of evolution chains
//  3. [cache] - Response cache backends (file, memory, sqlite, redis, mongo)
//  4. [httputil] - Retry policy with exponential backoff
//  5. [errors], [observability], [metrics], [buildinfo] - Shared plumbing
//
// # Architecture
//
// A request flows through the layers like this:
//
//	CLI command
//	     ↓
//	[pokeapi] accessor (Species, Pokemon, EvolutionChainBySpecies, ...)
//	     ↓
//	[pokeapi.Client.Fetch] ──→ [cache] hit? return cached bytes
//	     ↓ miss
//	HTTP GET with [httputil.Policy] retries
//	     ↓
//	[cache] store, then decode
//
// # Quick Start
//
//	import (
//	    "context"
//	    "fmt"
//
//	    "github.com/matzehuels/pokequiz/pkg/cache"
//	    "github.com/matzehuels/pokequiz/pkg/evolution"
//	    "github.com/matzehuels/pokequiz/pkg/pokeapi"
//	)
//
//	store, _ := cache.NewFileCache("")
//	client := pokeapi.NewClient(store, pokeapi.DefaultConfig(), nil)
//
//	chain, _ := client.EvolutionChainBySpecies(context.Background(), "eevee")
//	for _, p := range evolution.Paths(chain) {
//	    fmt.Println(p)
//	}
//
// # Observability
//
// The data layer emits events through [observability] hooks. [metrics]
// implements them with Prometheus counters; nothing is recorded unless a
// collector is installed.
package pkg
