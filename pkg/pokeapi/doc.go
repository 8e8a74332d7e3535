// Package pokeapi provides a caching, retrying client for the PokeAPI REST
// service.
//
// # Overview
//
// The package has three layers, each built on the one below:
//
//   - Fetcher: [Client.Fetch] retrieves one JSON document by URL. Responses
//     are memoized in a [cache.Cache] forever; transient failures (timeouts,
//     429, 500, 502, 503, 504) are retried with exponential backoff.
//   - Aggregator: [Client.FetchAll] follows the "next" cursor of a paginated
//     collection and concatenates its "results".
//   - Accessors: [Client.Species], [Client.Pokemon], [Client.Type] and friends
//     take either a bare name/id or a full URL and decode into typed structs.
//
// # Usage
//
//	c, _ := cache.NewFileCache("")
//	client := pokeapi.NewClient(c, pokeapi.DefaultConfig(), logger)
//
//	p, err := client.DefaultVariety(ctx, "charmander")
//	speed, ok := pokeapi.StatValue(p, "speed")
//
// # Errors
//
// A fetch that cannot be completed fails with an [errors.FetchError]. A
// 404 additionally matches [ErrNotFound] through errors.Is. A document that
// lacks a field an accessor depends on yields an [errors.MissingDataError].
// An unreadable or corrupt cache entry is never reported; it is refetched.
//
// # Configuration
//
// All behaviour is controlled by an explicit [Config] value. The library
// never reads the process environment.
//
// [cache.Cache]: github.com/matzehuels/pokequiz/pkg/cache.Cache
// [errors.FetchError]: github.com/matzehuels/pokequiz/pkg/errors.FetchError
// [errors.MissingDataError]: github.com/matzehuels/pokequiz/pkg/errors.MissingDataError
package pokeapi
