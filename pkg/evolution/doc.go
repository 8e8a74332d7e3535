// Package evolution turns PokeAPI evolution chains into root-to-leaf paths
// and renders them as text or graphs.
//
// An evolution chain is a tree. Every edge from a parent to a child carries
// one or more alternative condition sets ([pokeapi.EvolutionDetail]); each
// alternative is treated as its own branch. [Paths] therefore returns one
// [Path] per leaf and per combination of alternatives along the way:
//
//	chain, _ := client.EvolutionChainBySpecies(ctx, "eevee")
//	for _, p := range evolution.Paths(chain) {
//	    fmt.Println(p)
//	}
//
// Traversal uses an explicit stack, so arbitrarily deep chains cannot
// exhaust the goroutine stack.
//
// [ToDOT] and [RenderSVG] produce a Graphviz drawing of the whole tree.
package evolution
