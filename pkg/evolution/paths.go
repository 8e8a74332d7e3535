package evolution

import (
	"slices"
	"strings"

	"github.com/matzehuels/pokequiz/pkg/pokeapi"
)

// Step is one species on a path together with the conditions that led to
// it. The first step of a path has a zero Detail.
type Step struct {
	Species string
	Detail  pokeapi.EvolutionDetail
}

// Path is a sequence of steps from the root of a chain to one leaf.
type Path []Step

// Species returns the species names along the path.
func (p Path) Species() []string {
	names := make([]string, len(p))
	for i, s := range p {
		names[i] = s.Species
	}
	return names
}

// Contains reports whether species appears on the path.
func (p Path) Contains(species string) bool {
	return slices.ContainsFunc(p, func(s Step) bool { return s.Species == species })
}

// String renders the path as "a -> b (cond) -> c (cond)".
func (p Path) String() string {
	parts := make([]string, len(p))
	for i, s := range p {
		if i == 0 {
			parts[i] = s.Species
			continue
		}
		parts[i] = s.Species + " (" + Describe(s.Detail) + ")"
	}
	return strings.Join(parts, " -> ")
}

type frame struct {
	node *pokeapi.ChainLink
	path Path
}

// Paths lists every root-to-leaf path of the chain, in the order of a
// pre-order walk that visits children and their condition sets in document
// order. An edge without condition sets counts as one branch with a zero
// detail. A chain whose root has no children yields a single one-step path.
func Paths(chain *pokeapi.EvolutionChain) []Path {
	if chain == nil {
		return nil
	}

	root := &chain.Chain
	stack := []frame{{node: root, path: Path{{Species: root.Species.Name}}}}
	var paths []Path

	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if len(f.node.EvolvesTo) == 0 {
			paths = append(paths, f.path)
			continue
		}

		var next []frame
		for i := range f.node.EvolvesTo {
			child := &f.node.EvolvesTo[i]
			for _, d := range alternatives(child) {
				step := Step{Species: child.Species.Name, Detail: d}
				next = append(next, frame{node: child, path: append(slices.Clip(f.path), step)})
			}
		}
		// Reversed so the first child is popped first.
		slices.Reverse(next)
		stack = append(stack, next...)
	}
	return paths
}

func alternatives(link *pokeapi.ChainLink) []pokeapi.EvolutionDetail {
	if len(link.EvolutionDetails) == 0 {
		return []pokeapi.EvolutionDetail{{}}
	}
	return link.EvolutionDetails
}

// Find returns the node for species, or nil if the chain does not contain it.
// The returned node points into chain.
func Find(chain *pokeapi.EvolutionChain, species string) *pokeapi.ChainLink {
	if chain == nil {
		return nil
	}
	stack := []*pokeapi.ChainLink{&chain.Chain}
	for len(stack) > 0 {
		n := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if n.Species.Name == species {
			return n
		}
		for i := range n.EvolvesTo {
			stack = append(stack, &n.EvolvesTo[i])
		}
	}
	return nil
}

// PathContaining returns the first path on which species appears. If none
// does it returns the first path, and nil if there are no paths at all.
func PathContaining(paths []Path, species string) Path {
	for _, p := range paths {
		if p.Contains(species) {
			return p
		}
	}
	if len(paths) > 0 {
		return paths[0]
	}
	return nil
}
