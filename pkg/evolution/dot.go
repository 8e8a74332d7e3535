package evolution

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/goccy/go-graphviz"

	"github.com/matzehuels/pokequiz/pkg/pokeapi"
)

// ToDOT converts a chain to Graphviz DOT. Each species is a node; each
// alternative condition set is a separate labelled edge.
func ToDOT(chain *pokeapi.EvolutionChain) string {
	var buf bytes.Buffer
	buf.WriteString("digraph evolution {\n")
	buf.WriteString("  rankdir=LR;\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [shape=box, style=\"rounded,filled\", fillcolor=white, fontsize=14];\n")
	buf.WriteString("  edge [fontsize=10];\n")

	if chain == nil {
		buf.WriteString("}\n")
		return buf.String()
	}

	var edges []string
	stack := []*pokeapi.ChainLink{&chain.Chain}
	for len(stack) > 0 {
		n := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		attrs := ""
		if n.IsBaby {
			attrs = ", fillcolor=mistyrose"
		}
		fmt.Fprintf(&buf, "  %q [label=%q%s];\n", n.Species.Name, n.Species.Name, attrs)

		for i := len(n.EvolvesTo) - 1; i >= 0; i-- {
			stack = append(stack, &n.EvolvesTo[i])
		}
		for i := range n.EvolvesTo {
			child := &n.EvolvesTo[i]
			for _, d := range alternatives(child) {
				label := ""
				if !d.IsZero() {
					label = Describe(d)
				}
				edges = append(edges, fmt.Sprintf("  %q -> %q [label=%q];\n", n.Species.Name, child.Species.Name, label))
			}
		}
	}

	buf.WriteString("\n")
	buf.WriteString(strings.Join(edges, ""))
	buf.WriteString("}\n")
	return buf.String()
}

// RenderSVG renders a DOT graph to SVG using the embedded Graphviz.
func RenderSVG(ctx context.Context, dot string) ([]byte, error) {
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, graphviz.SVG, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return buf.Bytes(), nil
}
