package evolution

import (
	"context"
	"strings"
	"testing"
)

func TestRenderSVG(t *testing.T) {
	svg, err := RenderSVG(context.Background(), ToDOT(branchingChain()))
	if err != nil {
		t.Fatalf("RenderSVG() error: %v", err)
	}
	if !strings.Contains(string(svg), "<svg") {
		t.Error("RenderSVG() output missing <svg> tag")
	}
}

func TestRenderSVGInvalidDOT(t *testing.T) {
	if _, err := RenderSVG(context.Background(), "not valid dot {{{"); err == nil {
		t.Error("RenderSVG() should return error for invalid DOT")
	}
}

func TestToDOTNilChain(t *testing.T) {
	if dot := ToDOT(nil); !strings.HasPrefix(dot, "digraph") || !strings.HasSuffix(dot, "}\n") {
		t.Errorf("ToDOT(nil) = %q, want an empty graph", dot)
	}
}
