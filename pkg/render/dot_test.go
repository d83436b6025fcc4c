package render

import (
	"strings"
	"testing"

	"github.com/mlorenz/wayfind/pkg/graph"
)

func buildMixed() *graph.AdjacencyList[string, float64] {
	g := graph.New[string, float64]()
	g.AddEdgeUndirected(graph.NewVertex("a"), graph.NewVertex("b"), 1.5)
	g.AddEdgeDirected(graph.NewVertex("b"), graph.NewVertex("c"), 2)
	return g
}

func TestToDOT_Basic(t *testing.T) {
	dot := ToDOT(buildMixed(), Options{})

	if !strings.Contains(dot, "digraph G") {
		t.Error("ToDOT() output missing digraph declaration")
	}
	for _, label := range []string{`"a"`, `"b"`, `"c"`} {
		if !strings.Contains(dot, label) {
			t.Errorf("ToDOT() output missing vertex %s", label)
		}
	}
	if !strings.Contains(dot, `"b" -> "c";`) {
		t.Error("ToDOT() output missing directed edge b -> c")
	}
}

func TestToDOT_UndirectedDrawnOnce(t *testing.T) {
	dot := ToDOT(buildMixed(), Options{})

	if got := strings.Count(dot, `"a" -> "b"`); got != 1 {
		t.Errorf("undirected pair drawn %d times, want once", got)
	}
	if strings.Contains(dot, `"b" -> "a"`) {
		t.Error("mirror of an undirected edge must not be drawn")
	}
	if !strings.Contains(dot, "dir=none") {
		t.Error("undirected edge missing dir=none")
	}
}

func TestToDOT_MutualUnequalWeightsStayDirected(t *testing.T) {
	g := graph.New[string, float64]()
	g.AddEdgeDirected(graph.NewVertex("a"), graph.NewVertex("b"), 1)
	g.AddEdgeDirected(graph.NewVertex("b"), graph.NewVertex("a"), 2)

	dot := ToDOT(g, Options{})
	if !strings.Contains(dot, `"a" -> "b"`) || !strings.Contains(dot, `"b" -> "a"`) {
		t.Error("mutual pair with unequal weights must keep both arrows")
	}
	if strings.Contains(dot, "dir=none") {
		t.Error("unequal mutual pair must not collapse to undirected")
	}
}

func TestToDOT_Weights(t *testing.T) {
	dot := ToDOT(buildMixed(), Options{Weights: true})

	if !strings.Contains(dot, `label="1.5"`) {
		t.Error("weight label 1.5 missing")
	}
	if !strings.Contains(dot, `label="2"`) {
		t.Error("weight label 2 missing")
	}
}

func TestToDOT_PathHighlight(t *testing.T) {
	dot := ToDOT(buildMixed(), Options{Path: []string{"a", "b", "c"}})

	if !strings.Contains(dot, `"a" [fillcolor=palegreen, penwidth=2];`) {
		t.Error("path vertex a not highlighted")
	}
	if !strings.Contains(dot, "color=forestgreen") {
		t.Error("path edges not highlighted")
	}
}

func TestToDOT_Deterministic(t *testing.T) {
	g := buildMixed()
	first := ToDOT(g, Options{Weights: true})
	for i := 0; i < 5; i++ {
		if got := ToDOT(g, Options{Weights: true}); got != first {
			t.Fatalf("output %d differs from the first", i)
		}
	}
}

func TestNormalizeViewBox(t *testing.T) {
	in := []byte(`<svg width="8pt" height="6pt" viewBox="0.00 0.00 116.00 188.00" xmlns="http://www.w3.org/2000/svg">`)
	out := string(normalizeViewBox(in))

	if !strings.Contains(out, `viewBox="0 0 116.00 188.00"`) {
		t.Errorf("viewBox not normalized: %s", out)
	}
	if !strings.Contains(out, `width="116" height="188"`) {
		t.Errorf("pixel dimensions missing: %s", out)
	}
}

func TestNormalizeViewBoxPassthrough(t *testing.T) {
	in := []byte("<svg>no viewbox</svg>")
	if got := normalizeViewBox(in); string(got) != string(in) {
		t.Error("input without a viewBox must pass through unchanged")
	}
}
