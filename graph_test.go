package invoke

import (
	"errors"
	"strings"
	"testing"
)

func mustAdd(t *testing.T, g *Graph, nodes ...any) {
	t.Helper()
	for _, n := range nodes {
		if err := AddNode(g, n); err != nil {
			t.Fatalf("AddNode(%T): %v", n, err)
		}
	}
}

func problems(err error) []GraphProblem {
	var out []GraphProblem
	if err == nil {
		return out
	}
	joined, ok := err.(interface{ Unwrap() []error })
	if !ok {
		var p GraphProblem
		if errors.As(err, &p) {
			out = append(out, p)
		}
		return out
	}
	for _, e := range joined.Unwrap() {
		var p GraphProblem
		if errors.As(e, &p) {
			out = append(out, p)
		}
	}
	return out
}

func hasProblem(err error, path, fragment string) bool {
	for _, p := range problems(err) {
		if p.Path == path && strings.Contains(p.Message, fragment) {
			return true
		}
	}
	return false
}

func TestNewGraph_AssignsID(t *testing.T) {
	g := NewGraph("")
	if g.Id == nil || *g.Id == "" {
		t.Fatalf("expected generated id")
	}
	if other := NewGraph(""); *other.Id == *g.Id {
		t.Fatalf("expected distinct ids")
	}
	named := NewGraph("txt2img")
	if *named.Id != "txt2img" {
		t.Fatalf("expected explicit id kept, got %q", *named.Id)
	}
	if err := ValidateGraph(named); err != nil {
		t.Fatalf("expected empty graph to be valid, got %v", err)
	}
}

func TestAddNode(t *testing.T) {
	g := NewGraph("g")
	mustAdd(t, &g, RangeInvocation{Id: "r"})
	if _, ok := (*g.Nodes)["r"]; !ok {
		t.Fatalf("expected node stored under its id")
	}
	if err := AddNode(&g, RangeInvocation{Id: "r"}); err == nil {
		t.Fatalf("expected duplicate id to be rejected")
	}
	if err := AddNode(&g, ImageOutput{}); err == nil {
		t.Fatalf("expected non-invocation to be rejected")
	}
	if err := AddNode(&g, IntegerInvocation{}); err == nil {
		t.Fatalf("expected node without id to be rejected")
	}

	var bare Graph
	mustAdd(t, &bare, IntegerInvocation{Id: "i"})
	if len(*bare.Nodes) != 1 {
		t.Fatalf("expected nodes map to be created")
	}
}

func TestValidateGraph_Valid(t *testing.T) {
	g := NewGraph("g")
	mustAdd(t, &g,
		IntegerInvocation{Id: "a"},
		IntegerInvocation{Id: "b"},
		CollectInvocation{Id: "c"},
		IterateInvocation{Id: "it"},
	)
	Connect(&g, "a", "value", "c", "item")
	Connect(&g, "b", "value", "c", "item")
	Connect(&g, "c", "collection", "it", "collection")

	if err := ValidateGraph(g); err != nil {
		t.Fatalf("expected valid graph, got %v", err)
	}
}

func TestValidateGraph_EdgeProblems(t *testing.T) {
	g := NewGraph("g")
	mustAdd(t, &g,
		IntegerInvocation{Id: "a"},
		IntegerInvocation{Id: "b"},
		RangeInvocation{Id: "r"},
	)
	Connect(&g, "a", "value", "r", "start")     // edges[0]
	Connect(&g, "b", "value", "r", "start")     // edges[1]: second input to r.start
	Connect(&g, "a", "value", "ghost", "x")     // edges[2]
	Connect(&g, "a", "", "b", "a")              // edges[3]
	Connect(&g, "r", "collection", "r", "stop") // edges[4]

	err := ValidateGraph(g)
	if err == nil {
		t.Fatalf("expected problems")
	}
	if !hasProblem(err, "edges[1]", "already has an input") {
		t.Fatalf("expected duplicate destination problem, got %v", err)
	}
	if !hasProblem(err, "edges[2]", `"ghost" not in graph`) {
		t.Fatalf("expected missing node problem, got %v", err)
	}
	if !hasProblem(err, "edges[3]", "empty field") {
		t.Fatalf("expected empty field problem, got %v", err)
	}
	if !hasProblem(err, "edges[4]", "connects to itself") {
		t.Fatalf("expected self-loop problem, got %v", err)
	}
}

func TestValidateGraph_Cycle(t *testing.T) {
	g := NewGraph("g")
	mustAdd(t, &g,
		IntegerInvocation{Id: "a"},
		IntegerInvocation{Id: "b"},
		IntegerInvocation{Id: "c"},
	)
	Connect(&g, "a", "value", "b", "a")
	Connect(&g, "b", "value", "c", "a")
	Connect(&g, "c", "value", "a", "a")

	err := ValidateGraph(g)
	if !hasProblem(err, "edges", "cycle") {
		t.Fatalf("expected cycle problem, got %v", err)
	}
}

func TestValidateGraph_NodeProblems(t *testing.T) {
	g := NewGraph("g")
	gn, err := NewGraphNode(IntegerInvocation{Id: "a"})
	if err != nil {
		t.Fatalf("NewGraphNode: %v", err)
	}
	(*g.Nodes)["renamed"] = gn

	var untyped GraphNode
	if err := untyped.UnmarshalJSON([]byte(`{"id": "u"}`)); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	(*g.Nodes)["u"] = untyped

	var alien GraphNode
	if err := alien.UnmarshalJSON([]byte(`{"id": "x", "type": "teleport"}`)); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	(*g.Nodes)["x"] = alien

	err = ValidateGraph(g)
	if !hasProblem(err, "nodes.renamed", "does not match its key") {
		t.Fatalf("expected key mismatch problem, got %v", err)
	}
	if !hasProblem(err, "nodes.u", "missing type") {
		t.Fatalf("expected missing type problem, got %v", err)
	}
	if !hasProblem(err, "nodes.x", "unknown node type") {
		t.Fatalf("expected unknown type problem, got %v", err)
	}
}

func TestValidateGraph_NestedGraph(t *testing.T) {
	sub := NewGraph("inner")
	mustAdd(t, &sub, IntegerInvocation{Id: "i"})
	Connect(&sub, "i", "value", "missing", "value")

	g := NewGraph("outer")
	mustAdd(t, &g, GraphInvocation{Id: "nested", Graph: &sub})

	err := ValidateGraph(g)
	if !hasProblem(err, "nodes.nested.graph.edges[0]", `"missing" not in graph`) {
		t.Fatalf("expected nested problem, got %v", err)
	}
	if len(problems(err)) != 1 {
		t.Fatalf("expected exactly one problem, got %v", err)
	}
}
