package invoke

import (
	"errors"
	"fmt"
	"sort"

	"github.com/google/uuid"
)

// collectItemField is the one destination field that accepts many incoming edges.
const collectItemField = "item"

// NewGraph returns an empty graph. An empty id is replaced with a random UUID.
func NewGraph(id string) Graph {
	if id == "" {
		id = uuid.NewString()
	}
	nodes := map[string]GraphNode{}
	edges := []Edge{}
	return Graph{Id: &id, Nodes: &nodes, Edges: &edges}
}

// AddNode adds a concrete invocation (e.g. RangeInvocation) to g under its id.
func AddNode(g *Graph, node any) error {
	gn, err := NewGraphNode(node)
	if err != nil {
		return err
	}
	id, _, err := nodeHeader(gn)
	if err != nil {
		return err
	}
	if g.Nodes == nil {
		g.Nodes = &map[string]GraphNode{}
	}
	if _, exists := (*g.Nodes)[id]; exists {
		return fmt.Errorf("invoke: node %q already in graph", id)
	}
	(*g.Nodes)[id] = gn
	return nil
}

// Connect adds an edge from fromNode.fromField to toNode.toField.
func Connect(g *Graph, fromNode, fromField, toNode, toField string) {
	e := Edge{
		Source:      EdgeConnection{NodeId: fromNode, Field: fromField},
		Destination: EdgeConnection{NodeId: toNode, Field: toField},
	}
	if g.Edges == nil {
		g.Edges = &[]Edge{}
	}
	*g.Edges = append(*g.Edges, e)
}

// GraphProblem is one structural defect found by ValidateGraph.
type GraphProblem struct {
	// Path locates the defect, e.g. "nodes.n1" or "edges[2]". Nested graphs are prefixed with
	// the id of the graph node that holds them.
	Path    string
	Message string
}

func (p GraphProblem) Error() string {
	return fmt.Sprintf("invoke: graph %s: %s", p.Path, p.Message)
}

// ValidateGraph checks the structure of g. It does not check that edge fields exist on node
// schemas or that connected field types agree; the backend does that.
//
// Problems are joined with errors.Join; each is a GraphProblem.
func ValidateGraph(g Graph) error {
	return errors.Join(validateGraph(g, "")...)
}

func validateGraph(g Graph, prefix string) []error {
	var problems []error
	add := func(path, format string, args ...any) {
		problems = append(problems, GraphProblem{Path: prefix + path, Message: fmt.Sprintf(format, args...)})
	}

	nodeTypes := map[string]string{}
	if g.Nodes != nil {
		keys := make([]string, 0, len(*g.Nodes))
		for k := range *g.Nodes {
			keys = append(keys, k)
		}
		sort.Strings(keys)

		for _, key := range keys {
			node := (*g.Nodes)[key]
			path := "nodes." + key
			id, typ, err := nodeHeader(node)
			if err != nil {
				add(path, "%v", err)
				continue
			}
			if id != key {
				add(path, "node id %q does not match its key", id)
			}
			if !IsNodeType(typ) {
				add(path, "unknown node type %q", typ)
				continue
			}
			nodeTypes[key] = typ

			if typ == "graph" {
				sub, err := node.AsGraphInvocation()
				if err != nil {
					add(path, "%v", err)
					continue
				}
				if sub.Graph != nil {
					problems = append(problems, validateGraph(*sub.Graph, prefix+path+".graph.")...)
				}
			}
		}
	}

	if g.Edges == nil {
		return problems
	}

	into := map[EdgeConnection]int{}
	adjacency := map[string][]string{}
	for i, e := range *g.Edges {
		path := fmt.Sprintf("edges[%d]", i)
		ok := true
		for _, end := range []EdgeConnection{e.Source, e.Destination} {
			if end.Field == "" {
				add(path, "empty field on node %q", end.NodeId)
				ok = false
			}
			if _, exists := nodeTypes[end.NodeId]; !exists {
				add(path, "node %q not in graph", end.NodeId)
				ok = false
			}
		}
		if e.Source.NodeId == e.Destination.NodeId {
			add(path, "node %q connects to itself", e.Source.NodeId)
			ok = false
		}
		if !ok {
			continue
		}

		if prev, dup := into[e.Destination]; dup {
			if nodeTypes[e.Destination.NodeId] != "collect" || e.Destination.Field != collectItemField {
				add(path, "%s.%s already has an input from edges[%d]", e.Destination.NodeId, e.Destination.Field, prev)
			}
		} else {
			into[e.Destination] = i
		}
		adjacency[e.Source.NodeId] = append(adjacency[e.Source.NodeId], e.Destination.NodeId)
	}

	if cycle := findCycle(adjacency); cycle != nil {
		add("edges", "cycle through %v", cycle)
	}
	return problems
}

// findCycle returns the node ids of one cycle in adjacency, or nil when it is acyclic.
func findCycle(adjacency map[string][]string) []string {
	const (
		unvisited = iota
		visiting
		done
	)
	state := map[string]int{}
	var stack []string
	var cycle []string

	var visit func(n string) bool
	visit = func(n string) bool {
		state[n] = visiting
		stack = append(stack, n)
		for _, next := range adjacency[n] {
			switch state[next] {
			case visiting:
				for i := len(stack) - 1; i >= 0; i-- {
					if stack[i] == next {
						cycle = append([]string(nil), stack[i:]...)
						break
					}
				}
				return true
			case unvisited:
				if visit(next) {
					return true
				}
			}
		}
		stack = stack[:len(stack)-1]
		state[n] = done
		return false
	}

	starts := make([]string, 0, len(adjacency))
	for n := range adjacency {
		starts = append(starts, n)
	}
	sort.Strings(starts)
	for _, n := range starts {
		if state[n] == unvisited && visit(n) {
			return cycle
		}
	}
	return nil
}
