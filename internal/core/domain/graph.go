// Package domain contains the core domain models of the resolver: resolvents,
// constraints, decisions and the plan they add up to.
package domain

import (
	"iter"

	"go.trai.ch/zerr"
)

// Graph orders resolvents so that each one comes after the resolvents it needs.
// Nodes are visited in insertion order, which keeps the result deterministic.
type Graph struct {
	nodes []Resolvent
	index map[Resolvent]struct{}
	edges map[Resolvent][]Resolvent
	order []Resolvent
}

// NewGraph creates a new empty Graph.
func NewGraph() *Graph {
	return &Graph{
		index: make(map[Resolvent]struct{}),
		edges: make(map[Resolvent][]Resolvent),
	}
}

// AddNode adds a resolvent to the graph.
// It returns an error if the resolvent is already present.
func (g *Graph) AddNode(r Resolvent) error {
	if _, exists := g.index[r]; exists {
		return zerr.With(ErrResolventAlreadyExists, "resolvent", r.String())
	}
	g.index[r] = struct{}{}
	g.nodes = append(g.nodes, r)
	return nil
}

// AddEdge records that from needs to come after to. Duplicate and self edges are ignored.
func (g *Graph) AddEdge(from, to Resolvent) error {
	if _, ok := g.index[from]; !ok {
		return zerr.With(ErrMissingResolvent, "resolvent", from.String())
	}
	if _, ok := g.index[to]; !ok {
		return zerr.With(ErrMissingResolvent, "resolvent", to.String())
	}
	if from == to {
		return nil
	}
	for _, existing := range g.edges[from] {
		if existing == to {
			return nil
		}
	}
	g.edges[from] = append(g.edges[from], to)
	return nil
}

// Linearize orders the graph, breaking every cycle at the edge that closes it.
// It returns the cycles it broke, rendered as "a -> b -> a".
func (g *Graph) Linearize() []string {
	g.order = make([]Resolvent, 0, len(g.nodes))
	visited := make(map[Resolvent]int) // 0: unvisited, 1: visiting, 2: visited
	var path []Resolvent
	var cycles []string

	var visit func(u Resolvent)
	visit = func(u Resolvent) {
		visited[u] = 1
		path = append(path, u)

		for _, dep := range g.edges[u] {
			switch visited[dep] {
			case 1:
				cycles = append(cycles, cyclePath(path, dep))
			case 0:
				visit(dep)
			}
		}

		visited[u] = 2
		path = path[:len(path)-1]
		g.order = append(g.order, u)
	}

	for _, r := range g.nodes {
		if visited[r] == 0 {
			visit(r)
		}
	}
	return cycles
}

func cyclePath(path []Resolvent, dep Resolvent) string {
	cycle := ""
	startIdx := 0
	for i, node := range path {
		if node == dep {
			startIdx = i
			break
		}
	}
	for i := startIdx; i < len(path); i++ {
		cycle += path[i].String() + " -> "
	}
	return cycle + dep.String()
}

// Walk returns an iterator that yields resolvents in dependency order.
// It assumes Linearize has been called.
func (g *Graph) Walk() iter.Seq[Resolvent] {
	return func(yield func(Resolvent) bool) {
		for _, r := range g.order {
			if !yield(r) {
				return
			}
		}
	}
}
