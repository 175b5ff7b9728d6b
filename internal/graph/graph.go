// Package graph implements a small directed graph with labelled edges and a
// breadth-first shortest path search.
//
// Edges keep their registration order, and the search visits the neighbors
// of each node in that order. Among several shortest paths the search
// therefore returns the one whose edges were registered first.
package graph

import (
	"errors"
	"fmt"
)

// ErrUnreachable is returned when no path connects two nodes.
var ErrUnreachable = errors.New("graph: unreachable node")

type edge[N comparable, E any] struct {
	to    N
	label E
}

// hop records how the search reached a node.
type hop[N comparable, E any] struct {
	prev  N
	label E
}

// Graph is a directed graph with nodes of type N and edge labels of type E.
// The zero value is an empty graph ready to use.
type Graph[N comparable, E any] struct {
	nodes []N
	out   map[N][]edge[N, E]
}

// New returns an empty graph.
func New[N comparable, E any]() *Graph[N, E] {
	return &Graph[N, E]{}
}

// AddNode adds n to the graph. Adding an existing node is a no-op.
func (g *Graph[N, E]) AddNode(n N) {
	if g.out == nil {
		g.out = make(map[N][]edge[N, E])
	}
	if _, ok := g.out[n]; ok {
		return
	}
	g.out[n] = nil
	g.nodes = append(g.nodes, n)
}

// AddEdge adds a directed edge from -> to carrying label. An existing edge
// between the same nodes is replaced in place, keeping its position.
func (g *Graph[N, E]) AddEdge(from, to N, label E) {
	g.AddNode(from)
	g.AddNode(to)
	for i, e := range g.out[from] {
		if e.to == to {
			g.out[from][i].label = label
			return
		}
	}
	g.out[from] = append(g.out[from], edge[N, E]{to: to, label: label})
}

// Edge returns the label of the direct edge from -> to.
func (g *Graph[N, E]) Edge(from, to N) (E, bool) {
	for _, e := range g.out[from] {
		if e.to == to {
			return e.label, true
		}
	}
	var zero E
	return zero, false
}

// Nodes returns the nodes in the order they were added.
func (g *Graph[N, E]) Nodes() []N {
	return append([]N(nil), g.nodes...)
}

// Neighbors returns the targets of the edges leaving n, in registration order.
func (g *Graph[N, E]) Neighbors(n N) []N {
	out := g.out[n]
	res := make([]N, len(out))
	for i, e := range out {
		res[i] = e.to
	}
	return res
}

// ShortestPath returns the edge labels along a shortest path from -> to.
// A node reaches itself through the empty path. If to cannot be reached, the
// returned error wraps ErrUnreachable.
func (g *Graph[N, E]) ShortestPath(from, to N) ([]E, error) {
	if from == to {
		if _, ok := g.out[from]; ok {
			return nil, nil
		}
		return nil, fmt.Errorf("%w: %v", ErrUnreachable, from)
	}

	seen := map[N]hop[N, E]{}
	visited := map[N]bool{from: true}
	queue := []N{from}
	for len(queue) > 0 {
		n := queue[0]
		queue = queue[1:]
		for _, e := range g.out[n] {
			if visited[e.to] {
				continue
			}
			visited[e.to] = true
			seen[e.to] = hop[N, E]{prev: n, label: e.label}
			if e.to == to {
				return unwind(seen, from, to), nil
			}
			queue = append(queue, e.to)
		}
	}
	return nil, fmt.Errorf("%w: no path from %v to %v", ErrUnreachable, from, to)
}

func unwind[N comparable, E any](seen map[N]hop[N, E], from, to N) []E {
	var rev []E
	for n := to; n != from; n = seen[n].prev {
		rev = append(rev, seen[n].label)
	}
	path := make([]E, len(rev))
	for i, l := range rev {
		path[len(rev)-1-i] = l
	}
	return path
}
