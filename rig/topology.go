// Package rig generates multi-view camera setups: ordered viewpoint
// positions together with an undirected edge list describing which
// viewpoints are adjacent in the rig.
package rig

import "sort"

// Edge is an undirected pair of position indices.
type Edge [2]int

// UniqueEdges canonicalizes an edge soup: self-edges are dropped, (i,j) and
// (j,i) collapse to one edge, and the result is sorted lexicographically so
// generators are deterministic.
func UniqueEdges(edges []Edge) []Edge {
	seen := make(map[Edge]struct{}, len(edges))
	out := make([]Edge, 0, len(edges))
	for _, e := range edges {
		if e[0] == e[1] {
			continue
		}
		if e[0] > e[1] {
			e[0], e[1] = e[1], e[0]
		}
		if _, ok := seen[e]; ok {
			continue
		}
		seen[e] = struct{}{}
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i][0] != out[j][0] {
			return out[i][0] < out[j][0]
		}
		return out[i][1] < out[j][1]
	})
	return out
}

// triangleEdges returns the three boundary edges of every face.
func triangleEdges(faces [][3]int) []Edge {
	edges := make([]Edge, 0, 3*len(faces))
	for _, f := range faces {
		edges = append(edges, Edge{f[0], f[1]}, Edge{f[1], f[2]}, Edge{f[2], f[0]})
	}
	return edges
}

// quadEdges returns the four boundary edges of every quad.
func quadEdges(quads [][4]int) []Edge {
	edges := make([]Edge, 0, 4*len(quads))
	for _, q := range quads {
		edges = append(edges, Edge{q[0], q[1]}, Edge{q[1], q[2]}, Edge{q[2], q[3]}, Edge{q[3], q[0]})
	}
	return edges
}

// quadDiagonals returns both diagonals of every quad.
func quadDiagonals(quads [][4]int) []Edge {
	edges := make([]Edge, 0, 2*len(quads))
	for _, q := range quads {
		edges = append(edges, Edge{q[0], q[2]}, Edge{q[1], q[3]})
	}
	return edges
}

// chainEdges connects vertex i to i+1 for i in [0, n-2]. The chain is open:
// the last vertex does not connect back to the first.
func chainEdges(n int) []Edge {
	if n < 2 {
		return nil
	}
	edges := make([]Edge, n-1)
	for i := 0; i < n-1; i++ {
		edges[i] = Edge{i, i + 1}
	}
	return edges
}
