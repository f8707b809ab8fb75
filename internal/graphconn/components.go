// SPDX-License-Identifier: MIT
package graphconn

import "github.com/katalvlaran/edakernel/model"

// unionFind is a disjoint-set forest over model.Uuid, with union by rank
// and path-compressed find.
type unionFind struct {
	parent map[model.Uuid]model.Uuid
	rank   map[model.Uuid]int
}

func newUnionFind(nodes []model.Uuid) *unionFind {
	uf := &unionFind{
		parent: make(map[model.Uuid]model.Uuid, len(nodes)),
		rank:   make(map[model.Uuid]int, len(nodes)),
	}
	for _, n := range nodes {
		uf.parent[n] = n
	}
	return uf
}

func (uf *unionFind) find(n model.Uuid) model.Uuid {
	root := n
	for uf.parent[root] != root {
		root = uf.parent[root]
	}
	for n != root {
		n, uf.parent[n] = uf.parent[n], root
	}
	return root
}

func (uf *unionFind) union(a, b model.Uuid) {
	ra, rb := uf.find(a), uf.find(b)
	if ra == rb {
		return
	}
	if uf.rank[ra] < uf.rank[rb] {
		ra, rb = rb, ra
	}
	uf.parent[rb] = ra
	if uf.rank[ra] == uf.rank[rb] {
		uf.rank[ra]++
	}
}

// ComponentsOf partitions nodes into connected components under the given
// undirected edges and returns, for each node, the index of the component
// it belongs to. Component indices are assigned in the order their
// representative is first encountered while walking nodes and carry no
// meaning beyond equality. Duplicate and parallel edges, and edges
// touching nodes outside the given set, are tolerated.
func ComponentsOf(nodes []model.Uuid, edges [][2]model.Uuid) (map[model.Uuid]int, error) {
	uf := newUnionFind(nodes)
	for _, e := range edges {
		if _, ok := uf.parent[e[0]]; !ok {
			continue
		}
		if _, ok := uf.parent[e[1]]; !ok {
			continue
		}
		uf.union(e[0], e[1])
	}

	out := make(map[model.Uuid]int, len(nodes))
	indexOf := make(map[model.Uuid]int, len(nodes))
	next := 0
	for _, n := range nodes {
		root := uf.find(n)
		idx, seen := indexOf[root]
		if !seen {
			idx = next
			next++
			indexOf[root] = idx
		}
		out[n] = idx
	}
	return out, nil
}

// SameComponents reports whether before and after describe the same
// partition of nodes into connected pieces, ignoring the arbitrary
// component index values themselves.
func SameComponents(before, after map[model.Uuid]int) bool {
	if len(before) != len(after) {
		return false
	}
	beforeToAfter := map[int]int{}
	afterToBefore := map[int]int{}
	for n, b := range before {
		a, ok := after[n]
		if !ok {
			return false
		}
		if mapped, seen := beforeToAfter[b]; seen && mapped != a {
			return false
		}
		if mapped, seen := afterToBefore[a]; seen && mapped != b {
			return false
		}
		beforeToAfter[b] = a
		afterToBefore[a] = b
	}
	return true
}
