// Copyright 2018 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package caemu

import "github.com/pkg/errors"

// A connection is an undirected edge between two board-scoped pin IDs,
// recorded during the open phase.
//
type connection struct {
	a, b int
}

// unionFind is a disjoint-set structure over [0, n) used to collapse the
// pin connection graph into electrical nets.
//
type unionFind struct {
	parent []int
	rank   []int
}

func newUnionFind(n int) *unionFind {
	u := &unionFind{parent: make([]int, n), rank: make([]int, n)}
	for i := range u.parent {
		u.parent[i] = i
	}
	return u
}

func (u *unionFind) find(x int) int {
	for u.parent[x] != x {
		u.parent[x] = u.parent[u.parent[x]] // path halving
		x = u.parent[x]
	}
	return x
}

func (u *unionFind) union(a, b int) {
	ra, rb := u.find(a), u.find(b)
	if ra == rb {
		return
	}
	switch {
	case u.rank[ra] < u.rank[rb]:
		ra, rb = rb, ra
	case u.rank[ra] == u.rank[rb]:
		u.rank[ra]++
	}
	u.parent[rb] = ra
}

// buildNets resolves pinCount pins and a list of undirected connections
// into electrical nets (§4.1). It returns pinToNet (length pinCount) and
// the number of distinct nets. Pins not named in any connection form their
// own singleton net. Net numbering is stable for a given pinCount and
// connection order: nets are assigned in ascending order of their lowest
// member pin ID.
//
func buildNets(pinCount int, conns []connection) ([]int, int, error) {
	uf := newUnionFind(pinCount)
	for _, c := range conns {
		if c.a < 0 || c.a >= pinCount {
			return nil, 0, errors.Errorf("wiring: connection references out-of-range pin %d", c.a)
		}
		if c.b < 0 || c.b >= pinCount {
			return nil, 0, errors.Errorf("wiring: connection references out-of-range pin %d", c.b)
		}
		uf.union(c.a, c.b)
	}

	pinToNet := make([]int, pinCount)
	rootToNet := make(map[int]int, pinCount)
	next := 0
	for p := 0; p < pinCount; p++ {
		root := uf.find(p)
		net, ok := rootToNet[root]
		if !ok {
			net = next
			rootToNet[root] = net
			next++
		}
		pinToNet[p] = net
	}
	return pinToNet, next, nil
}
