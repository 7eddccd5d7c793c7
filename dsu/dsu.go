// Package dsu implements a weighted disjoint-set (union-find) structure
// with path halving, used throughout layerorder to merge equivalence
// classes discovered by pairwise, non-transitive floating-point
// predicates (see planegroup.Compute).
package dsu

// DSU is a disjoint-set forest over the dense integer universe [0,n).
// Zero value is not usable; construct with New.
type DSU struct {
	parent []int
	rank   []int
}

// New returns a DSU over n singleton sets {0}, {1}, ..., {n-1}.
func New(n int) *DSU {
	d := &DSU{
		parent: make([]int, n),
		rank:   make([]int, n),
	}
	for i := range d.parent {
		d.parent[i] = i
	}

	return d
}

// Find returns the representative of x's set, compressing the path by
// halving: each visited node is relinked to its grandparent so that
// repeated calls flatten the tree toward O(1) depth.
func (d *DSU) Find(x int) int {
	for x != d.parent[x] {
		d.parent[x] = d.parent[d.parent[x]]
		x = d.parent[x]
	}

	return x
}

// Join merges the sets containing a and b. It is a no-op if a and b
// already belong to the same set.
func (d *DSU) Join(a, b int) {
	ra, rb := d.Find(a), d.Find(b)
	if ra == rb {
		return
	}
	d.link(ra, rb)
}

// link attaches the shallower of two tree roots under the deeper one,
// using rank as a proxy for depth. a and b MUST already be roots.
func (d *DSU) link(a, b int) {
	if d.rank[a] < d.rank[b] {
		a, b = b, a
	}
	d.parent[b] = a
	if d.rank[a] == d.rank[b] {
		d.rank[a]++
	}
}

// Connected reports whether a and b are in the same set.
func (d *DSU) Connected(a, b int) bool {
	return d.Find(a) == d.Find(b)
}
