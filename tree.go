package flatmerkle

import (
	"fmt"
	"math/bits"

	"github.com/gordian-engine/flatmerkle/merklehash"
	"golang.org/x/sync/errgroup"
)

// Tree is a binary Merkle tree stored as one flat sequence of digests.
//
// Indices [0, NumLeaves) hold the leaf digests in input order.
// Each following range holds the next level's digests, left to right,
// and the final digest is the root.
//
// A Tree is never modified after construction,
// so it is safe for concurrent use by multiple goroutines.
// Create one with [Construct] or [*Builder.Construct].
type Tree struct {
	// View into the backing mem slice.
	nodes [][]byte

	nLeaves int
}

// newEmptyTree returns a tree that has appropriate memory allocation
// for the given number of leaves and the given hash size (in bytes).
//
// Call [*Tree.populate] to fill in the tree.
func newEmptyTree(nLeaves, hashSize int) *Tree {
	if nLeaves <= 0 {
		panic(fmt.Errorf(
			"BUG: nLeaves must be positive (got %d)", nLeaves,
		))
	}
	if hashSize <= 0 {
		panic(fmt.Errorf(
			"BUG: hashSize must be positive (got %d)", hashSize,
		))
	}

	nNodes := NodeCount(nLeaves)

	// We know the exact number of nodes and the size of each hash,
	// so we back the entire tree with a single byte slice.
	// We don't need a direct reference to the backing slice within the Tree.
	mem := make([]byte, nNodes*hashSize)

	nodes := make([][]byte, nNodes)
	for i := range nNodes {
		start := i * hashSize
		end := start + hashSize

		// Cap each view at its own end,
		// so a misbehaving Hasher cannot write into the neighboring node.
		nodes[i] = mem[start:end:end]
	}

	return &Tree{
		nodes: nodes,

		nLeaves: nLeaves,
	}
}

// parallelism controls how populate spreads hashing across goroutines.
type parallelism struct {
	// Maximum number of concurrent hashing goroutines.
	// Values below 2 mean everything is hashed on the calling goroutine.
	workers int

	// Ranges with fewer items than this are hashed inline.
	threshold int
}

// populate uses the leaf data and the hasher
// to fill in every level of the tree, through the root.
func (t *Tree) populate(leafData [][]byte, h merklehash.Hasher, p parallelism) {
	if len(leafData) != t.nLeaves {
		panic(fmt.Errorf(
			"BUG: initialized with %d leaves, attempted to populate with %d",
			t.nLeaves, len(leafData),
		))
	}

	// Write all the leaves into the first level.
	p.run(t.nLeaves, func(i int) {
		h.Leaf(leafData[i], t.nodes[i][:0])
	})

	readStartIdx := 0
	layerWidth := t.nLeaves
	for layerWidth > 1 {
		writeStartIdx := readStartIdx + layerWidth
		nPairs := layerWidth / 2

		// Each pair writes to its own output slot,
		// so the order of completion does not affect the result.
		p.run(nPairs, func(i int) {
			leftIdx := readStartIdx + 2*i
			h.Node(t.nodes[leftIdx], t.nodes[leftIdx+1], t.nodes[writeStartIdx+i][:0])
		})

		if layerWidth&1 == 1 {
			// Odd width: promote the unpaired last node unchanged.
			copy(t.nodes[writeStartIdx+nPairs], t.nodes[readStartIdx+layerWidth-1])
		}

		readStartIdx = writeStartIdx
		layerWidth = nPairs + layerWidth&1
	}
}

// run calls fn for every index in [0, n).
// With more than one worker and enough items,
// the range is split into contiguous chunks hashed concurrently.
func (p parallelism) run(n int, fn func(i int)) {
	if p.workers < 2 || n < max(p.threshold, 2) {
		for i := range n {
			fn(i)
		}
		return
	}

	chunkSize := (n + p.workers - 1) / p.workers

	var g errgroup.Group
	g.SetLimit(p.workers)
	for start := 0; start < n; start += chunkSize {
		end := min(start+chunkSize, n)
		g.Go(func() error {
			for i := start; i < end; i++ {
				fn(i)
			}
			return nil
		})
	}

	// The chunk functions never fail.
	_ = g.Wait()
}

// Root returns a copy of the root digest.
//
// For a single-leaf tree, the root is that leaf's digest.
func (t *Tree) Root() []byte {
	root := t.nodes[len(t.nodes)-1]

	out := make([]byte, len(root))
	copy(out, root)
	return out
}

// Leaf returns the calculated hash for the leaf at the given index.
// The caller must not modify the returned slice.
func (t *Tree) Leaf(idx int) []byte {
	if idx < 0 || idx >= t.nLeaves {
		panic(fmt.Errorf(
			"BUG: attempted to get leaf at index %d; must be in range [0, %d)",
			idx, t.nLeaves,
		))
	}

	return t.nodes[idx]
}

// Level returns views of every digest at the given level,
// where level 0 is the leaves and level [*Tree.Height] is the root alone.
// The caller must not modify the returned slices.
func (t *Tree) Level(level int) [][]byte {
	if level < 0 || level > t.Height() {
		panic(fmt.Errorf(
			"BUG: attempted to get level %d; must be in range [0, %d]",
			level, t.Height(),
		))
	}

	start := 0
	width := t.nLeaves
	for range level {
		start += width
		width = (width + 1) / 2
	}

	return t.nodes[start : start+width : start+width]
}

// NumLeaves reports the number of blocks the tree was constructed from.
func (t *Tree) NumLeaves() int {
	return t.nLeaves
}

// Height reports the number of levels above the leaves.
// A single-leaf tree has height 0.
func (t *Tree) Height() int {
	return Height(t.nLeaves)
}

// HashSize reports the width, in bytes, of every digest in the tree.
func (t *Tree) HashSize() int {
	return len(t.nodes[0])
}

// Len reports the total number of digests stored in the tree,
// leaves and interior nodes included.
func (t *Tree) Len() int {
	return len(t.nodes)
}

// Height returns the height of a tree with nLeaves leaves,
// which is ceil(log2(nLeaves)).
func Height(nLeaves int) int {
	if nLeaves <= 0 {
		panic(fmt.Errorf(
			"BUG: nLeaves must be positive (got %d)", nLeaves,
		))
	}

	return bits.Len(uint(nLeaves - 1))
}

// NodeCount returns the total number of digests stored
// in a tree with nLeaves leaves.
//
// Promoted nodes are stored again at each level they pass through,
// so this may exceed 2*nLeaves - 1 when nLeaves is not a power of two.
func NodeCount(nLeaves int) int {
	if nLeaves <= 0 {
		panic(fmt.Errorf(
			"BUG: nLeaves must be positive (got %d)", nLeaves,
		))
	}

	total := nLeaves
	for w := nLeaves; w > 1; {
		w = (w + 1) / 2
		total += w
	}
	return total
}
