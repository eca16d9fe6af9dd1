package flatmerkle

import (
	"bytes"

	"github.com/bits-and-blooms/bitset"
)

// Diff compares the leaf digests of a and b,
// returning the set of leaf indices whose digests differ.
//
// Both trees must have the same number of leaves and the same hash size;
// otherwise Diff returns a [LeafCountMismatchError] or [HashSizeMismatchError].
// Trees built with different hashers of equal size report every leaf as different.
//
// If the roots are equal, Diff returns an empty set without comparing leaves.
func Diff(a, b *Tree) (*bitset.BitSet, error) {
	if a.nLeaves != b.nLeaves {
		return nil, LeafCountMismatchError{Want: a.nLeaves, Got: b.nLeaves}
	}
	if a.HashSize() != b.HashSize() {
		return nil, HashSizeMismatchError{Want: a.HashSize(), Got: b.HashSize()}
	}

	diff := bitset.MustNew(uint(a.nLeaves))

	if bytes.Equal(a.nodes[len(a.nodes)-1], b.nodes[len(b.nodes)-1]) {
		return diff, nil
	}

	for i := range a.nLeaves {
		if !bytes.Equal(a.nodes[i], b.nodes[i]) {
			diff.Set(uint(i))
		}
	}

	return diff, nil
}
