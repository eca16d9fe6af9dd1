// Package flatmerkle builds binary Merkle trees over an ordered sequence
// of opaque data blocks, and verifies that a sequence of blocks
// reproduces a previously computed root hash.
//
// The tree is stored flat: every digest lives in one contiguous allocation,
// leaves first in input order, followed by each successive level
// from left to right, ending with the root.
// No parent or child pointers exist; positions are computed from the leaf count.
//
// # Pairing policy
//
// Each level is reduced by hashing adjacent pairs, left to right.
// When a level has an odd number of digests,
// the unpaired last digest is promoted unchanged to the end of the next level.
// Level widths are therefore n, ceil(n/2), ceil(n/4), and so on down to 1,
// and the height of a tree with n leaves is ceil(log2(n)).
//
// For three blocks a, b, and c, the root is
//
//	H( H(H(a) ++ H(b)) ++ H(c) )
//
// Duplicating the last digest instead would give [a b c] and [a b c c]
// the same root, so it is not used.
//
// # Empty input
//
// A tree cannot be constructed from zero blocks.
// [Construct] returns [ErrEmptyInput], and [Verify] reports false.
//
// # Hashing
//
// Leaf digests are H(block) and node digests are H(left ++ right),
// using a [merklehash.Hasher] (SHA-256 by default).
// Roots are only comparable between trees built with the same hasher.
//
// Inclusion proofs are not implemented; see [Proof].
package flatmerkle
