// Package merklehash declares the [Hasher] interface
// used to compute leaf and node digests of a flatmerkle tree.
//
// Subpackages provide implementations backed by concrete hash functions.
// Roots are only comparable when built with the same Hasher.
package merklehash

// Hasher is the user-defined interface for hashing leaves and nodes.
// The tree passes the raw block data to the Leaf method to create a leaf digest,
// and it passes pairs of previously computed digests to the Node method.
//
// To be allocation-efficient, the Hasher implementation
// must append its hash output to dst, instead of creating a new byte slice.
// The tree always passes a zero-length dst with capacity for exactly Size bytes.
// Hasher must not retain references to the dst slice.
//
// Furthermore, Hasher methods must be safe to call concurrently.
type Hasher interface {
	// Leaf appends H(in) to dst.
	Leaf(in, dst []byte)

	// Node appends H(left ++ right) to dst.
	// The order of left and right must be preserved.
	Node(left, right, dst []byte)

	// Size is the fixed width of every digest, in bytes.
	Size() int
}
