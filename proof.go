package flatmerkle

import "fmt"

// Side indicates which operand a proof digest occupies
// when it is concatenated with the digest being verified.
type Side uint8

const (
	// Left means the proof digest is the left operand: H(proof ++ current).
	Left Side = iota + 1

	// Right means the proof digest is the right operand: H(current ++ proof).
	Right
)

func (s Side) String() string {
	switch s {
	case Left:
		return "Left"
	case Right:
		return "Right"
	default:
		return fmt.Sprintf("Side(%d)", uint8(s))
	}
}

// ProofStep is one sibling digest on the path from a leaf to the root.
type ProofStep struct {
	Side   Side
	Digest []byte
}

// Proof is the shape of an inclusion proof for a single leaf:
// the sibling digests from the leaf level upward, in order.
//
// Proof is an extension point only.
// Nothing in this package generates or verifies proofs,
// and verification is by full recomputation with [Verify].
// Levels where a node was promoted contribute no step,
// so proof length varies between leaves of the same tree
// when the leaf count is not a power of two.
type Proof struct {
	LeafIndex int
	Steps     []ProofStep
}
