package flatmerkle

import (
	"bytes"

	"github.com/gordian-engine/flatmerkle/merklehash"
	"github.com/gordian-engine/flatmerkle/merklehash/mhsha256"
)

// Construct builds a tree from the given blocks using SHA-256,
// hashing on the calling goroutine.
// Use a [Builder] to choose a different hasher or to hash concurrently.
//
// Constructing a tree from zero blocks returns [ErrEmptyInput].
func Construct(blocks [][]byte) (*Tree, error) {
	return construct(blocks, mhsha256.Hasher{}, parallelism{})
}

// Verify reports whether the given blocks, in order,
// produce a SHA-256 tree whose root equals expectedRoot.
// It returns false for zero blocks.
func Verify(blocks [][]byte, expectedRoot []byte) bool {
	t, err := Construct(blocks)
	if err != nil {
		return false
	}

	return bytes.Equal(t.nodes[len(t.nodes)-1], expectedRoot)
}

func construct(blocks [][]byte, h merklehash.Hasher, p parallelism) (*Tree, error) {
	if len(blocks) == 0 {
		return nil, ErrEmptyInput
	}

	t := newEmptyTree(len(blocks), h.Size())
	t.populate(blocks, h, p)
	return t, nil
}
