package flatmerkle

import (
	"errors"
	"fmt"
)

// ErrEmptyInput is returned when attempting to construct a tree from zero blocks.
var ErrEmptyInput = errors.New("cannot construct Merkle tree from zero blocks")

// LeafCountMismatchError is returned from [Diff]
// when the two trees have different numbers of leaves.
type LeafCountMismatchError struct {
	Want, Got int
}

func (e LeafCountMismatchError) Error() string {
	return fmt.Sprintf("leaf count mismatch: want %d, got %d", e.Want, e.Got)
}

// HashSizeMismatchError is returned from [Diff]
// when the two trees were built with hashers of different output sizes.
type HashSizeMismatchError struct {
	Want, Got int
}

func (e HashSizeMismatchError) Error() string {
	return fmt.Sprintf("hash size mismatch: want %d, got %d", e.Want, e.Got)
}
