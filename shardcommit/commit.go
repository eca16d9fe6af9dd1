package shardcommit

import (
	"bytes"
	"context"
	"fmt"

	"github.com/bits-and-blooms/bitset"
	"github.com/gordian-engine/flatmerkle"
	"github.com/klauspost/reedsolomon"
)

// CommitConfig is the config for [Commit].
type CommitConfig struct {
	// Desired maximum size of a single shard.
	// The data is split into as few data shards as possible
	// without exceeding this size.
	MaxShardSize int

	// ParityRatio indicates the desired ratio of
	// parity shards to data shards.
	// For example, ParityRatio=0.25 means there will be
	// one parity shard for every four data shards.
	// The parity count is rounded down
	// if the ratio does not result in a whole number.
	ParityRatio float32
}

// Commitment is the value returned by [Commit].
type Commitment struct {
	// The number of data and parity shards.
	NumData, NumParity int

	// Length of the original data,
	// needed to strip padding from the final data shard.
	DataSize int

	// The data shards followed by the parity shards,
	// aligned one-to-one with the leaves of Tree.
	Shards [][]byte

	// The tree over all shards.
	Tree *flatmerkle.Tree
}

// Root returns the root of the commitment's tree.
func (c Commitment) Root() []byte {
	return c.Tree.Root()
}

// RecoverConfig returns the config needed to call [Recover]
// against this commitment.
func (c Commitment) RecoverConfig() RecoverConfig {
	return RecoverConfig{
		NumData:   c.NumData,
		NumParity: c.NumParity,
		DataSize:  c.DataSize,
		Root:      c.Tree.Root(),
	}
}

// Commit erasure-codes data and builds a tree over the resulting shards
// using the given Builder.
//
// Committing to empty data returns [flatmerkle.ErrEmptyInput].
func Commit(
	ctx context.Context,
	b *flatmerkle.Builder,
	data []byte,
	cfg CommitConfig,
) (Commitment, error) {
	if cfg.MaxShardSize <= 0 {
		panic(fmt.Errorf(
			"BUG: MaxShardSize must be positive (got %d)", cfg.MaxShardSize,
		))
	}
	if cfg.ParityRatio < 0 {
		panic(fmt.Errorf(
			"BUG: ParityRatio must be non-negative (got %g)", cfg.ParityRatio,
		))
	}

	if len(data) == 0 {
		return Commitment{}, flatmerkle.ErrEmptyInput
	}

	nData := len(data) / cfg.MaxShardSize
	if len(data)%cfg.MaxShardSize > 0 {
		nData++
	}
	nParity := int(cfg.ParityRatio * float32(nData))

	enc, err := reedsolomon.New(
		nData, nParity,
		reedsolomon.WithAutoGoroutines(cfg.MaxShardSize),
	)
	if err != nil {
		return Commitment{}, fmt.Errorf(
			"failed to build Reed-Solomon encoder for %d data and %d parity shards: %w",
			nData, nParity, err,
		)
	}

	// Split may use spare capacity of data,
	// so split a clone rather than the caller's slice.
	shards, err := enc.Split(bytes.Clone(data))
	if err != nil {
		return Commitment{}, fmt.Errorf(
			"failed to split data into shards: %w", err,
		)
	}

	if err := enc.Encode(shards); err != nil {
		return Commitment{}, fmt.Errorf(
			"failed to erasure-code data: %w", err,
		)
	}

	// Now that the data is erasure-coded,
	// we can build the Merkle tree.
	t, err := b.Construct(ctx, shards)
	if err != nil {
		return Commitment{}, fmt.Errorf(
			"failed to build tree over shards: %w", err,
		)
	}

	return Commitment{
		NumData:   nData,
		NumParity: nParity,
		DataSize:  len(data),

		Shards: shards,
		Tree:   t,
	}, nil
}

// RecoverConfig is the config for [Recover].
type RecoverConfig struct {
	NumData, NumParity int

	// Length of the original data.
	DataSize int

	// The committed root.
	Root []byte
}

// Recover rebuilds the original data from a subset of shards.
//
// The shards slice must have one entry per data and parity shard.
// Only entries whose index is set in have are read;
// the others may be nil.
// Neither shards nor its entries are modified.
//
// After reconstructing any missing shards,
// Recover builds a tree over the complete set
// and returns a [RootMismatchError] if its root differs from cfg.Root.
func Recover(
	ctx context.Context,
	b *flatmerkle.Builder,
	shards [][]byte,
	have *bitset.BitSet,
	cfg RecoverConfig,
) ([]byte, error) {
	total := cfg.NumData + cfg.NumParity
	if len(shards) != total {
		return nil, fmt.Errorf(
			"expected %d shards (%d data, %d parity), got %d",
			total, cfg.NumData, cfg.NumParity, len(shards),
		)
	}

	work := make([][]byte, total)
	nHave := 0
	for i, ok := have.NextSet(0); ok && int(i) < total; i, ok = have.NextSet(i + 1) {
		work[i] = bytes.Clone(shards[i])
		nHave++
	}

	if nHave < cfg.NumData {
		return nil, NotEnoughShardsError{Have: nHave, Need: cfg.NumData}
	}

	enc, err := reedsolomon.New(cfg.NumData, cfg.NumParity)
	if err != nil {
		return nil, fmt.Errorf(
			"failed to build Reed-Solomon decoder for %d data and %d parity shards: %w",
			cfg.NumData, cfg.NumParity, err,
		)
	}

	if nHave < total {
		if err := enc.Reconstruct(work); err != nil {
			return nil, fmt.Errorf("failed to reconstruct shards: %w", err)
		}
	}

	t, err := b.Construct(ctx, work)
	if err != nil {
		return nil, fmt.Errorf("failed to build tree over shards: %w", err)
	}

	if got := t.Root(); !bytes.Equal(got, cfg.Root) {
		return nil, RootMismatchError{Want: cfg.Root, Got: got}
	}

	var buf bytes.Buffer
	buf.Grow(cfg.DataSize)
	if err := enc.Join(&buf, work, cfg.DataSize); err != nil {
		return nil, fmt.Errorf("failed to join data shards: %w", err)
	}

	return buf.Bytes(), nil
}
