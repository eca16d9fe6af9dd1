package flatmerkle

import (
	"bytes"
	"context"
	"encoding/hex"
	"log/slog"
	"runtime"

	"github.com/gordian-engine/flatmerkle/internal/mtrace"
	"github.com/gordian-engine/flatmerkle/merklehash"
	"github.com/gordian-engine/flatmerkle/merklehash/mhsha256"
)

// DefaultParallelThreshold is the minimum number of leaves or pairs
// in one level before a [Builder] hashes that level concurrently,
// when [BuilderConfig.ParallelThreshold] is zero.
const DefaultParallelThreshold = 256

// BuilderConfig is the configuration for [NewBuilder].
// The zero value builds trees sequentially with SHA-256.
type BuilderConfig struct {
	// How to hash leaves and nodes.
	// Defaults to [mhsha256.Hasher] if nil.
	Hasher merklehash.Hasher

	// Maximum number of goroutines hashing a single level.
	// Zero or one hashes every level on the calling goroutine.
	// A negative value uses runtime.GOMAXPROCS(0).
	//
	// The resulting tree is identical regardless of this setting.
	Workers int

	// Levels with fewer items than this are hashed on the calling goroutine
	// even when Workers allows concurrency.
	// Defaults to [DefaultParallelThreshold] if zero.
	ParallelThreshold int

	// Optional tracer provider.
	// A no-op provider is used if nil.
	TracerProvider mtrace.TracerProvider
}

// Builder constructs and verifies trees with a fixed configuration.
// A Builder is safe for concurrent use.
type Builder struct {
	log *slog.Logger

	h merklehash.Hasher
	p parallelism

	tracer mtrace.Tracer
}

// NewBuilder returns a new Builder.
// The log must not be nil.
func NewBuilder(log *slog.Logger, cfg BuilderConfig) *Builder {
	h := cfg.Hasher
	if h == nil {
		h = mhsha256.Hasher{}
	}

	workers := cfg.Workers
	if workers < 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	threshold := cfg.ParallelThreshold
	if threshold <= 0 {
		threshold = DefaultParallelThreshold
	}

	return &Builder{
		log: log,

		h: h,
		p: parallelism{
			workers:   workers,
			threshold: threshold,
		},

		tracer: mtrace.TracerFrom(cfg.TracerProvider),
	}
}

// Hasher returns the hasher used by b.
func (b *Builder) Hasher() merklehash.Hasher {
	return b.h
}

// Construct builds a tree from the given blocks.
// The blocks are not retained.
//
// The context is only used to parent the trace span;
// construction is not interruptible.
//
// Constructing a tree from zero blocks returns [ErrEmptyInput].
func (b *Builder) Construct(ctx context.Context, blocks [][]byte) (*Tree, error) {
	_, span := b.tracer.Start(
		ctx, "construct Merkle tree",
		mtrace.WithAttributes(mtrace.LeafCountAttr(len(blocks))),
	)
	defer span.End()

	t, err := construct(blocks, b.h, b.p)
	if err != nil {
		mtrace.SpanError(span, err)
		return nil, err
	}

	span.SetAttributes(
		mtrace.HeightAttr(t.Height()),
		mtrace.LazyHexAttr("flatmerkle.root", t.nodes[len(t.nodes)-1]),
	)

	b.log.Debug(
		"Constructed Merkle tree",
		"leaves", t.nLeaves,
		"height", t.Height(),
	)

	return t, nil
}

// Verify reports whether the given blocks, in order,
// produce a tree whose root equals expectedRoot byte for byte.
//
// Verify rebuilds the whole tree, so its cost is linear in the block count.
// It returns false for zero blocks.
func (b *Builder) Verify(ctx context.Context, blocks [][]byte, expectedRoot []byte) bool {
	ctx, span := b.tracer.Start(ctx, "verify Merkle root")
	defer span.End()

	t, err := b.Construct(ctx, blocks)
	if err != nil {
		b.log.Debug(
			"Cannot verify Merkle root",
			"err", err,
		)
		span.SetAttributes(mtrace.MatchAttr(false))
		return false
	}

	got := t.nodes[len(t.nodes)-1]
	ok := bytes.Equal(got, expectedRoot)
	span.SetAttributes(mtrace.MatchAttr(ok))

	if !ok {
		b.log.Debug(
			"Merkle root mismatch",
			"leaves", len(blocks),
			"want", lazyHex(expectedRoot),
			"got", lazyHex(got),
		)
	}

	return ok
}

// lazyHex defers hex encoding until the log record is actually handled.
type lazyHex []byte

func (h lazyHex) LogValue() slog.Value {
	return slog.StringValue(hex.EncodeToString(h))
}
