package flatmerkle_test

import (
	"context"
	"testing"

	"github.com/gordian-engine/flatmerkle"
	"github.com/gordian-engine/flatmerkle/internal/mtest"
	"github.com/gordian-engine/flatmerkle/merklehash/mhblake2b"
	"github.com/stretchr/testify/require"
)

func TestDiff(t *testing.T) {
	t.Parallel()

	orig := mtest.RandomBlocksForTest(t, 11, 16)
	a, err := flatmerkle.Construct(orig)
	require.NoError(t, err)

	t.Run("identical", func(t *testing.T) {
		t.Parallel()

		b, err := flatmerkle.Construct(orig)
		require.NoError(t, err)

		d, err := flatmerkle.Diff(a, b)
		require.NoError(t, err)
		require.Zero(t, d.Count())
	})

	t.Run("tampered leaves", func(t *testing.T) {
		t.Parallel()

		tampered := append([][]byte(nil), orig...)
		tampered[3] = []byte("replaced")
		tampered[10] = []byte("also replaced")

		b, err := flatmerkle.Construct(tampered)
		require.NoError(t, err)

		d, err := flatmerkle.Diff(a, b)
		require.NoError(t, err)
		require.Equal(t, uint(2), d.Count())
		require.True(t, d.Test(3))
		require.True(t, d.Test(10))
	})

	t.Run("swapped leaves", func(t *testing.T) {
		t.Parallel()

		swapped := append([][]byte(nil), orig...)
		swapped[0], swapped[1] = swapped[1], swapped[0]

		b, err := flatmerkle.Construct(swapped)
		require.NoError(t, err)

		d, err := flatmerkle.Diff(a, b)
		require.NoError(t, err)

		idxs := make([]uint, d.Count())
		_, idxs = d.NextSetMany(0, idxs)
		require.Equal(t, []uint{0, 1}, idxs)
	})

	t.Run("leaf count mismatch", func(t *testing.T) {
		t.Parallel()

		b, err := flatmerkle.Construct(orig[:10])
		require.NoError(t, err)

		_, err = flatmerkle.Diff(a, b)
		require.ErrorIs(t, err, flatmerkle.LeafCountMismatchError{Want: 11, Got: 10})
	})

	t.Run("hash size mismatch", func(t *testing.T) {
		t.Parallel()

		b, err := flatmerkle.NewBuilder(mtest.NewLogger(t), flatmerkle.BuilderConfig{
			Hasher: fnv32Hasher{},
		}).Construct(context.Background(), orig)
		require.NoError(t, err)

		_, err = flatmerkle.Diff(a, b)
		require.ErrorIs(t, err, flatmerkle.HashSizeMismatchError{Want: 32, Got: 4})
	})

	t.Run("different hasher of equal size", func(t *testing.T) {
		t.Parallel()

		b, err := flatmerkle.NewBuilder(mtest.NewLogger(t), flatmerkle.BuilderConfig{
			Hasher: mhblake2b.Hasher{},
		}).Construct(context.Background(), orig)
		require.NoError(t, err)

		d, err := flatmerkle.Diff(a, b)
		require.NoError(t, err)
		require.Equal(t, uint(len(orig)), d.Count())
	})
}
