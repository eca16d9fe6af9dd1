package merklehashtest

import (
	"bytes"
	"sync"
	"testing"

	"github.com/gordian-engine/flatmerkle/merklehash"
	"github.com/stretchr/testify/require"
)

// HasherFactory returns a Hasher to be checked by [TestHasherCompliance].
type HasherFactory func() merklehash.Hasher

// TestHasherCompliance runs the behaviors every [merklehash.Hasher]
// must satisfy in order to be used by a flatmerkle tree.
func TestHasherCompliance(t *testing.T, f HasherFactory) {
	t.Run("size is positive", func(t *testing.T) {
		t.Parallel()

		require.Positive(t, f().Size())
	})

	t.Run("leaf is deterministic", func(t *testing.T) {
		t.Parallel()

		h := f()
		sz := h.Size()

		dst01 := make([]byte, sz)
		h.Leaf([]byte("deterministic_data"), dst01[:0])

		dst02 := make([]byte, sz)
		h.Leaf([]byte("deterministic_data"), dst02[:0])

		require.Equal(t, dst01, dst02)
		require.NotEqual(t, make([]byte, sz), dst01)
	})

	t.Run("leaf respects content", func(t *testing.T) {
		t.Parallel()

		h := f()
		sz := h.Size()

		dst01 := make([]byte, sz)
		h.Leaf([]byte("hello"), dst01[:0])

		dst02 := make([]byte, sz)
		h.Leaf([]byte("hellp"), dst02[:0])

		require.NotEqual(t, dst01, dst02)
	})

	t.Run("leaf fills exactly Size bytes", func(t *testing.T) {
		t.Parallel()

		h := f()
		sz := h.Size()

		// One extra sentinel byte past the capacity handed to the hasher.
		buf := bytes.Repeat([]byte{0xAB}, sz+1)
		h.Leaf([]byte("bounded"), buf[:0:sz])

		require.Equal(t, byte(0xAB), buf[sz])

		want := make([]byte, sz)
		h.Leaf([]byte("bounded"), want[:0])
		require.Equal(t, want, buf[:sz])
	})

	t.Run("node respects position", func(t *testing.T) {
		t.Parallel()

		h := f()
		sz := h.Size()

		l := make([]byte, sz)
		h.Leaf([]byte("left"), l[:0])
		r := make([]byte, sz)
		h.Leaf([]byte("right"), r[:0])

		lr := make([]byte, sz)
		h.Node(l, r, lr[:0])

		rl := make([]byte, sz)
		h.Node(r, l, rl[:0])

		require.NotEqual(t, lr, rl)
	})

	t.Run("node is a hash of the pair", func(t *testing.T) {
		t.Parallel()

		h := f()
		sz := h.Size()

		l := make([]byte, sz)
		h.Leaf([]byte("left"), l[:0])
		r := make([]byte, sz)
		h.Leaf([]byte("right"), r[:0])

		n1 := make([]byte, sz)
		h.Node(l, r, n1[:0])
		n2 := make([]byte, sz)
		h.Node(l, r, n2[:0])

		require.Equal(t, n1, n2)
		require.NotEqual(t, l, n1)
		require.NotEqual(t, r, n1)
	})

	t.Run("safe for concurrent use", func(t *testing.T) {
		t.Parallel()

		h := f()
		sz := h.Size()

		want := make([]byte, sz)
		h.Leaf([]byte("concurrent"), want[:0])

		const n = 16
		got := make([][]byte, n)

		var wg sync.WaitGroup
		for i := range n {
			wg.Add(1)
			go func() {
				defer wg.Done()
				dst := make([]byte, sz)
				h.Leaf([]byte("concurrent"), dst[:0])
				got[i] = dst
			}()
		}
		wg.Wait()

		for i := range n {
			require.Equal(t, want, got[i])
		}
	})
}
