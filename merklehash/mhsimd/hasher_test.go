package mhsimd_test

import (
	"testing"

	"github.com/gordian-engine/flatmerkle/merklehash"
	"github.com/gordian-engine/flatmerkle/merklehash/merklehashtest"
	"github.com/gordian-engine/flatmerkle/merklehash/mhsha256"
	"github.com/gordian-engine/flatmerkle/merklehash/mhsimd"
	"github.com/stretchr/testify/require"
)

func TestCompliance(t *testing.T) {
	t.Parallel()

	merklehashtest.TestHasherCompliance(t, func() merklehash.Hasher {
		return mhsimd.Hasher{}
	})
}

func TestHasher_matchesStandardSHA256(t *testing.T) {
	t.Parallel()

	var simd mhsimd.Hasher
	var std mhsha256.Hasher

	got := make([]byte, mhsimd.HashSize)
	simd.Leaf([]byte("leaf"), got[:0])
	want := make([]byte, mhsha256.HashSize)
	std.Leaf([]byte("leaf"), want[:0])
	require.Equal(t, want, got)

	gotNode := make([]byte, mhsimd.HashSize)
	simd.Node(got, want, gotNode[:0])
	wantNode := make([]byte, mhsha256.HashSize)
	std.Node(got, want, wantNode[:0])
	require.Equal(t, wantNode, gotNode)
}
