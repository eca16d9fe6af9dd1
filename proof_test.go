package flatmerkle_test

import (
	"testing"

	"github.com/gordian-engine/flatmerkle"
	"github.com/stretchr/testify/require"
)

func TestSide_String(t *testing.T) {
	t.Parallel()

	require.Equal(t, "Left", flatmerkle.Left.String())
	require.Equal(t, "Right", flatmerkle.Right.String())
	require.Equal(t, "Side(0)", flatmerkle.Side(0).String())
}
