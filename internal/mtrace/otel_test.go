package mtrace_test

import (
	"context"
	"errors"
	"testing"

	"github.com/gordian-engine/flatmerkle/internal/mtrace"
	"github.com/stretchr/testify/require"
)

func TestTracerFrom_nilProvider(t *testing.T) {
	t.Parallel()

	tr := mtrace.TracerFrom(nil)
	require.NotNil(t, tr)

	_, span := tr.Start(
		context.Background(), "test span",
		mtrace.WithAttributes(mtrace.LeafCountAttr(3)),
	)
	mtrace.SpanError(span, errors.New("boom"))
	span.End()

	// The no-op provider never records.
	require.False(t, span.IsRecording())
}

func TestLazyHexAttr(t *testing.T) {
	t.Parallel()

	attr := mtrace.LazyHexAttr("root", []byte{0xde, 0xad, 0xbe, 0xef})
	require.Equal(t, "root", string(attr.Key))
	require.Equal(t, "deadbeef", attr.Value.Emit())
}
