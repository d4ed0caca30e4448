package client

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc/metadata"

	"github.com/KirkDiggler/rpg-levelgen/internal/errors"
	"github.com/KirkDiggler/rpg-levelgen/internal/handlers/levelgen/v1alpha1"
)

func TestRequestContext(t *testing.T) {
	t.Run("attaches caller id", func(t *testing.T) {
		callerID = "tester"
		t.Cleanup(func() { callerID = "" })

		ctx, cancel := requestContext()
		defer cancel()

		md, ok := metadata.FromOutgoingContext(ctx)
		require.True(t, ok)
		assert.Equal(t, []string{"tester"}, md.Get(v1alpha1.CallerIDHeader))

		_, hasDeadline := ctx.Deadline()
		assert.True(t, hasDeadline)
	})

	t.Run("omits empty caller id", func(t *testing.T) {
		ctx, cancel := requestContext()
		defer cancel()

		_, ok := metadata.FromOutgoingContext(ctx)
		assert.False(t, ok)
	})
}

func TestDescribeError(t *testing.T) {
	err := errors.ToGRPCError(errors.RateLimited("too many requests, please try again later"))

	got := describeError("generate level", err)
	require.Error(t, got)
	assert.Contains(t, got.Error(), "generate level failed")
	assert.Contains(t, got.Error(), "too many requests")
}
