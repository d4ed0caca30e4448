package gateway_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/KirkDiggler/rpg-levelgen/internal/errors"
	"github.com/KirkDiggler/rpg-levelgen/internal/orchestrators/gateway"
)

func TestPublicLevelError(t *testing.T) {
	testCases := []struct {
		name         string
		err          error
		expectedCode errors.Code
		expectedMsg  string
		fallback     bool
	}{
		{
			name:         "invalid input keeps message",
			err:          errors.InvalidArgument("caller id is required"),
			expectedCode: errors.CodeInvalidArgument,
			expectedMsg:  "caller id is required",
		},
		{
			name:         "rate limit keeps message",
			err:          errors.RateLimited("too many requests"),
			expectedCode: errors.CodeResourceExhausted,
			expectedMsg:  "too many requests",
		},
		{
			name: "validation diagnostics are dropped",
			err: errors.ValidationFailure("generated level failed validation").
				WithMeta(gateway.MetaDiagnostics, []string{"gap of 18.0"}),
			expectedCode: errors.CodeFailedPrecondition,
			expectedMsg:  gateway.MessageLevelFailed,
			fallback:     true,
		},
		{
			name:         "upstream detail is dropped",
			err:          errors.Upstream(fmt.Errorf("dial tcp: secret host"), "backend failed"),
			expectedCode: errors.CodeUnavailable,
			expectedMsg:  gateway.MessageLevelFailed,
			fallback:     true,
		},
		{
			name:         "plain errors become internal",
			err:          fmt.Errorf("boom"),
			expectedCode: errors.CodeInternal,
			expectedMsg:  gateway.MessageLevelFailed,
			fallback:     true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			pub := gateway.PublicLevelError(tc.err)
			assert.Equal(t, tc.expectedCode, pub.Code)
			assert.Equal(t, tc.expectedMsg, pub.Message)
			assert.Nil(t, pub.Cause)
			assert.NotContains(t, pub.Meta, gateway.MetaDiagnostics)
			if tc.fallback {
				assert.Equal(t, true, pub.Meta[gateway.MetaFallback])
			} else {
				assert.NotContains(t, pub.Meta, gateway.MetaFallback)
			}
		})
	}
}

func TestPublicDialogError(t *testing.T) {
	pub := gateway.PublicDialogError(errors.Upstream(nil, "backend failed"))
	assert.Equal(t, errors.CodeUnavailable, pub.Code)
	assert.Equal(t, gateway.MessageDialogFailed, pub.Message)
	assert.Equal(t, gateway.FallbackDialog, pub.Meta[gateway.MetaDialog])

	limited := gateway.PublicDialogError(errors.RateLimited("slow down").WithMeta(gateway.MetaResetAt, "2024-01-01T00:00:00Z"))
	assert.Equal(t, errors.CodeResourceExhausted, limited.Code)
	assert.Equal(t, "2024-01-01T00:00:00Z", limited.Meta[gateway.MetaResetAt])
	assert.NotContains(t, limited.Meta, gateway.MetaDialog)
}

func TestPublicError(t *testing.T) {
	assert.Equal(t, errors.CodeInternal, gateway.PublicError(errors.Internal("db")).Code)
	assert.Equal(t, errors.CodeInvalidArgument, gateway.PublicError(errors.InvalidArgument("bad")).Code)
}
