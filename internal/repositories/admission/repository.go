// Package admission provides per-caller fixed-window request counters
package admission

import (
	"context"
	"time"

	"github.com/KirkDiggler/rpg-levelgen/internal/errors"
)

//go:generate mockgen -destination=mock/mock_repository.go -package=admissionmock github.com/KirkDiggler/rpg-levelgen/internal/repositories/admission Repository

const (
	// DefaultWindow is the length of one admission window
	DefaultWindow = 60 * time.Second
	// DefaultMaxRequests is how many requests a caller may make per window
	DefaultMaxRequests = 10
)

// Limits is the fixed-window policy shared by all implementations
type Limits struct {
	Window      time.Duration
	MaxRequests int
}

// Validate ensures the limits are usable
func (l Limits) Validate() error {
	vb := errors.NewValidationBuilder()
	if l.Window <= 0 {
		vb.Field("window", "must be positive")
	}
	vb.PositiveField("max_requests", int64(l.MaxRequests))
	return vb.Build()
}

// CheckAndIncrementInput identifies the caller being admitted
type CheckAndIncrementInput struct {
	Key string
}

// CheckAndIncrementOutput reports the admission decision
type CheckAndIncrementOutput struct {
	// Allowed is false when the caller has used up the current window
	Allowed bool
	// Count is the number of admitted requests in the current window
	Count int
	// ResetAt is when the current window ends
	ResetAt time.Time
}

// Repository tracks admission windows keyed by caller identity
type Repository interface {
	// CheckAndIncrement atomically decides whether the caller may proceed and,
	// if so, counts the request. A denied request does not extend the window.
	CheckAndIncrement(ctx context.Context, input *CheckAndIncrementInput) (*CheckAndIncrementOutput, error)
}

func validateInput(input *CheckAndIncrementInput) error {
	if input == nil {
		return errors.InvalidArgument("input is required")
	}
	if input.Key == "" {
		return errors.InvalidArgument("key is required")
	}
	return nil
}
