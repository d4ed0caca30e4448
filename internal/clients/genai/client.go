// Package genai is the boundary to the generative text backend. The backend
// is opaque: a prompt goes in, free text comes out, with no guarantee about
// its shape or latency.
package genai

import (
	"context"

	"github.com/KirkDiggler/rpg-levelgen/internal/errors"
)

//go:generate mockgen -destination=mock/mock_client.go -package=genaimock github.com/KirkDiggler/rpg-levelgen/internal/clients/genai Client

// Client completes prompts
type Client interface {
	// Complete sends prompt to the backend and returns its raw completion
	Complete(ctx context.Context, prompt string) (string, error)
}

// Unconfigured is used when no backend credentials are present. Every call
// fails, which makes callers take their fallback path.
type Unconfigured struct{}

// Complete implements Client
func (Unconfigured) Complete(context.Context, string) (string, error) {
	return "", errors.New(errors.CodeUnavailable, "generative backend is not configured")
}
