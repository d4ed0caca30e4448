// Package dialogcache memoizes generated NPC dialog by caller-supplied key.
// Capacity is bounded and eviction is strictly first-in first-out; reading
// an entry does not protect it from eviction.
package dialogcache

import (
	"context"

	"github.com/KirkDiggler/rpg-levelgen/internal/errors"
)

//go:generate mockgen -destination=mock/mock_repository.go -package=dialogcachemock github.com/KirkDiggler/rpg-levelgen/internal/repositories/dialogcache Repository

// DefaultCapacity is the number of entries kept when none is configured
const DefaultCapacity = 100

// GetInput identifies a cached entry
type GetInput struct {
	Key string
}

// GetOutput holds a cache lookup result
type GetOutput struct {
	Value string
	Found bool
}

// PutInput is an entry to store
type PutInput struct {
	Key   string
	Value string
}

// PutOutput reports which keys were evicted to make room
type PutOutput struct {
	Evicted []string
}

// Repository stores dialog lines
type Repository interface {
	// Get returns the cached value for a key
	Get(ctx context.Context, input *GetInput) (*GetOutput, error)

	// Put stores a value. A new key that takes the cache past capacity
	// evicts the oldest inserted key. Overwriting an existing key keeps its
	// original position.
	Put(ctx context.Context, input *PutInput) (*PutOutput, error)
}

func validateKey(key string) error {
	if key == "" {
		return errors.InvalidArgument("key is required")
	}
	return nil
}
