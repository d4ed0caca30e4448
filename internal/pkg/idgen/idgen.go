// Package idgen generates request identifiers for log correlation
package idgen

import (
	"strconv"
	"sync/atomic"

	"github.com/google/uuid"
)

// Generator generates unique identifiers
type Generator interface {
	Generate() string
}

// GeneratorFunc adapts a function to Generator
type GeneratorFunc func() string

// Generate implements Generator
func (f GeneratorFunc) Generate() string {
	return f()
}

// UUID returns a Generator of prefix_<uuid v4>, or a bare UUID when prefix
// is empty
func UUID(prefix string) Generator {
	return GeneratorFunc(func() string {
		return withPrefix(prefix, uuid.NewString())
	})
}

// Sequential returns prefix_1, prefix_2, and so on. Safe for concurrent use.
func Sequential(prefix string) Generator {
	var n atomic.Uint64
	return GeneratorFunc(func() string {
		return withPrefix(prefix, strconv.FormatUint(n.Add(1), 10))
	})
}

func withPrefix(prefix, id string) string {
	if prefix == "" {
		return id
	}
	return prefix + "_" + id
}
