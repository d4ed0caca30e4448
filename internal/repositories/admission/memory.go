package admission

import (
	"context"
	"sync"
	"time"

	"github.com/cespare/xxhash/v2"

	"github.com/KirkDiggler/rpg-levelgen/internal/errors"
	"github.com/KirkDiggler/rpg-levelgen/internal/pkg/clock"
)

const defaultShardCount = 32

// MemoryConfig configures the in-process admission table
type MemoryConfig struct {
	Limits Limits
	// Shards is the number of independently locked partitions
	Shards int
	// IdleTTL enables the sweeper: windows that ended more than IdleTTL ago
	// are dropped. Zero keeps every window for the life of the process.
	IdleTTL time.Duration
	Clock   clock.Clock
}

// Validate ensures the config is usable
func (c *MemoryConfig) Validate() error {
	if c == nil {
		return errors.InvalidArgument("config is required")
	}
	if err := c.Limits.Validate(); err != nil {
		return err
	}
	vb := errors.NewValidationBuilder()
	if c.Shards < 0 {
		vb.Field("shards", "must not be negative")
	}
	if c.IdleTTL < 0 {
		vb.Field("idle_ttl", "must not be negative")
	}
	return vb.Build()
}

type window struct {
	count int
	start time.Time
}

type shard struct {
	mu      sync.Mutex
	windows map[string]*window
}

// MemoryRepository is a sharded in-memory Repository. Each shard has its own
// lock so different callers rarely contend.
type MemoryRepository struct {
	limits  Limits
	idleTTL time.Duration
	clock   clock.Clock
	shards  []*shard

	startOnce sync.Once
	stopOnce  sync.Once
	stop      chan struct{}
}

// NewMemory creates an in-memory admission repository
func NewMemory(cfg *MemoryConfig) (*MemoryRepository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	count := cfg.Shards
	if count == 0 {
		count = defaultShardCount
	}
	clk := cfg.Clock
	if clk == nil {
		clk = clock.New()
	}

	r := &MemoryRepository{
		limits:  cfg.Limits,
		idleTTL: cfg.IdleTTL,
		clock:   clk,
		shards:  make([]*shard, count),
		stop:    make(chan struct{}),
	}
	for i := range r.shards {
		r.shards[i] = &shard{windows: make(map[string]*window)}
	}

	return r, nil
}

// CheckAndIncrement implements Repository
func (r *MemoryRepository) CheckAndIncrement(_ context.Context, input *CheckAndIncrementInput) (*CheckAndIncrementOutput, error) {
	if err := validateInput(input); err != nil {
		return nil, err
	}

	now := r.clock.Now()
	s := r.shardFor(input.Key)

	s.mu.Lock()
	defer s.mu.Unlock()

	w, ok := s.windows[input.Key]
	if !ok || now.Sub(w.start) > r.limits.Window {
		w = &window{count: 1, start: now}
		s.windows[input.Key] = w
		return &CheckAndIncrementOutput{Allowed: true, Count: 1, ResetAt: now.Add(r.limits.Window)}, nil
	}

	if w.count >= r.limits.MaxRequests {
		return &CheckAndIncrementOutput{Allowed: false, Count: w.count, ResetAt: w.start.Add(r.limits.Window)}, nil
	}

	w.count++
	return &CheckAndIncrementOutput{Allowed: true, Count: w.count, ResetAt: w.start.Add(r.limits.Window)}, nil
}

// Sweep drops windows that ended more than IdleTTL ago and returns how many
// were removed. It locks one shard at a time.
func (r *MemoryRepository) Sweep() int {
	if r.idleTTL <= 0 {
		return 0
	}

	cutoff := r.clock.Now().Add(-(r.limits.Window + r.idleTTL))
	removed := 0
	for _, s := range r.shards {
		s.mu.Lock()
		for key, w := range s.windows {
			if w.start.Before(cutoff) {
				delete(s.windows, key)
				removed++
			}
		}
		s.mu.Unlock()
	}
	return removed
}

// Len returns the number of tracked callers
func (r *MemoryRepository) Len() int {
	n := 0
	for _, s := range r.shards {
		s.mu.Lock()
		n += len(s.windows)
		s.mu.Unlock()
	}
	return n
}

// StartJanitor runs Sweep every interval until Close is called. It is a no-op
// when IdleTTL is zero.
func (r *MemoryRepository) StartJanitor(interval time.Duration) {
	if r.idleTTL <= 0 || interval <= 0 {
		return
	}

	r.startOnce.Do(func() {
		go func() {
			ticker := time.NewTicker(interval)
			defer ticker.Stop()
			for {
				select {
				case <-ticker.C:
					r.Sweep()
				case <-r.stop:
					return
				}
			}
		}()
	})
}

// Close stops the janitor if one is running
func (r *MemoryRepository) Close() error {
	r.stopOnce.Do(func() {
		close(r.stop)
	})
	return nil
}

func (r *MemoryRepository) shardFor(key string) *shard {
	return r.shards[xxhash.Sum64String(key)%uint64(len(r.shards))]
}
