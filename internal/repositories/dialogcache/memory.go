package dialogcache

import (
	"context"
	"sync"
	"sync/atomic"

	"github.com/cespare/xxhash/v2"

	"github.com/KirkDiggler/rpg-levelgen/internal/errors"
)

const defaultShardCount = 16

// MemoryConfig configures the in-process cache
type MemoryConfig struct {
	Capacity int
	Shards   int
}

// Validate ensures the config is usable
func (c *MemoryConfig) Validate() error {
	if c == nil {
		return errors.InvalidArgument("config is required")
	}
	vb := errors.NewValidationBuilder()
	vb.PositiveField("capacity", int64(c.Capacity))
	if c.Shards < 0 {
		vb.Field("shards", "must not be negative")
	}
	return vb.Build()
}

type shard struct {
	mu      sync.RWMutex
	entries map[string]string
}

// slot is one position of the insertion ring. gen counts completed writes,
// so the writer holding sequence n waits for gen == n/capacity.
type slot struct {
	mu   sync.Mutex
	cond *sync.Cond
	gen  uint64
	key  string
}

// MemoryRepository is a sharded in-memory Repository. Reads take only their
// shard's read lock. Insertion order is a ring of capacity slots stamped by
// an atomic sequence; a new key's slot holds the oldest key, which is the
// one it evicts.
type MemoryRepository struct {
	capacity int
	shards   []*shard

	seq   atomic.Uint64
	slots []*slot
}

// NewMemory creates an in-memory dialog cache
func NewMemory(cfg *MemoryConfig) (*MemoryRepository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	count := cfg.Shards
	if count == 0 {
		count = defaultShardCount
	}

	r := &MemoryRepository{
		capacity: cfg.Capacity,
		shards:   make([]*shard, count),
		slots:    make([]*slot, cfg.Capacity),
	}
	for i := range r.shards {
		r.shards[i] = &shard{entries: make(map[string]string)}
	}
	for i := range r.slots {
		sl := &slot{}
		sl.cond = sync.NewCond(&sl.mu)
		r.slots[i] = sl
	}
	return r, nil
}

// Get implements Repository
func (r *MemoryRepository) Get(_ context.Context, input *GetInput) (*GetOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if err := validateKey(input.Key); err != nil {
		return nil, err
	}

	s := r.shardFor(input.Key)
	s.mu.RLock()
	value, ok := s.entries[input.Key]
	s.mu.RUnlock()

	return &GetOutput{Value: value, Found: ok}, nil
}

// Put implements Repository. Overwrites keep the key's original position.
func (r *MemoryRepository) Put(_ context.Context, input *PutInput) (*PutOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if err := validateKey(input.Key); err != nil {
		return nil, err
	}

	s := r.shardFor(input.Key)
	s.mu.Lock()
	_, existed := s.entries[input.Key]
	s.entries[input.Key] = input.Value
	s.mu.Unlock()

	out := &PutOutput{}
	if existed {
		return out, nil
	}

	if victim, ok := r.record(input.Key); ok {
		vs := r.shardFor(victim)
		vs.mu.Lock()
		delete(vs.entries, victim)
		vs.mu.Unlock()
		out.Evicted = append(out.Evicted, victim)
	}

	return out, nil
}

// record places key at the next ring position and returns the key that
// position held, if any
func (r *MemoryRepository) record(key string) (string, bool) {
	n := r.seq.Add(1) - 1
	sl := r.slots[n%uint64(r.capacity)]
	want := n / uint64(r.capacity)

	sl.mu.Lock()
	defer sl.mu.Unlock()
	for sl.gen != want {
		sl.cond.Wait()
	}

	victim, occupied := sl.key, sl.gen > 0
	sl.key = key
	sl.gen++
	sl.cond.Broadcast()
	return victim, occupied
}

// Len returns the number of cached entries
func (r *MemoryRepository) Len() int {
	total := 0
	for _, s := range r.shards {
		s.mu.RLock()
		total += len(s.entries)
		s.mu.RUnlock()
	}
	return total
}

func (r *MemoryRepository) shardFor(key string) *shard {
	return r.shards[xxhash.Sum64String(key)%uint64(len(r.shards))]
}
