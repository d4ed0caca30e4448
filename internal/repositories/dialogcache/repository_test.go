package dialogcache_test

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/rpg-levelgen/internal/errors"
	"github.com/KirkDiggler/rpg-levelgen/internal/repositories/dialogcache"
	"github.com/KirkDiggler/rpg-levelgen/internal/testutils"
)

const testCapacity = 3

// RepositoryTestSuite runs the same behavior checks against every
// implementation
type RepositoryTestSuite struct {
	suite.Suite
	newRepo func() dialogcache.Repository
	repo    dialogcache.Repository
	ctx     context.Context
}

func TestMemoryRepository(t *testing.T) {
	suite.Run(t, &RepositoryTestSuite{
		newRepo: func() dialogcache.Repository {
			repo, err := dialogcache.NewMemory(&dialogcache.MemoryConfig{Capacity: testCapacity, Shards: 2})
			if err != nil {
				t.Fatal(err)
			}
			return repo
		},
	})
}

func TestRedisRepository(t *testing.T) {
	s := &RepositoryTestSuite{}
	s.newRepo = func() dialogcache.Repository {
		client, _ := testutils.CreateTestRedisClient(s.T())
		repo, err := dialogcache.NewRedis(&dialogcache.RedisConfig{Client: client, Capacity: testCapacity})
		s.Require().NoError(err)
		return repo
	}
	suite.Run(t, s)
}

func (s *RepositoryTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.repo = s.newRepo()
}

func (s *RepositoryTestSuite) put(key, value string) *dialogcache.PutOutput {
	out, err := s.repo.Put(s.ctx, &dialogcache.PutInput{Key: key, Value: value})
	s.Require().NoError(err)
	return out
}

func (s *RepositoryTestSuite) get(key string) *dialogcache.GetOutput {
	out, err := s.repo.Get(s.ctx, &dialogcache.GetInput{Key: key})
	s.Require().NoError(err)
	return out
}

func (s *RepositoryTestSuite) TestGetMissing() {
	out := s.get("nobody")
	s.False(out.Found)
	s.Empty(out.Value)
}

func (s *RepositoryTestSuite) TestPutThenGet() {
	s.put("mario:hello", "It's-a me!")

	out := s.get("mario:hello")
	s.True(out.Found)
	s.Equal("It's-a me!", out.Value)
}

func (s *RepositoryTestSuite) TestEvictsFirstInsertedOnOverflow() {
	for i := 0; i < testCapacity; i++ {
		out := s.put(fmt.Sprintf("key-%d", i), fmt.Sprintf("value-%d", i))
		s.Empty(out.Evicted)
	}

	out := s.put("key-new", "value-new")
	s.Equal([]string{"key-0"}, out.Evicted)

	s.False(s.get("key-0").Found)
	for _, key := range []string{"key-1", "key-2", "key-new"} {
		s.True(s.get(key).Found, key)
	}
}

func (s *RepositoryTestSuite) TestReadsDoNotProtectFromEviction() {
	s.put("a", "1")
	s.put("b", "2")
	s.put("c", "3")

	s.True(s.get("a").Found)
	s.put("d", "4")

	s.False(s.get("a").Found)
	s.True(s.get("b").Found)
}

func (s *RepositoryTestSuite) TestOverwriteKeepsPosition() {
	s.put("a", "1")
	s.put("b", "2")
	s.put("c", "3")

	out := s.put("a", "updated")
	s.Empty(out.Evicted)
	s.Equal("updated", s.get("a").Value)

	out = s.put("d", "4")
	s.Equal([]string{"a"}, out.Evicted)
}

func (s *RepositoryTestSuite) TestEmptyKeyRejected() {
	_, err := s.repo.Get(s.ctx, &dialogcache.GetInput{})
	s.True(errors.IsInvalidArgument(err))

	_, err = s.repo.Put(s.ctx, &dialogcache.PutInput{Value: "x"})
	s.True(errors.IsInvalidArgument(err))
}

func TestMemoryConcurrentPutsStayBounded(t *testing.T) {
	repo, err := dialogcache.NewMemory(&dialogcache.MemoryConfig{Capacity: 10})
	if err != nil {
		t.Fatal(err)
	}

	ctx := context.Background()
	var wg sync.WaitGroup
	for w := 0; w < 8; w++ {
		wg.Add(1)
		go func(w int) {
			defer wg.Done()
			for i := 0; i < 100; i++ {
				key := fmt.Sprintf("w%d-%d", w, i)
				if _, err := repo.Put(ctx, &dialogcache.PutInput{Key: key, Value: key}); err != nil {
					t.Error(err)
					return
				}
				if _, err := repo.Get(ctx, &dialogcache.GetInput{Key: key}); err != nil {
					t.Error(err)
					return
				}
			}
		}(w)
	}
	wg.Wait()

	if got := repo.Len(); got != 10 {
		t.Fatalf("expected 10 entries, got %d", got)
	}
}

func TestMemoryConfigValidation(t *testing.T) {
	if _, err := dialogcache.NewMemory(&dialogcache.MemoryConfig{}); err == nil {
		t.Fatal("expected error for zero capacity")
	}
	if _, err := dialogcache.NewMemory(nil); err == nil {
		t.Fatal("expected error for nil config")
	}
}
