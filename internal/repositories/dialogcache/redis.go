package dialogcache

import (
	"context"

	redis "github.com/redis/go-redis/v9"

	"github.com/KirkDiggler/rpg-levelgen/internal/errors"
	redisclient "github.com/KirkDiggler/rpg-levelgen/internal/redis"
)

const (
	defaultKeyPrefix = "dialogcache:"
	entriesSuffix    = "entries"
	orderSuffix      = "order"
)

// KEYS[1] entries hash, KEYS[2] insertion order list
// ARGV[1] key, ARGV[2] value, ARGV[3] capacity
var putScript = redis.NewScript(`
local isNew = redis.call('HEXISTS', KEYS[1], ARGV[1]) == 0
redis.call('HSET', KEYS[1], ARGV[1], ARGV[2])
local evicted = {}
if isNew then
	redis.call('RPUSH', KEYS[2], ARGV[1])
	local capacity = tonumber(ARGV[3])
	while redis.call('LLEN', KEYS[2]) > capacity do
		local oldest = redis.call('LPOP', KEYS[2])
		redis.call('HDEL', KEYS[1], oldest)
		table.insert(evicted, oldest)
	end
end
return evicted
`)

// RedisConfig configures the Redis-backed cache
type RedisConfig struct {
	Client    redisclient.Client
	Capacity  int
	KeyPrefix string
}

// Validate ensures the config is usable
func (c *RedisConfig) Validate() error {
	if c == nil {
		return errors.InvalidArgument("config is required")
	}
	vb := errors.NewValidationBuilder()
	if c.Client == nil {
		vb.RequiredField("client")
	}
	vb.PositiveField("capacity", int64(c.Capacity))
	return vb.Build()
}

type redisRepository struct {
	client     redisclient.Client
	capacity   int
	entriesKey string
	orderKey   string
}

// NewRedis creates a dialog cache shared through Redis. The entry hash and
// order list are updated in one script so eviction stays FIFO across
// processes.
func NewRedis(cfg *RedisConfig) (Repository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	prefix := cfg.KeyPrefix
	if prefix == "" {
		prefix = defaultKeyPrefix
	}

	return &redisRepository{
		client:     cfg.Client,
		capacity:   cfg.Capacity,
		entriesKey: prefix + entriesSuffix,
		orderKey:   prefix + orderSuffix,
	}, nil
}

func (r *redisRepository) Get(ctx context.Context, input *GetInput) (*GetOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if err := validateKey(input.Key); err != nil {
		return nil, err
	}

	value, err := r.client.HGet(ctx, r.entriesKey, input.Key).Result()
	if err != nil {
		if err == redis.Nil {
			return &GetOutput{}, nil
		}
		return nil, errors.Wrapf(err, "failed to get dialog")
	}

	return &GetOutput{Value: value, Found: true}, nil
}

func (r *redisRepository) Put(ctx context.Context, input *PutInput) (*PutOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if err := validateKey(input.Key); err != nil {
		return nil, err
	}

	evicted, err := putScript.Run(ctx, r.client,
		[]string{r.entriesKey, r.orderKey},
		input.Key, input.Value, r.capacity,
	).StringSlice()
	if err != nil && err != redis.Nil {
		return nil, errors.Wrapf(err, "failed to put dialog")
	}

	return &PutOutput{Evicted: evicted}, nil
}
