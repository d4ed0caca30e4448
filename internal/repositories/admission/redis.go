package admission

import (
	"context"
	"time"

	redis "github.com/redis/go-redis/v9"

	"github.com/KirkDiggler/rpg-levelgen/internal/errors"
	"github.com/KirkDiggler/rpg-levelgen/internal/pkg/clock"
	redisclient "github.com/KirkDiggler/rpg-levelgen/internal/redis"
)

const keyPrefix = "admission:"

// The expiry is only set by the request that opens a window, so later
// requests in the same window never extend it.
var checkAndIncrementScript = redis.NewScript(`
local count = redis.call('INCR', KEYS[1])
if count == 1 then
	redis.call('PEXPIRE', KEYS[1], ARGV[1])
end
return {count, redis.call('PTTL', KEYS[1])}
`)

// RedisConfig configures the Redis-backed admission repository
type RedisConfig struct {
	Client redisclient.Client
	Limits Limits
	Clock  clock.Clock
}

// Validate ensures the config is usable
func (c *RedisConfig) Validate() error {
	if c == nil {
		return errors.InvalidArgument("config is required")
	}
	if c.Client == nil {
		return errors.InvalidArgument("redis client is required")
	}
	return c.Limits.Validate()
}

type redisRepository struct {
	client redisclient.Client
	limits Limits
	clock  clock.Clock
}

// NewRedis creates an admission repository whose windows are shared by every
// gateway process pointed at the same Redis
func NewRedis(cfg *RedisConfig) (Repository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	clk := cfg.Clock
	if clk == nil {
		clk = clock.New()
	}

	return &redisRepository{
		client: cfg.Client,
		limits: cfg.Limits,
		clock:  clk,
	}, nil
}

func (r *redisRepository) CheckAndIncrement(ctx context.Context, input *CheckAndIncrementInput) (*CheckAndIncrementOutput, error) {
	if err := validateInput(input); err != nil {
		return nil, err
	}

	res, err := checkAndIncrementScript.Run(ctx, r.client,
		[]string{keyPrefix + input.Key},
		r.limits.Window.Milliseconds(),
	).Slice()
	if err != nil {
		return nil, errors.Wrapf(err, "failed to check admission window")
	}
	if len(res) != 2 {
		return nil, errors.Internalf("unexpected admission script reply of length %d", len(res))
	}

	count, ok := res[0].(int64)
	if !ok {
		return nil, errors.Internal("admission script returned a non-integer count")
	}
	ttl, ok := res[1].(int64)
	if !ok || ttl < 0 {
		ttl = r.limits.Window.Milliseconds()
	}

	resetAt := r.clock.Now().Add(time.Duration(ttl) * time.Millisecond)
	if count > int64(r.limits.MaxRequests) {
		return &CheckAndIncrementOutput{Allowed: false, Count: r.limits.MaxRequests, ResetAt: resetAt}, nil
	}

	return &CheckAndIncrementOutput{Allowed: true, Count: int(count), ResetAt: resetAt}, nil
}
