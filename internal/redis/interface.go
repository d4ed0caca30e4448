package redis

import (
	"github.com/redis/go-redis/v9"
)

// Client wraps redis.UniversalClient so stores can accept single-node,
// cluster or failover clients alike
type Client interface {
	redis.UniversalClient
}
