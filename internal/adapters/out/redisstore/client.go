// Package redisstore keeps per-account UI scratch state in Redis. The state
// is disposable by nature, so everything is written with a TTL and the
// panel works fine if Redis starts empty.
package redisstore

import (
	"github.com/redis/go-redis/v9"
)

// NewClient creates a Redis client for the given address.
func NewClient(addr string) *redis.Client {
	return redis.NewClient(&redis.Options{Addr: addr})
}
