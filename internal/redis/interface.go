package redis

import (
	"github.com/redis/go-redis/v9"
)

// Nil is returned by reads of missing keys
const Nil = redis.Nil

// Client wraps redis.UniversalClient so repositories do not depend on the
// concrete topology
type Client interface {
	redis.UniversalClient
}
