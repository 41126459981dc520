package redis

import (
	"github.com/redis/go-redis/v9"
)

// Client wraps redis.UniversalClient so repositories can take either a real
// connection or one pointed at miniredis in tests
type Client interface {
	redis.UniversalClient
}
