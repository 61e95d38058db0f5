package reference

import (
	"context"
	"fmt"

	"github.com/redis/go-redis/v9"
)

// RedisKeyPrefix namespaces the reference hashes, one hash per table.
const RedisKeyPrefix = "nik:ref:"

// RedisKey returns the hash key holding the given table.
func RedisKey(kind Kind) string {
	return RedisKeyPrefix + string(kind)
}

// RedisSource reads each table from a hash of code -> value.
type RedisSource struct {
	Client redis.Cmdable
}

func NewRedisSource(client redis.Cmdable) *RedisSource {
	return &RedisSource{Client: client}
}

func (s *RedisSource) Name() string { return "redis" }

func (s *RedisSource) Table(ctx context.Context, kind Kind) (map[string]string, error) {
	table, err := s.Client.HGetAll(ctx, RedisKey(kind)).Result()
	if err != nil {
		return nil, fmt.Errorf("hgetall %s: %w", RedisKey(kind), err)
	}
	return table, nil
}
