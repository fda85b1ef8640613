package redissvc

import (
	"context"

	"github.com/redis/go-redis/v9"
)

// RedisService bundles the client with the context it was opened under so
// consumers do not reach for a package-level connection.
type RedisService struct {
	rdb *redis.Client
	ctx context.Context
}

func NewRedisService(rdb *redis.Client, ctx context.Context) *RedisService {
	return &RedisService{
		rdb: rdb,
		ctx: ctx,
	}
}

func (s *RedisService) Rdb() *redis.Client {
	return s.rdb
}

func (s *RedisService) Ctx() context.Context {
	return s.ctx
}

func (s *RedisService) Ping() error {
	return s.rdb.Ping(s.ctx).Err()
}

func (s *RedisService) Close() error {
	return s.rdb.Close()
}
