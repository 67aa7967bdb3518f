package cache_test

import (
	"testing"

	"todoapi/infras/otel/mocks"
	"todoapi/shared/cache"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
)

func TestNewRedisCache(t *testing.T) {
	assert.Nil(t, cache.NewRedisCache(nil, mocks.NewOtel()))

	client := redis.NewClient(&redis.Options{Addr: "localhost:6379"})
	t.Cleanup(func() { _ = client.Close() })

	assert.NotNil(t, cache.NewRedisCache(client, mocks.NewOtel()))
}
