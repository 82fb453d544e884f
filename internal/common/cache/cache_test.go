package cache

import (
	"context"
	"path"
	"testing"
	"time"

	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRedis struct {
	store map[string]string
}

func newFakeRedis() *fakeRedis {
	return &fakeRedis{store: make(map[string]string)}
}

func (f *fakeRedis) Ping(ctx context.Context) *goredis.StatusCmd {
	cmd := goredis.NewStatusCmd(ctx)
	cmd.SetVal("PONG")
	return cmd
}

func (f *fakeRedis) Set(ctx context.Context, key string, value interface{}, ttl time.Duration) *goredis.StatusCmd {
	f.store[key] = value.(string)
	cmd := goredis.NewStatusCmd(ctx)
	cmd.SetVal("OK")
	return cmd
}

func (f *fakeRedis) Get(ctx context.Context, key string) *goredis.StringCmd {
	cmd := goredis.NewStringCmd(ctx)
	if v, ok := f.store[key]; ok {
		cmd.SetVal(v)
	} else {
		cmd.SetErr(goredis.Nil)
	}
	return cmd
}

func (f *fakeRedis) Del(ctx context.Context, keys ...string) *goredis.IntCmd {
	cmd := goredis.NewIntCmd(ctx)
	var deleted int64
	for _, key := range keys {
		if _, ok := f.store[key]; ok {
			delete(f.store, key)
			deleted++
		}
	}
	cmd.SetVal(deleted)
	return cmd
}

func (f *fakeRedis) Keys(ctx context.Context, pattern string) *goredis.StringSliceCmd {
	cmd := goredis.NewStringSliceCmd(ctx)
	var keys []string
	for key := range f.store {
		if ok, _ := path.Match(pattern, key); ok {
			keys = append(keys, key)
		}
	}
	cmd.SetVal(keys)
	return cmd
}

func (f *fakeRedis) Close() error { return nil }

func TestCacheService_SetGetDelete(t *testing.T) {
	redis := newFakeRedis()
	svc := NewCacheService(redis)
	ctx := context.Background()

	type payload struct {
		Tickets int `json:"tickets"`
	}

	require.NoError(t, svc.Set(ctx, "raffle:stats:2026-08", payload{Tickets: 42}, time.Minute))

	var got payload
	require.NoError(t, svc.Get(ctx, "raffle:stats:2026-08", &got))
	assert.Equal(t, 42, got.Tickets)

	require.NoError(t, svc.Delete(ctx, "raffle:stats:2026-08"))
	assert.Error(t, svc.Get(ctx, "raffle:stats:2026-08", &got))
}

func TestCacheService_DeletePattern(t *testing.T) {
	redis := newFakeRedis()
	svc := NewCacheService(redis)
	ctx := context.Background()

	require.NoError(t, svc.Set(ctx, "raffle:stats:2026-07", 1, time.Minute))
	require.NoError(t, svc.Set(ctx, "raffle:stats:2026-08", 2, time.Minute))
	require.NoError(t, svc.Set(ctx, "session:abc", 3, time.Minute))

	require.NoError(t, svc.DeletePattern(ctx, "raffle:stats:*"))

	assert.NotContains(t, redis.store, "raffle:stats:2026-07")
	assert.NotContains(t, redis.store, "raffle:stats:2026-08")
	assert.Contains(t, redis.store, "session:abc")
}

func TestCacheService_DeletePatternNoMatches(t *testing.T) {
	svc := NewCacheService(newFakeRedis())

	assert.NoError(t, svc.DeletePattern(context.Background(), "raffle:stats:*"))
}
