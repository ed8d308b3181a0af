package kv

import (
	"colis-service/internal/adapters/repositories"
	"colis-service/internal/platform/db"
	"colis-service/internal/ports"
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// exerciseStorage runs the behaviour every KeyValueStorage must share.
func exerciseStorage(t *testing.T, s ports.KeyValueStorage) {
	t.Helper()
	ctx := context.Background()

	_, ok, err := s.Get(ctx, "app_settings")
	require.NoError(t, err)
	assert.False(t, ok, "absent key")

	require.NoError(t, s.Set(ctx, "app_settings", `{"passengerIdentifierType":"NNI"}`))
	v, ok, err := s.Get(ctx, "app_settings")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, `{"passengerIdentifierType":"NNI"}`, v)

	require.NoError(t, s.Set(ctx, "app_settings", "overwritten"))
	v, _, err = s.Get(ctx, "app_settings")
	require.NoError(t, err)
	assert.Equal(t, "overwritten", v)

	require.NoError(t, s.Set(ctx, "other", ""))
	v, ok, err = s.Get(ctx, "other")
	require.NoError(t, err)
	assert.True(t, ok, "empty value is still present")
	assert.Empty(t, v)
}

func TestMemoryStore(t *testing.T) {
	exerciseStorage(t, NewMemoryStore())
}

func TestSQLStoreSQLite(t *testing.T) {
	conn, err := db.OpenSQLite(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })
	require.NoError(t, repositories.InitSchema(conn))

	exerciseStorage(t, NewSQLStore(conn, repositories.SQLite))
}

func TestSQLStoreRejectsEmptyKey(t *testing.T) {
	conn, err := db.OpenSQLite(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })
	require.NoError(t, repositories.InitSchema(conn))

	s := NewSQLStore(conn, repositories.SQLite)
	assert.Error(t, s.Set(context.Background(), " ", "x"))
	_, _, err = s.Get(context.Background(), "")
	assert.Error(t, err)
}

func TestRedisStore(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })

	s := NewRedisStore(client, "colis:")
	exerciseStorage(t, s)

	raw, err := mr.Get("colis:app_settings")
	require.NoError(t, err)
	assert.Equal(t, "overwritten", raw)
}

func TestRedisStoreServerDown(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr(), MaxRetries: -1})
	t.Cleanup(func() { client.Close() })
	mr.Close()

	s := NewRedisStore(client, "")
	_, _, err := s.Get(context.Background(), "app_settings")
	assert.Error(t, err)
	assert.Error(t, s.Set(context.Background(), "app_settings", "x"))
}

func TestDialRedis(t *testing.T) {
	mr := miniredis.RunT(t)

	client, err := DialRedis(context.Background(), "redis://"+mr.Addr()+"/0")
	require.NoError(t, err)
	client.Close()

	_, err = DialRedis(context.Background(), "not a url")
	assert.Error(t, err)
}
