package idempotency

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stpnv0/CafeBooker/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRedisStore(t *testing.T, ttl time.Duration) (*RedisStore, *miniredis.Miniredis) {
	t.Helper()

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	return NewRedisStore(client, ttl), mr
}

func readState(t *testing.T, mr *miniredis.Miniredis, key string) redisState {
	t.Helper()

	raw, err := mr.Get(keyPrefix + key)
	require.NoError(t, err)

	var state redisState
	require.NoError(t, json.Unmarshal([]byte(raw), &state))
	return state
}

func TestRedisStore_ReserveFreeKey(t *testing.T) {
	store, mr := newTestRedisStore(t, time.Hour)

	id, err := store.Reserve(context.Background(), "u@x:k")

	require.NoError(t, err)
	assert.Empty(t, id)
	assert.Equal(t, statusProcessing, readState(t, mr, "u@x:k").Status)
	assert.Equal(t, time.Hour, mr.TTL(keyPrefix+"u@x:k"))
}

func TestRedisStore_ReserveHeldKey(t *testing.T) {
	store, _ := newTestRedisStore(t, time.Hour)
	ctx := context.Background()

	_, err := store.Reserve(ctx, "u@x:k")
	require.NoError(t, err)

	_, err = store.Reserve(ctx, "u@x:k")
	assert.ErrorIs(t, err, domain.ErrRequestInProgress)
}

func TestRedisStore_CompleteThenReplay(t *testing.T) {
	store, mr := newTestRedisStore(t, time.Hour)
	ctx := context.Background()

	_, err := store.Reserve(ctx, "u@x:k")
	require.NoError(t, err)
	require.NoError(t, store.Complete(ctx, "u@x:k", "r1"))

	state := readState(t, mr, "u@x:k")
	assert.Equal(t, statusSuccess, state.Status)
	assert.Equal(t, "r1", state.ReservationID)
	assert.Equal(t, time.Hour, mr.TTL(keyPrefix+"u@x:k"))

	id, err := store.Reserve(ctx, "u@x:k")
	require.NoError(t, err)
	assert.Equal(t, "r1", id)
}

func TestRedisStore_ReleaseFreesKey(t *testing.T) {
	store, mr := newTestRedisStore(t, time.Hour)
	ctx := context.Background()

	_, err := store.Reserve(ctx, "u@x:k")
	require.NoError(t, err)
	require.NoError(t, store.Release(ctx, "u@x:k"))
	assert.False(t, mr.Exists(keyPrefix+"u@x:k"))

	id, err := store.Reserve(ctx, "u@x:k")
	require.NoError(t, err)
	assert.Empty(t, id)
}

func TestRedisStore_KeyExpires(t *testing.T) {
	store, mr := newTestRedisStore(t, time.Minute)
	ctx := context.Background()

	_, err := store.Reserve(ctx, "u@x:k")
	require.NoError(t, err)

	mr.FastForward(2 * time.Minute)

	id, err := store.Reserve(ctx, "u@x:k")
	require.NoError(t, err)
	assert.Empty(t, id)
}

func TestRedisStore_UnknownStatusIsTakenOver(t *testing.T) {
	store, mr := newTestRedisStore(t, time.Hour)

	require.NoError(t, mr.Set(keyPrefix+"u@x:k", `{"status":"legacy"}`))

	id, err := store.Reserve(context.Background(), "u@x:k")

	require.NoError(t, err)
	assert.Empty(t, id)
	assert.Equal(t, statusProcessing, readState(t, mr, "u@x:k").Status)
	assert.Equal(t, time.Hour, mr.TTL(keyPrefix+"u@x:k"))
}

func TestRedisStore_CorruptState(t *testing.T) {
	store, mr := newTestRedisStore(t, time.Hour)

	require.NoError(t, mr.Set(keyPrefix+"u@x:k", "not json"))

	_, err := store.Reserve(context.Background(), "u@x:k")
	assert.Error(t, err)
}

func TestRedisStore_Unavailable(t *testing.T) {
	client := redis.NewClient(&redis.Options{
		Addr:        "127.0.0.1:1",
		MaxRetries:  -1,
		DialTimeout: 100 * time.Millisecond,
	})
	t.Cleanup(func() { _ = client.Close() })
	store := NewRedisStore(client, time.Hour)

	_, err := store.Reserve(context.Background(), "u@x:k")
	assert.Error(t, err)
}

// raceHook stores a finished state right before the first SET, as if another
// instance won the key between our GET and SET NX.
type raceHook struct {
	mr    *miniredis.Miniredis
	key   string
	fired bool
}

func (h *raceHook) DialHook(next redis.DialHook) redis.DialHook { return next }

func (h *raceHook) ProcessHook(next redis.ProcessHook) redis.ProcessHook {
	return func(ctx context.Context, cmd redis.Cmder) error {
		if !h.fired && cmd.Name() == "set" {
			h.fired = true
			_ = h.mr.Set(h.key, `{"status":"success","reservation_id":"r-winner"}`)
		}
		return next(ctx, cmd)
	}
}

func (h *raceHook) ProcessPipelineHook(next redis.ProcessPipelineHook) redis.ProcessPipelineHook {
	return next
}

func TestRedisStore_ReserveLosesSetRace(t *testing.T) {
	store, mr := newTestRedisStore(t, time.Hour)
	hook := &raceHook{mr: mr, key: keyPrefix + "u@x:k"}
	store.client.AddHook(hook)

	id, err := store.Reserve(context.Background(), "u@x:k")

	require.NoError(t, err)
	assert.True(t, hook.fired)
	assert.Equal(t, "r-winner", id)
}
