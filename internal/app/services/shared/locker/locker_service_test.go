package locker

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fakeRedisRepository struct {
	values map[string]string
}

func newFakeRedisRepository() *fakeRedisRepository {
	return &fakeRedisRepository{values: map[string]string{}}
}

func (f *fakeRedisRepository) Delete(ctx context.Context, key string) error {
	delete(f.values, key)
	return nil
}

func (f *fakeRedisRepository) Set(ctx context.Context, key string, value interface{}, expiration time.Duration) error {
	f.values[key] = fmt.Sprintf("\"%v\"", value)
	return nil
}

func (f *fakeRedisRepository) Get(ctx context.Context, key string) (string, error) {
	return f.values[key], nil
}

func (f *fakeRedisRepository) GetInt64(ctx context.Context, key string) (int64, error) {
	return 0, nil
}

func (f *fakeRedisRepository) Increment(ctx context.Context, key string) error {
	return nil
}

func (f *fakeRedisRepository) TrySetNX(ctx context.Context, key string, value interface{}, expiration time.Duration) (bool, error) {
	if _, held := f.values[key]; held {
		return false, nil
	}
	f.values[key] = fmt.Sprintf("\"%v\"", value)
	return true, nil
}

func TestTryLockUnlock(t *testing.T) {
	ctx := context.Background()

	t.Run("acquire, contend, release, reacquire", func(t *testing.T) {
		repo := newFakeRedisRepository()
		service := &lockService{redisRepo: repo, Log: zap.NewNop()}

		acquired, lockValue, err := service.TryLock(ctx, "worker:lock", time.Minute)
		require.NoError(t, err)
		require.True(t, acquired)
		require.NotEmpty(t, lockValue)

		contended, _, err := service.TryLock(ctx, "worker:lock", time.Minute)
		require.NoError(t, err)
		assert.False(t, contended)

		require.NoError(t, service.Unlock(ctx, "worker:lock", lockValue))

		reacquired, _, err := service.TryLock(ctx, "worker:lock", time.Minute)
		require.NoError(t, err)
		assert.True(t, reacquired)
	})

	t.Run("unlock with the wrong value fails and keeps the lock", func(t *testing.T) {
		repo := newFakeRedisRepository()
		service := &lockService{redisRepo: repo, Log: zap.NewNop()}

		_, lockValue, err := service.TryLock(ctx, "worker:lock", time.Minute)
		require.NoError(t, err)

		err = service.Unlock(ctx, "worker:lock", "someone-else")
		assert.Error(t, err)

		// Still held by the original owner.
		contended, _, err := service.TryLock(ctx, "worker:lock", time.Minute)
		require.NoError(t, err)
		assert.False(t, contended)

		require.NoError(t, service.Unlock(ctx, "worker:lock", lockValue))
	})

	t.Run("unlock on an expired lock is a no-op", func(t *testing.T) {
		repo := newFakeRedisRepository()
		service := &lockService{redisRepo: repo, Log: zap.NewNop()}

		assert.NoError(t, service.Unlock(ctx, "worker:lock", "anything"))
	})
}
