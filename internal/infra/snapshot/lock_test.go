//go:build unit

package snapshot

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func tryLock(t *testing.T, m *LockManager, mode LockMode, owner string) error {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	l, err := m.Lock(ctx, 1, mode, owner)
	if err == nil {
		l.Release()
	}
	return err
}

func TestLockManager_Exclusive(t *testing.T) {
	m := NewLockManager()

	l, err := m.Lock(context.Background(), 1, LockExclusive, "pass-1")
	require.NoError(t, err)
	assert.True(t, m.IsLocked(1))
	assert.False(t, m.IsLocked(2))
	owner, ok := m.Owner(1)
	assert.True(t, ok)
	assert.Equal(t, "pass-1", owner)

	assert.ErrorIs(t, tryLock(t, m, LockExclusive, "pass-2"), context.DeadlineExceeded)
	assert.ErrorIs(t, tryLock(t, m, LockShared, "reader"), context.DeadlineExceeded)

	l.Release()
	assert.False(t, m.IsLocked(1))
	_, ok = m.Owner(1)
	assert.False(t, ok)
	assert.NoError(t, tryLock(t, m, LockExclusive, "pass-2"))
}

func TestLockManager_Shared(t *testing.T) {
	m := NewLockManager()

	r1, err := m.Lock(context.Background(), 1, LockShared, "r1")
	require.NoError(t, err)
	r2, err := m.Lock(context.Background(), 1, LockShared, "r2")
	require.NoError(t, err)
	assert.False(t, m.IsLocked(1), "shared holders do not lock the offering")

	assert.ErrorIs(t, tryLock(t, m, LockExclusive, "pass"), context.DeadlineExceeded)

	r1.Release()
	r1.Release()
	assert.ErrorIs(t, tryLock(t, m, LockExclusive, "pass"), context.DeadlineExceeded, "second release of r1 must not free r2")

	r2.Release()
	assert.NoError(t, tryLock(t, m, LockExclusive, "pass"))
}

func TestLockManager_WaiterIsWokenOnRelease(t *testing.T) {
	m := NewLockManager()
	held, err := m.Lock(context.Background(), 1, LockExclusive, "first")
	require.NoError(t, err)

	acquired := make(chan struct{})
	go func() {
		l, err := m.Lock(context.Background(), 1, LockExclusive, "second")
		if err == nil {
			close(acquired)
			l.Release()
		}
	}()

	select {
	case <-acquired:
		t.Fatal("lock granted while held")
	case <-time.After(20 * time.Millisecond):
	}

	held.Release()
	select {
	case <-acquired:
	case <-time.After(time.Second):
		t.Fatal("waiter was not woken")
	}
}

func TestLockManager_CancelledContext(t *testing.T) {
	m := NewLockManager()
	held, err := m.Lock(context.Background(), 1, LockExclusive, "first")
	require.NoError(t, err)
	defer held.Release()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	l, err := m.Lock(ctx, 1, LockExclusive, "second")
	assert.Nil(t, l)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestLockManager_TryLock(t *testing.T) {
	m := NewLockManager()

	l, ok := m.TryLock(1, LockExclusive, "pass-1")
	require.True(t, ok)
	_, ok = m.TryLock(1, LockExclusive, "pass-2")
	assert.False(t, ok)
	_, ok = m.TryLock(1, LockShared, "reader")
	assert.False(t, ok)
	l.Release()

	r, err := m.Lock(context.Background(), 1, LockShared, "reader")
	require.NoError(t, err)
	_, ok = m.TryLock(1, LockExclusive, "pass-2")
	assert.False(t, ok, "shared holders block exclusive try-lock")
	assert.False(t, m.IsLocked(1))
	r.Release()

	l, ok = m.TryLock(1, LockExclusive, "pass-2")
	require.True(t, ok)
	owner, _ := m.Owner(1)
	assert.Equal(t, "pass-2", owner)
	l.Release()

	r, ok = m.TryLock(2, LockShared, "reader")
	require.True(t, ok)
	r.Release()
	assert.Empty(t, m.states)
}

