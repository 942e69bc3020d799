package redis

import (
	"context"
	"testing"
	"time"

	"github.com/go-redis/redismock/v9"
	"github.com/stretchr/testify/assert"
)

func TestAcquireReturnsTokenWhenLockIsFree(t *testing.T) {
	client, mock := redismock.NewClientMock()
	locker := &LoanLocker{client: client, ttl: 10 * time.Second}

	mock.Regexp().ExpectSetNX("fintech:loan-lock:abc123", `.+`, 10*time.Second).SetVal(true)

	token, err := locker.Acquire(context.Background(), "abc123")

	assert.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestAcquireReturnsEmptyTokenWhenLockIsHeld(t *testing.T) {
	client, mock := redismock.NewClientMock()
	locker := &LoanLocker{client: client, ttl: 10 * time.Second}

	mock.Regexp().ExpectSetNX("fintech:loan-lock:abc123", `.+`, 10*time.Second).SetVal(false)

	token, err := locker.Acquire(context.Background(), "abc123")

	assert.NoError(t, err)
	assert.Empty(t, token)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestReleaseDeletesOwnedLock(t *testing.T) {
	client, mock := redismock.NewClientMock()
	locker := &LoanLocker{client: client, ttl: 10 * time.Second}

	mock.ExpectEval(releaseScript, []string{"fintech:loan-lock:abc123"}, "token-1").SetVal(int64(1))

	locker.Release(context.Background(), "abc123", "token-1")

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestReleaseWithEmptyTokenIsNoop(t *testing.T) {
	client, mock := redismock.NewClientMock()
	locker := &LoanLocker{client: client, ttl: 10 * time.Second}

	locker.Release(context.Background(), "abc123", "")

	assert.NoError(t, mock.ExpectationsWereMet())
}
