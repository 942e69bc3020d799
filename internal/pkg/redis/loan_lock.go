package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/cesarbruschetta/api-fintech/configs"
	"github.com/cesarbruschetta/api-fintech/internal/pkg/logger"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// releaseScript removes the lock only when the caller still owns it,
// so an expired lock picked up by another request is never released
// out from under it.
const releaseScript = `
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("DEL", KEYS[1])
else
	return 0
end
`

// LoanLocker serializes payment admission per loan. Only one request at
// a time may read a loan's balance and append a payment against it.
type LoanLocker struct {
	client *redis.Client
	ttl    time.Duration
}

func NewLoanLocker(rc *RedisClient) *LoanLocker {
	return &LoanLocker{
		client: rc.Client,
		ttl:    time.Duration(configs.PAYMENT_LOCK_TTL_SECONDS) * time.Second,
	}
}

func lockKey(loanId string) string {
	return fmt.Sprintf("fintech:loan-lock:%s", loanId)
}

// Acquire takes the per-loan lock and returns a release token. It does
// not block: a held lock means a concurrent payment is in flight and the
// caller should reject the request.
func (l *LoanLocker) Acquire(ctx context.Context, loanId string) (string, error) {
	token := uuid.NewString()
	ok, err := l.client.SetNX(ctx, lockKey(loanId), token, l.ttl).Result()
	if err != nil {
		logger.Error(ctx, "Failed to acquire payment lock for loan %s : %v", loanId, err)
		return "", err
	}
	if !ok {
		return "", nil
	}
	return token, nil
}

// Release gives the lock back. A lock that already expired is not an
// error, the TTL exists precisely so a crashed holder cannot wedge the
// loan forever.
func (l *LoanLocker) Release(ctx context.Context, loanId string, token string) {
	if token == "" {
		return
	}
	if err := l.client.Eval(ctx, releaseScript, []string{lockKey(loanId)}, token).Err(); err != nil && err != redis.Nil {
		logger.Warn(ctx, "Failed to release payment lock for loan %s : %v", loanId, err)
	}
}
