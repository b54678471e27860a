package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
)

type stubEvaler struct {
	count int64
	err   error
	keys  []string
}

func (s *stubEvaler) Eval(ctx context.Context, _ string, keys []string, _ ...interface{}) *redis.Cmd {
	s.keys = append(s.keys, keys...)
	cmd := redis.NewCmd(ctx)
	if s.err != nil {
		cmd.SetErr(s.err)
		return cmd
	}
	s.count++
	cmd.SetVal(s.count)
	return cmd
}

func newStubLimitedLimiter(evaler *stubEvaler, max int) *redisSubmitRateLimiter {
	return &redisSubmitRateLimiter{
		client: evaler,
		window: time.Minute,
		max:    max,
		prefix: "quiz:rl:",
	}
}

func TestRedisLimiterAllowsUpToMax(t *testing.T) {
	evaler := &stubEvaler{}
	limiter := newStubLimitedLimiter(evaler, 2)

	for i := 0; i < 2; i++ {
		if !limiter.Allow("user@example.com") {
			t.Fatalf("submission %d blocked under the limit", i+1)
		}
	}
	if limiter.Allow("user@example.com") {
		t.Fatal("submission over the limit allowed")
	}
}

func TestRedisLimiterNormalizesKey(t *testing.T) {
	evaler := &stubEvaler{}
	limiter := newStubLimitedLimiter(evaler, 10)

	limiter.Allow("  User@Example.COM ")
	if len(evaler.keys) != 1 || evaler.keys[0] != "quiz:rl:user@example.com" {
		t.Fatalf("redis keys = %v", evaler.keys)
	}
}

func TestRedisLimiterEmptyKeyBlocked(t *testing.T) {
	limiter := newStubLimitedLimiter(&stubEvaler{}, 10)
	if limiter.Allow("   ") {
		t.Fatal("blank key allowed")
	}
}

func TestRedisLimiterFailsOpen(t *testing.T) {
	evaler := &stubEvaler{err: errors.New("connection refused")}
	limiter := newStubLimitedLimiter(evaler, 1)

	if !limiter.Allow("user@example.com") {
		t.Fatal("unreachable redis blocked a submission")
	}
}

func TestNewRedisSubmitRateLimiterNilClient(t *testing.T) {
	if NewRedisSubmitRateLimiter(nil, time.Minute, 3) != nil {
		t.Fatal("nil client should yield a nil limiter")
	}
}
