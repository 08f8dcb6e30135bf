package progress

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"github.com/2beens/seefit/internal/hiits"
	"github.com/2beens/seefit/internal/telemetry/tracing"
	"github.com/2beens/seefit/pkg"

	"github.com/go-redis/redis/v8"
)

const DefaultKey = "seefit:progress"

// RedisStore keeps the progress document as JSON under a single key.
type RedisStore struct {
	// serializes read-modify-write cycles of Update
	mutex       sync.Mutex
	redisClient *redis.Client
	key         string
}

func NewRedisStore(redisClient *redis.Client, key string) *RedisStore {
	if key == "" {
		key = DefaultKey
	}
	return &RedisStore{
		redisClient: redisClient,
		key:         key,
	}
}

// Get returns the stored document. A missing key reads as an empty document.
func (s *RedisStore) Get(ctx context.Context) (_ Progress, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "redis.progress.get")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	val, err := s.redisClient.Get(ctx, s.key).Result()
	if errors.Is(err, redis.Nil) {
		return New(), nil
	}
	if err != nil {
		return Progress{}, redisErr("get progress", err)
	}

	p := New()
	if err := json.Unmarshal([]byte(val), &p); err != nil {
		return Progress{}, fmt.Errorf("unmarshal progress: %w", err)
	}
	if p.CompletedHiits == nil {
		p.CompletedHiits = []CompletedHiit{}
	}
	return p, nil
}

func (s *RedisStore) Save(ctx context.Context, p Progress) (err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "redis.progress.save")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	if p.CompletedHiits == nil {
		p.CompletedHiits = []CompletedHiit{}
	}
	b, err := json.Marshal(p)
	if err != nil {
		return fmt.Errorf("marshal progress: %w", err)
	}
	if err := s.redisClient.Set(ctx, s.key, string(b), 0).Err(); err != nil {
		return redisErr("save progress", err)
	}
	return nil
}

// Update loads the document, applies fn and stores the result.
func (s *RedisStore) Update(ctx context.Context, fn func(p *Progress)) (Progress, error) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	p, err := s.Get(ctx)
	if err != nil {
		return Progress{}, err
	}
	fn(&p)
	if err := s.Save(ctx, p); err != nil {
		return Progress{}, err
	}
	return p, nil
}

// redisErr tags failures to reach redis with hiits.ErrStorageUnavailable.
func redisErr(op string, err error) error {
	if pkg.IsConnectionError(err) {
		return fmt.Errorf("%s: %w: %w", op, hiits.ErrStorageUnavailable, err)
	}
	return fmt.Errorf("%s: %w", op, err)
}
