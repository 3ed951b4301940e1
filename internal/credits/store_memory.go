package credits

import (
	"context"
	"sync"
	"time"
)

type memoryStore struct {
	mu    sync.RWMutex
	data  map[string]Credits
	limit int
}

func newMemoryStore(limit int) *memoryStore {
	return &memoryStore{data: make(map[string]Credits), limit: limit}
}

func (s *memoryStore) Get(ctx context.Context, userID string) (Credits, error) {
	if err := ctx.Err(); err != nil {
		return Credits{}, err
	}
	s.mu.RLock()
	c, ok := s.data[userID]
	s.mu.RUnlock()
	if ok {
		return c, nil
	}
	return s.ensure(ctx, userID)
}

func (s *memoryStore) EnsurePeriod(ctx context.Context, userID string) (Credits, error) {
	return s.ensure(ctx, userID)
}

func (s *memoryStore) ensure(ctx context.Context, userID string) (Credits, error) {
	if err := ctx.Err(); err != nil {
		return Credits{}, err
	}
	now := time.Now().UTC()
	s.mu.Lock()
	defer s.mu.Unlock()
	c, ok := s.data[userID]
	if !ok {
		c = defaultCredits(s.limit, now)
	}
	if now.After(c.ResetsAt) || now.Equal(c.ResetsAt) {
		c.Used = 0
		c.ResetsAt = nextMonthStart(now)
	}
	s.data[userID] = c
	return c, nil
}

func (s *memoryStore) Consume(ctx context.Context, userID string, n int) (Credits, error) {
	if n <= 0 {
		return s.ensure(ctx, userID)
	}
	if err := ctx.Err(); err != nil {
		return Credits{}, err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	now := time.Now().UTC()
	c, ok := s.data[userID]
	if !ok {
		c = defaultCredits(s.limit, now)
	}
	if now.After(c.ResetsAt) || now.Equal(c.ResetsAt) {
		c.Used = 0
		c.ResetsAt = nextMonthStart(now)
	}
	if c.Used+n > c.Limit {
		return Credits{}, ErrLimitReached
	}
	c.Used += n
	s.data[userID] = c
	return c, nil
}

func (s *memoryStore) Reset(ctx context.Context, userID string) (Credits, error) {
	if err := ctx.Err(); err != nil {
		return Credits{}, err
	}
	now := time.Now().UTC()
	s.mu.Lock()
	defer s.mu.Unlock()
	c, ok := s.data[userID]
	if !ok {
		c = defaultCredits(s.limit, now)
	}
	c.Used = 0
	c.ResetsAt = nextMonthStart(now)
	s.data[userID] = c
	return c, nil
}
