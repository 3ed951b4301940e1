package credits

import "context"

type store interface {
	Get(ctx context.Context, userID string) (Credits, error)
	EnsurePeriod(ctx context.Context, userID string) (Credits, error)
	Consume(ctx context.Context, userID string, n int) (Credits, error)
	Reset(ctx context.Context, userID string) (Credits, error)
}

// Service manages credit balances via an underlying store.
type Service struct {
	store store
}

// NewService constructs a Service with an in-memory store.
func NewService(limit int) *Service {
	return &Service{store: newMemoryStore(limit)}
}

// NewPostgresService constructs a Service backed by Postgres.
func NewPostgresService(pgStore store) *Service {
	return &Service{store: pgStore}
}

// Get returns current credits for a user, initializing defaults if absent.
func (s *Service) Get(ctx context.Context, userID string) (Credits, error) {
	return s.store.Get(ctx, userID)
}

// EnsurePeriod rolls the balance over if the month has ended.
func (s *Service) EnsurePeriod(ctx context.Context, userID string) (Credits, error) {
	return s.store.EnsurePeriod(ctx, userID)
}

// CanConsume reports whether the user can spend n credits.
func (s *Service) CanConsume(ctx context.Context, userID string, n int) (bool, Credits, error) {
	c, err := s.store.EnsurePeriod(ctx, userID)
	if err != nil {
		return false, Credits{}, err
	}
	if n <= 0 {
		return true, c, nil
	}
	if c.Used+n > c.Limit {
		return false, c, nil
	}
	return true, c, nil
}

// Consume spends n credits if within the limit.
func (s *Service) Consume(ctx context.Context, userID string, n int) (Credits, error) {
	return s.store.Consume(ctx, userID, n)
}

// Reset sets usage to zero and restarts the monthly window.
func (s *Service) Reset(ctx context.Context, userID string) (Credits, error) {
	return s.store.Reset(ctx, userID)
}
