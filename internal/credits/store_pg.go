package credits

import (
	"context"
	"database/sql"
	"errors"
	"time"
)

type pgStore struct {
	DB    *sql.DB
	limit int
}

// NewPGStore constructs a Postgres-backed credit store.
func NewPGStore(db *sql.DB, limit int) *pgStore {
	return &pgStore{DB: db, limit: limit}
}

func (s *pgStore) Get(ctx context.Context, userID string) (Credits, error) {
	return s.ensure(ctx, userID)
}

func (s *pgStore) EnsurePeriod(ctx context.Context, userID string) (Credits, error) {
	return s.ensure(ctx, userID)
}

func (s *pgStore) Consume(ctx context.Context, userID string, n int) (Credits, error) {
	if n <= 0 {
		return s.ensure(ctx, userID)
	}
	tx, err := s.DB.BeginTx(ctx, nil)
	if err != nil {
		return Credits{}, err
	}
	defer func() {
		if err != nil {
			tx.Rollback()
		}
	}()

	c, err := s.lockAndEnsure(ctx, tx, userID)
	if err != nil {
		return Credits{}, err
	}

	if c.Used+n > c.Limit {
		err = ErrLimitReached
		return Credits{}, err
	}
	c.Used += n
	if _, err = tx.ExecContext(ctx, `
UPDATE credits SET used = $1 WHERE user_id = $2`, c.Used, userID); err != nil {
		return Credits{}, err
	}
	if err = tx.Commit(); err != nil {
		return Credits{}, err
	}
	return c, nil
}

func (s *pgStore) Reset(ctx context.Context, userID string) (Credits, error) {
	tx, err := s.DB.BeginTx(ctx, nil)
	if err != nil {
		return Credits{}, err
	}
	defer func() {
		if err != nil {
			tx.Rollback()
		}
	}()
	now := time.Now().UTC()
	resetsAt := nextMonthStart(now)
	if _, err = tx.ExecContext(ctx, `
INSERT INTO credits (user_id, plan, limit_amount, used, resets_at)
VALUES ($1, $2, $3, 0, $4)
ON CONFLICT (user_id) DO UPDATE SET used = 0, resets_at = EXCLUDED.resets_at`,
		userID, freePlan, s.limit, resetsAt); err != nil {
		return Credits{}, err
	}
	if err = tx.Commit(); err != nil {
		return Credits{}, err
	}
	return Credits{Plan: freePlan, Limit: s.limit, Used: 0, ResetsAt: resetsAt}, nil
}

func (s *pgStore) ensure(ctx context.Context, userID string) (Credits, error) {
	tx, err := s.DB.BeginTx(ctx, nil)
	if err != nil {
		return Credits{}, err
	}
	defer func() {
		if err != nil {
			tx.Rollback()
		}
	}()
	c, err := s.lockAndEnsure(ctx, tx, userID)
	if err != nil {
		return Credits{}, err
	}
	if err = tx.Commit(); err != nil {
		return Credits{}, err
	}
	return c, nil
}

func (s *pgStore) lockAndEnsure(ctx context.Context, tx *sql.Tx, userID string) (Credits, error) {
	var c Credits
	row := tx.QueryRowContext(ctx, `
SELECT plan, limit_amount, used, resets_at FROM credits WHERE user_id = $1 FOR UPDATE`, userID)
	err := row.Scan(&c.Plan, &c.Limit, &c.Used, &c.ResetsAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			c = defaultCredits(s.limit, time.Now().UTC())
			if _, err = tx.ExecContext(ctx, `
INSERT INTO credits (user_id, plan, limit_amount, used, resets_at) VALUES ($1, $2, $3, $4, $5)`,
				userID, c.Plan, c.Limit, c.Used, c.ResetsAt); err != nil {
				return Credits{}, err
			}
			return c, nil
		}
		return Credits{}, err
	}

	now := time.Now().UTC()
	if now.After(c.ResetsAt) || now.Equal(c.ResetsAt) {
		c.Used = 0
		c.ResetsAt = nextMonthStart(now)
		if _, err = tx.ExecContext(ctx, `UPDATE credits SET used = $1, resets_at = $2 WHERE user_id = $3`, c.Used, c.ResetsAt, userID); err != nil {
			return Credits{}, err
		}
	}
	return c, nil
}
