package deals

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// ErrNotFound indicates the deal does not exist.
var ErrNotFound = errors.New("deal not found")

// Store defines read-only deal persistence.
type Store interface {
	Get(ctx context.Context, id int64) (*Deal, error)
}

// PGStore implements Store on PostgreSQL.
type PGStore struct {
	pool *pgxpool.Pool
}

// NewStore constructs a PostgreSQL store.
func NewStore(pool *pgxpool.Pool) *PGStore {
	return &PGStore{pool: pool}
}

// Get loads a deal by id with its details blob deserialized once at the
// edge.
func (s *PGStore) Get(ctx context.Context, id int64) (*Deal, error) {
	const query = `SELECT id, created_by, fm_review_at, details FROM deals WHERE id = $1`

	var (
		deal    Deal
		details []byte
	)
	err := s.pool.QueryRow(ctx, query, id).Scan(&deal.ID, &deal.CreatedBy, &deal.FMReviewAt, &details)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("deals: get %d: %w", id, err)
	}
	if len(details) > 0 {
		if err := json.Unmarshal(details, &deal.Details); err != nil {
			return nil, fmt.Errorf("deals: decode details for %d: %w", id, err)
		}
	}
	return &deal, nil
}
