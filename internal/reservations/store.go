package reservations

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/uptown-october/uptown-docs/internal/money"
)

// Store defines read-only reservation persistence.
type Store interface {
	ApprovedForDeal(ctx context.Context, dealID int64) (*Record, error)
}

// PGStore implements Store on PostgreSQL.
type PGStore struct {
	pool *pgxpool.Pool
}

// NewStore constructs a PostgreSQL store.
func NewStore(pool *pgxpool.Pool) *PGStore {
	return &PGStore{pool: pool}
}

// ApprovedForDeal finds an approved reservation linked to the deal either
// through its payment plan or through an all-digit details.deal_id matching
// the deal. Returns nil when none exists.
func (s *PGStore) ApprovedForDeal(ctx context.Context, dealID int64) (*Record, error) {
	const query = `
		SELECT rf.status, rf.reservation_date, rf.preliminary_payment, rf.payment_plan_id, rf.details
		FROM reservation_forms rf
		LEFT JOIN payment_plans pp ON pp.id = rf.payment_plan_id
		WHERE rf.status = 'approved'
		  AND (pp.deal_id = $1
		       OR (rf.details->>'deal_id' ~ '^[0-9]+$' AND (rf.details->>'deal_id')::bigint = $1))
		LIMIT 1`

	var (
		record  Record
		prelim  *float64
		details []byte
	)
	err := s.pool.QueryRow(ctx, query, dealID).Scan(
		&record.Status, &record.ReservationDate, &prelim, &record.PaymentPlanID, &details)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("reservations: approved for deal %d: %w", dealID, err)
	}
	if prelim != nil {
		amount := money.FromFloat(*prelim)
		record.PreliminaryPayment = &amount
	}
	if len(details) > 0 {
		if err := json.Unmarshal(details, &record.Details); err != nil {
			return nil, fmt.Errorf("reservations: decode details for deal %d: %w", dealID, err)
		}
	}
	return &record, nil
}
