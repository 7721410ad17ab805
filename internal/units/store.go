// Package units loads structural unit metadata and live model pricing.
package units

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/uptown-october/uptown-docs/internal/money"
	"github.com/uptown-october/uptown-docs/internal/pricing"
)

// Unit carries the structural, non-price fields rendered on the
// Reservation Form.
type Unit struct {
	ID             int64
	Area           *float64
	BuildingNumber *string
	BlockSector    *string
	Zone           *string
}

// ErrNotFound indicates the unit does not exist.
var ErrNotFound = errors.New("unit not found")

// Store defines read-only unit persistence.
type Store interface {
	Structural(ctx context.Context, id int64) (*Unit, error)
	IsReservedUnavailable(ctx context.Context, id int64) (bool, error)
	LatestApprovedModelPricing(ctx context.Context, unitID int64) (*pricing.Breakdown, error)
}

// PGStore implements Store on PostgreSQL.
type PGStore struct {
	pool *pgxpool.Pool
}

// NewStore constructs a PostgreSQL store.
func NewStore(pool *pgxpool.Pool) *PGStore {
	return &PGStore{pool: pool}
}

// Structural loads the informational unit fields.
func (s *PGStore) Structural(ctx context.Context, id int64) (*Unit, error) {
	const query = `SELECT area, building_number, block_sector, zone FROM units WHERE id = $1`

	unit := Unit{ID: id}
	err := s.pool.QueryRow(ctx, query, id).Scan(&unit.Area, &unit.BuildingNumber, &unit.BlockSector, &unit.Zone)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("units: structural %d: %w", id, err)
	}
	return &unit, nil
}

// IsReservedUnavailable reports whether the unit is RESERVED and flagged
// unavailable. Used as the third reservation approval path.
func (s *PGStore) IsReservedUnavailable(ctx context.Context, id int64) (bool, error) {
	const query = `SELECT 1 FROM units WHERE id = $1 AND unit_status = 'RESERVED' AND available = FALSE`

	var one int
	err := s.pool.QueryRow(ctx, query, id).Scan(&one)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return false, nil
		}
		return false, fmt.Errorf("units: reserved check %d: %w", id, err)
	}
	return true, nil
}

// LatestApprovedModelPricing returns the newest approved pricing row for
// the unit's model, or nil when none exists.
func (s *PGStore) LatestApprovedModelPricing(ctx context.Context, unitID int64) (*pricing.Breakdown, error) {
	const query = `
		SELECT ump.base, ump.garden, ump.roof, ump.storage, ump.garage, ump.maintenance
		FROM units u
		JOIN unit_model_pricing ump ON ump.model_id = u.model_id
		WHERE u.id = $1 AND ump.status = 'approved'
		ORDER BY ump.id DESC
		LIMIT 1`

	var base, garden, roof, storage, garage, maintenance float64
	err := s.pool.QueryRow(ctx, query, unitID).Scan(&base, &garden, &roof, &storage, &garage, &maintenance)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("units: model pricing %d: %w", unitID, err)
	}
	b := pricing.Breakdown{
		Base:        money.FromFloat(base),
		Garden:      money.FromFloat(garden),
		Roof:        money.FromFloat(roof),
		Storage:     money.FromFloat(storage),
		Garage:      money.FromFloat(garage),
		Maintenance: money.FromFloat(maintenance),
	}
	return &b, nil
}
