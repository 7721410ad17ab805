// Package identity resolves the consultant whose name and email appear in
// document headers.
package identity

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Consultant is a resolved header identity. Name is either nil or a
// non-empty trimmed string.
type Consultant struct {
	Name  *string
	Email *string
}

// Store defines the identity lookups.
type Store interface {
	ConsultantByDeal(ctx context.Context, dealID int64) (*Consultant, error)
	ConsultantByUser(ctx context.Context, userID int64) (*Consultant, error)
}

// PGStore implements Store on PostgreSQL.
type PGStore struct {
	pool *pgxpool.Pool
}

// NewStore constructs a PostgreSQL store.
func NewStore(pool *pgxpool.Pool) *PGStore {
	return &PGStore{pool: pool}
}

// ConsultantByDeal resolves the deal creator's display identity.
func (s *PGStore) ConsultantByDeal(ctx context.Context, dealID int64) (*Consultant, error) {
	const query = `
		SELECT u.email, COALESCE(NULLIF(TRIM(u.name), ''), u.email) AS full_name
		FROM deals d
		JOIN users u ON u.id = d.created_by
		WHERE d.id = $1`

	var email, fullName string
	err := s.pool.QueryRow(ctx, query, dealID).Scan(&email, &fullName)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("identity: consultant by deal %d: %w", dealID, err)
	}
	return newConsultant(fullName, email), nil
}

// ConsultantByUser resolves a user's display identity with the same
// trim-or-email rule.
func (s *PGStore) ConsultantByUser(ctx context.Context, userID int64) (*Consultant, error) {
	const query = `SELECT email, COALESCE(NULLIF(TRIM(name), ''), email) AS full_name FROM users WHERE id = $1`

	var email, fullName string
	err := s.pool.QueryRow(ctx, query, userID).Scan(&email, &fullName)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("identity: consultant by user %d: %w", userID, err)
	}
	return newConsultant(fullName, email), nil
}

func newConsultant(name, email string) *Consultant {
	c := &Consultant{}
	if trimmed := strings.TrimSpace(name); trimmed != "" {
		c.Name = &trimmed
	}
	if email != "" {
		c.Email = &email
	}
	return c
}
