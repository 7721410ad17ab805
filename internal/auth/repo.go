package auth

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// ErrNotFound indicates no matching user account.
var ErrNotFound = errors.New("user not found")

// account is the credentials row backing a login.
type account struct {
	User
	PasswordHash string
	IsActive     bool
}

// Repository defines persistence operations for the guard.
type Repository interface {
	FindByEmail(ctx context.Context, email string) (*account, error)
}

// PGRepository implements Repository on PostgreSQL.
type PGRepository struct {
	pool *pgxpool.Pool
}

// NewRepository constructs a PostgreSQL repository.
func NewRepository(pool *pgxpool.Pool) *PGRepository {
	return &PGRepository{pool: pool}
}

// FindByEmail fetches a user account by email.
func (r *PGRepository) FindByEmail(ctx context.Context, email string) (*account, error) {
	const query = `SELECT id, COALESCE(name, ''), email, role, password_hash, is_active FROM users WHERE email = $1`

	var acc account
	err := r.pool.QueryRow(ctx, query, email).Scan(
		&acc.ID, &acc.Name, &acc.Email, &acc.Role, &acc.PasswordHash, &acc.IsActive)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("auth: find by email: %w", err)
	}
	return &acc, nil
}
