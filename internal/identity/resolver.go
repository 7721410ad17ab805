package identity

import (
	"context"
	"log/slog"
	"strings"

	"github.com/uptown-october/uptown-docs/internal/auth"
)

// Resolver is the best-effort consultant resolver. It never fails: lookup
// errors are swallowed and the next source is tried, and a completely
// unresolvable identity yields nil name and email. Its output drives only
// header metadata.
type Resolver struct {
	store  Store
	logger *slog.Logger
}

// NewResolver constructs a Resolver.
func NewResolver(store Store, logger *slog.Logger) *Resolver {
	if logger == nil {
		logger = slog.Default()
	}
	return &Resolver{store: store, logger: logger}
}

// Resolve walks the sources in order: the authenticated user's own name,
// the deal creator, then the authenticated user re-queried by id. The
// first source yielding a non-empty name wins.
func (r *Resolver) Resolve(ctx context.Context, user auth.User, dealID int64) Consultant {
	if name := strings.TrimSpace(user.Name); name != "" {
		email := user.Email
		out := Consultant{Name: &name}
		if email != "" {
			out.Email = &email
		}
		return out
	}

	if dealID > 0 {
		c, err := r.store.ConsultantByDeal(ctx, dealID)
		if err != nil {
			r.logger.Warn("consultant by deal failed",
				slog.Int64("deal_id", dealID), slog.Any("error", err))
		} else if c != nil && c.Name != nil {
			return *c
		}
	}

	if user.ID > 0 {
		c, err := r.store.ConsultantByUser(ctx, user.ID)
		if err != nil {
			r.logger.Warn("consultant by user failed",
				slog.Int64("user_id", user.ID), slog.Any("error", err))
		} else if c != nil && c.Name != nil {
			return *c
		}
	}

	return Consultant{}
}
