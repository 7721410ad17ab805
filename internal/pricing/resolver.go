package pricing

import (
	"context"
	"log/slog"
)

// Source names where a resolved breakdown came from.
type Source string

const (
	// SourceCaller means the caller supplied a usable breakdown.
	SourceCaller Source = "caller"
	// SourceModel means the latest approved unit-model pricing was used.
	SourceModel Source = "model"
	// SourceSnapshot means the deal snapshot's stored breakdown was used.
	SourceSnapshot Source = "snapshot"
	// SourceNone means no breakdown could be resolved.
	SourceNone Source = "none"
)

// ModelPricingStore loads live unit-model pricing.
type ModelPricingStore interface {
	LatestApprovedModelPricing(ctx context.Context, unitID int64) (*Breakdown, error)
}

// Resolver applies the strict precedence rules for the Client Offer.
type Resolver struct {
	store  ModelPricingStore
	logger *slog.Logger
}

// NewResolver constructs a Resolver.
func NewResolver(store ModelPricingStore, logger *slog.Logger) *Resolver {
	if logger == nil {
		logger = slog.Default()
	}
	return &Resolver{store: store, logger: logger}
}

// ResolveOffer resolves the Client Offer breakdown. A caller breakdown with
// at least one non-zero component always wins; a six-zero one is
// indistinguishable from absence. Otherwise live model pricing for the unit
// is consulted, and a fetch failure degrades to no breakdown rather than
// failing the request.
func (r *Resolver) ResolveOffer(ctx context.Context, caller *Breakdown, unitID int64) (*Breakdown, Source) {
	if caller != nil {
		normalized := caller.Normalize()
		if !normalized.AllZero() {
			return &normalized, SourceCaller
		}
	}
	if unitID <= 0 || r.store == nil {
		return nil, SourceNone
	}
	live, err := r.store.LatestApprovedModelPricing(ctx, unitID)
	if err != nil {
		r.logger.Warn("model pricing lookup failed",
			slog.Int64("unit_id", unitID), slog.Any("error", err))
		return nil, SourceNone
	}
	if live == nil {
		return nil, SourceNone
	}
	normalized := live.Normalize()
	return &normalized, SourceModel
}

// ResolveReservation resolves the Reservation Form breakdown. It must come
// from the deal snapshot and is never overridden by live model pricing.
func ResolveReservation(snapshot *Breakdown) (*Breakdown, Source) {
	if snapshot == nil {
		return nil, SourceNone
	}
	normalized := snapshot.Normalize()
	if normalized.AllZero() {
		return nil, SourceNone
	}
	return &normalized, SourceSnapshot
}
