package reservations

import (
	"context"
	"errors"
	"log/slog"

	"github.com/uptown-october/uptown-docs/internal/deals"
)

// ErrApprovalRequired is the gate's fail-closed rejection.
var ErrApprovalRequired = errors.New("Financial Manager approval required before generating Reservation Form")

// UnitChecker answers the reserved-unit approval path.
type UnitChecker interface {
	IsReservedUnavailable(ctx context.Context, id int64) (bool, error)
}

// Gate decides whether a Reservation Form may be generated for a deal.
// Generation is allowed when any of three paths holds: the deal carries a
// financial-manager review timestamp, an approved reservation record is
// linked to the deal, or the snapshot's unit is RESERVED and unavailable.
type Gate struct {
	store  Store
	units  UnitChecker
	logger *slog.Logger
}

// NewGate constructs a Gate.
func NewGate(store Store, units UnitChecker, logger *slog.Logger) *Gate {
	if logger == nil {
		logger = slog.Default()
	}
	return &Gate{store: store, units: units, logger: logger}
}

// Allow checks the three approval paths in order. Database errors on the
// side paths are non-fatal; the next path is still tried. When every path
// misses, the gate fails closed with ErrApprovalRequired.
func (g *Gate) Allow(ctx context.Context, deal *deals.Deal) error {
	if deal == nil {
		return ErrApprovalRequired
	}
	if deal.FMReviewAt != nil {
		return nil
	}

	record, err := g.store.ApprovedForDeal(ctx, deal.ID)
	if err != nil {
		g.logger.Warn("approval gate: reservation lookup failed",
			slog.Int64("deal_id", deal.ID), slog.Any("error", err))
	} else if record.IsApproved() {
		return nil
	}

	if unitID := snapshotUnitID(deal); unitID > 0 {
		reserved, err := g.units.IsReservedUnavailable(ctx, unitID)
		if err != nil {
			g.logger.Warn("approval gate: unit status lookup failed",
				slog.Int64("deal_id", deal.ID), slog.Int64("unit_id", unitID), slog.Any("error", err))
		} else if reserved {
			return nil
		}
	}

	return ErrApprovalRequired
}

func snapshotUnitID(deal *deals.Deal) int64 {
	calc := deal.Details.Calculator
	if calc == nil || calc.UnitInfo == nil {
		return 0
	}
	return calc.UnitInfo.UnitID.Int64()
}
