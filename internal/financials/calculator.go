// Package financials derives the totals, the down-payment decomposition,
// and the remaining balance rendered on both documents.
package financials

import (
	"strings"

	"github.com/uptown-october/uptown-docs/internal/deals"
	"github.com/uptown-october/uptown-docs/internal/locale"
	"github.com/uptown-october/uptown-docs/internal/money"
	"github.com/uptown-october/uptown-docs/internal/pricing"
	"github.com/uptown-october/uptown-docs/internal/reservations"
)

// DownPayment is the resolved down-payment decomposition.
type DownPayment struct {
	Total           money.Amount
	Preliminary     money.Amount
	PreliminaryDate string // DD/MM/YYYY, empty when unknown
	Paid            money.Amount
	PaidDate        string // DD/MM/YYYY, empty when unknown
	Remaining       money.Amount
	Locked          bool
}

// Summary aggregates everything the composer renders in monetary terms.
type Summary struct {
	Breakdown        *pricing.Breakdown
	TotalExcl        money.Amount
	TotalIncl        money.Amount
	DP               DownPayment
	RemainingBalance money.Amount
}

// Inputs collects the resolved sources feeding the calculation.
type Inputs struct {
	Breakdown         *pricing.Breakdown
	Plan              *deals.GeneratedPlan
	Schedule          []deals.ScheduleRow
	Reservation       *reservations.Record
	CallerPreliminary *money.Amount
}

const downPaymentToken = "down payment"

// Calculate derives the document financials. An approved reservation
// record's dp object locks the decomposition: its total overrides the plan
// base and its preliminary overrides the caller's. The remaining balance is
// totalIncl minus the full DP, independent of how the DP is split.
func Calculate(in Inputs) Summary {
	dp := DownPayment{Total: downPaymentBase(in.Plan, in.Schedule)}

	if in.CallerPreliminary != nil {
		dp.Preliminary = in.CallerPreliminary.ClampNonNegative()
	}

	if rec := in.Reservation; rec.IsApproved() {
		if ep := rec.EffectivePreliminary(); ep != nil {
			dp.Preliminary = ep.ClampNonNegative()
		}
		if d := rec.Details.DP; d != nil {
			dp.Locked = true
			if d.Total != nil && *d.Total >= 0 {
				dp.Total = *d.Total
			}
			if d.PreliminaryAmount != nil {
				dp.Preliminary = d.PreliminaryAmount.ClampNonNegative()
			}
			if d.PaidAmount != nil && *d.PaidAmount >= 0 {
				dp.Paid = *d.PaidAmount
			}
			dp.PreliminaryDate = locale.ParseSlashDateUTC(d.PreliminaryDate)
			dp.PaidDate = locale.ParseSlashDateUTC(d.PaidDate)
		}
	}

	// The stored dp.remaining is informational only; always derive.
	dp.Remaining = dp.Total.SubFloor(dp.Preliminary + dp.Paid)

	out := Summary{Breakdown: in.Breakdown, DP: dp}
	if in.Breakdown != nil {
		out.TotalExcl = in.Breakdown.TotalExcl()
		out.TotalIncl = in.Breakdown.TotalIncl()
	}
	out.RemainingBalance = out.TotalIncl.SubFloor(dp.Total)
	return out
}

// downPaymentBase takes the plan's explicit amount when positive, else the
// first schedule row whose label mentions a down payment.
func downPaymentBase(plan *deals.GeneratedPlan, schedule []deals.ScheduleRow) money.Amount {
	if plan != nil && plan.DownPaymentAmount.IsPositive() {
		return plan.DownPaymentAmount
	}
	if plan != nil && len(schedule) == 0 {
		schedule = plan.Schedule
	}
	for _, row := range schedule {
		if strings.Contains(strings.ToLower(row.Label), downPaymentToken) {
			return row.Amount.ClampNonNegative()
		}
	}
	return 0
}
