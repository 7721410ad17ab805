// Package reservations models approved reservation records and the approval
// gate that guards Reservation Form generation.
package reservations

import (
	"time"

	"github.com/uptown-october/uptown-docs/internal/money"
)

// StatusApproved is the only status the pipeline acts on.
const StatusApproved = "approved"

// Record is a persisted reservation form row. When approved, its DP details
// lock the down-payment decomposition for all subsequent generations.
type Record struct {
	Status             string
	ReservationDate    *time.Time
	PreliminaryPayment *money.Amount
	PaymentPlanID      *int64
	Details            RecordDetails
}

// RecordDetails is the record's JSON details column.
type RecordDetails struct {
	DealID             string        `json:"deal_id"`
	PreliminaryPayment *money.Amount `json:"preliminary_payment"`
	ReservationDate    string        `json:"reservation_date"`
	DP                 *DPDetails    `json:"dp"`
}

// DPDetails is the locked down-payment decomposition.
type DPDetails struct {
	Total             *money.Amount `json:"total"`
	PreliminaryAmount *money.Amount `json:"preliminary_amount"`
	PreliminaryDate   string        `json:"preliminary_date"`
	PaidAmount        *money.Amount `json:"paid_amount"`
	PaidDate          string        `json:"paid_date"`
	Remaining         *money.Amount `json:"remaining"`
}

// IsApproved reports whether the record carries the approved status.
func (r *Record) IsApproved() bool {
	return r != nil && r.Status == StatusApproved
}

// EffectivePreliminary applies the column-over-details tie-break: the
// column-level value wins when non-null, else the details value.
func (r *Record) EffectivePreliminary() *money.Amount {
	if r == nil {
		return nil
	}
	if r.PreliminaryPayment != nil {
		return r.PreliminaryPayment
	}
	return r.Details.PreliminaryPayment
}
