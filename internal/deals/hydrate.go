package deals

import (
	"context"

	"github.com/uptown-october/uptown-docs/internal/money"
	"github.com/uptown-october/uptown-docs/internal/pricing"
)

// OfferPayload is the caller's Client Offer payload after JSON decoding.
// The hydrator fills omitted fields from the deal snapshot.
type OfferPayload struct {
	Language         string             `json:"language"`
	Currency         string             `json:"currency"`
	Buyers           []Buyer            `json:"buyers"`
	Schedule         []ScheduleRow      `json:"schedule"`
	Totals           *Totals            `json:"totals"`
	OfferDate        string             `json:"offer_date"`
	FirstPaymentDate string             `json:"first_payment_date"`
	Unit             *UnitRef           `json:"unit"`
	Breakdown        *pricing.Breakdown `json:"unit_pricing_breakdown"`
	DealID           int64              `json:"deal_id"`
}

// Hydrator copies snapshot fields into an offer payload when the caller
// omitted them.
type Hydrator struct {
	store Store
}

// NewHydrator constructs a Hydrator.
func NewHydrator(store Store) *Hydrator {
	return &Hydrator{store: store}
}

// Hydrate loads the deal snapshot and fills each omitted top-level field.
// It only triggers when the payload lacks buyers or schedule and a positive
// deal id is present. todayISO backs the offer-date fallback. After
// hydration, nil slices are coerced to empty ones and a missing
// totalNominal defaults to the schedule sum.
func (h *Hydrator) Hydrate(ctx context.Context, p *OfferPayload, todayISO string) error {
	needsSnapshot := (len(p.Buyers) == 0 || len(p.Schedule) == 0) && p.DealID > 0
	if needsSnapshot {
		deal, err := h.store.Get(ctx, p.DealID)
		if err != nil {
			return err
		}
		h.fill(p, deal.Details.Calculator, todayISO)
	}
	finalize(p)
	return nil
}

func (h *Hydrator) fill(p *OfferPayload, snap *CalculatorSnapshot, todayISO string) {
	if snap == nil {
		return
	}
	if len(p.Buyers) == 0 {
		p.Buyers = snap.Buyers()
	}
	if plan := snap.GeneratedPlan; plan != nil {
		if len(p.Schedule) == 0 {
			p.Schedule = plan.Schedule
		}
		if p.Totals == nil {
			if plan.Totals != nil {
				p.Totals = plan.Totals
			} else {
				p.Totals = &Totals{}
			}
		}
	}
	if p.OfferDate == "" {
		if snap.Inputs != nil && snap.Inputs.OfferDate != "" {
			p.OfferDate = snap.Inputs.OfferDate
		} else {
			p.OfferDate = todayISO
		}
	}
	if p.FirstPaymentDate == "" {
		if snap.Inputs != nil && snap.Inputs.FirstPaymentDate != "" {
			p.FirstPaymentDate = snap.Inputs.FirstPaymentDate
		} else {
			p.FirstPaymentDate = p.OfferDate
		}
	}
	if p.Unit == nil && snap.UnitInfo != nil {
		p.Unit = &UnitRef{
			ID:   snap.UnitInfo.UnitID,
			Code: snap.UnitInfo.UnitCode,
			Type: snap.UnitInfo.UnitType,
		}
	}
	if p.Language == "" {
		p.Language = snap.Language
	}
	if p.Currency == "" {
		p.Currency = snap.Currency
	}
}

// finalize coerces absent collections and derives the nominal total from
// the schedule when missing.
func finalize(p *OfferPayload) {
	if p.Buyers == nil {
		p.Buyers = []Buyer{}
	}
	if p.Schedule == nil {
		p.Schedule = []ScheduleRow{}
	}
	if p.Totals == nil {
		p.Totals = &Totals{}
	}
	if p.Totals.TotalNominal.IsZero() {
		var sum money.Amount
		for _, row := range p.Schedule {
			sum += row.Amount
		}
		p.Totals.TotalNominal = sum
	}
	if p.Currency == "" {
		p.Currency = "EGP"
	}
}
