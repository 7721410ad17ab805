// Package deals models the persisted deal and its calculator snapshot, and
// hydrates caller payloads from it.
package deals

import (
	"encoding/json"
	"strconv"
	"strings"
	"time"

	"github.com/uptown-october/uptown-docs/internal/money"
	"github.com/uptown-october/uptown-docs/internal/pricing"
)

// Deal is the persisted deal row. Read-only within a request.
type Deal struct {
	ID         int64
	CreatedBy  int64
	FMReviewAt *time.Time
	Details    Details
}

// Details is the deal's JSON details column.
type Details struct {
	Calculator *CalculatorSnapshot `json:"calculator"`
}

// CalculatorSnapshot is the commercial-terms snapshot captured when the
// consultant produced the offer. The blob is loose and partially optional;
// it is deserialized once at the edge and passed through the pipeline as
// this typed value.
type CalculatorSnapshot struct {
	ClientInfo           map[string]any     `json:"clientInfo"`
	UnitInfo             *UnitInfo          `json:"unitInfo"`
	GeneratedPlan        *GeneratedPlan     `json:"generatedPlan"`
	UnitPricingBreakdown *pricing.Breakdown `json:"unitPricingBreakdown"`
	Inputs               *SnapshotInputs    `json:"inputs"`
	Language             string             `json:"language"`
	Currency             string             `json:"currency"`
}

// UnitInfo identifies the unit the snapshot was priced against.
type UnitInfo struct {
	UnitID   FlexInt64 `json:"unit_id"`
	UnitCode string    `json:"unit_code"`
	UnitType string    `json:"unit_type"`
}

// GeneratedPlan is the computed payment plan inside the snapshot.
type GeneratedPlan struct {
	Schedule          []ScheduleRow `json:"schedule"`
	DownPaymentAmount money.Amount  `json:"downPaymentAmount"`
	Totals            *Totals       `json:"totals"`
}

// ScheduleRow is one installment line. Rendered in the order supplied.
type ScheduleRow struct {
	Month  FlexInt64    `json:"month"`
	Label  string       `json:"label"`
	Amount money.Amount `json:"amount"`
	Date   string       `json:"date"`
}

// Totals carries plan-level aggregates.
type Totals struct {
	TotalNominal money.Amount `json:"totalNominal"`
}

// SnapshotInputs are the consultant's original inputs.
type SnapshotInputs struct {
	OfferDate        string `json:"offerDate"`
	FirstPaymentDate string `json:"firstPaymentDate"`
}

// UnitRef is the unit reference embedded in document payloads.
type UnitRef struct {
	ID   FlexInt64 `json:"unit_id"`
	Code string    `json:"unit_code"`
	Type string    `json:"unit_type"`
}

// FlexInt64 tolerates numeric and string encodings; anything else decodes
// to zero.
type FlexInt64 int64

// UnmarshalJSON implements lenient integer decoding.
func (f *FlexInt64) UnmarshalJSON(data []byte) error {
	s := strings.TrimSpace(string(data))
	if s == "" || s == "null" {
		*f = 0
		return nil
	}
	if strings.HasPrefix(s, `"`) {
		var str string
		if err := json.Unmarshal(data, &str); err != nil {
			*f = 0
			return nil
		}
		s = strings.TrimSpace(str)
	}
	if v, err := strconv.ParseInt(s, 10, 64); err == nil {
		*f = FlexInt64(v)
		return nil
	}
	if v, err := strconv.ParseFloat(s, 64); err == nil {
		*f = FlexInt64(int64(v))
		return nil
	}
	*f = 0
	return nil
}

// Int64 unwraps the value.
func (f FlexInt64) Int64() int64 { return int64(f) }
