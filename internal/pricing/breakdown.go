// Package pricing resolves the six-component unit pricing breakdown used by
// both document kinds.
package pricing

import "github.com/uptown-october/uptown-docs/internal/money"

// Breakdown is the pricing decomposition of a unit. All components are
// non-negative once normalized.
type Breakdown struct {
	Base        money.Amount `json:"base"`
	Garden      money.Amount `json:"garden"`
	Roof        money.Amount `json:"roof"`
	Storage     money.Amount `json:"storage"`
	Garage      money.Amount `json:"garage"`
	Maintenance money.Amount `json:"maintenance"`
}

// Normalize clamps every component at zero and returns the result.
func (b Breakdown) Normalize() Breakdown {
	return Breakdown{
		Base:        b.Base.ClampNonNegative(),
		Garden:      b.Garden.ClampNonNegative(),
		Roof:        b.Roof.ClampNonNegative(),
		Storage:     b.Storage.ClampNonNegative(),
		Garage:      b.Garage.ClampNonNegative(),
		Maintenance: b.Maintenance.ClampNonNegative(),
	}
}

// AllZero reports whether every component is zero. A six-zero caller
// breakdown is treated as absent.
func (b Breakdown) AllZero() bool {
	return b == Breakdown{}
}

// TotalExcl sums all components except maintenance.
func (b Breakdown) TotalExcl() money.Amount {
	return b.Base + b.Garden + b.Roof + b.Storage + b.Garage
}

// TotalIncl sums all components including maintenance.
func (b Breakdown) TotalIncl() money.Amount {
	return b.TotalExcl() + b.Maintenance
}
