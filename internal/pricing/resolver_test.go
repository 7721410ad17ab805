package pricing

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/uptown-october/uptown-docs/internal/money"
)

type stubModelStore struct {
	breakdown *Breakdown
	err       error
	calls     int
}

func (s *stubModelStore) LatestApprovedModelPricing(ctx context.Context, unitID int64) (*Breakdown, error) {
	s.calls++
	return s.breakdown, s.err
}

func egp(v float64) money.Amount { return money.FromFloat(v) }

func TestCallerBreakdownWinsWithoutModelLookup(t *testing.T) {
	store := &stubModelStore{breakdown: &Breakdown{Base: egp(999)}}
	r := NewResolver(store, nil)

	caller := &Breakdown{Base: egp(1000000), Garden: egp(50000), Maintenance: egp(30000)}
	got, source := r.ResolveOffer(context.Background(), caller, 7)

	require.Equal(t, SourceCaller, source)
	require.Equal(t, egp(1050000), got.TotalExcl())
	require.Equal(t, egp(1080000), got.TotalIncl())
	require.Zero(t, store.calls, "live pricing must never be consulted")
}

func TestAllZeroCallerBreakdownFallsThrough(t *testing.T) {
	store := &stubModelStore{breakdown: &Breakdown{Base: egp(500)}}
	r := NewResolver(store, nil)

	got, source := r.ResolveOffer(context.Background(), &Breakdown{}, 7)

	require.Equal(t, SourceModel, source)
	require.Equal(t, egp(500), got.Base)
	require.Equal(t, 1, store.calls)
}

func TestModelLookupSkippedWithoutUnit(t *testing.T) {
	store := &stubModelStore{}
	r := NewResolver(store, nil)

	got, source := r.ResolveOffer(context.Background(), nil, 0)
	require.Nil(t, got)
	require.Equal(t, SourceNone, source)
	require.Zero(t, store.calls)
}

func TestModelFetchFailureDegrades(t *testing.T) {
	store := &stubModelStore{err: errors.New("connection refused")}
	r := NewResolver(store, nil)

	got, source := r.ResolveOffer(context.Background(), nil, 7)
	require.Nil(t, got)
	require.Equal(t, SourceNone, source)
}

func TestNegativeComponentsClamped(t *testing.T) {
	caller := &Breakdown{Base: egp(100), Garden: egp(-5)}
	r := NewResolver(nil, nil)
	got, _ := r.ResolveOffer(context.Background(), caller, 0)
	require.Equal(t, money.Zero, got.Garden)
	require.Equal(t, egp(100), got.TotalIncl())
}

func TestTotalsMonotone(t *testing.T) {
	b := Breakdown{Base: egp(100)}
	bigger := b
	bigger.Roof = egp(1)
	require.GreaterOrEqual(t, int64(bigger.TotalExcl()), int64(b.TotalExcl()))
	require.GreaterOrEqual(t, int64(bigger.TotalIncl()), int64(b.TotalIncl()))
}

func TestResolveReservationUsesSnapshotOnly(t *testing.T) {
	got, source := ResolveReservation(&Breakdown{Base: egp(100)})
	require.Equal(t, SourceSnapshot, source)
	require.Equal(t, egp(100), got.Base)

	got, source = ResolveReservation(nil)
	require.Nil(t, got)
	require.Equal(t, SourceNone, source)

	got, source = ResolveReservation(&Breakdown{})
	require.Nil(t, got)
	require.Equal(t, SourceNone, source)
}
