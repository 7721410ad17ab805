package documents

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/uptown-october/uptown-docs/internal/auth"
	"github.com/uptown-october/uptown-docs/internal/deals"
	"github.com/uptown-october/uptown-docs/internal/identity"
	"github.com/uptown-october/uptown-docs/internal/locale"
	"github.com/uptown-october/uptown-docs/internal/money"
	"github.com/uptown-october/uptown-docs/internal/platform/httpx"
	"github.com/uptown-october/uptown-docs/internal/pricing"
	"github.com/uptown-october/uptown-docs/internal/reservations"
	"github.com/uptown-october/uptown-docs/internal/units"
	"github.com/uptown-october/uptown-docs/report"
)

type captureRenderer struct {
	doc report.Document
}

func (c *captureRenderer) RenderDocument(_ context.Context, doc report.Document) ([]byte, error) {
	c.doc = doc
	return []byte("%PDF-test"), nil
}

type stubDealStore struct {
	deals map[int64]*deals.Deal
}

func (s *stubDealStore) Get(_ context.Context, id int64) (*deals.Deal, error) {
	if d, ok := s.deals[id]; ok {
		return d, nil
	}
	return nil, deals.ErrNotFound
}

type stubUnitStore struct {
	structural *units.Unit
	reserved   bool
	pricing    *pricing.Breakdown
	pricingErr error
}

func (s *stubUnitStore) Structural(context.Context, int64) (*units.Unit, error) {
	if s.structural == nil {
		return nil, units.ErrNotFound
	}
	return s.structural, nil
}

func (s *stubUnitStore) IsReservedUnavailable(context.Context, int64) (bool, error) {
	return s.reserved, nil
}

func (s *stubUnitStore) LatestApprovedModelPricing(context.Context, int64) (*pricing.Breakdown, error) {
	return s.pricing, s.pricingErr
}

type stubResvStore struct {
	record *reservations.Record
	err    error
}

func (s *stubResvStore) ApprovedForDeal(context.Context, int64) (*reservations.Record, error) {
	return s.record, s.err
}

type stubIdentityStore struct{}

func (stubIdentityStore) ConsultantByDeal(context.Context, int64) (*identity.Consultant, error) {
	return nil, nil
}

func (stubIdentityStore) ConsultantByUser(context.Context, int64) (*identity.Consultant, error) {
	return nil, nil
}

var testUser = auth.User{ID: 9, Name: "Sara Ahmed", Email: "sara@uptown.example", Role: auth.RolePropertyConsultant}

func fixedClock() *locale.Clock {
	return locale.NewClock("Africa/Cairo").WithNow(func() time.Time {
		return time.Date(2024, 6, 1, 22, 30, 5, 0, time.UTC)
	})
}

func newTestService(t *testing.T, dealStore deals.Store, unitStore units.Store, resvStore reservations.Store) (*Service, *captureRenderer) {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	renderer := &captureRenderer{}
	svc, err := NewService(Deps{
		Clock:      fixedClock(),
		Deals:      dealStore,
		Units:      unitStore,
		Resv:       resvStore,
		Gate:       reservations.NewGate(resvStore, unitStore, logger),
		Pricing:    pricing.NewResolver(unitStore, logger),
		Identities: identity.NewResolver(stubIdentityStore{}, logger),
		Speller:    locale.Speller{},
		Renderer:   renderer,
		Logger:     logger,
	})
	require.NoError(t, err)
	return svc, renderer
}

func amount(v float64) *money.Amount {
	a := money.FromFloat(v)
	return &a
}

func offerBreakdown() *pricing.Breakdown {
	return &pricing.Breakdown{
		Base:        money.FromFloat(1000000),
		Garden:      money.FromFloat(50000),
		Maintenance: money.FromFloat(30000),
	}
}

func offerPayload() deals.OfferPayload {
	return deals.OfferPayload{
		Language:  "en",
		Currency:  "EGP",
		Breakdown: offerBreakdown(),
		Schedule: []deals.ScheduleRow{
			{Month: 1, Label: "Down Payment", Amount: money.FromFloat(200000), Date: "2024-06-01"},
		},
		Buyers: []deals.Buyer{{Name: "Omar Khaled"}},
	}
}

func TestClientOfferEnglishWithCallerBreakdown(t *testing.T) {
	svc, renderer := newTestService(t, &stubDealStore{}, &stubUnitStore{}, &stubResvStore{})

	result, err := svc.ClientOffer(context.Background(), testUser, offerPayload())
	require.NoError(t, err)
	require.Equal(t, "%PDF-test", string(result.PDF))
	require.True(t, strings.HasPrefix(result.Filename, "client_offer_"))
	require.True(t, strings.HasSuffix(result.Filename, ".pdf"))

	html := renderer.doc.HTML
	require.Contains(t, html, `dir="ltr"`)
	require.Contains(t, html, "1,080,000.00 EGP", "summary total incl. maintenance")
	require.Contains(t, html, "1,050,000.00 EGP", "summary total excl. maintenance")
	require.Contains(t, html, "200,000.00 EGP")
	require.Contains(t, html, "Two Hundred Thousand Egyptian Pounds")
	require.Contains(t, renderer.doc.HeaderHTML, "01-06-2024")
	require.Contains(t, renderer.doc.HeaderHTML, "Uptown 6 October Financial System")
	require.Contains(t, renderer.doc.FooterHTML, "This document is not a contract")
}

func TestClientOfferArabicAllZeroBreakdown(t *testing.T) {
	svc, renderer := newTestService(t, &stubDealStore{}, &stubUnitStore{}, &stubResvStore{})

	payload := offerPayload()
	payload.Language = "ar-EG"
	payload.Breakdown = &pricing.Breakdown{}

	_, err := svc.ClientOffer(context.Background(), testUser, payload)
	require.NoError(t, err)

	html := renderer.doc.HTML
	require.Contains(t, html, `dir="rtl"`)
	require.NotContains(t, html, "ملخص الوحدة", "summary box must be omitted")
	require.Contains(t, html, "دفعة التعاقد", "label remapped to Arabic")
	require.Contains(t, html, "200,000.00 جم", "Latin digits with Arabic currency label")
}

func TestClientOfferFallsBackToModelPricing(t *testing.T) {
	unitStore := &stubUnitStore{pricing: &pricing.Breakdown{Base: money.FromFloat(750000)}}
	svc, renderer := newTestService(t, &stubDealStore{}, unitStore, &stubResvStore{})

	payload := offerPayload()
	payload.Breakdown = nil
	payload.Unit = &deals.UnitRef{ID: 7, Code: "B2-14", Type: "Apartment"}

	_, err := svc.ClientOffer(context.Background(), testUser, payload)
	require.NoError(t, err)
	require.Contains(t, renderer.doc.HTML, "750,000.00 EGP")
	require.Contains(t, renderer.doc.HeaderHTML, "B2-14 — Apartment")
}

func TestClientOfferEmptyScheduleRendersNoData(t *testing.T) {
	svc, renderer := newTestService(t, &stubDealStore{}, &stubUnitStore{}, &stubResvStore{})

	payload := deals.OfferPayload{Language: "en"}
	_, err := svc.ClientOffer(context.Background(), testUser, payload)
	require.NoError(t, err)
	require.Contains(t, renderer.doc.HTML, "No data")
	require.Contains(t, renderer.doc.HTML, "No client data")
}

func reservationDeal(fmReviewed bool) *deals.Deal {
	deal := &deals.Deal{
		ID:        42,
		CreatedBy: 9,
		Details: deals.Details{Calculator: &deals.CalculatorSnapshot{
			ClientInfo: map[string]any{
				"buyer_name":  "Omar Khaled",
				"nationality": "Egyptian",
			},
			UnitInfo:             &deals.UnitInfo{UnitID: 7, UnitCode: "B2-14", UnitType: "Apartment"},
			GeneratedPlan:        &deals.GeneratedPlan{DownPaymentAmount: money.FromFloat(250000)},
			UnitPricingBreakdown: offerBreakdown(),
			Language:             "ar",
			Currency:             "EGP",
		}},
	}
	if fmReviewed {
		reviewed := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
		deal.FMReviewAt = &reviewed
	}
	return deal
}

func TestReservationFormArabicProse(t *testing.T) {
	dealStore := &stubDealStore{deals: map[int64]*deals.Deal{42: reservationDeal(true)}}
	svc, renderer := newTestService(t, dealStore, &stubUnitStore{}, &stubResvStore{})

	result, err := svc.ReservationForm(context.Background(), testUser, ReservationFormRequest{
		DealID:                   42,
		PreliminaryPaymentAmount: amount(50000),
	})
	require.NoError(t, err)
	require.Equal(t, locale.Arabic, result.Language)

	html := renderer.doc.HTML
	require.Contains(t, html, `dir="rtl"`)
	require.Contains(t, html, "50,000.00 جم")
	require.Contains(t, html, "لاغير)")
	require.Contains(t, html, "نموذج حجز وحدة")
	require.Contains(t, renderer.doc.HeaderHTML, "نظام شركة أبتاون 6 أكتوبر المالي")
}

func TestReservationFormGateDenied(t *testing.T) {
	dealStore := &stubDealStore{deals: map[int64]*deals.Deal{42: reservationDeal(false)}}
	svc, _ := newTestService(t, dealStore, &stubUnitStore{}, &stubResvStore{})

	_, err := svc.ReservationForm(context.Background(), testUser, ReservationFormRequest{DealID: 42})
	require.Error(t, err)
	require.ErrorIs(t, err, httpx.ErrForbidden)
	require.Equal(t, "Financial Manager approval required before generating Reservation Form", err.Error())
}

func TestReservationFormDealNotFound(t *testing.T) {
	svc, _ := newTestService(t, &stubDealStore{}, &stubUnitStore{}, &stubResvStore{})

	_, err := svc.ReservationForm(context.Background(), testUser, ReservationFormRequest{DealID: 5})
	require.ErrorIs(t, err, httpx.ErrNotFound)
}

func TestReservationFormRejectsNonPositiveDealID(t *testing.T) {
	svc, _ := newTestService(t, &stubDealStore{}, &stubUnitStore{}, &stubResvStore{})

	_, err := svc.ReservationForm(context.Background(), testUser, ReservationFormRequest{DealID: 0})
	require.ErrorIs(t, err, httpx.ErrBadInput)
	require.Equal(t, "deal_id must be a positive number", err.Error())
}

func TestReservationFormLockedDownPayment(t *testing.T) {
	dealStore := &stubDealStore{deals: map[int64]*deals.Deal{42: reservationDeal(true)}}
	resvStore := &stubResvStore{record: &reservations.Record{
		Status: reservations.StatusApproved,
		Details: reservations.RecordDetails{DP: &reservations.DPDetails{
			Total:             amount(300000),
			PreliminaryAmount: amount(20000),
			PreliminaryDate:   "2024-05-01",
			PaidAmount:        amount(80000),
			PaidDate:          "2024-05-15",
		}},
	}}
	svc, renderer := newTestService(t, dealStore, &stubUnitStore{}, resvStore)

	_, err := svc.ReservationForm(context.Background(), testUser, ReservationFormRequest{
		DealID:                   42,
		Language:                 "en",
		PreliminaryPaymentAmount: amount(9999),
	})
	require.NoError(t, err)

	html := renderer.doc.HTML
	require.Contains(t, html, "20,000.00 EGP", "locked preliminary overrides caller")
	require.NotContains(t, html, "9,999.00")
	require.Contains(t, html, "80,000.00 EGP")
	require.Contains(t, html, "(01/05/2024)")
	require.Contains(t, html, "(15/05/2024)")
	require.Contains(t, html, "200,000.00 EGP", "remaining of down payment")
	// totalIncl 1,080,000 minus locked DP 300,000
	require.Contains(t, html, "780,000.00 EGP")
}

func TestReservationFormDateFourTier(t *testing.T) {
	dealStore := &stubDealStore{deals: map[int64]*deals.Deal{42: reservationDeal(true)}}
	svc, renderer := newTestService(t, dealStore, &stubUnitStore{}, &stubResvStore{})

	_, err := svc.ReservationForm(context.Background(), testUser, ReservationFormRequest{
		DealID:              42,
		Language:            "en",
		ReservationFormDate: "15/07/2024",
	})
	require.NoError(t, err)
	require.Contains(t, renderer.doc.HTML, "15/07/2024")
	require.Contains(t, renderer.doc.HTML, "Monday", "2024-07-15 weekday computed in UTC")
	require.Contains(t, renderer.doc.HeaderHTML, "15/07/2024")
}

func TestReservationFormDateFromApprovedRecord(t *testing.T) {
	stored := time.Date(2024, 3, 9, 23, 30, 0, 0, time.UTC)
	dealStore := &stubDealStore{deals: map[int64]*deals.Deal{42: reservationDeal(true)}}
	resvStore := &stubResvStore{record: &reservations.Record{
		Status:          reservations.StatusApproved,
		ReservationDate: &stored,
	}}
	svc, renderer := newTestService(t, dealStore, &stubUnitStore{}, resvStore)

	_, err := svc.ReservationForm(context.Background(), testUser, ReservationFormRequest{
		DealID:              42,
		Language:            "en",
		ReservationFormDate: "15/07/2024", // must lose to the stored date
	})
	require.NoError(t, err)
	require.Contains(t, renderer.doc.HTML, "09/03/2024", "UTC extraction, not local")
	require.Contains(t, renderer.doc.HTML, "Saturday")
}

func TestReservationFormDateFromRecordDetails(t *testing.T) {
	dealStore := &stubDealStore{deals: map[int64]*deals.Deal{42: reservationDeal(true)}}
	resvStore := &stubResvStore{record: &reservations.Record{
		Status: reservations.StatusApproved,
		Details: reservations.RecordDetails{
			ReservationDate: "2024-03-09",
		},
	}}
	svc, renderer := newTestService(t, dealStore, &stubUnitStore{}, resvStore)

	_, err := svc.ReservationForm(context.Background(), testUser, ReservationFormRequest{
		DealID:              42,
		Language:            "en",
		ReservationFormDate: "15/07/2024", // must lose to the details date
	})
	require.NoError(t, err)
	require.Contains(t, renderer.doc.HTML, "09/03/2024")
	require.Contains(t, renderer.doc.HTML, "Saturday")
	require.NotContains(t, renderer.doc.HTML, "15/07/2024")
}

func TestReservationFormDateDefaultsToToday(t *testing.T) {
	dealStore := &stubDealStore{deals: map[int64]*deals.Deal{42: reservationDeal(true)}}
	svc, renderer := newTestService(t, dealStore, &stubUnitStore{}, &stubResvStore{})

	_, err := svc.ReservationForm(context.Background(), testUser, ReservationFormRequest{
		DealID:   42,
		Language: "en",
	})
	require.NoError(t, err)
	// 2024-06-01 22:30 UTC is already 2024-06-02 in Cairo.
	require.Contains(t, renderer.doc.HTML, "02/06/2024")
	require.Contains(t, renderer.doc.HTML, "Sunday")
}

func TestReservationFormSideLookupsDegrade(t *testing.T) {
	dealStore := &stubDealStore{deals: map[int64]*deals.Deal{42: reservationDeal(true)}}
	svc, renderer := newTestService(t, dealStore, &stubUnitStore{}, &stubResvStore{err: errors.New("db down")})

	_, err := svc.ReservationForm(context.Background(), testUser, ReservationFormRequest{DealID: 42, Language: "en"})
	require.NoError(t, err)
	require.Contains(t, renderer.doc.HTML, "B2-14", "snapshot unit code still renders")
}

func TestReservationFormStructuralFields(t *testing.T) {
	area := 142.5
	building := "12"
	zone := "Zone C"
	dealStore := &stubDealStore{deals: map[int64]*deals.Deal{42: reservationDeal(true)}}
	unitStore := &stubUnitStore{structural: &units.Unit{ID: 7, Area: &area, BuildingNumber: &building, Zone: &zone}}
	svc, renderer := newTestService(t, dealStore, unitStore, &stubResvStore{})

	_, err := svc.ReservationForm(context.Background(), testUser, ReservationFormRequest{DealID: 42, Language: "ar"})
	require.NoError(t, err)
	require.Contains(t, renderer.doc.HTML, "142.5 م²")
	require.Contains(t, renderer.doc.HTML, "Zone C")
}
