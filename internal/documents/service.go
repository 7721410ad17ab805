// Package documents composes the bilingual Client Offer and Reservation
// Form PDFs. The service runs the request-scoped pipeline: locale and
// clock, consultant identity, snapshot hydration, pricing resolution,
// financials, then HTML assembly and rendering.
package documents

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"html/template"
	"log/slog"
	"regexp"
	"strings"
	"time"

	"github.com/uptown-october/uptown-docs/internal/auth"
	"github.com/uptown-october/uptown-docs/internal/deals"
	"github.com/uptown-october/uptown-docs/internal/financials"
	"github.com/uptown-october/uptown-docs/internal/identity"
	"github.com/uptown-october/uptown-docs/internal/locale"
	"github.com/uptown-october/uptown-docs/internal/money"
	"github.com/uptown-october/uptown-docs/internal/platform/httpx"
	"github.com/uptown-october/uptown-docs/internal/pricing"
	"github.com/uptown-october/uptown-docs/internal/reservations"
	"github.com/uptown-october/uptown-docs/internal/units"
	"github.com/uptown-october/uptown-docs/report"
	"github.com/uptown-october/uptown-docs/web"
)

// ReservationFormRequest is the caller's Reservation Form payload.
type ReservationFormRequest struct {
	DealID                   int64         `json:"deal_id" validate:"required,gt=0"`
	ReservationFormDate      string        `json:"reservation_form_date"`
	PreliminaryPaymentAmount *money.Amount `json:"preliminary_payment_amount"`
	CurrencyOverride         string        `json:"currency_override"`
	Language                 string        `json:"language"`
}

// Result is one generated document.
type Result struct {
	PDF      []byte
	Filename string
	Language locale.Lang
}

// Deps wires the pipeline collaborators.
type Deps struct {
	Clock      *locale.Clock
	Deals      deals.Store
	Units      units.Store
	Resv       reservations.Store
	Gate       *reservations.Gate
	Pricing    *pricing.Resolver
	Identities *identity.Resolver
	Speller    locale.NumberSpeller
	Renderer   report.Renderer
	Logger     *slog.Logger
}

// Service orchestrates document generation.
type Service struct {
	clock      *locale.Clock
	hydrator   *deals.Hydrator
	deals      deals.Store
	units      units.Store
	resv       reservations.Store
	gate       *reservations.Gate
	pricing    *pricing.Resolver
	identities *identity.Resolver
	speller    locale.NumberSpeller
	renderer   report.Renderer
	logger     *slog.Logger
	tpl        *template.Template
}

// NewService parses the document templates and wires the pipeline.
func NewService(d Deps) (*Service, error) {
	if d.Renderer == nil {
		return nil, fmt.Errorf("documents: renderer required")
	}
	if d.Clock == nil {
		d.Clock = locale.NewClock()
	}
	if d.Speller == nil {
		d.Speller = locale.Speller{}
	}
	if d.Logger == nil {
		d.Logger = slog.Default()
	}
	tpl, err := template.New("documents").ParseFS(web.Templates, "templates/documents/*.html")
	if err != nil {
		return nil, fmt.Errorf("documents: parse templates: %w", err)
	}
	return &Service{
		clock:      d.Clock,
		hydrator:   deals.NewHydrator(d.Deals),
		deals:      d.Deals,
		units:      d.Units,
		resv:       d.Resv,
		gate:       d.Gate,
		pricing:    d.Pricing,
		identities: d.Identities,
		speller:    d.Speller,
		renderer:   d.Renderer,
		logger:     d.Logger,
		tpl:        tpl,
	}, nil
}

// ClientOffer generates the Client Offer PDF. Omitted payload fields are
// hydrated from the deal snapshot when a deal id is supplied.
func (s *Service) ClientOffer(ctx context.Context, user auth.User, payload deals.OfferPayload) (*Result, error) {
	if err := s.hydrator.Hydrate(ctx, &payload, s.clock.TodayISO()); err != nil {
		if errors.Is(err, deals.ErrNotFound) {
			return nil, httpx.Wrap(httpx.ErrNotFound, "deal not found")
		}
		return nil, fmt.Errorf("documents: hydrate deal %d: %w", payload.DealID, err)
	}

	lang := locale.Resolve(payload.Language)
	consultant := s.identities.Resolve(ctx, user, payload.DealID)

	var unitID int64
	if payload.Unit != nil {
		unitID = payload.Unit.ID.Int64()
	}
	breakdown, source := s.pricing.ResolveOffer(ctx, payload.Breakdown, unitID)

	b := newViewBuilder(lang, payload.Currency, s.clock, s.speller)
	view := offerView{
		Lang:         string(lang),
		Dir:          lang.Dir(),
		RTL:          lang.IsRTL(),
		T:            b.t,
		GeneratedAt:  s.clock.Stamp(),
		OfferDate:    s.clock.FormatDate(payload.OfferDate),
		FirstPayment: s.clock.FormatDate(payload.FirstPaymentDate),
		UnitLine:     unitLine(payload.Unit),
		Consultant:   consultantLine(consultant),
		Summary:      b.summaryRows(breakdown),
		Buyers:       b.buyerCards(payload.Buyers),
		Schedule:     b.scheduleRows(payload.Schedule),
	}

	pdf, err := s.render(ctx, "client_offer", view)
	if err != nil {
		return nil, err
	}
	s.logger.Info("client offer generated",
		slog.Int64("deal_id", payload.DealID),
		slog.String("language", string(lang)),
		slog.String("pricing_source", string(source)),
		slog.Int("bytes", len(pdf)))
	return &Result{PDF: pdf, Filename: s.filename("client_offer"), Language: lang}, nil
}

// ReservationForm generates the Reservation Form PDF. The deal must exist
// and pass the approval gate; everything else degrades gracefully.
func (s *Service) ReservationForm(ctx context.Context, user auth.User, req ReservationFormRequest) (*Result, error) {
	if req.DealID <= 0 {
		return nil, httpx.Wrap(httpx.ErrBadInput, "deal_id must be a positive number")
	}
	deal, err := s.deals.Get(ctx, req.DealID)
	if err != nil {
		if errors.Is(err, deals.ErrNotFound) {
			return nil, httpx.Wrap(httpx.ErrNotFound, "deal not found")
		}
		return nil, fmt.Errorf("documents: load deal %d: %w", req.DealID, err)
	}
	if err := s.gate.Allow(ctx, deal); err != nil {
		return nil, httpx.Wrap(httpx.ErrForbidden, err.Error())
	}

	snap := deal.Details.Calculator
	lang := locale.Resolve(firstNonEmpty(req.Language, snapshotLanguage(snap)))
	currency := firstNonEmpty(req.CurrencyOverride, snapshotCurrency(snap))

	structural := s.loadStructural(ctx, snap)

	var snapBreakdown *pricing.Breakdown
	var plan *deals.GeneratedPlan
	if snap != nil {
		snapBreakdown = snap.UnitPricingBreakdown
		plan = snap.GeneratedPlan
	}
	breakdown, _ := pricing.ResolveReservation(snapBreakdown)

	record, err := s.resv.ApprovedForDeal(ctx, deal.ID)
	if err != nil {
		s.logger.Warn("approved reservation lookup failed",
			slog.Int64("deal_id", deal.ID), slog.Any("error", err))
		record = nil
	}

	fin := financials.Calculate(financials.Inputs{
		Breakdown:         breakdown,
		Plan:              plan,
		Reservation:       record,
		CallerPreliminary: req.PreliminaryPaymentAmount,
	})

	display, day := s.resolveReservationDate(record, req.ReservationFormDate)

	b := newViewBuilder(lang, currency, s.clock, s.speller)
	view := reservationView{
		Lang:            string(lang),
		Dir:             lang.Dir(),
		RTL:             lang.IsRTL(),
		T:               b.t,
		GeneratedAt:     s.clock.Stamp(),
		Intro:           b.intro(day, display),
		ReservationDate: display,
		Buyers:          b.buyerCards(snapshotBuyers(snap)),
		UnitRows:        b.unitRows(snap, structural),
		FinanceRows:     b.financeRows(fin),
		ArabicFinance:   b.arabicFinanceLines(fin),
	}

	pdf, err := s.render(ctx, "reservation_form", view)
	if err != nil {
		return nil, err
	}
	s.logger.Info("reservation form generated",
		slog.Int64("deal_id", deal.ID),
		slog.String("language", string(lang)),
		slog.Bool("dp_locked", fin.DP.Locked),
		slog.Int("bytes", len(pdf)))
	return &Result{PDF: pdf, Filename: s.filename("reservation_form"), Language: lang}, nil
}

// loadStructural fetches the informational unit fields. Failures degrade
// the unit block rather than failing the request.
func (s *Service) loadStructural(ctx context.Context, snap *deals.CalculatorSnapshot) *units.Unit {
	if snap == nil || snap.UnitInfo == nil {
		return nil
	}
	id := snap.UnitInfo.UnitID.Int64()
	if id <= 0 {
		return nil
	}
	unit, err := s.units.Structural(ctx, id)
	if err != nil {
		if !errors.Is(err, units.ErrNotFound) {
			s.logger.Warn("unit metadata lookup failed",
				slog.Int64("unit_id", id), slog.Any("error", err))
		}
		return nil
	}
	return unit
}

var slashDatePattern = regexp.MustCompile(`^\d{2}/\d{2}/\d{4}$`)

const slashDateLayout = "02/01/2006"

// resolveReservationDate applies the four-tier fallback: the approved
// record's stored date (UTC), a caller date already in DD/MM/YYYY form
// (used literally), a caller date parsed generally (UTC extraction), then
// today's local date. The stored date follows the column-over-details
// tie-break: the column wins when non-null, else the details value. The
// returned instant drives the weekday name.
func (s *Service) resolveReservationDate(record *reservations.Record, caller string) (string, time.Time) {
	if record.IsApproved() {
		if record.ReservationDate != nil {
			t := record.ReservationDate.UTC()
			return locale.SlashDateUTC(t), t
		}
		if display := locale.ParseSlashDateUTC(record.Details.ReservationDate); display != "" {
			t, _ := time.Parse(slashDateLayout, display)
			return display, t
		}
	}
	c := strings.TrimSpace(caller)
	if slashDatePattern.MatchString(c) {
		if t, err := time.Parse(slashDateLayout, c); err == nil {
			return c, t
		}
		return c, s.clock.Now().UTC()
	}
	if display := locale.ParseSlashDateUTC(c); display != "" {
		t, _ := time.Parse(slashDateLayout, display)
		return display, t
	}
	now := s.clock.Now()
	return now.Format(slashDateLayout), now
}

// render executes the body, header, and footer templates for the document
// kind and hands the fragments to the renderer.
func (s *Service) render(ctx context.Context, kind string, view any) ([]byte, error) {
	html, err := s.execute(kind+".html", view)
	if err != nil {
		return nil, err
	}
	header, err := s.execute(kind+"_header.html", view)
	if err != nil {
		return nil, err
	}
	footer, err := s.execute(kind+"_footer.html", view)
	if err != nil {
		return nil, err
	}
	pdf, err := s.renderer.RenderDocument(ctx, report.Document{
		HTML:       html,
		HeaderHTML: header,
		FooterHTML: footer,
		Page:       report.A4Portrait(),
	})
	if err != nil {
		return nil, fmt.Errorf("documents: render %s: %w", kind, err)
	}
	return pdf, nil
}

func (s *Service) execute(name string, view any) (string, error) {
	buf := &bytes.Buffer{}
	if err := s.tpl.ExecuteTemplate(buf, name, view); err != nil {
		return "", fmt.Errorf("documents: execute %s: %w", name, err)
	}
	return buf.String(), nil
}

var filenameSanitizer = strings.NewReplacer(":", "-", ".", "-")

// filename builds `<kind>_<timestamp>.pdf` with the RFC 3339 separators
// replaced so the name survives every filesystem.
func (s *Service) filename(kind string) string {
	return kind + "_" + filenameSanitizer.Replace(s.clock.Now().UTC().Format(time.RFC3339)) + ".pdf"
}

func snapshotLanguage(snap *deals.CalculatorSnapshot) string {
	if snap == nil {
		return ""
	}
	return snap.Language
}

func snapshotCurrency(snap *deals.CalculatorSnapshot) string {
	if snap == nil {
		return ""
	}
	return snap.Currency
}

func snapshotBuyers(snap *deals.CalculatorSnapshot) []deals.Buyer {
	if snap == nil {
		return nil
	}
	return snap.Buyers()
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return v
		}
	}
	return ""
}
