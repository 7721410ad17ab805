// Package documentshttp exposes the document generation endpoints.
package documentshttp

import (
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/uptown-october/uptown-docs/internal/auth"
	"github.com/uptown-october/uptown-docs/internal/deals"
	"github.com/uptown-october/uptown-docs/internal/documents"
	"github.com/uptown-october/uptown-docs/internal/observability"
	"github.com/uptown-october/uptown-docs/internal/platform/httpx"
)

// Handler serves the Client Offer and Reservation Form endpoints.
type Handler struct {
	logger   *slog.Logger
	service  *documents.Service
	metrics  *observability.Metrics
	validate *validator.Validate
}

// NewHandler constructs the document handler.
func NewHandler(logger *slog.Logger, service *documents.Service, metrics *observability.Metrics) *Handler {
	if logger == nil {
		logger = slog.Default()
	}
	return &Handler{
		logger:   logger,
		service:  service,
		metrics:  metrics,
		validate: validator.New(),
	}
}

// MountRoutes registers the document routes. Role gates come from the auth
// middleware: consultants generate offers, the finance and contract side
// generates reservation forms.
func (h *Handler) MountRoutes(r chi.Router, am auth.Middleware) {
	r.Route("/documents", func(r chi.Router) {
		r.With(am.RequireRole(auth.ConsultantRoles()...)).
			Post("/client-offer", h.handleClientOffer)
		r.With(am.RequireRole(auth.ReservationRoles()...)).
			Post("/reservation-form", h.handleReservationForm)
	})
}

func (h *Handler) handleClientOffer(w http.ResponseWriter, r *http.Request) {
	user := auth.UserFromContext(r.Context())
	if user == nil {
		httpx.Error(w, http.StatusUnauthorized, "authentication required", "")
		return
	}

	var payload deals.OfferPayload
	if err := httpx.DecodeJSON(r, &payload); err != nil {
		httpx.Error(w, http.StatusBadRequest, "invalid request body", "")
		return
	}

	start := time.Now()
	result, err := h.service.ClientOffer(r.Context(), *user, payload)
	if err != nil {
		h.logger.Error("client offer failed",
			slog.Int64("deal_id", payload.DealID), slog.Any("error", err))
		httpx.RespondError(w, err, "Failed to generate Client Offer PDF")
		return
	}
	h.metrics.ObserveDocument("client_offer", string(result.Language), time.Since(start))
	writePDF(w, result)
}

func (h *Handler) handleReservationForm(w http.ResponseWriter, r *http.Request) {
	user := auth.UserFromContext(r.Context())
	if user == nil {
		httpx.Error(w, http.StatusUnauthorized, "authentication required", "")
		return
	}

	var req documents.ReservationFormRequest
	if err := httpx.DecodeJSON(r, &req); err != nil {
		httpx.Error(w, http.StatusBadRequest, "invalid request body", "")
		return
	}
	if err := h.validate.Struct(req); err != nil {
		httpx.Error(w, http.StatusBadRequest, "deal_id must be a positive number", "")
		return
	}

	start := time.Now()
	result, err := h.service.ReservationForm(r.Context(), *user, req)
	if err != nil {
		h.logger.Error("reservation form failed",
			slog.Int64("deal_id", req.DealID), slog.Any("error", err))
		httpx.RespondError(w, err, "Failed to generate Reservation Form PDF")
		return
	}
	h.metrics.ObserveDocument("reservation_form", string(result.Language), time.Since(start))
	writePDF(w, result)
}

func writePDF(w http.ResponseWriter, result *documents.Result) {
	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", result.Filename))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(result.PDF)
}
