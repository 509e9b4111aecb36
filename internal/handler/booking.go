package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/Shivanand-hulikatti/resort-backoffice/internal/conflict"
	"github.com/Shivanand-hulikatti/resort-backoffice/internal/model"
)

// BookingService covers regular bookings, package bookings and the
// double-booking audit.
type BookingService interface {
	Create(ctx context.Context, req model.CreateBookingRequest) (*model.Booking, error)
	CreatePackage(ctx context.Context, req model.CreateBookingRequest) (*model.PackageBooking, error)
	List(ctx context.Context, skip, limit int) ([]model.Booking, error)
	ListPackage(ctx context.Context, skip, limit int) ([]model.PackageBooking, error)
	Get(ctx context.Context, id int64) (*model.Booking, error)
	GetPackage(ctx context.Context, id int64) (*model.PackageBooking, error)
	UpdateStatus(ctx context.Context, id int64, req model.UpdateStatusRequest) error
	UpdatePackageStatus(ctx context.Context, id int64, req model.UpdateStatusRequest) error
	Conflicts(ctx context.Context) ([]conflict.Conflict, error)
}

// BookingHandler serves /bookings and /package-bookings.
type BookingHandler struct {
	svc BookingService
	log *slog.Logger
}

// NewBookingHandler constructs a BookingHandler.
func NewBookingHandler(svc BookingService, log *slog.Logger) *BookingHandler {
	return &BookingHandler{svc: svc, log: log}
}

// ConflictsResponse is the body of GET /bookings/conflicts.
type ConflictsResponse struct {
	Count     int                 `json:"count"`
	Conflicts []conflict.Conflict `json:"conflicts"`
}

// Create handles POST /bookings
func (h *BookingHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req model.CreateBookingRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	b, err := h.svc.Create(r.Context(), req)
	if err != nil {
		respondError(w, r, h.log, err, "failed to create booking")
		return
	}
	writeJSON(w, http.StatusCreated, b)
}

// CreatePackage handles POST /package-bookings
func (h *BookingHandler) CreatePackage(w http.ResponseWriter, r *http.Request) {
	var req model.CreateBookingRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	p, err := h.svc.CreatePackage(r.Context(), req)
	if err != nil {
		respondError(w, r, h.log, err, "failed to create package booking")
		return
	}
	writeJSON(w, http.StatusCreated, p)
}

// List handles GET /bookings
func (h *BookingHandler) List(w http.ResponseWriter, r *http.Request) {
	skip, limit := pageParams(r)
	bookings, err := h.svc.List(r.Context(), skip, limit)
	if err != nil {
		respondError(w, r, h.log, err, "failed to list bookings")
		return
	}
	writeJSON(w, http.StatusOK, orEmpty(bookings))
}

// ListPackage handles GET /package-bookings
func (h *BookingHandler) ListPackage(w http.ResponseWriter, r *http.Request) {
	skip, limit := pageParams(r)
	bookings, err := h.svc.ListPackage(r.Context(), skip, limit)
	if err != nil {
		respondError(w, r, h.log, err, "failed to list package bookings")
		return
	}
	writeJSON(w, http.StatusOK, orEmpty(bookings))
}

// Get handles GET /bookings/{id}
func (h *BookingHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(r)
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid booking id")
		return
	}
	b, err := h.svc.Get(r.Context(), id)
	if err != nil {
		respondError(w, r, h.log, err, "failed to get booking")
		return
	}
	writeJSON(w, http.StatusOK, b)
}

// GetPackage handles GET /package-bookings/{id}
func (h *BookingHandler) GetPackage(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(r)
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid booking id")
		return
	}
	p, err := h.svc.GetPackage(r.Context(), id)
	if err != nil {
		respondError(w, r, h.log, err, "failed to get package booking")
		return
	}
	writeJSON(w, http.StatusOK, p)
}

// UpdateStatus handles PATCH /bookings/{id}/status
func (h *BookingHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	h.updateStatus(w, r, h.svc.UpdateStatus)
}

// UpdatePackageStatus handles PATCH /package-bookings/{id}/status
func (h *BookingHandler) UpdatePackageStatus(w http.ResponseWriter, r *http.Request) {
	h.updateStatus(w, r, h.svc.UpdatePackageStatus)
}

func (h *BookingHandler) updateStatus(w http.ResponseWriter, r *http.Request, update func(context.Context, int64, model.UpdateStatusRequest) error) {
	id, ok := idParam(r)
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid booking id")
		return
	}
	var req model.UpdateStatusRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}
	if err := update(r.Context(), id, req); err != nil {
		respondError(w, r, h.log, err, "failed to update booking status")
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "status updated"})
}

// Conflicts handles GET /bookings/conflicts
// Runs the double-booking audit and returns every conflicting pair.
func (h *BookingHandler) Conflicts(w http.ResponseWriter, r *http.Request) {
	conflicts, err := h.svc.Conflicts(r.Context())
	if err != nil {
		respondError(w, r, h.log, err, "failed to check booking conflicts")
		return
	}
	writeJSON(w, http.StatusOK, ConflictsResponse{Count: len(conflicts), Conflicts: orEmpty(conflicts)})
}
