package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/Shivanand-hulikatti/resort-backoffice/internal/model"
)

// AmenityService covers chargeable services and their assignments.
type AmenityService interface {
	CreateService(ctx context.Context, req model.CreateServiceRequest) (*model.Service, error)
	ListServices(ctx context.Context, skip, limit int) ([]model.Service, error)
	DeleteService(ctx context.Context, id int64) error
	Assign(ctx context.Context, req model.AssignServiceRequest) (*model.AssignedService, error)
	ListAssigned(ctx context.Context, skip, limit int) ([]model.AssignedService, error)
	UpdateAssignedStatus(ctx context.Context, id int64, req model.UpdateStatusRequest) error
	DeleteAssigned(ctx context.Context, id int64) error
}

// AmenityHandler serves /services.
type AmenityHandler struct {
	svc AmenityService
	log *slog.Logger
}

// NewAmenityHandler constructs an AmenityHandler.
func NewAmenityHandler(svc AmenityService, log *slog.Logger) *AmenityHandler {
	return &AmenityHandler{svc: svc, log: log}
}

// CreateService handles POST /services
func (h *AmenityHandler) CreateService(w http.ResponseWriter, r *http.Request) {
	var req model.CreateServiceRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}
	s, err := h.svc.CreateService(r.Context(), req)
	if err != nil {
		respondError(w, r, h.log, err, "failed to create service")
		return
	}
	writeJSON(w, http.StatusCreated, s)
}

// ListServices handles GET /services
func (h *AmenityHandler) ListServices(w http.ResponseWriter, r *http.Request) {
	skip, limit := pageParams(r)
	services, err := h.svc.ListServices(r.Context(), skip, limit)
	if err != nil {
		respondError(w, r, h.log, err, "failed to list services")
		return
	}
	writeJSON(w, http.StatusOK, orEmpty(services))
}

// DeleteService handles DELETE /services/{id}
func (h *AmenityHandler) DeleteService(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(r)
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid service id")
		return
	}
	if err := h.svc.DeleteService(r.Context(), id); err != nil {
		respondError(w, r, h.log, err, "failed to delete service")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// Assign handles POST /services/assigned
func (h *AmenityHandler) Assign(w http.ResponseWriter, r *http.Request) {
	var req model.AssignServiceRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}
	a, err := h.svc.Assign(r.Context(), req)
	if err != nil {
		respondError(w, r, h.log, err, "failed to assign service")
		return
	}
	writeJSON(w, http.StatusCreated, a)
}

// ListAssigned handles GET /services/assigned
func (h *AmenityHandler) ListAssigned(w http.ResponseWriter, r *http.Request) {
	skip, limit := pageParams(r)
	assigned, err := h.svc.ListAssigned(r.Context(), skip, limit)
	if err != nil {
		respondError(w, r, h.log, err, "failed to list assigned services")
		return
	}
	writeJSON(w, http.StatusOK, orEmpty(assigned))
}

// UpdateAssigned handles PATCH /services/assigned/{id}
func (h *AmenityHandler) UpdateAssigned(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(r)
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid assignment id")
		return
	}
	var req model.UpdateStatusRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}
	if err := h.svc.UpdateAssignedStatus(r.Context(), id, req); err != nil {
		respondError(w, r, h.log, err, "failed to update assigned service")
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "status updated"})
}

// DeleteAssigned handles DELETE /services/assigned/{id}
func (h *AmenityHandler) DeleteAssigned(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(r)
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid assignment id")
		return
	}
	if err := h.svc.DeleteAssigned(r.Context(), id); err != nil {
		respondError(w, r, h.log, err, "failed to delete assigned service")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
