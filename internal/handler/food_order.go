package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/Shivanand-hulikatti/resort-backoffice/internal/model"
)

// FoodOrderService covers room-service orders.
type FoodOrderService interface {
	Create(ctx context.Context, req model.CreateFoodOrderRequest) (*model.FoodOrder, error)
	List(ctx context.Context, skip, limit int) ([]model.FoodOrder, error)
	Update(ctx context.Context, id int64, req model.UpdateFoodOrderRequest) (*model.FoodOrder, error)
	UpdateStatus(ctx context.Context, id int64, req model.UpdateStatusRequest) error
	Delete(ctx context.Context, id int64) error
}

// FoodOrderHandler serves /food-orders.
type FoodOrderHandler struct {
	svc FoodOrderService
	log *slog.Logger
}

// NewFoodOrderHandler constructs a FoodOrderHandler.
func NewFoodOrderHandler(svc FoodOrderService, log *slog.Logger) *FoodOrderHandler {
	return &FoodOrderHandler{svc: svc, log: log}
}

// Create handles POST /food-orders
func (h *FoodOrderHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req model.CreateFoodOrderRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}
	o, err := h.svc.Create(r.Context(), req)
	if err != nil {
		respondError(w, r, h.log, err, "failed to create food order")
		return
	}
	writeJSON(w, http.StatusCreated, o)
}

// List handles GET /food-orders
func (h *FoodOrderHandler) List(w http.ResponseWriter, r *http.Request) {
	skip, limit := pageParams(r)
	orders, err := h.svc.List(r.Context(), skip, limit)
	if err != nil {
		respondError(w, r, h.log, err, "failed to list food orders")
		return
	}
	writeJSON(w, http.StatusOK, orEmpty(orders))
}

// Update handles PUT /food-orders/{id}
func (h *FoodOrderHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(r)
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid food order id")
		return
	}
	var req model.UpdateFoodOrderRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}
	o, err := h.svc.Update(r.Context(), id, req)
	if err != nil {
		respondError(w, r, h.log, err, "failed to update food order")
		return
	}
	writeJSON(w, http.StatusOK, o)
}

// UpdateStatus handles PATCH /food-orders/{id}/status
func (h *FoodOrderHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(r)
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid food order id")
		return
	}
	var req model.UpdateStatusRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}
	if err := h.svc.UpdateStatus(r.Context(), id, req); err != nil {
		respondError(w, r, h.log, err, "failed to update food order status")
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "status updated"})
}

// Delete handles DELETE /food-orders/{id}
func (h *FoodOrderHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(r)
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid food order id")
		return
	}
	if err := h.svc.Delete(r.Context(), id); err != nil {
		respondError(w, r, h.log, err, "failed to delete food order")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
