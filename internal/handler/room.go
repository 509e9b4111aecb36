package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/Shivanand-hulikatti/resort-backoffice/internal/model"
)

// RoomService is the room catalogue as seen by the HTTP layer.
type RoomService interface {
	Create(ctx context.Context, req model.CreateRoomRequest) (*model.Room, error)
	List(ctx context.Context, skip, limit int) ([]model.Room, error)
	Get(ctx context.Context, id int64) (*model.Room, error)
	Delete(ctx context.Context, id int64) error
}

// RoomHandler serves /rooms.
type RoomHandler struct {
	svc RoomService
	log *slog.Logger
}

// NewRoomHandler constructs a RoomHandler.
func NewRoomHandler(svc RoomService, log *slog.Logger) *RoomHandler {
	return &RoomHandler{svc: svc, log: log}
}

// Create handles POST /rooms
func (h *RoomHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req model.CreateRoomRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		return
	}

	room, err := h.svc.Create(r.Context(), req)
	if err != nil {
		respondError(w, r, h.log, err, "failed to create room")
		return
	}

	writeJSON(w, http.StatusCreated, room)
}

// List handles GET /rooms
func (h *RoomHandler) List(w http.ResponseWriter, r *http.Request) {
	skip, limit := pageParams(r)
	rooms, err := h.svc.List(r.Context(), skip, limit)
	if err != nil {
		respondError(w, r, h.log, err, "failed to list rooms")
		return
	}
	writeJSON(w, http.StatusOK, orEmpty(rooms))
}

// Get handles GET /rooms/{id}
func (h *RoomHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(r)
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid room id")
		return
	}

	room, err := h.svc.Get(r.Context(), id)
	if err != nil {
		respondError(w, r, h.log, err, "failed to get room")
		return
	}
	writeJSON(w, http.StatusOK, room)
}

// Delete handles DELETE /rooms/{id}
func (h *RoomHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(r)
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid room id")
		return
	}

	if err := h.svc.Delete(r.Context(), id); err != nil {
		respondError(w, r, h.log, err, "failed to delete room")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
