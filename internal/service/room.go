package service

import (
	"context"
	"strings"

	"github.com/Shivanand-hulikatti/resort-backoffice/internal/model"
)

// RoomStore persists rooms.
type RoomStore interface {
	Create(ctx context.Context, room *model.Room) error
	List(ctx context.Context, skip, limit int) ([]model.Room, error)
	GetByID(ctx context.Context, id int64) (*model.Room, error)
	Delete(ctx context.Context, id int64) error
	Exists(ctx context.Context, id int64) (bool, error)
}

// RoomService orchestrates room catalogue operations.
type RoomService struct {
	rooms    RoomStore
	validate *Validator
}

// NewRoomService constructs a RoomService.
func NewRoomService(rooms RoomStore, v *Validator) *RoomService {
	return &RoomService{rooms: rooms, validate: v}
}

// Create validates the request and adds a room. New rooms default to
// "available".
func (s *RoomService) Create(ctx context.Context, req model.CreateRoomRequest) (*model.Room, error) {
	req.Number = strings.TrimSpace(req.Number)
	req.Type = strings.TrimSpace(req.Type)
	if err := s.validate.Struct(req); err != nil {
		return nil, err
	}
	room := &model.Room{
		Number: req.Number,
		Type:   req.Type,
		Price:  req.Price,
		Status: req.Status,
	}
	if room.Status == "" {
		room.Status = "available"
	}
	if err := s.rooms.Create(ctx, room); err != nil {
		return nil, err
	}
	return room, nil
}

// List returns a page of rooms.
func (s *RoomService) List(ctx context.Context, skip, limit int) ([]model.Room, error) {
	skip, limit = Page(skip, limit, defaultLimit)
	return s.rooms.List(ctx, skip, limit)
}

// Get returns a single room.
func (s *RoomService) Get(ctx context.Context, id int64) (*model.Room, error) {
	return s.rooms.GetByID(ctx, id)
}

// Delete removes a room from the catalogue. Existing bookings keep their
// reference and are reported with a synthetic label by the conflict audit.
func (s *RoomService) Delete(ctx context.Context, id int64) error {
	return s.rooms.Delete(ctx, id)
}

// requireRoom returns a ReferenceError when id is not in the catalogue.
func requireRoom(ctx context.Context, rooms RoomStore, id int64) error {
	ok, err := rooms.Exists(ctx, id)
	if err != nil {
		return err
	}
	if !ok {
		return &ReferenceError{Resource: "Room", ID: id}
	}
	return nil
}
