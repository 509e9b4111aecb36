package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/Shivanand-hulikatti/resort-backoffice/internal/model"
)

// AmenityStore persists services and their assignments.
type AmenityStore interface {
	CreateService(ctx context.Context, s *model.Service) error
	ListServices(ctx context.Context, skip, limit int) ([]model.Service, error)
	ServiceExists(ctx context.Context, id int64) (bool, error)
	DeleteService(ctx context.Context, id int64) error

	Assign(ctx context.Context, a *model.AssignedService) error
	ListAssigned(ctx context.Context, skip, limit int) ([]model.AssignedService, error)
	UpdateAssignedStatus(ctx context.Context, id int64, status string) error
	DeleteAssigned(ctx context.Context, id int64) error
}

// AmenityService orchestrates chargeable services and who delivers them.
type AmenityService struct {
	amenities AmenityStore
	rooms     RoomStore
	lookup    LookupStore
	validate  *Validator
}

// NewAmenityService constructs an AmenityService.
func NewAmenityService(amenities AmenityStore, rooms RoomStore, lookup LookupStore, v *Validator) *AmenityService {
	return &AmenityService{amenities: amenities, rooms: rooms, lookup: lookup, validate: v}
}

// CreateService adds a service with optional images.
func (s *AmenityService) CreateService(ctx context.Context, req model.CreateServiceRequest) (*model.Service, error) {
	req.Name = strings.TrimSpace(req.Name)
	if err := s.validate.Struct(req); err != nil {
		return nil, err
	}
	svc := &model.Service{
		Name:        req.Name,
		Description: req.Description,
		Charges:     req.Charges,
		ImageURLs:   req.ImageURLs,
	}
	if svc.ImageURLs == nil {
		svc.ImageURLs = []string{}
	}
	if err := s.amenities.CreateService(ctx, svc); err != nil {
		return nil, fmt.Errorf("create service: %w", err)
	}
	return svc, nil
}

// ListServices returns a page of services.
func (s *AmenityService) ListServices(ctx context.Context, skip, limit int) ([]model.Service, error) {
	skip, limit = Page(skip, limit, defaultLimit)
	return s.amenities.ListServices(ctx, skip, limit)
}

// DeleteService removes a service.
func (s *AmenityService) DeleteService(ctx context.Context, id int64) error {
	return s.amenities.DeleteService(ctx, id)
}

// Assign records that an employee will deliver a service to a room.
func (s *AmenityService) Assign(ctx context.Context, req model.AssignServiceRequest) (*model.AssignedService, error) {
	if err := s.validate.Struct(req); err != nil {
		return nil, err
	}
	ok, err := s.amenities.ServiceExists(ctx, req.ServiceID)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, &ReferenceError{Resource: "Service", ID: req.ServiceID}
	}
	if _, err := requireEmployee(ctx, s.lookup, req.EmployeeID); err != nil {
		return nil, err
	}
	if err := requireRoom(ctx, s.rooms, req.RoomID); err != nil {
		return nil, err
	}

	a := &model.AssignedService{
		ServiceID:  req.ServiceID,
		EmployeeID: req.EmployeeID,
		RoomID:     req.RoomID,
		Status:     req.Status,
	}
	if a.Status == "" {
		a.Status = "pending"
	}
	if err := s.amenities.Assign(ctx, a); err != nil {
		return nil, fmt.Errorf("assign service: %w", err)
	}
	return a, nil
}

// ListAssigned returns a page of assignments, newest first.
func (s *AmenityService) ListAssigned(ctx context.Context, skip, limit int) ([]model.AssignedService, error) {
	skip, limit = Page(skip, limit, defaultLimit)
	return s.amenities.ListAssigned(ctx, skip, limit)
}

// UpdateAssignedStatus moves an assignment along pending → in_progress → completed.
func (s *AmenityService) UpdateAssignedStatus(ctx context.Context, id int64, req model.UpdateStatusRequest) error {
	switch req.Status {
	case "pending", "in_progress", "completed":
	default:
		return ValidationErrors{{Field: "status", Message: "must be one of: pending in_progress completed"}}
	}
	return s.amenities.UpdateAssignedStatus(ctx, id, req.Status)
}

// DeleteAssigned removes an assignment.
func (s *AmenityService) DeleteAssigned(ctx context.Context, id int64) error {
	return s.amenities.DeleteAssigned(ctx, id)
}
