package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/Shivanand-hulikatti/resort-backoffice/internal/model"
	"github.com/Shivanand-hulikatti/resort-backoffice/internal/repository"
)

// FoodOrderStore persists room-service orders.
type FoodOrderStore interface {
	Create(ctx context.Context, o *model.FoodOrder) error
	List(ctx context.Context, skip, limit int) ([]model.FoodOrder, error)
	GetByID(ctx context.Context, id int64) (*model.FoodOrder, error)
	Update(ctx context.Context, o *model.FoodOrder, replaceItems bool) error
	UpdateStatus(ctx context.Context, id int64, status string) error
	Delete(ctx context.Context, id int64) error
}

// LookupStore reads employees and food items.
type LookupStore interface {
	Employee(ctx context.Context, id int64) (*model.Employee, error)
	FoodItemExists(ctx context.Context, id int64) (bool, error)
}

// FoodOrderService orchestrates room-service orders.
type FoodOrderService struct {
	orders   FoodOrderStore
	rooms    RoomStore
	lookup   LookupStore
	bookings BookingStore
	validate *Validator
}

// NewFoodOrderService constructs a FoodOrderService.
func NewFoodOrderService(orders FoodOrderStore, rooms RoomStore, lookup LookupStore, bookings BookingStore, v *Validator) *FoodOrderService {
	return &FoodOrderService{orders: orders, rooms: rooms, lookup: lookup, bookings: bookings, validate: v}
}

// requireEmployee returns the employee or a ReferenceError.
func requireEmployee(ctx context.Context, lookup LookupStore, id int64) (*model.Employee, error) {
	e, err := lookup.Employee(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, &ReferenceError{Resource: "Employee", ID: id}
	}
	return e, err
}

func (s *FoodOrderService) requireItems(ctx context.Context, items []model.FoodOrderItemRequest) ([]model.FoodOrderItem, error) {
	out := make([]model.FoodOrderItem, 0, len(items))
	for _, it := range items {
		ok, err := s.lookup.FoodItemExists(ctx, it.FoodItemID)
		if err != nil {
			return nil, err
		}
		if !ok {
			return nil, &ReferenceError{Resource: "Food item", ID: it.FoodItemID}
		}
		out = append(out, model.FoodOrderItem{FoodItemID: it.FoodItemID, Quantity: it.Quantity})
	}
	return out, nil
}

// Create validates every reference and stores a new active order.
func (s *FoodOrderService) Create(ctx context.Context, req model.CreateFoodOrderRequest) (*model.FoodOrder, error) {
	if err := s.validate.Struct(req); err != nil {
		return nil, err
	}
	if err := requireRoom(ctx, s.rooms, req.RoomID); err != nil {
		return nil, err
	}
	if _, err := requireEmployee(ctx, s.lookup, req.AssignedEmployeeID); err != nil {
		return nil, err
	}
	items, err := s.requireItems(ctx, req.Items)
	if err != nil {
		return nil, err
	}

	order := &model.FoodOrder{
		RoomID:             req.RoomID,
		Amount:             req.Amount,
		AssignedEmployeeID: req.AssignedEmployeeID,
		Status:             "active",
		BillingStatus:      req.BillingStatus,
		Items:              items,
	}
	if order.BillingStatus == "" {
		order.BillingStatus = "unbilled"
	}
	if err := s.orders.Create(ctx, order); err != nil {
		return nil, fmt.Errorf("create food order: %w", err)
	}
	return order, nil
}

// List returns a page of orders, each tagged with the guest currently
// occupying its room when there is one.
func (s *FoodOrderService) List(ctx context.Context, skip, limit int) ([]model.FoodOrder, error) {
	skip, limit = Page(skip, limit, defaultLimit)
	orders, err := s.orders.List(ctx, skip, limit)
	if err != nil {
		return nil, err
	}

	guests := make(map[int64]string)
	for i := range orders {
		roomID := orders[i].RoomID
		if roomID == 0 {
			continue
		}
		guest, seen := guests[roomID]
		if !seen {
			name, ok, err := s.bookings.GuestForRoom(ctx, roomID)
			if err != nil {
				return nil, err
			}
			if ok {
				guest = name
			}
			guests[roomID] = guest
		}
		orders[i].GuestName = guest
	}
	return orders, nil
}

// Update applies the non-nil fields of req. Supplying items replaces all of
// the order's lines.
func (s *FoodOrderService) Update(ctx context.Context, id int64, req model.UpdateFoodOrderRequest) (*model.FoodOrder, error) {
	if err := s.validate.Struct(req); err != nil {
		return nil, err
	}
	order, err := s.orders.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.RoomID != nil {
		if err := requireRoom(ctx, s.rooms, *req.RoomID); err != nil {
			return nil, err
		}
		order.RoomID = *req.RoomID
	}
	if req.Amount != nil {
		order.Amount = *req.Amount
	}
	if req.AssignedEmployeeID != nil {
		if _, err := requireEmployee(ctx, s.lookup, *req.AssignedEmployeeID); err != nil {
			return nil, err
		}
		order.AssignedEmployeeID = *req.AssignedEmployeeID
	}
	if req.Status != nil {
		order.Status = *req.Status
	}
	if req.BillingStatus != nil {
		order.BillingStatus = *req.BillingStatus
	}
	replace := req.Items != nil
	if replace {
		if order.Items, err = s.requireItems(ctx, req.Items); err != nil {
			return nil, err
		}
	}

	if err := s.orders.Update(ctx, order, replace); err != nil {
		return nil, err
	}
	// Re-read so the response carries stored items with their names.
	return s.orders.GetByID(ctx, id)
}

// UpdateStatus sets the fulfilment status of an order.
func (s *FoodOrderService) UpdateStatus(ctx context.Context, id int64, req model.UpdateStatusRequest) error {
	if err := s.validate.Struct(req); err != nil {
		return err
	}
	switch req.Status {
	case "active", "completed", "cancelled":
	default:
		return ValidationErrors{{Field: "status", Message: "must be one of: active completed cancelled"}}
	}
	return s.orders.UpdateStatus(ctx, id, req.Status)
}

// Delete removes an order.
func (s *FoodOrderService) Delete(ctx context.Context, id int64) error {
	return s.orders.Delete(ctx, id)
}
