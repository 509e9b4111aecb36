package service

import (
	"context"
	"io"
	"slices"
	"strconv"
	"strings"

	"github.com/Shivanand-hulikatti/resort-backoffice/internal/model"
	"github.com/Shivanand-hulikatti/resort-backoffice/internal/repository"
)

// ────────────────────────────────────────────────
// In-memory stores
// ────────────────────────────────────────────────

type memRooms struct {
	rooms  []model.Room
	nextID int64
	err    error
}

func newMemRooms(ids ...int64) *memRooms {
	m := &memRooms{}
	for _, id := range ids {
		m.rooms = append(m.rooms, model.Room{ID: id, Number: strconv.FormatInt(id, 10), Status: "available"})
		m.nextID = max(m.nextID, id)
	}
	return m
}

func (m *memRooms) Create(_ context.Context, room *model.Room) error {
	if m.err != nil {
		return m.err
	}
	m.nextID++
	room.ID = m.nextID
	m.rooms = append(m.rooms, *room)
	return nil
}

func (m *memRooms) List(_ context.Context, skip, limit int) ([]model.Room, error) {
	if skip >= len(m.rooms) {
		return nil, m.err
	}
	return m.rooms[skip:min(skip+limit, len(m.rooms))], m.err
}

func (m *memRooms) GetByID(_ context.Context, id int64) (*model.Room, error) {
	for _, r := range m.rooms {
		if r.ID == id {
			return &r, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (m *memRooms) Delete(_ context.Context, id int64) error {
	for i, r := range m.rooms {
		if r.ID == id {
			m.rooms = slices.Delete(m.rooms, i, i+1)
			return nil
		}
	}
	return repository.ErrNotFound
}

func (m *memRooms) Exists(_ context.Context, id int64) (bool, error) {
	if m.err != nil {
		return false, m.err
	}
	return slices.ContainsFunc(m.rooms, func(r model.Room) bool { return r.ID == id }), nil
}

type memBookings struct {
	regular  []model.Booking
	packages []model.PackageBooking
	err      error
}

func (m *memBookings) ListBookings(_ context.Context, statuses []model.BookingStatus) ([]model.Booking, error) {
	var out []model.Booking
	for _, b := range m.regular {
		if slices.Contains(statuses, b.Status) {
			out = append(out, b)
		}
	}
	return out, m.err
}

func (m *memBookings) ListPackageBookings(_ context.Context, statuses []model.BookingStatus) ([]model.PackageBooking, error) {
	var out []model.PackageBooking
	for _, b := range m.packages {
		if slices.Contains(statuses, b.Status) {
			out = append(out, b)
		}
	}
	return out, m.err
}

func (m *memBookings) Create(_ context.Context, b *model.Booking) error {
	if m.err != nil {
		return m.err
	}
	b.ID = int64(len(m.regular) + 1)
	m.regular = append(m.regular, *b)
	return nil
}

func (m *memBookings) List(_ context.Context, _, _ int) ([]model.Booking, error) {
	return m.regular, m.err
}

func (m *memBookings) GetByID(_ context.Context, id int64) (*model.Booking, error) {
	for _, b := range m.regular {
		if b.ID == id {
			return &b, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (m *memBookings) UpdateStatus(_ context.Context, id int64, status model.BookingStatus) error {
	for i := range m.regular {
		if m.regular[i].ID == id {
			m.regular[i].Status = status
			return nil
		}
	}
	return repository.ErrNotFound
}

func (m *memBookings) CreatePackage(_ context.Context, p *model.PackageBooking) error {
	if m.err != nil {
		return m.err
	}
	p.ID = int64(len(m.packages) + 1)
	m.packages = append(m.packages, *p)
	return nil
}

func (m *memBookings) ListPackage(_ context.Context, _, _ int) ([]model.PackageBooking, error) {
	return m.packages, m.err
}

func (m *memBookings) GetPackageByID(_ context.Context, id int64) (*model.PackageBooking, error) {
	for _, p := range m.packages {
		if p.ID == id {
			return &p, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (m *memBookings) UpdatePackageStatus(_ context.Context, id int64, status model.BookingStatus) error {
	for i := range m.packages {
		if m.packages[i].ID == id {
			m.packages[i].Status = status
			return nil
		}
	}
	return repository.ErrNotFound
}

func (m *memBookings) GuestForRoom(_ context.Context, roomID int64) (string, bool, error) {
	if m.err != nil {
		return "", false, m.err
	}
	for i := len(m.regular) - 1; i >= 0; i-- {
		b := m.regular[i]
		if b.Status.IsActive() && slices.Contains(b.RoomIDs, roomID) {
			return b.GuestName, true, nil
		}
	}
	for i := len(m.packages) - 1; i >= 0; i-- {
		b := m.packages[i]
		if b.Status.IsActive() && slices.Contains(b.RoomIDs, roomID) {
			return b.GuestName, true, nil
		}
	}
	return "", false, nil
}

type memLookup struct {
	employees map[int64]string
	foodItems map[int64]bool
}

func newMemLookup() *memLookup {
	return &memLookup{
		employees: map[int64]string{1: "Ravi", 2: "Meera"},
		foodItems: map[int64]bool{10: true, 11: true},
	}
}

func (m *memLookup) Employee(_ context.Context, id int64) (*model.Employee, error) {
	name, ok := m.employees[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	return &model.Employee{ID: id, Name: name}, nil
}

func (m *memLookup) FoodItemExists(_ context.Context, id int64) (bool, error) {
	return m.foodItems[id], nil
}

type memOrders struct {
	orders       []model.FoodOrder
	replaceItems bool
	reads        int
}

func (m *memOrders) Create(_ context.Context, o *model.FoodOrder) error {
	o.ID = int64(len(m.orders) + 1)
	m.orders = append(m.orders, *o)
	return nil
}

func (m *memOrders) List(_ context.Context, _, _ int) ([]model.FoodOrder, error) {
	return slices.Clone(m.orders), nil
}

// GetByID mirrors the repository: items are never nil and carry a name.
func (m *memOrders) GetByID(_ context.Context, id int64) (*model.FoodOrder, error) {
	m.reads++
	for _, o := range m.orders {
		if o.ID == id {
			items := make([]model.FoodOrderItem, len(o.Items))
			for i, it := range o.Items {
				it.FoodItemName = "Item " + strconv.FormatInt(it.FoodItemID, 10)
				items[i] = it
			}
			o.Items = items
			return &o, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (m *memOrders) Update(_ context.Context, o *model.FoodOrder, replaceItems bool) error {
	m.replaceItems = replaceItems
	for i := range m.orders {
		if m.orders[i].ID == o.ID {
			m.orders[i] = *o
			return nil
		}
	}
	return repository.ErrNotFound
}

func (m *memOrders) UpdateStatus(_ context.Context, id int64, status string) error {
	for i := range m.orders {
		if m.orders[i].ID == id {
			m.orders[i].Status = status
			return nil
		}
	}
	return repository.ErrNotFound
}

func (m *memOrders) Delete(_ context.Context, id int64) error {
	for i := range m.orders {
		if m.orders[i].ID == id {
			m.orders = slices.Delete(m.orders, i, i+1)
			return nil
		}
	}
	return repository.ErrNotFound
}

type memAmenities struct {
	services []model.Service
	assigned []model.AssignedService
}

func (m *memAmenities) CreateService(_ context.Context, s *model.Service) error {
	s.ID = int64(len(m.services) + 1)
	m.services = append(m.services, *s)
	return nil
}

func (m *memAmenities) ListServices(_ context.Context, _, _ int) ([]model.Service, error) {
	return m.services, nil
}

func (m *memAmenities) ServiceExists(_ context.Context, id int64) (bool, error) {
	return slices.ContainsFunc(m.services, func(s model.Service) bool { return s.ID == id }), nil
}

func (m *memAmenities) DeleteService(_ context.Context, id int64) error {
	for i := range m.services {
		if m.services[i].ID == id {
			m.services = slices.Delete(m.services, i, i+1)
			return nil
		}
	}
	return repository.ErrNotFound
}

func (m *memAmenities) Assign(_ context.Context, a *model.AssignedService) error {
	a.ID = int64(len(m.assigned) + 1)
	m.assigned = append(m.assigned, *a)
	return nil
}

func (m *memAmenities) ListAssigned(_ context.Context, _, _ int) ([]model.AssignedService, error) {
	return m.assigned, nil
}

func (m *memAmenities) UpdateAssignedStatus(_ context.Context, id int64, status string) error {
	for i := range m.assigned {
		if m.assigned[i].ID == id {
			m.assigned[i].Status = status
			return nil
		}
	}
	return repository.ErrNotFound
}

func (m *memAmenities) DeleteAssigned(_ context.Context, id int64) error {
	for i := range m.assigned {
		if m.assigned[i].ID == id {
			m.assigned = slices.Delete(m.assigned, i, i+1)
			return nil
		}
	}
	return repository.ErrNotFound
}

type memExpenses struct {
	expenses []model.Expense
	err      error
}

func (m *memExpenses) Create(_ context.Context, e *model.Expense) error {
	if m.err != nil {
		return m.err
	}
	e.ID = int64(len(m.expenses) + 1)
	m.expenses = append(m.expenses, *e)
	return nil
}

func (m *memExpenses) List(_ context.Context, _, limit int) ([]model.Expense, error) {
	return m.expenses[:min(limit, len(m.expenses))], nil
}

type memReceipts struct {
	saved   map[string]string
	deleted []string
	err     error
}

func (m *memReceipts) Delete(publicPath string) error {
	m.deleted = append(m.deleted, publicPath)
	delete(m.saved, strings.TrimPrefix(publicPath, "uploads/expenses/"))
	return nil
}

func (m *memReceipts) Save(_ int64, name string, r io.Reader) (string, error) {
	if m.err != nil {
		return "", m.err
	}
	data, err := io.ReadAll(r)
	if err != nil {
		return "", err
	}
	if m.saved == nil {
		m.saved = make(map[string]string)
	}
	m.saved[name] = string(data)
	return "uploads/expenses/" + name, nil
}
