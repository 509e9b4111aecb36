package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/Shivanand-hulikatti/resort-backoffice/internal/conflict"
	"github.com/Shivanand-hulikatti/resort-backoffice/internal/model"
)

// BookingStore persists regular and package bookings.
type BookingStore interface {
	conflict.BookingStore

	Create(ctx context.Context, b *model.Booking) error
	List(ctx context.Context, skip, limit int) ([]model.Booking, error)
	GetByID(ctx context.Context, id int64) (*model.Booking, error)
	UpdateStatus(ctx context.Context, id int64, status model.BookingStatus) error

	CreatePackage(ctx context.Context, p *model.PackageBooking) error
	ListPackage(ctx context.Context, skip, limit int) ([]model.PackageBooking, error)
	GetPackageByID(ctx context.Context, id int64) (*model.PackageBooking, error)
	UpdatePackageStatus(ctx context.Context, id int64, status model.BookingStatus) error

	GuestForRoom(ctx context.Context, roomID int64) (string, bool, error)
}

// ConflictDetector runs the double-booking audit.
type ConflictDetector interface {
	Detect(ctx context.Context) ([]conflict.Conflict, error)
}

// BookingService orchestrates regular and package bookings.
type BookingService struct {
	bookings    BookingStore
	rooms       RoomStore
	detector    ConflictDetector
	validate    *Validator
	phoneRegion string
}

// NewBookingService constructs a BookingService that reads local guest
// numbers as DefaultPhoneRegion.
func NewBookingService(bookings BookingStore, rooms RoomStore, detector ConflictDetector, v *Validator) *BookingService {
	return &BookingService{
		bookings:    bookings,
		rooms:       rooms,
		detector:    detector,
		validate:    v,
		phoneRegion: DefaultPhoneRegion,
	}
}

// WithPhoneRegion sets the region used for guest numbers without a country code.
func (s *BookingService) WithPhoneRegion(region string) *BookingService {
	if region != "" {
		s.phoneRegion = strings.ToUpper(region)
	}
	return s
}

// prepare validates req and turns it into a booking in the "booked" state.
// Overlap with other bookings is not checked here; the conflict audit reports
// it after the fact.
func (s *BookingService) prepare(ctx context.Context, req model.CreateBookingRequest) (*model.Booking, error) {
	req.GuestName = strings.TrimSpace(req.GuestName)
	req.GuestEmail = strings.TrimSpace(strings.ToLower(req.GuestEmail))
	if err := s.validate.Struct(req); err != nil {
		return nil, err
	}

	checkIn, err := parseDate("check_in", req.CheckIn)
	if err != nil {
		return nil, err
	}
	checkOut, err := parseDate("check_out", req.CheckOut)
	if err != nil {
		return nil, err
	}
	if !checkOut.After(checkIn) {
		return nil, ValidationErrors{{Field: "check_out", Message: "must be after check_in"}}
	}
	mobile, ok := normalizePhone(req.GuestMobile, s.phoneRegion)
	if !ok {
		return nil, ValidationErrors{{Field: "guest_mobile", Message: "must be a valid phone number"}}
	}

	for _, id := range req.RoomIDs {
		if err := requireRoom(ctx, s.rooms, id); err != nil {
			return nil, err
		}
	}

	return &model.Booking{
		GuestName:   req.GuestName,
		GuestMobile: mobile,
		GuestEmail:  req.GuestEmail,
		CheckIn:     checkIn,
		CheckOut:    checkOut,
		Adults:      req.Adults,
		Children:    req.Children,
		Status:      model.StatusBooked,
		RoomIDs:     req.RoomIDs,
	}, nil
}

// Create books one or more rooms for a guest.
func (s *BookingService) Create(ctx context.Context, req model.CreateBookingRequest) (*model.Booking, error) {
	b, err := s.prepare(ctx, req)
	if err != nil {
		return nil, err
	}
	if err := s.bookings.Create(ctx, b); err != nil {
		return nil, fmt.Errorf("create booking: %w", err)
	}
	return b, nil
}

// CreatePackage books rooms as part of a package.
func (s *BookingService) CreatePackage(ctx context.Context, req model.CreateBookingRequest) (*model.PackageBooking, error) {
	if req.PackageID <= 0 {
		return nil, ValidationErrors{{Field: "package_id", Message: "is required"}}
	}
	b, err := s.prepare(ctx, req)
	if err != nil {
		return nil, err
	}
	p := &model.PackageBooking{Booking: *b, PackageID: req.PackageID}
	if err := s.bookings.CreatePackage(ctx, p); err != nil {
		return nil, fmt.Errorf("create package booking: %w", err)
	}
	return p, nil
}

// List returns a page of regular bookings.
func (s *BookingService) List(ctx context.Context, skip, limit int) ([]model.Booking, error) {
	skip, limit = Page(skip, limit, defaultLimit)
	return s.bookings.List(ctx, skip, limit)
}

// ListPackage returns a page of package bookings.
func (s *BookingService) ListPackage(ctx context.Context, skip, limit int) ([]model.PackageBooking, error) {
	skip, limit = Page(skip, limit, defaultLimit)
	return s.bookings.ListPackage(ctx, skip, limit)
}

// Get returns a single regular booking.
func (s *BookingService) Get(ctx context.Context, id int64) (*model.Booking, error) {
	return s.bookings.GetByID(ctx, id)
}

// GetPackage returns a single package booking.
func (s *BookingService) GetPackage(ctx context.Context, id int64) (*model.PackageBooking, error) {
	return s.bookings.GetPackageByID(ctx, id)
}

// UpdateStatus moves a regular booking to a new status.
func (s *BookingService) UpdateStatus(ctx context.Context, id int64, req model.UpdateStatusRequest) error {
	status, err := s.parseStatus(req)
	if err != nil {
		return err
	}
	return s.bookings.UpdateStatus(ctx, id, status)
}

// UpdatePackageStatus moves a package booking to a new status.
func (s *BookingService) UpdatePackageStatus(ctx context.Context, id int64, req model.UpdateStatusRequest) error {
	status, err := s.parseStatus(req)
	if err != nil {
		return err
	}
	return s.bookings.UpdatePackageStatus(ctx, id, status)
}

// parseStatus accepts the known statuses and stores checked-in in its
// canonical spelling.
func (s *BookingService) parseStatus(req model.UpdateStatusRequest) (model.BookingStatus, error) {
	if err := s.validate.Struct(req); err != nil {
		return "", err
	}
	switch status := model.BookingStatus(strings.TrimSpace(req.Status)); status {
	case model.StatusBooked, model.StatusCheckedIn, model.StatusCheckedOut, model.StatusCancelled:
		return status, nil
	case "checked_in":
		return model.StatusCheckedIn, nil
	default:
		return "", ValidationErrors{{
			Field:   "status",
			Message: "must be one of: booked checked-in checked_out cancelled",
		}}
	}
}

// Conflicts runs the double-booking audit over the current bookings.
func (s *BookingService) Conflicts(ctx context.Context) ([]conflict.Conflict, error) {
	return s.detector.Detect(ctx)
}
