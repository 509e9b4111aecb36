// Package model defines the core domain types for the resort back office.
package model

import (
	"fmt"
	"time"
)

// BookingStatus is the lifecycle state of a regular or package booking.
type BookingStatus string

const (
	StatusBooked     BookingStatus = "booked"
	StatusCheckedIn  BookingStatus = "checked-in"
	StatusCheckedOut BookingStatus = "checked_out"
	StatusCancelled  BookingStatus = "cancelled"

	// statusCheckedInLegacy is an older spelling still present in stored rows.
	statusCheckedInLegacy BookingStatus = "checked_in"
)

// ActiveStatuses lists every stored spelling of a status that occupies a room.
var ActiveStatuses = []BookingStatus{StatusBooked, StatusCheckedIn, statusCheckedInLegacy}

// IsActive reports whether s occupies its rooms. Only exact matches count.
func (s BookingStatus) IsActive() bool {
	for _, a := range ActiveStatuses {
		if s == a {
			return true
		}
	}
	return false
}

// Room is a bookable unit. Number is the label shown to staff.
type Room struct {
	ID     int64   `json:"id"`
	Number string  `json:"number"`
	Type   string  `json:"type"`
	Price  float64 `json:"price"`
	Status string  `json:"status"`
}

// Booking is a regular reservation over the half-open stay [CheckIn, CheckOut).
type Booking struct {
	ID          int64         `json:"id"`
	GuestName   string        `json:"guest_name"`
	GuestMobile string        `json:"guest_mobile,omitempty"`
	GuestEmail  string        `json:"guest_email,omitempty"`
	CheckIn     time.Time     `json:"check_in"`
	CheckOut    time.Time     `json:"check_out"`
	Adults      int           `json:"adults"`
	Children    int           `json:"children"`
	Status      BookingStatus `json:"status"`
	RoomIDs     []int64       `json:"room_ids"`
	CreatedAt   time.Time     `json:"created_at"`
}

// DisplayID renders the id the way staff see it on the dashboard.
func (b *Booking) DisplayID() string {
	return fmt.Sprintf("BK-%06d", b.ID)
}

// PackageBooking is a package reservation. Its ids are independent of Booking ids.
type PackageBooking struct {
	Booking
	PackageID int64 `json:"package_id"`
}

// DisplayID renders the id the way staff see it on the dashboard.
func (b *PackageBooking) DisplayID() string {
	return fmt.Sprintf("PK-%06d", b.ID)
}

// Employee is a staff member orders, services and expenses are attributed to.
type Employee struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
	Role string `json:"role"`
}

// FoodItem is a menu entry.
type FoodItem struct {
	ID    int64   `json:"id"`
	Name  string  `json:"name"`
	Price float64 `json:"price"`
}

// FoodOrder is a room-service order.
type FoodOrder struct {
	ID                 int64           `json:"id"`
	RoomID             int64           `json:"room_id"`
	Amount             float64         `json:"amount"`
	AssignedEmployeeID int64           `json:"assigned_employee_id"`
	Status             string          `json:"status"`
	BillingStatus      string          `json:"billing_status"`
	Items              []FoodOrderItem `json:"items"`
	GuestName          string          `json:"guest_name,omitempty"`
	CreatedAt          time.Time       `json:"created_at"`
}

// FoodOrderItem is one line of a FoodOrder.
type FoodOrderItem struct {
	ID           int64  `json:"id"`
	FoodItemID   int64  `json:"food_item_id"`
	Quantity     int    `json:"quantity"`
	FoodItemName string `json:"food_item_name,omitempty"`
}

// Service is a chargeable amenity such as a spa treatment.
type Service struct {
	ID          int64    `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Charges     float64  `json:"charges"`
	ImageURLs   []string `json:"image_urls"`
}

// AssignedService is a Service delivered to a room by an employee.
type AssignedService struct {
	ID         int64     `json:"id"`
	ServiceID  int64     `json:"service_id"`
	EmployeeID int64     `json:"employee_id"`
	RoomID     int64     `json:"room_id"`
	Status     string    `json:"status"`
	AssignedAt time.Time `json:"assigned_at"`

	ServiceName  string `json:"service_name,omitempty"`
	EmployeeName string `json:"employee_name,omitempty"`
	RoomNumber   string `json:"room_number,omitempty"`
}

// Expense is an operating cost with an optional receipt image.
type Expense struct {
	ID           int64     `json:"id"`
	Category     string    `json:"category"`
	Amount       float64   `json:"amount"`
	Date         time.Time `json:"date"`
	Description  string    `json:"description,omitempty"`
	EmployeeID   int64     `json:"employee_id"`
	EmployeeName string    `json:"employee_name"`
	ImagePath    string    `json:"image,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}

// ErrorResponse is a standard JSON error envelope.
type ErrorResponse struct {
	Error   string         `json:"error"`
	Details map[string]any `json:"details,omitempty"`
}
