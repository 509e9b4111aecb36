package model

// CreateRoomRequest is the payload for POST /rooms.
type CreateRoomRequest struct {
	Number string  `json:"number" validate:"required,max=20"`
	Type   string  `json:"type" validate:"required,max=50"`
	Price  float64 `json:"price" validate:"gte=0"`
	Status string  `json:"status" validate:"omitempty,oneof=available booked maintenance"`
}

// CreateBookingRequest is the payload for POST /bookings and, with PackageID,
// POST /package-bookings. Dates use YYYY-MM-DD.
type CreateBookingRequest struct {
	GuestName   string  `json:"guest_name" validate:"required,max=100"`
	GuestMobile string  `json:"guest_mobile" validate:"omitempty,max=20"`
	GuestEmail  string  `json:"guest_email" validate:"omitempty,email"`
	CheckIn     string  `json:"check_in" validate:"required,datetime=2006-01-02"`
	CheckOut    string  `json:"check_out" validate:"required,datetime=2006-01-02"`
	Adults      int     `json:"adults" validate:"min=1,max=20"`
	Children    int     `json:"children" validate:"min=0,max=20"`
	RoomIDs     []int64 `json:"room_ids" validate:"required,min=1,unique,dive,gt=0"`
	PackageID   int64   `json:"package_id,omitempty" validate:"omitempty,gt=0"`
}

// UpdateStatusRequest is the payload for status transitions.
type UpdateStatusRequest struct {
	Status string `json:"status" validate:"required,max=30"`
}

// FoodOrderItemRequest is one line of a food order payload.
type FoodOrderItemRequest struct {
	FoodItemID int64 `json:"food_item_id" validate:"required,gt=0"`
	Quantity   int   `json:"quantity" validate:"required,min=1,max=100"`
}

// CreateFoodOrderRequest is the payload for POST /food-orders.
type CreateFoodOrderRequest struct {
	RoomID             int64                  `json:"room_id" validate:"required,gt=0"`
	Amount             float64                `json:"amount" validate:"gte=0"`
	AssignedEmployeeID int64                  `json:"assigned_employee_id" validate:"required,gt=0"`
	BillingStatus      string                 `json:"billing_status" validate:"omitempty,oneof=unbilled billed paid"`
	Items              []FoodOrderItemRequest `json:"items" validate:"required,min=1,dive"`
}

// UpdateFoodOrderRequest is the payload for PUT /food-orders/{id}. Nil fields
// are left unchanged; a non-nil Items replaces every line.
type UpdateFoodOrderRequest struct {
	RoomID             *int64                 `json:"room_id" validate:"omitempty,gt=0"`
	Amount             *float64               `json:"amount" validate:"omitempty,gte=0"`
	AssignedEmployeeID *int64                 `json:"assigned_employee_id" validate:"omitempty,gt=0"`
	Status             *string                `json:"status" validate:"omitempty,oneof=active completed cancelled"`
	BillingStatus      *string                `json:"billing_status" validate:"omitempty,oneof=unbilled billed paid"`
	Items              []FoodOrderItemRequest `json:"items" validate:"omitempty,dive"`
}

// CreateServiceRequest is the payload for POST /services.
type CreateServiceRequest struct {
	Name        string   `json:"name" validate:"required,max=100"`
	Description string   `json:"description" validate:"max=1000"`
	Charges     float64  `json:"charges" validate:"gte=0"`
	ImageURLs   []string `json:"image_urls" validate:"omitempty,dive,url"`
}

// AssignServiceRequest is the payload for POST /services/assigned.
type AssignServiceRequest struct {
	ServiceID  int64  `json:"service_id" validate:"required,gt=0"`
	EmployeeID int64  `json:"employee_id" validate:"required,gt=0"`
	RoomID     int64  `json:"room_id" validate:"required,gt=0"`
	Status     string `json:"status" validate:"omitempty,oneof=pending in_progress completed"`
}

// CreateExpenseRequest carries the form fields of POST /expenses.
type CreateExpenseRequest struct {
	Category    string  `validate:"required,max=50"`
	Amount      float64 `validate:"gt=0"`
	Date        string  `validate:"required,datetime=2006-01-02"`
	Description string  `validate:"max=500"`
	EmployeeID  int64   `validate:"required,gt=0"`
}
