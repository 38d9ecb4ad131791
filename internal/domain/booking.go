package domain

import "time"

type BookingStatus string

const (
	BookingStatusConfirmed BookingStatus = "CONFIRMED"
	BookingStatusFailed    BookingStatus = "FAILED"
)

// BookingRequest is the outbound payload sent to the booking-creation
// endpoint. It is constructed once at submission and not mutated after.
type BookingRequest struct {
	RoomIDs      []int64     `json:"roomIds"`
	FoodItems    []FoodOrder `json:"foodItems"`
	CheckInDate  string      `json:"checkInDate"`
	CheckOutDate string      `json:"checkOutDate"`
}

// Booking is the history record kept for a submitted request.
type Booking struct {
	ID          int64
	SessionID   string
	ExternalID  int64
	RoomIDs     []int64
	FoodItems   []FoodOrder
	TotalAmount int64
	Status      BookingStatus
	CheckIn     time.Time
	CheckOut    time.Time
	CreatedAt   time.Time
}
