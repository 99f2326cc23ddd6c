package models

import "time"

// Booking is the only entity with a lifecycle. Status starts at pending and
// moves exactly once to accepted or rejected by an administrator.
type Booking struct {
	ID              int64     `json:"id"`
	BookingCode     string    `json:"bookingCode"`
	FullName        string    `json:"fullName"`
	Email           string    `json:"email"`
	MobileNumber    string    `json:"mobileNumber"`
	SelectedCar     string    `json:"selectedCar"`
	PickupDate      string    `json:"pickupDate"` // YYYY-MM-DD
	PickupTime      string    `json:"pickupTime"` // 24-hour HH:MM
	PickupLocation  string    `json:"pickupLocation"`
	DropoffLocation string    `json:"dropoffLocation"`
	Status          string    `json:"status"`
	RejectReason    string    `json:"rejectReason,omitempty"`
	UserID          *int64    `json:"userId,omitempty"` // nil for guest bookings
	CreatedAt       time.Time `json:"createdAt"`
}

// BookingDraft is the requester-facing create payload.
type BookingDraft struct {
	FullName        string `json:"fullName"`
	Email           string `json:"email"`
	MobileNumber    string `json:"mobileNumber"`
	SelectedCar     string `json:"selectedCar"`
	PickupDate      string `json:"pickupDate"`
	PickupTime      string `json:"pickupTime"`
	PickupLocation  string `json:"pickupLocation"`
	DropoffLocation string `json:"dropoffLocation"`
}
