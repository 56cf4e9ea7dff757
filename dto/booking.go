package dto

import "hotel-client/models"

// BookRoomInput is what the UI sends to book a room. Dates are as typed by
// the guest.
type BookRoomInput struct {
	RoomID   int64  `json:"roomId" binding:"required,gt=0"`
	CheckIn  string `json:"checkIn" binding:"required"`
	CheckOut string `json:"checkOut" binding:"required"`
}

type BookingRoomRef struct {
	ID int64 `json:"id"`
}

// CreateBookingRequest is the backend payload for a new booking
type CreateBookingRequest struct {
	Room         BookingRoomRef `json:"room"`
	CheckInDate  models.Date    `json:"checkInDate"`
	CheckOutDate models.Date    `json:"checkOutDate"`
	Status       string         `json:"status"`
}

// BookingUpdateRequest is a partial update; nil fields are left alone
type BookingUpdateRequest struct {
	Status                   *string      `json:"status,omitempty"`
	CheckInConfirmedByAdmin  *bool        `json:"checkInConfirmedByAdmin,omitempty"`
	CheckOutConfirmedByAdmin *bool        `json:"checkOutConfirmedByAdmin,omitempty"`
	CheckInDate              *models.Date `json:"checkInDate,omitempty"`
	CheckOutDate             *models.Date `json:"checkOutDate,omitempty"`
}

type BookingStatusInput struct {
	Status string `json:"status" binding:"required,oneof=PENDING CONFIRMED CANCELLED"`
}

// BookingResponse is a booking plus display values
type BookingResponse struct {
	*models.Booking
	DisplayRoomNumber string   `json:"displayRoomNumber"`
	DisplayUsername   string   `json:"displayUsername"`
	DisplayPrice      *float64 `json:"displayPrice"`
}

func NewBookingResponse(b *models.Booking) BookingResponse {
	return BookingResponse{
		Booking:           b,
		DisplayRoomNumber: b.DisplayRoomNumber(),
		DisplayUsername:   b.DisplayUsername(),
		DisplayPrice:      b.DisplayPrice(),
	}
}
