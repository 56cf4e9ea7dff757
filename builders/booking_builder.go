package builders

import (
	"hotel-client/constants"
	"hotel-client/dto"
	"hotel-client/errors"
	"hotel-client/models"
)

// BookingBuilder assembles a booking request step by step
type BookingBuilder struct {
	req dto.CreateBookingRequest
}

func NewBookingBuilder() *BookingBuilder {
	return &BookingBuilder{
		req: dto.CreateBookingRequest{Status: constants.BookingStatusPending},
	}
}

// WithRoom sets the room to book
func (b *BookingBuilder) WithRoom(roomID int64) *BookingBuilder {
	b.req.Room = dto.BookingRoomRef{ID: roomID}
	return b
}

// WithStay sets check-in and check-out dates
func (b *BookingBuilder) WithStay(checkIn, checkOut models.Date) *BookingBuilder {
	b.req.CheckInDate = checkIn
	b.req.CheckOutDate = checkOut
	return b
}

func (b *BookingBuilder) WithStatus(status string) *BookingBuilder {
	b.req.Status = status
	return b
}

// Build returns the request, or an error if a required part is missing
func (b *BookingBuilder) Build() (*dto.CreateBookingRequest, error) {
	if b.req.Room.ID <= 0 {
		return nil, errors.NewAppError(errors.ErrCodeInvalidRoomID, "room is required", errors.ErrMissingRequired)
	}
	if b.req.CheckInDate.IsZero() || b.req.CheckOutDate.IsZero() {
		return nil, errors.NewAppError(errors.ErrCodeInvalidDate, "check-in and check-out dates are required", errors.ErrMissingRequired)
	}
	if !b.req.CheckOutDate.After(b.req.CheckInDate) {
		return nil, errors.NewAppError(errors.ErrCodeInvalidDate, "check-out must be after check-in", nil)
	}
	req := b.req
	return &req, nil
}
