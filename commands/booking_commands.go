package commands

import (
	"context"

	"hotel-client/dto"
	"hotel-client/models"
)

// BookingBackend is the part of the backend API the booking commands use
type BookingBackend interface {
	CreateBooking(ctx context.Context, input dto.CreateBookingRequest) (*models.Booking, error)
	UpdateBooking(ctx context.Context, id int64, input dto.BookingUpdateRequest) (*models.Booking, error)
	DeleteBooking(ctx context.Context, id int64) error
}

// BookingCommand is one write against the backend
type BookingCommand interface {
	Execute(ctx context.Context) error
}

// CreateBookingCommand submits a new booking; Result holds the backend's answer
type CreateBookingCommand struct {
	backend BookingBackend
	request dto.CreateBookingRequest
	Result  *models.Booking
}

func NewCreateBookingCommand(backend BookingBackend, request dto.CreateBookingRequest) *CreateBookingCommand {
	return &CreateBookingCommand{backend: backend, request: request}
}

func (c *CreateBookingCommand) Execute(ctx context.Context) error {
	booking, err := c.backend.CreateBooking(ctx, c.request)
	if err != nil {
		return err
	}
	c.Result = booking
	return nil
}

// UpdateBookingCommand sends a partial update
type UpdateBookingCommand struct {
	backend BookingBackend
	id      int64
	update  dto.BookingUpdateRequest
	Result  *models.Booking
}

func NewUpdateBookingCommand(backend BookingBackend, id int64, update dto.BookingUpdateRequest) *UpdateBookingCommand {
	return &UpdateBookingCommand{backend: backend, id: id, update: update}
}

func (c *UpdateBookingCommand) Execute(ctx context.Context) error {
	booking, err := c.backend.UpdateBooking(ctx, c.id, c.update)
	if err != nil {
		return err
	}
	c.Result = booking
	return nil
}

type DeleteBookingCommand struct {
	backend BookingBackend
	id      int64
}

func NewDeleteBookingCommand(backend BookingBackend, id int64) *DeleteBookingCommand {
	return &DeleteBookingCommand{backend: backend, id: id}
}

func (c *DeleteBookingCommand) Execute(ctx context.Context) error {
	return c.backend.DeleteBooking(ctx, c.id)
}
