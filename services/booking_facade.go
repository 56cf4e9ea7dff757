package services

import (
	"context"
	"fmt"

	"hotel-client/builders"
	"hotel-client/commands"
	"hotel-client/constants"
	"hotel-client/dto"
	"hotel-client/errors"
	"hotel-client/models"
	"hotel-client/services/logger"
	"hotel-client/validator"
)

// Admin confirmation kinds
const (
	ConfirmCheckIn  = "checkin"
	ConfirmCheckOut = "checkout"
)

// BookingAPI is the backend surface the booking facade needs
type BookingAPI interface {
	commands.BookingBackend
	GetBooking(ctx context.Context, id int64) (*models.Booking, error)
	MyBookings(ctx context.Context) ([]*models.Booking, error)
	ListBookings(ctx context.Context) ([]*models.Booking, error)
}

// RoomRefresher reloads the room collection after a booking changes it
type RoomRefresher interface {
	Refresh(ctx context.Context) error
}

type BookingFacadeOptions struct {
	Backend BookingAPI
	Rooms   RoomRefresher
	Session *Session
	Logger  logger.Logger
}

// BookingFacade groups the guest and admin booking flows. Every write is
// followed by a room refresh, since bookings change availability.
type BookingFacade struct {
	backend BookingAPI
	rooms   RoomRefresher
	session *Session
	logger  logger.Logger
}

func NewBookingFacade(opts BookingFacadeOptions) *BookingFacade {
	log := opts.Logger
	if log == nil {
		log = logger.Nop{}
	}
	return &BookingFacade{
		backend: opts.Backend,
		rooms:   opts.Rooms,
		session: opts.Session,
		logger:  log,
	}
}

func (f *BookingFacade) requireSession() error {
	if f.session == nil || !f.session.IsAuthenticated() {
		return errors.NewAppError(errors.ErrCodeUnauthorized, "login required", errors.ErrNotLoggedIn)
	}
	return nil
}

func (f *BookingFacade) requireAdmin() error {
	if err := f.requireSession(); err != nil {
		return err
	}
	if !f.session.IsAdmin() {
		return errors.NewAppError(errors.ErrCodeForbidden, forbiddenMessage, errors.ErrNotAdmin)
	}
	return nil
}

func (f *BookingFacade) refreshRooms(ctx context.Context) {
	if f.rooms == nil {
		return
	}
	if err := f.rooms.Refresh(ctx); err != nil {
		f.logger.Error("booking: room refresh failed: %v", err)
	}
}

// BookRoom validates the guest's dates and submits a pending booking
func (f *BookingFacade) BookRoom(ctx context.Context, input dto.BookRoomInput) (*models.Booking, error) {
	if err := f.requireSession(); err != nil {
		return nil, err
	}

	checkIn, checkOut, err := validator.ValidateBookingDates(input.CheckIn, input.CheckOut)
	if err != nil {
		return nil, err
	}

	req, err := builders.NewBookingBuilder().
		WithRoom(input.RoomID).
		WithStay(checkIn, checkOut).
		Build()
	if err != nil {
		return nil, err
	}

	cmd := commands.NewCreateBookingCommand(f.backend, *req)
	if err := cmd.Execute(ctx); err != nil {
		f.logger.Error("booking: room %d for %s..%s failed: %v", input.RoomID, checkIn, checkOut, err)
		return nil, err
	}
	f.logger.Info("booking: %s booked room %d for %s..%s", f.session.Username(), input.RoomID, checkIn, checkOut)

	f.refreshRooms(ctx)
	return cmd.Result, nil
}

// MyBookings lists the logged-in guest's bookings
func (f *BookingFacade) MyBookings(ctx context.Context) ([]*models.Booking, error) {
	if err := f.requireSession(); err != nil {
		return nil, err
	}
	return f.backend.MyBookings(ctx)
}

// AllBookings lists every booking; admin only
func (f *BookingFacade) AllBookings(ctx context.Context) ([]*models.Booking, error) {
	if err := f.requireAdmin(); err != nil {
		return nil, err
	}
	return f.backend.ListBookings(ctx)
}

func findBooking(bookings []*models.Booking, id int64) (*models.Booking, error) {
	for _, b := range bookings {
		if b != nil && b.ID == id {
			c := *b
			return &c, nil
		}
	}
	return nil, errors.NewAppError(errors.ErrCodeBookingNotFound, fmt.Sprintf("booking %d not found", id), errors.ErrBookingNotFound)
}

// ToggleCancel cancels one of the guest's bookings, or restores it to
// pending if it is already cancelled.
func (f *BookingFacade) ToggleCancel(ctx context.Context, id int64) (*models.Booking, error) {
	if err := f.requireSession(); err != nil {
		return nil, err
	}

	bookings, err := f.backend.MyBookings(ctx)
	if err != nil {
		return nil, err
	}
	booking, err := findBooking(bookings, id)
	if err != nil {
		return nil, err
	}

	if err := models.ToggleCancel(booking); err != nil {
		return nil, errors.NewAppError(errors.ErrCodeInvalidOperation, err.Error(), err)
	}
	status := booking.Status

	cmd := commands.NewUpdateBookingCommand(f.backend, id, dto.BookingUpdateRequest{Status: &status})
	if err := cmd.Execute(ctx); err != nil {
		return nil, err
	}
	f.logger.Info("booking: %d set to %s by %s", id, status, f.session.Username())

	f.refreshRooms(ctx)
	return mergeResult(booking, cmd.Result), nil
}

// SetStatus sets a booking's status; admin only. Confirming goes through
// the booking's state, so a cancelled or already confirmed booking is refused.
func (f *BookingFacade) SetStatus(ctx context.Context, id int64, status string) (*models.Booking, error) {
	if err := f.requireAdmin(); err != nil {
		return nil, err
	}
	if err := validator.ValidateBookingStatus(status); err != nil {
		return nil, err
	}

	booking, err := f.backend.GetBooking(ctx, id)
	if err != nil {
		return nil, err
	}
	if status == constants.BookingStatusConfirmed {
		if err := models.GetBookingState(booking.Status).Confirm(booking); err != nil {
			return nil, errors.NewAppError(errors.ErrCodeInvalidOperation, err.Error(), err)
		}
	} else {
		booking.Status = status
	}

	cmd := commands.NewUpdateBookingCommand(f.backend, id, dto.BookingUpdateRequest{Status: &booking.Status})
	if err := cmd.Execute(ctx); err != nil {
		return nil, err
	}
	f.logger.Info("booking: %d set to %s by admin %s", id, booking.Status, f.session.Username())

	f.refreshRooms(ctx)
	return mergeResult(booking, cmd.Result), nil
}

// ToggleAdminConfirm flips the admin check-in or check-out confirmation
func (f *BookingFacade) ToggleAdminConfirm(ctx context.Context, id int64, kind string) (*models.Booking, error) {
	if err := f.requireAdmin(); err != nil {
		return nil, err
	}
	if kind != ConfirmCheckIn && kind != ConfirmCheckOut {
		return nil, errors.NewAppError(errors.ErrCodeInvalidOperation, fmt.Sprintf("unknown confirmation %q", kind), nil)
	}

	booking, err := f.backend.GetBooking(ctx, id)
	if err != nil {
		return nil, err
	}

	var update dto.BookingUpdateRequest
	if kind == ConfirmCheckIn {
		booking.CheckInConfirmedByAdmin = !booking.CheckInConfirmedByAdmin
		update.CheckInConfirmedByAdmin = &booking.CheckInConfirmedByAdmin
	} else {
		booking.CheckOutConfirmedByAdmin = !booking.CheckOutConfirmedByAdmin
		update.CheckOutConfirmedByAdmin = &booking.CheckOutConfirmedByAdmin
	}

	cmd := commands.NewUpdateBookingCommand(f.backend, id, update)
	if err := cmd.Execute(ctx); err != nil {
		return nil, err
	}

	f.refreshRooms(ctx)
	return mergeResult(booking, cmd.Result), nil
}

// Delete removes a booking; admin only
func (f *BookingFacade) Delete(ctx context.Context, id int64) error {
	if err := f.requireAdmin(); err != nil {
		return err
	}
	if err := commands.NewDeleteBookingCommand(f.backend, id).Execute(ctx); err != nil {
		return err
	}
	f.logger.Info("booking: %d deleted by admin %s", id, f.session.Username())

	f.refreshRooms(ctx)
	return nil
}

// mergeResult prefers the backend's copy; some endpoints answer with an
// empty body.
func mergeResult(local, remote *models.Booking) *models.Booking {
	if remote != nil && remote.ID != 0 {
		return remote
	}
	return local
}
