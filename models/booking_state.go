package models

import (
	"hotel-client/constants"
	"hotel-client/errors"
)

// BookingState defines the transitions a booking allows from its current status
type BookingState interface {
	Confirm(booking *Booking) error
	Cancel(booking *Booking) error
	Restore(booking *Booking) error
}

// PendingState is a booking waiting for admin confirmation
type PendingState struct{}

func (s *PendingState) Confirm(booking *Booking) error {
	booking.Status = constants.BookingStatusConfirmed
	return nil
}

func (s *PendingState) Cancel(booking *Booking) error {
	booking.Status = constants.BookingStatusCancelled
	return nil
}

func (s *PendingState) Restore(booking *Booking) error {
	return errors.ErrBookingNotCancelled
}

// ConfirmedState is a booking an admin has confirmed
type ConfirmedState struct{}

func (s *ConfirmedState) Confirm(booking *Booking) error {
	return errors.ErrBookingConfirmed
}

func (s *ConfirmedState) Cancel(booking *Booking) error {
	booking.Status = constants.BookingStatusCancelled
	return nil
}

func (s *ConfirmedState) Restore(booking *Booking) error {
	return errors.ErrBookingNotCancelled
}

// CancelledState is a booking the guest cancelled; undoing it goes back to pending
type CancelledState struct{}

func (s *CancelledState) Confirm(booking *Booking) error {
	return errors.ErrBookingCancelled
}

func (s *CancelledState) Cancel(booking *Booking) error {
	return errors.ErrBookingCancelled
}

func (s *CancelledState) Restore(booking *Booking) error {
	booking.Status = constants.BookingStatusPending
	return nil
}

// GetBookingState returns the state for a status string. Unknown or empty
// statuses behave as pending.
func GetBookingState(status string) BookingState {
	switch status {
	case constants.BookingStatusConfirmed:
		return &ConfirmedState{}
	case constants.BookingStatusCancelled:
		return &CancelledState{}
	default:
		return &PendingState{}
	}
}

// ToggleCancel cancels an active booking or restores a cancelled one.
func ToggleCancel(booking *Booking) error {
	state := GetBookingState(booking.Status)
	if booking.Status == constants.BookingStatusCancelled {
		return state.Restore(booking)
	}
	return state.Cancel(booking)
}
