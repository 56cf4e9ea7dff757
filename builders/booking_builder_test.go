package builders

import (
	"testing"
	"time"

	"hotel-client/errors"
	"hotel-client/models"
)

func date(t *testing.T, y, m, d int) models.Date {
	t.Helper()
	v, err := models.NewDate(y, time.Month(m), d)
	if err != nil {
		t.Fatalf("date: %v", err)
	}
	return v
}

func TestBookingBuilderBuild(t *testing.T) {
	req, err := NewBookingBuilder().
		WithRoom(3).
		WithStay(date(t, 2026, 3, 5), date(t, 2026, 3, 7)).
		Build()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if req.Room.ID != 3 || req.Status != "PENDING" || req.CheckInDate.String() != "2026-03-05" {
		t.Fatalf("unexpected request: %+v", req)
	}
}

func TestBookingBuilderRejectsIncompleteRequests(t *testing.T) {
	if _, err := NewBookingBuilder().WithStay(date(t, 2026, 3, 5), date(t, 2026, 3, 7)).Build(); !errors.HasCode(err, errors.ErrCodeInvalidRoomID) {
		t.Fatalf("expected invalid room id, got %v", err)
	}
	if _, err := NewBookingBuilder().WithRoom(1).Build(); !errors.HasCode(err, errors.ErrCodeInvalidDate) {
		t.Fatalf("expected invalid date, got %v", err)
	}
	if _, err := NewBookingBuilder().WithRoom(1).WithStay(date(t, 2026, 3, 7), date(t, 2026, 3, 7)).Build(); !errors.HasCode(err, errors.ErrCodeInvalidDate) {
		t.Fatalf("expected invalid date for zero-night stay, got %v", err)
	}
}
