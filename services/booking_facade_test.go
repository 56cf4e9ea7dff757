package services

import (
	"context"
	stderrors "errors"
	"testing"

	"hotel-client/constants"
	"hotel-client/dto"
	"hotel-client/errors"
	"hotel-client/models"
)

type fakeBookingAPI struct {
	bookings []*models.Booking
	created  []dto.CreateBookingRequest
	updates  map[int64]dto.BookingUpdateRequest
	deleted  []int64
}

func (f *fakeBookingAPI) CreateBooking(ctx context.Context, input dto.CreateBookingRequest) (*models.Booking, error) {
	f.created = append(f.created, input)
	return &models.Booking{ID: 99, RoomID: input.Room.ID, Status: input.Status, CheckInDate: input.CheckInDate, CheckOutDate: input.CheckOutDate}, nil
}

func (f *fakeBookingAPI) UpdateBooking(ctx context.Context, id int64, input dto.BookingUpdateRequest) (*models.Booking, error) {
	if f.updates == nil {
		f.updates = make(map[int64]dto.BookingUpdateRequest)
	}
	f.updates[id] = input
	// the backend answers with an empty body
	return &models.Booking{}, nil
}

func (f *fakeBookingAPI) DeleteBooking(ctx context.Context, id int64) error {
	f.deleted = append(f.deleted, id)
	return nil
}

func (f *fakeBookingAPI) GetBooking(ctx context.Context, id int64) (*models.Booking, error) {
	for _, b := range f.bookings {
		if b.ID == id {
			c := *b
			return &c, nil
		}
	}
	return nil, errors.NewAppError(errors.ErrCodeNotFound, "not found", nil)
}

func (f *fakeBookingAPI) MyBookings(ctx context.Context) ([]*models.Booking, error) {
	return f.bookings, nil
}

func (f *fakeBookingAPI) ListBookings(ctx context.Context) ([]*models.Booking, error) {
	return f.bookings, nil
}

type countingRefresher struct{ calls int }

func (r *countingRefresher) Refresh(ctx context.Context) error {
	r.calls++
	return nil
}

func newTestFacade(role string) (*BookingFacade, *fakeBookingAPI, *countingRefresher) {
	session := NewSession(nil)
	if role != "" {
		session.Login("tok", role, "alice")
	}
	api := &fakeBookingAPI{bookings: []*models.Booking{
		{ID: 1, Status: constants.BookingStatusPending},
		{ID: 2, Status: constants.BookingStatusCancelled, CheckInConfirmedByAdmin: true},
	}}
	rooms := &countingRefresher{}
	return NewBookingFacade(BookingFacadeOptions{Backend: api, Rooms: rooms, Session: session}), api, rooms
}

func TestBookRoom(t *testing.T) {
	facade, api, rooms := newTestFacade(constants.RoleUser)

	booking, err := facade.BookRoom(context.Background(), dto.BookRoomInput{RoomID: 3, CheckIn: "5/3/2026", CheckOut: "2026-03-07"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if booking.ID != 99 || booking.Status != constants.BookingStatusPending {
		t.Fatalf("unexpected booking: %+v", booking)
	}
	if len(api.created) != 1 || api.created[0].CheckInDate.String() != "2026-03-05" || api.created[0].Room.ID != 3 {
		t.Fatalf("unexpected request: %+v", api.created)
	}
	if rooms.calls != 1 {
		t.Fatalf("expected a room refresh after booking")
	}

	if _, err := facade.BookRoom(context.Background(), dto.BookRoomInput{RoomID: 3, CheckIn: "2026-03-07", CheckOut: "2026-03-05"}); !errors.HasCode(err, errors.ErrCodeInvalidDate) {
		t.Fatalf("expected invalid date, got %v", err)
	}
	if len(api.created) != 1 {
		t.Fatalf("invalid dates must not reach the backend")
	}
}

func TestBookRoomRequiresLogin(t *testing.T) {
	facade, _, _ := newTestFacade("")
	_, err := facade.BookRoom(context.Background(), dto.BookRoomInput{RoomID: 3, CheckIn: "2026-03-05", CheckOut: "2026-03-07"})
	if !errors.HasCode(err, errors.ErrCodeUnauthorized) {
		t.Fatalf("expected unauthorized, got %v", err)
	}
}

func TestToggleCancel(t *testing.T) {
	facade, api, _ := newTestFacade(constants.RoleUser)
	ctx := context.Background()

	b, err := facade.ToggleCancel(ctx, 1)
	if err != nil || b.Status != constants.BookingStatusCancelled {
		t.Fatalf("cancel: %+v %v", b, err)
	}
	if got := api.updates[1].Status; got == nil || *got != constants.BookingStatusCancelled {
		t.Fatalf("expected CANCELLED to be sent, got %v", got)
	}
	if api.bookings[0].Status != constants.BookingStatusPending {
		t.Fatalf("listed booking must not be mutated")
	}

	b, err = facade.ToggleCancel(ctx, 2)
	if err != nil || b.Status != constants.BookingStatusPending {
		t.Fatalf("undo cancel: %+v %v", b, err)
	}

	if _, err := facade.ToggleCancel(ctx, 42); !errors.HasCode(err, errors.ErrCodeBookingNotFound) {
		t.Fatalf("expected booking not found, got %v", err)
	}
}

func TestAdminOperationsRequireAdmin(t *testing.T) {
	facade, api, _ := newTestFacade(constants.RoleUser)
	ctx := context.Background()

	if _, err := facade.SetStatus(ctx, 1, constants.BookingStatusConfirmed); !errors.HasCode(err, errors.ErrCodeForbidden) {
		t.Fatalf("expected forbidden, got %v", err)
	}
	if err := facade.Delete(ctx, 1); !errors.HasCode(err, errors.ErrCodeForbidden) {
		t.Fatalf("expected forbidden, got %v", err)
	}
	if _, err := facade.AllBookings(ctx); !errors.HasCode(err, errors.ErrCodeForbidden) {
		t.Fatalf("expected forbidden, got %v", err)
	}
	if len(api.updates) != 0 || len(api.deleted) != 0 {
		t.Fatalf("nothing must reach the backend")
	}
}

func TestAdminSetStatusAndDelete(t *testing.T) {
	facade, api, rooms := newTestFacade(constants.RoleAdmin)
	ctx := context.Background()

	b, err := facade.SetStatus(ctx, 1, constants.BookingStatusConfirmed)
	if err != nil || b.Status != constants.BookingStatusConfirmed {
		t.Fatalf("set status: %+v %v", b, err)
	}
	if got := api.updates[1].Status; got == nil || *got != constants.BookingStatusConfirmed {
		t.Fatalf("expected CONFIRMED to be sent, got %v", got)
	}
	if _, err := facade.SetStatus(ctx, 1, "DONE"); !errors.HasCode(err, errors.ErrCodeInvalidStatus) {
		t.Fatalf("expected invalid status, got %v", err)
	}
	if err := facade.Delete(ctx, 2); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if len(api.deleted) != 1 || api.deleted[0] != 2 {
		t.Fatalf("delete not sent")
	}
	if rooms.calls != 2 {
		t.Fatalf("expected 2 room refreshes, got %d", rooms.calls)
	}
}

func TestToggleAdminConfirm(t *testing.T) {
	facade, api, _ := newTestFacade(constants.RoleAdmin)
	ctx := context.Background()

	b, err := facade.ToggleAdminConfirm(ctx, 2, ConfirmCheckIn)
	if err != nil || b.CheckInConfirmedByAdmin {
		t.Fatalf("expected check-in confirmation to be undone: %+v %v", b, err)
	}
	if v := api.updates[2].CheckInConfirmedByAdmin; v == nil || *v {
		t.Fatalf("expected false to be sent")
	}
	if api.updates[2].CheckOutConfirmedByAdmin != nil {
		t.Fatalf("check-out flag must be left alone")
	}

	b, err = facade.ToggleAdminConfirm(ctx, 1, ConfirmCheckOut)
	if err != nil || !b.CheckOutConfirmedByAdmin {
		t.Fatalf("expected check-out confirmed: %+v %v", b, err)
	}

	if _, err := facade.ToggleAdminConfirm(ctx, 1, "lunch"); !errors.HasCode(err, errors.ErrCodeInvalidOperation) {
		t.Fatalf("expected invalid operation, got %v", err)
	}
}

func TestSetStatusConfirmFollowsBookingState(t *testing.T) {
	facade, api, rooms := newTestFacade(constants.RoleAdmin)
	api.bookings = append(api.bookings, &models.Booking{ID: 3, Status: constants.BookingStatusConfirmed})
	ctx := context.Background()

	_, err := facade.SetStatus(ctx, 2, constants.BookingStatusConfirmed)
	if !errors.HasCode(err, errors.ErrCodeInvalidOperation) || !stderrors.Is(err, errors.ErrBookingCancelled) {
		t.Fatalf("confirming a cancelled booking must be refused, got %v", err)
	}
	_, err = facade.SetStatus(ctx, 3, constants.BookingStatusConfirmed)
	if !stderrors.Is(err, errors.ErrBookingConfirmed) {
		t.Fatalf("confirming twice must be refused, got %v", err)
	}
	if _, err := facade.SetStatus(ctx, 42, constants.BookingStatusConfirmed); !errors.HasCode(err, errors.ErrCodeNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
	if len(api.updates) != 0 || rooms.calls != 0 {
		t.Fatalf("refused changes must not reach the backend")
	}

	b, err := facade.SetStatus(ctx, 2, constants.BookingStatusPending)
	if err != nil || b.Status != constants.BookingStatusPending {
		t.Fatalf("admin may reopen a cancelled booking: %+v %v", b, err)
	}
}
