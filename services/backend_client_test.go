package services

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"hotel-client/dto"
	"hotel-client/errors"
	"hotel-client/models"
)

func newTestBackend(t *testing.T, handler http.HandlerFunc) (*BackendClient, *Session) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	session := NewSession(nil)
	client := NewBackendClient(BackendClientOptions{BaseURL: srv.URL + "/", Session: session})
	return client, session
}

func TestBackendClientSendsBearerAndRequestID(t *testing.T) {
	client, session := newTestBackend(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/rooms" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		if got := r.Header.Get("Authorization"); got != "Bearer tok" {
			t.Errorf("Authorization = %q", got)
		}
		if got := r.Header.Get("X-Request-ID"); got != "req-1" {
			t.Errorf("X-Request-ID = %q", got)
		}
		io.WriteString(w, `[{"id":1,"roomNumber":"101","basePrice":2000,"price":1600,"discountPercent":20,"available":true}]`)
	})
	session.Login("tok", "ROLE_USER", "alice")

	rooms, err := client.ListRooms(WithRequestID(context.Background(), "req-1"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(rooms) != 1 || rooms[0].RoomNumber != "101" || *rooms[0].DiscountPercent != 20 {
		t.Fatalf("unexpected rooms: %+v", rooms)
	}
}

func TestBackendClientUnauthorizedEndsSession(t *testing.T) {
	client, session := newTestBackend(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	})
	session.Login("tok", "ROLE_USER", "alice")

	loggedOut := false
	session.Subscribe(func(ev SessionEvent) {
		if _, ok := ev.(LoggedOut); ok {
			loggedOut = true
		}
	})

	_, err := client.MyBookings(context.Background())
	if !errors.HasCode(err, errors.ErrCodeUnauthorized) {
		t.Fatalf("expected unauthorized, got %v", err)
	}
	if session.IsAuthenticated() || !loggedOut {
		t.Fatalf("401 must end the session")
	}
}

func TestBackendClientStatusMapping(t *testing.T) {
	tests := []struct {
		status  int
		body    string
		code    errors.ErrorCode
		message string
	}{
		{http.StatusForbidden, ``, errors.ErrCodeForbidden, forbiddenMessage},
		{http.StatusForbidden, `{"message":"admins only"}`, errors.ErrCodeForbidden, "admins only"},
		{http.StatusNotFound, `{"error":"no such room"}`, errors.ErrCodeNotFound, "no such room"},
		{http.StatusConflict, `{"message":"room already booked"}`, errors.ErrCodeConflict, "room already booked"},
		{http.StatusBadRequest, `oops`, errors.ErrCodeValidation, "request rejected by backend"},
		{http.StatusInternalServerError, ``, errors.ErrCodeBackend, "backend returned status 500"},
	}
	for _, tt := range tests {
		client, _ := newTestBackend(t, func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(tt.status)
			io.WriteString(w, tt.body)
		})
		_, err := client.GetRoom(context.Background(), 1)
		appErr := errors.GetAppError(err)
		if appErr == nil || appErr.Code != tt.code || appErr.Message != tt.message {
			t.Fatalf("status %d: got %v, want %s %q", tt.status, err, tt.code, tt.message)
		}
	}
}

func TestBackendClientUnavailable(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	client := NewBackendClient(BackendClientOptions{BaseURL: url})
	if _, err := client.ListRooms(context.Background()); !errors.HasCode(err, errors.ErrCodeBackendUnavailable) {
		t.Fatalf("expected backend unavailable, got %v", err)
	}
}

func TestBackendClientLogin(t *testing.T) {
	client, session := newTestBackend(t, func(w http.ResponseWriter, r *http.Request) {
		var in dto.LoginInput
		if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
			t.Errorf("decode body: %v", err)
		}
		if in.Username == "ghost" {
			io.WriteString(w, `{"role":"ROLE_USER"}`)
			return
		}
		io.WriteString(w, `{"token":"abc","role":"ROLE_ADMIN","username":"`+in.Username+`"}`)
	})

	out, err := client.Login(context.Background(), dto.LoginInput{Username: "root", Password: "pw"})
	if err != nil || out.Token != "abc" || out.Role != "ROLE_ADMIN" {
		t.Fatalf("login: %+v %v", out, err)
	}
	if session.IsAuthenticated() {
		t.Fatalf("Login must not change the session by itself")
	}

	if _, err := client.Login(context.Background(), dto.LoginInput{Username: "ghost", Password: "pw"}); !errors.HasCode(err, errors.ErrCodeMissingToken) {
		t.Fatalf("expected missing token, got %v", err)
	}
}

func TestBackendClientBookingPayloads(t *testing.T) {
	var created map[string]interface{}
	client, _ := newTestBackend(t, func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.Method == http.MethodPost && r.URL.Path == "/api/bookings":
			json.NewDecoder(r.Body).Decode(&created)
			io.WriteString(w, `{"id":5,"room":{"id":1,"roomNumber":"101"},"checkInDate":[2026,3,5],"checkOutDate":"2026-03-07","status":"PENDING","price":3200}`)
		case r.Method == http.MethodGet && r.URL.Path == "/api/rooms/1/availability":
			if got := r.URL.Query().Get("date"); got != "2026-03-05" {
				t.Errorf("date = %q", got)
			}
			io.WriteString(w, `{"roomId":1,"status":"AVAILABLE","available":true,"price":1600}`)
		default:
			t.Errorf("unexpected %s %s", r.Method, r.URL.Path)
		}
	})

	in, _ := models.NewDate(2026, 3, 5)
	out, _ := models.NewDate(2026, 3, 7)
	booking, err := client.CreateBooking(context.Background(), dto.CreateBookingRequest{
		Room:         dto.BookingRoomRef{ID: 1},
		CheckInDate:  in,
		CheckOutDate: out,
		Status:       "PENDING",
	})
	if err != nil {
		t.Fatalf("create booking: %v", err)
	}
	if booking.ID != 5 || booking.DisplayRoomNumber() != "101" || booking.CheckInDate != in {
		t.Fatalf("unexpected booking: %+v", booking)
	}
	if created["checkInDate"] != "2026-03-05" || created["status"] != "PENDING" {
		t.Fatalf("unexpected request body: %v", created)
	}

	avail, err := client.GetRoomAvailability(context.Background(), 1, in)
	if err != nil || !avail.Available || avail.Price != 1600 {
		t.Fatalf("availability: %+v %v", avail, err)
	}
}
