package services

import (
	"testing"
	"time"

	"hotel-client/constants"

	"github.com/dgrijalva/jwt-go"
)

func signedToken(t *testing.T, subject, role string) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":  subject,
		"role": role,
		"exp":  time.Now().Add(time.Hour).Unix(),
	})
	s, err := token.SignedString([]byte("test-secret"))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return s
}

func TestParseTokenClaims(t *testing.T) {
	claims, err := ParseTokenClaims("Bearer " + signedToken(t, "alice", constants.RoleAdmin))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if claims.Subject != "alice" || claims.Role != constants.RoleAdmin || claims.ExpiresAt == 0 {
		t.Fatalf("unexpected claims: %+v", claims)
	}

	if _, err := ParseTokenClaims("not-a-token"); err == nil {
		t.Fatalf("expected error for malformed token")
	}
}

func TestSessionLoginLogoutEvents(t *testing.T) {
	s := NewSession(nil)

	var events []SessionEvent
	unsubscribe := s.Subscribe(func(ev SessionEvent) { events = append(events, ev) })

	s.Login("tok", constants.RoleUser, "bob")
	if !s.IsAuthenticated() || s.IsAdmin() || s.Username() != "bob" {
		t.Fatalf("unexpected state after login: token=%q role=%q", s.Token(), s.Role())
	}

	s.Logout()
	s.Logout()
	if s.IsAuthenticated() || s.Role() != "" {
		t.Fatalf("session not cleared")
	}

	if len(events) != 2 {
		t.Fatalf("expected LoggedIn and one LoggedOut, got %d events", len(events))
	}
	in, ok := events[0].(LoggedIn)
	if !ok || in.Token != "tok" || in.Role != constants.RoleUser || in.Username != "bob" {
		t.Fatalf("unexpected first event: %#v", events[0])
	}
	if _, ok := events[1].(LoggedOut); !ok {
		t.Fatalf("unexpected second event: %#v", events[1])
	}

	unsubscribe()
	s.Login("tok2", constants.RoleUser, "bob")
	if len(events) != 2 {
		t.Fatalf("unsubscribed observer was called")
	}
}

func TestSessionLoginReadsRoleFromToken(t *testing.T) {
	s := NewSession(nil)
	s.Login(signedToken(t, "admin", constants.RoleAdmin), "", "")

	if !s.IsAdmin() {
		t.Fatalf("expected admin role from token, got %q", s.Role())
	}
	if s.Username() != "admin" {
		t.Fatalf("expected username from token subject, got %q", s.Username())
	}
}
