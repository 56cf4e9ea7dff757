package response

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"hotel-client/errors"

	"github.com/gin-gonic/gin"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func TestFromError(t *testing.T) {
	tests := []struct {
		err    error
		status int
	}{
		{errors.NewAppError(errors.ErrCodeUnauthorized, "login required", nil), http.StatusUnauthorized},
		{errors.NewAppError(errors.ErrCodeForbidden, "admins only", nil), http.StatusForbidden},
		{errors.NewAppError(errors.ErrCodeRoomNotFound, "room 9 not found", nil), http.StatusNotFound},
		{errors.NewAppError(errors.ErrCodeConflict, "room already booked", nil), http.StatusConflict},
		{errors.NewAppError(errors.ErrCodeInvalidDate, "check-out must be after check-in", nil), http.StatusBadRequest},
		{errors.NewAppError(errors.ErrCodeBackendUnavailable, "backend is not responding", nil), http.StatusServiceUnavailable},
		{errors.NewAppError(errors.ErrCodeBackend, "backend returned status 500", nil), http.StatusBadGateway},
		{fmt.Errorf("wrapped: %w", errors.NewAppError(errors.ErrCodeNotFound, "gone", nil)), http.StatusNotFound},
		{fmt.Errorf("plain"), http.StatusInternalServerError},
	}
	for _, tt := range tests {
		w := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(w)
		FromError(c, tt.err)

		if w.Code != tt.status {
			t.Fatalf("%v: status %d, want %d", tt.err, w.Code, tt.status)
		}
		var body Response
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("decode: %v", err)
		}
		if body.Code != 0 || body.Mess == "" {
			t.Fatalf("unexpected body %+v", body)
		}
		if appErr := errors.GetAppError(tt.err); appErr != nil && body.Mess != appErr.Message {
			t.Fatalf("message %q, want %q", body.Mess, appErr.Message)
		}
	}
}
