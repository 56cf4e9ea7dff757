package services

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"hotel-client/dto"
	"hotel-client/errors"
	"hotel-client/models"
	"hotel-client/services/logger"

	json "github.com/goccy/go-json"
)

const (
	DefaultBackendURL     = "http://localhost:8080"
	DefaultBackendTimeout = 15 * time.Second

	forbiddenMessage = "You do not have permission to perform this action."
)

type requestIDKey struct{}

// WithRequestID attaches a request ID that is forwarded to the backend
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey{}, id)
}

// RequestIDFrom returns the request ID in ctx, or ""
func RequestIDFrom(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey{}).(string)
	return id
}

type BackendClientOptions struct {
	BaseURL    string
	Timeout    time.Duration
	HTTPClient *http.Client
	Session    *Session
	Logger     logger.Logger
}

// BackendClient calls the hotel REST API with the session's bearer token.
// A 401 answer ends the session.
type BackendClient struct {
	baseURL string
	http    *http.Client
	session *Session
	logger  logger.Logger
}

func NewBackendClient(opts BackendClientOptions) *BackendClient {
	baseURL := strings.TrimRight(opts.BaseURL, "/")
	if baseURL == "" {
		baseURL = DefaultBackendURL
	}
	httpClient := opts.HTTPClient
	if httpClient == nil {
		timeout := opts.Timeout
		if timeout <= 0 {
			timeout = DefaultBackendTimeout
		}
		httpClient = &http.Client{Timeout: timeout}
	}
	log := opts.Logger
	if log == nil {
		log = logger.Nop{}
	}
	return &BackendClient{
		baseURL: baseURL,
		http:    httpClient,
		session: opts.Session,
		logger:  log,
	}
}

// BaseURL returns the backend root URL without a trailing slash
func (c *BackendClient) BaseURL() string {
	return c.baseURL
}

func (c *BackendClient) newRequest(ctx context.Context, method, path string, body interface{}) (*http.Request, error) {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return nil, errors.NewAppError(errors.ErrCodeInvalidFormat, "cannot encode request", err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrCodeBackend, "cannot build request", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")
	if c.session != nil {
		if token := c.session.Token(); token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
	}
	if id := RequestIDFrom(ctx); id != "" {
		req.Header.Set("X-Request-ID", id)
	}
	return req, nil
}

func (c *BackendClient) do(ctx context.Context, method, path string, body, out interface{}) error {
	req, err := c.newRequest(ctx, method, path, body)
	if err != nil {
		return err
	}

	resp, err := c.http.Do(req)
	if err != nil {
		c.logger.Error("%s %s failed: %v", method, path, err)
		return errors.NewAppError(errors.ErrCodeBackendUnavailable, "backend is not responding", err)
	}
	defer resp.Body.Close()

	c.logger.Debug("%s %s -> %d", method, path, resp.StatusCode)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return c.statusError(resp)
	}

	if out == nil {
		return nil
	}
	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return errors.NewAppError(errors.ErrCodeBackendUnavailable, "cannot read backend response", err)
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return errors.NewAppError(errors.ErrCodeInvalidFormat, "unexpected backend response", err)
	}
	return nil
}

func (c *BackendClient) statusError(resp *http.Response) error {
	data, _ := io.ReadAll(io.LimitReader(resp.Body, 64<<10))
	var msg dto.BackendMessage
	_ = json.Unmarshal(data, &msg)
	message := msg.Message
	if message == "" {
		message = msg.Error
	}

	switch resp.StatusCode {
	case http.StatusUnauthorized:
		if c.session != nil {
			c.session.Logout()
		}
		if message == "" {
			message = "authentication required"
		}
		return errors.NewAppError(errors.ErrCodeUnauthorized, message, nil)
	case http.StatusForbidden:
		if message == "" {
			message = forbiddenMessage
		}
		return errors.NewAppError(errors.ErrCodeForbidden, message, nil)
	case http.StatusNotFound:
		if message == "" {
			message = "not found"
		}
		return errors.NewAppError(errors.ErrCodeNotFound, message, nil)
	case http.StatusConflict:
		if message == "" {
			message = "conflicting update"
		}
		return errors.NewAppError(errors.ErrCodeConflict, message, nil)
	case http.StatusBadRequest:
		if message == "" {
			message = "request rejected by backend"
		}
		return errors.NewAppError(errors.ErrCodeValidation, message, nil)
	}

	if message == "" {
		message = fmt.Sprintf("backend returned status %d", resp.StatusCode)
	}
	return errors.NewAppError(errors.ErrCodeBackend, message, nil)
}

// Login exchanges credentials for a token. It does not touch the session;
// the caller decides when to publish LoggedIn.
func (c *BackendClient) Login(ctx context.Context, input dto.LoginInput) (*dto.LoginResponse, error) {
	var out dto.LoginResponse
	if err := c.do(ctx, http.MethodPost, "/api/auth/login", input, &out); err != nil {
		return nil, err
	}
	if out.Token == "" {
		return nil, errors.NewAppError(errors.ErrCodeMissingToken, "no authentication token received", nil)
	}
	return &out, nil
}

func (c *BackendClient) Register(ctx context.Context, input dto.RegisterInput) (*dto.RegisterResponse, error) {
	var out dto.RegisterResponse
	if err := c.do(ctx, http.MethodPost, "/api/auth/register", input, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *BackendClient) ListRooms(ctx context.Context) ([]*models.Room, error) {
	var rooms []*models.Room
	if err := c.do(ctx, http.MethodGet, "/api/rooms", nil, &rooms); err != nil {
		return nil, err
	}
	return rooms, nil
}

func (c *BackendClient) GetRoom(ctx context.Context, id int64) (*models.Room, error) {
	var room models.Room
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/api/rooms/%d", id), nil, &room); err != nil {
		return nil, err
	}
	return &room, nil
}

// GetRoomAvailability asks for the price and availability of a room on a
// date; a zero date means today.
func (c *BackendClient) GetRoomAvailability(ctx context.Context, id int64, date models.Date) (*dto.RoomAvailability, error) {
	path := fmt.Sprintf("/api/rooms/%d/availability", id)
	if !date.IsZero() {
		path += "?" + url.Values{"date": {date.String()}}.Encode()
	}
	var out dto.RoomAvailability
	if err := c.do(ctx, http.MethodGet, path, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *BackendClient) CreateRoom(ctx context.Context, input dto.RoomRequest) (*models.Room, error) {
	var room models.Room
	if err := c.do(ctx, http.MethodPost, "/api/rooms", input, &room); err != nil {
		return nil, err
	}
	return &room, nil
}

func (c *BackendClient) UpdateRoom(ctx context.Context, id int64, input dto.RoomRequest) (*models.Room, error) {
	var room models.Room
	if err := c.do(ctx, http.MethodPut, fmt.Sprintf("/api/rooms/%d", id), input, &room); err != nil {
		return nil, err
	}
	return &room, nil
}

func (c *BackendClient) DeleteRoom(ctx context.Context, id int64) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/api/rooms/%d", id), nil, nil)
}

func (c *BackendClient) CreateBooking(ctx context.Context, input dto.CreateBookingRequest) (*models.Booking, error) {
	var booking models.Booking
	if err := c.do(ctx, http.MethodPost, "/api/bookings", input, &booking); err != nil {
		return nil, err
	}
	return &booking, nil
}

func (c *BackendClient) MyBookings(ctx context.Context) ([]*models.Booking, error) {
	var bookings []*models.Booking
	if err := c.do(ctx, http.MethodGet, "/api/bookings/my-bookings", nil, &bookings); err != nil {
		return nil, err
	}
	return bookings, nil
}

func (c *BackendClient) ListBookings(ctx context.Context) ([]*models.Booking, error) {
	var bookings []*models.Booking
	if err := c.do(ctx, http.MethodGet, "/api/bookings", nil, &bookings); err != nil {
		return nil, err
	}
	return bookings, nil
}

func (c *BackendClient) GetBooking(ctx context.Context, id int64) (*models.Booking, error) {
	var booking models.Booking
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/api/bookings/%d", id), nil, &booking); err != nil {
		return nil, err
	}
	return &booking, nil
}

func (c *BackendClient) UpdateBooking(ctx context.Context, id int64, input dto.BookingUpdateRequest) (*models.Booking, error) {
	var booking models.Booking
	if err := c.do(ctx, http.MethodPut, fmt.Sprintf("/api/bookings/%d", id), input, &booking); err != nil {
		return nil, err
	}
	return &booking, nil
}

func (c *BackendClient) DeleteBooking(ctx context.Context, id int64) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/api/bookings/%d", id), nil, nil)
}
