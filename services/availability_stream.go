package services

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"sync"
	"sync/atomic"

	"hotel-client/dto"
	"hotel-client/errors"
	"hotel-client/models"
	"hotel-client/services/logger"
	"hotel-client/validator"

	json "github.com/goccy/go-json"
)

const (
	AvailabilityStreamPath = "/api/rooms/availability/stream"

	maxFrameSize = 1 << 20
)

// EventSink receives validated availability events in arrival order
type EventSink interface {
	Apply(ev models.AvailabilityEvent) bool
}

type AvailabilityStreamOptions struct {
	URL        string
	HTTPClient *http.Client
	Sink       EventSink
	Logger     logger.Logger
}

// StreamStats counts what the stream has seen since it was created
type StreamStats struct {
	Received int64 `json:"received"`
	Applied  int64 `json:"applied"`
	Ignored  int64 `json:"ignored"`
	Dropped  int64 `json:"dropped"`
}

// AvailabilityStream reads the backend's server-sent availability events.
// Malformed messages are logged and dropped. When the connection fails or
// ends the stream stops; it is not reopened automatically.
type AvailabilityStream struct {
	url    string
	http   *http.Client
	sink   EventSink
	logger logger.Logger

	mu      sync.Mutex
	running bool

	received atomic.Int64
	applied  atomic.Int64
	ignored  atomic.Int64
	dropped  atomic.Int64
}

func NewAvailabilityStream(opts AvailabilityStreamOptions) *AvailabilityStream {
	httpClient := opts.HTTPClient
	if httpClient == nil {
		// no timeout: the response body stays open for the stream's lifetime
		httpClient = &http.Client{}
	}
	log := opts.Logger
	if log == nil {
		log = logger.Nop{}
	}
	return &AvailabilityStream{
		url:    opts.URL,
		http:   httpClient,
		sink:   opts.Sink,
		logger: log,
	}
}

// Running reports whether the stream is connected or connecting
func (s *AvailabilityStream) Running() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.running
}

func (s *AvailabilityStream) Stats() StreamStats {
	return StreamStats{
		Received: s.received.Load(),
		Applied:  s.applied.Load(),
		Ignored:  s.ignored.Load(),
		Dropped:  s.dropped.Load(),
	}
}

// Start runs the stream in a goroutine unless it is already running. It
// reports whether a new stream was started.
func (s *AvailabilityStream) Start(ctx context.Context) bool {
	s.mu.Lock()
	if s.running {
		s.mu.Unlock()
		return false
	}
	s.running = true
	s.mu.Unlock()

	go func() {
		if err := s.run(ctx); err != nil && ctx.Err() == nil {
			s.logger.Error("availability stream closed: %v", err)
		}
	}()
	return true
}

// Run connects and blocks until the stream ends or ctx is cancelled
func (s *AvailabilityStream) Run(ctx context.Context) error {
	s.mu.Lock()
	if s.running {
		s.mu.Unlock()
		return errors.NewAppError(errors.ErrCodeInvalidOperation, "availability stream already running", nil)
	}
	s.running = true
	s.mu.Unlock()

	return s.run(ctx)
}

func (s *AvailabilityStream) run(ctx context.Context) error {
	defer func() {
		s.mu.Lock()
		s.running = false
		s.mu.Unlock()
	}()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.url, nil)
	if err != nil {
		return errors.NewAppError(errors.ErrCodeStreamClosed, "cannot build stream request", err)
	}
	req.Header.Set("Accept", "text/event-stream")
	req.Header.Set("Cache-Control", "no-cache")

	resp, err := s.http.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		return errors.NewAppError(errors.ErrCodeStreamClosed, "cannot open availability stream", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return errors.NewAppError(errors.ErrCodeStreamClosed, fmt.Sprintf("availability stream returned status %d", resp.StatusCode), nil)
	}

	s.logger.Info("availability stream connected to %s", s.url)
	err = readEventStream(resp.Body, s.handleFrame)
	if ctx.Err() != nil {
		return ctx.Err()
	}
	if err == nil {
		err = io.EOF
	}
	return errors.NewAppError(errors.ErrCodeStreamClosed, "availability stream ended", err)
}

func (s *AvailabilityStream) handleFrame(data string) {
	s.received.Add(1)

	var payload dto.AvailabilityPayload
	if err := json.Unmarshal([]byte(data), &payload); err != nil {
		s.dropped.Add(1)
		s.logger.Error("invalid availability message dropped: %v", err)
		return
	}
	if err := validator.ValidateAvailabilityPayload(&payload); err != nil {
		s.dropped.Add(1)
		s.logger.Error("invalid availability message dropped: %v", err)
		return
	}

	if s.sink != nil && s.sink.Apply(payload.Event()) {
		s.applied.Add(1)
		return
	}
	s.ignored.Add(1)
}

// readEventStream splits a text/event-stream body into message data and
// calls fn for each message. Multiple data lines are joined with "\n";
// comments and the event, id and retry fields are skipped.
func readEventStream(r io.Reader, fn func(data string)) error {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 4096), maxFrameSize)

	var data []string
	for scanner.Scan() {
		line := strings.TrimSuffix(scanner.Text(), "\r")

		if line == "" {
			if len(data) > 0 {
				fn(strings.Join(data, "\n"))
				data = data[:0]
			}
			continue
		}
		if strings.HasPrefix(line, ":") {
			continue
		}

		field, value, found := strings.Cut(line, ":")
		if !found {
			value = ""
		}
		value = strings.TrimPrefix(value, " ")

		if field == "data" {
			data = append(data, value)
		}
	}
	if err := scanner.Err(); err != nil {
		return err
	}
	// the connection dropped mid-message; the partial frame is discarded
	return nil
}
