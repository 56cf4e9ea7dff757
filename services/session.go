package services

import (
	"sync"

	"hotel-client/constants"
	"hotel-client/services/logger"
)

// SessionEvent is published whenever the login state changes. The
// variants are LoggedIn and LoggedOut.
type SessionEvent interface {
	sessionEvent()
}

// LoggedIn is published after a successful login
type LoggedIn struct {
	Token    string
	Role     string
	Username string
}

// LoggedOut is published when the session ends, including a 401 from the backend
type LoggedOut struct {
	Username string
}

func (LoggedIn) sessionEvent()  {}
func (LoggedOut) sessionEvent() {}

// SessionObserver receives session events. It is called synchronously,
// outside the session lock.
type SessionObserver func(SessionEvent)

// Session is the client's authentication state
type Session struct {
	mu        sync.RWMutex
	token     string
	role      string
	username  string
	gen       uint64
	observers map[int]SessionObserver
	nextID    int
	logger    logger.Logger
}

func NewSession(log logger.Logger) *Session {
	if log == nil {
		log = logger.Nop{}
	}
	return &Session{
		observers: make(map[int]SessionObserver),
		logger:    log,
	}
}

// Login stores the credentials and notifies observers. An empty role is
// read from the token claims.
func (s *Session) Login(token, role, username string) {
	if role == "" || username == "" {
		if claims, err := ParseTokenClaims(token); err == nil {
			if role == "" {
				role = claims.Role
			}
			if username == "" {
				username = claims.Subject
			}
		} else {
			s.logger.Debug("cannot read token claims: %v", err)
		}
	}

	s.mu.Lock()
	s.token = token
	s.role = role
	s.username = username
	s.gen++
	s.mu.Unlock()

	s.logger.Info("session: logged in as %q (%s)", username, role)
	s.publish(LoggedIn{Token: token, Role: role, Username: username})
}

// Logout clears the session. Observers are only notified when a session
// was actually active.
func (s *Session) Logout() {
	s.mu.Lock()
	wasActive := s.token != ""
	username := s.username
	s.token, s.role, s.username = "", "", ""
	if wasActive {
		s.gen++
	}
	s.mu.Unlock()

	if !wasActive {
		return
	}
	s.logger.Info("session: logged out")
	s.publish(LoggedOut{Username: username})
}

func (s *Session) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token
}

func (s *Session) Role() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.role
}

func (s *Session) Username() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.username
}

// Identity returns the username and a generation that changes on every
// login and logout.
func (s *Session) Identity() (string, uint64) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.username, s.gen
}

// Current reports whether the session is still the one Identity returned gen for
func (s *Session) Current(gen uint64) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token != "" && s.gen == gen
}

func (s *Session) IsAuthenticated() bool {
	return s.Token() != ""
}

func (s *Session) IsAdmin() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token != "" && s.role == constants.RoleAdmin
}

// Subscribe registers an observer and returns a func that removes it
func (s *Session) Subscribe(fn SessionObserver) func() {
	s.mu.Lock()
	id := s.nextID
	s.nextID++
	s.observers[id] = fn
	s.mu.Unlock()

	return func() {
		s.mu.Lock()
		delete(s.observers, id)
		s.mu.Unlock()
	}
}

func (s *Session) publish(ev SessionEvent) {
	s.mu.RLock()
	observers := make([]SessionObserver, 0, len(s.observers))
	for _, fn := range s.observers {
		observers = append(observers, fn)
	}
	s.mu.RUnlock()

	for _, fn := range observers {
		fn(ev)
	}
}
