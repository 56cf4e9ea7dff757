package services

import (
	"context"
	"sync"
	"time"

	"hotel-client/errors"
	"hotel-client/models"
	"hotel-client/services/logger"
)

// RoomObserver is notified after the room collection changes. It plays the
// part of the render layer.
type RoomObserver interface {
	OnRoomsReplaced(rooms []*models.Room)
	OnRoomUpdated(room *models.Room)
}

// RoomFetcher loads the full room collection
type RoomFetcher interface {
	ListRooms(ctx context.Context) ([]*models.Room, error)
}

type RoomViewOptions struct {
	Fetcher RoomFetcher
	Session *Session
	Cache   RoomCache
	Logger  logger.Logger
}

// RoomView owns the client's room collection. A fetch replaces the whole
// collection; availability events are reconciled into it one at a time.
type RoomView struct {
	mu    sync.RWMutex
	rooms []*models.Room

	// held from a change until its observers have run, so they see
	// changes in the order they were made
	notifyMu sync.Mutex

	obsMu     sync.RWMutex
	observers map[int]RoomObserver
	nextObsID int

	fetcher RoomFetcher
	session *Session
	cache   RoomCache
	logger  logger.Logger
}

func NewRoomView(opts RoomViewOptions) *RoomView {
	log := opts.Logger
	if log == nil {
		log = logger.Nop{}
	}
	v := &RoomView{
		observers: make(map[int]RoomObserver),
		fetcher:   opts.Fetcher,
		session:   opts.Session,
		cache:     opts.Cache,
		logger:    log,
	}
	if v.session != nil {
		v.session.Subscribe(func(ev SessionEvent) {
			if out, ok := ev.(LoggedOut); ok {
				v.Clear()
				v.dropSnapshot(out.Username)
			}
		})
	}
	return v
}

// Snapshot returns the current collection. The slice and its rooms are
// shared and must not be modified.
func (v *RoomView) Snapshot() []*models.Room {
	v.mu.RLock()
	defer v.mu.RUnlock()
	return v.rooms
}

// Room looks a room up by ID
func (v *RoomView) Room(id int64) (*models.Room, bool) {
	v.mu.RLock()
	defer v.mu.RUnlock()
	for _, r := range v.rooms {
		if r != nil && r.ID == id {
			return r, true
		}
	}
	return nil, false
}

// Replace swaps in a freshly fetched collection
func (v *RoomView) Replace(rooms []*models.Room) {
	v.replaceIf(rooms, nil)
}

// replaceIf swaps in rooms when keep, checked under the lock, allows it
func (v *RoomView) replaceIf(rooms []*models.Room, keep func(current []*models.Room) bool) bool {
	v.notifyMu.Lock()
	defer v.notifyMu.Unlock()

	v.mu.Lock()
	if keep != nil && !keep(v.rooms) {
		v.mu.Unlock()
		return false
	}
	v.rooms = rooms
	v.mu.Unlock()

	v.logger.Debug("room view: replaced with %d rooms", len(rooms))
	for _, obs := range v.observerList() {
		obs.OnRoomsReplaced(rooms)
	}
	return true
}

// Clear drops the collection, e.g. on logout
func (v *RoomView) Clear() {
	v.Replace(nil)
}

// Apply reconciles one availability event. It reports whether a room was
// updated; events for rooms not in the collection are ignored.
func (v *RoomView) Apply(ev models.AvailabilityEvent) bool {
	v.notifyMu.Lock()
	defer v.notifyMu.Unlock()

	v.mu.Lock()
	before := v.rooms
	after := Reconcile(before, ev)
	if len(before) == 0 || &after[0] == &before[0] {
		v.mu.Unlock()
		v.logger.Debug("room view: no room %d, event ignored", ev.RoomID)
		return false
	}
	v.rooms = after
	v.mu.Unlock()

	var updated []*models.Room
	for i := range after {
		if after[i] != before[i] {
			updated = append(updated, after[i])
		}
	}

	observers := v.observerList()
	for _, room := range updated {
		for _, obs := range observers {
			obs.OnRoomUpdated(room)
		}
	}
	return true
}

// Subscribe registers an observer and returns a func that removes it
func (v *RoomView) Subscribe(obs RoomObserver) func() {
	v.obsMu.Lock()
	id := v.nextObsID
	v.nextObsID++
	v.observers[id] = obs
	v.obsMu.Unlock()

	return func() {
		v.obsMu.Lock()
		delete(v.observers, id)
		v.obsMu.Unlock()
	}
}

func (v *RoomView) observerList() []RoomObserver {
	v.obsMu.RLock()
	defer v.obsMu.RUnlock()
	list := make([]RoomObserver, 0, len(v.observers))
	for _, obs := range v.observers {
		list = append(list, obs)
	}
	return list
}

// Refresh fetches the room list and replaces the collection. On failure
// the current collection is kept. A fetch that outlives the session it
// started under is discarded.
func (v *RoomView) Refresh(ctx context.Context) error {
	if v.session != nil && !v.session.IsAuthenticated() {
		return errors.NewAppError(errors.ErrCodeUnauthorized, "login required", errors.ErrNotLoggedIn)
	}
	if v.fetcher == nil {
		return errors.NewAppError(errors.ErrCodeBackendUnavailable, "no room source configured", nil)
	}

	var username string
	var gen uint64
	if v.session != nil {
		username, gen = v.session.Identity()
	}

	rooms, err := v.fetcher.ListRooms(ctx)
	if err != nil {
		v.logger.Error("room view: refresh failed: %v", err)
		return err
	}

	stored := v.replaceIf(rooms, func([]*models.Room) bool {
		return v.session == nil || v.session.Current(gen)
	})
	if !stored {
		v.logger.Info("room view: session changed during refresh, %d rooms discarded", len(rooms))
		return errors.NewAppError(errors.ErrCodeUnauthorized, "session changed during refresh", errors.ErrNotLoggedIn)
	}
	v.logger.Info("room view: loaded %d rooms", len(rooms))

	if v.cache != nil && username != "" {
		if err := v.cache.Save(ctx, username, rooms); err != nil {
			v.logger.Error("room view: cannot cache snapshot: %v", err)
		}
	}
	return nil
}

// Warm loads the cached snapshot into an empty view. It reports whether
// anything was loaded.
func (v *RoomView) Warm(ctx context.Context) bool {
	if v.cache == nil || v.session == nil || !v.session.IsAuthenticated() {
		return false
	}
	if len(v.Snapshot()) > 0 {
		return false
	}

	username, gen := v.session.Identity()
	rooms, found, err := v.cache.Load(ctx, username)
	if err != nil {
		v.logger.Error("room view: cannot read cached snapshot: %v", err)
		return false
	}
	if !found {
		return false
	}

	// a fetch may have won the race, or the user may have logged out
	warmed := v.replaceIf(rooms, func(current []*models.Room) bool {
		return len(current) == 0 && v.session.Current(gen)
	})
	if warmed {
		v.logger.Info("room view: warmed with %d cached rooms", len(rooms))
	}
	return warmed
}

func (v *RoomView) dropSnapshot(username string) {
	if v.cache == nil || username == "" {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := v.cache.Clear(ctx, username); err != nil {
		v.logger.Error("room view: cannot clear cached snapshot: %v", err)
	}
}
