package jobs

import (
	"context"
	"time"

	"hotel-client/services/logger"

	"github.com/robfig/cron/v3"
)

const refreshTimeout = 30 * time.Second

// RoomRefresher reloads the whole room collection
type RoomRefresher interface {
	Refresh(ctx context.Context) error
}

// SessionChecker reports whether anyone is logged in
type SessionChecker interface {
	IsAuthenticated() bool
}

// InitCronJobs schedules the periodic room refresh and starts the
// scheduler. An empty spec leaves the job out.
func InitCronJobs(c *cron.Cron, spec string, rooms RoomRefresher, session SessionChecker, log logger.Logger) error {
	if spec != "" {
		if _, err := c.AddFunc(spec, RefreshRoomsJob(rooms, session, log)); err != nil {
			return err
		}
		log.Info("room refresh scheduled: %s", spec)
	}

	c.Start()
	log.Info("Cron jobs initialized successfully")
	return nil
}

// RefreshRoomsJob replaces the collection with a fresh fetch. It does
// nothing while logged out.
func RefreshRoomsJob(rooms RoomRefresher, session SessionChecker, log logger.Logger) func() {
	return func() {
		if session != nil && !session.IsAuthenticated() {
			log.Debug("room refresh skipped: not logged in")
			return
		}

		ctx, cancel := context.WithTimeout(context.Background(), refreshTimeout)
		defer cancel()

		start := time.Now()
		if err := rooms.Refresh(ctx); err != nil {
			log.Error("room refresh failed: %v", err)
			return
		}
		log.Debug("room refresh done in %v", time.Since(start))
	}
}
