package controllers

import (
	"hotel-client/services"
	"hotel-client/services/logger"
	"hotel-client/services/notification"

	"github.com/olahol/melody"
)

// LiveController greets each new WebSocket with the current rooms; later
// changes reach it through the room broadcaster.
type LiveController struct {
	melody *melody.Melody
	view   *services.RoomView
	logger logger.Logger
}

func NewLiveController(m *melody.Melody, view *services.RoomView, log logger.Logger) *LiveController {
	if log == nil {
		log = logger.Nop{}
	}
	return &LiveController{melody: m, view: view, logger: log}
}

// Register hooks the controller into melody's connection lifecycle
func (l *LiveController) Register() {
	l.melody.HandleConnect(l.onConnect)
	l.melody.HandleDisconnect(func(s *melody.Session) {
		l.logger.Debug("live client %s disconnected", s.Request.RemoteAddr)
	})
}

func (l *LiveController) onConnect(s *melody.Session) {
	l.logger.Debug("live client %s connected", s.Request.RemoteAddr)

	payload, err := notification.NewRoomsMessage(l.view.Snapshot()).Build()
	if err != nil {
		l.logger.Error("live: cannot encode snapshot: %v", err)
		return
	}
	if err := s.Write(payload); err != nil {
		l.logger.Error("live: cannot send snapshot: %v", err)
	}
}
