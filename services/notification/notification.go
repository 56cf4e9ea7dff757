package notification

import (
	"fmt"

	"hotel-client/dto"
	"hotel-client/models"
	"hotel-client/services"
	"hotel-client/services/logger"

	json "github.com/goccy/go-json"
	"github.com/olahol/melody"
)

type Service interface {
	SendMessage(message []byte) error
}

// MelodyService broadcasts to every connected WebSocket
type MelodyService struct {
	m *melody.Melody
}

func NewMelodyService(m *melody.Melody) *MelodyService {
	return &MelodyService{m: m}
}

func (s *MelodyService) SendMessage(message []byte) error {
	if s.m == nil {
		return fmt.Errorf("melody instance is nil")
	}
	return s.m.Broadcast(message)
}

// MessageBuilder builds one live frame for the room screen
type MessageBuilder struct {
	msg interface{}
}

// NewRoomsMessage is a full collection frame
func NewRoomsMessage(rooms []*models.Room) *MessageBuilder {
	return &MessageBuilder{msg: dto.RoomsMessage{Type: dto.LiveTypeRooms, Rooms: services.NewRoomResponses(rooms)}}
}

// NewRoomMessage is a single room frame
func NewRoomMessage(room *models.Room) *MessageBuilder {
	return &MessageBuilder{msg: dto.RoomMessage{Type: dto.LiveTypeRoom, Room: services.NewRoomResponse(room)}}
}

func (b *MessageBuilder) Build() ([]byte, error) {
	return json.Marshal(b.msg)
}

// RoomBroadcaster pushes room view changes to the live clients
type RoomBroadcaster struct {
	svc    Service
	logger logger.Logger
}

func NewRoomBroadcaster(svc Service, log logger.Logger) *RoomBroadcaster {
	if log == nil {
		log = logger.Nop{}
	}
	return &RoomBroadcaster{svc: svc, logger: log}
}

func (b *RoomBroadcaster) OnRoomsReplaced(rooms []*models.Room) {
	b.send(NewRoomsMessage(rooms))
}

func (b *RoomBroadcaster) OnRoomUpdated(room *models.Room) {
	b.send(NewRoomMessage(room))
}

func (b *RoomBroadcaster) send(builder *MessageBuilder) {
	payload, err := builder.Build()
	if err != nil {
		b.logger.Error("live: cannot encode message: %v", err)
		return
	}
	if err := b.svc.SendMessage(payload); err != nil {
		b.logger.Error("live: broadcast failed: %v", err)
	}
}
