package services

import (
	"hotel-client/dto"
	"hotel-client/models"
)

// NewRoomResponse adds the derived display values to a room
func NewRoomResponse(room *models.Room) dto.RoomResponse {
	return dto.RoomResponse{
		Room:            room,
		EffectiveStatus: room.EffectiveStatus(),
		Pricing:         DerivePricing(room),
	}
}

func NewRoomResponses(rooms []*models.Room) []dto.RoomResponse {
	out := make([]dto.RoomResponse, 0, len(rooms))
	for _, r := range rooms {
		if r == nil {
			continue
		}
		out = append(out, NewRoomResponse(r))
	}
	return out
}
