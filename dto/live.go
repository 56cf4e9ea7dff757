package dto

// Live message types sent over the WebSocket
const (
	LiveTypeRooms = "rooms"
	LiveTypeRoom  = "room"
)

// RoomsMessage carries the whole room collection
type RoomsMessage struct {
	Type  string         `json:"type"`
	Rooms []RoomResponse `json:"rooms"`
}

// RoomMessage carries one updated room
type RoomMessage struct {
	Type string       `json:"type"`
	Room RoomResponse `json:"room"`
}
