package models

// Booking is a reservation as returned by the backend. Older responses nest
// the room and user instead of flattening them, so both shapes decode.
type Booking struct {
	ID                       int64        `json:"id"`
	RoomID                   int64        `json:"roomId,omitempty"`
	RoomNumber               string       `json:"roomNumber,omitempty"`
	RoomType                 string       `json:"roomType,omitempty"`
	Price                    float64      `json:"price"`
	DiscountPercent          float64      `json:"discountPercent"`
	CheckInDate              Date         `json:"checkInDate"`
	CheckOutDate             Date         `json:"checkOutDate"`
	Status                   string       `json:"status"`
	Username                 string       `json:"username,omitempty"`
	CheckInConfirmedByAdmin  bool         `json:"checkInConfirmedByAdmin"`
	CheckOutConfirmedByAdmin bool         `json:"checkOutConfirmedByAdmin"`
	Room                     *BookingRoom `json:"room,omitempty"`
	User                     *BookingUser `json:"user,omitempty"`
}

type BookingRoom struct {
	ID         int64  `json:"id"`
	RoomNumber string `json:"roomNumber,omitempty"`
}

type BookingUser struct {
	Username string `json:"username"`
}

// DisplayRoomNumber prefers the flat field, then the nested room, then "N/A".
func (b *Booking) DisplayRoomNumber() string {
	if b.RoomNumber != "" {
		return b.RoomNumber
	}
	if b.Room != nil && b.Room.RoomNumber != "" {
		return b.Room.RoomNumber
	}
	return "N/A"
}

// DisplayUsername prefers the flat field, then the nested user, then "N/A".
func (b *Booking) DisplayUsername() string {
	if b.Username != "" {
		return b.Username
	}
	if b.User != nil && b.User.Username != "" {
		return b.User.Username
	}
	return "N/A"
}

// DisplayPrice returns the price when positive, nil otherwise.
func (b *Booking) DisplayPrice() *float64 {
	if b.Price > 0 {
		p := b.Price
		return &p
	}
	return nil
}
