package dto

import "hotel-client/models"

// RoomRequest is the admin payload for creating or updating a room
type RoomRequest struct {
	RoomNumber  string   `json:"roomNumber"`
	Type        string   `json:"type"`
	Price       *float64 `json:"price,omitempty"`
	BasePrice   *float64 `json:"basePrice,omitempty"`
	Description string   `json:"description"`
	Available   *bool    `json:"available,omitempty"`
	Status      string   `json:"status,omitempty"`
}

// RoomResponse is a room plus the values derived for display
type RoomResponse struct {
	*models.Room
	EffectiveStatus string              `json:"effectiveStatus"`
	Pricing         models.PriceDisplay `json:"pricing"`
}

// RoomAvailability is the backend's per-date availability answer
type RoomAvailability struct {
	RoomID     int64   `json:"roomId"`
	RoomNumber string  `json:"roomNumber"`
	Status     string  `json:"status"`
	Available  bool    `json:"available"`
	Price      float64 `json:"price"`
}

// AvailabilityPayload is an availability event as it arrives on the wire.
// Pointers let validation tell a missing field from a zero value.
type AvailabilityPayload struct {
	RoomID     *int64   `json:"roomId" validate:"required,gt=0"`
	RoomNumber string   `json:"roomNumber"`
	Price      *float64 `json:"price" validate:"required,gte=0"`
	Available  *bool    `json:"available" validate:"required"`
	Status     string   `json:"status"`
}

// Event converts a validated payload
func (p *AvailabilityPayload) Event() models.AvailabilityEvent {
	return models.AvailabilityEvent{
		RoomID:     *p.RoomID,
		RoomNumber: p.RoomNumber,
		Price:      *p.Price,
		Available:  *p.Available,
		Status:     p.Status,
	}
}
