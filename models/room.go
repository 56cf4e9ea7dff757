package models

import "hotel-client/constants"

// Room is the client's cached copy of a backend room. Price fields and the
// discount are pointers because the backend may omit any of them.
type Room struct {
	ID              int64    `json:"id"`
	RoomNumber      string   `json:"roomNumber"`
	Type            string   `json:"type"`
	Description     string   `json:"description"`
	Available       bool     `json:"available"`
	Status          string   `json:"status,omitempty"`
	BasePrice       *float64 `json:"basePrice,omitempty"`
	CurrentPrice    *float64 `json:"currentPrice,omitempty"`
	Price           *float64 `json:"price,omitempty"`
	DiscountPercent *int     `json:"discountPercent,omitempty"`
	HasPending      bool     `json:"hasPending,omitempty"`
}

// AvailabilityEvent is a server-pushed change to one room
type AvailabilityEvent struct {
	RoomID     int64   `json:"roomId"`
	RoomNumber string  `json:"roomNumber,omitempty"`
	Price      float64 `json:"price"`
	Available  bool    `json:"available"`
	Status     string  `json:"status"`
}

// EffectiveStatus returns Status, or a status derived from Available when
// the backend sent none.
func (r *Room) EffectiveStatus() string {
	if r.Status != "" {
		return r.Status
	}
	if r.Available {
		return constants.RoomStatusAvailable
	}
	return constants.RoomStatusUnavailable
}

// Clone returns a shallow copy with its own pointer fields.
func (r *Room) Clone() *Room {
	c := *r
	c.BasePrice = cloneFloat(r.BasePrice)
	c.CurrentPrice = cloneFloat(r.CurrentPrice)
	c.Price = cloneFloat(r.Price)
	if r.DiscountPercent != nil {
		d := *r.DiscountPercent
		c.DiscountPercent = &d
	}
	return &c
}

func cloneFloat(p *float64) *float64 {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}

// Float returns a pointer to v
func Float(v float64) *float64 { return &v }

// Int returns a pointer to v
func Int(v int) *int { return &v }

// PriceDisplay holds the values a room card shows for its price.
type PriceDisplay struct {
	Base        *float64 `json:"base"`
	Discounted  *float64 `json:"discounted"`
	Discount    int      `json:"discount"`
	HasDiscount bool     `json:"hasDiscount"`
}
