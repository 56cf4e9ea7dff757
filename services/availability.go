package services

import (
	"math"

	"hotel-client/models"
)

// BasePrice returns the undiscounted reference price of a room: the first
// positive value among basePrice, currentPrice and price, or 0.
func BasePrice(room *models.Room) float64 {
	for _, p := range []*float64{room.BasePrice, room.CurrentPrice, room.Price} {
		if p != nil && *p > 0 {
			return *p
		}
	}
	return 0
}

// discountPercent expects base > 0. Price increases give 0, never a negative discount.
func discountPercent(base, price float64) int {
	d := int(math.Round((base - price) / base * 100))
	if d < 0 {
		return 0
	}
	return d
}

// Reconcile merges one availability event into a room collection.
//
// The result has the same length and order as rooms. Rooms whose ID does not
// match the event are returned as the same pointers, so observers can skip
// them. When nothing matches, rooms itself is returned. Matching rooms are
// replaced by updated copies; the input rooms are never modified.
func Reconcile(rooms []*models.Room, ev models.AvailabilityEvent) []*models.Room {
	var out []*models.Room
	for i, r := range rooms {
		if r == nil || r.ID != ev.RoomID {
			continue
		}
		if out == nil {
			out = make([]*models.Room, len(rooms))
			copy(out, rooms)
		}
		out[i] = applyEvent(r, ev)
	}
	if out == nil {
		return rooms
	}
	return out
}

func applyEvent(room *models.Room, ev models.AvailabilityEvent) *models.Room {
	updated := room.Clone()

	// basePrice is the anchor for later events and is never touched here.
	if base := BasePrice(room); base > 0 {
		updated.DiscountPercent = models.Int(discountPercent(base, ev.Price))
	}

	updated.Available = ev.Available
	updated.Status = ev.Status
	updated.CurrentPrice = models.Float(ev.Price)
	updated.Price = models.Float(ev.Price)
	return updated
}

// DerivePricing computes what a room card shows for its price. It only reads
// the room.
func DerivePricing(room *models.Room) models.PriceDisplay {
	var out models.PriceDisplay

	base := BasePrice(room)
	if base > 0 {
		out.Base = models.Float(base)
	}

	var discounted float64
	if room.Price != nil && *room.Price > 0 {
		discounted = *room.Price
		out.Discounted = models.Float(discounted)
	}

	switch {
	case room.DiscountPercent != nil:
		out.Discount = *room.DiscountPercent
	case base > 0 && discounted > 0 && base > discounted:
		out.Discount = discountPercent(base, discounted)
	}

	out.HasDiscount = discounted > 0 && base > 0 && discounted < base && out.Discount > 0
	return out
}
