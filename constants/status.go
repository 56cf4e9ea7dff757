package constants

// Room status
const (
	RoomStatusAvailable        = "AVAILABLE"
	RoomStatusUnavailable      = "UNAVAILABLE"
	RoomStatusBooked           = "BOOKED"
	RoomStatusOccupied         = "OCCUPIED"
	RoomStatusUnderMaintenance = "UNDER_MAINTENANCE"
)

// RoomStatuses lists every status the backend is known to send
var RoomStatuses = []string{
	RoomStatusAvailable,
	RoomStatusUnavailable,
	RoomStatusBooked,
	RoomStatusOccupied,
	RoomStatusUnderMaintenance,
}

// Room types
const (
	RoomTypeSingle = "SINGLE"
	RoomTypeDouble = "DOUBLE"
	RoomTypeSuite  = "SUITE"
)

var RoomTypes = []string{RoomTypeSingle, RoomTypeDouble, RoomTypeSuite}

// Booking status
const (
	BookingStatusPending   = "PENDING"
	BookingStatusConfirmed = "CONFIRMED"
	BookingStatusCancelled = "CANCELLED"
)

// Roles
const (
	RoleUser  = "ROLE_USER"
	RoleAdmin = "ROLE_ADMIN"
)
