package services

import (
	"time"

	"hotel-ledger/models"
)

// IsRoomAvailable reports whether no existing booking for the room conflicts
// with the candidate stay [checkIn, checkOut).
//
// A conflict exists only when the candidate check-in falls strictly inside an
// existing stay. The candidate check-out is never consulted, so this is
// deliberately not symmetric interval overlap: a candidate whose stay ends
// inside an existing one but starts outside it is reported available. That
// one-sided rule is long-standing behavior that callers and stored data depend
// on.
func IsRoomAvailable(roomNumber int64, checkIn, checkOut time.Time, bookings []models.Booking) bool {
	for _, b := range bookings {
		if b.RoomNumber == roomNumber && checkIn.After(b.CheckInDate) && checkIn.Before(b.CheckOutDate) {
			return false
		}
	}
	return true
}

// FindAvailableRooms filters rooms by exact type match, then by availability.
// The result is empty, never nil, when nothing matches; an empty result is a
// normal terminal outcome for a booking attempt, not an error.
func FindAvailableRooms(roomType string, checkIn, checkOut time.Time, rooms []models.Room, bookings []models.Booking) []int64 {
	available := make([]int64, 0)
	for _, r := range rooms {
		if r.RoomType == roomType && IsRoomAvailable(r.RoomNumber, checkIn, checkOut, bookings) {
			available = append(available, r.RoomNumber)
		}
	}
	return available
}
