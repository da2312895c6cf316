package models

import "time"

// Booking records one stay. The stay interval is [CheckInDate, CheckOutDate)
// with CheckInDate < CheckOutDate. Bookings are removed on checkout or
// cancellation; they are never updated.
type Booking struct {
	BookingID    uint32    `json:"bookingId"`
	GuestID      uint32    `json:"guestId"`
	RoomNumber   int64     `json:"roomNumber"`
	BookingDate  time.Time `json:"bookingDate"`
	CheckInDate  time.Time `json:"checkInDate"`
	CheckOutDate time.Time `json:"checkOutDate"`
	TotalAmount  float64   `json:"totalAmount"`
}
