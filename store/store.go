package store

import (
	"sync"

	"hotel-ledger/models"
)

// Store holds the in-memory record collections: rooms, guests, bookings and
// the payment ledger. It owns no business logic; the services mutate it.
//
// None of the accessors lock. Every engine operation spans several reads and
// writes that must be observed as one step, so the owning service takes the
// store lock for the whole operation via Lock/Unlock.
type Store struct {
	mu sync.Mutex

	rooms    []models.Room
	guests   []models.Guest
	bookings []models.Booking
	payments []models.Payment
}

func New() *Store {
	return &Store{}
}

// Lock acquires the store-wide critical section.
func (s *Store) Lock() { s.mu.Lock() }

// Unlock releases the store-wide critical section.
func (s *Store) Unlock() { s.mu.Unlock() }

// Replace swaps the entire record set wholesale, as when reloading the data
// files. Caller must hold the lock.
func (s *Store) Replace(rooms []models.Room, guests []models.Guest, bookings []models.Booking, payments []models.Payment) {
	s.rooms = rooms
	s.guests = guests
	s.bookings = bookings
	s.payments = payments
}

// Rooms returns a copy of the room collection. Caller must hold the lock.
func (s *Store) Rooms() []models.Room {
	out := make([]models.Room, len(s.rooms))
	copy(out, s.rooms)
	return out
}

// Guests returns a copy of the guest collection. Caller must hold the lock.
func (s *Store) Guests() []models.Guest {
	out := make([]models.Guest, len(s.guests))
	copy(out, s.guests)
	return out
}

// Bookings returns a copy of the booking collection. Caller must hold the lock.
func (s *Store) Bookings() []models.Booking {
	out := make([]models.Booking, len(s.bookings))
	copy(out, s.bookings)
	return out
}

// Payments returns a copy of the payment ledger. Caller must hold the lock.
func (s *Store) Payments() []models.Payment {
	out := make([]models.Payment, len(s.payments))
	copy(out, s.payments)
	return out
}

func (s *Store) RoomByNumber(roomNumber int64) (models.Room, bool) {
	for _, r := range s.rooms {
		if r.RoomNumber == roomNumber {
			return r, true
		}
	}
	return models.Room{}, false
}

func (s *Store) GuestByID(guestID uint32) (models.Guest, bool) {
	for _, g := range s.guests {
		if g.GuestID == guestID {
			return g, true
		}
	}
	return models.Guest{}, false
}

func (s *Store) BookingByID(bookingID uint32) (models.Booking, bool) {
	for _, b := range s.bookings {
		if b.BookingID == bookingID {
			return b, true
		}
	}
	return models.Booking{}, false
}

// GuestIDs returns the set of identifiers currently in use across all guests,
// VIP or not. Caller must hold the lock.
func (s *Store) GuestIDs() map[uint32]struct{} {
	ids := make(map[uint32]struct{}, len(s.guests))
	for _, g := range s.guests {
		ids[g.GuestID] = struct{}{}
	}
	return ids
}

// BookingIDs returns the set of booking identifiers currently in use. Caller
// must hold the lock.
func (s *Store) BookingIDs() map[uint32]struct{} {
	ids := make(map[uint32]struct{}, len(s.bookings))
	for _, b := range s.bookings {
		ids[b.BookingID] = struct{}{}
	}
	return ids
}

func (s *Store) AddRoom(r models.Room) {
	s.rooms = append(s.rooms, r)
}

func (s *Store) AddGuest(g models.Guest) {
	s.guests = append(s.guests, g)
}

func (s *Store) AddBooking(b models.Booking) {
	s.bookings = append(s.bookings, b)
}

func (s *Store) AddPayment(p models.Payment) {
	s.payments = append(s.payments, p)
}

// RemoveBooking deletes a booking by ID, reporting whether it was present.
func (s *Store) RemoveBooking(bookingID uint32) bool {
	for i, b := range s.bookings {
		if b.BookingID == bookingID {
			s.bookings = append(s.bookings[:i], s.bookings[i+1:]...)
			return true
		}
	}
	return false
}

// RemoveGuest deletes a guest by ID, reporting whether it was present.
func (s *Store) RemoveGuest(guestID uint32) bool {
	for i, g := range s.guests {
		if g.GuestID == guestID {
			s.guests = append(s.guests[:i], s.guests[i+1:]...)
			return true
		}
	}
	return false
}
