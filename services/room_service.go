package services

import (
	"time"

	"hotel-ledger/models"
	"hotel-ledger/store"
	"hotel-ledger/utils"
)

// RoomService handles the room collection. Rooms are add-only in normal
// operation.
type RoomService struct {
	store *store.Store
}

func NewRoomService(st *store.Store) *RoomService {
	return &RoomService{store: st}
}

// Create adds a room, rejecting a room number already in use.
func (s *RoomService) Create(room models.Room) error {
	s.store.Lock()
	defer s.store.Unlock()

	if _, exists := s.store.RoomByNumber(room.RoomNumber); exists {
		return models.DuplicateKeyf("room %d already exists", room.RoomNumber)
	}
	s.store.AddRoom(room)
	return nil
}

// GetByNumber returns a single room.
func (s *RoomService) GetByNumber(roomNumber int64) (models.Room, error) {
	s.store.Lock()
	defer s.store.Unlock()

	room, ok := s.store.RoomByNumber(roomNumber)
	if !ok {
		return models.Room{}, models.NotFoundf("room %d not found", roomNumber)
	}
	return room, nil
}

// List returns every room.
func (s *RoomService) List() []models.Room {
	s.store.Lock()
	defer s.store.Unlock()
	return s.store.Rooms()
}

// FindAvailable returns the numbers of rooms of the requested type available
// for the candidate stay. An empty result means no availability.
func (s *RoomService) FindAvailable(roomType string, checkIn, checkOut time.Time) ([]int64, error) {
	if !checkIn.Before(checkOut) {
		return nil, models.InvalidDateRangef(
			"check-in %s must be before check-out %s", utils.FormatDate(checkIn), utils.FormatDate(checkOut))
	}

	s.store.Lock()
	defer s.store.Unlock()
	return FindAvailableRooms(roomType, checkIn, checkOut, s.store.Rooms(), s.store.Bookings()), nil
}
