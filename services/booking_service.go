package services

import (
	"math/rand"
	"time"

	"hotel-ledger/models"
	"hotel-ledger/store"
	"hotel-ledger/utils"
)

// BookingService runs every booking-lifecycle operation as a single critical
// section over the record store, so no caller ever observes a partial
// mutation: a booking and its payment appear together or not at all.
type BookingService struct {
	store *store.Store
	rng   *rand.Rand
}

func NewBookingService(st *store.Store, rng *rand.Rand) *BookingService {
	return &BookingService{store: st, rng: rng}
}

// BookingDetail is a booking joined with the guest and room it references, the
// shape the reporting surface works with.
type BookingDetail struct {
	models.Booking
	GuestFirstName string  `json:"guestFirstName"`
	GuestLastName  string  `json:"guestLastName"`
	RoomType       string  `json:"roomType"`
	NightlyRate    float64 `json:"nightlyRate"`
}

// MakeBooking takes one booking attempt from request to commit: validate the
// guest, check the date preconditions, pick a room at random among the
// available candidates of the requested type, price the stay, allocate a
// booking identifier and append the booking together with its payment. Any
// rejection leaves the store untouched.
func (s *BookingService) MakeBooking(roomType string, guestID uint32, checkIn, checkOut time.Time) (models.Booking, error) {
	now := time.Now()

	s.store.Lock()
	defer s.store.Unlock()

	guest, ok := s.store.GuestByID(guestID)
	if !ok {
		return models.Booking{}, models.NotFoundf("guest %d not found", guestID)
	}
	if !checkIn.Before(checkOut) {
		return models.Booking{}, models.InvalidDateRangef(
			"check-in %s must be before check-out %s", utils.FormatDate(checkIn), utils.FormatDate(checkOut))
	}
	if !checkIn.After(now) {
		return models.Booking{}, models.InvalidDateRangef(
			"check-in %s must be in the future", utils.FormatDate(checkIn))
	}

	available := FindAvailableRooms(roomType, checkIn, checkOut, s.store.Rooms(), s.store.Bookings())
	if len(available) == 0 {
		return models.Booking{}, models.NoAvailabilityf(
			"no %s room available from %s to %s", roomType, utils.FormatDate(checkIn), utils.FormatDate(checkOut))
	}

	// Random selection spreads load across equivalent rooms.
	roomNumber := available[s.rng.Intn(len(available))]
	room, _ := s.store.RoomByNumber(roomNumber)

	total := ComputeStayTotal(room.NightlyRate, checkIn, checkOut, guest.VIPActiveAt(checkOut))
	bookingID := AllocateID(s.rng, s.store.BookingIDs())

	booking := models.Booking{
		BookingID:    bookingID,
		GuestID:      guestID,
		RoomNumber:   roomNumber,
		BookingDate:  now,
		CheckInDate:  checkIn,
		CheckOutDate: checkOut,
		TotalAmount:  total,
	}
	s.store.AddBooking(booking)
	s.store.AddPayment(models.Payment{
		Date:    now,
		GuestID: guestID,
		Amount:  total,
		Reason:  models.PayReasonBooking,
	})
	return booking, nil
}

// Checkout removes the booking when now lies strictly inside the stay window.
// Attempts before check-in, after check-out or on the check-out day itself are
// rejected without mutation; the booking's payments stay in the ledger.
func (s *BookingService) Checkout(bookingID uint32) error {
	now := time.Now()

	s.store.Lock()
	defer s.store.Unlock()

	booking, ok := s.store.BookingByID(bookingID)
	if !ok {
		return models.NotFoundf("booking %d not found", bookingID)
	}
	if now.After(booking.CheckOutDate) || now.Before(booking.CheckInDate) {
		return models.InvalidDateRangef(
			"booking %d can only check out between %s and %s",
			bookingID, utils.FormatDate(booking.CheckInDate), utils.FormatDate(booking.CheckOutDate))
	}

	s.store.RemoveBooking(bookingID)
	return nil
}

// Cancel removes the booking unconditionally once located. When more than two
// whole days remain until check-in the full amount is credited back as a
// refund payment; closer cancellations forfeit the amount and no ledger entry
// is written.
func (s *BookingService) Cancel(bookingID uint32) (float64, error) {
	now := time.Now()

	s.store.Lock()
	defer s.store.Unlock()

	booking, ok := s.store.BookingByID(bookingID)
	if !ok {
		return 0, models.NotFoundf("booking %d not found", bookingID)
	}

	refund := ComputeRefund(booking, now)
	if refund != 0 {
		s.store.AddPayment(models.Payment{
			Date:    now,
			GuestID: booking.GuestID,
			Amount:  refund,
			Reason:  models.PayReasonRefund,
		})
	}
	s.store.RemoveBooking(booking.BookingID)
	return refund, nil
}

// RemoveRoom deletes the first booking for the room whose check-out date is
// already in the past. Despite its name it never touches the room collection;
// it is a stale-booking cleanup, kept byte-compatible with the behavior the
// data files were built against.
func (s *BookingService) RemoveRoom(roomNumber int64) error {
	now := time.Now()

	s.store.Lock()
	defer s.store.Unlock()

	for _, b := range s.store.Bookings() {
		if b.RoomNumber == roomNumber && now.After(b.CheckOutDate) {
			s.store.RemoveBooking(b.BookingID)
			return nil
		}
	}
	return models.NotFoundf("no past booking for room %d", roomNumber)
}

// GetByID returns a single booking.
func (s *BookingService) GetByID(bookingID uint32) (models.Booking, error) {
	s.store.Lock()
	defer s.store.Unlock()

	booking, ok := s.store.BookingByID(bookingID)
	if !ok {
		return models.Booking{}, models.NotFoundf("booking %d not found", bookingID)
	}
	return booking, nil
}

// List returns every booking joined with guest and room details.
func (s *BookingService) List() []BookingDetail {
	s.store.Lock()
	defer s.store.Unlock()
	return s.details(s.store.Bookings())
}

// ListOnDate returns bookings whose stay covers the given calendar date.
func (s *BookingService) ListOnDate(date time.Time) []BookingDetail {
	s.store.Lock()
	defer s.store.Unlock()

	matched := make([]models.Booking, 0)
	for _, b := range s.store.Bookings() {
		if !date.Before(b.CheckInDate) && date.Before(b.CheckOutDate) {
			matched = append(matched, b)
		}
	}
	return s.details(matched)
}

// ListForGuest returns the guest's bookings.
func (s *BookingService) ListForGuest(guestID uint32) ([]BookingDetail, error) {
	s.store.Lock()
	defer s.store.Unlock()

	if _, ok := s.store.GuestByID(guestID); !ok {
		return nil, models.NotFoundf("guest %d not found", guestID)
	}
	matched := make([]models.Booking, 0)
	for _, b := range s.store.Bookings() {
		if b.GuestID == guestID {
			matched = append(matched, b)
		}
	}
	return s.details(matched), nil
}

func (s *BookingService) details(bookings []models.Booking) []BookingDetail {
	out := make([]BookingDetail, 0, len(bookings))
	for _, b := range bookings {
		d := BookingDetail{Booking: b}
		if guest, ok := s.store.GuestByID(b.GuestID); ok {
			d.GuestFirstName = guest.FirstName
			d.GuestLastName = guest.LastName
		}
		if room, ok := s.store.RoomByNumber(b.RoomNumber); ok {
			d.RoomType = room.RoomType
			d.NightlyRate = room.NightlyRate
		}
		out = append(out, d)
	}
	return out
}
