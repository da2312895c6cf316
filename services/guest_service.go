package services

import (
	"math/rand"
	"strings"
	"time"

	"hotel-ledger/models"
	"hotel-ledger/store"
)

// GuestService handles guest enrollment, removal and lookups.
type GuestService struct {
	store *store.Store
	rng   *rand.Rand
}

func NewGuestService(st *store.Store, rng *rand.Rand) *GuestService {
	return &GuestService{store: st, rng: rng}
}

// AddGuest enrolls a new guest with a freshly allocated identifier, unique
// across the whole guest collection. VIP enrollment sets a one-year membership
// starting now and records the flat membership fee in the ledger; the guest
// and the fee are appended as one step.
func (s *GuestService) AddGuest(firstName, lastName string, vip bool) models.Guest {
	now := time.Now()

	s.store.Lock()
	defer s.store.Unlock()

	guest := models.Guest{
		GuestID:   AllocateID(s.rng, s.store.GuestIDs()),
		FirstName: firstName,
		LastName:  lastName,
		JoinDate:  now,
	}
	if vip {
		guest.VIP = &models.VIPMembership{
			StartDate:  now,
			ExpiryDate: now.AddDate(1, 0, 0),
		}
		s.store.AddPayment(models.Payment{
			Date:    now,
			GuestID: guest.GuestID,
			Amount:  VIPMembershipFee,
			Reason:  models.PayReasonVIPMembership,
		})
	}
	s.store.AddGuest(guest)
	return guest
}

// RemoveGuest deletes the guest record, allowed only when some booking of
// theirs has a check-out date already in the past. Bookings and payments are
// left untouched.
func (s *GuestService) RemoveGuest(guestID uint32) error {
	now := time.Now()

	s.store.Lock()
	defer s.store.Unlock()

	if _, ok := s.store.GuestByID(guestID); !ok {
		return models.NotFoundf("guest %d not found", guestID)
	}
	for _, b := range s.store.Bookings() {
		if b.GuestID == guestID && now.After(b.CheckOutDate) {
			s.store.RemoveGuest(guestID)
			return nil
		}
	}
	return models.NotFoundf("guest %d has no completed stay", guestID)
}

// GetByID returns a single guest.
func (s *GuestService) GetByID(guestID uint32) (models.Guest, error) {
	s.store.Lock()
	defer s.store.Unlock()

	guest, ok := s.store.GuestByID(guestID)
	if !ok {
		return models.Guest{}, models.NotFoundf("guest %d not found", guestID)
	}
	return guest, nil
}

// Search matches guests by case-insensitive exact first and last name.
func (s *GuestService) Search(firstName, lastName string) []models.Guest {
	s.store.Lock()
	defer s.store.Unlock()

	matched := make([]models.Guest, 0)
	for _, g := range s.store.Guests() {
		if strings.EqualFold(g.FirstName, firstName) && strings.EqualFold(g.LastName, lastName) {
			matched = append(matched, g)
		}
	}
	return matched
}

// List returns every guest.
func (s *GuestService) List() []models.Guest {
	s.store.Lock()
	defer s.store.Unlock()
	return s.store.Guests()
}
