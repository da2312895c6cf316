package services

import (
	"time"

	"hotel-ledger/models"
	"hotel-ledger/store"
	"hotel-ledger/utils"
)

// LedgerService is read-only reporting over the payment ledger. Payments are
// append-only; nothing here mutates.
type LedgerService struct {
	store *store.Store
}

func NewLedgerService(st *store.Store) *LedgerService {
	return &LedgerService{store: st}
}

// List returns every ledger entry.
func (s *LedgerService) List() []models.Payment {
	s.store.Lock()
	defer s.store.Unlock()
	return s.store.Payments()
}

// ListOnDate returns ledger entries recorded on the given calendar day.
func (s *LedgerService) ListOnDate(date time.Time) []models.Payment {
	s.store.Lock()
	defer s.store.Unlock()

	matched := make([]models.Payment, 0)
	for _, p := range s.store.Payments() {
		if utils.SameDay(p.Date, date) {
			matched = append(matched, p)
		}
	}
	return matched
}

// ListForGuest returns ledger entries recorded against the guest ID. The ID
// is not validated: the ledger may legitimately reference guests that no
// longer exist.
func (s *LedgerService) ListForGuest(guestID uint32) []models.Payment {
	s.store.Lock()
	defer s.store.Unlock()

	matched := make([]models.Payment, 0)
	for _, p := range s.store.Payments() {
		if p.GuestID == guestID {
			matched = append(matched, p)
		}
	}
	return matched
}
