package services

import (
	"math/rand"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hotel-ledger/models"
	"hotel-ledger/store"
)

func newGuestService(st *store.Store) *GuestService {
	return NewGuestService(st, rand.New(rand.NewSource(1)))
}

func TestAddGuestRegular(t *testing.T) {
	st := store.New()
	svc := newGuestService(st)

	guest := svc.AddGuest("Ada", "Lovelace", false)

	assert.Equal(t, "Ada", guest.FirstName)
	assert.Equal(t, "Lovelace", guest.LastName)
	assert.Nil(t, guest.VIP)

	st.Lock()
	defer st.Unlock()
	stored, ok := st.GuestByID(guest.GuestID)
	require.True(t, ok)
	assert.Equal(t, guest, stored)
	assert.Empty(t, st.Payments(), "regular enrollment writes no ledger entry")
}

func TestAddGuestVIP(t *testing.T) {
	st := store.New()
	svc := newGuestService(st)

	guest := svc.AddGuest("Grace", "Hopper", true)

	require.NotNil(t, guest.VIP)
	assert.Equal(t, guest.VIP.StartDate.AddDate(1, 0, 0), guest.VIP.ExpiryDate)

	st.Lock()
	defer st.Unlock()
	payments := st.Payments()
	require.Len(t, payments, 1)
	assert.Equal(t, models.PayReasonVIPMembership, payments[0].Reason)
	assert.Equal(t, 50.00, payments[0].Amount)
	assert.Equal(t, guest.GuestID, payments[0].GuestID)
}

func TestAddGuestAllocatesDistinctIDs(t *testing.T) {
	st := store.New()
	svc := newGuestService(st)

	seen := make(map[uint32]struct{})
	for i := 0; i < 100; i++ {
		guest := svc.AddGuest("Guest", "N", i%3 == 0)
		_, dup := seen[guest.GuestID]
		assert.False(t, dup, "duplicate guest id %d", guest.GuestID)
		seen[guest.GuestID] = struct{}{}
	}
}

func TestSearchGuests(t *testing.T) {
	st := store.New()
	st.AddGuest(models.Guest{GuestID: 1, FirstName: "Ada", LastName: "Lovelace"})
	st.AddGuest(models.Guest{GuestID: 2, FirstName: "ada", LastName: "LOVELACE"})
	st.AddGuest(models.Guest{GuestID: 3, FirstName: "Adam", LastName: "Lovelace"})
	svc := newGuestService(st)

	testCases := []struct {
		name      string
		firstName string
		lastName  string
		wantIDs   []uint32
	}{
		{"case-insensitive exact match", "ADA", "lovelace", []uint32{1, 2}},
		{"prefix does not match", "Ad", "Lovelace", nil},
		{"no match", "Ada", "Byron", nil},
	}
	for _, tt := range testCases {
		t.Run(tt.name, func(t *testing.T) {
			got := svc.Search(tt.firstName, tt.lastName)
			ids := make([]uint32, 0, len(got))
			for _, g := range got {
				ids = append(ids, g.GuestID)
			}
			if tt.wantIDs == nil {
				assert.Empty(t, ids)
			} else {
				assert.Equal(t, tt.wantIDs, ids)
			}
		})
	}
}

func TestRemoveGuest(t *testing.T) {
	now := time.Now()
	testCases := []struct {
		name    string
		booking *models.Booking
		wantErr bool
	}{
		{"with a completed stay", &models.Booking{
			BookingID: 1, GuestID: 1, RoomNumber: 101,
			CheckInDate: now.Add(-5 * 24 * time.Hour), CheckOutDate: now.Add(-2 * 24 * time.Hour),
		}, false},
		{"with only an active stay", &models.Booking{
			BookingID: 1, GuestID: 1, RoomNumber: 101,
			CheckInDate: now.Add(-24 * time.Hour), CheckOutDate: now.Add(24 * time.Hour),
		}, true},
		{"with no bookings at all", nil, true},
	}
	for _, tt := range testCases {
		t.Run(tt.name, func(t *testing.T) {
			st := store.New()
			st.AddGuest(models.Guest{GuestID: 1, FirstName: "Ada", LastName: "Lovelace"})
			if tt.booking != nil {
				st.AddBooking(*tt.booking)
			}
			svc := newGuestService(st)

			err := svc.RemoveGuest(1)

			st.Lock()
			defer st.Unlock()
			_, stillThere := st.GuestByID(1)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, stillThere)
			} else {
				require.NoError(t, err)
				assert.False(t, stillThere)
			}
		})
	}
}

func TestRemoveGuestUnknown(t *testing.T) {
	svc := newGuestService(store.New())
	err := svc.RemoveGuest(404)
	require.Error(t, err)
	kind, _ := models.KindOf(err)
	assert.Equal(t, models.KindNotFound, kind)
}
