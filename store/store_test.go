package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hotel-ledger/models"
)

func TestReplaceAndLookups(t *testing.T) {
	st := New()
	st.Replace(
		[]models.Room{{RoomNumber: 101, RoomType: "Double"}},
		[]models.Guest{{GuestID: 1, FirstName: "Ada"}},
		[]models.Booking{{BookingID: 7, GuestID: 1, RoomNumber: 101}},
		[]models.Payment{{GuestID: 1, Amount: 90, Reason: models.PayReasonBooking}},
	)

	room, ok := st.RoomByNumber(101)
	require.True(t, ok)
	assert.Equal(t, "Double", room.RoomType)

	guest, ok := st.GuestByID(1)
	require.True(t, ok)
	assert.Equal(t, "Ada", guest.FirstName)

	booking, ok := st.BookingByID(7)
	require.True(t, ok)
	assert.Equal(t, uint32(1), booking.GuestID)

	_, ok = st.RoomByNumber(404)
	assert.False(t, ok)

	// A second Replace swaps everything wholesale.
	st.Replace(nil, nil, nil, nil)
	assert.Empty(t, st.Rooms())
	assert.Empty(t, st.Guests())
	assert.Empty(t, st.Bookings())
	assert.Empty(t, st.Payments())
}

func TestAccessorsReturnCopies(t *testing.T) {
	st := New()
	st.AddRoom(models.Room{RoomNumber: 101, RoomType: "Double"})

	rooms := st.Rooms()
	rooms[0].RoomType = "Suite"

	stored, _ := st.RoomByNumber(101)
	assert.Equal(t, "Double", stored.RoomType)
}

func TestRemoveBooking(t *testing.T) {
	st := New()
	st.AddBooking(models.Booking{BookingID: 1})
	st.AddBooking(models.Booking{BookingID: 2})

	assert.True(t, st.RemoveBooking(1))
	assert.False(t, st.RemoveBooking(1), "second removal reports absence")

	_, ok := st.BookingByID(2)
	assert.True(t, ok)
}

func TestRemoveGuest(t *testing.T) {
	st := New()
	st.AddGuest(models.Guest{GuestID: 1})

	assert.True(t, st.RemoveGuest(1))
	assert.False(t, st.RemoveGuest(1))
}

func TestIDSets(t *testing.T) {
	st := New()
	st.AddGuest(models.Guest{GuestID: 1})
	st.AddGuest(models.Guest{GuestID: 2, VIP: &models.VIPMembership{}})
	st.AddBooking(models.Booking{BookingID: 9})

	guestIDs := st.GuestIDs()
	assert.Len(t, guestIDs, 2, "VIP and regular guests share one id space")
	_, ok := guestIDs[2]
	assert.True(t, ok)

	bookingIDs := st.BookingIDs()
	assert.Len(t, bookingIDs, 1)
	_, ok = bookingIDs[9]
	assert.True(t, ok)
}
