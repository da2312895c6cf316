package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hotel-ledger/models"
	"hotel-ledger/store"
)

func TestCreateRoom(t *testing.T) {
	st := store.New()
	svc := NewRoomService(st)

	room := models.Room{RoomNumber: 101, RoomType: "Double", NightlyRate: 90.00, Capacity: 2, Facilities: "ensuite"}
	require.NoError(t, svc.Create(room))

	got, err := svc.GetByNumber(101)
	require.NoError(t, err)
	assert.Equal(t, room, got)
}

func TestCreateRoomDuplicateNumber(t *testing.T) {
	st := store.New()
	svc := NewRoomService(st)

	require.NoError(t, svc.Create(models.Room{RoomNumber: 101, RoomType: "Double", NightlyRate: 90.00, Capacity: 2}))

	err := svc.Create(models.Room{RoomNumber: 101, RoomType: "Single", NightlyRate: 60.00, Capacity: 1})
	require.Error(t, err)
	kind, _ := models.KindOf(err)
	assert.Equal(t, models.KindDuplicateKey, kind)

	assert.Len(t, svc.List(), 1)
}

func TestGetRoomByNumberNotFound(t *testing.T) {
	svc := NewRoomService(store.New())
	_, err := svc.GetByNumber(404)
	require.Error(t, err)
	kind, _ := models.KindOf(err)
	assert.Equal(t, models.KindNotFound, kind)
}

func TestFindAvailableRejectsReversedRange(t *testing.T) {
	svc := NewRoomService(store.New())
	_, err := svc.FindAvailable("Double", date("2019-03-20"), date("2019-03-12"))
	require.Error(t, err)
	kind, _ := models.KindOf(err)
	assert.Equal(t, models.KindInvalidDateRange, kind)
}

func TestFindAvailable(t *testing.T) {
	st := store.New()
	st.AddRoom(models.Room{RoomNumber: 101, RoomType: "Double", NightlyRate: 90.00, Capacity: 2})
	st.AddRoom(models.Room{RoomNumber: 102, RoomType: "Double", NightlyRate: 90.00, Capacity: 2})
	st.AddBooking(models.Booking{
		BookingID: 1, RoomNumber: 101,
		CheckInDate: date("2019-03-10"), CheckOutDate: date("2019-03-15"),
	})
	svc := NewRoomService(st)

	available, err := svc.FindAvailable("Double", date("2019-03-12"), date("2019-03-14"))
	require.NoError(t, err)
	assert.Equal(t, []int64{102}, available)
}
