package storage

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"hotel-ledger/models"
	"hotel-ledger/utils"
)

// Line codecs for the flat data files. One entity per line, comma-separated,
// no quoting or escaping: an embedded comma in a free-text field will not
// survive a round trip. Guest lines carry 4 fields, VIP guest lines 6; the
// field count is the only discriminator.

func parseRoomLine(line string) (models.Room, error) {
	fields := strings.Split(line, ",")
	if len(fields) != 5 {
		return models.Room{}, errors.Errorf("room line has %d fields, want 5", len(fields))
	}
	roomNumber, err := strconv.ParseInt(fields[0], 10, 64)
	if err != nil {
		return models.Room{}, errors.Wrap(err, "room number")
	}
	rate, err := strconv.ParseFloat(fields[2], 64)
	if err != nil {
		return models.Room{}, errors.Wrap(err, "nightly rate")
	}
	capacity, err := strconv.Atoi(fields[3])
	if err != nil {
		return models.Room{}, errors.Wrap(err, "capacity")
	}
	return models.Room{
		RoomNumber:  roomNumber,
		RoomType:    fields[1],
		NightlyRate: rate,
		Capacity:    capacity,
		Facilities:  fields[4],
	}, nil
}

func formatRoomLine(r models.Room) string {
	return strings.Join([]string{
		strconv.FormatInt(r.RoomNumber, 10),
		r.RoomType,
		formatAmount(r.NightlyRate),
		strconv.Itoa(r.Capacity),
		r.Facilities,
	}, ",")
}

func parseGuestLine(line string) (models.Guest, error) {
	fields := strings.Split(line, ",")
	if len(fields) != 4 && len(fields) != 6 {
		return models.Guest{}, errors.Errorf("guest line has %d fields, want 4 or 6", len(fields))
	}
	guestID, err := parseID(fields[0])
	if err != nil {
		return models.Guest{}, errors.Wrap(err, "guest id")
	}
	joinDate, err := utils.ParseDate(fields[3])
	if err != nil {
		return models.Guest{}, errors.Wrap(err, "join date")
	}
	g := models.Guest{
		GuestID:   guestID,
		FirstName: fields[1],
		LastName:  fields[2],
		JoinDate:  joinDate,
	}
	if len(fields) == 6 {
		start, err := utils.ParseDate(fields[4])
		if err != nil {
			return models.Guest{}, errors.Wrap(err, "vip start date")
		}
		expiry, err := utils.ParseDate(fields[5])
		if err != nil {
			return models.Guest{}, errors.Wrap(err, "vip expiry date")
		}
		g.VIP = &models.VIPMembership{StartDate: start, ExpiryDate: expiry}
	}
	return g, nil
}

func formatGuestLine(g models.Guest) string {
	fields := []string{
		formatID(g.GuestID),
		g.FirstName,
		g.LastName,
		utils.FormatDate(g.JoinDate),
	}
	if g.VIP != nil {
		fields = append(fields, utils.FormatDate(g.VIP.StartDate), utils.FormatDate(g.VIP.ExpiryDate))
	}
	return strings.Join(fields, ",")
}

func parseBookingLine(line string) (models.Booking, error) {
	fields := strings.Split(line, ",")
	if len(fields) != 7 {
		return models.Booking{}, errors.Errorf("booking line has %d fields, want 7", len(fields))
	}
	bookingID, err := parseID(fields[0])
	if err != nil {
		return models.Booking{}, errors.Wrap(err, "booking id")
	}
	guestID, err := parseID(fields[1])
	if err != nil {
		return models.Booking{}, errors.Wrap(err, "guest id")
	}
	roomNumber, err := strconv.ParseInt(fields[2], 10, 64)
	if err != nil {
		return models.Booking{}, errors.Wrap(err, "room number")
	}
	bookingDate, err := utils.ParseDate(fields[3])
	if err != nil {
		return models.Booking{}, errors.Wrap(err, "booking date")
	}
	checkIn, err := utils.ParseDate(fields[4])
	if err != nil {
		return models.Booking{}, errors.Wrap(err, "check-in date")
	}
	checkOut, err := utils.ParseDate(fields[5])
	if err != nil {
		return models.Booking{}, errors.Wrap(err, "check-out date")
	}
	amount, err := strconv.ParseFloat(fields[6], 64)
	if err != nil {
		return models.Booking{}, errors.Wrap(err, "total amount")
	}
	return models.Booking{
		BookingID:    bookingID,
		GuestID:      guestID,
		RoomNumber:   roomNumber,
		BookingDate:  bookingDate,
		CheckInDate:  checkIn,
		CheckOutDate: checkOut,
		TotalAmount:  amount,
	}, nil
}

func formatBookingLine(b models.Booking) string {
	return strings.Join([]string{
		formatID(b.BookingID),
		formatID(b.GuestID),
		strconv.FormatInt(b.RoomNumber, 10),
		utils.FormatDate(b.BookingDate),
		utils.FormatDate(b.CheckInDate),
		utils.FormatDate(b.CheckOutDate),
		formatAmount(b.TotalAmount),
	}, ",")
}

func parsePaymentLine(line string) (models.Payment, error) {
	fields := strings.Split(line, ",")
	if len(fields) != 4 {
		return models.Payment{}, errors.Errorf("payment line has %d fields, want 4", len(fields))
	}
	date, err := utils.ParseDate(fields[0])
	if err != nil {
		return models.Payment{}, errors.Wrap(err, "payment date")
	}
	guestID, err := parseID(fields[1])
	if err != nil {
		return models.Payment{}, errors.Wrap(err, "guest id")
	}
	amount, err := strconv.ParseFloat(fields[2], 64)
	if err != nil {
		return models.Payment{}, errors.Wrap(err, "amount")
	}
	return models.Payment{
		Date:    date,
		GuestID: guestID,
		Amount:  amount,
		Reason:  fields[3],
	}, nil
}

func formatPaymentLine(p models.Payment) string {
	return strings.Join([]string{
		utils.FormatDate(p.Date),
		formatID(p.GuestID),
		formatAmount(p.Amount),
		p.Reason,
	}, ",")
}

func parseID(s string) (uint32, error) {
	id, err := strconv.ParseUint(s, 10, 32)
	if err != nil {
		return 0, err
	}
	return uint32(id), nil
}

func formatID(id uint32) string {
	return strconv.FormatUint(uint64(id), 10)
}

// formatAmount writes the shortest decimal that parses back to the same
// float64, so saved amounts reload field-for-field.
func formatAmount(amount float64) string {
	return strconv.FormatFloat(amount, 'f', -1, 64)
}
