// Package storage reads and writes the flat data files backing the record
// store. Saves are whole-file overwrites; there are no partial writes or
// transaction guarantees.
package storage

import (
	"bufio"
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"

	"hotel-ledger/models"
)

// Files names the four data files.
type Files struct {
	Rooms    string
	Guests   string
	Bookings string
	Payments string
}

// Records is a parsed snapshot of all four files.
type Records struct {
	Rooms    []models.Room
	Guests   []models.Guest
	Bookings []models.Booking
	Payments []models.Payment
}

// LoadAll parses every data file into a Records snapshot. A missing file is
// treated as an empty collection so a fresh data directory starts clean.
func LoadAll(files Files) (Records, error) {
	var rec Records

	err := readLines(files.Rooms, func(line string) error {
		room, err := parseRoomLine(line)
		if err != nil {
			return err
		}
		rec.Rooms = append(rec.Rooms, room)
		return nil
	})
	if err != nil {
		return Records{}, errors.Wrap(err, "loading rooms")
	}

	err = readLines(files.Guests, func(line string) error {
		guest, err := parseGuestLine(line)
		if err != nil {
			return err
		}
		rec.Guests = append(rec.Guests, guest)
		return nil
	})
	if err != nil {
		return Records{}, errors.Wrap(err, "loading guests")
	}

	err = readLines(files.Bookings, func(line string) error {
		booking, err := parseBookingLine(line)
		if err != nil {
			return err
		}
		rec.Bookings = append(rec.Bookings, booking)
		return nil
	})
	if err != nil {
		return Records{}, errors.Wrap(err, "loading bookings")
	}

	err = readLines(files.Payments, func(line string) error {
		payment, err := parsePaymentLine(line)
		if err != nil {
			return err
		}
		rec.Payments = append(rec.Payments, payment)
		return nil
	})
	if err != nil {
		return Records{}, errors.Wrap(err, "loading payments")
	}

	log.Info().
		Int("rooms", len(rec.Rooms)).
		Int("guests", len(rec.Guests)).
		Int("bookings", len(rec.Bookings)).
		Int("payments", len(rec.Payments)).
		Msg("data files loaded")

	return rec, nil
}

// SaveAll overwrites every data file with the given snapshot.
func SaveAll(files Files, rec Records) error {
	roomLines := make([]string, 0, len(rec.Rooms))
	for _, r := range rec.Rooms {
		roomLines = append(roomLines, formatRoomLine(r))
	}
	if err := writeLines(files.Rooms, roomLines); err != nil {
		return errors.Wrap(err, "saving rooms")
	}

	guestLines := make([]string, 0, len(rec.Guests))
	for _, g := range rec.Guests {
		guestLines = append(guestLines, formatGuestLine(g))
	}
	if err := writeLines(files.Guests, guestLines); err != nil {
		return errors.Wrap(err, "saving guests")
	}

	bookingLines := make([]string, 0, len(rec.Bookings))
	for _, b := range rec.Bookings {
		bookingLines = append(bookingLines, formatBookingLine(b))
	}
	if err := writeLines(files.Bookings, bookingLines); err != nil {
		return errors.Wrap(err, "saving bookings")
	}

	paymentLines := make([]string, 0, len(rec.Payments))
	for _, p := range rec.Payments {
		paymentLines = append(paymentLines, formatPaymentLine(p))
	}
	if err := writeLines(files.Payments, paymentLines); err != nil {
		return errors.Wrap(err, "saving payments")
	}

	return nil
}

func readLines(path string, each func(line string) error) error {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			log.Warn().Str("file", path).Msg("data file missing, starting empty")
			return nil
		}
		return errors.Wrapf(err, "open %s", path)
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimRight(scanner.Text(), "\r\n")
		if strings.TrimSpace(line) == "" {
			continue
		}
		if err := each(line); err != nil {
			return errors.Wrapf(err, "%s line %d", path, lineNo)
		}
	}
	return errors.Wrapf(scanner.Err(), "read %s", path)
}

func writeLines(path string, lines []string) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return errors.Wrapf(err, "create %s", dir)
		}
	}

	var sb strings.Builder
	for _, line := range lines {
		sb.WriteString(line)
		sb.WriteByte('\n')
	}
	return errors.Wrapf(os.WriteFile(path, []byte(sb.String()), 0o644), "write %s", path)
}
