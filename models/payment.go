package models

import "time"

// Payment reason tags as written to the ledger file.
const (
	PayReasonBooking       = "booking"
	PayReasonVIPMembership = "VIPmembership"
	PayReasonRefund        = "refund"
)

// Payment is an append-only ledger entry. A negative amount is a refund or
// credit. The GuestID is recorded as given and is not validated against the
// guest collection.
type Payment struct {
	Date    time.Time `json:"date"`
	GuestID uint32    `json:"guestId"`
	Amount  float64   `json:"amount"`
	Reason  string    `json:"reason"`
}
