package models

import "time"

// VIPMembership is the optional VIP extension on a Guest.
type VIPMembership struct {
	StartDate  time.Time `json:"startDate"`
	ExpiryDate time.Time `json:"expiryDate"`
}

// Guest is the base identity record. A VIP guest is a regular guest carrying a
// non-nil membership; there is no separate VIP collection, and guest IDs are
// unique across all guests regardless of VIP status.
type Guest struct {
	GuestID   uint32         `json:"guestId"`
	FirstName string         `json:"firstName"`
	LastName  string         `json:"lastName"`
	JoinDate  time.Time      `json:"joinDate"`
	VIP       *VIPMembership `json:"vip,omitempty"`
}

// VIPActiveAt reports whether the guest holds a VIP membership whose expiry is
// strictly after t.
func (g Guest) VIPActiveAt(t time.Time) bool {
	return g.VIP != nil && g.VIP.ExpiryDate.After(t)
}
