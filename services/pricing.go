package services

import (
	"math"
	"time"

	"hotel-ledger/models"
)

const (
	dayMillis = int64(24 * time.Hour / time.Millisecond)

	// vipDiscount multiplies the nightly total for guests whose VIP
	// membership outlasts the checkout date.
	vipDiscount = 0.9

	// VIPMembershipFee is the flat charge recorded once at VIP enrollment.
	VIPMembershipFee = 50.00
)

// StayNights is the whole-day difference between check-out and check-in:
// millisecond delta floor-divided by one day. Partial days truncate down, so a
// 25-hour stay counts as one night.
func StayNights(checkIn, checkOut time.Time) int64 {
	return checkOut.Sub(checkIn).Milliseconds() / dayMillis
}

// ComputeStayTotal prices a stay: nights times the nightly rate, discounted to
// 90% when the guest's VIP membership is active strictly past checkout.
// Amounts are rounded to two-decimal minor units.
func ComputeStayTotal(nightlyRate float64, checkIn, checkOut time.Time, vipActiveAtCheckout bool) float64 {
	total := float64(StayNights(checkIn, checkOut)) * nightlyRate
	if vipActiveAtCheckout {
		total *= vipDiscount
	}
	return roundMinorUnits(total)
}

// ComputeRefund returns the refund owed for cancelling the booking at now: the
// full totalAmount as a credit (negative) when more than two whole days remain
// until check-in, otherwise zero. The policy compares against the check-in
// date, not the booking date, so cancelling at or after check-in never
// refunds.
func ComputeRefund(b models.Booking, now time.Time) float64 {
	daysUntilCheckIn := b.CheckInDate.Sub(now).Milliseconds() / dayMillis
	if daysUntilCheckIn > 2 {
		return roundMinorUnits(-b.TotalAmount)
	}
	return 0
}

func roundMinorUnits(amount float64) float64 {
	return math.Round(amount*100) / 100
}
