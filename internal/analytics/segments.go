package analytics

import (
	"time"

	"spotnere-backend/internal/model"
)

// Segment thresholds: VIP at five or more bookings, New within thirty days.
const (
	vipBookingThreshold = 5
	newCustomerWindow   = 30 * 24 * time.Hour
)

// SegmentCount is one slice of the customer distribution.
type SegmentCount struct {
	Segment string `json:"segment"`
	Count   int    `json:"count"`
}

// CustomerSegments classifies every user into exactly one segment: VIP (5+
// bookings), Regular (1-4), New (none, created within 30 days of now) or
// Inactive (none, older or missing creation timestamp). Zero-count segments
// are always emitted, in fixed order.
func CustomerSegments(customers []model.Customer, bookings []model.Booking, now time.Time) []SegmentCount {
	counts := BookingCountsByUser(bookings)
	cutoff := now.Add(-newCustomerWindow)

	var newCount, vipCount, regularCount, inactiveCount int
	for _, c := range customers {
		if c.ID == "" {
			continue
		}
		created, hasCreated := c.CreatedTime()
		switch bc := counts[c.ID]; {
		case bc >= vipBookingThreshold:
			vipCount++
		case bc >= 1:
			regularCount++
		case hasCreated && !created.Before(cutoff):
			newCount++
		default:
			inactiveCount++
		}
	}

	return []SegmentCount{
		{Segment: "New Customers", Count: newCount},
		{Segment: "VIP Customers", Count: vipCount},
		{Segment: "Regular Customers", Count: regularCount},
		{Segment: "Inactive Customers", Count: inactiveCount},
	}
}

// BookingCountsByUser counts bookings per referenced user id.
func BookingCountsByUser(bookings []model.Booking) map[string]int {
	counts := make(map[string]int)
	for _, b := range bookings {
		if uid := b.UserID(); uid != "" {
			counts[uid]++
		}
	}
	return counts
}
