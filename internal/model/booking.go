package model

import "time"

// Booking is a raw bookings row. Aggregation reads it as a generic mapping
// because historical rows disagree on field names and value types; the
// aggregator never mutates one.
type Booking map[string]any

// PlaceID returns the referenced place id, or "" when absent.
func (b Booking) PlaceID() string {
	return StringID(b["place_id"])
}

// UserID returns the referenced user id, or "" when absent.
func (b Booking) UserID() string {
	return StringID(b["user_id"])
}

// Amount returns the customer-charged amount for sales analytics, falling
// back to the vendor payable when amount_paid is absent or zero.
func (b Booking) Amount() float64 {
	if v, ok := ToFloat(b["amount_paid"]); ok && v != 0 {
		return v
	}
	if v, ok := ToFloat(b["amount_payable_to_vendor"]); ok {
		return v
	}
	return 0
}

// PayableAmount returns the amount owed to the vendor, zero when absent.
func (b Booking) PayableAmount() float64 {
	if v, ok := ToFloat(b["amount_payable_to_vendor"]); ok {
		return v
	}
	return 0
}

// Timestamp parses the booking time, preferring the current column name over
// the legacy one. The second return is false for absent or unparsable values.
func (b Booking) Timestamp() (time.Time, bool) {
	for _, key := range []string{"booking_date_and_time", "booking_date_time"} {
		if s, ok := b[key].(string); ok && s != "" {
			return ParseTime(s)
		}
	}
	return time.Time{}, false
}
