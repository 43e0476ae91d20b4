package analytics

import (
	"testing"
	"time"

	"spotnere-backend/internal/model"
)

func TestCustomerSegments(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	customers := []model.Customer{
		{ID: "vip", CreatedAt: "2026-03-05T00:00:00Z"}, // 5 bookings wins over recency
		{ID: "regular", CreatedAt: "2024-01-01T00:00:00Z"},
		{ID: "new", CreatedAt: "2026-02-28T00:00:00Z"},
		{ID: "old", CreatedAt: "2026-02-01T00:00:00Z"},
		{ID: "nodate"},
		{CreatedAt: "2026-03-01T00:00:00Z"}, // no id, skipped entirely
	}
	var bookings []model.Booking
	for i := 0; i < 5; i++ {
		bookings = append(bookings, model.Booking{"user_id": "vip"})
	}
	bookings = append(bookings, model.Booking{"user_id": "regular"})

	segments := CustomerSegments(customers, bookings, now)
	if len(segments) != 4 {
		t.Fatalf("expected 4 segments, got %d", len(segments))
	}

	want := map[string]int{
		"New Customers":      1,
		"VIP Customers":      1,
		"Regular Customers":  1,
		"Inactive Customers": 2,
	}
	order := []string{"New Customers", "VIP Customers", "Regular Customers", "Inactive Customers"}
	total := 0
	for i, seg := range segments {
		if seg.Segment != order[i] {
			t.Fatalf("segment %d out of order: %q", i, seg.Segment)
		}
		if seg.Count != want[seg.Segment] {
			t.Fatalf("%s: expected %d, got %d", seg.Segment, want[seg.Segment], seg.Count)
		}
		total += seg.Count
	}
	if total != 5 {
		t.Fatalf("classified %d customers, expected 5", total)
	}
}

func TestCustomerSegmentsThirtyDayBoundary(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	customers := []model.Customer{
		{ID: "edge", CreatedAt: "2026-02-08T12:00:00Z"},   // exactly 30 days
		{ID: "beyond", CreatedAt: "2026-02-08T11:59:59Z"}, // one second past
	}
	segments := CustomerSegments(customers, nil, now)
	if segments[0].Count != 1 {
		t.Fatalf("exact cutoff should count as new: %+v", segments)
	}
	if segments[3].Count != 1 {
		t.Fatalf("past cutoff should count as inactive: %+v", segments)
	}
}

func TestCustomerSegmentsEmptyInput(t *testing.T) {
	segments := CustomerSegments(nil, nil, time.Now().UTC())
	if len(segments) != 4 {
		t.Fatalf("expected 4 zero segments, got %d", len(segments))
	}
	for _, seg := range segments {
		if seg.Count != 0 {
			t.Fatalf("empty input produced nonzero count: %+v", seg)
		}
	}
}

func TestBookingCountsByUser(t *testing.T) {
	bookings := []model.Booking{
		{"user_id": "a"},
		{"user_id": "a"},
		{"user_id": float64(7)},
		{"place_id": "p1"},
		{"user_id": nil},
	}
	counts := BookingCountsByUser(bookings)
	if counts["a"] != 2 {
		t.Fatalf("user a: %d", counts["a"])
	}
	if counts["7"] != 1 {
		t.Fatalf("numeric id should normalize to string: %v", counts)
	}
	if len(counts) != 2 {
		t.Fatalf("unexpected keys: %v", counts)
	}
}
