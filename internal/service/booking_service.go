package service

import (
	"context"
	"time"

	"go.uber.org/zap"

	"spotnere-backend/internal/analytics"
	"spotnere-backend/internal/model"
	"spotnere-backend/internal/supabase"
)

const bookingJoinColumns = "*, users!user_id(first_name, last_name, email), places!place_id(name)"

// BookingService reads the bookings table and drives the sales aggregation.
// Bookings are never written from here; they are aggregation input only.
type BookingService struct {
	sb  *supabase.Client
	log *zap.Logger
}

func NewBookingService(sb *supabase.Client, log *zap.Logger) *BookingService {
	return &BookingService{sb: sb, log: log}
}

// List returns all bookings with user/place join fields flattened in, newest
// first, optionally filtered to one place. Older deployments lack the join
// relationships or the timestamp column, so the query degrades step by step.
func (s *BookingService) List(ctx context.Context, placeID string) ([]supabase.Row, error) {
	query := supabase.Columns(bookingJoinColumns).Order("booking_date_and_time", true)
	if placeID != "" {
		query = query.Eq("place_id", placeID)
	}
	rows, err := s.sb.Select(ctx, "bookings", query)
	if err != nil {
		s.log.Debug("ordered booking join query failed, retrying unordered", zap.Error(err))
		query = supabase.Columns(bookingJoinColumns)
		if placeID != "" {
			query = query.Eq("place_id", placeID)
		}
		rows, err = s.sb.Select(ctx, "bookings", query)
	}
	if err != nil {
		s.log.Debug("booking join query failed, retrying without joins", zap.Error(err))
		query = supabase.Columns("*")
		if placeID != "" {
			query = query.Eq("place_id", placeID)
		}
		rows, err = s.sb.Select(ctx, "bookings", query)
	}
	if err != nil {
		return nil, err
	}

	out := make([]supabase.Row, 0, len(rows))
	for _, row := range rows {
		flat := flattenUserPlace(row)
		coerceAmount(flat, "amount_paid", false)
		coerceAmount(flat, "amount_payable_to_vendor", true)
		out = append(out, flat)
	}
	return out, nil
}

// SalesAnalytics buckets booking amounts into the requested period's window.
func (s *BookingService) SalesAnalytics(ctx context.Context, period analytics.Period) ([]analytics.SalesBucket, error) {
	bookings, err := s.snapshot(ctx, "amount_paid, amount_payable_to_vendor, booking_date_and_time, booking_date_time")
	if err != nil {
		return nil, err
	}
	return analytics.SalesBuckets(bookings, period, time.Now().UTC()), nil
}

// CountsByUser maps each user id to its booking count.
func (s *BookingService) CountsByUser(ctx context.Context) (map[string]int, error) {
	rows, err := s.sb.Select(ctx, "bookings", supabase.Columns("user_id"))
	if err != nil {
		return nil, err
	}
	return analytics.BookingCountsByUser(toBookings(rows)), nil
}

// snapshot fetches the booking columns needed for aggregation, falling back
// to a full select when a named column does not exist in this deployment.
func (s *BookingService) snapshot(ctx context.Context, columns string) ([]model.Booking, error) {
	rows, err := s.sb.Select(ctx, "bookings", supabase.Columns(columns))
	if err != nil {
		s.log.Debug("column-scoped booking query failed, retrying full select", zap.Error(err))
		rows, err = s.sb.Select(ctx, "bookings", nil)
	}
	if err != nil {
		return nil, err
	}
	return toBookings(rows), nil
}

func toBookings(rows []supabase.Row) []model.Booking {
	bookings := make([]model.Booking, len(rows))
	for i, row := range rows {
		bookings[i] = model.Booking(row)
	}
	return bookings
}

// coerceAmount forces a money field to a float. zeroOnFail substitutes 0.0
// for unconvertible garbage instead of leaving the stored value.
func coerceAmount(row supabase.Row, key string, zeroOnFail bool) {
	v, present := row[key]
	if !present || v == nil {
		return
	}
	if f, ok := model.ToFloat(v); ok {
		row[key] = f
	} else if zeroOnFail {
		row[key] = 0.0
	}
}
