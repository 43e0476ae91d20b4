package service

import (
	"context"
	"time"

	"spotnere-backend/internal/analytics"
	"spotnere-backend/internal/model"
	"spotnere-backend/internal/supabase"
)

// CustomerService reads the users table and drives segmentation.
type CustomerService struct {
	sb *supabase.Client
}

func NewCustomerService(sb *supabase.Client) *CustomerService {
	return &CustomerService{sb: sb}
}

// List returns every customer record.
func (s *CustomerService) List(ctx context.Context) ([]model.Customer, error) {
	var customers []model.Customer
	if err := s.sb.SelectAs(ctx, "users", nil, &customers); err != nil {
		return nil, err
	}
	if customers == nil {
		customers = []model.Customer{}
	}
	return customers, nil
}

// Count returns the total number of users without fetching rows.
func (s *CustomerService) Count(ctx context.Context) (int64, error) {
	return s.sb.Count(ctx, "users")
}

// Distribution classifies every customer into one segment from a snapshot of
// users and bookings taken for this request.
func (s *CustomerService) Distribution(ctx context.Context) ([]analytics.SegmentCount, error) {
	var customers []model.Customer
	if err := s.sb.SelectAs(ctx, "users", nil, &customers); err != nil {
		return nil, err
	}
	rows, err := s.sb.Select(ctx, "bookings", nil)
	if err != nil {
		return nil, err
	}
	return analytics.CustomerSegments(customers, toBookings(rows), time.Now().UTC()), nil
}
