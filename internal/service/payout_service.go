package service

import (
	"context"

	"go.uber.org/zap"

	"spotnere-backend/internal/analytics"
	"spotnere-backend/internal/model"
	"spotnere-backend/internal/supabase"
)

const vendorPayoutColumns = "id, place_id, business_name, vendor_full_name, vendor_phone_number, " +
	"vendor_email, vendor_address, vendor_city, vendor_state, vendor_country, vendor_postal_code, " +
	"account_holder_name, account_number, ifsc_code, upi_id, paid_so_far, created_at, updated_at"

// PayoutService reconciles vendors, places and bookings into payout balances.
type PayoutService struct {
	sb  *supabase.Client
	log *zap.Logger
}

func NewPayoutService(sb *supabase.Client, log *zap.Logger) *PayoutService {
	return &PayoutService{sb: sb, log: log}
}

// List computes the payout summary from a per-request snapshot of the three
// tables involved.
func (s *PayoutService) List(ctx context.Context) ([]analytics.PayoutRow, error) {
	var vendors []model.Vendor
	if err := s.sb.SelectAs(ctx, "vendors", supabase.Columns(vendorPayoutColumns), &vendors); err != nil {
		return nil, err
	}
	var places []model.Place
	if err := s.sb.SelectAs(ctx, "places", supabase.Columns("id, name, avg_price"), &places); err != nil {
		return nil, err
	}
	rows, err := s.sb.Select(ctx, "bookings", supabase.Columns("place_id, amount_payable_to_vendor"))
	if err != nil {
		// The payable column predates some deployments; count-only still works.
		s.log.Debug("payable column query failed, retrying with place_id only", zap.Error(err))
		rows, err = s.sb.Select(ctx, "bookings", supabase.Columns("place_id"))
	}
	if err != nil {
		return nil, err
	}

	payouts := analytics.Payouts(vendors, places, toBookings(rows))
	if payouts == nil {
		payouts = []analytics.PayoutRow{}
	}
	return payouts, nil
}
