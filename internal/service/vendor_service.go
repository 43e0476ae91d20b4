package service

import (
	"context"

	"spotnere-backend/internal/model"
	"spotnere-backend/internal/supabase"
)

const vendorColumns = "id, business_name, vendor_full_name, vendor_phone_number, vendor_email, " +
	"vendor_address, vendor_city, vendor_state, vendor_country, vendor_postal_code, " +
	"place_id, account_holder_name, account_number, ifsc_code, upi_id, " +
	"razorpay_contact_ref, razorpay_fa_ref, created_at, updated_at"

// VendorService reads the vendors table.
type VendorService struct {
	sb *supabase.Client
}

func NewVendorService(sb *supabase.Client) *VendorService {
	return &VendorService{sb: sb}
}

// GetByPlace returns the vendor linked to a place, or nil when the place has
// no vendor row. The password_hash column is never selected.
func (s *VendorService) GetByPlace(ctx context.Context, placeID string) (*model.Vendor, error) {
	var vendors []model.Vendor
	if err := s.sb.SelectAs(ctx, "vendors", supabase.Columns(vendorColumns).Eq("place_id", placeID), &vendors); err != nil {
		return nil, err
	}
	if len(vendors) == 0 {
		return nil, nil
	}
	return &vendors[0], nil
}
