package service

import (
	"go.uber.org/zap"

	"spotnere-backend/internal/supabase"
)

// Registry bundles all services for handler wiring.
type Registry struct {
	Places    *PlaceService
	Bookings  *BookingService
	Payouts   *PayoutService
	Customers *CustomerService
	Reviews   *ReviewService
	Vendors   *VendorService
	Gallery   *GalleryService
	Auth      *AuthService
	Admins    *AdminService
}

func NewRegistry(sb *supabase.Client, bucket string, log *zap.Logger) *Registry {
	return &Registry{
		Places:    NewPlaceService(sb, bucket, log),
		Bookings:  NewBookingService(sb, log),
		Payouts:   NewPayoutService(sb, log),
		Customers: NewCustomerService(sb),
		Reviews:   NewReviewService(sb),
		Vendors:   NewVendorService(sb),
		Gallery:   NewGalleryService(sb),
		Auth:      NewAuthService(sb, log),
		Admins:    NewAdminService(sb),
	}
}
