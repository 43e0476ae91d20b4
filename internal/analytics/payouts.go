package analytics

import (
	"spotnere-backend/internal/model"
)

// PayoutRow pairs a place with its vendor and the amounts owed.
type PayoutRow struct {
	PlaceID     string        `json:"place_id"`
	VendorID    string        `json:"vendor_id"`
	Name        string        `json:"name"`
	PlaceName   string        `json:"place_name"`
	NumBookings int           `json:"num_bookings"`
	TotalAmount float64       `json:"total_amount"`
	AmountPaid  float64       `json:"amount_paid"`
	Balance     float64       `json:"balance"`
	Vendor      *model.Vendor `json:"vendor"`
}

type payoutStats struct {
	count int
	total float64
}

// Payouts reconciles vendors, places and bookings into one row per place
// with activity, followed by a zero-activity row for every remaining vendor
// so each known vendor appears at least once. Row order is deterministic:
// places in first-booking-seen order, then vendors in collection order.
func Payouts(vendors []model.Vendor, places []model.Place, bookings []model.Booking) []PayoutRow {
	vendorByPlace := make(map[string]model.Vendor, len(vendors))
	for _, v := range vendors {
		if v.PlaceID != "" {
			vendorByPlace[v.PlaceID] = v
		}
	}
	placeByID := make(map[string]model.Place, len(places))
	for _, p := range places {
		placeByID[p.ID] = p
	}

	stats := make(map[string]*payoutStats)
	var placeOrder []string
	for _, b := range bookings {
		pid := b.PlaceID()
		if pid == "" {
			continue
		}
		st := stats[pid]
		if st == nil {
			st = &payoutStats{}
			stats[pid] = st
			placeOrder = append(placeOrder, pid)
		}
		st.count++
		st.total += b.PayableAmount()
	}

	// A zero sum over a nonzero count means the payable column was absent on
	// every row; estimate from the place's average price instead.
	for pid, st := range stats {
		if st.total == 0 && st.count > 0 {
			if avg := placeByID[pid].AvgPrice; avg != nil {
				st.total = *avg * float64(st.count)
			}
		}
	}

	rows := make([]PayoutRow, 0, len(placeOrder))
	seen := make(map[string]struct{}, len(placeOrder))
	for _, pid := range placeOrder {
		seen[pid] = struct{}{}
		vendor, ok := vendorByPlace[pid]
		if !ok {
			vendor = model.Vendor{PlaceID: pid}
		}
		rows = append(rows, payoutRow(vendor, placeByID[pid], *stats[pid]))
	}
	for _, v := range vendors {
		if v.PlaceID == "" {
			continue
		}
		if _, ok := seen[v.PlaceID]; ok {
			continue
		}
		seen[v.PlaceID] = struct{}{}
		rows = append(rows, payoutRow(v, placeByID[v.PlaceID], payoutStats{}))
	}
	return rows
}

func payoutRow(vendor model.Vendor, place model.Place, st payoutStats) PayoutRow {
	total := model.RoundMoney(st.total)
	paid := model.RoundMoney(vendor.Paid())
	placeName := place.Name
	if placeName == "" {
		placeName = "—"
	}
	detail := vendor
	detail.PaidSoFar = &paid
	return PayoutRow{
		PlaceID:     vendor.PlaceID,
		VendorID:    vendor.ID,
		Name:        vendor.DisplayName(),
		PlaceName:   placeName,
		NumBookings: st.count,
		TotalAmount: total,
		AmountPaid:  paid,
		Balance:     model.RoundMoney(total - paid),
		Vendor:      &detail,
	}
}
