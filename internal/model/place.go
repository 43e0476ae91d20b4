package model

import (
	"encoding/json"
	"fmt"
	"math"
	"reflect"
)

// MaxRating is the largest value the rating column (NUMERIC(2,1)) can hold.
const MaxRating = 9.9

// Place is a business listing from the places table.
type Place struct {
	ID              string   `json:"id,omitempty"`
	Name            string   `json:"name,omitempty"`
	Address         string   `json:"address,omitempty"`
	City            string   `json:"city,omitempty"`
	State           string   `json:"state,omitempty"`
	Country         string   `json:"country,omitempty"`
	PostalCode      string   `json:"postal_code,omitempty"`
	Category        string   `json:"category,omitempty"`
	SubCategory     string   `json:"sub_category,omitempty"`
	Description     string   `json:"description,omitempty"`
	PhoneNumber     string   `json:"phone_number,omitempty"`
	Website         string   `json:"website,omitempty"`
	BannerImageLink string   `json:"banner_image_link,omitempty"`
	LocationMapLink string   `json:"location_map_link,omitempty"`
	Latitude        *float64 `json:"latitude,omitempty"`
	Longitude       *float64 `json:"longitude,omitempty"`
	AvgPrice        *float64 `json:"avg_price,omitempty"`
	Rating          *float64 `json:"rating,omitempty"`
	ReviewCount     *int     `json:"review_count,omitempty"`
	Hours           Hours    `json:"hours,omitempty"`
	Amenities       []string `json:"amenities,omitempty"`
	Visible         *bool    `json:"visible,omitempty"`
	LastUpdated     string   `json:"last_updated,omitempty"`
	CreatedAt       string   `json:"created_at,omitempty"`
	UpdatedAt       string   `json:"updated_at,omitempty"`

	// Extra keeps unrecognized stored columns for verbatim round-trips.
	Extra map[string]any `json:"-"`
}

var placeKnown = knownJSONKeys(reflect.TypeOf(Place{}))

func (p *Place) UnmarshalJSON(data []byte) error {
	type alias Place
	var a alias
	if err := json.Unmarshal(data, &a); err != nil {
		return err
	}
	a.Extra = extraFields(data, placeKnown)
	*p = Place(a)
	return nil
}

func (p Place) MarshalJSON() ([]byte, error) {
	type alias Place
	return marshalWithExtra(alias(p), p.Extra)
}

// ValidateRating rejects values the rating column cannot hold. The raw
// magnitude is checked, so 9.95 is rejected even though rounding would
// bring it in range.
func ValidateRating(v float64) error {
	if math.Abs(v) > MaxRating {
		return fmt.Errorf("Rating value %v exceeds maximum allowed value of 9.9. Please enter a value between 0 and 9.9.", v)
	}
	return nil
}

// RoundRating rounds to the single decimal the column stores, halves
// away from zero.
func RoundRating(v float64) float64 {
	return math.Round(v*10) / 10
}

// RoundMoney rounds to the two decimals of NUMERIC(10,2) money columns.
func RoundMoney(v float64) float64 {
	return math.Round(v*100) / 100
}
