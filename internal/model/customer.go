package model

import (
	"encoding/json"
	"reflect"
	"time"
)

// Customer is a row from the users table.
type Customer struct {
	ID           string           `json:"id,omitempty"`
	FirstName    string           `json:"first_name,omitempty"`
	LastName     string           `json:"last_name,omitempty"`
	Email        string           `json:"email,omitempty"`
	PhoneNumber  string           `json:"phone_number,omitempty"`
	PasswordHash string           `json:"password_hash,omitempty"`
	Address      string           `json:"address,omitempty"`
	City         string           `json:"city,omitempty"`
	State        string           `json:"state,omitempty"`
	Country      string           `json:"country,omitempty"`
	PostalCode   string           `json:"postal_code,omitempty"`
	Bookings     []map[string]any `json:"bookings,omitempty"`
	Status       string           `json:"status,omitempty"`
	CreatedAt    string           `json:"created_at,omitempty"`
	UpdatedAt    string           `json:"updated_at,omitempty"`

	Extra map[string]any `json:"-"`
}

var customerKnown = knownJSONKeys(reflect.TypeOf(Customer{}))

func (c *Customer) UnmarshalJSON(data []byte) error {
	type alias Customer
	var a alias
	if err := json.Unmarshal(data, &a); err != nil {
		return err
	}
	a.Extra = extraFields(data, customerKnown)
	*c = Customer(a)
	return nil
}

func (c Customer) MarshalJSON() ([]byte, error) {
	type alias Customer
	return marshalWithExtra(alias(c), c.Extra)
}

// CreatedTime parses the account creation timestamp for segmentation.
func (c Customer) CreatedTime() (time.Time, bool) {
	return ParseTime(c.CreatedAt)
}
