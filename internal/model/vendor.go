package model

import (
	"encoding/json"
	"reflect"
)

// Vendor is the owning/operating party of a place, including payout fields.
// The password_hash column is deliberately never selected.
type Vendor struct {
	ID                string   `json:"id,omitempty"`
	PlaceID           string   `json:"place_id,omitempty"`
	BusinessName      string   `json:"business_name,omitempty"`
	VendorFullName    string   `json:"vendor_full_name,omitempty"`
	VendorPhoneNumber string   `json:"vendor_phone_number,omitempty"`
	VendorEmail       string   `json:"vendor_email,omitempty"`
	VendorAddress     string   `json:"vendor_address,omitempty"`
	VendorCity        string   `json:"vendor_city,omitempty"`
	VendorState       string   `json:"vendor_state,omitempty"`
	VendorCountry     string   `json:"vendor_country,omitempty"`
	VendorPostalCode  string   `json:"vendor_postal_code,omitempty"`
	AccountHolderName string   `json:"account_holder_name,omitempty"`
	AccountNumber     string   `json:"account_number,omitempty"`
	IFSCCode          string   `json:"ifsc_code,omitempty"`
	UPIID             string   `json:"upi_id,omitempty"`
	PaidSoFar         *float64 `json:"paid_so_far,omitempty"`
	CreatedAt         string   `json:"created_at,omitempty"`
	UpdatedAt         string   `json:"updated_at,omitempty"`

	Extra map[string]any `json:"-"`
}

var vendorKnown = knownJSONKeys(reflect.TypeOf(Vendor{}))

func (v *Vendor) UnmarshalJSON(data []byte) error {
	type alias Vendor
	var a alias
	if err := json.Unmarshal(data, &a); err != nil {
		// paid_so_far occasionally arrives as a numeric string; retry with
		// the column coerced before giving up.
		var fields map[string]json.RawMessage
		if mapErr := json.Unmarshal(data, &fields); mapErr != nil {
			return err
		}
		if raw, ok := fields["paid_so_far"]; ok {
			var asAny any
			if json.Unmarshal(raw, &asAny) == nil {
				if f, numeric := ToFloat(asAny); numeric {
					fields["paid_so_far"], _ = json.Marshal(f)
					patched, _ := json.Marshal(fields)
					if err2 := json.Unmarshal(patched, &a); err2 == nil {
						a.Extra = extraFields(patched, vendorKnown)
						*v = Vendor(a)
						return nil
					}
				}
			}
		}
		return err
	}
	a.Extra = extraFields(data, vendorKnown)
	*v = Vendor(a)
	return nil
}

func (v Vendor) MarshalJSON() ([]byte, error) {
	type alias Vendor
	return marshalWithExtra(alias(v), v.Extra)
}

// Paid returns the running paid counter, defaulting to zero.
func (v Vendor) Paid() float64 {
	if v.PaidSoFar == nil {
		return 0
	}
	return *v.PaidSoFar
}

// DisplayName prefers the personal name over the business name, with an
// em-dash placeholder when both are absent.
func (v Vendor) DisplayName() string {
	if v.VendorFullName != "" {
		return v.VendorFullName
	}
	if v.BusinessName != "" {
		return v.BusinessName
	}
	return "—"
}
