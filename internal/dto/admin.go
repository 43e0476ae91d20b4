package dto

// AdminRow is an admin profile shaped for the administration page.
type AdminRow struct {
	ID          string `json:"id"`
	DisplayName string `json:"display_name"`
	Email       string `json:"email"`
	Phone       string `json:"phone"`
	Address     any    `json:"address"`
	City        any    `json:"city"`
	State       any    `json:"state"`
	Country     any    `json:"country"`
	PostalCode  any    `json:"postal_code"`
	Role        string `json:"role"`
	CreatedAt   any    `json:"created_at"`
	UpdatedAt   any    `json:"updated_at"`
}
