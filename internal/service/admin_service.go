package service

import (
	"context"
	"strings"

	"spotnere-backend/internal/dto"
	"spotnere-backend/internal/supabase"
)

// Roles that qualify for the administration list. Matching is
// case-insensitive after trimming.
var adminRoles = map[string]struct{}{
	"admin":         {},
	"super_admin":   {},
	"super admin":   {},
	"administrator": {},
	"superadmin":    {},
	"super-admin":   {},
}

func isAdminRole(role string) bool {
	_, ok := adminRoles[strings.ToLower(strings.TrimSpace(role))]
	return ok
}

// AdminService reads admin profiles from the admins table.
type AdminService struct {
	sb *supabase.Client
}

func NewAdminService(sb *supabase.Client) *AdminService {
	return &AdminService{sb: sb}
}

func (s *AdminService) GetByID(ctx context.Context, id string) (supabase.Row, error) {
	rows, err := s.sb.Select(ctx, "admins", supabase.Where("id", id))
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, NotFoundf("Admin not found")
	}
	return rows[0], nil
}

func (s *AdminService) GetByEmail(ctx context.Context, email string) (supabase.Row, error) {
	rows, err := s.sb.Select(ctx, "admins", supabase.Where("email", email))
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, NotFoundf("Admin not found")
	}
	return rows[0], nil
}

// ListAdministration returns the admins whose role qualifies them for the
// administration page, shaped for display.
func (s *AdminService) ListAdministration(ctx context.Context) ([]dto.AdminRow, error) {
	columns := "id, first_name, last_name, phone_number, email, address, city, state, country, postal_code, role, created_at, updated_at"
	rows, err := s.sb.Select(ctx, "admins", supabase.Columns(columns))
	if err != nil {
		return nil, err
	}

	result := make([]dto.AdminRow, 0, len(rows))
	for _, row := range rows {
		role := stringField(row, "role")
		if !isAdminRole(role) {
			continue
		}
		name := fullName(row)
		if name == "" {
			name = "—"
		}
		phone := stringField(row, "phone_number")
		if phone == "" {
			phone = "—"
		}
		if role == "" {
			role = "—"
		}
		result = append(result, dto.AdminRow{
			ID:          stringField(row, "id"),
			DisplayName: name,
			Email:       stringField(row, "email"),
			Phone:       phone,
			Address:     row["address"],
			City:        row["city"],
			State:       row["state"],
			Country:     row["country"],
			PostalCode:  row["postal_code"],
			Role:        role,
			CreatedAt:   row["created_at"],
			UpdatedAt:   row["updated_at"],
		})
	}
	return result, nil
}
