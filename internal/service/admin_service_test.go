package service

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"spotnere-backend/internal/supabase"
)

func newTestAdminService(t *testing.T, handler http.HandlerFunc) *AdminService {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	sb, err := supabase.New(supabase.Config{
		ProjectURL: server.URL,
		APIKey:     "test-key",
		HTTPClient: server.Client(),
	})
	if err != nil {
		t.Fatalf("client: %v", err)
	}
	return NewAdminService(sb)
}

func TestIsAdminRole(t *testing.T) {
	for _, role := range []string{"admin", "super_admin", "super admin", "administrator", "superadmin", "super-admin", "  Admin  ", "SUPER_ADMIN"} {
		if !isAdminRole(role) {
			t.Fatalf("%q should qualify", role)
		}
	}
	for _, role := range []string{"", "editor", "viewer", "vendor", "admins"} {
		if isAdminRole(role) {
			t.Fatalf("%q should not qualify", role)
		}
	}
}

func TestListAdministrationShapesRows(t *testing.T) {
	svc := newTestAdminService(t, func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode([]map[string]any{
			{"id": "a1", "first_name": "Asha", "last_name": "Rao", "email": "asha@example.com", "phone_number": "123", "role": "admin"},
			{"id": "a2", "email": "bare@example.com", "role": "Super Admin"},
			{"id": "u1", "first_name": "Not", "last_name": "Admin", "role": "viewer"},
		})
	})

	rows, err := svc.ListAdministration(context.Background())
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("non-admin roles should be filtered: %d rows", len(rows))
	}
	if rows[0].DisplayName != "Asha Rao" || rows[0].Phone != "123" {
		t.Fatalf("first row shaping: %+v", rows[0])
	}
	if rows[1].DisplayName != "—" || rows[1].Phone != "—" {
		t.Fatalf("missing fields should show placeholders: %+v", rows[1])
	}
	if rows[1].Role != "Super Admin" {
		t.Fatalf("role should keep stored casing: %q", rows[1].Role)
	}
}

func TestGetByIDNotFound(t *testing.T) {
	svc := newTestAdminService(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[]`))
	})

	_, err := svc.GetByID(context.Background(), "missing")
	var notFound *NotFoundError
	if !errors.As(err, &notFound) {
		t.Fatalf("expected NotFoundError, got %v", err)
	}
	if err.Error() != "Admin not found" {
		t.Fatalf("message: %q", err.Error())
	}
}
