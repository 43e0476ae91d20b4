package service

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"go.uber.org/zap"

	"spotnere-backend/internal/model"
	"spotnere-backend/internal/supabase"
)

// fakeBackend emulates just enough of the tables API for service tests.
type fakeBackend struct {
	t *testing.T
	// visible is the stored places.visible value; nil models SQL NULL.
	visible *bool
	patches []map[string]any
	inserts []map[string]any
}

func (f *fakeBackend) handler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !strings.HasPrefix(r.URL.Path, "/rest/v1/places") {
			f.t.Errorf("unexpected path %s", r.URL.Path)
			http.NotFound(w, r)
			return
		}
		switch r.Method {
		case http.MethodGet:
			row := map[string]any{"id": "p1", "name": "Harbor View"}
			if f.visible != nil {
				row["visible"] = *f.visible
			}
			json.NewEncoder(w).Encode([]map[string]any{row})
		case http.MethodPatch:
			body, _ := io.ReadAll(r.Body)
			var patch map[string]any
			json.Unmarshal(body, &patch)
			f.patches = append(f.patches, patch)
			if v, ok := patch["visible"].(bool); ok {
				f.visible = &v
			}
			json.NewEncoder(w).Encode([]map[string]any{{"id": "p1"}})
		case http.MethodPost:
			body, _ := io.ReadAll(r.Body)
			var insert map[string]any
			json.Unmarshal(body, &insert)
			f.inserts = append(f.inserts, insert)
			stored := make(map[string]any, len(insert)+1)
			for k, v := range insert {
				stored[k] = v
			}
			stored["id"] = "new-id"
			json.NewEncoder(w).Encode([]map[string]any{stored})
		default:
			f.t.Errorf("unexpected method %s", r.Method)
		}
	}
}

func newTestPlaceService(t *testing.T, backend *fakeBackend) *PlaceService {
	t.Helper()
	server := httptest.NewServer(backend.handler())
	t.Cleanup(server.Close)
	sb, err := supabase.New(supabase.Config{
		ProjectURL: server.URL,
		APIKey:     "test-key",
		HTTPClient: server.Client(),
	})
	if err != nil {
		t.Fatalf("client: %v", err)
	}
	return NewPlaceService(sb, "places_images", zap.NewNop())
}

func TestToggleVisibilityNullBecomesTrue(t *testing.T) {
	backend := &fakeBackend{t: t}
	svc := newTestPlaceService(t, backend)

	if _, err := svc.ToggleVisibility(context.Background(), "p1"); err != nil {
		t.Fatalf("toggle: %v", err)
	}
	if len(backend.patches) != 1 {
		t.Fatalf("expected 1 update, got %d", len(backend.patches))
	}
	if backend.patches[0]["visible"] != true {
		t.Fatalf("null visibility should toggle to true: %v", backend.patches[0])
	}

	// Toggling again flips the now-true flag to false.
	if _, err := svc.ToggleVisibility(context.Background(), "p1"); err != nil {
		t.Fatalf("second toggle: %v", err)
	}
	if backend.patches[1]["visible"] != false {
		t.Fatalf("true visibility should toggle to false: %v", backend.patches[1])
	}
}

func TestCreateRejectsOutOfRangeRating(t *testing.T) {
	backend := &fakeBackend{t: t}
	svc := newTestPlaceService(t, backend)

	// 9.95 is rejected too: the raw value is checked, not the rounded one.
	for _, rating := range []float64{10.0, 9.95} {
		_, err := svc.Create(context.Background(), model.Place{Name: "X", Rating: &rating})
		var invalid *ValidationError
		if !errors.As(err, &invalid) {
			t.Fatalf("rating %v: expected ValidationError, got %v", rating, err)
		}
		if !strings.Contains(err.Error(), "exceeds maximum allowed value of 9.9") {
			t.Fatalf("unexpected message: %v", err)
		}
	}
	if len(backend.inserts) != 0 {
		t.Fatalf("invalid rating must not reach the backend")
	}
}

func TestCreateRoundsAndStripsServerFields(t *testing.T) {
	backend := &fakeBackend{t: t}
	svc := newTestPlaceService(t, backend)

	rating := 4.44
	price := 100.005
	created, err := svc.Create(context.Background(), model.Place{
		ID:        "client-chosen", // must be stripped
		Name:      "Harbor View",
		Rating:    &rating,
		AvgPrice:  &price,
		CreatedAt: "2000-01-01T00:00:00Z",
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if created.ID != "new-id" {
		t.Fatalf("should return the stored row: %+v", created)
	}

	sent := backend.inserts[0]
	if sent["rating"] != 4.4 {
		t.Fatalf("rating not rounded before write: %v", sent["rating"])
	}
	if _, ok := sent["id"]; ok {
		t.Fatalf("client id should be stripped: %v", sent["id"])
	}
	if sent["created_at"] == "2000-01-01T00:00:00Z" {
		t.Fatalf("client timestamps should be replaced")
	}
	if sent["created_at"] == nil || sent["updated_at"] == nil {
		t.Fatalf("server timestamps missing: %v", sent)
	}
}

func TestUpdateRefetchesFullRow(t *testing.T) {
	backend := &fakeBackend{t: t}
	svc := newTestPlaceService(t, backend)

	updated, err := svc.Update(context.Background(), "p1", model.Place{Name: "Renamed"})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.ID != "p1" {
		t.Fatalf("expected refetched row: %+v", updated)
	}
	if len(backend.patches) != 1 || backend.patches[0]["name"] != "Renamed" {
		t.Fatalf("patch payload: %v", backend.patches)
	}
}
