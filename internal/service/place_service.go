package service

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"spotnere-backend/internal/model"
	"spotnere-backend/internal/supabase"
)

// PlaceService handles the places table and its derived statistics.
type PlaceService struct {
	sb     *supabase.Client
	bucket string
	log    *zap.Logger
}

func NewPlaceService(sb *supabase.Client, bucket string, log *zap.Logger) *PlaceService {
	return &PlaceService{sb: sb, bucket: bucket, log: log}
}

// List returns every place. Empty table yields an empty slice, not an error.
func (s *PlaceService) List(ctx context.Context) ([]model.Place, error) {
	var places []model.Place
	if err := s.sb.SelectAs(ctx, "places", nil, &places); err != nil {
		return nil, err
	}
	if places == nil {
		places = []model.Place{}
	}
	return places, nil
}

// Count returns the total number of places without fetching rows.
func (s *PlaceService) Count(ctx context.Context) (int64, error) {
	return s.sb.Count(ctx, "places")
}

// CountriesCount returns the number of distinct non-blank countries.
func (s *PlaceService) CountriesCount(ctx context.Context) (int, error) {
	rows, err := s.sb.Select(ctx, "places", supabase.Columns("country"))
	if err != nil {
		return 0, err
	}
	countries := make(map[string]struct{})
	for _, row := range rows {
		if c, ok := row["country"].(string); ok {
			if trimmed := strings.TrimSpace(c); trimmed != "" {
				countries[trimmed] = struct{}{}
			}
		}
	}
	return len(countries), nil
}

// AverageRating averages the rating column across all places, two decimals.
func (s *PlaceService) AverageRating(ctx context.Context) (float64, error) {
	rows, err := s.sb.Select(ctx, "places", supabase.Columns("rating"))
	if err != nil {
		return 0, err
	}
	var sum float64
	var n int
	for _, row := range rows {
		if v, ok := model.ToFloat(row["rating"]); ok {
			sum += v
			n++
		}
	}
	if n == 0 {
		return 0, nil
	}
	return model.RoundMoney(sum / float64(n)), nil
}

// Get fetches one place. Its displayed rating and review_count are recomputed
// from the reviews table; a failed reviews fetch degrades to the stored values.
func (s *PlaceService) Get(ctx context.Context, id string) (*model.Place, error) {
	var places []model.Place
	if err := s.sb.SelectAs(ctx, "places", supabase.Columns("*").Eq("id", id), &places); err != nil {
		return nil, err
	}
	if len(places) == 0 {
		return nil, NotFoundf("Place with id %s not found", id)
	}
	place := places[0]
	s.enrichRating(ctx, &place)
	return &place, nil
}

// enrichRating overwrites rating/review_count with values derived from the
// reviews table. Best effort: errors are logged, never surfaced.
func (s *PlaceService) enrichRating(ctx context.Context, place *model.Place) {
	rows, err := s.sb.Select(ctx, "reviews", supabase.Columns("rating").Eq("place_id", place.ID))
	if err != nil {
		s.log.Warn("reviews fetch failed, keeping stored rating",
			zap.String("place_id", place.ID), zap.Error(err))
		return
	}
	count := len(rows)
	place.ReviewCount = &count
	var sum float64
	var n int
	for _, row := range rows {
		if v, ok := model.ToFloat(row["rating"]); ok {
			sum += v
			n++
		}
	}
	if n == 0 {
		place.Rating = nil
		return
	}
	avg := model.RoundRating(sum / float64(n))
	place.Rating = &avg
}

// Create validates numeric fields and inserts a new place. The rating
// magnitude is checked before rounding.
func (s *PlaceService) Create(ctx context.Context, place model.Place) (*model.Place, error) {
	payload, err := writePayload(place)
	if err != nil {
		return nil, err
	}
	now := time.Now().UTC().Format(time.RFC3339)
	payload["created_at"] = now
	payload["updated_at"] = now

	var created []model.Place
	if err := s.sb.InsertAs(ctx, "places", payload, &created); err != nil {
		return nil, err
	}
	if len(created) == 0 {
		return nil, fmt.Errorf("insert returned no rows")
	}
	return &created[0], nil
}

// Update validates numeric fields and replaces the stored record, then
// refetches the full row.
func (s *PlaceService) Update(ctx context.Context, id string, place model.Place) (*model.Place, error) {
	if err := s.mustExist(ctx, id); err != nil {
		return nil, err
	}
	payload, err := writePayload(place)
	if err != nil {
		return nil, err
	}
	if _, err := s.sb.Update(ctx, "places", supabase.Where("id", id), payload); err != nil {
		return nil, err
	}
	return s.fetchFull(ctx, id)
}

// ToggleVisibility flips the visible flag: true becomes false, false or null
// becomes true.
func (s *PlaceService) ToggleVisibility(ctx context.Context, id string) (*model.Place, error) {
	rows, err := s.sb.Select(ctx, "places", supabase.Columns("visible, id").Eq("id", id))
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, NotFoundf("Place with id %s not found", id)
	}
	visible, _ := rows[0]["visible"].(bool)
	next := !visible
	if _, err := s.sb.Update(ctx, "places", supabase.Where("id", id), map[string]any{"visible": next}); err != nil {
		return nil, err
	}
	return s.fetchFull(ctx, id)
}

// Delete removes a place and, best effort, its banner image from storage.
// A failed image removal is logged and the row deletion proceeds.
func (s *PlaceService) Delete(ctx context.Context, id string) error {
	if err := s.mustExist(ctx, id); err != nil {
		return err
	}
	imagePath := fmt.Sprintf("place-banners/%s/banner-%s.jpg", id, id)
	if err := s.sb.RemoveObjects(ctx, s.bucket, []string{imagePath}); err != nil {
		s.log.Warn("banner image removal failed, deleting place anyway",
			zap.String("place_id", id), zap.Error(err))
	}
	if _, err := s.sb.Delete(ctx, "places", supabase.Where("id", id)); err != nil {
		return err
	}
	return nil
}

func (s *PlaceService) mustExist(ctx context.Context, id string) error {
	rows, err := s.sb.Select(ctx, "places", supabase.Columns("id").Eq("id", id))
	if err != nil {
		return err
	}
	if len(rows) == 0 {
		return NotFoundf("Place with id %s not found", id)
	}
	return nil
}

func (s *PlaceService) fetchFull(ctx context.Context, id string) (*model.Place, error) {
	var places []model.Place
	if err := s.sb.SelectAs(ctx, "places", supabase.Columns("*").Eq("id", id), &places); err != nil {
		return nil, err
	}
	if len(places) == 0 {
		return nil, fmt.Errorf("failed to fetch updated place data")
	}
	return &places[0], nil
}

// writePayload turns a place into the column map sent on insert/update:
// id and timestamps are never client-set, absent fields stay absent, and the
// numeric columns are validated and rounded to their storage precision.
func writePayload(place model.Place) (map[string]any, error) {
	if place.Rating != nil {
		if err := model.ValidateRating(*place.Rating); err != nil {
			return nil, Validationf("%s", err.Error())
		}
		rounded := model.RoundRating(*place.Rating)
		place.Rating = &rounded
	}
	if place.AvgPrice != nil {
		rounded := model.RoundMoney(*place.AvgPrice)
		place.AvgPrice = &rounded
	}

	data, err := json.Marshal(place)
	if err != nil {
		return nil, err
	}
	payload := make(map[string]any)
	if err := json.Unmarshal(data, &payload); err != nil {
		return nil, err
	}
	delete(payload, "id")
	delete(payload, "created_at")
	delete(payload, "updated_at")
	return payload, nil
}
