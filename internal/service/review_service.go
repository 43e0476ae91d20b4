package service

import (
	"context"

	"spotnere-backend/internal/model"
	"spotnere-backend/internal/supabase"
)

const reviewJoinColumns = "id, user_id, place_id, review, rating, created_at, " +
	"users!user_id(first_name, last_name, email), places!place_id(name)"

// ReviewService reads the reviews table.
type ReviewService struct {
	sb *supabase.Client
}

func NewReviewService(sb *supabase.Client) *ReviewService {
	return &ReviewService{sb: sb}
}

// List returns all reviews newest first, with reviewer and place names
// flattened in.
func (s *ReviewService) List(ctx context.Context) ([]supabase.Row, error) {
	rows, err := s.sb.Select(ctx, "reviews",
		supabase.Columns(reviewJoinColumns).Order("created_at", true))
	if err != nil {
		return nil, err
	}
	out := make([]supabase.Row, 0, len(rows))
	for _, row := range rows {
		flat := flattenUserPlace(row)
		if v, present := flat["rating"]; present && v != nil {
			if f, ok := model.ToFloat(v); ok {
				flat["rating"] = f
			}
		}
		out = append(out, flat)
	}
	return out, nil
}
