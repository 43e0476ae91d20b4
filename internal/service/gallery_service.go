package service

import (
	"context"
	"fmt"
	"time"

	"spotnere-backend/internal/model"
	"spotnere-backend/internal/supabase"
)

// GalleryService manages the gallery_images table.
type GalleryService struct {
	sb *supabase.Client
}

func NewGalleryService(sb *supabase.Client) *GalleryService {
	return &GalleryService{sb: sb}
}

// ListByPlace returns the gallery images for a place, oldest first.
func (s *GalleryService) ListByPlace(ctx context.Context, placeID string) ([]model.GalleryImage, error) {
	var images []model.GalleryImage
	q := supabase.Where("place_id", placeID).Order("created_at", false)
	if err := s.sb.SelectAs(ctx, "gallery_images", q, &images); err != nil {
		return nil, err
	}
	if images == nil {
		images = []model.GalleryImage{}
	}
	return images, nil
}

// Create attaches a new image record to a place. The place must exist.
func (s *GalleryService) Create(ctx context.Context, placeID, imageURL string) (*model.GalleryImage, error) {
	rows, err := s.sb.Select(ctx, "places", supabase.Columns("id").Eq("id", placeID))
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, NotFoundf("Place with id %s not found", placeID)
	}

	payload := map[string]any{
		"place_id":          placeID,
		"gallery_image_url": imageURL,
		"created_at":        time.Now().UTC().Format(time.RFC3339),
	}

	var created []model.GalleryImage
	if err := s.sb.InsertAs(ctx, "gallery_images", payload, &created); err != nil {
		return nil, err
	}
	if len(created) == 0 {
		return nil, fmt.Errorf("failed to create gallery image record")
	}
	return &created[0], nil
}

// Delete removes a gallery image, verifying it belongs to the given place.
func (s *GalleryService) Delete(ctx context.Context, placeID, imageID string) error {
	rows, err := s.sb.Select(ctx, "gallery_images", supabase.Where("id", imageID).Eq("place_id", placeID))
	if err != nil {
		return err
	}
	if len(rows) == 0 {
		return NotFoundf("Gallery image not found")
	}
	_, err = s.sb.Delete(ctx, "gallery_images", supabase.Where("id", imageID))
	return err
}
