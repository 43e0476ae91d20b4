package model

// Review ties a rating and free text to a user and a place. Displayed place
// ratings are derived from these rows at read time, never stored back.
type Review struct {
	ID        string   `json:"id,omitempty"`
	UserID    string   `json:"user_id,omitempty"`
	PlaceID   string   `json:"place_id,omitempty"`
	Review    string   `json:"review,omitempty"`
	Rating    *float64 `json:"rating,omitempty"`
	CreatedAt string   `json:"created_at,omitempty"`
}

// GalleryImage is a stored image reference for a place.
type GalleryImage struct {
	ID              string `json:"id,omitempty"`
	PlaceID         string `json:"place_id,omitempty"`
	GalleryImageURL string `json:"gallery_image_url,omitempty"`
	CreatedAt       string `json:"created_at,omitempty"`
}
