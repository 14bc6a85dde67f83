package model

import (
	"errors"
	"strings"
)

// Rating bounds accepted by the API.
const (
	MinRating = 1
	MaxRating = 5
)

// Review — отзыв о месте.
type Review struct {
	ID     string    `json:"id,omitempty"`
	Text   string    `json:"text"`
	Rating int       `json:"rating"`
	User   *User     `json:"user,omitempty"`
	Place  *PlaceRef `json:"place,omitempty"`
}

// PlaceRef is the short place form embedded in a review.
type PlaceRef struct {
	ID    string `json:"id"`
	Title string `json:"title,omitempty"`
}

// NewReview — тело POST <reviews>/.
type NewReview struct {
	Text    string `json:"text"`
	Rating  int    `json:"rating"`
	UserID  string `json:"user_id"`
	PlaceID string `json:"place_id"`
}

// Validate checks the payload before it is sent.
func (r NewReview) Validate() error {
	if strings.TrimSpace(r.Text) == "" {
		return errors.New("review text is required")
	}
	if r.Rating < MinRating || r.Rating > MaxRating {
		return errors.New("rating must be between 1 and 5")
	}
	if r.PlaceID == "" {
		return errors.New("place id is required")
	}
	if r.UserID == "" {
		return errors.New("user id is required")
	}
	return nil
}
