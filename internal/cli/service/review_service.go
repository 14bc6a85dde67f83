package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"HBnB/internal/cli/api"
	"HBnB/internal/cli/auth"
	"HBnB/internal/cli/model"
)

// ReviewService — чтение и отправка отзывов.
type ReviewService interface {
	ListForPlace(ctx context.Context, placeID string) ([]model.Review, error)
	// Submit posts a review on behalf of the current user.
	Submit(ctx context.Context, placeID string, rating int, text string) (*model.Review, error)
}

type reviewService struct {
	api        api.API
	tokens     auth.TokenStore
	reviewsURL string
}

// NewReviewService конструктор сервиса отзывов.
func NewReviewService(a api.API, tokens auth.TokenStore, reviewsURL string) ReviewService {
	return &reviewService{api: a, tokens: tokens, reviewsURL: reviewsURL}
}

func (s *reviewService) ListForPlace(ctx context.Context, placeID string) ([]model.Review, error) {
	if placeID == "" {
		return nil, errors.New("place id is required")
	}
	var reviews []model.Review
	if err := s.api.Get(ctx, join(s.reviewsURL, "places", placeID, "reviews"), &reviews); err != nil {
		return nil, fmt.Errorf("list reviews: %w", err)
	}
	return reviews, nil
}

func (s *reviewService) Submit(ctx context.Context, placeID string, rating int, text string) (*model.Review, error) {
	tok, ok := s.tokens.Get()
	if !ok {
		return nil, ErrNotAuthenticated
	}
	// user_id берём из claim "sub" без проверки подписи: токен проверяет сервер.
	userID, err := auth.SubjectFromToken(tok)
	if err != nil {
		return nil, fmt.Errorf("submit review: %w", err)
	}
	nr := model.NewReview{Text: strings.TrimSpace(text), Rating: rating, UserID: userID, PlaceID: placeID}
	if err := nr.Validate(); err != nil {
		return nil, err
	}
	var created model.Review
	if err := s.api.Post(ctx, join(s.reviewsURL)+"/", nr, &created); err != nil {
		return nil, fmt.Errorf("submit review: %w", err)
	}
	return &created, nil
}
