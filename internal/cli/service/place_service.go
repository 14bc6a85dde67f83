package service

import (
	"context"
	"errors"
	"fmt"

	"HBnB/internal/cli/api"
	"HBnB/internal/cli/model"
)

// PlaceService — чтение мест.
type PlaceService interface {
	// List returns all places, filtered by maxPrice when it is positive.
	List(ctx context.Context, maxPrice float64) ([]model.Place, error)
	// Get returns a single place.
	Get(ctx context.Context, id string) (*model.Place, error)
}

type placeService struct {
	api       api.API
	placesURL string
}

// NewPlaceService конструктор сервиса мест.
func NewPlaceService(a api.API, placesURL string) PlaceService {
	return &placeService{api: a, placesURL: placesURL}
}

func (s *placeService) List(ctx context.Context, maxPrice float64) ([]model.Place, error) {
	var places []model.Place
	if err := s.api.Get(ctx, join(s.placesURL)+"/", &places); err != nil {
		return nil, fmt.Errorf("list places: %w", err)
	}
	return model.FilterByMaxPrice(places, maxPrice), nil
}

func (s *placeService) Get(ctx context.Context, id string) (*model.Place, error) {
	if id == "" {
		return nil, errors.New("place id is required")
	}
	var p model.Place
	if err := s.api.Get(ctx, join(s.placesURL, id), &p); err != nil {
		return nil, fmt.Errorf("get place %s: %w", id, err)
	}
	return &p, nil
}
