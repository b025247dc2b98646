package service

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	hotelserrors "hotelbooking/internal/hotels/errors"
	"hotelbooking/internal/hotels/repository"
	"hotelbooking/pkg/config"
	apperrors "hotelbooking/pkg/errors"
	"hotelbooking/pkg/model"
	"hotelbooking/pkg/sanitizer"
)

const maxQueryLength = 200

type HotelService interface {
	Search(ctx context.Context, name string) ([]model.HotelSummary, error)
	GetByID(ctx context.Context, id int64) (*model.Hotel, error)
}

type hotelService struct {
	repo repository.HotelRepository
	cfg  *config.Config
}

func NewHotelService(repo repository.HotelRepository, cfg *config.Config) HotelService {
	return &hotelService{
		repo: repo,
		cfg:  cfg,
	}
}

func (s *hotelService) Search(ctx context.Context, name string) ([]model.HotelSummary, error) {
	query := sanitizer.SanitizeSearchQuery(name)
	if query == "" {
		return nil, apperrors.InvalidInput("Search query cannot be empty")
	}
	if len(query) > maxQueryLength {
		return nil, apperrors.InvalidInput(fmt.Sprintf("Search query must be at most %d characters", maxQueryLength))
	}

	hotels, err := s.repo.SearchHotels(ctx, query)
	if err != nil {
		s.cfg.Log.Error("Failed to search hotels", "query", query, "error", err)
		return nil, apperrors.Internal("Failed to search hotels", err)
	}

	s.cfg.Log.Debug("Hotel search completed", "query", query, "results", len(hotels))
	return hotels, nil
}

func (s *hotelService) GetByID(ctx context.Context, id int64) (*model.Hotel, error) {
	if id <= 0 {
		return nil, apperrors.InvalidInput("Hotel ID must be a positive integer")
	}

	hotel, err := s.repo.GetHotelWithRooms(ctx, id)
	if err != nil {
		if errors.Is(err, hotelserrors.ErrNotFound) {
			return nil, apperrors.NotFoundWithID("Hotel", strconv.FormatInt(id, 10)).WithCause(err)
		}
		s.cfg.Log.Error("Failed to get hotel", "hotel_id", id, "error", err)
		return nil, apperrors.Internal("Failed to retrieve hotel", err)
	}
	return hotel, nil
}
