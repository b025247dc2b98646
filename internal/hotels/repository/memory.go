package repository

import (
	"context"
	"slices"
	"strings"
	"sync"

	hotelserrors "hotelbooking/internal/hotels/errors"
	"hotelbooking/pkg/model"
)

type memoryHotelRepository struct {
	mu       sync.RWMutex
	hotels   []*model.Hotel // ascending id
	hotelSeq int64
	roomSeq  int64
}

func NewMemoryHotelRepository() HotelRepository {
	return &memoryHotelRepository{}
}

func (r *memoryHotelRepository) Create(ctx context.Context, hotel *model.Hotel) error {
	if err := validateRooms(hotel.Rooms); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.hotelSeq++
	hotel.ID = r.hotelSeq
	for i := range hotel.Rooms {
		r.roomSeq++
		hotel.Rooms[i].ID = r.roomSeq
		hotel.Rooms[i].HotelID = hotel.ID
	}

	r.hotels = append(r.hotels, cloneHotel(hotel))
	return nil
}

func cloneHotel(h *model.Hotel) *model.Hotel {
	c := *h
	c.Rooms = slices.Clone(h.Rooms)
	return &c
}

func (r *memoryHotelRepository) GetHotelWithRooms(ctx context.Context, id int64) (*model.Hotel, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, h := range r.hotels {
		if h.ID == id {
			return cloneHotel(h), nil
		}
	}
	return nil, hotelserrors.ErrNotFound
}

func (r *memoryHotelRepository) FindHotelByName(ctx context.Context, name string) (*model.Hotel, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, h := range r.hotels {
		if h.Name == name {
			return cloneHotel(h), nil
		}
	}
	return nil, hotelserrors.ErrNotFound
}

func (r *memoryHotelRepository) SearchHotels(ctx context.Context, query string) ([]model.HotelSummary, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	query = strings.ToLower(query)
	out := []model.HotelSummary{}
	for _, h := range r.hotels {
		if strings.Contains(strings.ToLower(h.Name), query) {
			out = append(out, model.HotelSummary{ID: h.ID, Name: h.Name})
			if len(out) == MaxSearchResults {
				break
			}
		}
	}
	return out, nil
}

func (r *memoryHotelRepository) DeleteAll(ctx context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.hotels = nil
	return nil
}

func (r *memoryHotelRepository) Ping(ctx context.Context) error {
	return ctx.Err()
}
