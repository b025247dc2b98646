package client

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"hotelbooking/pkg/model"
)

var ErrMissingReference = errors.New("response has no booking reference")

// BookingClient talks to a running booking service over its public API.
type BookingClient struct {
	httpClient *HttpClient
}

func NewBookingClient(baseUrl string) *BookingClient {
	return &BookingClient{
		httpClient: NewHttpClient(baseUrl),
	}
}

func (c *BookingClient) Book(ctx context.Context, form model.BookingForm) (string, error) {
	resp, err := c.httpClient.POST(ctx, "/api/v1/bookings", form)
	if err != nil {
		return "", err
	}
	if resp.StatusCode != http.StatusCreated {
		return "", asAPIError(resp)
	}

	var ref model.BookingReference
	if err := resp.DecodeData(&ref); err != nil {
		return "", err
	}
	if ref.Reference == "" {
		return "", ErrMissingReference
	}
	return ref.Reference, nil
}

func (c *BookingClient) GetByReference(ctx context.Context, reference string) (*model.BookingDetail, error) {
	resp, err := c.httpClient.GET(ctx, "/api/v1/bookings/reference/"+url.PathEscape(reference))
	if err != nil {
		return nil, err
	}
	if resp.StatusCode != http.StatusOK {
		return nil, asAPIError(resp)
	}

	var detail model.BookingDetail
	if err := resp.DecodeData(&detail); err != nil {
		return nil, err
	}
	return &detail, nil
}

func (c *BookingClient) Availability(ctx context.Context, form model.AvailabilityForm) ([]model.Room, error) {
	q := url.Values{}
	if form.HotelID > 0 {
		q.Set("hotel_id", strconv.FormatInt(form.HotelID, 10))
	}
	if form.HotelName != "" {
		q.Set("hotel_name", form.HotelName)
	}
	q.Set("from", form.From)
	q.Set("to", form.To)
	q.Set("people", strconv.Itoa(form.People))

	resp, err := c.httpClient.GET(ctx, "/api/v1/availability?"+q.Encode())
	if err != nil {
		return nil, err
	}
	if resp.StatusCode != http.StatusOK {
		return nil, asAPIError(resp)
	}

	rooms := []model.Room{}
	if err := resp.DecodeData(&rooms); err != nil {
		return nil, err
	}
	return rooms, nil
}

func (c *BookingClient) SearchHotels(ctx context.Context, name string) ([]model.HotelSummary, error) {
	resp, err := c.httpClient.GET(ctx, "/api/v1/hotels/search?name="+url.QueryEscape(name))
	if err != nil {
		return nil, err
	}
	if resp.StatusCode != http.StatusOK {
		return nil, asAPIError(resp)
	}

	hotels := []model.HotelSummary{}
	if err := resp.DecodeData(&hotels); err != nil {
		return nil, fmt.Errorf("failed to decode hotels: %w", err)
	}
	return hotels, nil
}
