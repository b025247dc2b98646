package handler

import (
	"net/http"

	"hotelbooking/internal/bookings/service"
	httputil "hotelbooking/pkg/http"
	"hotelbooking/pkg/logger"
	"hotelbooking/pkg/model"

	"github.com/julienschmidt/httprouter"
)

type BookingHandler struct {
	service service.BookingService
	log     *logger.Logger
}

func NewBookingHandler(service service.BookingService, log *logger.Logger) *BookingHandler {
	return &BookingHandler{
		service: service,
		log:     log,
	}
}

func (h *BookingHandler) Create(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	var form model.BookingForm
	if err := httputil.DecodeJSON(r, &form); err != nil {
		httputil.WriteError(w, err)
		return
	}

	from, err := httputil.ParseDateTime("from", form.From)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	to, err := httputil.ParseDateTime("to", form.To)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}

	ref, err := h.service.Book(r.Context(), &model.BookingRequest{
		HotelID: form.HotelID,
		From:    from,
		To:      to,
		People:  form.People,
	})
	if err != nil {
		httputil.WriteError(w, err)
		return
	}

	httputil.WriteCreated(w, model.BookingReference{Reference: ref})
}

func (h *BookingHandler) GetByReference(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	detail, err := h.service.GetByReference(r.Context(), ps.ByName("reference"))
	if err != nil {
		httputil.WriteError(w, err)
		return
	}

	httputil.WriteSuccess(w, detail)
}

func (h *BookingHandler) Availability(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	query := r.URL.Query()

	hotelID, err := httputil.QueryInt64(r, "hotel_id")
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	people, err := httputil.QueryInt(r, "people")
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	from, err := httputil.ParseDateTime("from", query.Get("from"))
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	to, err := httputil.ParseDateTime("to", query.Get("to"))
	if err != nil {
		httputil.WriteError(w, err)
		return
	}

	rooms, err := h.service.Available(r.Context(), &model.AvailabilityQuery{
		HotelID:   hotelID,
		HotelName: query.Get("hotel_name"),
		From:      from,
		To:        to,
		People:    people,
	})
	if err != nil {
		httputil.WriteError(w, err)
		return
	}

	httputil.WriteSuccess(w, rooms)
}

func (h *BookingHandler) RegisterRoutes(router *httprouter.Router) {
	router.POST("/api/v1/bookings", h.Create)
	router.GET("/api/v1/bookings/reference/:reference", h.GetByReference)
	router.GET("/api/v1/availability", h.Availability)
}
