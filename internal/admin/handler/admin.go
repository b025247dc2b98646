package handler

import (
	"context"
	"net/http"

	"hotelbooking/internal/seed"
	apperrors "hotelbooking/pkg/errors"
	httputil "hotelbooking/pkg/http"
	"hotelbooking/pkg/logger"

	"github.com/julienschmidt/httprouter"
)

type Seeder interface {
	SeedRiverView(ctx context.Context) (*seed.Result, error)
	Reset(ctx context.Context) error
}

// AdminHandler exposes the seed and reset utilities. It is only mounted when admin routes are
// enabled in configuration.
type AdminHandler struct {
	seeder Seeder
	log    *logger.Logger
}

func NewAdminHandler(seeder Seeder, log *logger.Logger) *AdminHandler {
	return &AdminHandler{
		seeder: seeder,
		log:    log,
	}
}

func (h *AdminHandler) Seed(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	res, err := h.seeder.SeedRiverView(r.Context())
	if err != nil {
		h.log.Error("Seed failed", "error", err)
		httputil.WriteError(w, apperrors.Internal("Failed to seed data", err))
		return
	}

	httputil.WriteSuccess(w, res)
}

func (h *AdminHandler) Reset(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	if err := h.seeder.Reset(context.WithoutCancel(r.Context())); err != nil {
		h.log.Error("Reset failed", "error", err)
		httputil.WriteError(w, apperrors.Internal("Failed to reset data", err))
		return
	}

	httputil.WriteSuccess(w, map[string]string{"status": "reset"})
}

func (h *AdminHandler) RegisterRoutes(router *httprouter.Router) {
	router.POST("/api/v1/admin/seed", h.Seed)
	router.POST("/api/v1/admin/reset", h.Reset)
}
