package handler

import (
	"net/http"

	"go.uber.org/zap"

	"github.com/pixelforge/studio-api/internal/middleware"
	"github.com/pixelforge/studio-api/internal/service"
	"github.com/pixelforge/studio-api/internal/validate"
)

// FeaturedHandler exposes the curation operations over HTTP.
type FeaturedHandler struct {
	service *service.FeaturedService
	logger  *zap.Logger
}

// NewFeaturedHandler creates a new featured handler.
func NewFeaturedHandler(service *service.FeaturedService, logger *zap.Logger) *FeaturedHandler {
	return &FeaturedHandler{service: service, logger: logger}
}

// Get handles GET /v1/featured.
func (h *FeaturedHandler) Get(w http.ResponseWriter, r *http.Request) {
	req, fieldErrs := validate.FeaturedGet(queryInput(r))
	if len(fieldErrs) > 0 {
		WriteValidation(w, fieldErrs)
		return
	}

	result, err := h.service.Get(r.Context(), req)
	if err != nil {
		WriteServiceError(w, h.logger, err)
		return
	}
	WriteData(w, http.StatusOK, result)
}

// Create handles POST /v1/featured.
func (h *FeaturedHandler) Create(w http.ResponseWriter, r *http.Request) {
	in, ok := bodyInput(w, r)
	if !ok {
		return
	}
	req, fieldErrs := validate.FeaturedCreate(in)
	if len(fieldErrs) > 0 {
		WriteValidation(w, fieldErrs)
		return
	}

	result, err := h.service.Create(r.Context(), middleware.SessionFrom(r.Context()), req)
	if err != nil {
		WriteServiceError(w, h.logger, err)
		return
	}
	WriteData(w, http.StatusCreated, result)
}

// Update handles PATCH /v1/featured.
func (h *FeaturedHandler) Update(w http.ResponseWriter, r *http.Request) {
	in, ok := bodyInput(w, r)
	if !ok {
		return
	}
	req, fieldErrs := validate.FeaturedUpdate(in)
	if len(fieldErrs) > 0 {
		WriteValidation(w, fieldErrs)
		return
	}

	if err := h.service.Update(r.Context(), middleware.SessionFrom(r.Context()), req); err != nil {
		WriteServiceError(w, h.logger, err)
		return
	}
	WriteData(w, http.StatusOK, nil)
}

// Remove handles DELETE /v1/featured.
func (h *FeaturedHandler) Remove(w http.ResponseWriter, r *http.Request) {
	in, ok := bodyInput(w, r)
	if !ok {
		return
	}
	req, fieldErrs := validate.FeaturedRemove(in)
	if len(fieldErrs) > 0 {
		WriteValidation(w, fieldErrs)
		return
	}

	if err := h.service.Remove(r.Context(), middleware.SessionFrom(r.Context()), req); err != nil {
		WriteServiceError(w, h.logger, err)
		return
	}
	WriteData(w, http.StatusOK, nil)
}
