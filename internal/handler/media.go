package handler

import (
	"net/http"

	"go.uber.org/zap"

	"github.com/pixelforge/studio-api/internal/middleware"
	"github.com/pixelforge/studio-api/internal/service"
	"github.com/pixelforge/studio-api/internal/validate"
)

// MediaHandler exposes the asset reference operations over HTTP.
type MediaHandler struct {
	service *service.MediaService
	logger  *zap.Logger
}

// NewMediaHandler creates a new media handler.
func NewMediaHandler(service *service.MediaService, logger *zap.Logger) *MediaHandler {
	return &MediaHandler{service: service, logger: logger}
}

// Get handles GET /v1/media.
func (h *MediaHandler) Get(w http.ResponseWriter, r *http.Request) {
	result, err := h.service.Get(r.Context(), middleware.SessionFrom(r.Context()))
	if err != nil {
		WriteServiceError(w, h.logger, err)
		return
	}
	WriteData(w, http.StatusOK, result)
}

// Sign handles POST /v1/media/sign.
func (h *MediaHandler) Sign(w http.ResponseWriter, r *http.Request) {
	in, ok := bodyInput(w, r)
	if !ok {
		return
	}
	req, fieldErrs := validate.MediaSign(in)
	if len(fieldErrs) > 0 {
		WriteValidation(w, fieldErrs)
		return
	}

	result, err := h.service.Sign(r.Context(), middleware.SessionFrom(r.Context()), req)
	if err != nil {
		WriteServiceError(w, h.logger, err)
		return
	}
	WriteData(w, http.StatusOK, result)
}

// Create handles POST /v1/media.
func (h *MediaHandler) Create(w http.ResponseWriter, r *http.Request) {
	in, ok := bodyInput(w, r)
	if !ok {
		return
	}
	req, fieldErrs := validate.MediaCreate(in)
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

// Remove handles DELETE /v1/media.
func (h *MediaHandler) Remove(w http.ResponseWriter, r *http.Request) {
	in, ok := bodyInput(w, r)
	if !ok {
		return
	}
	req, fieldErrs := validate.MediaRemove(in)
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
