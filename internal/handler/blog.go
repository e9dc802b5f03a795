package handler

import (
	"net/http"

	"go.uber.org/zap"

	"github.com/pixelforge/studio-api/internal/middleware"
	"github.com/pixelforge/studio-api/internal/service"
	"github.com/pixelforge/studio-api/internal/validate"
)

// BlogHandler exposes the article operations over HTTP.
type BlogHandler struct {
	service *service.BlogService
	logger  *zap.Logger
}

// NewBlogHandler creates a new blog handler.
func NewBlogHandler(service *service.BlogService, logger *zap.Logger) *BlogHandler {
	return &BlogHandler{service: service, logger: logger}
}

// Get handles GET /v1/blogs.
func (h *BlogHandler) Get(w http.ResponseWriter, r *http.Request) {
	req, fieldErrs := validate.BlogGet(queryInput(r))
	if len(fieldErrs) > 0 {
		WriteValidation(w, fieldErrs)
		return
	}

	result, err := h.service.Get(r.Context(), middleware.SessionFrom(r.Context()), req)
	if err != nil {
		WriteServiceError(w, h.logger, err)
		return
	}
	WriteData(w, http.StatusOK, result)
}

// Create handles POST /v1/blogs.
func (h *BlogHandler) Create(w http.ResponseWriter, r *http.Request) {
	in, ok := bodyInput(w, r)
	if !ok {
		return
	}
	req, fieldErrs := validate.BlogCreate(in)
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

// Update handles PATCH /v1/blogs.
func (h *BlogHandler) Update(w http.ResponseWriter, r *http.Request) {
	in, ok := bodyInput(w, r)
	if !ok {
		return
	}
	req, fieldErrs := validate.BlogUpdate(in)
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

// Remove handles DELETE /v1/blogs.
func (h *BlogHandler) Remove(w http.ResponseWriter, r *http.Request) {
	in, ok := bodyInput(w, r)
	if !ok {
		return
	}
	req, fieldErrs := validate.BlogRemove(in)
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
