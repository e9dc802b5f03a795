package handler

import (
	"net/http"

	"go.uber.org/zap"

	"github.com/pixelforge/studio-api/internal/middleware"
	"github.com/pixelforge/studio-api/internal/service"
	"github.com/pixelforge/studio-api/internal/validate"
)

// ProjectHandler exposes the portfolio project operations over HTTP.
type ProjectHandler struct {
	service *service.ProjectService
	logger  *zap.Logger
}

// NewProjectHandler creates a new project handler.
func NewProjectHandler(service *service.ProjectService, logger *zap.Logger) *ProjectHandler {
	return &ProjectHandler{service: service, logger: logger}
}

// Get handles GET /v1/projects.
func (h *ProjectHandler) Get(w http.ResponseWriter, r *http.Request) {
	req, fieldErrs := validate.ProjectGet(queryInput(r))
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

// Create handles POST /v1/projects.
func (h *ProjectHandler) Create(w http.ResponseWriter, r *http.Request) {
	in, ok := bodyInput(w, r)
	if !ok {
		return
	}
	req, fieldErrs := validate.ProjectCreate(in)
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

// Update handles PATCH /v1/projects.
func (h *ProjectHandler) Update(w http.ResponseWriter, r *http.Request) {
	in, ok := bodyInput(w, r)
	if !ok {
		return
	}
	req, fieldErrs := validate.ProjectUpdate(in)
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

// Remove handles DELETE /v1/projects.
func (h *ProjectHandler) Remove(w http.ResponseWriter, r *http.Request) {
	in, ok := bodyInput(w, r)
	if !ok {
		return
	}
	req, fieldErrs := validate.ProjectRemove(in)
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
