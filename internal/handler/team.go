package handler

import (
	"net/http"

	"go.uber.org/zap"

	"github.com/pixelforge/studio-api/internal/middleware"
	"github.com/pixelforge/studio-api/internal/service"
	"github.com/pixelforge/studio-api/internal/validate"
)

// TeamHandler exposes the team operations over HTTP.
type TeamHandler struct {
	service *service.TeamService
	logger  *zap.Logger
}

// NewTeamHandler creates a new team handler.
func NewTeamHandler(service *service.TeamService, logger *zap.Logger) *TeamHandler {
	return &TeamHandler{service: service, logger: logger}
}

// Get handles GET /v1/teams.
func (h *TeamHandler) Get(w http.ResponseWriter, r *http.Request) {
	req, fieldErrs := validate.TeamGet(queryInput(r))
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

// Create handles POST /v1/teams.
func (h *TeamHandler) Create(w http.ResponseWriter, r *http.Request) {
	in, ok := bodyInput(w, r)
	if !ok {
		return
	}
	req, fieldErrs := validate.TeamCreate(in)
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

// Update handles PATCH /v1/teams.
func (h *TeamHandler) Update(w http.ResponseWriter, r *http.Request) {
	in, ok := bodyInput(w, r)
	if !ok {
		return
	}
	req, fieldErrs := validate.TeamUpdate(in)
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

// EditMembers handles PATCH /v1/teams/members.
func (h *TeamHandler) EditMembers(w http.ResponseWriter, r *http.Request) {
	in, ok := bodyInput(w, r)
	if !ok {
		return
	}
	req, fieldErrs := validate.TeamEditMembers(in)
	if len(fieldErrs) > 0 {
		WriteValidation(w, fieldErrs)
		return
	}

	if err := h.service.EditMembers(r.Context(), middleware.SessionFrom(r.Context()), req); err != nil {
		WriteServiceError(w, h.logger, err)
		return
	}
	WriteData(w, http.StatusOK, nil)
}

// Remove handles DELETE /v1/teams.
func (h *TeamHandler) Remove(w http.ResponseWriter, r *http.Request) {
	in, ok := bodyInput(w, r)
	if !ok {
		return
	}
	req, fieldErrs := validate.TeamRemove(in)
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
