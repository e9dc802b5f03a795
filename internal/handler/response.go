package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"go.uber.org/zap"

	"github.com/pixelforge/studio-api/internal/model"
	"github.com/pixelforge/studio-api/internal/validate"
)

// Every response is an envelope: {"ok": true, "data": ...} on success,
// {"ok": false, "errorCode": ..., "errorMessage": ...} on failure. Callers
// branch on ok and on errorCode, never on message text.

type successEnvelope struct {
	OK   bool        `json:"ok"`
	Data interface{} `json:"data"`
}

type failureEnvelope struct {
	OK           bool               `json:"ok"`
	ErrorCode    model.ErrorCode    `json:"errorCode"`
	ErrorMessage string             `json:"errorMessage"`
	Errors       []model.FieldError `json:"errors,omitempty"`
}

// WriteJSON writes a JSON response with the given status code.
func WriteJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if data != nil {
		_ = json.NewEncoder(w).Encode(data)
	}
}

// WriteData writes a successful data response.
func WriteData(w http.ResponseWriter, status int, data interface{}) {
	WriteJSON(w, status, successEnvelope{OK: true, Data: data})
}

// WriteFailure writes a reported failure response.
func WriteFailure(w http.ResponseWriter, status int, code model.ErrorCode, message string) {
	WriteJSON(w, status, failureEnvelope{OK: false, ErrorCode: code, ErrorMessage: message})
}

// WriteValidation writes the ordered field failures of a rejected request.
func WriteValidation(w http.ResponseWriter, fields []model.FieldError) {
	WriteJSON(w, http.StatusUnprocessableEntity, failureEnvelope{
		OK:           false,
		ErrorCode:    model.CodeValidationFailed,
		ErrorMessage: "request validation failed",
		Errors:       fields,
	})
}

// WriteServiceError maps a service error onto the wire. Reported failures
// carry their stable code and message; anything else is a fault: it is
// logged with full detail and surfaced as a bare INTERNAL.
func WriteServiceError(w http.ResponseWriter, logger *zap.Logger, err error) {
	var reported *model.Reported
	if errors.As(err, &reported) {
		WriteFailure(w, statusFor(reported.Code), reported.Code, reported.Message)
		return
	}
	logger.Error("unhandled service error", zap.Error(err))
	WriteFailure(w, http.StatusInternalServerError, model.CodeInternal, "an unexpected error occurred")
}

// statusFor maps a stable error code to its HTTP status.
func statusFor(code model.ErrorCode) int {
	switch code {
	case model.CodeUserNotFound, model.CodeTeamNotFound, model.CodeProjectNotFound,
		model.CodeBlogNotFound, model.CodeSlugNotFound, model.CodeFeaturedNotFound,
		model.CodeMediaNotFound:
		return http.StatusNotFound
	case model.CodeUnauthorized:
		return http.StatusUnauthorized
	case model.CodeForbidden:
		return http.StatusForbidden
	case model.CodeEmailTaken, model.CodeTeamNameTaken, model.CodeSlugInUse,
		model.CodeAlreadyFeatured, model.CodeMediaKeyExists:
		return http.StatusConflict
	case model.CodeNotTeamMember, model.CodeValidationFailed:
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}

// queryInput collects query parameters into validator input. Repeated
// parameters keep their first value.
func queryInput(r *http.Request) validate.Input {
	in := validate.Input{}
	for key, values := range r.URL.Query() {
		if len(values) > 0 {
			in[key] = values[0]
		}
	}
	return in
}

// bodyInput decodes a JSON object body into validator input. A malformed or
// non-object body is a validation outcome, not a fault.
func bodyInput(w http.ResponseWriter, r *http.Request) (validate.Input, bool) {
	var in validate.Input
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		WriteValidation(w, []model.FieldError{{Field: "body", Message: "must be a JSON object"}})
		return nil, false
	}
	return in, true
}
