package model

import "fmt"

// ErrorCode is a stable, enumerable code for reported business failures.
// Callers branch on the code, never on the message text.
type ErrorCode string

const (
	// User
	CodeUserNotFound ErrorCode = "USER_NOT_FOUND"
	CodeEmailTaken   ErrorCode = "EMAIL_TAKEN"

	// Authorization
	CodeUnauthorized ErrorCode = "UNAUTHORIZED"
	CodeForbidden    ErrorCode = "FORBIDDEN"

	// Team
	CodeTeamNotFound  ErrorCode = "TEAM_NOT_FOUND"
	CodeTeamNameTaken ErrorCode = "TEAM_NAME_TAKEN"
	CodeNotTeamMember ErrorCode = "NOT_TEAM_MEMBER"

	// Project
	CodeProjectNotFound ErrorCode = "PROJECT_NOT_FOUND"

	// Blog
	CodeBlogNotFound ErrorCode = "BLOG_NOT_FOUND"
	CodeSlugInUse    ErrorCode = "SLUG_ALREADY_IN_USE"
	CodeSlugNotFound ErrorCode = "SLUG_NOT_FOUND"

	// Featured
	CodeFeaturedNotFound ErrorCode = "FEATURED_NOT_FOUND"
	CodeAlreadyFeatured  ErrorCode = "ALREADY_FEATURED"

	// Media
	CodeMediaNotFound  ErrorCode = "MEDIA_NOT_FOUND"
	CodeMediaKeyExists ErrorCode = "MEDIA_KEY_EXISTS"

	// Input
	CodeValidationFailed ErrorCode = "VALIDATION_FAILED"

	// Fault channel; never carries internal detail to the caller.
	CodeInternal ErrorCode = "INTERNAL"
)

// Reported is an expected, user-facing business failure. Any error that is
// not a *Reported is treated as a fault by the HTTP boundary.
type Reported struct {
	Code    ErrorCode
	Message string
}

// Error implements the error interface.
func (r *Reported) Error() string {
	return fmt.Sprintf("%s: %s", r.Code, r.Message)
}

// Is matches two Reported errors by code, so service sentinels work with
// errors.Is regardless of message wording.
func (r *Reported) Is(target error) bool {
	t, ok := target.(*Reported)
	return ok && t.Code == r.Code
}

// NewReported creates a reported failure with a stable code.
func NewReported(code ErrorCode, message string) *Reported {
	return &Reported{Code: code, Message: message}
}

// FieldError is a single validation failure on a named field path.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError carries the ordered list of field failures produced by the
// request validator. It is reported, not a fault: malformed input is a
// normal outcome.
type ValidationError struct {
	Fields []FieldError
}

// Error implements the error interface.
func (v *ValidationError) Error() string {
	if len(v.Fields) == 0 {
		return "validation failed"
	}
	msg := fmt.Sprintf("%s: %s", v.Fields[0].Field, v.Fields[0].Message)
	if len(v.Fields) > 1 {
		msg = fmt.Sprintf("%s (and %d more)", msg, len(v.Fields)-1)
	}
	return msg
}
