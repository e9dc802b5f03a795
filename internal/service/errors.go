package service

import "github.com/pixelforge/studio-api/internal/model"

// Centralized service layer errors.
// Every expected business failure is a *model.Reported with a stable code;
// handlers map codes to HTTP statuses. Anything else a service returns is
// treated as a fault and never shown to the caller.

// ===== User Errors =====
var (
	ErrUserNotFound = model.NewReported(model.CodeUserNotFound, "user not found")
	ErrEmailTaken   = model.NewReported(model.CodeEmailTaken, "email already registered")
)

// ===== Team Errors =====
var (
	ErrTeamNotFound  = model.NewReported(model.CodeTeamNotFound, "team not found")
	ErrTeamNameTaken = model.NewReported(model.CodeTeamNameTaken, "a team with this name already exists")
	ErrNotTeamMember = model.NewReported(model.CodeNotTeamMember, "user is not a member of this team")
)

// ===== Project Errors =====
var (
	ErrProjectNotFound = model.NewReported(model.CodeProjectNotFound, "project not found")
)

// ===== Blog Errors =====
var (
	ErrBlogNotFound = model.NewReported(model.CodeBlogNotFound, "blog not found")
	ErrSlugInUse    = model.NewReported(model.CodeSlugInUse, "slug already in use")
	ErrSlugNotFound = model.NewReported(model.CodeSlugNotFound, "no blog with this slug")
)

// ===== Featured Errors =====
var (
	ErrFeaturedNotFound = model.NewReported(model.CodeFeaturedNotFound, "featured entry not found")
	ErrAlreadyFeatured  = model.NewReported(model.CodeAlreadyFeatured, "content is already featured")
)

// ===== Media Errors =====
var (
	ErrMediaNotFound  = model.NewReported(model.CodeMediaNotFound, "media not found")
	ErrMediaKeyExists = model.NewReported(model.CodeMediaKeyExists, "media key already recorded")
)

// forbidden builds a FORBIDDEN failure with an operation-specific message.
// All authorization denials share the one code so callers cannot probe
// which check tripped.
func forbidden(message string) *model.Reported {
	return model.NewReported(model.CodeForbidden, message)
}
