package validate

import "github.com/pixelforge/studio-api/internal/model"

func isFeaturedGetTarget(s string) bool {
	switch model.FeaturedGetTarget(s) {
	case model.FeaturedGetHighlight, model.FeaturedGetAllAsList,
		model.FeaturedGetBlog, model.FeaturedGetGame,
		model.FeaturedGetGraphics, model.FeaturedGetRnD:
		return true
	}
	return false
}

// FeaturedGet validates a featured read.
func FeaturedGet(in Input) (model.FeaturedGetRequest, []model.FieldError) {
	errs := &Errors{}
	req := model.FeaturedGetRequest{
		Target: model.FeaturedGetTarget(requireEnum(in, errs, "target", isFeaturedGetTarget)),
	}
	return req, errs.Fields()
}

// FeaturedCreate validates a curation request. The content id's table must
// match the declared content type.
func FeaturedCreate(in Input) (model.FeaturedCreateRequest, []model.FieldError) {
	errs := &Errors{}
	req := model.FeaturedCreateRequest{
		ContentType: model.FeaturedType(requireEnum(in, errs, "contentType", model.IsValidFeaturedType)),
		IsHighlight: requireBool(in, errs, "isHighlight"),
	}
	switch req.ContentType {
	case model.FeaturedBlog:
		req.ContentID = requireID(in, errs, "contentId", "blog")
	case model.FeaturedGame, model.FeaturedGraphics, model.FeaturedRnD:
		req.ContentID = requireID(in, errs, "contentId", "project")
	}
	return req, errs.Fields()
}

// FeaturedUpdate validates a highlight flag change.
func FeaturedUpdate(in Input) (model.FeaturedUpdateRequest, []model.FieldError) {
	errs := &Errors{}
	req := model.FeaturedUpdateRequest{
		ID:          requireID(in, errs, "id", "featured"),
		IsHighlight: requireBool(in, errs, "isHighlight"),
	}
	return req, errs.Fields()
}

// FeaturedRemove validates retiring a pointer.
func FeaturedRemove(in Input) (model.FeaturedRemoveRequest, []model.FieldError) {
	errs := &Errors{}
	req := model.FeaturedRemoveRequest{ID: requireID(in, errs, "id", "featured")}
	return req, errs.Fields()
}
