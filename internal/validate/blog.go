package validate

import "github.com/pixelforge/studio-api/internal/model"

func isBlogGetTarget(s string) bool {
	switch model.BlogGetTarget(s) {
	case model.BlogGetAll, model.BlogGetAllAsList, model.BlogGetMy, model.BlogGetBySlug:
		return true
	}
	return false
}

// BlogGet validates a blog read; the BY_SLUG target needs the slug.
func BlogGet(in Input) (model.BlogGetRequest, []model.FieldError) {
	errs := &Errors{}
	req := model.BlogGetRequest{
		Target: model.BlogGetTarget(requireEnum(in, errs, "target", isBlogGetTarget)),
	}
	if req.Target == model.BlogGetBySlug {
		req.Slug = requireSlug(in, errs, "slug")
	}
	return req, errs.Fields()
}

// BlogCreate validates an article creation. The slug is fixed here for the
// article's lifetime.
func BlogCreate(in Input) (model.BlogCreateRequest, []model.FieldError) {
	errs := &Errors{}
	req := model.BlogCreateRequest{
		Title:            requireString(in, errs, "title", shortMax),
		Slug:             requireSlug(in, errs, "slug"),
		Content:          requireString(in, errs, "content", bodyMax),
		Tags:             tagList(in, errs, "tags"),
		CoverImgMediaKey: optionalMediaKey(in, errs, "coverImgMediaKey"),
	}
	return req, errs.Fields()
}

// BlogUpdate validates an article patch. The slug is deliberately not
// accepted here.
func BlogUpdate(in Input) (model.BlogUpdateRequest, []model.FieldError) {
	errs := &Errors{}
	req := model.BlogUpdateRequest{
		ID:               requireID(in, errs, "id", "blog"),
		Title:            optionalString(in, errs, "title", shortMax),
		Content:          optionalString(in, errs, "content", bodyMax),
		Tags:             tagList(in, errs, "tags"),
		CollaboratorIDs:  idList(in, errs, "collaboratorIds", "user", false),
		CoverImgMediaKey: optionalMediaKey(in, errs, "coverImgMediaKey"),
	}
	if req.Title != nil && *req.Title == "" {
		errs.Add("title", "must not be empty")
	}
	return req, errs.Fields()
}

// BlogRemove validates an article removal.
func BlogRemove(in Input) (model.BlogRemoveRequest, []model.FieldError) {
	errs := &Errors{}
	req := model.BlogRemoveRequest{ID: requireID(in, errs, "id", "blog")}
	return req, errs.Fields()
}
