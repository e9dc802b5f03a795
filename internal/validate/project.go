package validate

import (
	"fmt"

	"github.com/pixelforge/studio-api/internal/model"
)

func isProjectGetTarget(s string) bool {
	switch model.ProjectGetTarget(s) {
	case model.ProjectGetAll, model.ProjectGetAllAsList, model.ProjectGetMy:
		return true
	}
	return false
}

// ProjectGet validates a project read. The portfolio filter defaults to the
// "any" wildcard when absent.
func ProjectGet(in Input) (model.ProjectGetRequest, []model.FieldError) {
	errs := &Errors{}
	req := model.ProjectGetRequest{
		Target:    model.ProjectGetTarget(requireEnum(in, errs, "target", isProjectGetTarget)),
		Portfolio: model.PortfolioAny,
	}
	if v, ok := in.lookup("portfolio"); ok && v != nil {
		s, sok := asString(v)
		if !sok || !model.IsValidPortfolioFilter(s) {
			errs.Add("portfolio", "is not a recognized value")
		} else {
			req.Portfolio = model.PortfolioFilter(s)
		}
	}
	return req, errs.Fields()
}

// ProjectCreate validates a project creation.
func ProjectCreate(in Input) (model.ProjectCreateRequest, []model.FieldError) {
	errs := &Errors{}
	req := model.ProjectCreateRequest{
		Portfolio:        model.Portfolio(requireEnum(in, errs, "portfolio", model.IsValidPortfolio)),
		Title:            requireString(in, errs, "title", shortMax),
		Description:      requireString(in, errs, "description", longMax),
		Tags:             tagList(in, errs, "tags"),
		Links:            linkList(in, errs, "links"),
		CoverImgMediaKey: optionalMediaKey(in, errs, "coverImgMediaKey"),
	}
	return req, errs.Fields()
}

// ProjectUpdate validates a project patch. Every content field is optional;
// the portfolio category is fixed at creation.
func ProjectUpdate(in Input) (model.ProjectUpdateRequest, []model.FieldError) {
	errs := &Errors{}
	req := model.ProjectUpdateRequest{
		ID:               requireID(in, errs, "id", "project"),
		Title:            optionalString(in, errs, "title", shortMax),
		Description:      optionalString(in, errs, "description", longMax),
		Tags:             tagList(in, errs, "tags"),
		CollaboratorIDs:  idList(in, errs, "collaboratorIds", "user", false),
		Links:            linkList(in, errs, "links"),
		CoverImgMediaKey: optionalMediaKey(in, errs, "coverImgMediaKey"),
		MediaKeys:        mediaKeyList(in, errs, "mediaKeys"),
	}
	if req.Title != nil && *req.Title == "" {
		errs.Add("title", "must not be empty")
	}
	return req, errs.Fields()
}

// ProjectRemove validates a project removal.
func ProjectRemove(in Input) (model.ProjectRemoveRequest, []model.FieldError) {
	errs := &Errors{}
	req := model.ProjectRemoveRequest{ID: requireID(in, errs, "id", "project")}
	return req, errs.Fields()
}

// mediaKeyList fetches an optional asset key array; nil when absent.
func mediaKeyList(in Input, errs *Errors, key string) []string {
	v, ok := in.lookup(key)
	if !ok || v == nil {
		return nil
	}
	items, ok := v.([]interface{})
	if !ok {
		errs.Add(key, "must be an array")
		return nil
	}
	out := make([]string, 0, len(items))
	for i, item := range items {
		s, sok := asString(item)
		if !sok || !mediaKeyValid(s) {
			errs.Add(fmt.Sprintf("%s[%d]", key, i), "must be a namespace/owner/name key")
			continue
		}
		out = append(out, s)
	}
	return out
}
