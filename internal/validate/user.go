package validate

import (
	"fmt"

	"github.com/pixelforge/studio-api/internal/model"
)

func isUserGetTarget(s string) bool {
	switch model.UserGetTarget(s) {
	case model.UserGetAll, model.UserGetSummary, model.UserGetPublicAll, model.UserGetPublicSingle:
		return true
	}
	return false
}

// UserGet validates a user read. The paginated targets need page and limit;
// PUBLIC_SINGLE needs the user id.
func UserGet(in Input) (model.UserGetRequest, []model.FieldError) {
	errs := &Errors{}
	req := model.UserGetRequest{
		Target: model.UserGetTarget(requireEnum(in, errs, "target", isUserGetTarget)),
	}
	switch req.Target {
	case model.UserGetAll, model.UserGetPublicAll:
		req.Page = pageParam(in, errs)
		req.Limit = limitParam(in, errs)
	case model.UserGetPublicSingle:
		req.ID = requireID(in, errs, "id", "user")
	}
	return req, errs.Fields()
}

// UserUpdate validates a self-service profile patch. Every field is
// optional; absent fields stay untouched.
func UserUpdate(in Input) (model.UserUpdateRequest, []model.FieldError) {
	errs := &Errors{}
	req := model.UserUpdateRequest{
		Name:               optionalString(in, errs, "name", shortMax),
		PhoneNumber:        optionalPhone(in, errs, "phoneNumber"),
		Links:              linkList(in, errs, "links"),
		ProfileImgMediaKey: optionalMediaKey(in, errs, "profileImgMediaKey"),
	}
	return req, errs.Fields()
}

// UserUpdateTeam validates a team reassignment. An explicit null teamId
// detaches the user.
func UserUpdateTeam(in Input) (model.UserUpdateTeamRequest, []model.FieldError) {
	errs := &Errors{}
	req := model.UserUpdateTeamRequest{
		ID: requireID(in, errs, "id", "user"),
	}
	req.TeamID, _ = nullableID(in, errs, "teamId", "team")
	return req, errs.Fields()
}

// UserUpdateAssignment validates a roles/designation change. At least one of
// the two must be present.
func UserUpdateAssignment(in Input) (model.UserUpdateAssignmentRequest, []model.FieldError) {
	errs := &Errors{}
	req := model.UserUpdateAssignmentRequest{
		ID:    requireID(in, errs, "id", "user"),
		Roles: roleList(in, errs, "roles"),
	}
	if d := optionalString(in, errs, "designation", shortMax); d != nil {
		if !model.IsValidDesignation(*d) {
			errs.Add("designation", "is not a recognized value")
		} else {
			designation := model.Designation(*d)
			req.Designation = &designation
		}
	}
	if req.Roles == nil && req.Designation == nil && errs.Empty() {
		errs.Add("roles", "roles or designation is required")
	}
	return req, errs.Fields()
}

// UserRemove validates a user removal.
func UserRemove(in Input) (model.UserRemoveRequest, []model.FieldError) {
	errs := &Errors{}
	req := model.UserRemoveRequest{ID: requireID(in, errs, "id", "user")}
	return req, errs.Fields()
}

// roleList fetches an optional role array; nil when absent.
func roleList(in Input, errs *Errors, key string) []model.Role {
	v, ok := in.lookup(key)
	if !ok || v == nil {
		return nil
	}
	items, ok := v.([]interface{})
	if !ok {
		errs.Add(key, "must be an array")
		return nil
	}
	if len(items) == 0 {
		errs.Add(key, "must not be empty")
		return nil
	}
	out := make([]model.Role, 0, len(items))
	for i, item := range items {
		s, ok := asString(item)
		if !ok || !model.IsValidRole(s) {
			errs.Add(fmt.Sprintf("%s[%d]", key, i), "is not a recognized role")
			continue
		}
		out = append(out, model.Role(s))
	}
	return out
}
