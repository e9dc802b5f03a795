package validate

import "github.com/pixelforge/studio-api/internal/model"

func isTeamGetTarget(s string) bool {
	switch model.TeamGetTarget(s) {
	case model.TeamGetOne, model.TeamGetAll, model.TeamGetAllAsList:
		return true
	}
	return false
}

func isTeamMemberAction(s string) bool {
	switch model.TeamMemberAction(s) {
	case model.TeamMemberAdd, model.TeamMemberRemove:
		return true
	}
	return false
}

// TeamGet validates a team read; the ONE target needs the team id.
func TeamGet(in Input) (model.TeamGetRequest, []model.FieldError) {
	errs := &Errors{}
	req := model.TeamGetRequest{
		Target: model.TeamGetTarget(requireEnum(in, errs, "target", isTeamGetTarget)),
	}
	if req.Target == model.TeamGetOne {
		req.ID = requireID(in, errs, "id", "team")
	}
	return req, errs.Fields()
}

// TeamCreate validates a team creation.
func TeamCreate(in Input) (model.TeamCreateRequest, []model.FieldError) {
	errs := &Errors{}
	req := model.TeamCreateRequest{
		Name: requireString(in, errs, "name", shortMax),
	}
	if d := optionalString(in, errs, "description", longMax); d != nil {
		req.Description = *d
	}
	return req, errs.Fields()
}

// TeamUpdate validates a team metadata patch.
func TeamUpdate(in Input) (model.TeamUpdateRequest, []model.FieldError) {
	errs := &Errors{}
	req := model.TeamUpdateRequest{
		ID:                 requireID(in, errs, "id", "team"),
		Name:               optionalString(in, errs, "name", shortMax),
		Description:        optionalString(in, errs, "description", longMax),
		CoverImageMediaKey: optionalMediaKey(in, errs, "coverImageMediaKey"),
	}
	if req.Name != nil && *req.Name == "" {
		errs.Add("name", "must not be empty")
	}
	return req, errs.Fields()
}

// TeamEditMembers validates a roster edit.
func TeamEditMembers(in Input) (model.TeamEditMembersRequest, []model.FieldError) {
	errs := &Errors{}
	req := model.TeamEditMembersRequest{
		ID:        requireID(in, errs, "id", "team"),
		Action:    model.TeamMemberAction(requireEnum(in, errs, "action", isTeamMemberAction)),
		MemberIDs: idList(in, errs, "memberIds", "user", true),
	}
	return req, errs.Fields()
}

// TeamRemove validates a team removal.
func TeamRemove(in Input) (model.TeamRemoveRequest, []model.FieldError) {
	errs := &Errors{}
	req := model.TeamRemoveRequest{ID: requireID(in, errs, "id", "team")}
	return req, errs.Fields()
}
