package model

import "time"

// Team groups users. Every id in MemberIDs must have a reciprocal TeamID on
// the corresponding User; the team-assignment operations maintain both sides
// inside one transaction.
type Team struct {
	ID                 string    `json:"id"`
	Name               string    `json:"name"`
	Description        string    `json:"description"`
	CoverImageMediaKey *string   `json:"cover_image_media_key"`
	MemberIDs          []string  `json:"member_ids"`
	CreatedAt          time.Time `json:"created_at"`
	UpdatedAt          time.Time `json:"updated_at"`
}

// TeamRef is the flattened {id, name} reference used by exports.
type TeamRef struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// TeamMemberExport is a member entry on the exported team shape.
type TeamMemberExport struct {
	ID                 string  `json:"id"`
	Name               string  `json:"name"`
	Links              []Link  `json:"links"`
	ProfileImgMediaKey *string `json:"profileImgMediaKey"`
	Designation        string  `json:"designation"`
}

// TeamExport is the full wire shape of a team with resolved members.
type TeamExport struct {
	ID                 string             `json:"id"`
	Name               string             `json:"name"`
	Description        string             `json:"description"`
	Members            []TeamMemberExport `json:"members"`
	CoverImageMediaKey *string            `json:"coverImageMediaKey"`
	CreatedAt          time.Time          `json:"createdAt"`
	UpdatedAt          time.Time          `json:"updatedAt"`
}

// Export renders a team with its already-fetched members.
func (t *Team) Export(members []*User) TeamExport {
	out := TeamExport{
		ID:                 t.ID,
		Name:               t.Name,
		Description:        t.Description,
		Members:            make([]TeamMemberExport, 0, len(members)),
		CoverImageMediaKey: t.CoverImageMediaKey,
		CreatedAt:          t.CreatedAt,
		UpdatedAt:          t.UpdatedAt,
	}
	for _, m := range members {
		out.Members = append(out.Members, TeamMemberExport{
			ID:                 m.ID,
			Name:               m.Name,
			Links:              m.Links,
			ProfileImgMediaKey: m.ProfileImgMediaKey,
			Designation:        string(m.Designation),
		})
	}
	return out
}

// ExportRef renders the compact {id, name} view.
func (t *Team) ExportRef() TeamRef {
	return TeamRef{ID: t.ID, Name: t.Name}
}

// TeamGetTarget discriminates the team read operation.
type TeamGetTarget string

const (
	TeamGetOne       TeamGetTarget = "one"
	TeamGetAll       TeamGetTarget = "all"
	TeamGetAllAsList TeamGetTarget = "all_as_list"
)

// TeamGetRequest is the validated team read request; ID is set for ONE.
type TeamGetRequest struct {
	Target TeamGetTarget
	ID     string
}

// TeamCreateRequest creates an empty team.
type TeamCreateRequest struct {
	Name        string
	Description string
}

// TeamUpdateRequest edits team metadata. Nil fields are left untouched.
type TeamUpdateRequest struct {
	ID                 string
	Name               *string
	Description        *string
	CoverImageMediaKey *string
}

// TeamMemberAction discriminates the member edit operation.
type TeamMemberAction string

const (
	TeamMemberAdd    TeamMemberAction = "add"
	TeamMemberRemove TeamMemberAction = "remove"
)

// TeamEditMembersRequest adds or removes members, keeping the reciprocal
// user.team_id references in step.
type TeamEditMembersRequest struct {
	ID        string
	Action    TeamMemberAction
	MemberIDs []string
}

// TeamRemoveRequest removes a team and clears its members' team references.
type TeamRemoveRequest struct {
	ID string
}
