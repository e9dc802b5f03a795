package model

import "time"

// Role is a capability in the ordered hierarchy GUEST < MEMBER < ADMIN < ROOT.
type Role string

const (
	RoleGuest  Role = "GUEST"
	RoleMember Role = "MEMBER"
	RoleAdmin  Role = "ADMIN"
	RoleRoot   Role = "ROOT"
)

// roleRank orders roles for capability checks.
var roleRank = map[Role]int{
	RoleGuest:  0,
	RoleMember: 1,
	RoleAdmin:  2,
	RoleRoot:   3,
}

// IsValidRole reports whether s names a known role.
func IsValidRole(s string) bool {
	_, ok := roleRank[Role(s)]
	return ok
}

// Designation is a seniority tag attached to a user.
type Designation string

const (
	DesignationNone      Designation = "NONE"
	DesignationJunior    Designation = "JUNIOR"
	DesignationSenior    Designation = "SENIOR"
	DesignationExecutive Designation = "EXECUTIVE"
	DesignationHead      Designation = "HEAD"
	DesignationAdvisor   Designation = "ADVISOR"
)

// IsValidDesignation reports whether s names a known designation.
func IsValidDesignation(s string) bool {
	switch Designation(s) {
	case DesignationNone, DesignationJunior, DesignationSenior,
		DesignationExecutive, DesignationHead, DesignationAdvisor:
		return true
	}
	return false
}

// Link is a labeled personal or project URL.
type Link struct {
	Label string `json:"label"`
	URL   string `json:"url"`
}

// User is the internal user entity. TeamID is nil when the user is not
// assigned to a team; the reciprocal member reference on the Team is
// maintained by the team-assignment operations.
type User struct {
	ID                 string      `json:"id"`
	Name               string      `json:"name"`
	Email              string      `json:"email"`
	ProfileImgMediaKey *string     `json:"profile_img_media_key"`
	PhoneNumber        *string     `json:"phone_number"`
	Links              []Link      `json:"links"`
	Roles              []Role      `json:"roles"`
	Designation        Designation `json:"designation"`
	TeamID             *string     `json:"team_id"`
	CreatedAt          time.Time   `json:"created_at"`
	UpdatedAt          time.Time   `json:"updated_at"`
}

// UserListItem is the admin/public listing export: identifiers stringified,
// no phone, no timestamps.
type UserListItem struct {
	ID                 string      `json:"id"`
	Name               string      `json:"name"`
	Email              string      `json:"email"`
	ProfileImgMediaKey *string     `json:"profileImgMediaKey"`
	Roles              []Role      `json:"roles"`
	Designation        Designation `json:"designation"`
	TeamID             *string     `json:"teamId"`
}

// UserPublic is the public single-profile export. PhoneNumber and the full
// update timestamp are withheld at this view; MemberSince is derived from
// the creation time.
type UserPublic struct {
	ID                 string      `json:"id"`
	Name               string      `json:"name"`
	Email              string      `json:"email"`
	ProfileImgMediaKey *string     `json:"profileImgMediaKey"`
	PhoneNumber        *string     `json:"phoneNumber"`
	Links              []Link      `json:"links"`
	Team               TeamRef     `json:"team"`
	Roles              []Role      `json:"roles"`
	Designation        Designation `json:"designation"`
	MemberSince        string      `json:"memberSince"`
}

// UserOwner is the owner/admin export: the full field set, including phone
// number and timestamps. Credential material does not exist on any export.
type UserOwner struct {
	ID                 string      `json:"id"`
	Name               string      `json:"name"`
	Email              string      `json:"email"`
	ProfileImgMediaKey *string     `json:"profileImgMediaKey"`
	PhoneNumber        *string     `json:"phoneNumber"`
	Links              []Link      `json:"links"`
	Team               TeamRef     `json:"team"`
	Roles              []Role      `json:"roles"`
	Designation        Designation `json:"designation"`
	CreatedAt          time.Time   `json:"createdAt"`
	UpdatedAt          time.Time   `json:"updatedAt"`
}

// ExportListItem renders the listing view of a user.
func (u *User) ExportListItem() UserListItem {
	return UserListItem{
		ID:                 u.ID,
		Name:               u.Name,
		Email:              u.Email,
		ProfileImgMediaKey: u.ProfileImgMediaKey,
		Roles:              u.Roles,
		Designation:        u.Designation,
		TeamID:             u.TeamID,
	}
}

// ExportPublic renders the public view of a user. teamName defaults to
// "Unknown" upstream when the user has no team or the team is missing.
func (u *User) ExportPublic(teamName string) UserPublic {
	teamID := ""
	if u.TeamID != nil {
		teamID = *u.TeamID
	}
	return UserPublic{
		ID:                 u.ID,
		Name:               u.Name,
		Email:              u.Email,
		ProfileImgMediaKey: u.ProfileImgMediaKey,
		PhoneNumber:        nil,
		Links:              u.Links,
		Team:               TeamRef{ID: teamID, Name: teamName},
		Roles:              u.Roles,
		Designation:        u.Designation,
		MemberSince:        u.CreatedAt.Format("January 2006"),
	}
}

// ExportOwner renders the owner/admin view of a user.
func (u *User) ExportOwner(teamName string) UserOwner {
	teamID := ""
	if u.TeamID != nil {
		teamID = *u.TeamID
	}
	return UserOwner{
		ID:                 u.ID,
		Name:               u.Name,
		Email:              u.Email,
		ProfileImgMediaKey: u.ProfileImgMediaKey,
		PhoneNumber:        u.PhoneNumber,
		Links:              u.Links,
		Team:               TeamRef{ID: teamID, Name: teamName},
		Roles:              u.Roles,
		Designation:        u.Designation,
		CreatedAt:          u.CreatedAt,
		UpdatedAt:          u.UpdatedAt,
	}
}

// UserGetTarget discriminates the user read operation.
type UserGetTarget string

const (
	UserGetAll          UserGetTarget = "all"
	UserGetSummary      UserGetTarget = "summary"
	UserGetPublicAll    UserGetTarget = "public_all"
	UserGetPublicSingle UserGetTarget = "public_single"
)

// UserGetRequest is the validated user read request. Page/Limit are set for
// the paginated targets, ID for PUBLIC_SINGLE.
type UserGetRequest struct {
	Target UserGetTarget
	ID     string
	Page   int
	Limit  int
}

// UserUpdateRequest is the self-service profile update. Nil fields are left
// untouched.
type UserUpdateRequest struct {
	Name               *string
	PhoneNumber        *string
	Links              []Link
	ProfileImgMediaKey *string
}

// UserUpdateTeamRequest reassigns a user's team. TeamID nil removes the user
// from their current team.
type UserUpdateTeamRequest struct {
	ID     string
	TeamID *string
}

// UserUpdateAssignmentRequest changes a user's roles and/or designation.
type UserUpdateAssignmentRequest struct {
	ID          string
	Roles       []Role
	Designation *Designation
}

// UserRemoveRequest removes a user and cascades out of their team.
type UserRemoveRequest struct {
	ID string
}

// UserSummary is the admin count summary.
type UserSummary struct {
	Total  int            `json:"total"`
	ByRole map[Role]int   `json:"byRole"`
	ByTeam map[string]int `json:"byTeam"`
	NoTeam int            `json:"noTeam"`
}
