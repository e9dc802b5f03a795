package model

// Session is the resolved identity attached to an authenticated request.
// It is derived from a bearer token at the boundary and never persisted.
// A nil *Session means the request is anonymous.
type Session struct {
	UserID    string `json:"user_id"`
	UserEmail string `json:"user_email"`
	UserRoles []Role `json:"user_roles"`
}

// HasRole reports whether the session carries the exact role.
func (s *Session) HasRole(role Role) bool {
	if s == nil {
		return false
	}
	for _, r := range s.UserRoles {
		if r == role {
			return true
		}
	}
	return false
}

// CanContribute reports whether any session role sits at or above MEMBER in
// the capability hierarchy. Contributors may author content; guests may not.
func (s *Session) CanContribute() bool {
	if s == nil {
		return false
	}
	for _, r := range s.UserRoles {
		if roleRank[r] >= roleRank[RoleMember] {
			return true
		}
	}
	return false
}

// CanAdminister reports whether any session role sits at or above ADMIN in
// the capability hierarchy.
func (s *Session) CanAdminister() bool {
	if s == nil {
		return false
	}
	for _, r := range s.UserRoles {
		if roleRank[r] >= roleRank[RoleAdmin] {
			return true
		}
	}
	return false
}
