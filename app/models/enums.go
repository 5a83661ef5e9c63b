package models

// Role defines the membership privilege levels within a classroom.
type Role string

const (
	RoleAdmin     Role = "ADMIN"
	RoleModerator Role = "MODERATOR"
	RoleNormal    Role = "NORMAL"
)

// ValidRole reports whether r is one of the known membership roles.
func ValidRole(r Role) bool {
	switch r {
	case RoleAdmin, RoleModerator, RoleNormal:
		return true
	}
	return false
}

// PostType defines the possible kinds of classroom posts.
type PostType string

const (
	PostAssignment PostType = "ASSIGNMENT"
	PostMessage    PostType = "MESSAGE"
)

// ValidPostType reports whether t is one of the known post types.
func ValidPostType(t PostType) bool {
	return t == PostAssignment || t == PostMessage
}
