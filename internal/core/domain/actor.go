package domain

// Role is the permission class of an actor in the maker/checker workflow.
type Role string

const (
	RoleMaker   Role = "maker"
	RoleChecker Role = "checker"
	RoleAdmin   Role = "admin"
)

// IsValid reports whether r is a known role.
func (r Role) IsValid() bool {
	switch r {
	case RoleMaker, RoleChecker, RoleAdmin:
		return true
	}
	return false
}

// CanMake reports whether the role may create transactions, entries and uploads.
func (r Role) CanMake() bool {
	return r == RoleMaker || r == RoleAdmin
}

// CanCheck reports whether the role may approve or reject entries and uploads.
func (r Role) CanCheck() bool {
	return r == RoleChecker || r == RoleAdmin
}

// Actor is the identity whose name stamps createdBy/approvedBy audit fields.
type Actor struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Role  Role   `json:"role"`
	Email string `json:"email"`
}
