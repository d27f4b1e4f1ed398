package authorization

type UserRole string

const (
	RoleAdmin   UserRole = "admin"
	RoleJuriste UserRole = "juriste"
	RoleCommune UserRole = "commune"
)

func (r UserRole) String() string {
	return string(r)
}

func (r UserRole) IsAdmin() bool {
	return r == RoleAdmin
}

// AllRoles lists every role, admin first.
func AllRoles() []UserRole {
	return []UserRole{RoleAdmin, RoleJuriste, RoleCommune}
}

func ParseRole(value string) (UserRole, bool) {
	r := UserRole(value)
	return r, r.IsValid()
}

func (r UserRole) IsValid() bool {
	switch r {
	case RoleAdmin, RoleJuriste, RoleCommune:
		return true
	}
	return false
}

// Actor is the authenticated caller of a use case.
type Actor struct {
	UserID uint
	Role   UserRole
}
