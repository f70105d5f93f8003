package entity

import "fmt"

type Role string

const (
	RoleAdmin   Role = "admin"
	RoleManager Role = "manager"
	RoleRD      Role = "rd"
	RoleTU      Role = "tu"
	RoleStore   Role = "store"
)

var roleNames = map[Role]string{
	RoleAdmin:   "Администратор",
	RoleManager: "Менеджер",
	RoleRD:      "РД",
	RoleTU:      "ТУ",
	RoleStore:   "Магазин",
}

func Roles() []Role {
	return []Role{RoleAdmin, RoleManager, RoleRD, RoleTU, RoleStore}
}

func ParseRole(s string) (Role, error) {
	r := Role(s)
	if _, ok := roleNames[r]; !ok {
		return "", fmt.Errorf("%w: %q", ErrInvalidRole, s)
	}

	return r, nil
}

// DisplayName falls back to the raw identifier for unknown roles.
func (r Role) DisplayName() string {
	if name, ok := roleNames[r]; ok {
		return name
	}

	return string(r)
}

// CanManage reports whether the role may view matrices and other users' grants.
func (r Role) CanManage() bool {
	return r == RoleAdmin || r == RoleManager
}
