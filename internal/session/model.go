package session

import "strings"

// Role define los roles soportados.
type Role string

const (
	RoleTutor         Role = "tutor"
	RoleVeterinarian  Role = "vet"
	RoleAdministrator Role = "admin"
)

func ParseRole(s string) (Role, bool) {
	switch Role(strings.ToLower(strings.TrimSpace(s))) {
	case RoleTutor:
		return RoleTutor, true
	case RoleVeterinarian:
		return RoleVeterinarian, true
	case RoleAdministrator:
		return RoleAdministrator, true
	}
	return "", false
}

func (r Role) Label() string {
	switch r {
	case RoleVeterinarian:
		return "Veterinario"
	case RoleAdministrator:
		return "Administrador"
	case RoleTutor:
		return "Tutor"
	default:
		return string(r)
	}
}

// Principal es la identidad autenticada que dirige todos los requests.
type Principal struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  Role   `json:"role"`
}
