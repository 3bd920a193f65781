package user

type Role string

const (
	// RoleRequester is a regular client who may book and manage their own
	// appointment requests.
	RoleRequester Role = "requester"
	// RoleOperator reviews every request and owns the completed override.
	RoleOperator Role = "operator"
)

func (r Role) String() string {
	return string(r)
}

func (r Role) IsValid() bool {
	switch r {
	case RoleRequester, RoleOperator:
		return true
	default:
		return false
	}
}

func NewRole(s string) (Role, error) {
	role := Role(s)
	if !role.IsValid() {
		return "", ErrInvalidRole
	}
	return role, nil
}
