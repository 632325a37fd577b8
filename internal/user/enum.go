package user

type Role string

const (
	RoleCEO      Role = "ceo"
	RoleEmployee Role = "employee"
)

var AllRoles = []Role{
	RoleCEO,
	RoleEmployee,
}

func (r Role) IsValid() bool {
	for _, v := range AllRoles {
		if r == v {
			return true
		}
	}
	return false
}
