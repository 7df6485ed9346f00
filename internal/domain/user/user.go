package user

const (
	RoleCustomer = "customer"
	RoleAdmin    = "admin"
)

type User struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

func (u *User) IsAdmin() bool {
	return u != nil && u.Role == RoleAdmin
}

// FirstName is what the navbar shows next to the account button.
func (u *User) FirstName() string {
	if u == nil || u.Name == "" {
		return ""
	}
	for i, r := range u.Name {
		if r == ' ' {
			return u.Name[:i]
		}
	}
	return u.Name
}
