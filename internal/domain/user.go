package domain

import "time"

type UserRole string

const (
	RoleOrganiser UserRole = "ORGANISER"
	RoleGuest     UserRole = "GUEST"
	RoleSponsor   UserRole = "SPONSOR"
)

func (r UserRole) IsValid() bool {
	switch r {
	case RoleOrganiser, RoleGuest, RoleSponsor:
		return true
	}
	return false
}

// User is keyed by the identity provider's subject id.
type User struct {
	ID        string    `json:"id"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
	Email     string    `json:"email"`
	Role      UserRole  `json:"role"`
	CompanyID *uint     `json:"company_id,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Identity is what the external identity provider vouches for on every request.
type Identity struct {
	UserID    string
	Email     string
	FirstName string
	LastName  string
	Role      UserRole
}

func (i Identity) IsOrganiser() bool {
	return i.Role == RoleOrganiser
}

// ToUser synthesises the minimal user record for an identity seen for the first time.
func (i Identity) ToUser() User {
	role := i.Role
	if !role.IsValid() {
		role = RoleGuest
	}

	return User{
		ID:        i.UserID,
		FirstName: i.FirstName,
		LastName:  i.LastName,
		Email:     i.Email,
		Role:      role,
	}
}
