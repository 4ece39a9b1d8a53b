package domain

type UserRole string

const (
	UserRoleSeeker   UserRole = "SEEKER"
	UserRoleEmployer UserRole = "EMPLOYER"
	UserRoleAdmin    UserRole = "ADMIN"
)

type User struct {
	ID        int32    `json:"id"`
	Email     string   `json:"email"`
	Name      string   `json:"name"`
	Role      UserRole `json:"role"`
	CreatedOn string   `json:"created_on"`
}

// Actor identifies the authenticated caller of a service method.
type Actor struct {
	UserID int32
	Role   UserRole
}

func (a Actor) IsAdmin() bool {
	return a.Role == UserRoleAdmin
}
