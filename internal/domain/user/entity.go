package user

import "time"

type Role string

const (
	RoleEmployee     Role = "Employee"      // Regular employee
	RoleHRAdmin      Role = "HR_Admin"      // HR staff - manages requests and broadcasts
	RoleAdmin        Role = "Admin"         // Full administrative access
	RoleManagerAdmin Role = "Manager_Admin" // Department manager with admin views
)

// AdminRoles lists every role allowed through the admin gate.
func AdminRoles() []Role {
	return []Role{RoleAdmin, RoleHRAdmin, RoleManagerAdmin}
}

type User struct {
	ID           string
	Name         string
	Email        string
	PasswordHash string
	EmployeeID   string
	Role         Role
	Department   *string
	Designation  *string
	DOB          *time.Time
	Sex          *string
	Address      *string
	EmployeeType *string
	JoiningDate  *time.Time
	ShiftTime    *string
	ProfileImage *string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// IsAdmin checks if the user holds any administrative role.
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin || u.Role == RoleHRAdmin || u.Role == RoleManagerAdmin
}

// IsValidRole reports whether r is one of the known roles.
func IsValidRole(r Role) bool {
	switch r {
	case RoleEmployee, RoleHRAdmin, RoleAdmin, RoleManagerAdmin:
		return true
	}
	return false
}
