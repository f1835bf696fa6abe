package domain

import "time"

// EmployeeRole enumerates access levels within the admin system.
type EmployeeRole string

const (
	RoleAdmin EmployeeRole = "admin"
	RoleStaff EmployeeRole = "staff"
)

// Employee is a staff account that signs in to the administrative API.
type Employee struct {
	ID           string
	FullName     string
	Email        string
	PasswordHash string
	Role         EmployeeRole
	Active       bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// IsAdmin reports whether the employee can perform administrator actions.
func (e Employee) IsAdmin() bool {
	return e.Role == RoleAdmin
}
