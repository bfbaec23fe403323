package user

import "time"

type Role string

const (
	RoleAdmin    Role = "admin"
	RoleManager  Role = "manager"
	RoleEmployee Role = "employee"
)

type User struct {
	ID           string
	Username     string
	Email        string
	PasswordHash string
	Role         Role
	EmployeeID   *string
	Mobile       *string
	IsActive     bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// ActivityLog records a user action for the audit trail.
type ActivityLog struct {
	ID        string
	UserID    string
	Action    string
	IPAddress *string
	Timestamp time.Time

	// Joined display field, populated by list queries.
	Username *string
}
