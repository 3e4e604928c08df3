package domain

import "time"

// User is a dashboard account. PasswordHash holds a bcrypt hash; plaintext
// credentials are never stored.
type User struct {
	ID           string
	Name         string
	Role         UserRole
	Team         TeamName // empty when the user has no team assignment
	PasswordHash string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}
