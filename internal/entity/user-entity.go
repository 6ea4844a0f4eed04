package entity

import "time"

// UserEntity repräsentiert die Benutzerdaten in der Datenbank.
type UserEntity struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	Username     string    `json:"username"`
	FirstName    string    `json:"first_name"`
	LastName     string    `json:"last_name"`
	PasswordHash string    `json:"password_hash"`
	IsActive     bool      `json:"is_active"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// RoleEntity repräsentiert eine Kursrolle (z. B. Student, Lehrender).
type RoleEntity struct {
	ID        int64  `json:"id"`
	ShortName string `json:"short_name"`
	Name      string `json:"name"`
}

// Capability names stored in course_capabilities grants.
const (
	CapabilityViewHiddenCourses = "course.viewhidden"
	CapabilityManageRequests    = "privacy.managerequests"
)
