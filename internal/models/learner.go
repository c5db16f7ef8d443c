package models

import (
	"strings"
	"time"

	"gorm.io/gorm"
)

// Learner roles. A learner may have no role until they pick a persona.
const (
	RoleSchoolStudent  = "school_student"
	RoleCollegeStudent = "college_student"
	RoleProfessional   = "professional"
)

// GuestKey is the reserved learner key used when no session is active.
const GuestKey = "guest"

// Learner is a registered identity in the durable registry. Email is the
// unique lookup key; the active session holds at most one Learner at a time.
type Learner struct {
	ID        uint      `gorm:"primaryKey" json:"-"`
	Name      string    `gorm:"size:255;not null" json:"name"`
	Email     string    `gorm:"size:255;uniqueIndex;not null" json:"email"`
	Role      string    `gorm:"size:32" json:"role,omitempty"`
	Avatar    string    `gorm:"size:512" json:"avatar,omitempty"`
	IsPremium bool      `gorm:"not null;default:false" json:"is_premium"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Key returns the persistence scope for this learner's course and activity
// state.
func (l Learner) Key() string {
	email := strings.TrimSpace(strings.ToLower(l.Email))
	if email == "" {
		return GuestKey
	}
	return email
}

// BeforeSave normalises the email and role prior to persistence.
func (l *Learner) BeforeSave(tx *gorm.DB) error {
	l.Email = strings.TrimSpace(strings.ToLower(l.Email))
	l.Role = NormalizeRole(l.Role)
	return nil
}

// NormalizeRole maps free-form role input onto the known persona set. Unknown
// values collapse to empty, meaning "not chosen yet".
func NormalizeRole(role string) string {
	switch strings.ToLower(strings.TrimSpace(role)) {
	case RoleSchoolStudent, "student", "school":
		return RoleSchoolStudent
	case RoleCollegeStudent, "college":
		return RoleCollegeStudent
	case RoleProfessional:
		return RoleProfessional
	default:
		return ""
	}
}
