// models/user.go
package models

import (
	"time"
)

type Role string

const (
	RoleEmployee Role = "EMPLOYEE"
	RoleManager  Role = "MANAGER"
	RoleAdmin    Role = "ADMIN"
)

type User struct {
	ID       uint    `gorm:"primaryKey" json:"id"`
	PublicID string  `gorm:"uniqueIndex;size:36;not null" json:"public_id"`
	Name     string  `gorm:"not null;size:100" json:"name"`
	Email    string  `gorm:"uniqueIndex;not null" json:"email"`
	Password string  `gorm:"not null" json:"-"`
	Role     Role    `gorm:"not null;default:'EMPLOYEE';size:20" json:"role"`
	TeamID   *uint   `gorm:"index" json:"team_id,omitempty"`
	Team     *Team   `gorm:"foreignKey:TeamID" json:"team,omitempty"`

	// Timestamps
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
	LastActivity *time.Time `json:"last_activity,omitempty"`

	// Relationships
	CheckIns []CheckIn `gorm:"foreignKey:UserID" json:"check_ins,omitempty"`
}

// IsManager reports whether the user may access team-level aggregates.
func (u *User) IsManager() bool {
	return u.Role == RoleManager || u.Role == RoleAdmin
}

func (User) TableName() string {
	return "users"
}
