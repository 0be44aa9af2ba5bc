package models

import (
	"time"

	"github.com/VPodolski/MakiMora/internal/constants"
)

// User is a staff account. Operational capabilities come purely from
// the assigned role names; location assignments scope which outlets
// the user works at.
type User struct {
	UUIDModel
	Email        string     `gorm:"type:varchar(200);uniqueIndex;not null" json:"email"`
	PasswordHash string     `gorm:"not null" json:"-"`
	FirstName    string     `gorm:"type:varchar(100);not null" json:"first_name"`
	LastName     string     `gorm:"type:varchar(100);not null" json:"last_name"`
	Phone        string     `gorm:"type:varchar(20)" json:"phone,omitempty"`
	IsActive     bool       `gorm:"not null" json:"is_active"`
	LastLoginAt  *time.Time `json:"last_login_at,omitempty"`
	CreatedAt    time.Time  `gorm:"index" json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`

	Roles     []Role     `gorm:"many2many:user_roles" json:"roles,omitempty"`
	Locations []Location `gorm:"many2many:user_locations" json:"locations,omitempty"`
}

// TableName sets the table name.
func (User) TableName() string {
	return "users"
}

// RoleNames returns the user's role names.
func (u *User) RoleNames() []string {
	names := make([]string, 0, len(u.Roles))
	for _, r := range u.Roles {
		names = append(names, r.Name)
	}
	return names
}

// HasRole reports whether the user holds the named role.
func (u *User) HasRole(name string) bool {
	for _, r := range u.Roles {
		if r.Name == name {
			return true
		}
	}
	return false
}

// WorksAt reports whether the user is assigned to the location.
// Managers and HR may operate on any location.
func (u *User) WorksAt(locationID string) bool {
	if u.HasRole(constants.RoleManager) || u.HasRole(constants.RoleHR) {
		return true
	}
	for _, l := range u.Locations {
		if l.ID.String() == locationID {
			return true
		}
	}
	return false
}

// Role is a named staff capability (hr, manager, sushi_chef, packer,
// courier).
type Role struct {
	UUIDModel
	Name        string `gorm:"type:varchar(50);uniqueIndex;not null" json:"name"`
	Description string `gorm:"type:varchar(200)" json:"description,omitempty"`
}

// TableName sets the table name.
func (Role) TableName() string {
	return "roles"
}
