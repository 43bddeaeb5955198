package models

import (
	"strings"
	"time"

	"gorm.io/gorm"
)

// Role values recognised by the access policy.
const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// User represents an application account that can authenticate with the platform.
// Every masterlist and recipe row is scoped to exactly one user.
type User struct {
	gorm.Model
	Email                 string `gorm:"uniqueIndex;not null"`
	PasswordHash          string `gorm:"not null"`
	Name                  string
	PlanType              string     `gorm:"type:varchar(50)"`
	Role                  string     `gorm:"type:varchar(20);default:user"`
	StarterPackImportedAt *time.Time `json:"starter_pack_imported_at,omitempty"`
}

// IsAdmin reports whether the account carries the admin role.
func (u User) IsAdmin() bool {
	return strings.EqualFold(u.Role, RoleAdmin)
}
