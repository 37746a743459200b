// internal/model/organization.go
package model

import (
	"time"

	"github.com/google/uuid"
)

type ProfileRole string

const (
	RoleOwner  ProfileRole = "owner"
	RoleMember ProfileRole = "member"
)

// Organization is the tenant boundary. Every wedding belongs to exactly
// one organization, and every user belongs to at most one via Profile.
type Organization struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:gen_random_uuid()" json:"id"`
	Name      string    `gorm:"type:text;not null" json:"name"`
	OwnerID   uuid.UUID `gorm:"type:uuid;not null" json:"owner_id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Weddings []Wedding `gorm:"foreignKey:OrganizationID" json:"-"`
}

// Profile links a user to their organization. The profile id is the
// user id, mirroring the one-to-one relationship.
type Profile struct {
	ID             uuid.UUID   `gorm:"type:uuid;primary_key" json:"id"`
	OrganizationID *uuid.UUID  `gorm:"type:uuid" json:"organization_id"`
	Role           ProfileRole `gorm:"type:text;not null;default:'owner'" json:"role"`
	CreatedAt      time.Time   `json:"created_at"`
	UpdatedAt      time.Time   `json:"updated_at"`

	Organization *Organization `gorm:"foreignKey:OrganizationID" json:"-"`
}
