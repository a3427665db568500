package types

import (
	"github.com/google/uuid"
)

// UserID represents a user identifier
type UserID string

// String returns the string representation
func (id UserID) String() string {
	return string(id)
}

// NewUserID creates a new UserID
func NewUserID() UserID {
	return UserID(uuid.New().String())
}

// OrgSlug represents an organization's URL slug
type OrgSlug string

// String returns the string representation
func (s OrgSlug) String() string {
	return string(s)
}

// ProviderSlug represents the unique identifier of a provider
type ProviderSlug string

// String returns the string representation
func (s ProviderSlug) String() string {
	return string(s)
}

// AppID represents an installed application identifier
type AppID string

// String returns the string representation
func (id AppID) String() string {
	return string(id)
}

// NewAppID creates a new AppID
func NewAppID() AppID {
	return AppID(uuid.New().String())
}

// APIKey represents a user's API key credential
type APIKey string

// String returns the string representation
func (k APIKey) String() string {
	return string(k)
}

// NewAPIKey creates a new APIKey
func NewAPIKey() APIKey {
	return APIKey(uuid.New().String())
}

// Role represents a user's role within an organization
type Role string

const (
	// RoleOwner grants administrative permission, including installing providers
	RoleOwner Role = "owner"
	// RoleMember grants read access only
	RoleMember Role = "member"
)

// String returns the string representation
func (r Role) String() string {
	return string(r)
}

// CanInstall reports whether the role permits installing providers
func (r Role) CanInstall() bool {
	return r == RoleOwner
}
