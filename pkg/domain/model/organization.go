package model

import (
	"time"

	"github.com/orgward/knock/pkg/domain/types"
)

// Organization represents a tenant that providers are installed into
type Organization struct {
	Slug      types.OrgSlug `json:"slug" firestore:"Slug" yaml:"slug"`
	Name      string        `json:"name" firestore:"Name" yaml:"name"`
	CreatedAt time.Time     `json:"created_at" firestore:"CreatedAt" yaml:"-"`
}

// NewOrganization creates a new Organization instance
func NewOrganization(slug types.OrgSlug, name string) *Organization {
	return &Organization{
		Slug:      slug,
		Name:      name,
		CreatedAt: time.Now(),
	}
}

// User represents an authenticated person
type User struct {
	ID       types.UserID `json:"id" firestore:"ID" yaml:"id"`
	Email    string       `json:"email" firestore:"Email" yaml:"email"`
	Name     string       `json:"name" firestore:"Name" yaml:"name"`
	Username string       `json:"username" firestore:"Username" yaml:"username"`
	APIKey   types.APIKey `json:"-" firestore:"APIKey" yaml:"api_key"`
}

// NewUser creates a new User instance with a generated ID and API key
func NewUser(email, name, username string) *User {
	return &User{
		ID:       types.NewUserID(),
		Email:    email,
		Name:     name,
		Username: username,
		APIKey:   types.NewAPIKey(),
	}
}

// DisplayName returns the user's name, falling back to the username
// when the name is not set
func (u *User) DisplayName() string {
	if u.Name != "" {
		return u.Name
	}
	return u.Username
}

// Membership ties a user to an organization with a role
type Membership struct {
	OrgSlug types.OrgSlug `json:"org_slug" firestore:"OrgSlug" yaml:"org_slug"`
	UserID  types.UserID  `json:"user_id" firestore:"UserID" yaml:"user_id"`
	Role    types.Role    `json:"role" firestore:"Role" yaml:"role"`
}
