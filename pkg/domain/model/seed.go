package model

import (
	"github.com/m-mizutani/goerr/v2"
	"github.com/orgward/knock/pkg/domain/types"
)

// SeedConfig describes initial data loaded into the repository at boot.
// It is mainly used with the in-memory backend so the service is usable
// end to end without a database.
type SeedConfig struct {
	Organizations []Organization `yaml:"organizations"`
	Users         []User         `yaml:"users"`
	Memberships   []Membership   `yaml:"memberships"`
	Apps          []App          `yaml:"apps"`
}

// Validate validates the seed data and its cross references
func (s *SeedConfig) Validate() error {
	orgs := make(map[types.OrgSlug]bool)
	for i, org := range s.Organizations {
		if org.Slug == "" {
			return goerr.New("organization slug is required", goerr.V("index", i))
		}
		if orgs[org.Slug] {
			return goerr.New("duplicate organization slug", goerr.V("slug", org.Slug))
		}
		orgs[org.Slug] = true
	}

	users := make(map[types.UserID]bool)
	for i, user := range s.Users {
		if user.ID == "" {
			return goerr.New("user ID is required", goerr.V("index", i))
		}
		if user.Email == "" {
			return goerr.New("user email is required", goerr.V("id", user.ID))
		}
		if users[user.ID] {
			return goerr.New("duplicate user ID", goerr.V("id", user.ID))
		}
		users[user.ID] = true
	}

	for i, m := range s.Memberships {
		if !orgs[m.OrgSlug] {
			return goerr.New("membership references unknown organization",
				goerr.V("index", i),
				goerr.V("org", m.OrgSlug))
		}
		if !users[m.UserID] {
			return goerr.New("membership references unknown user",
				goerr.V("index", i),
				goerr.V("user", m.UserID))
		}
		switch m.Role {
		case types.RoleOwner, types.RoleMember:
		default:
			return goerr.New("invalid membership role",
				goerr.V("index", i),
				goerr.V("role", m.Role))
		}
	}

	appSlugs := make(map[types.ProviderSlug]bool)
	for i, app := range s.Apps {
		if app.Slug == "" {
			return goerr.New("app slug is required", goerr.V("index", i))
		}
		if appSlugs[app.Slug] {
			return goerr.New("duplicate app slug", goerr.V("slug", app.Slug))
		}
		appSlugs[app.Slug] = true
	}

	return nil
}
