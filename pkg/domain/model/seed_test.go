package model_test

import (
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/orgward/knock/pkg/domain/model"
	"github.com/orgward/knock/pkg/domain/types"
)

func validSeed() *model.SeedConfig {
	return &model.SeedConfig{
		Organizations: []model.Organization{
			{Slug: "acme", Name: "Acme Corp"},
		},
		Users: []model.User{
			{ID: "u1", Email: "bob@example.com", Name: "Bob"},
		},
		Memberships: []model.Membership{
			{OrgSlug: "acme", UserID: "u1", Role: types.RoleOwner},
		},
		Apps: []model.App{
			{ID: "a1", Slug: "clickup", Name: "ClickUp"},
		},
	}
}

func TestSeedConfigValidate(t *testing.T) {
	gt.NoError(t, validSeed().Validate())

	t.Run("membership must reference known org", func(t *testing.T) {
		seed := validSeed()
		seed.Memberships[0].OrgSlug = "ghost"
		gt.Error(t, seed.Validate())
	})

	t.Run("membership must reference known user", func(t *testing.T) {
		seed := validSeed()
		seed.Memberships[0].UserID = "ghost"
		gt.Error(t, seed.Validate())
	})

	t.Run("rejects unknown role", func(t *testing.T) {
		seed := validSeed()
		seed.Memberships[0].Role = "superuser"
		gt.Error(t, seed.Validate())
	})

	t.Run("rejects duplicate app slug", func(t *testing.T) {
		seed := validSeed()
		seed.Apps = append(seed.Apps, model.App{ID: "a2", Slug: "clickup", Name: "Dup"})
		gt.Error(t, seed.Validate())
	})
}

func TestCatalogConfigValidate(t *testing.T) {
	gt.NoError(t, model.DefaultCatalog().Validate())

	catalog := &model.CatalogConfig{
		Integrations: []model.Provider{
			{Slug: "slack", Name: "Slack"},
			{Slug: "slack", Name: "Slack Again"},
		},
	}
	gt.Error(t, catalog.Validate())
}
