package registry_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gt"
	"github.com/orgward/knock/pkg/domain/interfaces"
	"github.com/orgward/knock/pkg/domain/model"
	"github.com/orgward/knock/pkg/domain/types"
	"github.com/orgward/knock/pkg/registry"
	"github.com/orgward/knock/pkg/repository"
)

func TestCatalogRegistry(t *testing.T) {
	ctx := context.Background()
	catalog := registry.NewCatalog(model.DefaultCatalog().Integrations)

	t.Run("finds known slug", func(t *testing.T) {
		provider, err := catalog.FindBySlug(ctx, "slack")
		gt.NoError(t, err)
		gt.Equal(t, "Slack", provider.Name)
	})

	t.Run("unknown slug is not found", func(t *testing.T) {
		_, err := catalog.FindBySlug(ctx, "nonexistent")
		gt.Error(t, err)
		gt.True(t, errors.Is(err, model.ErrProviderNotFound))
	})
}

func TestAppsRegistry(t *testing.T) {
	ctx := context.Background()
	repo := repository.NewMemory()
	defer repo.Close()

	app := model.NewApp("clickup", "ClickUp")
	gt.NoError(t, repo.PutApp(ctx, app))

	apps := registry.NewApps(repo)

	t.Run("finds installed app", func(t *testing.T) {
		provider, err := apps.FindBySlug(ctx, "clickup")
		gt.NoError(t, err)
		gt.Equal(t, "ClickUp", provider.Name)
		gt.Equal(t, app.Slug, provider.Slug)
	})

	t.Run("unknown app is not found", func(t *testing.T) {
		_, err := apps.FindBySlug(ctx, "nonexistent")
		gt.Error(t, err)
		gt.True(t, errors.Is(err, model.ErrProviderNotFound))
	})
}

// failingRepository simulates a storage outage on app lookups
type failingRepository struct {
	interfaces.Repository
}

func (f *failingRepository) GetAppBySlug(ctx context.Context, slug types.ProviderSlug) (*model.App, error) {
	return nil, goerr.New("storage unavailable")
}

func TestAppsRegistryStorageFailure(t *testing.T) {
	ctx := context.Background()
	apps := registry.NewApps(&failingRepository{Repository: repository.NewMemory()})

	_, err := apps.FindBySlug(ctx, "clickup")
	gt.Error(t, err)

	// A storage outage is not a missing provider and must keep its cause
	gt.True(t, !errors.Is(err, model.ErrProviderNotFound))
	gt.True(t, strings.Contains(err.Error(), "storage unavailable"))
}
