package registry

import (
	"context"
	"errors"

	"github.com/m-mizutani/goerr/v2"
	"github.com/orgward/knock/pkg/domain/interfaces"
	"github.com/orgward/knock/pkg/domain/model"
	"github.com/orgward/knock/pkg/domain/types"
)

// Apps looks up installed applications in the data store
type Apps struct {
	repo interfaces.Repository
}

// NewApps creates an installed-application registry backed by the
// repository
func NewApps(repo interfaces.Repository) *Apps {
	return &Apps{
		repo: repo,
	}
}

// FindBySlug returns the installed application matching the slug
func (r *Apps) FindBySlug(ctx context.Context, slug types.ProviderSlug) (*model.Provider, error) {
	app, err := r.repo.GetAppBySlug(ctx, slug)
	if err != nil {
		if errors.Is(err, model.ErrAppNotFound) {
			return nil, goerr.Wrap(model.ErrProviderNotFound, "provider not found",
				goerr.V("slug", slug))
		}
		return nil, goerr.Wrap(err, "failed to look up app",
			goerr.V("slug", slug))
	}

	return &model.Provider{
		Slug: app.Slug,
		Name: app.Name,
	}, nil
}
