package registry

import (
	"context"

	"github.com/m-mizutani/goerr/v2"
	"github.com/orgward/knock/pkg/domain/model"
	"github.com/orgward/knock/pkg/domain/types"
)

// Catalog is a static, read-only provider registry built from a catalog
// listing. Built-in integrations and plugins both use it.
type Catalog struct {
	providers map[types.ProviderSlug]model.Provider
}

// NewCatalog creates a registry from the given provider entries
func NewCatalog(providers []model.Provider) *Catalog {
	index := make(map[types.ProviderSlug]model.Provider, len(providers))
	for _, p := range providers {
		index[p.Slug] = p
	}
	return &Catalog{
		providers: index,
	}
}

// FindBySlug returns the catalog entry matching the slug
func (r *Catalog) FindBySlug(ctx context.Context, slug types.ProviderSlug) (*model.Provider, error) {
	p, exists := r.providers[slug]
	if !exists {
		return nil, goerr.Wrap(model.ErrProviderNotFound, "provider not found",
			goerr.V("slug", slug))
	}

	result := p
	return &result, nil
}
