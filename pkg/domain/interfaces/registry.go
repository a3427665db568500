package interfaces

import (
	"context"

	"github.com/orgward/knock/pkg/domain/model"
	"github.com/orgward/knock/pkg/domain/types"
)

// ProviderRegistry is a read-only lookup over one class of providers.
// Each provider type has its own implementation with its own not-found
// semantics.
type ProviderRegistry interface {
	// FindBySlug returns the provider matching the slug, or an error
	// wrapping model.ErrProviderNotFound
	FindBySlug(ctx context.Context, slug types.ProviderSlug) (*model.Provider, error)
}
