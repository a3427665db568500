package interfaces

import (
	"context"

	"github.com/orgward/knock/pkg/domain/model"
)

// IntegrationRequest defines the interface for the integration install
// request flow
type IntegrationRequest interface {
	// ResolveProviderName looks up the display name for the requested
	// provider across the three registries
	ResolveProviderName(ctx context.Context, req *model.IntegrationRequest) (string, error)

	// Request resolves the provider, short-circuits when the requester
	// can already install, and otherwise dispatches the owner
	// notification
	Request(ctx context.Context, org *model.Organization, requester *model.User, req *model.IntegrationRequest) (model.RequestOutcome, error)
}
