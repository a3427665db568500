package interfaces

import (
	"context"

	"github.com/orgward/knock/pkg/domain/model"
	"github.com/orgward/knock/pkg/domain/types"
)

// Repository defines the interface for data persistence
type Repository interface {
	// Organization operations
	PutOrganization(ctx context.Context, org *model.Organization) error
	GetOrganization(ctx context.Context, slug types.OrgSlug) (*model.Organization, error)

	// User operations
	PutUser(ctx context.Context, user *model.User) error
	GetUser(ctx context.Context, id types.UserID) (*model.User, error)
	GetUserByAPIKey(ctx context.Context, key types.APIKey) (*model.User, error)

	// Membership operations
	PutMembership(ctx context.Context, membership *model.Membership) error
	GetMembership(ctx context.Context, slug types.OrgSlug, userID types.UserID) (*model.Membership, error)
	// ListOwners returns the users holding the owner role in the
	// organization, sorted by user ID
	ListOwners(ctx context.Context, slug types.OrgSlug) ([]*model.User, error)

	// Installed application operations
	PutApp(ctx context.Context, app *model.App) error
	GetAppBySlug(ctx context.Context, slug types.ProviderSlug) (*model.App, error)

	// Close closes the repository connection
	Close() error
}
