package repository

import (
	"context"
	"sort"
	"sync"

	"github.com/m-mizutani/goerr/v2"
	"github.com/orgward/knock/pkg/domain/interfaces"
	"github.com/orgward/knock/pkg/domain/model"
	"github.com/orgward/knock/pkg/domain/types"
)

// Memory implements Repository interface with in-memory storage
type Memory struct {
	mu            sync.RWMutex
	organizations map[types.OrgSlug]*model.Organization
	users         map[types.UserID]*model.User
	usersByAPIKey map[types.APIKey]types.UserID
	memberships   map[types.OrgSlug]map[types.UserID]*model.Membership
	apps          map[types.ProviderSlug]*model.App
}

// NewMemory creates a new memory repository
func NewMemory() interfaces.Repository {
	return &Memory{
		organizations: make(map[types.OrgSlug]*model.Organization),
		users:         make(map[types.UserID]*model.User),
		usersByAPIKey: make(map[types.APIKey]types.UserID),
		memberships:   make(map[types.OrgSlug]map[types.UserID]*model.Membership),
		apps:          make(map[types.ProviderSlug]*model.App),
	}
}

// PutOrganization saves an organization
func (m *Memory) PutOrganization(ctx context.Context, org *model.Organization) error {
	if org == nil {
		return goerr.New("organization is nil")
	}
	if org.Slug == "" {
		return goerr.New("organization slug is empty")
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	orgCopy := *org
	m.organizations[org.Slug] = &orgCopy
	return nil
}

// GetOrganization retrieves an organization by slug
func (m *Memory) GetOrganization(ctx context.Context, slug types.OrgSlug) (*model.Organization, error) {
	if slug == "" {
		return nil, goerr.New("organization slug is empty")
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	org, exists := m.organizations[slug]
	if !exists {
		return nil, goerr.Wrap(model.ErrOrganizationNotFound, "organization not found",
			goerr.V("slug", slug))
	}

	orgCopy := *org
	return &orgCopy, nil
}

// PutUser saves a user
func (m *Memory) PutUser(ctx context.Context, user *model.User) error {
	if user == nil {
		return goerr.New("user is nil")
	}
	if user.ID == "" {
		return goerr.New("user ID is empty")
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if old, exists := m.users[user.ID]; exists && old.APIKey != "" {
		delete(m.usersByAPIKey, old.APIKey)
	}

	userCopy := *user
	m.users[user.ID] = &userCopy
	if user.APIKey != "" {
		m.usersByAPIKey[user.APIKey] = user.ID
	}
	return nil
}

// GetUser retrieves a user by ID
func (m *Memory) GetUser(ctx context.Context, id types.UserID) (*model.User, error) {
	if id == "" {
		return nil, goerr.New("user ID is empty")
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	user, exists := m.users[id]
	if !exists {
		return nil, goerr.Wrap(model.ErrUserNotFound, "user not found",
			goerr.V("id", id))
	}

	userCopy := *user
	return &userCopy, nil
}

// GetUserByAPIKey retrieves a user by API key
func (m *Memory) GetUserByAPIKey(ctx context.Context, key types.APIKey) (*model.User, error) {
	if key == "" {
		return nil, goerr.New("API key is empty")
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	id, exists := m.usersByAPIKey[key]
	if !exists {
		return nil, goerr.Wrap(model.ErrUserNotFound, "no user for API key")
	}

	user := m.users[id]
	userCopy := *user
	return &userCopy, nil
}

// PutMembership saves a membership
func (m *Memory) PutMembership(ctx context.Context, membership *model.Membership) error {
	if membership == nil {
		return goerr.New("membership is nil")
	}
	if membership.OrgSlug == "" {
		return goerr.New("membership org slug is empty")
	}
	if membership.UserID == "" {
		return goerr.New("membership user ID is empty")
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	orgMembers, exists := m.memberships[membership.OrgSlug]
	if !exists {
		orgMembers = make(map[types.UserID]*model.Membership)
		m.memberships[membership.OrgSlug] = orgMembers
	}

	membershipCopy := *membership
	orgMembers[membership.UserID] = &membershipCopy
	return nil
}

// GetMembership retrieves a membership by organization and user
func (m *Memory) GetMembership(ctx context.Context, slug types.OrgSlug, userID types.UserID) (*model.Membership, error) {
	if slug == "" {
		return nil, goerr.New("organization slug is empty")
	}
	if userID == "" {
		return nil, goerr.New("user ID is empty")
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	membership, exists := m.memberships[slug][userID]
	if !exists {
		return nil, goerr.Wrap(model.ErrMembershipNotFound, "membership not found",
			goerr.V("org", slug),
			goerr.V("user", userID))
	}

	membershipCopy := *membership
	return &membershipCopy, nil
}

// ListOwners lists the users with the owner role, sorted by user ID
func (m *Memory) ListOwners(ctx context.Context, slug types.OrgSlug) ([]*model.User, error) {
	if slug == "" {
		return nil, goerr.New("organization slug is empty")
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	var owners []*model.User
	for userID, membership := range m.memberships[slug] {
		if !membership.Role.CanInstall() {
			continue
		}
		user, exists := m.users[userID]
		if !exists {
			continue
		}
		userCopy := *user
		owners = append(owners, &userCopy)
	}

	sort.Slice(owners, func(i, j int) bool {
		return owners[i].ID < owners[j].ID
	})

	return owners, nil
}

// PutApp saves an installed application
func (m *Memory) PutApp(ctx context.Context, app *model.App) error {
	if app == nil {
		return goerr.New("app is nil")
	}
	if app.Slug == "" {
		return goerr.New("app slug is empty")
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	appCopy := *app
	m.apps[app.Slug] = &appCopy
	return nil
}

// GetAppBySlug retrieves an installed application by slug
func (m *Memory) GetAppBySlug(ctx context.Context, slug types.ProviderSlug) (*model.App, error) {
	if slug == "" {
		return nil, goerr.New("app slug is empty")
	}

	m.mu.RLock()
	defer m.mu.RUnlock()

	app, exists := m.apps[slug]
	if !exists {
		return nil, goerr.Wrap(model.ErrAppNotFound, "app not found",
			goerr.V("slug", slug))
	}

	appCopy := *app
	return &appCopy, nil
}

// Close closes the repository (no-op for memory)
func (m *Memory) Close() error {
	return nil
}
