package repository

import (
	"context"
	"fmt"
	"sort"

	"cloud.google.com/go/firestore"
	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/orgward/knock/pkg/domain/interfaces"
	"github.com/orgward/knock/pkg/domain/model"
	"github.com/orgward/knock/pkg/domain/types"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

const (
	// Collection names
	organizationsCollection = "organizations"
	usersCollection         = "users"
	membershipsCollection   = "memberships"
	appsCollection          = "apps"
)

// Firestore implements Repository interface with Firestore
type Firestore struct {
	client *firestore.Client
}

// NewFirestore creates a new Firestore repository
func NewFirestore(ctx context.Context, projectID, databaseID string) (interfaces.Repository, error) {
	logger := ctxlog.From(ctx)

	client, err := firestore.NewClientWithDatabase(ctx, projectID, databaseID)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create firestore client")
	}

	// Fail fast on bad credentials or project ID. An empty collection is
	// not an error.
	_, err = client.Collection(organizationsCollection).Limit(1).Documents(ctx).Next()
	if err != nil && err != iterator.Done {
		if status.Code(err) == codes.PermissionDenied || status.Code(err) == codes.Unauthenticated {
			_ = client.Close()
			return nil, goerr.Wrap(err, "failed to connect to firestore project",
				goerr.V("firestore error code", status.Code(err).String()),
			)
		}
		logger.Debug("Firestore connection test returned error (may be empty collection)",
			"error", err,
			"errorCode", status.Code(err).String(),
		)
	}

	logger.Info("Firestore repository initialized successfully",
		"projectID", projectID,
		"databaseID", databaseID,
	)

	return &Firestore{
		client: client,
	}, nil
}

// membershipDocID builds the composite document ID for a membership
func membershipDocID(slug types.OrgSlug, userID types.UserID) string {
	return fmt.Sprintf("%s:%s", slug, userID)
}

// PutOrganization saves an organization to Firestore
func (f *Firestore) PutOrganization(ctx context.Context, org *model.Organization) error {
	if org == nil {
		return goerr.New("organization is nil")
	}
	if org.Slug == "" {
		return goerr.New("organization slug is empty")
	}

	_, err := f.client.Collection(organizationsCollection).Doc(org.Slug.String()).Set(ctx, org)
	if err != nil {
		return goerr.Wrap(err, "failed to save organization to firestore")
	}

	return nil
}

// GetOrganization retrieves an organization by slug
func (f *Firestore) GetOrganization(ctx context.Context, slug types.OrgSlug) (*model.Organization, error) {
	if slug == "" {
		return nil, goerr.New("organization slug is empty")
	}

	doc, err := f.client.Collection(organizationsCollection).Doc(slug.String()).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, goerr.Wrap(model.ErrOrganizationNotFound, "organization not found",
				goerr.V("slug", slug))
		}
		return nil, goerr.Wrap(err, "failed to get organization from firestore")
	}

	var org model.Organization
	if err := doc.DataTo(&org); err != nil {
		return nil, goerr.Wrap(err, "failed to decode organization")
	}

	return &org, nil
}

// PutUser saves a user to Firestore
func (f *Firestore) PutUser(ctx context.Context, user *model.User) error {
	if user == nil {
		return goerr.New("user is nil")
	}
	if user.ID == "" {
		return goerr.New("user ID is empty")
	}

	_, err := f.client.Collection(usersCollection).Doc(user.ID.String()).Set(ctx, user)
	if err != nil {
		return goerr.Wrap(err, "failed to save user to firestore")
	}

	return nil
}

// GetUser retrieves a user by ID
func (f *Firestore) GetUser(ctx context.Context, id types.UserID) (*model.User, error) {
	if id == "" {
		return nil, goerr.New("user ID is empty")
	}

	doc, err := f.client.Collection(usersCollection).Doc(id.String()).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, goerr.Wrap(model.ErrUserNotFound, "user not found",
				goerr.V("id", id))
		}
		return nil, goerr.Wrap(err, "failed to get user from firestore")
	}

	var user model.User
	if err := doc.DataTo(&user); err != nil {
		return nil, goerr.Wrap(err, "failed to decode user")
	}

	return &user, nil
}

// GetUserByAPIKey retrieves a user by API key
func (f *Firestore) GetUserByAPIKey(ctx context.Context, key types.APIKey) (*model.User, error) {
	if key == "" {
		return nil, goerr.New("API key is empty")
	}

	iter := f.client.Collection(usersCollection).
		Where("APIKey", "==", key.String()).
		Limit(1).
		Documents(ctx)
	defer iter.Stop()

	doc, err := iter.Next()
	if err == iterator.Done {
		return nil, goerr.Wrap(model.ErrUserNotFound, "no user for API key")
	}
	if err != nil {
		return nil, goerr.Wrap(err, "failed to query user by API key")
	}

	var user model.User
	if err := doc.DataTo(&user); err != nil {
		return nil, goerr.Wrap(err, "failed to decode user")
	}

	return &user, nil
}

// PutMembership saves a membership to Firestore
func (f *Firestore) PutMembership(ctx context.Context, membership *model.Membership) error {
	if membership == nil {
		return goerr.New("membership is nil")
	}
	if membership.OrgSlug == "" {
		return goerr.New("membership org slug is empty")
	}
	if membership.UserID == "" {
		return goerr.New("membership user ID is empty")
	}

	docID := membershipDocID(membership.OrgSlug, membership.UserID)
	_, err := f.client.Collection(membershipsCollection).Doc(docID).Set(ctx, membership)
	if err != nil {
		return goerr.Wrap(err, "failed to save membership to firestore")
	}

	return nil
}

// GetMembership retrieves a membership by organization and user
func (f *Firestore) GetMembership(ctx context.Context, slug types.OrgSlug, userID types.UserID) (*model.Membership, error) {
	if slug == "" {
		return nil, goerr.New("organization slug is empty")
	}
	if userID == "" {
		return nil, goerr.New("user ID is empty")
	}

	doc, err := f.client.Collection(membershipsCollection).Doc(membershipDocID(slug, userID)).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, goerr.Wrap(model.ErrMembershipNotFound, "membership not found",
				goerr.V("org", slug),
				goerr.V("user", userID))
		}
		return nil, goerr.Wrap(err, "failed to get membership from firestore")
	}

	var membership model.Membership
	if err := doc.DataTo(&membership); err != nil {
		return nil, goerr.Wrap(err, "failed to decode membership")
	}

	return &membership, nil
}

// ListOwners lists the users with the owner role, sorted by user ID
func (f *Firestore) ListOwners(ctx context.Context, slug types.OrgSlug) ([]*model.User, error) {
	if slug == "" {
		return nil, goerr.New("organization slug is empty")
	}

	// Equality-only filters so no composite index is required; sorting
	// happens in memory.
	query := f.client.Collection(membershipsCollection).
		Where("OrgSlug", "==", slug.String()).
		Where("Role", "==", types.RoleOwner.String())

	iter := query.Documents(ctx)
	defer iter.Stop()

	var owners []*model.User
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, goerr.Wrap(err, "failed to iterate memberships")
		}

		var membership model.Membership
		if err := doc.DataTo(&membership); err != nil {
			return nil, goerr.Wrap(err, "failed to decode membership")
		}

		user, err := f.GetUser(ctx, membership.UserID)
		if err != nil {
			// A dangling membership should not block the rest of the
			// owner list.
			ctxlog.From(ctx).Warn("Skipping owner with missing user record",
				"org", slug,
				"user", membership.UserID,
				"error", err,
			)
			continue
		}
		owners = append(owners, user)
	}

	sort.Slice(owners, func(i, j int) bool {
		return owners[i].ID < owners[j].ID
	})

	return owners, nil
}

// PutApp saves an installed application to Firestore
func (f *Firestore) PutApp(ctx context.Context, app *model.App) error {
	if app == nil {
		return goerr.New("app is nil")
	}
	if app.Slug == "" {
		return goerr.New("app slug is empty")
	}

	_, err := f.client.Collection(appsCollection).Doc(app.Slug.String()).Set(ctx, app)
	if err != nil {
		return goerr.Wrap(err, "failed to save app to firestore")
	}

	return nil
}

// GetAppBySlug retrieves an installed application by slug
func (f *Firestore) GetAppBySlug(ctx context.Context, slug types.ProviderSlug) (*model.App, error) {
	if slug == "" {
		return nil, goerr.New("app slug is empty")
	}

	doc, err := f.client.Collection(appsCollection).Doc(slug.String()).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, goerr.Wrap(model.ErrAppNotFound, "app not found",
				goerr.V("slug", slug))
		}
		return nil, goerr.Wrap(err, "failed to get app from firestore")
	}

	var app model.App
	if err := doc.DataTo(&app); err != nil {
		return nil, goerr.Wrap(err, "failed to decode app")
	}

	return &app, nil
}

// Close closes the Firestore client
func (f *Firestore) Close() error {
	if f.client != nil {
		return f.client.Close()
	}
	return nil
}
