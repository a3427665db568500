package repository_test

import (
	"context"
	"errors"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/m-mizutani/gt"
	"github.com/orgward/knock/pkg/domain/interfaces"
	"github.com/orgward/knock/pkg/domain/model"
	"github.com/orgward/knock/pkg/domain/types"
	"github.com/orgward/knock/pkg/repository"
)

func testRepository(t *testing.T, newRepo func(t *testing.T) interfaces.Repository) {
	t.Run("Organization", func(t *testing.T) {
		repo := newRepo(t)
		defer repo.Close()

		ctx := context.Background()
		slug := types.OrgSlug(fmt.Sprintf("acme-%d", time.Now().UnixNano()))
		org := model.NewOrganization(slug, "Acme Corp")

		gt.NoError(t, repo.PutOrganization(ctx, org))

		retrieved, err := repo.GetOrganization(ctx, slug)
		gt.NoError(t, err)
		gt.Equal(t, org.Slug, retrieved.Slug)
		gt.Equal(t, org.Name, retrieved.Name)
	})

	t.Run("Organization_NotFound", func(t *testing.T) {
		repo := newRepo(t)
		defer repo.Close()

		ctx := context.Background()
		_, err := repo.GetOrganization(ctx, types.OrgSlug(fmt.Sprintf("ghost-%d", time.Now().UnixNano())))
		gt.Error(t, err)
		gt.True(t, errors.Is(err, model.ErrOrganizationNotFound))
	})

	t.Run("User", func(t *testing.T) {
		repo := newRepo(t)
		defer repo.Close()

		ctx := context.Background()
		user := model.NewUser("alice@example.com", "Alice", "alice")

		gt.NoError(t, repo.PutUser(ctx, user))

		retrieved, err := repo.GetUser(ctx, user.ID)
		gt.NoError(t, err)
		gt.Equal(t, user.ID, retrieved.ID)
		gt.Equal(t, user.Email, retrieved.Email)
		gt.Equal(t, user.Name, retrieved.Name)
		gt.Equal(t, user.Username, retrieved.Username)
	})

	t.Run("UserByAPIKey", func(t *testing.T) {
		repo := newRepo(t)
		defer repo.Close()

		ctx := context.Background()
		user := model.NewUser("carol@example.com", "Carol", "carol")
		gt.NoError(t, repo.PutUser(ctx, user))

		retrieved, err := repo.GetUserByAPIKey(ctx, user.APIKey)
		gt.NoError(t, err)
		gt.Equal(t, user.ID, retrieved.ID)

		_, err = repo.GetUserByAPIKey(ctx, types.NewAPIKey())
		gt.Error(t, err)
		gt.True(t, errors.Is(err, model.ErrUserNotFound))
	})

	t.Run("Membership", func(t *testing.T) {
		repo := newRepo(t)
		defer repo.Close()

		ctx := context.Background()
		slug := types.OrgSlug(fmt.Sprintf("acme-%d", time.Now().UnixNano()))
		gt.NoError(t, repo.PutOrganization(ctx, model.NewOrganization(slug, "Acme Corp")))

		user := model.NewUser("dave@example.com", "Dave", "dave")
		gt.NoError(t, repo.PutUser(ctx, user))

		membership := &model.Membership{OrgSlug: slug, UserID: user.ID, Role: types.RoleMember}
		gt.NoError(t, repo.PutMembership(ctx, membership))

		retrieved, err := repo.GetMembership(ctx, slug, user.ID)
		gt.NoError(t, err)
		gt.Equal(t, types.RoleMember, retrieved.Role)

		_, err = repo.GetMembership(ctx, slug, types.NewUserID())
		gt.Error(t, err)
		gt.True(t, errors.Is(err, model.ErrMembershipNotFound))
	})

	t.Run("ListOwners", func(t *testing.T) {
		repo := newRepo(t)
		defer repo.Close()

		ctx := context.Background()
		slug := types.OrgSlug(fmt.Sprintf("acme-%d", time.Now().UnixNano()))
		gt.NoError(t, repo.PutOrganization(ctx, model.NewOrganization(slug, "Acme Corp")))

		owner1 := model.NewUser("bob@example.com", "Bob", "bob")
		owner2 := model.NewUser("carol@example.com", "Carol", "carol")
		member := model.NewUser("alice@example.com", "Alice", "alice")

		for _, user := range []*model.User{owner1, owner2, member} {
			gt.NoError(t, repo.PutUser(ctx, user))
		}
		gt.NoError(t, repo.PutMembership(ctx, &model.Membership{OrgSlug: slug, UserID: owner1.ID, Role: types.RoleOwner}))
		gt.NoError(t, repo.PutMembership(ctx, &model.Membership{OrgSlug: slug, UserID: owner2.ID, Role: types.RoleOwner}))
		gt.NoError(t, repo.PutMembership(ctx, &model.Membership{OrgSlug: slug, UserID: member.ID, Role: types.RoleMember}))

		owners, err := repo.ListOwners(ctx, slug)
		gt.NoError(t, err)
		gt.Equal(t, 2, len(owners))

		// Sorted by user ID, members excluded
		gt.True(t, owners[0].ID < owners[1].ID)
		for _, owner := range owners {
			gt.True(t, owner.ID != member.ID)
		}
	})

	t.Run("App", func(t *testing.T) {
		repo := newRepo(t)
		defer repo.Close()

		ctx := context.Background()
		app := model.NewApp(types.ProviderSlug(fmt.Sprintf("clickup-%d", time.Now().UnixNano())), "ClickUp")

		gt.NoError(t, repo.PutApp(ctx, app))

		retrieved, err := repo.GetAppBySlug(ctx, app.Slug)
		gt.NoError(t, err)
		gt.Equal(t, app.Slug, retrieved.Slug)
		gt.Equal(t, app.Name, retrieved.Name)

		_, err = repo.GetAppBySlug(ctx, types.ProviderSlug(fmt.Sprintf("ghost-%d", time.Now().UnixNano())))
		gt.Error(t, err)
		gt.True(t, errors.Is(err, model.ErrAppNotFound))
	})
}

func TestMemoryRepository(t *testing.T) {
	testRepository(t, func(t *testing.T) interfaces.Repository {
		return repository.NewMemory()
	})
}

func TestFirestoreRepository(t *testing.T) {
	projectID := os.Getenv("TEST_FIRESTORE_PROJECT")
	databaseID := os.Getenv("TEST_FIRESTORE_DATABASE")
	if projectID == "" || databaseID == "" {
		t.Skip("TEST_FIRESTORE_PROJECT and TEST_FIRESTORE_DATABASE are not set")
	}

	testRepository(t, func(t *testing.T) interfaces.Repository {
		repo, err := repository.NewFirestore(context.Background(), projectID, databaseID)
		gt.NoError(t, err).Required()
		return repo
	})
}
