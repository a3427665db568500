package usecase

import (
	"context"
	"fmt"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/orgward/knock/pkg/domain/interfaces"
	"github.com/orgward/knock/pkg/domain/model"
	"github.com/orgward/knock/pkg/domain/types"
	"github.com/orgward/knock/pkg/service/mail"
	"github.com/orgward/knock/pkg/utils/async"
)

// IntegrationRequest implements the integration install request flow
type IntegrationRequest struct {
	repo       interfaces.Repository
	registries map[types.ProviderType]interfaces.ProviderRegistry
	mailer     interfaces.Mailer
	notifier   interfaces.Notifier
	baseURL    string
}

// Option configures the IntegrationRequest use case
type Option func(*IntegrationRequest)

// WithNotifier adds an out-of-band notifier (e.g. a Slack channel)
// that receives a summary whenever a request is dispatched
func WithNotifier(notifier interfaces.Notifier) Option {
	return func(u *IntegrationRequest) {
		u.notifier = notifier
	}
}

// NewIntegrationRequest creates the use case. The registries map must
// hold one entry per provider type.
func NewIntegrationRequest(
	repo interfaces.Repository,
	registries map[types.ProviderType]interfaces.ProviderRegistry,
	mailer interfaces.Mailer,
	baseURL string,
	opts ...Option,
) interfaces.IntegrationRequest {
	u := &IntegrationRequest{
		repo:       repo,
		registries: registries,
		mailer:     mailer,
		baseURL:    baseURL,
	}
	for _, opt := range opts {
		opt(u)
	}
	return u
}

// ResolveProviderName looks up the display name for the requested
// provider. An unrecognized provider type is a malformed request and
// fails with ErrInvalidProviderType; a recognized type with an unknown
// slug fails with ErrProviderNotFound from the selected registry.
func (u *IntegrationRequest) ResolveProviderName(ctx context.Context, req *model.IntegrationRequest) (string, error) {
	if !req.ProviderType.IsValid() {
		return "", goerr.Wrap(model.ErrInvalidProviderType, "invalid provider_type",
			goerr.V("provider_type", req.ProviderType))
	}

	reg, exists := u.registries[req.ProviderType]
	if !exists {
		return "", goerr.New("no registry for provider type",
			goerr.V("provider_type", req.ProviderType))
	}

	provider, err := reg.FindBySlug(ctx, req.ProviderSlug)
	if err != nil {
		return "", err
	}

	return provider.Name, nil
}

// Request runs the full flow: resolve, owner short-circuit, notify
func (u *IntegrationRequest) Request(ctx context.Context, org *model.Organization, requester *model.User, req *model.IntegrationRequest) (model.RequestOutcome, error) {
	logger := ctxlog.From(ctx)

	req.Normalize()
	if err := req.Validate(); err != nil {
		return 0, err
	}

	providerName, err := u.ResolveProviderName(ctx, req)
	if err != nil {
		return 0, err
	}

	owners, err := u.repo.ListOwners(ctx, org.Slug)
	if err != nil {
		return 0, goerr.Wrap(err, "failed to list organization owners",
			goerr.V("org", org.Slug))
	}

	// Permission checks upstream should keep owners out of this flow,
	// but if the requester can already install there is nothing to ask
	// for.
	for _, owner := range owners {
		if owner.ID == requester.ID {
			logger.Info("Requester already has install permission",
				"org", org.Slug,
				"user", requester.ID,
				"provider", req.ProviderSlug,
			)
			return model.OutcomeCanInstall, nil
		}
	}

	notification := &model.InstallRequestNotification{
		Subject:          fmt.Sprintf("Your team member requested the %s integration", providerName),
		ProviderName:     providerName,
		ProviderLink:     providerLink(u.baseURL, org.Slug, req.ProviderType, req.ProviderSlug),
		Message:          req.Message,
		OrganizationName: org.Name,
		RequesterName:    requester.DisplayName(),
		RequesterLink:    memberLink(u.baseURL, org.Slug, requester.ID),
		SettingsLink:     settingsLink(u.baseURL, org.Slug),
	}
	for _, owner := range owners {
		notification.Recipients = append(notification.Recipients, owner.Email)
	}

	msg, err := mail.NewInstallRequestMessage(notification)
	if err != nil {
		return 0, goerr.Wrap(err, "failed to build notification email")
	}

	logger.Info("Dispatching integration request notification",
		"org", org.Slug,
		"provider", req.ProviderSlug,
		"providerType", req.ProviderType,
		"recipients", len(msg.To),
	)

	// Fire and forget: the handler responds 201 without waiting for
	// delivery. Failures only reach the log.
	async.Dispatch(ctx, func(ctx context.Context) error {
		return u.mailer.Send(ctx, msg)
	})

	if u.notifier != nil {
		summary := fmt.Sprintf("%s requested the %s integration for %s",
			notification.RequesterName, providerName, org.Name)
		async.Dispatch(ctx, func(ctx context.Context) error {
			return u.notifier.Notify(ctx, summary)
		})
	}

	return model.OutcomeDispatched, nil
}
