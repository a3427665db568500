package usecase

import (
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/orgward/knock/pkg/domain/types"
)

func TestProviderLink(t *testing.T) {
	gt.Equal(t,
		"https://example.com/settings/acme/plugins/webhooks",
		providerLink("https://example.com", "acme", types.ProviderTypePlugin, "webhooks"))

	gt.Equal(t,
		"https://example.com/settings/acme/sentry-apps/clickup",
		providerLink("https://example.com", "acme", types.ProviderTypeApp, "clickup"))

	gt.Equal(t,
		"https://example.com/settings/acme/integrations/slack",
		providerLink("https://example.com", "acme", types.ProviderTypeFirstParty, "slack"))

	// Trailing slash on the base URL does not double up
	gt.Equal(t,
		"https://example.com/settings/acme/plugins/webhooks",
		providerLink("https://example.com/", "acme", types.ProviderTypePlugin, "webhooks"))
}

func TestMemberLink(t *testing.T) {
	gt.Equal(t,
		"https://example.com/settings/acme/members/u-42/",
		memberLink("https://example.com", "acme", "u-42"))
}

func TestSettingsLink(t *testing.T) {
	gt.Equal(t,
		"https://example.com/settings/acme/",
		settingsLink("https://example.com", "acme"))
}
