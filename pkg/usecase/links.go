package usecase

import (
	"fmt"
	"strings"

	"github.com/orgward/knock/pkg/domain/types"
)

// providerLink builds the absolute settings URL for a provider. The
// provider type must already be validated; unrecognized types map to an
// empty path segment.
func providerLink(baseURL string, org types.OrgSlug, providerType types.ProviderType, slug types.ProviderSlug) string {
	return strings.Join([]string{
		strings.TrimRight(baseURL, "/"),
		"settings",
		org.String(),
		providerType.PathSegment(),
		slug.String(),
	}, "/")
}

// memberLink builds the absolute member-settings URL for a user
func memberLink(baseURL string, org types.OrgSlug, userID types.UserID) string {
	return fmt.Sprintf("%s/settings/%s/members/%s/",
		strings.TrimRight(baseURL, "/"), org, userID)
}

// settingsLink builds the absolute organization-settings URL
func settingsLink(baseURL string, org types.OrgSlug) string {
	return fmt.Sprintf("%s/settings/%s/",
		strings.TrimRight(baseURL, "/"), org)
}
