package types

// ProviderType identifies which registry a provider belongs to.
// What users think of as a single "integrations" directory is actually
// three separate registries: installed applications, built-in
// integrations, and plugins.
type ProviderType string

const (
	// ProviderTypeApp is an installed third-party application
	ProviderTypeApp ProviderType = "sentry_app"
	// ProviderTypeFirstParty is a built-in integration
	ProviderTypeFirstParty ProviderType = "first_party"
	// ProviderTypePlugin is a legacy plugin
	ProviderTypePlugin ProviderType = "plugin"
)

// String returns the string representation
func (t ProviderType) String() string {
	return string(t)
}

// IsValid reports whether the value is one of the recognized provider types
func (t ProviderType) IsValid() bool {
	switch t {
	case ProviderTypeApp, ProviderTypeFirstParty, ProviderTypePlugin:
		return true
	}
	return false
}

// PathSegment returns the settings URL path segment for the provider type.
// Returns an empty string for unrecognized types; callers must validate
// the type before building links.
func (t ProviderType) PathSegment() string {
	switch t {
	case ProviderTypeApp:
		return "sentry-apps"
	case ProviderTypePlugin:
		return "plugins"
	case ProviderTypeFirstParty:
		return "integrations"
	}
	return ""
}
