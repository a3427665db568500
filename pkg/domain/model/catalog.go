package model

import (
	"github.com/m-mizutani/goerr/v2"
	"github.com/orgward/knock/pkg/domain/types"
)

// CatalogConfig holds the built-in integration and plugin catalogs.
// The compiled-in defaults can be replaced from a YAML file.
type CatalogConfig struct {
	Integrations []Provider `yaml:"integrations"`
	Plugins      []Provider `yaml:"plugins"`
}

// Validate validates the catalog configuration
func (c *CatalogConfig) Validate() error {
	if err := validateProviders(c.Integrations); err != nil {
		return goerr.Wrap(err, "invalid integrations catalog")
	}
	if err := validateProviders(c.Plugins); err != nil {
		return goerr.Wrap(err, "invalid plugins catalog")
	}
	return nil
}

func validateProviders(providers []Provider) error {
	slugs := make(map[types.ProviderSlug]bool)
	for i, p := range providers {
		if err := p.Validate(); err != nil {
			return goerr.Wrap(err, "invalid provider at index",
				goerr.V("index", i),
				goerr.V("slug", p.Slug))
		}
		if slugs[p.Slug] {
			return goerr.New("duplicate provider slug",
				goerr.V("slug", p.Slug))
		}
		slugs[p.Slug] = true
	}
	return nil
}

// DefaultCatalog returns the compiled-in provider catalogs
func DefaultCatalog() *CatalogConfig {
	return &CatalogConfig{
		Integrations: []Provider{
			{Slug: "slack", Name: "Slack"},
			{Slug: "github", Name: "GitHub"},
			{Slug: "gitlab", Name: "GitLab"},
			{Slug: "jira", Name: "Jira"},
			{Slug: "bitbucket", Name: "Bitbucket"},
			{Slug: "msteams", Name: "Microsoft Teams"},
			{Slug: "pagerduty", Name: "PagerDuty"},
			{Slug: "vsts", Name: "Azure DevOps"},
		},
		Plugins: []Provider{
			{Slug: "webhooks", Name: "WebHooks"},
			{Slug: "trello", Name: "Trello"},
			{Slug: "asana", Name: "Asana"},
			{Slug: "redmine", Name: "Redmine"},
			{Slug: "splunk", Name: "Splunk"},
			{Slug: "victorops", Name: "VictorOps"},
			{Slug: "twilio", Name: "Twilio"},
		},
	}
}
