package model

import (
	"github.com/m-mizutani/goerr/v2"
	"github.com/orgward/knock/pkg/domain/types"
)

// Provider is the resolved identity of an installable integration,
// plugin, or application
type Provider struct {
	Slug types.ProviderSlug `json:"slug" yaml:"slug"`
	Name string             `json:"name" yaml:"name"`
}

// Validate validates the provider entry
func (p *Provider) Validate() error {
	if p.Slug == "" {
		return goerr.New("provider slug is required")
	}
	if p.Name == "" {
		return goerr.New("provider name is required")
	}
	return nil
}

// App represents an installed third-party application. Unlike built-in
// integrations and plugins, apps are records in the data store rather
// than entries in a compiled-in catalog.
type App struct {
	ID   types.AppID        `json:"id" firestore:"ID" yaml:"id"`
	Slug types.ProviderSlug `json:"slug" firestore:"Slug" yaml:"slug"`
	Name string             `json:"name" firestore:"Name" yaml:"name"`
}

// NewApp creates a new App instance
func NewApp(slug types.ProviderSlug, name string) *App {
	return &App{
		ID:   types.NewAppID(),
		Slug: slug,
		Name: name,
	}
}
