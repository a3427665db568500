package config

import (
	"log/slog"
	"os"

	"github.com/m-mizutani/goerr/v2"
	"github.com/orgward/knock/pkg/domain/model"
	"github.com/urfave/cli/v3"
	"gopkg.in/yaml.v3"
)

// Catalog holds the provider catalog configuration
type Catalog struct {
	Path string
}

// Flags returns CLI flags for Catalog configuration
func (c *Catalog) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "catalog",
			Usage:       "YAML file replacing the built-in integration and plugin catalogs",
			Category:    "Catalog",
			Sources:     cli.EnvVars("KNOCK_CATALOG"),
			Destination: &c.Path,
		},
	}
}

// Configure loads the catalog file, or returns the compiled-in catalogs
// when no file is configured
func (c *Catalog) Configure() (*model.CatalogConfig, error) {
	if c.Path == "" {
		return model.DefaultCatalog(), nil
	}

	data, err := os.ReadFile(c.Path)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to read catalog file",
			goerr.V("path", c.Path))
	}

	var catalog model.CatalogConfig
	if err := yaml.Unmarshal(data, &catalog); err != nil {
		return nil, goerr.Wrap(err, "failed to parse catalog YAML",
			goerr.V("path", c.Path))
	}

	if err := catalog.Validate(); err != nil {
		return nil, goerr.Wrap(err, "invalid catalog",
			goerr.V("path", c.Path))
	}

	return &catalog, nil
}

// LogValue returns structured log value
func (c Catalog) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("path", c.Path),
	)
}
