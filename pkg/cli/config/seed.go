package config

import (
	"context"
	"log/slog"
	"os"

	"github.com/m-mizutani/ctxlog"
	"github.com/m-mizutani/goerr/v2"
	"github.com/orgward/knock/pkg/domain/interfaces"
	"github.com/orgward/knock/pkg/domain/model"
	"github.com/urfave/cli/v3"
	"gopkg.in/yaml.v3"
)

// Seed holds the seed data configuration
type Seed struct {
	Path string
}

// Flags returns CLI flags for Seed configuration
func (s *Seed) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "seed",
			Usage:       "YAML file with organizations, users, memberships, and apps loaded at boot",
			Category:    "Seed",
			Sources:     cli.EnvVars("KNOCK_SEED"),
			Destination: &s.Path,
		},
	}
}

// Apply loads the seed file into the repository. A missing flag is a
// no-op.
func (s *Seed) Apply(ctx context.Context, repo interfaces.Repository) error {
	if s.Path == "" {
		return nil
	}

	data, err := os.ReadFile(s.Path)
	if err != nil {
		return goerr.Wrap(err, "failed to read seed file",
			goerr.V("path", s.Path))
	}

	var seed model.SeedConfig
	if err := yaml.Unmarshal(data, &seed); err != nil {
		return goerr.Wrap(err, "failed to parse seed YAML",
			goerr.V("path", s.Path))
	}

	if err := seed.Validate(); err != nil {
		return goerr.Wrap(err, "invalid seed data",
			goerr.V("path", s.Path))
	}

	for i := range seed.Organizations {
		if err := repo.PutOrganization(ctx, &seed.Organizations[i]); err != nil {
			return goerr.Wrap(err, "failed to seed organization")
		}
	}
	for i := range seed.Users {
		if err := repo.PutUser(ctx, &seed.Users[i]); err != nil {
			return goerr.Wrap(err, "failed to seed user")
		}
	}
	for i := range seed.Memberships {
		if err := repo.PutMembership(ctx, &seed.Memberships[i]); err != nil {
			return goerr.Wrap(err, "failed to seed membership")
		}
	}
	for i := range seed.Apps {
		if err := repo.PutApp(ctx, &seed.Apps[i]); err != nil {
			return goerr.Wrap(err, "failed to seed app")
		}
	}

	ctxlog.From(ctx).Info("Seed data loaded",
		"organizations", len(seed.Organizations),
		"users", len(seed.Users),
		"memberships", len(seed.Memberships),
		"apps", len(seed.Apps),
	)

	return nil
}

// LogValue returns structured log value
func (s Seed) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("path", s.Path),
	)
}
