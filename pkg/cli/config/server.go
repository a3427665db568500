package config

import (
	"log/slog"

	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"
)

// Server holds server configuration
type Server struct {
	Addr    string
	BaseURL string
}

// Flags returns CLI flags for Server configuration
func (s *Server) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "addr",
			Usage:       "Server address",
			Value:       "localhost:8080",
			Sources:     cli.EnvVars("KNOCK_ADDR"),
			Destination: &s.Addr,
		},
		&cli.StringFlag{
			Name:        "base-url",
			Usage:       "Absolute base URL used in notification links",
			Value:       "http://localhost:8080",
			Sources:     cli.EnvVars("KNOCK_BASE_URL"),
			Destination: &s.BaseURL,
		},
	}
}

// Validate validates the server configuration
func (s *Server) Validate() error {
	if s.BaseURL == "" {
		return goerr.New("base URL is required")
	}
	return nil
}

// LogValue returns structured log value
func (s Server) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("addr", s.Addr),
		slog.String("baseURL", s.BaseURL),
	)
}
