package model

import (
	"strings"

	"github.com/m-mizutani/goerr/v2"
	"github.com/orgward/knock/pkg/domain/types"
)

// RequestOutcome is the result of a successful integration request
type RequestOutcome int

const (
	// OutcomeDispatched means the owner notification was queued
	OutcomeDispatched RequestOutcome = iota
	// OutcomeCanInstall means the requester already holds install
	// permission and no notification was sent
	OutcomeCanInstall
)

// Request messages are free text from the requester; cap them so an
// unbounded body cannot be pasted into the owner email.
const maxRequestMessageLen = 4096

// IntegrationRequest is the request body of the integration-request
// endpoint
type IntegrationRequest struct {
	ProviderType types.ProviderType `json:"provider_type"`
	ProviderSlug types.ProviderSlug `json:"provider_slug"`
	Message      string             `json:"message,omitempty"`
}

// Normalize trims the optional message and truncates it to the maximum
// accepted length
func (r *IntegrationRequest) Normalize() {
	r.Message = strings.TrimSpace(r.Message)
	if runes := []rune(r.Message); len(runes) > maxRequestMessageLen {
		r.Message = string(runes[:maxRequestMessageLen])
	}
}

// Validate validates the request fields. Provider type validation is
// left to the resolver so that the invalid-type error carries resolver
// semantics.
func (r *IntegrationRequest) Validate() error {
	if r.ProviderSlug == "" {
		return goerr.Wrap(ErrInvalidRequest, "provider_slug is required")
	}
	return nil
}
