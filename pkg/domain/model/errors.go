package model

import "github.com/m-mizutani/goerr/v2"

// Sentinel errors for domain operations
var (
	ErrInvalidRequest       = goerr.New("invalid request")
	ErrInvalidProviderType  = goerr.New("invalid provider_type")
	ErrProviderNotFound     = goerr.New("provider not found")
	ErrOrganizationNotFound = goerr.New("organization not found")
	ErrUserNotFound         = goerr.New("user not found")
	ErrMembershipNotFound   = goerr.New("membership not found")
	ErrAppNotFound          = goerr.New("app not found")
)
