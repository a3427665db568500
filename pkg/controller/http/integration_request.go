package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/m-mizutani/ctxlog"
	"github.com/orgward/knock/pkg/domain/interfaces"
	"github.com/orgward/knock/pkg/domain/model"
	"github.com/orgward/knock/pkg/domain/types"
)

// IntegrationRequestHandler handles integration install requests
type IntegrationRequestHandler struct {
	requestUC interfaces.IntegrationRequest
}

// NewIntegrationRequestHandler creates a new handler
func NewIntegrationRequestHandler(requestUC interfaces.IntegrationRequest) *IntegrationRequestHandler {
	return &IntegrationRequestHandler{
		requestUC: requestUC,
	}
}

// HandleRequest handles POST /api/organizations/{orgSlug}/integration-request.
// A member without install permission posts here to let the owners know
// there is demand for an integration.
func (h *IntegrationRequestHandler) HandleRequest(w http.ResponseWriter, r *http.Request) {
	org, ok := orgFromContext(r.Context())
	if !ok {
		writeDetail(w, r, http.StatusInternalServerError, "organization missing from context")
		return
	}
	requester, ok := userFromContext(r.Context())
	if !ok {
		writeDetail(w, r, http.StatusUnauthorized, "authentication required")
		return
	}

	req, err := parseIntegrationRequest(r)
	if err != nil {
		writeDetail(w, r, http.StatusBadRequest, "malformed request body")
		return
	}

	outcome, err := h.requestUC.Request(r.Context(), org, requester, req)
	if err != nil {
		switch {
		case errors.Is(err, model.ErrInvalidRequest):
			writeDetail(w, r, http.StatusBadRequest, err.Error())
		case errors.Is(err, model.ErrInvalidProviderType):
			writeDetail(w, r, http.StatusBadRequest, "Invalid provider_type")
		case errors.Is(err, model.ErrProviderNotFound):
			writeDetail(w, r, http.StatusBadRequest,
				fmt.Sprintf("Provider %s not found", req.ProviderSlug))
		default:
			ctxlog.From(r.Context()).Error("Integration request failed",
				"org", org.Slug,
				"provider", req.ProviderSlug,
				"error", err,
			)
			writeDetail(w, r, http.StatusInternalServerError, "internal error")
		}
		return
	}

	switch outcome {
	case model.OutcomeCanInstall:
		writeDetail(w, r, http.StatusOK, "User can install integration")
	default:
		w.WriteHeader(http.StatusCreated)
	}
}

// parseIntegrationRequest reads the request body as JSON or an HTML
// form, depending on Content-Type
func parseIntegrationRequest(r *http.Request) (*model.IntegrationRequest, error) {
	contentType := r.Header.Get("Content-Type")

	if strings.HasPrefix(contentType, "application/x-www-form-urlencoded") ||
		strings.HasPrefix(contentType, "multipart/form-data") {
		if err := r.ParseForm(); err != nil {
			return nil, err
		}
		return &model.IntegrationRequest{
			ProviderType: types.ProviderType(r.PostFormValue("provider_type")),
			ProviderSlug: types.ProviderSlug(r.PostFormValue("provider_slug")),
			Message:      r.PostFormValue("message"),
		}, nil
	}

	var req model.IntegrationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		return nil, err
	}
	return &req, nil
}
