package apperr

import (
	"context"

	"github.com/m-mizutani/ctxlog"
	"github.com/orgward/knock/pkg/domain/model"
)

// Handle logs an application error. The requester identity preserved by
// the async dispatcher is attached when present so fire-and-forget
// delivery failures remain attributable.
func Handle(ctx context.Context, err error) {
	args := []any{"error", err}
	if authCtx, ok := model.GetAuthContext(ctx); ok {
		args = append(args,
			"requester", authCtx.UserID,
			"requesterEmail", authCtx.Email,
		)
	}

	ctxlog.From(ctx).Error("application error", args...)
}
