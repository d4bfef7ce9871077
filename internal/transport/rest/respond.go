package rest

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/heartmarshall/agencydesk-backend/internal/domain"
	"github.com/heartmarshall/agencydesk-backend/internal/transport/httperr"
	"github.com/heartmarshall/agencydesk-backend/pkg/ctxutil"
)

const identityKey = "identity"

// requireIdentity rejects anonymous requests with the sign-in banner and
// stores the caller's identity for the handlers.
func requireIdentity() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		userID, ok := ctxutil.UserIDFromCtx(ctx)
		if !ok || userID == uuid.Nil {
			c.AbortWithStatusJSON(httperr.Unauthenticated("sign in to continue"))
			return
		}
		c.Set(identityKey, domain.Identity{
			AgencyID: userID,
			Email:    ctxutil.EmailFromCtx(ctx),
			Kind:     domain.AccountKind(ctxutil.AccountKindFromCtx(ctx)),
		})
		c.Next()
	}
}

func identityOf(c *gin.Context) domain.Identity {
	v, _ := c.Get(identityKey)
	id, _ := v.(domain.Identity)
	return id
}

// writeError renders err as the error banner. Server-side failures are
// logged; the client only sees the generic message.
func writeError(c *gin.Context, log *slog.Logger, err error) {
	status, body := httperr.FromError(err)
	if status >= http.StatusInternalServerError {
		log.ErrorContext(c.Request.Context(), "request failed",
			slog.String("path", c.FullPath()),
			slog.String("error", err.Error()),
			slog.String("request_id", ctxutil.RequestIDFromCtx(c.Request.Context())))
	}
	c.AbortWithStatusJSON(status, body)
}

// bindJSON decodes the body into v. A malformed body is a validation error.
func bindJSON(c *gin.Context, v any) error {
	if err := c.ShouldBindJSON(v); err != nil {
		return domain.NewValidationError("body", "invalid JSON body")
	}
	return nil
}

func parseID(c *gin.Context) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return uuid.Nil, domain.NewValidationError("id", "invalid client id")
	}
	return id, nil
}
