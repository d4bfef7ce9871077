package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/heartmarshall/agencydesk-backend/internal/domain"
	"github.com/heartmarshall/agencydesk-backend/internal/transport/httperr"
	"github.com/heartmarshall/agencydesk-backend/pkg/ctxutil"
)

type tokenValidator interface {
	ValidateToken(ctx context.Context, token string) (domain.Identity, error)
}

// Auth resolves the bearer token into an identity stored in the request
// context. Requests without a token pass through anonymously; handlers that
// need an identity reject them. A token that fails validation ends the
// request with a 401 pointing back to the sign-in page.
func Auth(validator tokenValidator) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := extractBearerToken(r)
			if token == "" {
				next.ServeHTTP(w, r)
				return
			}
			identity, err := validator.ValidateToken(r.Context(), token)
			if err != nil {
				status, body := httperr.Unauthenticated("your session has expired, sign in again")
				httperr.Write(w, status, body)
				return
			}

			if meta := metaFromCtx(r.Context()); meta != nil {
				meta.accountID = identity.AgencyID
				meta.kind = string(identity.Kind)
			}

			ctx := ctxutil.WithUserID(r.Context(), identity.AgencyID)
			ctx = ctxutil.WithAccountKind(ctx, string(identity.Kind))
			ctx = ctxutil.WithEmail(ctx, identity.Email)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func extractBearerToken(r *http.Request) string {
	auth := r.Header.Get("Authorization")
	if len(auth) < 7 || !strings.EqualFold(auth[:7], "Bearer ") {
		return ""
	}
	return strings.TrimSpace(auth[7:])
}
