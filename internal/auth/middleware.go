package auth

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/ferdiebergado/notekit/internal/pkg/message"
	"github.com/ferdiebergado/notekit/internal/pkg/security"
	"github.com/ferdiebergado/notekit/internal/pkg/web"
	"github.com/ferdiebergado/notekit/internal/platform/jwt"
	"github.com/ferdiebergado/notekit/internal/user"
)

// RequireToken admits requests bearing a valid, unexpired access token and
// stores its subject in the request context.
func RequireToken(tokens jwt.TokenService) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			slog.Debug("Verifying access token...")

			token, err := security.ExtractBearerToken(r)
			if err != nil {
				web.RespondUnauthorized(w, err, message.InvalidToken, nil)
				return
			}

			claims, err := tokens.Verify(token)
			if err != nil {
				web.RespondUnauthorized(w, err, message.InvalidToken, nil)
				return
			}

			if claims.Kind != jwt.KindAccess {
				web.RespondUnauthorized(w, fmt.Errorf("%w: got %q", jwt.ErrWrongKind, claims.Kind), message.InvalidToken, nil)
				return
			}

			ctx := user.NewContextWithUser(r.Context(), claims.Subject)
			r = r.WithContext(ctx)
			next.ServeHTTP(w, r)
		})
	}
}
