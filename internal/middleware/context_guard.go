package middleware

import (
	"net/http"

	"github.com/ferdiebergado/notekit/internal/pkg/message"
	"github.com/ferdiebergado/notekit/internal/pkg/web"
)

// ContextGuard answers 408 instead of calling next when the request context is already done.
func ContextGuard(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := r.Context().Err(); err != nil {
			web.RespondRequestTimeout(w, err, message.RequestAborted, nil)
			return
		}

		next.ServeHTTP(w, r)
	})
}
